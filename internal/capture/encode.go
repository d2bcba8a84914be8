package capture

import (
	"encoding/base64"
	"fmt"

	"gocv.io/x/gocv"
)

// DefaultJPEGQuality trades image fidelity for smaller frame messages.
const DefaultJPEGQuality = 50

// EncodeJPEG encodes frame as a JPEG at the given quality (1-100).
func EncodeJPEG(frame *gocv.Mat, quality int) ([]byte, error) {
	if frame == nil || frame.Empty() {
		return nil, ErrNoFrame
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, *frame, []int{int(gocv.IMWriteJpegQuality), quality})
	if err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	defer buf.Close()

	// GetBytes aliases native memory freed by Close.
	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())
	return out, nil
}

// EncodeBase64JPEG encodes frame as a base64 JPEG string suitable for the image
// field of a frame message.
func EncodeBase64JPEG(frame *gocv.Mat, quality int) (string, error) {
	data, err := EncodeJPEG(frame, quality)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
