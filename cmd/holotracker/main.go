package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ayusman/holoblocks/internal/capture"
	"github.com/ayusman/holoblocks/internal/config"
	"github.com/ayusman/holoblocks/internal/detector"
	"github.com/ayusman/holoblocks/internal/server"
	"github.com/ayusman/holoblocks/internal/stream"
	"github.com/ayusman/holoblocks/internal/tracker"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	fmt.Println("Holoblocks Tracker - Hand Tracking Feed")

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	tc := cfg.Tracker

	// Try MediaPipe first, fall back to mock detector
	var det detector.Detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		det = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		det = detector.NewMockDetector()
	}

	hub := stream.NewHub("tracker")
	defer hub.Close()

	tr := tracker.New(tracker.Config{
		FPS:            tc.FPS,
		JPEGQuality:    tc.JPEGQuality,
		PinchThreshold: tc.PinchThreshold,
		PalmThreshold:  tc.PalmThreshold,
		History:        tc.History,
	}, capture.NewCamera(tc.CameraID), det, hub)

	if err := tr.Start(); err != nil {
		log.Fatalf("Failed to start tracker: %v", err)
	}
	defer tr.Stop()

	srv := server.New(server.Config{Feed: hub, Frames: tr.Latest})
	httpServer := &http.Server{Addr: tc.Addr, Handler: srv}

	go func() {
		fmt.Printf("Streaming frames on %s\n", tc.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-ctx.Done()

	shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
