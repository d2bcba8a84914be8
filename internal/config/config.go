// Package config loads holoblocks configuration from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ayusman/holoblocks/internal/gesture"
	"github.com/ayusman/holoblocks/internal/scene"
)

// Config is the top-level configuration shared by both binaries.
type Config struct {
	Scene   SceneConfig   `yaml:"scene"`
	Server  ServerConfig  `yaml:"server"`
	Source  SourceConfig  `yaml:"source"`
	Journal JournalConfig `yaml:"journal"`
	Tracker TrackerConfig `yaml:"tracker"`
}

// Point is a scene position in YAML.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// SceneConfig describes the scene layout and interaction radii.
type SceneConfig struct {
	Width          float64  `yaml:"width"`
	Height         float64  `yaml:"height"`
	GrabRadius     float64  `yaml:"grab_radius"`
	BinRadius      float64  `yaml:"bin_radius"`
	HoverRadius    float64  `yaml:"hover_radius"`
	Bin            *Point   `yaml:"bin"`
	DefaultColor   string   `yaml:"default_color"`
	WarningColor   string   `yaml:"warning_color"`
	Palette        []string `yaml:"palette"`
	PaletteY       *float64 `yaml:"palette_y"`
	PaletteSpacing float64  `yaml:"palette_spacing"`
}

// ServerConfig controls the render-facing HTTP server.
type ServerConfig struct {
	Addr      string `yaml:"addr"`
	StaticDir string `yaml:"static_dir"`
	RenderFPS int    `yaml:"render_fps"`
}

// SourceConfig points the scene client at a tracker.
type SourceConfig struct {
	URL            string        `yaml:"url"`
	ReconnectDelay time.Duration `yaml:"reconnect_delay"`
}

// JournalConfig enables the SQLite event journal when Path is set.
type JournalConfig struct {
	Path string `yaml:"path"`
}

// TrackerConfig controls the frame producer.
type TrackerConfig struct {
	Addr           string  `yaml:"addr"`
	CameraID       int     `yaml:"camera_id"`
	FPS            int     `yaml:"fps"`
	JPEGQuality    int     `yaml:"jpeg_quality"`
	PinchThreshold float64 `yaml:"pinch_threshold"`
	PalmThreshold  float64 `yaml:"palm_threshold"`
	History        int     `yaml:"history"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadFile reads a YAML configuration file. An empty path yields the defaults.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration and fills in defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if _, err := cfg.SceneConfig(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	s := &c.Scene
	if s.Width <= 0 {
		s.Width = scene.DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = scene.DefaultHeight
	}
	if s.GrabRadius <= 0 {
		s.GrabRadius = scene.DefaultGrabRadius
	}
	if s.BinRadius <= 0 {
		s.BinRadius = scene.DefaultBinRadius
	}
	if s.HoverRadius <= 0 {
		s.HoverRadius = scene.DefaultHoverRadius
	}
	if s.Bin == nil {
		b := scene.DefaultBinPosition
		s.Bin = &Point{X: b.X, Y: b.Y, Z: b.Z}
	}
	if s.DefaultColor == "" {
		s.DefaultColor = scene.Green.Hex()
	}
	if s.WarningColor == "" {
		s.WarningColor = scene.Red.Hex()
	}
	if len(s.Palette) == 0 {
		for _, c := range scene.DefaultPaletteColors {
			s.Palette = append(s.Palette, c.Hex())
		}
	}
	if s.PaletteY == nil {
		y := scene.DefaultPaletteY
		s.PaletteY = &y
	}
	if s.PaletteSpacing <= 0 {
		s.PaletteSpacing = scene.DefaultPaletteSpacing
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.RenderFPS <= 0 {
		c.Server.RenderFPS = 30
	}

	if c.Source.URL == "" {
		c.Source.URL = "ws://localhost:8765"
	}
	if c.Source.ReconnectDelay <= 0 {
		c.Source.ReconnectDelay = 2 * time.Second
	}

	t := &c.Tracker
	if t.Addr == "" {
		t.Addr = ":8765"
	}
	if t.FPS <= 0 {
		t.FPS = 30
	}
	if t.JPEGQuality <= 0 || t.JPEGQuality > 100 {
		t.JPEGQuality = 50
	}
	if t.PinchThreshold <= 0 {
		t.PinchThreshold = gesture.DefaultPinchThreshold
	}
	if t.PalmThreshold <= 0 {
		t.PalmThreshold = gesture.DefaultPalmThreshold
	}
	if t.History <= 0 {
		t.History = gesture.DefaultHistory
	}
}

// SceneConfig builds the scene.Config described by the scene section.
func (c *Config) SceneConfig() (scene.Config, error) {
	s := c.Scene

	def, err := scene.ParseColor(s.DefaultColor)
	if err != nil {
		return scene.Config{}, fmt.Errorf("scene.default_color: %w", err)
	}
	warn, err := scene.ParseColor(s.WarningColor)
	if err != nil {
		return scene.Config{}, fmt.Errorf("scene.warning_color: %w", err)
	}
	colors := make([]scene.Color, len(s.Palette))
	for i, hex := range s.Palette {
		if colors[i], err = scene.ParseColor(hex); err != nil {
			return scene.Config{}, fmt.Errorf("scene.palette[%d]: %w", i, err)
		}
	}

	return scene.Config{
		Mapper:       scene.Mapper{Width: s.Width, Height: s.Height},
		Palette:      scene.NewPalette(colors, *s.PaletteY, s.PaletteSpacing, s.HoverRadius),
		GrabRadius:   s.GrabRadius,
		BinRadius:    s.BinRadius,
		BinPosition:  scene.Vec3{X: s.Bin.X, Y: s.Bin.Y, Z: s.Bin.Z},
		DefaultColor: def,
		WarningColor: warn,
		HitTester:    scene.LinearScan{},
	}, nil
}

// RenderInterval is the period between snapshot broadcasts.
func (c *Config) RenderInterval() time.Duration {
	return time.Second / time.Duration(c.Server.RenderFPS)
}
