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
	"path/filepath"
	"syscall"
	"time"

	"github.com/ayusman/holoblocks/internal/app"
	"github.com/ayusman/holoblocks/internal/config"
	"github.com/ayusman/holoblocks/internal/server"
	"github.com/ayusman/holoblocks/internal/store"
	"github.com/ayusman/holoblocks/internal/stream"
	"github.com/ayusman/holoblocks/internal/tray"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	withTray := flag.Bool("tray", false, "show a system tray menu")
	flag.Parse()

	fmt.Println("Holoblocks - Gesture Block Scene")

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	sceneCfg, err := cfg.SceneConfig()
	if err != nil {
		log.Fatalf("Invalid scene config: %v", err)
	}

	var st *store.Store
	if cfg.Journal.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Journal.Path), 0755); err != nil {
			log.Fatalf("Failed to create journal directory: %v", err)
		}
		st, err = store.New(cfg.Journal.Path)
		if err != nil {
			log.Fatalf("Failed to open journal: %v", err)
		}
		defer st.Close()
		fmt.Printf("Journaling events to: %s\n", cfg.Journal.Path)
	}

	a, err := app.New(app.Config{Scene: sceneCfg, Store: st})
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	log.Printf("Session %s started", a.SessionID())

	staticDir := cfg.Server.StaticDir
	if staticDir == "" {
		staticDir = findWebDir()
	}
	if staticDir != "" {
		fmt.Printf("Serving static files from: %s\n", staticDir)
	}

	hub := stream.NewHub("scene")
	defer hub.Close()

	srv := server.New(server.Config{
		StaticDir: staticDir,
		Scene:     a,
		SceneFeed: hub,
		Store:     st,
		Frames:    server.Base64Frames(a.Image),
	})
	httpServer := &http.Server{Addr: cfg.Server.Addr, Handler: srv}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go a.Run(ctx)
	go func() {
		if err := a.RunRender(ctx, cfg.RenderInterval(), hub); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Render loop stopped: %v", err)
		}
	}()
	go stream.NewSubscriber(cfg.Source.URL, cfg.Source.ReconnectDelay).Run(ctx, a)

	go func() {
		fmt.Printf("Starting server on %s\n", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if *withTray {
		runTray(ctx, cancel, a)
	} else {
		<-ctx.Done()
	}

	shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
	defer done()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	log.Println("Stopped")
}

// runTray blocks in the tray loop, mirroring the scene into the menu until
// the user quits or ctx is cancelled.
func runTray(ctx context.Context, cancel context.CancelFunc, a *app.App) {
	t := tray.New()
	t.OnToggle(a.SetEnabled)
	t.OnQuit(cancel)

	go func() {
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				t.Quit()
				return
			case <-ticker.C:
				snap := a.Snapshot()
				t.SetStatus(snap.Status.Text)
				t.SetBlockCount(len(snap.Blocks))
			}
		}
	}()

	t.Run()
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.holoblocks/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".holoblocks", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
