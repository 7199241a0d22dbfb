// Package main is the entry point for the torus shadow demo.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/torus-demo/internal/config"
	"github.com/Faultbox/torus-demo/internal/demo"
	"github.com/Faultbox/torus-demo/internal/engine/debug"
	"github.com/Faultbox/torus-demo/internal/engine/renderer"
	"github.com/Faultbox/torus-demo/internal/engine/window"
	"github.com/Faultbox/torus-demo/internal/logger"
)

func init() {
	// SDL and OpenGL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	overrides, err := config.ParseArgs(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Usage error: %v\n", err)
		os.Exit(2)
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if overrides.SaveConfig {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("=== Torus Demo ===", zap.String("config", cfg.Source))
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("demo failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("demo closed normally")
	logger.Sync()
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:       "Torus Demo",
		Width:       cfg.Graphics.Width,
		Height:      cfg.Graphics.Height,
		Fullscreen:  cfg.Graphics.Fullscreen,
		VSync:       cfg.Graphics.VSync,
		MSAASamples: cfg.Graphics.MSAASamples,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	width, height := win.Size()
	r, err := renderer.New(renderer.ConfigFrom(cfg.Graphics, width, height))
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	defer r.Close()

	ctx, err := demo.Init(cfg.Scene, win, r)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	shots := debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "torus")
	shots.Scale = cfg.Debug.ScreenshotScale

	h := &host{
		win:         win,
		renderer:    r,
		screenshots: shots,
	}
	if cfg.Debug.LogFPS {
		h.fps = debug.NewFPSCounter()
	}
	return demo.Run(ctx, h)
}
