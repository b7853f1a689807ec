package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/leterax/go-garden/pkg/scene"
	"github.com/leterax/go-garden/pkg/viewer"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "garden.toml", "Scene file (defaults are used when it does not exist)")
	width := flag.Int("width", 1024, "Window width")
	height := flag.Int("height", 768, "Window height")
	vsync := flag.Bool("vsync", true, "Enable vsync")
	shaderDir := flag.String("shaders", "", "Directory with shader sources (empty for built-in)")
	writeConfig := flag.String("write-config", "", "Write the default scene to this file and exit")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *writeConfig != "" {
		if err := scene.Save(*writeConfig, scene.Default()); err != nil {
			log.Fatalf("Failed to write scene: %v", err)
		}
		logger.Info("wrote default scene", "path", *writeConfig)
		return
	}

	cfg, err := scene.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	logger.Debug("scene loaded", "path", *configPath, "objects", len(cfg.Objects))

	v, err := viewer.New(viewer.Options{
		Width:     *width,
		Height:    *height,
		Title:     "Go-Garden",
		VSync:     *vsync,
		ShaderDir: *shaderDir,
		Scene:     cfg,
		Logger:    logger,
	})
	if err != nil {
		log.Fatalf("Failed to initialize viewer: %v", err)
	}

	v.Run()
}
