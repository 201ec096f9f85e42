package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"lumen3d/internal/config"
	"lumen3d/internal/game"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", "lumen3d.yaml", "path to config file")
	scenePath := flag.String("scene", "", "scene file override")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *scenePath != "" {
		cfg.Scene.Path = *scenePath
	}

	g := game.New(cfg)
	g.Run()
}
