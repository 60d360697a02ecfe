// Command mapview opens a window over a directory of "<x>_<y>.<ext>" tile
// images. Drag with the left mouse button to pan, scroll to zoom, and press
// Home or R to scroll back to the origin.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/phanxgames/mapview"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("mapview", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file")
	dir := fs.String("dir", "", "tile directory (overrides tile_dir)")
	tileSize := fs.Float64("tile-size", 0, "world size of a tile edge (overrides tile_size)")
	logLevel := fs.String("log-level", "", "debug, info, warn or error (overrides log_level)")
	script := fs.String("script", "", "YAML input script to replay, then exit")
	debug := fs.Bool("debug", false, "log draw stats (implies -log-level debug)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := mapview.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = mapview.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if *dir != "" {
		cfg.TileDir = *dir
	}
	if *tileSize != 0 {
		cfg.TileSize = *tileSize
	}
	if *debug {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := mapview.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	scene := mapview.NewScene()
	scene.SetLogger(logger)
	scene.SetFS(os.DirFS(cfg.TileDir))
	cfg.Apply(scene)
	scene.NewCamera()

	if *script != "" {
		data, err := os.ReadFile(*script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := mapview.LoadTestScript(data)
		if err != nil {
			return err
		}
		scene.SetTestRunner(runner)
	}

	loader := &mapview.TileLoader{
		Dir:      ".",
		TileSize: cfg.TileSize,
		Lister:   mapview.FSLister{FS: os.DirFS(cfg.TileDir)},
		Spawner:  scene,
		Logger:   logger,
	}
	grid, err := loader.Load()
	if err != nil {
		return err
	}
	if len(grid.Placements) == 0 {
		logger.Warn("no tiles placed", zap.String("dir", cfg.TileDir))
	}

	return mapview.Run(scene, cfg.RunConfig())
}
