package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gameobjects-sim/internal/config"
	"gameobjects-sim/internal/scenefile"
	"gameobjects-sim/internal/world"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg := config.DefaultConfig()

	fs := flag.NewFlagSet("game", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Population, "population", cfg.Population, "built-in scene: "+strings.Join(world.Populations, ", "))
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "movement values are drawn from [0, scale)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = random)")
	fs.StringVar(&cfg.ScenePath, "scene", cfg.ScenePath, "load the scene from a YAML file")
	fs.BoolVar(&cfg.MoveAll, "move-all", cfg.MoveAll, "move every movable entity")
	fs.Var(logLevelFlag{&cfg.LogLevel}, "loglevel", "log level name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "err", err)
		return err
	}

	scene, err := loadScene(cfg, log)
	if err != nil {
		log.Error("failed to create scene", "err", err)
		return err
	}
	log.Info("scene ready", "entities", scene.Len(), "movables", len(scene.Movables()), "scale", cfg.Scale, "seed", cfg.Seed)

	deltas := world.NewUniformDeltas(cfg.Scale, cfg.Seed)
	if err := scene.Run(stdout, deltas, cfg.MoveAll); err != nil {
		log.Error("run failed", "err", err)
		return err
	}
	return nil
}

func loadScene(cfg *config.Config, log *slog.Logger) (*world.Scene, error) {
	if cfg.ScenePath != "" {
		return scenefile.LoadFile(cfg.ScenePath, log)
	}
	s, err := world.Populate(cfg.Population, log)
	if err != nil {
		return nil, fmt.Errorf("population: %w", err)
	}
	return s, nil
}
