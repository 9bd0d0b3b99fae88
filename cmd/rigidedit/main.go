package main

import (
	"flag"
	"log/slog"
	"os"

	"rigidedit/internal/app"
	"rigidedit/internal/config"
)

func main() {
	configPath := flag.String("config", "rigidedit.toml", "path to the editor preferences file")
	writeConfig := flag.Bool("write-config", false, "write the effective config to -config and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *writeConfig {
		if err := cfg.Save(*configPath); err != nil {
			slog.Error("write config", "error", err)
			os.Exit(1)
		}
		slog.Info("config written", "path", *configPath)
		return
	}

	a, err := app.New(cfg, logger)
	if err != nil {
		slog.Error("start editor", "error", err)
		os.Exit(1)
	}
	a.Run()
}
