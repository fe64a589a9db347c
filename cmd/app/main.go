package main

import (
	"context"
	"flag"
	"log"
	"os"

	"TradingHours/internal/di"
	"TradingHours/pkg/config"
	applogger "TradingHours/pkg/logger"
)

func main() {
	// Parse flags
	configPath := flag.String("config", config.DefaultPath, "config file path")
	flag.Parse()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	l, err := di.ProvideLogger(cfg)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg, l)
	if err != nil {
		l.Error("app initialization failed", applogger.Error(err))
		os.Exit(1)
	}

	// Run application (blocks until signal)
	if err := app.Run(context.Background()); err != nil {
		l.Error("app error", applogger.Error(err))
		os.Exit(1)
	}
}
