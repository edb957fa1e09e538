package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/adb/jackscope/internal/config"
	"github.com/adb/jackscope/internal/logging"
	"github.com/adb/jackscope/internal/shell"
)

// Command-line arguments are deliberately not read or forwarded to the toolkit.
func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Default()
	if err != nil {
		panic(err)
	}

	logger, err := logging.New(cfg.Application.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Starting",
		zap.String("name", cfg.Application.Name),
		zap.String("version", cfg.Application.Version))

	app, err := shell.New(cfg, logger, os.Stdout)
	if err != nil {
		logger.Fatal("Failed to init GUI application", zap.Error(err))
	}

	status, err := app.Run()
	if err != nil {
		logger.Fatal("Failed to init GUI application", zap.Error(err))
	}
	return status
}
