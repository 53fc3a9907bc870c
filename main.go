package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/pterm/pterm"

	"github.com/thushan/scout/internal/app"
	"github.com/thushan/scout/internal/config"
	"github.com/thushan/scout/internal/env"
	"github.com/thushan/scout/internal/logger"
	"github.com/thushan/scout/internal/util"
	"github.com/thushan/scout/internal/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	vlog := log.New(log.Writer(), "", 0)
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.PrintVersionInfo(true, vlog)
		return 0
	}

	if !env.GetEnvBoolOrDefault("SCOUT_QUIET", false) {
		version.PrintVersionInfo(false, vlog)
	}

	if !util.ShouldUseColors() {
		pterm.DisableColor()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return app.ExitFailure
	}

	logInstance, styledLogger, cleanup, err := logger.NewWithTheme(buildLoggerConfig(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialise logger: %v\n", err)
		return app.ExitFailure
	}
	defer cleanup()

	slog.SetDefault(logInstance)

	styledLogger.Info("Initialising", "version", version.Version, "pid", os.Getpid())

	application := app.New(cfg, styledLogger, os.Stdout)
	return application.Run(context.Background())
}

func buildLoggerConfig(cfg *config.Config) *logger.Config {
	return &logger.Config{
		Level:      cfg.Logging.Level,
		FileOutput: cfg.Logging.FileOutput,
		LogDir:     cfg.Logging.Dir,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
		Theme:      cfg.Logging.Theme,
	}
}
