package main

import (
	"context"
	"embed"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/avyukov/minesolver/internal/app"
	"github.com/avyukov/minesolver/internal/config"
	"github.com/avyukov/minesolver/internal/solver"
)

//go:embed migrations
var migrations embed.FS

// setupEngineLog points the inference engine's logrus logger at a
// rotating debug file when ENGINE_LOG_FILE is set; otherwise the
// engine stays quiet above warning level.
func setupEngineLog() {
	solver.Log.SetLevel(logrus.WarnLevel)
	path, ok := os.LookupEnv("ENGINE_LOG_FILE")
	if !ok {
		return
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		solver.Log.Warn("unable to create engine log file hook: ", err)
		return
	}
	solver.Log.SetLevel(logrus.DebugLevel)
	solver.Log.SetOutput(os.Stderr)
	solver.Log.AddHook(hook)
}

func main() {
	var logger *slog.Logger
	if config.Development() {
		logger = slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}),
		)
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	setupEngineLog()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := app.New(logger, migrations).Start(ctx); err != nil {
		logger.Error("exit reason", slog.Any("error", err))
		os.Exit(1)
	}
}
