package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dtroode/gophkeeper-tui/internal/clipboard"
	"github.com/dtroode/gophkeeper-tui/internal/config"
	"github.com/dtroode/gophkeeper-tui/internal/logger"
	"github.com/dtroode/gophkeeper-tui/internal/model"
	"github.com/dtroode/gophkeeper-tui/internal/repository/memory"
	"github.com/dtroode/gophkeeper-tui/internal/seed"
	"github.com/dtroode/gophkeeper-tui/internal/service"
	"github.com/dtroode/gophkeeper-tui/internal/tui"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	logOut, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	defer closeLog()
	logger := logger.New(cfg.LogLevel, logOut)
	logger.Info("starting", "version", buildVersion, "date", buildDate, "commit", buildCommit)

	initial, err := loadSeed(cfg.Seed, time.Now())
	if err != nil {
		logger.Fatal("failed to load seed", "error", err)
	}

	credentials := service.NewCredentials(memory.NewCredentialRepository(), logger)
	credentials.Initialize(ctx, initial)

	m := tui.New(ctx, credentials, clipboard.NewSystem(), logger, tui.Options{
		ToastDuration: cfg.UI.ToastDuration,
		DateLayout:    cfg.UI.DateLayout,
		MaskChar:      cfg.UI.MaskChar,
	})

	if err := tui.Run(ctx, m, cfg.UI.AltScreen); err != nil {
		logger.Error("tui exited with error", "error", err)
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}

	logger.Info("session ended")
}

// openLog returns the log destination. The terminal belongs to the UI, so
// logs are discarded unless a file is configured.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func loadSeed(cfg config.Seed, now time.Time) ([]model.Credential, error) {
	var credentials []model.Credential
	if cfg.File != "" {
		fromFile, err := seed.LoadFile(cfg.File, now)
		if err != nil {
			return nil, err
		}
		credentials = append(credentials, fromFile...)
	}
	if cfg.Demo {
		credentials = append(credentials, seed.Demo(now)...)
	}
	return credentials, nil
}
