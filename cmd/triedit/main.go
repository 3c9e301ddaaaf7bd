// Package main is the entry point for the triedit triangle editor.
package main

import (
	"fmt"
	"os"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/triedit/internal/app"
	"github.com/Faultbox/triedit/internal/config"
	"github.com/Faultbox/triedit/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	fileCfg := logger.FileConfig{
		Path:       cfg.Logging.LogFile,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== triedit ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		fatal("failed to start editor", err)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		fatal("editor error", err)
	}

	logger.Info("editor closed normally")
}

// fatal logs err and shows it in a native message box before exiting.
func fatal(msg string, err error) {
	logger.Error(msg, zap.Error(err))
	dialog.Message("%s: %v", msg, err).Title(app.Title).Error()
	logger.Sync()
	os.Exit(1)
}
