// Package main is the entry point for the interactive vessel viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/vesselcad/internal/config"
	"github.com/Faultbox/vesselcad/internal/logger"
	"github.com/Faultbox/vesselcad/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== VesselCAD Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// An optional positional argument names the document to open.
	docPath := ""
	if args := flag.Args(); len(args) > 0 {
		docPath = args[0]
	}

	app, err := viewer.New(cfg, docPath)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
