package main

import (
	"fmt"
	"os"

	"github.com/juanjux/neme/internal/app"
	"github.com/juanjux/neme/internal/config"
	"github.com/juanjux/neme/internal/logger"
)

func main() {
	flags := &config.Flags{}
	args := flags.ParseFlags()

	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}

	configPath := ""
	if flags.ConfigFilePath != nil {
		configPath = *flags.ConfigFilePath
	}

	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		// The config falls back to defaults; report and keep going.
		fmt.Fprintf(os.Stderr, "%s: config warning: %v\n", config.AppName, err)
	}

	if err := logger.Init(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "%s: logger initialization failed: %v\n", config.AppName, err)
		os.Exit(1)
	}
	defer logger.Cleanup()

	logger.Infof("Starting %s...", config.AppName)
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	editorApp, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		logger.Cleanup()
		os.Exit(1)
	}

	if err := editorApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		logger.Cleanup()
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
