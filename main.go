package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	log "github.com/sirupsen/logrus"

	"yplus-tool/internal/cli"
	"yplus-tool/internal/config"
	"yplus-tool/internal/logging"
	"yplus-tool/ui"
)

func main() {
	cfg, err := cli.ParseFlags()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(1)
	}

	configPath := ""
	if cfg != nil {
		configPath = cfg.ConfigPath
	}

	settings, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := settings.LogLevel
	if cfg != nil && cfg.Verbose {
		level = "debug"
	}
	logger, err := logging.New(level, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// No flags provided or -gui = use GUI
	if cfg == nil || cfg.GUI {
		runGUI(settings, logger)
		return
	}

	// CLI mode
	cfg.ApplyDefaults(settings.Defaults)
	if _, err := cli.Run(*cfg, os.Stdout, logger); err != nil {
		os.Exit(1)
	}
}

func runGUI(settings config.Config, logger *log.Logger) {
	a := app.NewWithID("io.github.yplus-tool")
	logger.WithField("defaults", settings.Defaults).Debug("starting GUI")

	win := ui.BuildMainWindow(a, settings, logger)
	win.CenterOnScreen()
	win.ShowAndRun()
}
