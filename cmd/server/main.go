package main

import (
	"os"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	"github.com/yurifrl/cockpit/pkg/config"
	"github.com/yurifrl/cockpit/pkg/labels"
	"github.com/yurifrl/cockpit/pkg/server"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "cockpit",
	})

	cfgFile := flag.StringP("config", "c", "", "Config file (default is config.yaml)")
	flag.String("addr", "", "Listen address (default 0.0.0.0:3000)")
	flag.String("labels", "", "Labels YAML file")
	flag.String("log-level", "", "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg, err := config.Build(*cfgFile, flag.CommandLine)
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	l, err := labels.LoadOrDefault(cfg.LabelsFile)
	if err != nil {
		logger.Fatal("failed to load labels", "err", err)
	}

	srv := server.New(cfg, l, logger)
	logger.Info("starting server", "addr", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
