package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	"github.com/yurifrl/cockpit/pkg/config"
	"github.com/yurifrl/cockpit/pkg/service"
)

// pilot exports every operations dump in a directory, one file per dump.
func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "pilot",
	})

	flag.StringP("output", "o", "", "Output directory (default: same as input file)")
	flag.StringP("format", "f", "", "Export format: csv or xlsx")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		logger.Error("invalid usage", "args", args)
		fmt.Fprintf(os.Stderr, "Usage: pilot [-o output_dir] [-f csv|xlsx] <directory>\n")
		os.Exit(1)
	}

	cfg, err := config.Build("", flag.CommandLine)
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}
	processor := service.NewProcessor(cfg, logger)

	dir := args[0]
	if err := processor.ProcessDirectory(dir); err != nil {
		logger.Fatal("processing failed", "error", err)
	}
}
