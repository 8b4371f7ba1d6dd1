package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yurifrl/cockpit/pkg/config"
	"github.com/yurifrl/cockpit/pkg/export"
	"github.com/yurifrl/cockpit/pkg/labels"
	"github.com/yurifrl/cockpit/pkg/models"
	"github.com/yurifrl/cockpit/pkg/parser"
	"github.com/yurifrl/cockpit/pkg/plan"
	"github.com/yurifrl/cockpit/pkg/render"
	"github.com/yurifrl/cockpit/pkg/service"
	"github.com/yurifrl/cockpit/pkg/summary"
)

var (
	cliFilters filters
	cfgFile    string
)

func newLogger(level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "cockpit",
		Level:           lvl,
	})
}

// setup loads configuration (config file + flag overrides) and the logger.
func setup(cmd *cobra.Command) (*config.Config, *log.Logger, error) {
	cfg, err := config.Build(cfgFile, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	return cfg, newLogger(cfg.LogLevel), nil
}

// collect formats every dump matching pattern. Directories are walked one
// level deep; unreadable files are logged and skipped.
func collect(processor *service.Processor, logger *log.Logger, pattern string) ([]models.FormattedRow, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files found matching pattern %s", pattern)
	}

	var files []string
	for _, match := range matches {
		fileInfo, err := os.Stat(match)
		if err != nil {
			logger.Warn("failed to stat file", "error", err, "file", match)
			continue
		}
		if !fileInfo.IsDir() {
			files = append(files, match)
			continue
		}
		entries, err := os.ReadDir(match)
		if err != nil {
			logger.Warn("failed to read directory", "error", err, "dir", match)
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() && parser.Supported(entry.Name()) {
				files = append(files, filepath.Join(match, entry.Name()))
			}
		}
	}

	var rows []models.FormattedRow
	for _, file := range files {
		formatted, err := processor.FormatFile(file)
		if err != nil {
			logger.Warn("failed to process file", "error", err, "file", file)
			continue
		}
		rows = append(rows, formatted...)
	}
	return cliFilters.apply(rows), nil
}

var rootCmd = &cobra.Command{
	Use:   "cockpit",
	Short: "Balance operations classifier and reconciliation table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Show help when no subcommand is provided
		return cmd.Help()
	},
}

var formatCmd = &cobra.Command{
	Use:   "format [flags] <input_path>",
	Short: "Classify operation dumps and print the operations table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		l, err := labels.LoadOrDefault(cfg.LabelsFile)
		if err != nil {
			return err
		}

		rows, err := collect(service.NewProcessor(cfg, logger), logger, args[0])
		if err != nil {
			return err
		}

		if dump, _ := cmd.Flags().GetBool("dump"); dump {
			pp.Fprintln(os.Stderr, rows)
		}

		out := cmd.OutOrStdout()
		switch as, _ := cmd.Flags().GetString("as"); as {
		case "table":
			fmt.Fprintln(out, render.Table(rows, l))
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		case "csv":
			data, err := export.CSV(rows, nil)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		default:
			return fmt.Errorf("unknown output %q: want table, json or csv", as)
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [flags] <input_path>",
	Short: "Write CSV or XLSX exports for operation dumps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		processor := service.NewProcessor(cfg, logger).WithFilter(cliFilters.toFilterFunc())

		info, err := os.Stat(args[0])
		if err != nil {
			return err
		}
		if info.IsDir() {
			return processor.ProcessDirectory(args[0])
		}
		outFile, err := processor.ProcessFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), outFile)
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary [flags] <input_path>",
	Short: "Print totals per operation kind",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		rows, err := collect(service.NewProcessor(cfg, logger), logger, args[0])
		if err != nil {
			return err
		}

		s := summary.Build(rows)
		logger.Debug("built summary", "rows", s.Rows, "suppressed", s.Suppressed)

		titleStyle := lipgloss.NewStyle().Bold(true)
		mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // gray

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%d operation(s)", s.Rows)))
		for _, k := range s.Kinds() {
			fmt.Fprintf(out, "  %-16s %d\n", k, s.Count(k))
		}
		fmt.Fprintf(out, "Outcoming: %s\n", render.Currency(s.Outcoming))
		fmt.Fprintf(out, "Outgoing:  %s\n", render.Currency(s.Outgoing))
		fmt.Fprintf(out, "Net:       %s\n", render.Net(s.Net))
		if s.Suppressed > 0 {
			fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("%d side(s) without amounts left out of the totals", s.Suppressed)))
		}
		return nil
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch <plan_file>",
	Short: "Export every recipient listed in a YAML plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		p, err := plan.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Plan %s\n", args[0])
		p.Print(cmd.OutOrStdout())
		return service.NewProcessor(cfg, logger).WithFilter(cliFilters.toFilterFunc()).ProcessPlan(p)
	},
}

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Print the label set in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := setup(cmd)
		if err != nil {
			return err
		}
		l, err := labels.LoadOrDefault(cfg.LabelsFile)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		defer enc.Close()
		return enc.Encode(l.Spec())
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default is config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("labels", "", "Labels YAML file (default: built-in pt-BR)")

	// Filter flags (global)
	rootCmd.PersistentFlags().StringVar(&cliFilters.startDate, "start", "", "Start payment date (YYYY/MM/DD)")
	rootCmd.PersistentFlags().StringVar(&cliFilters.endDate, "end", "", "End payment date (YYYY/MM/DD)")
	rootCmd.PersistentFlags().Float64Var(&cliFilters.minAmount, "min", 0, "Minimum net amount")
	rootCmd.PersistentFlags().Float64Var(&cliFilters.maxAmount, "max", 0, "Maximum net amount")
	rootCmd.PersistentFlags().StringVar(&cliFilters.kind, "kind", "", "Only operations of this kind")

	formatCmd.Flags().String("as", "table", "Output: table, json or csv")
	formatCmd.Flags().Bool("dump", false, "Pretty-print formatted rows to stderr")

	exportCmd.Flags().StringP("output", "o", "", "Output directory (default: same as input file)")
	exportCmd.Flags().String("format", "", "Export format: csv or xlsx")

	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(labelsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
