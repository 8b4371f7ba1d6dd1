package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/cockpit/pkg/config"
	"github.com/yurifrl/cockpit/pkg/export"
	"github.com/yurifrl/cockpit/pkg/models"
	"github.com/yurifrl/cockpit/pkg/operations"
	"github.com/yurifrl/cockpit/pkg/parser"
	"github.com/yurifrl/cockpit/pkg/plan"
)

const outputSuffix = "-cockpit"

type Processor struct {
	config *config.Config
	logger *log.Logger
	parser *parser.Parser
	filter export.FilterFunc[models.FormattedRow]
}

func NewProcessor(config *config.Config, logger *log.Logger) *Processor {
	return &Processor{
		config: config,
		logger: logger,
		parser: parser.New(logger),
	}
}

// WithFilter makes every export written by p keep only the rows accepted by
// filter. A nil filter keeps every row.
func (p *Processor) WithFilter(filter export.FilterFunc[models.FormattedRow]) *Processor {
	p.filter = filter
	return p
}

// Format decodes a dump and formats its operations.
func (p *Processor) Format(data []byte, filename string) ([]models.FormattedRow, error) {
	ops, err := p.parser.ProcessBytes(data, filename)
	if err != nil {
		return nil, err
	}
	rows := operations.FormatOperations(ops)
	p.logger.Debug("formatted operations", "file", filename, "rows", len(rows))
	return rows, nil
}

// FormatFile reads path and formats its operations.
func (p *Processor) FormatFile(path string) ([]models.FormattedRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return p.Format(data, filepath.Base(path))
}

func (p *Processor) ProcessDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("error reading directory: %w", err)
	}

	for _, entry := range entries {
		if err := p.processEntry(dir, entry); err != nil {
			p.logger.Error("failed to process entry", "file", entry.Name(), "error", err)
		}
	}

	return nil
}

func (p *Processor) processEntry(dir string, entry os.DirEntry) error {
	if entry.IsDir() || !parser.Supported(entry.Name()) {
		return nil
	}

	_, err := p.ProcessFile(filepath.Join(dir, entry.Name()))
	return err
}

// ProcessFile formats one dump and writes the export next to it, or into
// the configured output directory. It returns the written path.
func (p *Processor) ProcessFile(inputPath string) (string, error) {
	p.logger.Info("processing file", "path", inputPath)

	rows, err := p.FormatFile(inputPath)
	if err != nil {
		return "", err
	}

	outFile := p.determineOutputPath(inputPath, filepath.Base(inputPath))
	if err := p.write(rows, outFile); err != nil {
		return "", err
	}

	p.logger.Info("processed file successfully", "input", inputPath, "output", outFile, "rows", len(rows))
	return outFile, nil
}

// ProcessPlan exports every recipient of pl. A failing recipient is logged
// and skipped; the number of failures is reported at the end.
func (p *Processor) ProcessPlan(pl *plan.Plan) error {
	outDir := pl.Output
	if outDir == "" {
		outDir = p.config.GetOutputPath()
	}
	format := p.format()
	if pl.Format != "" {
		f, err := export.ParseFormat(pl.Format)
		if err != nil {
			return err
		}
		format = f
	}

	failed := 0
	for _, r := range pl.Recipients {
		path, err := pl.Path(r)
		if err != nil {
			return err
		}

		rows, err := p.FormatFile(path)
		if err != nil {
			p.logger.Error("failed to process recipient", "recipient", r.ID, "file", path, "error", err)
			failed++
			continue
		}

		outFile := filepath.Join(outDir, r.ID+outputSuffix+"."+string(format))
		if err := p.writeAs(format, rows, outFile); err != nil {
			p.logger.Error("failed to export recipient", "recipient", r.ID, "error", err)
			failed++
			continue
		}
		p.logger.Info("exported recipient", "recipient", r.ID, "output", outFile, "rows", len(rows))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d recipients failed", failed, len(pl.Recipients))
	}
	return nil
}

func (p *Processor) format() export.Format {
	if f, err := export.ParseFormat(p.config.Format); err == nil {
		return f
	}
	return export.FormatCSV
}

func (p *Processor) determineOutputPath(inputPath, fileName string) string {
	ext := filepath.Ext(fileName)
	baseName := strings.TrimSuffix(fileName, ext)
	name := baseName + outputSuffix + "." + string(p.format())
	if p.config.GetOutputPath() != "" {
		return filepath.Join(p.config.GetOutputPath(), name)
	}
	return filepath.Join(filepath.Dir(inputPath), name)
}

func (p *Processor) write(rows []models.FormattedRow, outputPath string) error {
	return p.writeAs(p.format(), rows, outputPath)
}

func (p *Processor) writeAs(format export.Format, rows []models.FormattedRow, outputPath string) error {
	data, err := export.Write(format, rows, p.filter)
	if err != nil {
		return fmt.Errorf("error exporting rows: %w", err)
	}
	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("error writing output file: %w", err)
	}
	return nil
}
