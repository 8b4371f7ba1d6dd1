package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/yurifrl/cockpit/pkg/models"
)

// ErrUnknownFileType is returned when a dump's extension is not supported.
var ErrUnknownFileType = errors.New("unknown file type")

type FileType string

const (
	OperationsJSON FileType = "operations_json"
	OperationsYAML FileType = "operations_yaml"
)

// Parser decodes balance operation dumps.
type Parser struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

// Supported reports whether filename looks like an operations dump.
func Supported(filename string) bool {
	return detectType(filename) != ""
}

// ProcessBytes decodes data according to the type implied by filename.
func (p *Parser) ProcessBytes(data []byte, filename string) ([]models.RawOperation, error) {
	fileType := detectType(filename)
	p.logger.Debug("detected file type", "type", fileType, "filename", filename)

	var (
		ops []models.RawOperation
		err error
	)
	switch fileType {
	case OperationsJSON:
		ops, err = p.ParseJSON(data)
	case OperationsYAML:
		ops, err = p.ParseYAML(data)
	default:
		p.logger.Debug("unknown file type", "filename", filename)
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	p.logger.Debug("decoded operations", "filename", filename, "count", len(ops))
	return ops, nil
}

func detectType(filename string) FileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return OperationsJSON
	case ".yaml", ".yml":
		return OperationsYAML
	}
	return ""
}
