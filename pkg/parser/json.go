package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/yurifrl/cockpit/pkg/models"
)

// envelope is the paginated shape some endpoints wrap operations in.
type envelope struct {
	Operations []models.RawOperation `json:"operations" yaml:"operations"`
}

// ParseJSON accepts either a bare array of operations or an object with an
// "operations" array.
func (p *Parser) ParseJSON(data []byte) ([]models.RawOperation, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	if trimmed[0] == '[' {
		var ops []models.RawOperation
		if err := json.Unmarshal(trimmed, &ops); err != nil {
			return nil, fmt.Errorf("failed to decode operations: %w", err)
		}
		return ops, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("failed to decode operations: %w", err)
	}
	if env.Operations == nil {
		p.logger.Debug("document has no operations key")
		return []models.RawOperation{}, nil
	}
	return env.Operations, nil
}
