package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/yurifrl/cockpit/pkg/models"
)

// ParseYAML is the YAML counterpart of ParseJSON, mostly used for
// hand-written fixtures.
func (p *Parser) ParseYAML(data []byte) ([]models.RawOperation, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to read yaml: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var ops []models.RawOperation
		if err := root.Decode(&ops); err != nil {
			return nil, fmt.Errorf("failed to decode operations: %w", err)
		}
		return ops, nil
	}

	var env envelope
	if err := root.Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode operations: %w", err)
	}
	if env.Operations == nil {
		return []models.RawOperation{}, nil
	}
	return env.Operations, nil
}
