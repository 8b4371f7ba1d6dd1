// Package labels holds the human readable names shown next to operations.
//
// A Labels value is immutable once built: constructors copy every map they
// receive and accessors never hand out the internal maps.
package labels

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec is the on-disk (YAML) and constructor shape of a label set.
type Spec struct {
	Types                  map[string]string `yaml:"types" json:"types"`
	BulkAnticipationStatus map[string]string `yaml:"bulk_anticipation_status" json:"bulkAnticipationStatus"`
	BulkAnticipationType   map[string]string `yaml:"bulk_anticipation_type" json:"bulkAnticipationType"`
	Installment            string            `yaml:"installment" json:"installment"`
	From                   string            `yaml:"from" json:"from"`
	To                     string            `yaml:"to" json:"to"`
	AnticipationMessage    string            `yaml:"anticipation_message" json:"anticipationMessage"`
	NoData                 string            `yaml:"no_data" json:"noData"`
}

type Labels struct {
	spec Spec
}

// New builds a label set from spec.
func New(spec Spec) *Labels {
	spec.Types = maps.Clone(spec.Types)
	spec.BulkAnticipationStatus = maps.Clone(spec.BulkAnticipationStatus)
	spec.BulkAnticipationType = maps.Clone(spec.BulkAnticipationType)
	return &Labels{spec: spec}
}

// Load reads a YAML label file. Keys missing from the file keep their
// Default value.
func Load(path string) (*Labels, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read labels file: %w", err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse labels yaml: %w", err)
	}
	return Default().Merge(spec), nil
}

// LoadOrDefault loads path, or returns Default when path is empty.
func LoadOrDefault(path string) (*Labels, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Merge returns a new label set where every non-empty value in override
// replaces the receiver's.
func (l *Labels) Merge(override Spec) *Labels {
	spec := l.Spec()
	for k, v := range override.Types {
		spec.Types[k] = v
	}
	for k, v := range override.BulkAnticipationStatus {
		spec.BulkAnticipationStatus[k] = v
	}
	for k, v := range override.BulkAnticipationType {
		spec.BulkAnticipationType[k] = v
	}
	setIfEmpty := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setIfEmpty(&spec.Installment, override.Installment)
	setIfEmpty(&spec.From, override.From)
	setIfEmpty(&spec.To, override.To)
	setIfEmpty(&spec.AnticipationMessage, override.AnticipationMessage)
	setIfEmpty(&spec.NoData, override.NoData)
	return &Labels{spec: spec}
}

// Spec returns a copy of the label set.
func (l *Labels) Spec() Spec {
	spec := l.spec
	spec.Types = maps.Clone(l.spec.Types)
	spec.BulkAnticipationStatus = maps.Clone(l.spec.BulkAnticipationStatus)
	spec.BulkAnticipationType = maps.Clone(l.spec.BulkAnticipationType)
	if spec.Types == nil {
		spec.Types = map[string]string{}
	}
	if spec.BulkAnticipationStatus == nil {
		spec.BulkAnticipationStatus = map[string]string{}
	}
	if spec.BulkAnticipationType == nil {
		spec.BulkAnticipationType = map[string]string{}
	}
	return spec
}

// Type returns the label for an operation, movement or leg type. Unknown
// keys fall back to the key itself.
func (l *Labels) Type(key string) string {
	if v, ok := l.spec.Types[key]; ok {
		return v
	}
	return key
}

func (l *Labels) BulkAnticipationStatus(key string) string {
	if v, ok := l.spec.BulkAnticipationStatus[key]; ok {
		return v
	}
	return key
}

func (l *Labels) BulkAnticipationType(key string) string {
	if v, ok := l.spec.BulkAnticipationType[key]; ok {
		return v
	}
	return key
}

func (l *Labels) Installment() string         { return l.spec.Installment }
func (l *Labels) From() string                { return l.spec.From }
func (l *Labels) To() string                  { return l.spec.To }
func (l *Labels) AnticipationMessage() string { return l.spec.AnticipationMessage }
func (l *Labels) NoData() string              { return l.spec.NoData }
