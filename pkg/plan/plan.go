package plan

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptyPlan is returned when a plan lists no recipients.
var ErrEmptyPlan = errors.New("plan has no recipients")

// Plan is a batch of operation dumps, one per recipient.
type Plan struct {
	Output     string      `yaml:"output"`
	Format     string      `yaml:"format"`
	Recipients []Recipient `yaml:"recipients"`

	dir string
}

type Recipient struct {
	ID   string `yaml:"id"`
	File string `yaml:"file"`
}

func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(p.Recipients) == 0 {
		return nil, ErrEmptyPlan
	}
	for i, r := range p.Recipients {
		if r.ID == "" || r.File == "" {
			return nil, fmt.Errorf("recipient %d: id and file are required", i+1)
		}
	}
	p.dir = filepath.Dir(path)
	return &p, nil
}

// Path resolves a recipient's file: "~/" expands to the home directory and
// relative paths are taken from the plan file's directory.
func (p *Plan) Path(r Recipient) (string, error) {
	if strings.HasPrefix(r.File, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, r.File[2:]), nil
	}
	if filepath.IsAbs(r.File) {
		return r.File, nil
	}
	return filepath.Join(p.dir, r.File), nil
}

func (p *Plan) Print(w io.Writer) {
	fmt.Fprintf(w, "Output: %s (%s)\n", p.Output, p.Format)
	for i, r := range p.Recipients {
		fmt.Fprintf(w, "[%d] recipient=%s file=%s\n", i+1, r.ID, r.File)
	}
}
