package service

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurifrl/cockpit/pkg/config"
	"github.com/yurifrl/cockpit/pkg/models"
	"github.com/yurifrl/cockpit/pkg/plan"
)

const dump = `[
  {"id": "1", "type": "payable", "amount": 30000, "fee": 1140, "net": 28860,
   "movement_object": {"type": "credit"}, "payment_date": {"actual": "2018-03-01"}},
  {"id": "2", "type": "transfer", "amount": -10000, "fee": -367, "net": -10367,
   "movement_object": {"type": "ted"}, "payment_date": {"actual": "2018-03-05"}}
]`

func newProcessor(output string) *Processor {
	return NewProcessor(config.New(output), log.New(io.Discard))
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestFormat(t *testing.T) {
	rows, err := newProcessor("").Format([]byte(dump), "ops.json")
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, models.KindCredit, rows[0].Kind)
	assert.Equal(t, models.KindTED, rows[1].Kind)
}

func TestProcessFileNextToInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "recipient.json")
	require.NoError(t, os.WriteFile(input, []byte(dump), 0o644))

	out, err := newProcessor("").ProcessFile(input)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "recipient-cockpit.csv"), out)
	assert.Len(t, readCSV(t, out), 3)
}

func TestProcessDirectory(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(in, "a.json"), []byte(dump), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(in, "broken.json"), []byte("{"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(in, "nested"), 0o755))

	require.NoError(t, newProcessor(out).ProcessDirectory(in))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a-cockpit.csv", entries[0].Name())
}

func TestProcessDirectoryMissing(t *testing.T) {
	err := newProcessor("").ProcessDirectory(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorContains(t, err, "error reading directory")
}

func TestProcessPlan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "re_1.json"), []byte(dump), 0o644))
	planPath := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(planPath, []byte(`output: `+filepath.Join(dir, "out")+`
format: xlsx
recipients:
  - id: re_1
    file: re_1.json
  - id: re_2
    file: missing.json
`), 0o644))

	p, err := plan.Load(planPath)
	require.NoError(t, err)

	err = newProcessor("").ProcessPlan(p)
	assert.ErrorContains(t, err, "1 of 2 recipients failed")

	_, statErr := os.Stat(filepath.Join(dir, "out", "re_1-cockpit.xlsx"))
	assert.NoError(t, statErr)
}

func TestProcessFileWithFilter(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "recipient.json")
	require.NoError(t, os.WriteFile(input, []byte(dump), 0o644))

	onlyTED := func(r models.FormattedRow) bool { return r.Kind == models.KindTED }
	out, err := newProcessor("").WithFilter(onlyTED).ProcessFile(input)
	require.NoError(t, err)

	records := readCSV(t, out)
	require.Len(t, records, 2)
	assert.Equal(t, "2", records[1][0])
}
