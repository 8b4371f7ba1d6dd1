package parser

import (
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/yurifrl/cockpit/pkg/models"
)

func TestProcessBytesJSONArray(t *testing.T) {
	content := []byte(`[
  {"id": "1", "type": "payable", "amount": 30000, "fee": 1140, "net": 28860,
   "movement_object": {"type": "credit", "installment": 1},
   "payment_date": {"actual": "2018-03-01T03:00:00.000Z"}},
  {"id": "2", "type": "transfer", "amount": -10000, "fee": -367, "net": -10367,
   "movement_object": {"type": "ted"},
   "payment_date": {"actual": "2018-03-05T03:00:00.000Z"}}
]`)

	parser := New(log.Default())
	ops, err := parser.ProcessBytes(content, "operations.json")
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}

	if len(ops) != 2 {
		t.Fatalf("Expected 2 operations, got %d", len(ops))
	}
	assertOperation(t, ops[0], "1", "payable", "credit", 30000, 1140)
	assertOperation(t, ops[1], "2", "transfer", "ted", -10000, -367)
	if ops[0].MovementObject.Installment == nil || *ops[0].MovementObject.Installment != 1 {
		t.Errorf("Expected installment 1, got %v", ops[0].MovementObject.Installment)
	}
}

func TestProcessBytesJSONEnvelope(t *testing.T) {
	content := []byte(`{"operations": [{"id": "7", "type": "refund", "amount": -5000, "fee": 200, "net": -5200,
  "movement_object": {"type": "boleto"}, "payment_date": {"actual": "2018-03-04"}}]}`)

	ops, err := New(log.Default()).ProcessBytes(content, "page-1.JSON")
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}
	if len(ops) != 1 {
		t.Fatalf("Expected 1 operation, got %d", len(ops))
	}
	assertOperation(t, ops[0], "7", "refund", "boleto", -5000, 200)
}

func TestProcessBytesMissingFields(t *testing.T) {
	content := []byte(`[{"id": "9", "type": "fee_collection", "payment_date": {"actual": "2018-03-07"}}]`)

	ops, err := New(log.Default()).ProcessBytes(content, "ops.json")
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}
	if ops[0].Amount != nil || ops[0].Fee != nil || ops[0].MovementObject != nil {
		t.Errorf("Expected absent fields to stay nil, got %+v", ops[0])
	}
}

func TestProcessBytesYAML(t *testing.T) {
	content := []byte(`
- id: "3"
  type: transfer
  amount: 2500
  fee: 0
  net: -2500
  source_id: re_source
  target_id: re_target
  movement_object:
    type: inter_recipient
  payment_date:
    actual: "2018-03-06"
    original: "2018-04-06"
`)

	ops, err := New(log.Default()).ProcessBytes(content, "ops.yaml")
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}
	if len(ops) != 1 {
		t.Fatalf("Expected 1 operation, got %d", len(ops))
	}
	assertOperation(t, ops[0], "3", "transfer", "inter_recipient", 2500, 0)
	if ops[0].SourceID != "re_source" || ops[0].TargetID != "re_target" {
		t.Errorf("Unexpected counterparts: %q %q", ops[0].SourceID, ops[0].TargetID)
	}
	if !ops[0].PaymentDate.Anticipated() {
		t.Errorf("Expected anticipated payment date, got %+v", ops[0].PaymentDate)
	}
}

func TestProcessBytesYAMLEnvelope(t *testing.T) {
	content := []byte(`operations:
  - id: "4"
    type: chargeback
    amount: -8000
    fee: -300
    net: -7700
    movement_object: {type: chargeback}
`)

	ops, err := New(log.Default()).ProcessBytes(content, "ops.yml")
	if err != nil {
		t.Fatalf("ProcessBytes failed: %v", err)
	}
	if len(ops) != 1 {
		t.Fatalf("Expected 1 operation, got %d", len(ops))
	}
	assertOperation(t, ops[0], "4", "chargeback", "chargeback", -8000, -300)
}

func TestProcessBytesErrors(t *testing.T) {
	parser := New(log.Default())

	if _, err := parser.ProcessBytes([]byte(`[]`), "ops.xls"); !errors.Is(err, ErrUnknownFileType) {
		t.Errorf("Expected ErrUnknownFileType, got %v", err)
	}
	if _, err := parser.ProcessBytes([]byte(`   `), "ops.json"); err == nil {
		t.Error("Expected error for empty document")
	}
	if _, err := parser.ProcessBytes([]byte(`[{"amount": "abc"}]`), "ops.json"); err == nil {
		t.Error("Expected error for invalid amount")
	}
}

func TestSupported(t *testing.T) {
	for name, want := range map[string]bool{
		"a.json": true,
		"a.YML":  true,
		"a.yaml": true,
		"a.csv":  false,
		"a":      false,
	} {
		if got := Supported(name); got != want {
			t.Errorf("Supported(%q) = %v, want %v", name, got, want)
		}
	}
}

func assertOperation(t *testing.T, op models.RawOperation, id, typ, movement string, amount, fee int64) {
	t.Helper()
	if op.ID != id || op.Type != typ || op.MovementType() != movement ||
		op.Amount == nil || *op.Amount != amount || op.Fee == nil || *op.Fee != fee {
		t.Errorf("Operation mismatch:\nExpected: id=%s, type=%s, movement=%s, amount=%d, fee=%d\nGot: %+v",
			id, typ, movement, amount, fee, op)
	}
}
