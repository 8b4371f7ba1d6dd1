package models

// LegType is the label attached to one side of a cash flow.
type LegType string

const (
	LegPayable LegType = "payable"
	LegMDR     LegType = "mdr"
	LegTEDFee  LegType = "tedFee"
)

// CashFlowLeg is a single amount on the outcoming or outgoing side of an
// operation. A nil Amount means the source field was missing.
type CashFlowLeg struct {
	Amount *int64  `json:"amount"`
	Type   LegType `json:"type"`
}

// NewLeg builds a leg, copying amount so the leg never aliases its source.
func NewLeg(amount *int64, t LegType) CashFlowLeg {
	if amount == nil {
		return CashFlowLeg{Type: t}
	}
	return CashFlowLeg{Amount: Cents(*amount), Type: t}
}

// Valid reports whether the leg carries an amount that can be displayed.
func (l CashFlowLeg) Valid() bool {
	return l.Amount != nil
}

// Value returns the amount or 0 when it is missing.
func (l CashFlowLeg) Value() int64 {
	if l.Amount == nil {
		return 0
	}
	return *l.Amount
}

// Legs is one side of a classified operation.
type Legs []CashFlowLeg

// Valid reports whether every leg on the side has an amount. A single
// invalid leg invalidates the whole side.
func (ls Legs) Valid() bool {
	for _, l := range ls {
		if !l.Valid() {
			return false
		}
	}
	return true
}

// Total sums the side. It returns false when the side is invalid.
func (ls Legs) Total() (int64, bool) {
	if !ls.Valid() {
		return 0, false
	}
	var total int64
	for _, l := range ls {
		total += *l.Amount
	}
	return total, true
}

// Kind is the semantic classification of an operation.
type Kind string

const (
	KindRefund         Kind = "refund"
	KindChargeback     Kind = "chargeback"
	KindBoletoRefund   Kind = "boleto_refund"
	KindTED            Kind = "ted"
	KindInterRecipient Kind = "inter_recipient"
	KindCredit         Kind = "credit"
	KindOther          Kind = "other"
)

// Kinds lists every kind in classification order.
var Kinds = []Kind{
	KindRefund,
	KindChargeback,
	KindBoletoRefund,
	KindTED,
	KindInterRecipient,
	KindCredit,
	KindOther,
}

// ClassifiedOperation is the cash-flow decomposition of one operation.
type ClassifiedOperation struct {
	Kind      Kind `json:"kind"`
	Outcoming Legs `json:"outcoming"`
	Outgoing  Legs `json:"outgoing"`
}

// FormattedRow is what the operations table and the exports consume.
type FormattedRow struct {
	ID            string      `json:"id"`
	Type          string      `json:"type"`
	MovementType  string      `json:"movementType"`
	Kind          Kind        `json:"kind"`
	Net           int64       `json:"net"`
	TransactionID string      `json:"transactionId,omitempty"`
	SourceID      string      `json:"sourceId,omitempty"`
	TargetID      string      `json:"targetId,omitempty"`
	PaymentDate   PaymentDate `json:"paymentDate"`
	Installment   *int        `json:"installment"`
	Outcoming     Legs        `json:"outcoming"`
	Outgoing      Legs        `json:"outgoing"`
}
