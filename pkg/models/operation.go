package models

// Operation type tags as sent by the balance operations endpoint.
const (
	TypeTransfer   = "transfer"
	TypeRefund     = "refund"
	TypeChargeback = "chargeback"
	TypePayable    = "payable"
)

// Movement object type tags.
const (
	MovementTED            = "ted"
	MovementInterRecipient = "inter_recipient"
	MovementBoleto         = "boleto"
	MovementChargeback     = "chargeback"
	MovementRefund         = "refund"
	MovementCredit         = "credit"
)

// RawOperation is a single ledger movement as returned by the balance
// operations endpoint. Amount and Fee are nil when the payload omits them.
type RawOperation struct {
	ID             string          `json:"id" yaml:"id"`
	Type           string          `json:"type" yaml:"type"`
	MovementObject *MovementObject `json:"movement_object,omitempty" yaml:"movement_object,omitempty"`
	Amount         *int64          `json:"amount,omitempty" yaml:"amount,omitempty"`
	Fee            *int64          `json:"fee,omitempty" yaml:"fee,omitempty"`
	Net            int64           `json:"net" yaml:"net"`
	Installment    *int            `json:"installment,omitempty" yaml:"installment,omitempty"`
	TransactionID  string          `json:"transaction_id,omitempty" yaml:"transaction_id,omitempty"`
	SourceID       string          `json:"source_id,omitempty" yaml:"source_id,omitempty"`
	TargetID       string          `json:"target_id,omitempty" yaml:"target_id,omitempty"`
	PaymentDate    PaymentDate     `json:"payment_date" yaml:"payment_date"`
}

// MovementObject describes what originated the operation.
type MovementObject struct {
	ID            string `json:"id,omitempty" yaml:"id,omitempty"`
	Type          string `json:"type" yaml:"type"`
	TransactionID string `json:"transaction_id,omitempty" yaml:"transaction_id,omitempty"`
	Installment   *int   `json:"installment,omitempty" yaml:"installment,omitempty"`
}

// PaymentDate holds the settlement date. Original is only set when the
// payable was anticipated.
type PaymentDate struct {
	Actual   string `json:"actual" yaml:"actual"`
	Original string `json:"original,omitempty" yaml:"original,omitempty"`
}

// Anticipated reports whether the payment date was moved forward.
func (d PaymentDate) Anticipated() bool {
	return d.Original != ""
}

// MovementType returns the movement object type or "" when it is missing.
func (o RawOperation) MovementType() string {
	if o.MovementObject == nil {
		return ""
	}
	return o.MovementObject.Type
}

// Cents returns a pointer to v, for building operations and legs in place.
func Cents(v int64) *int64 {
	return &v
}
