// Package classifier resolves the kind of a balance operation and splits it
// into outcoming and outgoing cash-flow legs.
//
// Every function in this package is pure: inputs are never mutated, nothing
// is cached and malformed operations degrade into legs with nil amounts
// instead of errors.
package classifier

import "github.com/yurifrl/cockpit/pkg/models"

type strategy struct {
	outcoming func(models.RawOperation) models.Legs
	outgoing  func(models.RawOperation) models.Legs
}

var strategies = map[models.Kind]strategy{
	models.KindRefund:         {RefundOrChargeBackOutcoming, RefundOrChargeBackOutgoing},
	models.KindChargeback:     {RefundOrChargeBackOutcoming, RefundOrChargeBackOutgoing},
	models.KindBoletoRefund:   {BoletoRefundFeeOutcoming, BoletoRefundFeeOutgoing},
	models.KindTED:            {TedTransferOutcoming, TedTransferOutgoing},
	models.KindInterRecipient: {InterRecipientTransferOutcoming, InterRecipientTransferOutgoing},
	models.KindCredit:         {CreditOutcoming, CreditOutgoing},
	models.KindOther:          {CreditOutcoming, CreditOutgoing},
}

// IsRefundOrChargeBack reports whether the movement object is a chargeback
// or a refund.
func IsRefundOrChargeBack(op models.RawOperation) bool {
	switch op.MovementType() {
	case models.MovementChargeback, models.MovementRefund:
		return true
	}
	return false
}

// IsBoletoRefund reports whether the operation refunds a boleto.
func IsBoletoRefund(op models.RawOperation) bool {
	return op.Type == models.TypeRefund && op.MovementType() == models.MovementBoleto
}

// IsTedTransfer reports whether the operation is a TED bank transfer.
func IsTedTransfer(op models.RawOperation) bool {
	return op.Type == models.TypeTransfer && op.MovementType() == models.MovementTED
}

// IsInterRecipientTransfer reports whether funds moved between two recipients.
func IsInterRecipientTransfer(op models.RawOperation) bool {
	return op.Type == models.TypeTransfer && op.MovementType() == models.MovementInterRecipient
}

// IsCredit reports whether the operation is explicitly credit bearing. It
// does not take part in precedence: anything the other predicates reject is
// decomposed as a credit regardless.
func IsCredit(op models.RawOperation) bool {
	return op.Type == models.TypePayable || op.MovementType() == models.MovementCredit
}

// Resolve returns the single kind of op. Precedence is refund/chargeback,
// boleto refund, TED, inter-recipient, then credit; operations that are not
// credit bearing resolve to KindOther and share the credit decomposition.
func Resolve(op models.RawOperation) models.Kind {
	switch {
	case IsRefundOrChargeBack(op):
		if op.MovementType() == models.MovementChargeback {
			return models.KindChargeback
		}
		return models.KindRefund
	case IsBoletoRefund(op):
		return models.KindBoletoRefund
	case IsTedTransfer(op):
		return models.KindTED
	case IsInterRecipientTransfer(op):
		return models.KindInterRecipient
	case IsCredit(op):
		return models.KindCredit
	default:
		return models.KindOther
	}
}

// Classify resolves op and builds both of its sides.
func Classify(op models.RawOperation) models.ClassifiedOperation {
	kind := Resolve(op)
	s := strategies[kind]
	return models.ClassifiedOperation{
		Kind:      kind,
		Outcoming: s.outcoming(op),
		Outgoing:  s.outgoing(op),
	}
}

// BuildOutcoming returns the funds leaving the pending balance.
func BuildOutcoming(op models.RawOperation) models.Legs {
	return strategies[Resolve(op)].outcoming(op)
}

// BuildOutgoing returns the funds credited or debited elsewhere.
func BuildOutgoing(op models.RawOperation) models.Legs {
	return strategies[Resolve(op)].outgoing(op)
}
