package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurifrl/cockpit/pkg/models"
)

func intPtr(v int) *int { return &v }

func creditOperation() models.RawOperation {
	return models.RawOperation{
		ID:     "4928",
		Type:   models.TypePayable,
		Amount: models.Cents(30000),
		Fee:    models.Cents(1140),
		Net:    28860,
		MovementObject: &models.MovementObject{
			ID:            "1289",
			Type:          models.MovementCredit,
			TransactionID: "2405",
			Installment:   intPtr(1),
		},
		PaymentDate: models.PaymentDate{Actual: "2018-03-01T03:00:00.000Z"},
	}
}

func withMovement(op models.RawOperation, typ, movement string) models.RawOperation {
	op.Type = typ
	op.MovementObject = &models.MovementObject{Type: movement}
	return op
}

func leg(amount int64, t models.LegType) models.CashFlowLeg {
	return models.CashFlowLeg{Amount: models.Cents(amount), Type: t}
}

func TestIsRefundOrChargeBack(t *testing.T) {
	op := creditOperation()
	assert.False(t, IsRefundOrChargeBack(op))
	assert.True(t, IsRefundOrChargeBack(withMovement(op, op.Type, models.MovementChargeback)))
	assert.True(t, IsRefundOrChargeBack(withMovement(op, op.Type, models.MovementRefund)))
}

func TestRefundOrChargeBackLegs(t *testing.T) {
	assert.Equal(t, models.Legs{leg(100, models.LegMDR)},
		RefundOrChargeBackOutcoming(models.RawOperation{Fee: models.Cents(100)}))
	assert.Equal(t, models.Legs{leg(100, models.LegPayable)},
		RefundOrChargeBackOutgoing(models.RawOperation{Amount: models.Cents(100)}))
}

func TestIsTedTransfer(t *testing.T) {
	op := creditOperation()
	assert.False(t, IsTedTransfer(op))
	assert.True(t, IsTedTransfer(withMovement(op, models.TypeTransfer, models.MovementTED)))
	assert.False(t, IsTedTransfer(withMovement(op, models.TypeRefund, models.MovementTED)))
}

func TestZeroTransferAmount(t *testing.T) {
	assert.Equal(t, leg(0, models.LegPayable), ZeroTransferAmount())
}

func TestTedTransferOutgoing(t *testing.T) {
	op := models.RawOperation{Amount: models.Cents(100), Fee: models.Cents(115)}
	expected := models.Legs{
		leg(115, models.LegTEDFee),
		leg(100, models.LegPayable),
	}
	assert.Equal(t, expected, TedTransferOutgoing(op))
	assert.Equal(t, models.Legs{ZeroTransferAmount()}, TedTransferOutcoming(op))
}

func TestIsInterRecipientTransfer(t *testing.T) {
	op := creditOperation()
	assert.False(t, IsInterRecipientTransfer(op))
	assert.True(t, IsInterRecipientTransfer(withMovement(op, models.TypeTransfer, models.MovementInterRecipient)))
}

func TestInterRecipientTransferLegs(t *testing.T) {
	op := creditOperation()

	assert.Equal(t, models.Legs{leg(30000, models.LegPayable)}, InterRecipientTransferOutcoming(op))
	assert.Equal(t, models.Legs{leg(0, models.LegPayable)}, InterRecipientTransferOutgoing(op))

	op.Net = 0
	assert.Equal(t, models.Legs{leg(30000, models.LegPayable)}, InterRecipientTransferOutcoming(op))

	received := op
	received.Net = -28860
	assert.Equal(t, models.Legs{leg(0, models.LegPayable)}, InterRecipientTransferOutcoming(received))
	assert.Equal(t, models.Legs{leg(30000, models.LegPayable)}, InterRecipientTransferOutgoing(received))
}

func TestInterRecipientDirectionIgnoresAmountSign(t *testing.T) {
	op := withMovement(creditOperation(), models.TypeTransfer, models.MovementInterRecipient)
	op.Amount = models.Cents(-500)
	op.Net = 10

	assert.Equal(t, models.Legs{leg(-500, models.LegPayable)}, BuildOutcoming(op))
	assert.Equal(t, models.Legs{ZeroTransferAmount()}, BuildOutgoing(op))
}

func TestIsBoletoRefund(t *testing.T) {
	op := creditOperation()
	assert.False(t, IsBoletoRefund(op))
	assert.True(t, IsBoletoRefund(withMovement(op, models.TypeRefund, models.MovementBoleto)))
	assert.False(t, IsBoletoRefund(withMovement(op, models.TypeTransfer, models.MovementBoleto)))
}

func TestBoletoRefundLegs(t *testing.T) {
	assert.Equal(t, models.Legs{leg(100, models.LegTEDFee)},
		BoletoRefundFeeOutgoing(models.RawOperation{Fee: models.Cents(100)}))
	assert.Equal(t, models.Legs{leg(123, models.LegPayable)},
		BoletoRefundFeeOutcoming(models.RawOperation{Amount: models.Cents(123)}))
}

func TestIsCredit(t *testing.T) {
	assert.True(t, IsCredit(creditOperation()))
	assert.False(t, IsCredit(withMovement(creditOperation(), "not-payable", "not-credit")))
}

func TestCreditLegs(t *testing.T) {
	op := creditOperation()
	assert.Equal(t, models.Legs{leg(30000, models.LegPayable)}, CreditOutcoming(op))
	assert.Equal(t, models.Legs{leg(1140, models.LegMDR)}, CreditOutgoing(op))
	assert.Equal(t, CreditOutcoming(op), BuildOutcoming(op))
	assert.Equal(t, CreditOutgoing(op), BuildOutgoing(op))
}

func TestResolve(t *testing.T) {
	base := creditOperation()
	tests := []struct {
		name string
		op   models.RawOperation
		want models.Kind
	}{
		{"credit", base, models.KindCredit},
		{"refund", withMovement(base, models.TypeRefund, models.MovementRefund), models.KindRefund},
		{"chargeback", withMovement(base, models.TypeChargeback, models.MovementChargeback), models.KindChargeback},
		{"boleto refund", withMovement(base, models.TypeRefund, models.MovementBoleto), models.KindBoletoRefund},
		{"ted", withMovement(base, models.TypeTransfer, models.MovementTED), models.KindTED},
		{"inter recipient", withMovement(base, models.TypeTransfer, models.MovementInterRecipient), models.KindInterRecipient},
		{"unknown", withMovement(base, "fee_collection", "fee"), models.KindOther},
		{"missing movement", models.RawOperation{Type: models.TypeTransfer}, models.KindOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.op))
		})
	}
}

func TestPredicatesAreExclusive(t *testing.T) {
	types := []string{models.TypeTransfer, models.TypeRefund, models.TypeChargeback, models.TypePayable, "fee_collection", ""}
	movements := []string{
		models.MovementTED, models.MovementInterRecipient, models.MovementBoleto,
		models.MovementChargeback, models.MovementRefund, models.MovementCredit, "fee", "",
	}

	for _, typ := range types {
		for _, movement := range movements {
			op := withMovement(creditOperation(), typ, movement)
			fired := 0
			for _, p := range []func(models.RawOperation) bool{
				IsRefundOrChargeBack, IsBoletoRefund, IsTedTransfer, IsInterRecipientTransfer,
			} {
				if p(op) {
					fired++
				}
			}
			if fired == 0 {
				// credit/default path
				fired++
				assert.Contains(t, []models.Kind{models.KindCredit, models.KindOther}, Resolve(op))
			}
			assert.Equal(t, 1, fired, "type=%q movement=%q", typ, movement)
		}
	}
}

func TestClassify(t *testing.T) {
	op := withMovement(creditOperation(), models.TypeTransfer, models.MovementTED)
	op.Fee = models.Cents(367)

	got := Classify(op)
	assert.Equal(t, models.KindTED, got.Kind)
	assert.Equal(t, models.Legs{ZeroTransferAmount()}, got.Outcoming)
	assert.Equal(t, models.Legs{leg(367, models.LegTEDFee), leg(30000, models.LegPayable)}, got.Outgoing)
}

func TestClassifyMalformedOperation(t *testing.T) {
	got := Classify(models.RawOperation{})

	require.Len(t, got.Outcoming, 1)
	require.Len(t, got.Outgoing, 1)
	assert.Equal(t, models.KindOther, got.Kind)
	assert.False(t, got.Outcoming.Valid())
	assert.False(t, got.Outgoing.Valid())
}

func TestClassifyDoesNotAliasInput(t *testing.T) {
	op := creditOperation()
	got := Classify(op)
	*got.Outcoming[0].Amount = 1

	assert.Equal(t, int64(30000), *op.Amount)
}
