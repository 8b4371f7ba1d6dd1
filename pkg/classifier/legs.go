package classifier

import "github.com/yurifrl/cockpit/pkg/models"

// ZeroTransferAmount is the placeholder used on the idle side of a transfer
// so neither side is ever empty.
func ZeroTransferAmount() models.CashFlowLeg {
	return models.NewLeg(models.Cents(0), models.LegPayable)
}

func RefundOrChargeBackOutcoming(op models.RawOperation) models.Legs {
	return models.Legs{models.NewLeg(op.Fee, models.LegMDR)}
}

func RefundOrChargeBackOutgoing(op models.RawOperation) models.Legs {
	return models.Legs{models.NewLeg(op.Amount, models.LegPayable)}
}

func BoletoRefundFeeOutcoming(op models.RawOperation) models.Legs {
	return models.Legs{models.NewLeg(op.Amount, models.LegPayable)}
}

func BoletoRefundFeeOutgoing(op models.RawOperation) models.Legs {
	return models.Legs{models.NewLeg(op.Fee, models.LegTEDFee)}
}

func TedTransferOutcoming(models.RawOperation) models.Legs {
	return models.Legs{ZeroTransferAmount()}
}

// TedTransferOutgoing always lists the fee before the principal.
func TedTransferOutgoing(op models.RawOperation) models.Legs {
	return models.Legs{
		models.NewLeg(op.Fee, models.LegTEDFee),
		models.NewLeg(op.Amount, models.LegPayable),
	}
}

// isTransferSource uses the sign of net, never amount: a non-negative net
// means this recipient sent the funds.
func isTransferSource(op models.RawOperation) bool {
	return op.Net >= 0
}

func InterRecipientTransferOutcoming(op models.RawOperation) models.Legs {
	if isTransferSource(op) {
		return models.Legs{models.NewLeg(op.Amount, models.LegPayable)}
	}
	return models.Legs{ZeroTransferAmount()}
}

func InterRecipientTransferOutgoing(op models.RawOperation) models.Legs {
	if isTransferSource(op) {
		return models.Legs{ZeroTransferAmount()}
	}
	return models.Legs{models.NewLeg(op.Amount, models.LegPayable)}
}

func CreditOutcoming(op models.RawOperation) models.Legs {
	return models.Legs{models.NewLeg(op.Amount, models.LegPayable)}
}

func CreditOutgoing(op models.RawOperation) models.Legs {
	return models.Legs{models.NewLeg(op.Fee, models.LegMDR)}
}
