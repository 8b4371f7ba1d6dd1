// Package operations turns raw balance operations into the rows consumed by
// the operations table and the exports.
package operations

import (
	"github.com/yurifrl/cockpit/pkg/classifier"
	"github.com/yurifrl/cockpit/pkg/models"
)

// GetInstallment returns the installment number, preferring the
// operation's own field over the movement object's. It returns nil when
// neither is set.
func GetInstallment(op models.RawOperation) *int {
	if op.Installment != nil {
		v := *op.Installment
		return &v
	}
	if op.MovementObject != nil && op.MovementObject.Installment != nil {
		v := *op.MovementObject.Installment
		return &v
	}
	return nil
}

// GetTransactionID returns the transaction the operation belongs to, if any.
func GetTransactionID(op models.RawOperation) string {
	if op.TransactionID != "" {
		return op.TransactionID
	}
	if op.MovementObject != nil {
		return op.MovementObject.TransactionID
	}
	return ""
}

// FormatOperation builds the table row for a single operation.
func FormatOperation(op models.RawOperation) models.FormattedRow {
	classified := classifier.Classify(op)
	return models.FormattedRow{
		ID:            op.ID,
		Type:          op.Type,
		MovementType:  op.MovementType(),
		Kind:          classified.Kind,
		Net:           op.Net,
		TransactionID: GetTransactionID(op),
		SourceID:      op.SourceID,
		TargetID:      op.TargetID,
		PaymentDate:   op.PaymentDate,
		Installment:   GetInstallment(op),
		Outcoming:     classified.Outcoming,
		Outgoing:      classified.Outgoing,
	}
}

// FormatOperations maps FormatOperation over ops. The result always has
// the same length and order as ops.
func FormatOperations(ops []models.RawOperation) []models.FormattedRow {
	rows := make([]models.FormattedRow, len(ops))
	for i, op := range ops {
		rows[i] = FormatOperation(op)
	}
	return rows
}
