package labels

// Default returns the pt-BR label set used by the dashboard.
func Default() *Labels {
	return New(Spec{
		Types: map[string]string{
			"payable":         "Recebível",
			"credit":          "Crédito",
			"mdr":             "MDR",
			"tedFee":          "Tarifa TED",
			"ted":             "Transferência TED",
			"inter_recipient": "Transferência entre recebedores",
			"transfer":        "Transferência",
			"refund":          "Estorno",
			"boleto":          "Estorno de boleto",
			"chargeback":      "Chargeback",
			"fee_collection":  "Cobrança de tarifa",
		},
		BulkAnticipationStatus: map[string]string{
			"building": "Em construção",
			"pending":  "Pendente",
			"approved": "Aprovada",
			"refused":  "Recusada",
			"canceled": "Cancelada",
		},
		BulkAnticipationType: map[string]string{
			"full":    "Antecipação total",
			"1025":    "Antecipação D+30",
			"partial": "Antecipação parcial",
		},
		Installment:         "Parcela",
		From:                "De",
		To:                  "Para",
		AnticipationMessage: "Recebível antecipado",
		NoData:              "-",
	})
}
