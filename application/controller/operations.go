package controller

import (
	"strings"
	"time"

	"vaultline.io/application/services/corebank"
)

// OperationView is the browser-facing shape of an operation. Amounts
// gain a sign hint and dates a display format so the UI renders rows
// without reinterpreting backend values.
type OperationView struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	IsPositive  bool    `json:"isPositive"`
	HasFile     bool    `json:"hasFile"`
	Description *string `json:"description,omitempty"`
	ClientName  *string `json:"clientName,omitempty"`
	ClientEmail *string `json:"clientEmail,omitempty"`
}

const displayDateLayout = "02/01/2006 15:04"

func toOperationView(op corebank.Operation) OperationView {
	view := OperationView{
		ID:          op.ID,
		Date:        formatOperationDate(op),
		Type:        op.Type,
		Amount:      op.Amount,
		Status:      strings.ToLower(op.Status),
		IsPositive:  strings.EqualFold(op.Type, "DEPOSIT"),
		HasFile:     op.HasFile,
		Description: op.Description,
		ClientName:  op.ClientName,
		ClientEmail: op.ClientEmail,
	}
	return view
}

func toOperationViews(ops []corebank.Operation) []OperationView {
	views := make([]OperationView, 0, len(ops))
	for _, op := range ops {
		views = append(views, toOperationView(op))
	}
	return views
}

// formatOperationDate prefers the creation timestamp and degrades to
// whatever the backend sent when it does not parse as RFC 3339.
func formatOperationDate(op corebank.Operation) string {
	raw := op.CreatedAt
	if raw == "" {
		raw = op.Date
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed.Format(displayDateLayout)
	}
	return raw
}
