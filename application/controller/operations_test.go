package controller

import (
	"testing"

	"vaultline.io/application/services/corebank"
	"vaultline.io/application/utils"
)

func TestToOperationView(t *testing.T) {
	view := toOperationView(corebank.Operation{
		ID:          7,
		CreatedAt:   "2026-03-15T09:30:00Z",
		Type:        "DEPOSIT",
		Amount:      150.5,
		Status:      "PENDING",
		HasFile:     true,
		Description: utils.GetStringPointer("salary"),
	})

	if view.Date != "15/03/2026 09:30" {
		t.Errorf("Date = %q, want 15/03/2026 09:30", view.Date)
	}
	if view.Status != "pending" {
		t.Errorf("Status = %q, want pending", view.Status)
	}
	if !view.IsPositive {
		t.Error("a deposit must render as positive")
	}
}

func TestToOperationViewNegativeTypes(t *testing.T) {
	for _, operationType := range []string{"WITHDRAWAL", "TRANSFER"} {
		if toOperationView(corebank.Operation{Type: operationType}).IsPositive {
			t.Errorf("%s must not render as positive", operationType)
		}
	}
}

func TestToOperationViewUnparseableDate(t *testing.T) {
	view := toOperationView(corebank.Operation{Date: "15/03/2026"})
	if view.Date != "15/03/2026" {
		t.Errorf("Date = %q, want the raw value passed through", view.Date)
	}
}
