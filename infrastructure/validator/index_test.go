package validator

import "testing"

type operationPayload struct {
	Type   string  `validate:"required,operation_type"`
	Amount float64 `validate:"required,gt=0"`
}

func TestValidateStruct(t *testing.T) {
	if errs := ValidatorInstance.ValidateStruct(operationPayload{Type: "DEPOSIT", Amount: 100}); errs != nil {
		t.Errorf("expected no errors, got %v", *errs)
	}

	errs := ValidatorInstance.ValidateStruct(operationPayload{Type: "LOAN", Amount: -5})
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if len(*errs) != 2 {
		t.Errorf("got %d errors, want 2: %v", len(*errs), *errs)
	}
}

func TestOperationTypeRule(t *testing.T) {
	for _, valid := range []string{"DEPOSIT", "withdrawal", "Transfer"} {
		if err := ValidatorInstance.ValidateValue(valid, "operation_type"); err != nil {
			t.Errorf("%q rejected: %v", valid, err)
		}
	}
	if err := ValidatorInstance.ValidateValue("LOAN", "operation_type"); err == nil {
		t.Error("LOAN accepted")
	}
}

func TestUserRoleRule(t *testing.T) {
	for _, valid := range []string{"CLIENT", "agent", "AGENT_BANCAIRE", "admin"} {
		if err := ValidatorInstance.ValidateValue(valid, "user_role"); err != nil {
			t.Errorf("%q rejected: %v", valid, err)
		}
	}
	if err := ValidatorInstance.ValidateValue("SUPERUSER", "user_role"); err == nil {
		t.Error("SUPERUSER accepted")
	}
}

func TestPasswordRule(t *testing.T) {
	cases := []struct {
		password string
		valid    bool
	}{
		{"abc12345", true},
		{"longenoughbutnodigit", false},
		{"12345678", false},
		{"a1b2", false},
	}
	for _, tc := range cases {
		err := ValidatorInstance.ValidateValue(tc.password, "password")
		if (err == nil) != tc.valid {
			t.Errorf("password %q: valid=%v, want %v", tc.password, err == nil, tc.valid)
		}
	}
}
