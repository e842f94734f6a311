package validator

func init() {
	validate.RegisterValidation("operation_type", validateOperationType)
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("password", validatePasswordStrength)
}

type Validator struct{}

func (v *Validator) ValidateStruct(payload interface{}) *[]error {
	return validateStruct(payload)
}

func (v *Validator) ValidateValue(value any, rules string) error {
	return validateField(value, rules)
}

var ValidatorInstance = Validator{}
