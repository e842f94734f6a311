package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validateStruct(payload interface{}) *[]error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs := []error{err}
		return &errs
	}
	errs := []error{}
	for _, fieldErr := range validationErrs {
		errs = append(errs, fmt.Errorf("%s failed validation for rule %s", strings.ToLower(fieldErr.Field()), fieldErr.Tag()))
	}
	if len(errs) == 0 {
		return nil
	}
	return &errs
}

func validateField(value any, rules string) error {
	return validate.Var(value, rules)
}
