package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"vaultline.io/application/utils"
)

var operationTypes = []string{"DEPOSIT", "WITHDRAWAL", "TRANSFER"}

var userRoles = []string{"CLIENT", "AGENT", "AGENT_BANCAIRE", "ADMIN"}

func validateOperationType(fl validator.FieldLevel) bool {
	return utils.HasItemString(&operationTypes, utils.NormalizeRole(fl.Field().String()))
}

func validateUserRole(fl validator.FieldLevel) bool {
	return utils.HasItemString(&userRoles, utils.NormalizeRole(fl.Field().String()))
}

// at least 8 chars with one letter and one digit
func validatePasswordStrength(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}
	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)
	return hasLetter && hasDigit
}
