package utils

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

func GenerateULIDString() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy()).String()
}

func GetStringPointer(text string) *string {
	return &text
}

func GetUIntPointer(data uint) *uint {
	return &data
}

func HasItemString(arr *[]string, target string) bool {
	for _, v := range *arr {
		if v == target {
			return true
		}
	}
	return false
}

// NormalizeRole trims and upper-cases a backend role label so the
// post-login landing decision is shape-insensitive.
func NormalizeRole(role string) string {
	return strings.ToUpper(strings.TrimSpace(role))
}
