// Package idpkg validates account and user identifier formats.
package idpkg

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	bankingAccountIDPattern   = regexp.MustCompile(`^[A-Z0-9]{10,20}$`)
	brokerageAccountIDPattern = regexp.MustCompile(`^BRK[A-Z0-9]{8,12}$`)
	userIDPattern             = regexp.MustCompile(`^[A-Z0-9]{8,16}$`)
)

// IsBankingAccountID reports whether s is a well formed banking account
// identifier: 10-20 uppercase alphanumeric characters.
func IsBankingAccountID(s string) bool {
	return bankingAccountIDPattern.MatchString(s)
}

// IsBrokerageAccountID reports whether s is a well formed brokerage account
// identifier: the literal BRK prefix followed by 8-12 uppercase alphanumeric
// characters.
func IsBrokerageAccountID(s string) bool {
	return brokerageAccountIDPattern.MatchString(s)
}

// IsUserID reports whether s is a well formed user identifier: 8-16 uppercase
// alphanumeric characters.
func IsUserID(s string) bool {
	return userIDPattern.MatchString(s)
}

// ValidBankingAccountID validates banking account identifiers in binding tags.
var ValidBankingAccountID validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return IsBankingAccountID(s)
	}

	return false
}

// ValidBrokerageAccountID validates brokerage account identifiers in binding tags.
var ValidBrokerageAccountID validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return IsBrokerageAccountID(s)
	}

	return false
}

// ValidUserID validates user identifiers in binding tags.
var ValidUserID validator.Func = func(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return IsUserID(s)
	}

	return false
}
