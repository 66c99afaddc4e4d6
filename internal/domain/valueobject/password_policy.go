// Package valueobject contains domain value objects and pure domain rules.
package valueobject

import (
	"unicode"
	"unicode/utf8"

	domainerror "github.com/credential-forms/backend/internal/domain/error"
)

// MinPasswordLength is the minimum number of characters a signup password must have.
const MinPasswordLength = 8

// Password policy messages surfaced to the submitting user.
const (
	MsgPasswordTooShort    = "The password must be at least 8 characters long."
	MsgPasswordNoUppercase = "The password must include least one uppercase character."
	// Same wording as the uppercase rule; clients tell them apart by ErrCodePasswordNoLowercase.
	MsgPasswordNoLowercase = "The password must include least one uppercase character."
	MsgPasswordNoDigit     = "The password has to contain at least one digit."
)

// passwordRule is one predicate of the strength policy and the error it reports.
type passwordRule struct {
	check   func(string) bool
	code    domainerror.FormErrorCode
	message string
	err     error
}

// passwordRules is evaluated in order; the first failing rule is reported.
var passwordRules = []passwordRule{
	{check: IsLong, code: domainerror.ErrCodePasswordTooShort, message: MsgPasswordTooShort, err: domainerror.ErrPasswordTooShort},
	{check: HasUppercase, code: domainerror.ErrCodePasswordNoUppercase, message: MsgPasswordNoUppercase, err: domainerror.ErrPasswordNoUppercase},
	{check: HasLowercase, code: domainerror.ErrCodePasswordNoLowercase, message: MsgPasswordNoLowercase, err: domainerror.ErrPasswordNoLowercase},
	{check: HasNumber, code: domainerror.ErrCodePasswordNoDigit, message: MsgPasswordNoDigit, err: domainerror.ErrPasswordNoDigit},
}

// IsPasswordSecure reports whether password satisfies the signup strength policy.
// It returns nil on success, or a *domainerror.FieldError for the first violated rule.
func IsPasswordSecure(password string) error {
	for _, rule := range passwordRules {
		if !rule.check(password) {
			return domainerror.NewFieldError(domainerror.FieldPassword, rule.code, rule.message, rule.err)
		}
	}
	return nil
}

// IsLong reports whether password has at least MinPasswordLength characters.
func IsLong(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}

// HasUppercase reports whether password contains an uppercase character.
func HasUppercase(password string) bool {
	return containsRune(password, unicode.IsUpper)
}

// HasLowercase reports whether password contains a lowercase character.
func HasLowercase(password string) bool {
	return containsRune(password, unicode.IsLower)
}

// HasNumber reports whether password contains a numeric character.
func HasNumber(password string) bool {
	return containsRune(password, unicode.IsNumber)
}

func containsRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}
	return false
}
