// Package error defines domain-specific errors for the credential forms service.
package error

import (
	"errors"
	"strings"
)

// Field names reported in validation errors.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// Credential form domain errors.
var (
	// ErrValidationFailed is returned when a submitted form violates one or more field rules.
	ErrValidationFailed = errors.New("form validation failed")

	// ErrMalformedForm is returned when a submission cannot be decoded into a form.
	ErrMalformedForm = errors.New("malformed form submission")

	// ErrInvalidEmail is returned when the email field is not a well-formed address.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrPasswordTooShort is returned when the password has fewer than 8 characters.
	ErrPasswordTooShort = errors.New("password too short")

	// ErrPasswordNoUppercase is returned when the password has no uppercase character.
	ErrPasswordNoUppercase = errors.New("password has no uppercase character")

	// ErrPasswordNoLowercase is returned when the password has no lowercase character.
	ErrPasswordNoLowercase = errors.New("password has no lowercase character")

	// ErrPasswordNoDigit is returned when the password has no numeric character.
	ErrPasswordNoDigit = errors.New("password has no digit")
)

// FormErrorCode defines error codes for credential form errors.
// Format: FORM-XXYYYY where XX is category and YYYY is specific error.
type FormErrorCode string

const (
	// Email errors (01XXXX)
	ErrCodeInvalidEmail FormErrorCode = "FORM-010001"

	// Password strength errors (02XXXX)
	ErrCodePasswordTooShort    FormErrorCode = "FORM-020001"
	ErrCodePasswordNoUppercase FormErrorCode = "FORM-020002"
	ErrCodePasswordNoLowercase FormErrorCode = "FORM-020003"
	ErrCodePasswordNoDigit     FormErrorCode = "FORM-020004"

	// Submission errors (03XXXX)
	ErrCodeValidationFailed FormErrorCode = "FORM-030001"
	ErrCodeMalformedForm    FormErrorCode = "FORM-030002"
)

// FieldError describes a single rule violated by one form field.
// Message is empty for rules that carry no field-specific text.
type FieldError struct {
	Field   string
	Code    FormErrorCode
	Message string
	Err     error
}

// NewFieldError creates a new FieldError for the given field.
func NewFieldError(field string, code FormErrorCode, message string, err error) *FieldError {
	return &FieldError{
		Field:   field,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return e.Field + ": " + e.Text()
}

// Text returns the human-readable reason, falling back to the underlying error.
func (e *FieldError) Text() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidationErrors collects field errors keyed by field name.
// Fields keep the order in which their first error was added.
type ValidationErrors struct {
	order  []string
	fields map[string][]*FieldError
}

// NewValidationErrors creates an empty ValidationErrors collection.
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		fields: make(map[string][]*FieldError),
	}
}

// Add appends a field error to the collection.
func (v *ValidationErrors) Add(fe *FieldError) {
	if fe == nil {
		return
	}
	if _, ok := v.fields[fe.Field]; !ok {
		v.order = append(v.order, fe.Field)
	}
	v.fields[fe.Field] = append(v.fields[fe.Field], fe)
}

// Len returns the number of field errors in the collection.
func (v *ValidationErrors) Len() int {
	n := 0
	for _, errs := range v.fields {
		n += len(errs)
	}
	return n
}

// Fields returns the names of the failing fields in insertion order.
func (v *ValidationErrors) Fields() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}

// Get returns the errors recorded for a field.
func (v *ValidationErrors) Get(field string) []*FieldError {
	return v.fields[field]
}

// Messages returns the human-readable messages per field.
func (v *ValidationErrors) Messages() map[string][]string {
	out := make(map[string][]string, len(v.fields))
	for field, errs := range v.fields {
		msgs := make([]string, 0, len(errs))
		for _, fe := range errs {
			msgs = append(msgs, fe.Text())
		}
		out[field] = msgs
	}
	return out
}

// ErrOrNil returns nil when the collection is empty, so callers never get a typed nil error.
func (v *ValidationErrors) ErrOrNil() error {
	if v == nil || v.Len() == 0 {
		return nil
	}
	return v
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	parts := make([]string, 0, v.Len())
	for _, field := range v.order {
		for _, fe := range v.fields[field] {
			parts = append(parts, fe.Error())
		}
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap exposes every field error plus ErrValidationFailed to errors.Is and errors.As.
func (v *ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, v.Len()+1)
	errs = append(errs, ErrValidationFailed)
	for _, field := range v.order {
		for _, fe := range v.fields[field] {
			errs = append(errs, fe)
		}
	}
	return errs
}
