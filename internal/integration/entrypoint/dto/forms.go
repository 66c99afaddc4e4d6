// Package dto defines data transfer objects for API requests and responses.
package dto

// SignupRequest represents a signup form submission.
// It accepts JSON or urlencoded bodies; field rules are checked by the use case, not by binding.
type SignupRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginRequest represents a login form submission.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// FormAcceptedResponse represents the response for a form that passed validation.
// The password is never echoed back.
type FormAcceptedResponse struct {
	Valid bool   `json:"valid"`
	Form  string `json:"form"`
	Email string `json:"email"`
}

// ValidationErrorResponse represents a form rejected by one or more field rules.
type ValidationErrorResponse struct {
	Error  string              `json:"error"`
	Code   string              `json:"code"`
	Fields map[string][]string `json:"fields"`
	// Codes holds the rule code of each failing field error, in the same order as Fields.
	Codes map[string][]string `json:"codes"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
