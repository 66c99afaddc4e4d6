// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/credential-forms/backend/internal/domain/entity"

// FormValidator defines the interface for validating credential forms.
// Both methods return nil or a *domainerror.ValidationErrors.
type FormValidator interface {
	// ValidateLogin checks the login email format.
	ValidateLogin(form entity.Login) error

	// ValidateSignup checks the signup email format and password strength.
	ValidateSignup(form entity.Signup) error
}
