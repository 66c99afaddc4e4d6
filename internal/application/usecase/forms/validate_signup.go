// Package forms contains credential form validation use cases.
package forms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/credential-forms/backend/internal/application/adapter"
	"github.com/credential-forms/backend/internal/domain/entity"
	domainerror "github.com/credential-forms/backend/internal/domain/error"
)

// ValidateSignupInput represents the raw fields of a signup submission.
type ValidateSignupInput struct {
	Email    string
	Password string
}

// ValidateSignupOutput represents a signup form that passed validation.
type ValidateSignupOutput struct {
	Signup entity.Signup
	// Login is the validated signup downgraded for the authentication guard.
	Login entity.Login
}

// ValidateSignupUseCase handles signup form validation.
type ValidateSignupUseCase struct {
	validator adapter.FormValidator
}

// NewValidateSignupUseCase creates a new ValidateSignupUseCase instance.
func NewValidateSignupUseCase(validator adapter.FormValidator) *ValidateSignupUseCase {
	return &ValidateSignupUseCase{
		validator: validator,
	}
}

// Execute builds the Signup form and runs the email and password strength checks.
func (uc *ValidateSignupUseCase) Execute(ctx context.Context, input ValidateSignupInput) (*ValidateSignupOutput, error) {
	form := entity.NewSignup(input.Email, input.Password)

	if err := uc.validator.ValidateSignup(form); err != nil {
		return nil, rejected(ctx, "signup", form, err)
	}

	slog.DebugContext(ctx, "Signup form accepted", "form", form)

	return &ValidateSignupOutput{
		Signup: form,
		Login:  form.ToLogin(),
	}, nil
}

// rejected logs a failed validation and passes field errors through unchanged.
func rejected(ctx context.Context, kind string, form slog.LogValuer, err error) error {
	var validationErrs *domainerror.ValidationErrors
	if errors.As(err, &validationErrs) {
		slog.InfoContext(ctx, "Credential form rejected",
			"kind", kind,
			"form", form,
			"fields", validationErrs.Fields(),
		)
		return validationErrs
	}
	return fmt.Errorf("failed to validate %s form: %w", kind, err)
}
