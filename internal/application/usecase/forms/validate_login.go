package forms

import (
	"context"
	"log/slog"

	"github.com/credential-forms/backend/internal/application/adapter"
	"github.com/credential-forms/backend/internal/domain/entity"
)

// ValidateLoginInput represents the raw fields of a login submission.
type ValidateLoginInput struct {
	Email    string
	Password string
}

// ValidateLoginOutput represents a login form that passed validation.
type ValidateLoginOutput struct {
	Login entity.Login
}

// ValidateLoginUseCase handles login form validation.
type ValidateLoginUseCase struct {
	validator adapter.FormValidator
}

// NewValidateLoginUseCase creates a new ValidateLoginUseCase instance.
func NewValidateLoginUseCase(validator adapter.FormValidator) *ValidateLoginUseCase {
	return &ValidateLoginUseCase{
		validator: validator,
	}
}

// Execute builds the Login form and checks its email.
// The password is not held to the strength policy.
func (uc *ValidateLoginUseCase) Execute(ctx context.Context, input ValidateLoginInput) (*ValidateLoginOutput, error) {
	form := entity.NewLogin(input.Email, input.Password)

	if err := uc.validator.ValidateLogin(form); err != nil {
		return nil, rejected(ctx, "login", form, err)
	}

	slog.DebugContext(ctx, "Login form accepted", "form", form)

	return &ValidateLoginOutput{Login: form}, nil
}
