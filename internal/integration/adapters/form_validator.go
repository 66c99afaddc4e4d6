// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/credential-forms/backend/internal/application/adapter"
	"github.com/credential-forms/backend/internal/domain/entity"
	domainerror "github.com/credential-forms/backend/internal/domain/error"
	"github.com/credential-forms/backend/internal/domain/valueobject"
)

const (
	// tagPasswordSecure is the struct tag bound to the signup password policy.
	tagPasswordSecure = "password_secure"
	// tagEmail is validator's built-in email format check.
	tagEmail = "email"
)

// loginFields mirrors entity.Login with exported, tagged fields.
type loginFields struct {
	Email    string `form:"email" validate:"email"`
	Password string `form:"password"`
}

// signupFields mirrors entity.Signup with exported, tagged fields.
type signupFields struct {
	Email    string `form:"email" validate:"email"`
	Password string `form:"password" validate:"password_secure"`
}

// formValidator implements the adapter.FormValidator interface.
type formValidator struct {
	validate *validator.Validate
}

// NewFormValidator creates a new form validator instance.
func NewFormValidator() (adapter.FormValidator, error) {
	v := validator.New()

	// Report fields by their form key rather than the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("form"); name != "" && name != "-" {
			return name
		}
		return fld.Name
	})

	if err := v.RegisterValidation(tagPasswordSecure, func(fl validator.FieldLevel) bool {
		return valueobject.IsPasswordSecure(fl.Field().String()) == nil
	}); err != nil {
		return nil, fmt.Errorf("failed to register %s validation: %w", tagPasswordSecure, err)
	}

	return &formValidator{validate: v}, nil
}

// ValidateLogin checks the login email format.
func (f *formValidator) ValidateLogin(form entity.Login) error {
	return f.run(loginFields{Email: form.Email, Password: form.Password()})
}

// ValidateSignup checks the signup email format and password strength.
func (f *formValidator) ValidateSignup(form entity.Signup) error {
	return f.run(signupFields{Email: form.Email, Password: form.Password()})
}

func (f *formValidator) run(fields any) error {
	err := f.validate.Struct(fields)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate form: %w", err)
	}

	result := domainerror.NewValidationErrors()
	for _, fe := range fieldErrs {
		result.Add(toFieldError(fe))
	}
	return result.ErrOrNil()
}

// toFieldError translates a validator failure into the domain error for that rule.
func toFieldError(fe validator.FieldError) *domainerror.FieldError {
	switch fe.Tag() {
	case tagEmail:
		return domainerror.NewFieldError(fe.Field(), domainerror.ErrCodeInvalidEmail, "", domainerror.ErrInvalidEmail)
	case tagPasswordSecure:
		password, _ := fe.Value().(string)
		var policyErr *domainerror.FieldError
		if errors.As(valueobject.IsPasswordSecure(password), &policyErr) {
			policyErr.Field = fe.Field()
			return policyErr
		}
	}
	return domainerror.NewFieldError(fe.Field(), domainerror.ErrCodeValidationFailed, "", fmt.Errorf("failed %q rule", fe.Tag()))
}
