package adapters

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/credential-forms/backend/internal/domain/entity"
	domainerror "github.com/credential-forms/backend/internal/domain/error"
	"github.com/credential-forms/backend/internal/domain/valueobject"
)

func newTestValidator(t *testing.T) *formValidator {
	t.Helper()
	v, err := NewFormValidator()
	if err != nil {
		t.Fatalf("failed to create validator: %v", err)
	}
	return v.(*formValidator)
}

func TestFormValidator_ValidateSignup(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name           string
		email          string
		password       string
		expectedFields map[string][]domainerror.FormErrorCode
	}{
		{
			name:     "valid signup",
			email:    "user@example.com",
			password: "Abcdefg1",
		},
		{
			name:     "invalid email only",
			email:    "not-an-email",
			password: "Abcdefg1",
			expectedFields: map[string][]domainerror.FormErrorCode{
				domainerror.FieldEmail: {domainerror.ErrCodeInvalidEmail},
			},
		},
		{
			name:     "empty email",
			email:    "",
			password: "Abcdefg1",
			expectedFields: map[string][]domainerror.FormErrorCode{
				domainerror.FieldEmail: {domainerror.ErrCodeInvalidEmail},
			},
		},
		{
			name:     "short password",
			email:    "user@example.com",
			password: "Ab1",
			expectedFields: map[string][]domainerror.FormErrorCode{
				domainerror.FieldPassword: {domainerror.ErrCodePasswordTooShort},
			},
		},
		{
			name:     "no uppercase",
			email:    "user@example.com",
			password: "abc12345",
			expectedFields: map[string][]domainerror.FormErrorCode{
				domainerror.FieldPassword: {domainerror.ErrCodePasswordNoUppercase},
			},
		},
		{
			name:     "no lowercase",
			email:    "user@example.com",
			password: "ABCDEFGH",
			expectedFields: map[string][]domainerror.FormErrorCode{
				domainerror.FieldPassword: {domainerror.ErrCodePasswordNoLowercase},
			},
		},
		{
			name:     "no digit",
			email:    "user@example.com",
			password: "Abcdefgh",
			expectedFields: map[string][]domainerror.FormErrorCode{
				domainerror.FieldPassword: {domainerror.ErrCodePasswordNoDigit},
			},
		},
		{
			name:     "both fields invalid",
			email:    "not-an-email",
			password: "",
			expectedFields: map[string][]domainerror.FormErrorCode{
				domainerror.FieldEmail:    {domainerror.ErrCodeInvalidEmail},
				domainerror.FieldPassword: {domainerror.ErrCodePasswordTooShort},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSignup(entity.NewSignup(tt.email, tt.password))
			assertFieldCodes(t, err, tt.expectedFields)
		})
	}
}

func TestFormValidator_ValidateLogin(t *testing.T) {
	v := newTestValidator(t)

	t.Run("weak password is accepted", func(t *testing.T) {
		if err := v.ValidateLogin(entity.NewLogin("user@example.com", "x")); err != nil {
			t.Fatalf("expected login to pass, got %v", err)
		}
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		err := v.ValidateLogin(entity.NewLogin("not-an-email", "Abcdefg1"))
		assertFieldCodes(t, err, map[string][]domainerror.FormErrorCode{
			domainerror.FieldEmail: {domainerror.ErrCodeInvalidEmail},
		})
	})

	t.Run("upgraded login is rechecked only when validated as signup", func(t *testing.T) {
		login := entity.NewLogin("user@example.com", "weak")
		if err := v.ValidateLogin(login); err != nil {
			t.Fatalf("expected login to pass, got %v", err)
		}
		if err := v.ValidateSignup(login.ToSignup()); !errors.Is(err, domainerror.ErrPasswordTooShort) {
			t.Errorf("expected upgraded signup to fail strength check, got %v", err)
		}
	})
}

func TestFormValidator_Messages(t *testing.T) {
	v := newTestValidator(t)

	err := v.ValidateSignup(entity.NewSignup("not-an-email", "abc12345"))

	var validationErrs *domainerror.ValidationErrors
	if !errors.As(err, &validationErrs) {
		t.Fatalf("expected *ValidationErrors, got %T", err)
	}

	expected := map[string][]string{
		domainerror.FieldEmail:    {"invalid email"},
		domainerror.FieldPassword: {valueobject.MsgPasswordNoUppercase},
	}
	if got := validationErrs.Messages(); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestFormValidator_Concurrent(t *testing.T) {
	v := newTestValidator(t)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				if err := v.ValidateSignup(entity.NewSignup("user@example.com", "Abcdefg1")); err != nil {
					errs <- err
				}
				return
			}
			if err := v.ValidateSignup(entity.NewSignup("user@example.com", "abc12345")); !errors.Is(err, domainerror.ErrPasswordNoUppercase) {
				errs <- errors.New("expected uppercase failure")
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func assertFieldCodes(t *testing.T, err error, expected map[string][]domainerror.FormErrorCode) {
	t.Helper()

	if len(expected) == 0 {
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		return
	}

	var validationErrs *domainerror.ValidationErrors
	if !errors.As(err, &validationErrs) {
		t.Fatalf("expected *ValidationErrors, got %T (%v)", err, err)
	}

	got := map[string][]domainerror.FormErrorCode{}
	for _, field := range validationErrs.Fields() {
		for _, fe := range validationErrs.Get(field) {
			got[field] = append(got[field], fe.Code)
		}
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected codes %v, got %v", expected, got)
	}
}
