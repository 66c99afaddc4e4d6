// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"log/slog"
	"strconv"
)

// RedactedPassword replaces the password in every rendering of a credential.
const RedactedPassword = "*****"

// Credential is the email and password pair shared by Login and Signup.
type Credential interface {
	GetEmail() string
	Password() string
}

// Login is the form submitted to authenticate an existing user.
// Its password carries no strength constraint: it may predate the current policy.
type Login struct {
	Email    string
	password string
}

// Signup is the form submitted to create a new user.
// Its password must satisfy the strength policy once validated.
type Signup struct {
	Email    string
	password string
}

// SignupSource is implemented by anything that can lend out a signup-shaped value.
type SignupSource interface {
	AsSignup() Signup
}

// NewLogin creates a Login form. It performs no validation.
func NewLogin(email, password string) Login {
	return Login{Email: email, password: password}
}

// NewSignup creates a Signup form. It performs no validation.
func NewSignup(email, password string) Signup {
	return Signup{Email: email, password: password}
}

// LoginFrom copies the fields of any signup source into a new Login.
// The source keeps its value.
func LoginFrom(src SignupSource) Login {
	return src.AsSignup().ToLogin()
}

// GetEmail returns the submitted email.
func (l Login) GetEmail() string { return l.Email }

// Password returns the submitted password.
func (l Login) Password() string { return l.password }

// ToSignup copies the login into a Signup. The strength policy is not re-checked.
func (l Login) ToSignup() Signup {
	return Signup{Email: l.Email, password: l.password}
}

// Equal reports whether both forms hold the same email and password.
func (l Login) Equal(other Login) bool { return l == other }

// String renders the form with the password redacted.
func (l Login) String() string { return render("Login", l.Email) }

// GoString renders the form with the password redacted.
func (l Login) GoString() string { return l.String() }

// Format renders the form with the password redacted for every verb.
func (l Login) Format(f fmt.State, _ rune) { _, _ = f.Write([]byte(l.String())) }

// LogValue renders the form for structured logs with the password redacted.
func (l Login) LogValue() slog.Value { return logValue(l.Email) }

// GetEmail returns the submitted email.
func (s Signup) GetEmail() string { return s.Email }

// Password returns the submitted password.
func (s Signup) Password() string { return s.password }

// ToLogin copies the signup into a Login.
func (s Signup) ToLogin() Login {
	return Login{Email: s.Email, password: s.password}
}

// AsSignup returns a copy of the form.
func (s Signup) AsSignup() Signup { return s }

// Equal reports whether both forms hold the same email and password.
func (s Signup) Equal(other Signup) bool { return s == other }

// String renders the form with the password redacted.
func (s Signup) String() string { return render("Signup", s.Email) }

// GoString renders the form with the password redacted.
func (s Signup) GoString() string { return s.String() }

// Format renders the form with the password redacted for every verb.
func (s Signup) Format(f fmt.State, _ rune) { _, _ = f.Write([]byte(s.String())) }

// LogValue renders the form for structured logs with the password redacted.
func (s Signup) LogValue() slog.Value { return logValue(s.Email) }

func render(label, email string) string {
	return label + " { email: " + strconv.Quote(email) + ", password: " + strconv.Quote(RedactedPassword) + " }"
}

func logValue(email string) slog.Value {
	return slog.GroupValue(
		slog.String("email", email),
		slog.String("password", RedactedPassword),
	)
}
