package entity

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestRedactedRendering(t *testing.T) {
	passwords := []string{"", "Abcdefg1", "*****", "hunter2", `quote"d`, strings.Repeat("p", 40)}

	for _, password := range passwords {
		login := NewLogin("user@example.com", password)
		signup := NewSignup("user@example.com", password)

		t.Run(fmt.Sprintf("login %q", password), func(t *testing.T) {
			expected := `Login { email: "user@example.com", password: "*****" }`
			for _, verb := range []string{"%v", "%+v", "%#v", "%s", "%q", "%d"} {
				if got := fmt.Sprintf(verb, login); got != expected {
					t.Errorf("%s: expected %s, got %s", verb, expected, got)
				}
			}
			if got := login.String(); got != expected {
				t.Errorf("String: expected %s, got %s", expected, got)
			}
			if got := login.GoString(); got != expected {
				t.Errorf("GoString: expected %s, got %s", expected, got)
			}
		})

		t.Run(fmt.Sprintf("signup %q", password), func(t *testing.T) {
			expected := `Signup { email: "user@example.com", password: "*****" }`
			for _, verb := range []string{"%v", "%+v", "%#v", "%s"} {
				if got := fmt.Sprintf(verb, signup); got != expected {
					t.Errorf("%s: expected %s, got %s", verb, expected, got)
				}
			}
			if got := fmt.Sprintf("%v", &signup); got != expected {
				t.Errorf("pointer: expected %s, got %s", expected, got)
			}
		})
	}
}

func TestRedactedRendering_NeverLeaksPassword(t *testing.T) {
	secret := "S3cretValue!"
	login := NewLogin("user@example.com", secret)
	signup := NewSignup("user@example.com", secret)

	rendered := []string{
		login.String(),
		signup.String(),
		fmt.Sprintf("%#v", login),
		fmt.Sprintf("%+v", []Signup{signup}),
		fmt.Sprintf("%v", map[Login]bool{login: true}),
	}
	for _, r := range rendered {
		if strings.Contains(r, secret) {
			t.Errorf("rendering leaked password: %s", r)
		}
	}
}

func TestRedactedRendering_EmailIsQuoted(t *testing.T) {
	login := NewLogin(`a"b@example.com`, "x")
	expected := `Login { email: "a\"b@example.com", password: "*****" }`
	if got := login.String(); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestLogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	secret := "Abcdefg1"
	logger.Info("form", "login", NewLogin("user@example.com", secret), "signup", NewSignup("user@example.com", secret))

	out := buf.String()
	if strings.Contains(out, secret) {
		t.Fatalf("structured log leaked password: %s", out)
	}
	if !strings.Contains(out, `"login":{"email":"user@example.com","password":"*****"}`) {
		t.Errorf("expected redacted login group, got %s", out)
	}
	if !strings.Contains(out, `"signup":{"email":"user@example.com","password":"*****"}`) {
		t.Errorf("expected redacted signup group, got %s", out)
	}
}

func TestConversions(t *testing.T) {
	t.Run("signup to login copies fields", func(t *testing.T) {
		signup := NewSignup("user@example.com", "Abcdefg1")
		login := signup.ToLogin()

		if login.Email != signup.Email {
			t.Errorf("expected email %s, got %s", signup.Email, login.Email)
		}
		if login.Password() != signup.Password() {
			t.Error("expected password to be copied")
		}
	})

	t.Run("login to signup keeps weak password", func(t *testing.T) {
		login := NewLogin("user@example.com", "weak")
		signup := login.ToSignup()

		if signup.Password() != "weak" {
			t.Error("expected conversion to copy the password without checks")
		}
	})

	t.Run("round trip reproduces original", func(t *testing.T) {
		for _, password := range []string{"", "Abcdefg1", "*****", "ünïcødé"} {
			original := NewSignup("user@example.com", password)
			if got := original.ToLogin().ToSignup(); got != original {
				t.Errorf("round trip changed form for password %q", password)
			}
		}
	})

	t.Run("LoginFrom accepts values pointers and wrappers", func(t *testing.T) {
		signup := NewSignup("user@example.com", "Abcdefg1")
		expected := NewLogin("user@example.com", "Abcdefg1")

		sources := map[string]SignupSource{
			"value":   signup,
			"pointer": &signup,
			"wrapper": borrowedSignup{form: &signup},
		}
		for name, src := range sources {
			if got := LoginFrom(src); got != expected {
				t.Errorf("%s: expected %s, got %s", name, expected, got)
			}
		}

		if signup.Password() != "Abcdefg1" {
			t.Error("expected source to keep its value")
		}
	})
}

// borrowedSignup stands in for a caller-owned holder of a signup.
type borrowedSignup struct {
	form *Signup
}

func (b borrowedSignup) AsSignup() Signup { return *b.form }

func TestEqualityAndHashing(t *testing.T) {
	a := NewLogin("user@example.com", "Abcdefg1")
	b := NewLogin("user@example.com", "Abcdefg1")
	c := NewLogin("user@example.com", "Abcdefg2")

	if !a.Equal(b) {
		t.Error("expected forms with identical fields to be equal")
	}
	if a.Equal(c) {
		t.Error("expected forms with different passwords to differ")
	}

	seen := map[Login]int{}
	for _, l := range []Login{a, b, c} {
		seen[l]++
	}
	if len(seen) != 2 || seen[a] != 2 {
		t.Errorf("expected identical forms to share a map key, got %d keys", len(seen))
	}

	s1 := NewSignup("x@example.com", "p")
	s2 := NewSignup("x@example.com", "p")
	if !s1.Equal(s2) || s1 != s2 {
		t.Error("expected signups with identical fields to be equal")
	}
}

func TestCredentialInterface(t *testing.T) {
	creds := []Credential{
		NewLogin("a@example.com", "one"),
		NewSignup("b@example.com", "two"),
	}
	expected := [][2]string{{"a@example.com", "one"}, {"b@example.com", "two"}}

	for i, c := range creds {
		if c.GetEmail() != expected[i][0] || c.Password() != expected[i][1] {
			t.Errorf("credential %d: unexpected fields", i)
		}
	}
}
