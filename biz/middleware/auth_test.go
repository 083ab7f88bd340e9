package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestVerifySession(t *testing.T) {
	t.Run("ValidToken", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"email": "admin@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		email, err := VerifySession(testSecret, token)
		if err != nil {
			t.Fatalf("VerifySession: %v", err)
		}
		if email != "admin@example.com" {
			t.Fatalf("expected admin@example.com, got %q", email)
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token := signToken(t, "other-secret", jwt.MapClaims{"email": "admin@example.com"})
		if _, err := VerifySession(testSecret, token); err == nil {
			t.Fatal("expected error for token signed with another secret")
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"email": "admin@example.com",
			"exp":   time.Now().Add(-time.Hour).Unix(),
		})
		if _, err := VerifySession(testSecret, token); err == nil {
			t.Fatal("expected error for expired token")
		}
	})

	t.Run("MissingEmailClaim", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{"sub": "someone"})
		if _, err := VerifySession(testSecret, token); err == nil {
			t.Fatal("expected error for token without email claim")
		}
	})

	t.Run("EmptySecret", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{"email": "admin@example.com"})
		if _, err := VerifySession("", token); err == nil {
			t.Fatal("expected error when secret is not configured")
		}
	})
}

func TestBuildAllowList(t *testing.T) {
	allowed := buildAllowList([]string{"Admin@Example.com", "  second@example.com ", ""})

	if !allowed["admin@example.com"] {
		t.Error("expected case-insensitive allow-list membership")
	}
	if !allowed["second@example.com"] {
		t.Error("expected whitespace-trimmed allow-list membership")
	}
	if allowed[""] {
		t.Error("empty entries must never authorize anyone")
	}
	if allowed["stranger@example.com"] {
		t.Error("unexpected allow-list member")
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc.def.ghi": "abc.def.ghi",
		"bearer abc.def.ghi": "abc.def.ghi",
		"Bearer   spaced   ": "spaced",
		"Basic dXNlcjpwYXNz": "",
		"":                   "",
		"Bearer":             "",
	}
	for header, want := range cases {
		if got := bearerToken(header); got != want {
			t.Errorf("bearerToken(%q) = %q, want %q", header, got, want)
		}
	}
}
