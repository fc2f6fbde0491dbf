package auth

import (
	"strings"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	now := time.Now()

	signed, err := m.Generate(42, "user@example.com", now)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := m.Validate(signed)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("Email = %q, want user@example.com", claims.Email)
	}
}

func TestTokenExpired(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	signed, err := m.Generate(1, "user@example.com", time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := m.Validate(signed); err == nil {
		t.Fatal("expired token validated")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	signer := NewManager("secret-a", time.Hour)
	verifier := NewManager("secret-b", time.Hour)

	signed, err := signer.Generate(1, "user@example.com", time.Now())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := verifier.Validate(signed); err == nil {
		t.Fatal("token signed with another secret validated")
	}
}

func TestTokenGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	if _, err := m.Validate("not.a.token"); err == nil {
		t.Fatal("garbage validated")
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		wantErr  string
	}{
		{"Abcdef12", ""},
		{"Sh0rt", "8 characters"},
		{"abcdefg1", "uppercase"},
		{"ABCDEFG1", "lowercase"},
		{"Abcdefgh", "number"},
	}
	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("ValidatePassword(%q) = %v, want nil", tt.password, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("ValidatePassword(%q) = %v, want error mentioning %q", tt.password, err, tt.wantErr)
		}
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Abcdef12")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Abcdef12" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "Abcdef12") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "Abcdef13") {
		t.Error("wrong password accepted")
	}
}

func TestNewResetToken(t *testing.T) {
	a, err := NewResetToken()
	if err != nil {
		t.Fatalf("NewResetToken: %v", err)
	}
	b, err := NewResetToken()
	if err != nil {
		t.Fatalf("NewResetToken: %v", err)
	}
	if len(a) != 64 {
		t.Errorf("token length = %d, want 64", len(a))
	}
	if a == b {
		t.Error("two tokens are identical")
	}
}
