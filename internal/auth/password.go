package auth

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword bcrypt-hashes a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ErrPasswordPolicy marks every password policy violation, so callers
// can tell them apart from internal failures with errors.Is.
var ErrPasswordPolicy = errors.New("password rejected")

// ValidatePassword enforces the account password policy: at least 8
// characters with an uppercase letter, a lowercase letter and a
// digit. The returned error is safe to show to the user.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", ErrPasswordPolicy)
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	if !upper {
		return fmt.Errorf("%w: password must contain at least one uppercase letter", ErrPasswordPolicy)
	}
	if !lower {
		return fmt.Errorf("%w: password must contain at least one lowercase letter", ErrPasswordPolicy)
	}
	if !digit {
		return fmt.Errorf("%w: password must contain at least one number", ErrPasswordPolicy)
	}
	return nil
}
