package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"studydesk/internal/auth"
	"studydesk/internal/mail"
	"studydesk/internal/model"
	"studydesk/internal/repository"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewAuthService(
		repository.NewUserRepository(db),
		repository.NewPasswordResetRepository(db),
		auth.NewManager("test-secret", time.Hour),
		mail.NewLogMailer(zerolog.Nop()),
		time.Hour,
		"http://localhost/reset",
		zerolog.Nop(),
	)
	return svc, db
}

func TestSignupAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	user, token, err := svc.Signup(ctx, SignupInput{
		Name:     "Ada",
		Email:    "Ada@Example.com",
		Password: "Abcdef12",
	}, now)
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Errorf("email = %q, want lowercased", user.Email)
	}
	if token == "" {
		t.Error("signup returned empty token")
	}

	if _, _, err := svc.Login(ctx, "ada@example.com", "Abcdef12", now); err != nil {
		t.Errorf("Login with correct password: %v", err)
	}
	if _, _, err := svc.Login(ctx, "ada@example.com", "wrong", now); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login with wrong password = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "Abcdef12", now); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login with unknown email = %v, want ErrInvalidCredentials", err)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if _, _, err := svc.Signup(ctx, SignupInput{Name: "Ada", Email: "ada@example.com", Password: "Abcdef12"}, now); err != nil {
		t.Fatalf("first Signup: %v", err)
	}
	if _, _, err := svc.Signup(ctx, SignupInput{Name: "Eve", Email: "ADA@example.com", Password: "Abcdef12"}, now); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second Signup = %v, want ErrEmailTaken", err)
	}
}

func TestSignupWeakPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Signup(context.Background(), SignupInput{
		Name: "Ada", Email: "ada@example.com", Password: "short",
	}, time.Now().UTC())
	if !errors.Is(err, auth.ErrPasswordPolicy) {
		t.Errorf("Signup weak password = %v, want ErrPasswordPolicy", err)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if _, _, err := svc.Signup(ctx, SignupInput{Name: "Ada", Email: "ada@example.com", Password: "Abcdef12"}, now); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if err := svc.ForgotPassword(ctx, "ada@example.com", now); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	// Unknown email is silently accepted.
	if err := svc.ForgotPassword(ctx, "nobody@example.com", now); err != nil {
		t.Fatalf("ForgotPassword unknown email: %v", err)
	}

	var reset model.PasswordReset
	if err := db.First(&reset).Error; err != nil {
		t.Fatalf("load reset row: %v", err)
	}

	if err := svc.ResetPassword(ctx, "bogus-token", "Newpass12", now); !errors.Is(err, ErrResetTokenInvalid) {
		t.Errorf("ResetPassword with bogus token = %v, want ErrResetTokenInvalid", err)
	}
	if err := svc.ResetPassword(ctx, reset.Token, "Newpass12", now); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	// Token is single-use.
	if err := svc.ResetPassword(ctx, reset.Token, "Other123", now); !errors.Is(err, ErrResetTokenInvalid) {
		t.Errorf("second ResetPassword = %v, want ErrResetTokenInvalid", err)
	}

	if _, _, err := svc.Login(ctx, "ada@example.com", "Newpass12", now); err != nil {
		t.Errorf("Login after reset: %v", err)
	}
	if _, _, err := svc.Login(ctx, "ada@example.com", "Abcdef12", now); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login with old password = %v, want ErrInvalidCredentials", err)
	}
}

func TestResetPasswordExpiredToken(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	user, _, err := svc.Signup(ctx, SignupInput{Name: "Ada", Email: "ada@example.com", Password: "Abcdef12"}, now)
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	reset := model.PasswordReset{UserID: user.ID, Token: "expired-token", ExpiresAt: now.Add(-time.Minute)}
	if err := db.Create(&reset).Error; err != nil {
		t.Fatalf("create reset row: %v", err)
	}

	if err := svc.ResetPassword(ctx, "expired-token", "Newpass12", now); !errors.Is(err, ErrResetTokenInvalid) {
		t.Errorf("ResetPassword expired = %v, want ErrResetTokenInvalid", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	user, _, err := svc.Signup(ctx, SignupInput{Name: "Ada", Email: "ada@example.com", Password: "Abcdef12"}, now)
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if err := svc.ChangePassword(ctx, user.ID, "wrong", "Newpass12"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("ChangePassword wrong current = %v, want ErrWrongPassword", err)
	}
	if err := svc.ChangePassword(ctx, user.ID, "Abcdef12", "weak"); !errors.Is(err, auth.ErrPasswordPolicy) {
		t.Errorf("ChangePassword weak next = %v, want ErrPasswordPolicy", err)
	}
	if err := svc.ChangePassword(ctx, user.ID, "Abcdef12", "Newpass12"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if _, _, err := svc.Login(ctx, "ada@example.com", "Newpass12", now); err != nil {
		t.Errorf("Login after change: %v", err)
	}
}

func TestUpdateProfileEmailTaken(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if _, _, err := svc.Signup(ctx, SignupInput{Name: "Ada", Email: "ada@example.com", Password: "Abcdef12"}, now); err != nil {
		t.Fatalf("Signup ada: %v", err)
	}
	eve, _, err := svc.Signup(ctx, SignupInput{Name: "Eve", Email: "eve@example.com", Password: "Abcdef12"}, now)
	if err != nil {
		t.Fatalf("Signup eve: %v", err)
	}

	taken := "ada@example.com"
	if _, err := svc.UpdateProfile(ctx, eve.ID, ProfileInput{Email: &taken}); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("UpdateProfile = %v, want ErrEmailTaken", err)
	}

	name := "Eve II"
	updated, err := svc.UpdateProfile(ctx, eve.ID, ProfileInput{Name: &name})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "Eve II" {
		t.Errorf("name = %q, want Eve II", updated.Name)
	}
}
