package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"studydesk/internal/auth"
	"studydesk/internal/mail"
	"studydesk/internal/model"
	"studydesk/internal/repository"
)

// SignupInput is the validated payload for account creation.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// ProfileInput carries optional profile changes; nil fields stay put.
type ProfileInput struct {
	Name           *string
	Email          *string
	ProfilePicture *string
}

// AuthService implements signup, login and the password reset flow.
type AuthService struct {
	users        *repository.UserRepository
	resets       *repository.PasswordResetRepository
	tokens       *auth.Manager
	mailer       mail.Mailer
	resetTTL     time.Duration
	resetBaseURL string
	log          zerolog.Logger
}

func NewAuthService(
	users *repository.UserRepository,
	resets *repository.PasswordResetRepository,
	tokens *auth.Manager,
	mailer mail.Mailer,
	resetTTL time.Duration,
	resetBaseURL string,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:        users,
		resets:       resets,
		tokens:       tokens,
		mailer:       mailer,
		resetTTL:     resetTTL,
		resetBaseURL: resetBaseURL,
		log:          log,
	}
}

// Signup creates an account and returns it with a fresh access token.
func (s *AuthService) Signup(ctx context.Context, input SignupInput, now time.Time) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := auth.ValidatePassword(input.Password); err != nil {
		return nil, "", err
	}

	taken, err := s.users.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", ErrEmailTaken
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := model.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID, user.Email, now)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login checks credentials and issues an access token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string, now time.Time) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email, now)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Profile returns the account of the authenticated user.
func (s *AuthService) Profile(ctx context.Context, userID uint) (*model.User, error) {
	return s.users.FindByID(ctx, userID)
}

// UpdateProfile applies the provided profile changes. An email change
// is rejected when another account already holds the address.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, input ProfileInput) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.ProfilePicture != nil {
		user.ProfilePicture = *input.ProfilePicture
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != "" && email != user.Email {
			taken, err := s.users.EmailTaken(ctx, email, user.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrEmailTaken
			}
			user.Email = email
		}
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces the password after verifying the current one.
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.PasswordHash, current) {
		return ErrWrongPassword
	}
	if err := auth.ValidatePassword(next); err != nil {
		return err
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Save(ctx, user)
}

// ForgotPassword stores a single-use reset token and mails the link.
// It never reports whether the account exists; delivery failures are
// logged, not surfaced.
func (s *AuthService) ForgotPassword(ctx context.Context, email string, now time.Time) error {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	// Outstanding tokens are replaced, not accumulated.
	if err := s.resets.DeleteForUser(ctx, user.ID); err != nil {
		return err
	}

	token, err := auth.NewResetToken()
	if err != nil {
		return err
	}
	reset := model.PasswordReset{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: now.Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, &reset); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s?token=%s", s.resetBaseURL, url.QueryEscape(token))
	if err := s.mailer.SendPasswordReset(user.Email, resetURL); err != nil {
		s.log.Error().Err(err).Str("email", user.Email).Msg("password reset mail failed")
	}
	return nil
}

// ResetPassword consumes a reset token and sets the new password.
func (s *AuthService) ResetPassword(ctx context.Context, token, password string, now time.Time) error {
	reset, err := s.resets.FindUnused(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}
	if now.After(reset.ExpiresAt) {
		return ErrResetTokenInvalid
	}

	if err := auth.ValidatePassword(password); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, reset.UserID)
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Save(ctx, user); err != nil {
		return err
	}

	return s.resets.MarkUsed(ctx, reset)
}
