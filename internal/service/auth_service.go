package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/logger"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/repository"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/validator"
)

// AuthService owns account registration, authentication, profiles and
// the password reset flow.
type AuthService struct {
	userRepo repository.UserRepository
	mailer   Mailer
	v        *validator.Validator

	resetTokenTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, mailer Mailer, v *validator.Validator, resetTokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		mailer:        mailer,
		v:             v,
		resetTokenTTL: resetTokenTTL,
	}
}

// Register creates a new account with the user role.
func (s *AuthService) Register(ctx context.Context, form *validator.RegistrationForm) (*domain.User, error) {
	if err := s.v.ValidateRegistration(form); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate checks credentials and returns the account. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !user.Active {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// GetUser fetches an account by id.
func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetOrCreateProfile returns the user's profile, materializing an
// empty one on first access.
func (s *AuthService) GetOrCreateProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.userRepo.GetOrCreateProfile(ctx, userID)
}

// UpdateProfile overwrites the profile fields.
func (s *AuthService) UpdateProfile(ctx context.Context, profile *domain.Profile) error {
	return s.userRepo.UpdateProfile(ctx, profile)
}

// RequestPasswordReset issues a single-use token and mails the reset
// link. An unknown email is not reported to the caller.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Debug("Password reset requested for unknown email",
			slog.String("email", email))
		return nil
	}
	if err != nil {
		return err
	}

	token := &domain.PasswordResetToken{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(s.resetTokenTTL),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.userRepo.CreateResetToken(ctx, token); err != nil {
		return err
	}

	return s.mailer.SendPasswordReset(ctx, user.Email, token.Token)
}

// ConfirmPasswordReset consumes a token and sets the new password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	if err := s.v.ValidatePassword(newPassword); err != nil {
		return err
	}

	stored, err := s.userRepo.GetResetToken(ctx, token)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrTokenInvalid
	}
	if err != nil {
		return err
	}
	if stored.UsedAt != nil || stored.Expired(time.Now().UTC()) {
		return domain.ErrTokenInvalid
	}

	if err := s.userRepo.MarkResetTokenUsed(ctx, token); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, stored.UserID, string(hash))
}
