package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pressroom/pressroom-api/internal/api/metrics"
	"github.com/pressroom/pressroom-api/internal/core/domain"
	"github.com/pressroom/pressroom-api/internal/core/ports"
)

const (
	bcryptCost     = 12
	minPasswordLen = 6
	resetTokenTTL  = time.Hour
)

// AuthService implements registration, login (credentials and OAuth) and the
// password-reset flow.
type AuthService struct {
	repo      ports.UserRepository
	resets    ports.ResetTokenStore
	mailer    ports.Notifier
	jwtSecret string
	tokenTTL  time.Duration
	baseURL   string
	log       zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	resets ports.ResetTokenStore,
	mailer ports.Notifier,
	jwtSecret string,
	tokenTTL time.Duration,
	baseURL string,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 30 * 24 * time.Hour
	}
	return &AuthService{
		repo:      repo,
		resets:    resets,
		mailer:    mailer,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		baseURL:   baseURL,
		log:       log,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if len(password) < minPasswordLen {
		return nil, domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        domain.NormalizeEmail(email),
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("credentials", "error").Inc()
		return "", nil, err
	}

	// OAuth-only accounts have no hash and cannot log in with a password.
	if user.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("credentials", "error").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("credentials", "ok").Inc()
	return token, user, nil
}

// LoginOAuth upserts the account matching the provider profile and issues a
// session token. A brand-new OAuth account gets the default role and no
// password hash.
func (s *AuthService) LoginOAuth(ctx context.Context, profile ports.OAuthProfile) (string, *domain.User, error) {
	if profile.Email == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	email := domain.NormalizeEmail(profile.Email)
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.repo.Create(ctx, &domain.User{
			Name:  profile.Name,
			Email: email,
			Role:  domain.RoleUser,
		})
		if err != nil {
			return "", nil, fmt.Errorf("oauth login: %w", err)
		}
		s.log.Info().Str("user_id", user.ID).Str("email", email).Msg("oauth account created")
	} else if err != nil {
		return "", nil, fmt.Errorf("oauth login: %w", err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("oauth login: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("oauth", "ok").Inc()
	return token, user, nil
}

// RequestPasswordReset issues a reset token for the account, if one exists.
// The caller gets the same answer either way so the endpoint cannot be used
// to probe which emails are registered.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(email))
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("request reset: %w", err)
	}

	token, err := newResetToken()
	if err != nil {
		return fmt.Errorf("request reset: %w", err)
	}
	if err := s.resets.Save(ctx, token, user.ID, resetTokenTTL); err != nil {
		return fmt.Errorf("request reset: %w", err)
	}

	// Email delivery is log-only; failure is best-effort like any other
	// notification.
	link := fmt.Sprintf("%s/reset/%s", s.baseURL, token)
	if err := s.mailer.Notify(ctx, fmt.Sprintf("Password reset requested for %s\nReset link: %s", user.Email, link)); err != nil {
		s.log.Error().Err(err).Str("email", user.Email).Msg("failed to send reset email")
	}
	return nil
}

func (s *AuthService) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return domain.ErrWeakPassword
	}

	userID, err := s.resets.Consume(ctx, token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("complete reset: %w", err)
	}
	if err := s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("complete reset: %w", err)
	}

	s.log.Info().Str("user_id", userID).Msg("password reset completed")
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  string(user.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func newResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
