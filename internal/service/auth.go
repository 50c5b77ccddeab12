package service

import (
	"log/slog"
	"math/rand"
	"net/mail"
	"strings"

	"github.com/mockres/mockres/internal/metrics"
)

// FixedToken is the canned bearer token the public reqres API hands out.
// No credential is ever verified; this is not a security boundary.
const FixedToken = "QpwL5tke4Pnpja7X4"

// AuthService simulates registration and login. Any syntactically valid
// email plus a non-empty password succeeds; nothing is persisted.
type AuthService struct {
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(logger *slog.Logger, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		logger:  logger,
		metrics: recorder,
	}
}

// Register validates the credentials and returns a random user id
// (1..10, not persisted) with the fixed token.
func (s *AuthService) Register(email, password string) (int, string, error) {
	if err := validateCredentials(email, password); err != nil {
		return 0, "", err
	}

	id := rand.Intn(10) + 1
	s.metrics.IncRegister()
	s.logger.Info("user_registered", "email", email, "assigned_id", id)
	return id, FixedToken, nil
}

// Login validates the credentials and returns the fixed token.
func (s *AuthService) Login(email, password string) (string, error) {
	if err := validateCredentials(email, password); err != nil {
		return "", err
	}

	s.metrics.IncLogin()
	s.logger.Info("user_logged_in", "email", email)
	return FixedToken, nil
}

// validateCredentials checks email syntax (not deliverability) and
// password presence, in the error order the public API documents.
func validateCredentials(email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrMissingEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	if strings.TrimSpace(password) == "" {
		return ErrMissingPassword
	}

	return nil
}
