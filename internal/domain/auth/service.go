// Package auth gates every record operation behind the single admin
// credential and the sessions it issues.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/thihaaungym/vaultboard/internal/domain/session"
)

type Servicer interface {
	Login(ctx context.Context, password string) (string, error)
	Authenticate(ctx context.Context, token string) (bool, error)
	Logout(ctx context.Context, token string) error
}

type Service struct {
	secret   string
	sessions session.Servicer
	log      *slog.Logger
}

func NewService(secret string, sessions session.Servicer, log *slog.Logger) *Service {
	return &Service{
		secret:   secret,
		sessions: sessions,
		log:      log,
	}
}

// Login compares password against the configured admin secret and issues a
// session on success. With no secret configured it returns ErrNoSecret and
// never falls back to an always-fail or always-succeed default.
func (s *Service) Login(ctx context.Context, password string) (string, error) {
	if s.secret == "" {
		return "", ErrNoSecret
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(s.secret)) != 1 {
		return "", ErrInvalidCredential
	}

	token, err := s.sessions.Issue(ctx)
	if err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}

	s.log.Info("admin logged in")
	return token, nil
}

// Authenticate reports whether token belongs to a live session. It carries
// no detail about why authentication failed.
func (s *Service) Authenticate(ctx context.Context, token string) (bool, error) {
	return s.sessions.Validate(ctx, token)
}

// Logout revokes the session; unknown tokens are ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}
