// Package session manages opaque admin session tokens with a fixed lifetime.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

// TTL is the fixed session lifetime. Sessions are never renewed on use; a
// token is valid for exactly this long from issuance.
const TTL = 30 * 24 * time.Hour

const tokenBytes = 32

type Servicer interface {
	Issue(ctx context.Context) (string, error)
	Validate(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Issue generates a high-entropy opaque token and stores its liveness
// marker with the fixed TTL.
func (s *Service) Issue(ctx context.Context) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := base64.URLEncoding.EncodeToString(buf)

	if err := s.repo.Put(ctx, token, TTL); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return token, nil
}

// Validate reports whether a non-expired marker exists for token. Never
// issued, revoked and expired are indistinguishable: all yield false.
func (s *Service) Validate(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	return s.repo.Exists(ctx, token)
}

// Revoke deletes the marker. Revoking an unknown token is not an error.
func (s *Service) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.repo.Delete(ctx, token)
}
