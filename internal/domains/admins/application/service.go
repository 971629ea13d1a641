package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aeshsummer/storefront-api/internal/domains/admins/domain"
	"github.com/aeshsummer/storefront-api/internal/domains/admins/ports"
)

// ErrInvalidInput indicates request payloads that fail admin invariants.
var ErrInvalidInput = errors.New("invalid admin input")

// Service exposes admin bounded context use cases.
type Service struct {
	repo     ports.Repository
	sessions ports.SessionStore
}

func NewService(repo ports.Repository, sessions ports.SessionStore) *Service {
	if sessions == nil {
		sessions = ports.NoopSessionStore
	}
	return &Service{repo: repo, sessions: sessions}
}

// RegisterAdmin hashes the password and persists the account. Used by
// bootstrap seeding rather than a public endpoint.
func (s *Service) RegisterAdmin(ctx context.Context, username, email, password string) (*domain.Admin, error) {
	if strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, domain.ErrEmptyPassword)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin, err := domain.NewAdmin(uuid.NewString(), username, email, string(hash))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.repo.Save(ctx, admin)
}

// Login checks the password against the stored bcrypt hash and issues an
// opaque session token. Missing accounts and bad passwords collapse into the
// same ErrInvalidCredentials so probes cannot tell them apart.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return "", ports.ErrInvalidCredentials
	}
	admin, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return "", ports.ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", ports.ErrInvalidCredentials
	}
	token := uuid.NewString()
	if err := s.sessions.Save(ctx, admin.Username, token); err != nil {
		return "", err
	}
	return token, nil
}

// VerifySession resolves a token back to its username, or
// ports.ErrSessionNotFound when absent or expired.
func (s *Service) VerifySession(ctx context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ports.ErrSessionNotFound
	}
	return s.sessions.Lookup(ctx, token)
}

// Logout drops the session owning the token. Unknown tokens are a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	username, err := s.VerifySession(ctx, token)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil
		}
		return err
	}
	return s.sessions.Delete(ctx, username)
}

var _ ports.Service = (*Service)(nil)
