package ports

import (
	"context"

	"github.com/aeshsummer/storefront-api/internal/domains/admins/domain"
)

// Service exposes admin authentication use cases.
type Service interface {
	RegisterAdmin(ctx context.Context, username, email, password string) (*domain.Admin, error)
	Login(ctx context.Context, username, password string) (string, error)
	VerifySession(ctx context.Context, token string) (string, error)
	Logout(ctx context.Context, token string) error
}
