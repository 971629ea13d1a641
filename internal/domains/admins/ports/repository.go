package ports

import (
	"context"
	"errors"

	"github.com/aeshsummer/storefront-api/internal/domains/admins/domain"
)

var ErrNotFound = errors.New("admin not found")
var ErrInvalidCredentials = errors.New("invalid username or password")

type Repository interface {
	Save(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
}
