package ports

import (
	"context"

	"github.com/aeshsummer/storefront-api/internal/domains/contacts/domain"
	"github.com/aeshsummer/storefront-api/internal/shared/projection"
)

// Repository persists contact submissions. Submissions are write-once; the
// admin dashboard only lists them.
type Repository interface {
	Save(ctx context.Context, contact *domain.Contact) (*projection.Projection[*domain.Contact], error)
	List(ctx context.Context) ([]*projection.Projection[*domain.Contact], error)
}
