package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aeshsummer/storefront-api/internal/domains/contacts/domain"
	"github.com/aeshsummer/storefront-api/internal/domains/contacts/ports"
	"github.com/aeshsummer/storefront-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory contact submission adapter.
type Repository struct {
	mu      sync.RWMutex
	entries []entry
}

type entry struct {
	contact   domain.Contact
	createdAt time.Time
}

// NewRepository builds an empty submission store.
func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Save(_ context.Context, contact *domain.Contact) (*projection.Projection[*domain.Contact], error) {
	if contact == nil {
		return nil, errors.New("contact is nil")
	}
	clone := *contact
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	if clone.ID == "" {
		clone.ID = uuid.NewString()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.entries = append(r.entries, entry{contact: clone, createdAt: now})
	result := clone
	return projection.New(&result, now, now), nil
}

func (r *Repository) List(_ context.Context) ([]*projection.Projection[*domain.Contact], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*projection.Projection[*domain.Contact], 0, len(r.entries))
	for _, e := range r.entries {
		clone := e.contact
		list = append(list, projection.New(&clone, e.createdAt, e.createdAt))
	}
	return list, nil
}
