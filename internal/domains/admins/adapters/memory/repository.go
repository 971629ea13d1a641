package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/aeshsummer/storefront-api/internal/domains/admins/domain"
	"github.com/aeshsummer/storefront-api/internal/domains/admins/ports"
)

// Repository is an in-memory admin store keyed by username.
type Repository struct {
	mu     sync.RWMutex
	admins map[string]*domain.Admin
}

func NewRepository() *Repository {
	return &Repository{admins: make(map[string]*domain.Admin)}
}

func (r *Repository) Save(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	if err := admin.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *admin
	r.admins[strings.ToLower(admin.Username)] = &stored
	out := stored
	return &out, nil
}

func (r *Repository) GetByUsername(_ context.Context, username string) (*domain.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	admin, ok := r.admins[strings.ToLower(strings.TrimSpace(username))]
	if !ok {
		return nil, ports.ErrNotFound
	}
	out := *admin
	return &out, nil
}

var _ ports.Repository = (*Repository)(nil)
