package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aeshsummer/storefront-api/internal/domains/catalog/domain"
	"github.com/aeshsummer/storefront-api/internal/domains/catalog/ports"
	"github.com/aeshsummer/storefront-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory product persistence adapter. The mutex makes the
// stock check-and-decrement a single step, matching the conditional update
// the Postgres adapter issues.
type Repository struct {
	mu       sync.RWMutex
	products map[string]*productEntry
}

type productEntry struct {
	product   domain.Product
	createdAt time.Time
	updatedAt time.Time
}

// NewRepository builds an empty product store.
func NewRepository() *Repository {
	return &Repository{products: map[string]*productEntry{}}
}

func (r *Repository) Save(_ context.Context, product *domain.Product) (*projection.Projection[*domain.Product], error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	clone := *product
	clone.Sizes = append([]string{}, product.Sizes...)
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	if clone.ID == "" {
		clone.ID = uuid.NewString()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	entry, ok := r.products[clone.ID]
	if !ok {
		entry = &productEntry{createdAt: now}
		r.products[clone.ID] = entry
	}
	entry.product = clone
	entry.updatedAt = now
	return entry.toProjection(), nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*projection.Projection[*domain.Product], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return entry.toProjection(), nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *Repository) List(_ context.Context) ([]*projection.Projection[*domain.Product], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*productEntry) bool { return true }, 0), nil
}

func (r *Repository) ListByType(_ context.Context, typeID string) ([]*projection.Projection[*domain.Product], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(e *productEntry) bool { return e.product.TypeID == typeID }, 0), nil
}

func (r *Repository) ListLatest(_ context.Context, limit int) ([]*projection.Projection[*domain.Product], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*productEntry) bool { return true }, limit), nil
}

// DecrementStock applies quantity -= requested only while quantity >= requested
// holds, all under the write lock.
func (r *Repository) DecrementStock(_ context.Context, id string, requested int) error {
	if requested <= 0 {
		return errors.New("requested quantity must be positive")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.products[id]
	if !ok {
		return ports.ErrNotFound
	}
	if entry.product.Quantity < requested {
		return ports.ErrInsufficientStock
	}
	entry.product.Quantity -= requested
	entry.updatedAt = time.Now()
	return nil
}

// RestoreStock adds units back after a failed placement.
func (r *Repository) RestoreStock(_ context.Context, id string, quantity int) error {
	if quantity <= 0 {
		return errors.New("restored quantity must be positive")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.products[id]
	if !ok {
		return ports.ErrNotFound
	}
	entry.product.Quantity += quantity
	entry.updatedAt = time.Now()
	return nil
}

// collect returns matching products newest-first. Callers hold the lock.
func (r *Repository) collect(match func(*productEntry) bool, limit int) []*projection.Projection[*domain.Product] {
	entries := make([]*productEntry, 0, len(r.products))
	for _, entry := range r.products {
		if match(entry) {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].createdAt.After(entries[j].createdAt) })
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	result := make([]*projection.Projection[*domain.Product], 0, len(entries))
	for _, entry := range entries {
		result = append(result, entry.toProjection())
	}
	return result
}

func (e *productEntry) toProjection() *projection.Projection[*domain.Product] {
	clone := e.product
	clone.Sizes = append([]string{}, e.product.Sizes...)
	return projection.New(&clone, e.createdAt, e.updatedAt)
}

var _ ports.TypeRepository = (*TypeRepository)(nil)

// TypeRepository is an in-memory product category adapter.
type TypeRepository struct {
	mu    sync.RWMutex
	types map[string]*domain.ProductType
}

// NewTypeRepository builds an empty category store.
func NewTypeRepository() *TypeRepository {
	return &TypeRepository{types: map[string]*domain.ProductType{}}
}

func (r *TypeRepository) Save(_ context.Context, productType *domain.ProductType) (*domain.ProductType, error) {
	if productType == nil {
		return nil, errors.New("product type is nil")
	}
	clone := *productType
	if clone.ID == "" {
		clone.ID = uuid.NewString()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *TypeRepository) GetByID(_ context.Context, id string) (*domain.ProductType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	productType, ok := r.types[id]
	if !ok {
		return nil, ports.ErrTypeNotFound
	}
	clone := *productType
	return &clone, nil
}

func (r *TypeRepository) GetByName(_ context.Context, name string) (*domain.ProductType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, productType := range r.types {
		if strings.EqualFold(productType.Name, name) {
			clone := *productType
			return &clone, nil
		}
	}
	return nil, ports.ErrTypeNotFound
}

func (r *TypeRepository) List(_ context.Context) ([]*domain.ProductType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.ProductType, 0, len(r.types))
	for _, productType := range r.types {
		clone := *productType
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *TypeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[id]; !ok {
		return ports.ErrTypeNotFound
	}
	delete(r.types, id)
	return nil
}
