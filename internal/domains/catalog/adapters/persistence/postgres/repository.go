package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aeshsummer/storefront-api/internal/domains/catalog/domain"
	"github.com/aeshsummer/storefront-api/internal/domains/catalog/ports"
	"github.com/aeshsummer/storefront-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists products in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// productRecord maps the product aggregate to a relational table.
type productRecord struct {
	ID        string         `gorm:"primaryKey;column:id;size:64"`
	Name      string         `gorm:"column:name"`
	Price     float64        `gorm:"column:price"`
	Quantity  int            `gorm:"column:quantity"`
	TypeID    string         `gorm:"column:type_id;size:64;index"`
	Sizes     pq.StringArray `gorm:"column:sizes;type:text[]"`
	ImageURL  string         `gorm:"column:image_url"`
	CreatedAt time.Time      `gorm:"column:created_at;index"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Save inserts or updates a product.
func (r *Repository) Save(ctx context.Context, product *domain.Product) (*projection.Projection[*domain.Product], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	record := toRecord(product)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":       record.Name,
				"price":      record.Price,
				"quantity":   record.Quantity,
				"type_id":    record.TypeID,
				"sizes":      record.Sizes,
				"image_url":  record.ImageURL,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a product by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*projection.Projection[*domain.Product], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record productRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toProjection(), nil
}

// Delete removes a product by identifier.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&productRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// List returns the whole catalog, newest first.
func (r *Repository) List(ctx context.Context) ([]*projection.Projection[*domain.Product], error) {
	return r.find(ctx, func(tx *gorm.DB) *gorm.DB { return tx })
}

// ListByType returns products referencing a category.
func (r *Repository) ListByType(ctx context.Context, typeID string) ([]*projection.Projection[*domain.Product], error) {
	return r.find(ctx, func(tx *gorm.DB) *gorm.DB { return tx.Where("type_id = ?", typeID) })
}

// ListLatest returns the most recently created products.
func (r *Repository) ListLatest(ctx context.Context, limit int) ([]*projection.Projection[*domain.Product], error) {
	return r.find(ctx, func(tx *gorm.DB) *gorm.DB { return tx.Limit(limit) })
}

// DecrementStock issues a single conditional update so the stock check and
// the write cannot be interleaved by a concurrent placement:
//
//	UPDATE products SET quantity = quantity - ? WHERE id = ? AND quantity >= ?
//
// Zero rows affected means either the product vanished or the guard failed.
func (r *Repository) DecrementStock(ctx context.Context, id string, requested int) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	if requested <= 0 {
		return errors.New("requested quantity must be positive")
	}
	result := r.db.WithContext(ctx).Model(&productRecord{}).
		Where("id = ? AND quantity >= ?", id, requested).
		Updates(map[string]any{
			"quantity":   gorm.Expr("quantity - ?", requested),
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ports.ErrInsufficientStock
	}
	return nil
}

// RestoreStock adds units back after a failed placement commit.
func (r *Repository) RestoreStock(ctx context.Context, id string, quantity int) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errors.New("restored quantity must be positive")
	}
	result := r.db.WithContext(ctx).Model(&productRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"quantity":   gorm.Expr("quantity + ?", quantity),
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*projection.Projection[*domain.Product], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := scope(r.db.WithContext(ctx).Order("created_at DESC")).Find(&records).Error; err != nil {
		return nil, err
	}
	products := make([]*projection.Projection[*domain.Product], 0, len(records))
	for i := range records {
		products = append(products, records[i].toProjection())
	}
	return products, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres product repository not configured")
	}
	return nil
}

func toRecord(product *domain.Product) productRecord {
	return productRecord{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: product.Quantity,
		TypeID:   product.TypeID,
		Sizes:    append(pq.StringArray{}, product.Sizes...),
		ImageURL: product.ImageURL,
	}
}

func (rec productRecord) toProjection() *projection.Projection[*domain.Product] {
	product := &domain.Product{
		ID:       rec.ID,
		Name:     rec.Name,
		Price:    rec.Price,
		Quantity: rec.Quantity,
		TypeID:   rec.TypeID,
		Sizes:    append([]string{}, rec.Sizes...),
		ImageURL: rec.ImageURL,
	}
	return projection.New(product, rec.CreatedAt, rec.UpdatedAt)
}
