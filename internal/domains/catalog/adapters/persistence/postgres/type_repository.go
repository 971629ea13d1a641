package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aeshsummer/storefront-api/internal/domains/catalog/domain"
	"github.com/aeshsummer/storefront-api/internal/domains/catalog/ports"
)

var _ ports.TypeRepository = (*TypeRepository)(nil)

// TypeRepository persists product categories in PostgreSQL.
type TypeRepository struct {
	db *gorm.DB
}

// NewTypeRepository wires a PostgreSQL-backed category repository.
func NewTypeRepository(db *gorm.DB) *TypeRepository {
	return &TypeRepository{db: db}
}

type productTypeRecord struct {
	ID        string    `gorm:"primaryKey;column:id;size:64"`
	Name      string    `gorm:"column:name;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (productTypeRecord) TableName() string { return "product_types" }

// Save inserts or updates a category.
func (r *TypeRepository) Save(ctx context.Context, productType *domain.ProductType) (*domain.ProductType, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if productType == nil {
		return nil, errors.New("product type is nil")
	}
	if productType.ID == "" {
		productType.ID = uuid.NewString()
	}
	record := productTypeRecord{ID: productType.ID, Name: productType.Name}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":       record.Name,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a category by identifier.
func (r *TypeRepository) GetByID(ctx context.Context, id string) (*domain.ProductType, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record productTypeRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrTypeNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// GetByName fetches a category by case-insensitive name.
func (r *TypeRepository) GetByName(ctx context.Context, name string) (*domain.ProductType, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record productTypeRecord
	if err := r.db.WithContext(ctx).First(&record, "LOWER(name) = LOWER(?)", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrTypeNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns all categories, newest first.
func (r *TypeRepository) List(ctx context.Context) ([]*domain.ProductType, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []productTypeRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	types := make([]*domain.ProductType, 0, len(records))
	for i := range records {
		types = append(types, records[i].toDomain())
	}
	return types, nil
}

// Delete removes a category by identifier.
func (r *TypeRepository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&productTypeRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrTypeNotFound
	}
	return nil
}

func (r *TypeRepository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres product type repository not configured")
	}
	return nil
}

func (rec productTypeRecord) toDomain() *domain.ProductType {
	return &domain.ProductType{ID: rec.ID, Name: rec.Name}
}
