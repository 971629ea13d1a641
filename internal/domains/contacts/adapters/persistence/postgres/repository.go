package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aeshsummer/storefront-api/internal/domains/contacts/domain"
	"github.com/aeshsummer/storefront-api/internal/domains/contacts/ports"
	"github.com/aeshsummer/storefront-api/internal/shared/projection"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists contact submissions in PostgreSQL.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed submission store.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type contactRecord struct {
	ID        string    `gorm:"primaryKey;column:id;size:64"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Message   string    `gorm:"column:message"`
	Phone     string    `gorm:"column:phone"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (contactRecord) TableName() string { return "contact_submissions" }

// Save inserts a new submission.
func (r *Repository) Save(ctx context.Context, contact *domain.Contact) (*projection.Projection[*domain.Contact], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, errors.New("contact is nil")
	}
	if contact.ID == "" {
		contact.ID = uuid.NewString()
	}
	record := contactRecord{
		ID:      contact.ID,
		Name:    contact.Name,
		Email:   contact.Email,
		Message: contact.Message,
		Phone:   contact.Phone,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toProjection(), nil
}

// List returns all submissions, newest first.
func (r *Repository) List(ctx context.Context) ([]*projection.Projection[*domain.Contact], error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []contactRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	list := make([]*projection.Projection[*domain.Contact], 0, len(records))
	for i := range records {
		list = append(list, records[i].toProjection())
	}
	return list, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres contact repository not configured")
	}
	return nil
}

func (rec contactRecord) toProjection() *projection.Projection[*domain.Contact] {
	contact := &domain.Contact{
		ID:      rec.ID,
		Name:    rec.Name,
		Email:   rec.Email,
		Message: rec.Message,
		Phone:   rec.Phone,
	}
	return projection.New(contact, rec.CreatedAt, rec.UpdatedAt)
}
