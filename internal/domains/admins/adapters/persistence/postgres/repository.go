package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aeshsummer/storefront-api/internal/domains/admins/domain"
	adminports "github.com/aeshsummer/storefront-api/internal/domains/admins/ports"
)

// Repository persists admin accounts in PostgreSQL.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed admin repository. Caller owns DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type adminRecord struct {
	ID           string    `gorm:"primaryKey;column:id;size:64"`
	Username     string    `gorm:"column:username;size:128;uniqueIndex"`
	Email        string    `gorm:"column:email;size:256"`
	PasswordHash string    `gorm:"column:password_hash;size:256"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (adminRecord) TableName() string { return "admins" }

func toAdminRecord(a *domain.Admin) adminRecord {
	return adminRecord{
		ID:           a.ID,
		Username:     a.Username,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
	}
}

func (r adminRecord) toDomain() *domain.Admin {
	return &domain.Admin{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
	}
}

// Save upserts an admin keyed by username.
func (r *Repository) Save(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if err := admin.Validate(); err != nil {
		return nil, err
	}
	rec := toAdminRecord(admin)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "password_hash", "updated_at"}),
		}).
		Create(&rec).Error
	if err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var rec adminRecord
	err := r.db.WithContext(ctx).
		Where("LOWER(username) = LOWER(?)", strings.TrimSpace(username)).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, adminports.ErrNotFound
		}
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres admin repository not configured")
	}
	return nil
}

var _ adminports.Repository = (*Repository)(nil)
