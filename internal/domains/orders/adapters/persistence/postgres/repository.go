package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aeshsummer/storefront-api/internal/domains/orders/domain"
	"github.com/aeshsummer/storefront-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// lineRecord is the JSON shape of one embedded order line snapshot.
type lineRecord struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Size      string  `json:"size,omitempty"`
}

// orderRecord maps the order aggregate to a relational table. Line snapshots
// are embedded as a JSON column so historical orders survive catalog edits.
type orderRecord struct {
	ID              string       `gorm:"primaryKey;column:id;size:64"`
	FullName        string       `gorm:"column:full_name"`
	Email           string       `gorm:"column:email"`
	PhoneNumber     string       `gorm:"column:phone_number"`
	ShippingAddress string       `gorm:"column:shipping_address"`
	CartItems       []lineRecord `gorm:"column:cart_items;serializer:json"`
	TotalAmount     float64      `gorm:"column:total_amount"`
	PaymentMethod   string       `gorm:"column:payment_method;type:varchar(16)"`
	Status          string       `gorm:"column:status;type:varchar(32);index"`
	CreatedAt       time.Time    `gorm:"column:created_at;index"`
	UpdatedAt       time.Time    `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// Save inserts a new order or updates an existing one. Only the status ever
// changes after creation, but the upsert keeps the adapter symmetric with the
// memory implementation.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	record := toRecord(order)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"status":     record.Status,
				"updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches an order by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns all orders, oldest first.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	items := make([]lineRecord, 0, len(order.Lines))
	for _, line := range order.Lines {
		items = append(items, lineRecord{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
			Size:      line.Size,
		})
	}
	return orderRecord{
		ID:              order.ID,
		FullName:        order.FullName,
		Email:           order.Email,
		PhoneNumber:     order.PhoneNumber,
		ShippingAddress: order.ShippingAddress,
		CartItems:       items,
		TotalAmount:     order.TotalAmount,
		PaymentMethod:   string(order.PaymentMethod),
		Status:          string(order.Status),
	}
}

func (rec orderRecord) toDomain() *domain.Order {
	lines := make([]domain.Line, 0, len(rec.CartItems))
	for _, item := range rec.CartItems {
		lines = append(lines, domain.Line{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Size:      item.Size,
		})
	}
	return &domain.Order{
		ID:              rec.ID,
		FullName:        rec.FullName,
		Email:           rec.Email,
		PhoneNumber:     rec.PhoneNumber,
		ShippingAddress: rec.ShippingAddress,
		Lines:           lines,
		TotalAmount:     rec.TotalAmount,
		PaymentMethod:   domain.PaymentMethod(rec.PaymentMethod),
		Status:          domain.Status(rec.Status),
	}
}
