package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&productTypeRecord{},
		&orderRecord{},
		&idempotencyRecord{},
		&contactRecord{},
		&adminRecord{},
		&sessionRecord{},
	)
}

// Product schema mirrors the catalog Postgres adapter.
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

type productTypeRecord struct {
	ID        string    `gorm:"primaryKey;column:id;size:64"`
	Name      string    `gorm:"column:name;uniqueIndex"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (productTypeRecord) TableName() string { return "product_types" }

// Order schema mirrors the orders Postgres adapter. Cart lines ride along as
// a JSON column rather than a join table.
type lineRecord struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Size      string  `json:"size,omitempty"`
}

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

// Idempotency schema mirrors the orders idempotency store.
type idempotencyRecord struct {
	Key         string    `gorm:"primaryKey;column:key;size:512"`
	RequestHash string    `gorm:"column:request_hash;size:128"`
	OrderID     string    `gorm:"column:order_id;size:64"`
	CreatedAt   time.Time `gorm:"column:created_at;index"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (idempotencyRecord) TableName() string { return "order_idempotency_keys" }

// Contact schema mirrors the contacts Postgres adapter.
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

// Admin schema mirrors the admins Postgres adapter.
type adminRecord struct {
	ID           string    `gorm:"primaryKey;column:id;size:64"`
	Username     string    `gorm:"column:username;size:128;uniqueIndex"`
	Email        string    `gorm:"column:email;size:256"`
	PasswordHash string    `gorm:"column:password_hash;size:256"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (adminRecord) TableName() string { return "admins" }

// Session schema mirrors the admin session store.
type sessionRecord struct {
	Token     string     `gorm:"primaryKey;column:token;size:512"`
	Username  string     `gorm:"column:username;index"`
	ExpiresAt *time.Time `gorm:"column:expires_at;index"`
	CreatedAt time.Time  `gorm:"column:created_at;index"`
	UpdatedAt time.Time  `gorm:"column:updated_at;index"`
}

func (sessionRecord) TableName() string { return "admin_sessions" }
