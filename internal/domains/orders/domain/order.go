package domain

import (
	"errors"
	"strings"
)

// PaymentMethod names how the customer intends to pay. Only the choice is
// recorded; no gateway is involved.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
)

// Status enumerates order progression.
type Status string

const (
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancel     Status = "Cancel"
)

var (
	ErrEmptyFullName   = errors.New("full name is required")
	ErrEmptyEmail      = errors.New("email is required")
	ErrEmptyPhone      = errors.New("phone number is required")
	ErrEmptyAddress    = errors.New("shipping address is required")
	ErrEmptyCart       = errors.New("order must contain at least one cart item")
	ErrInvalidQuantity = errors.New("cart item quantity must be greater than zero")
	ErrInvalidPayment  = errors.New("payment method must be cash or online")
	ErrInvalidStatus   = errors.New("order status is invalid")
)

// Line is one purchased item inside an order: a snapshot of the product name
// and price at checkout time, decoupled from later catalog edits.
type Line struct {
	ProductID string
	Name      string
	Quantity  int
	Price     float64
	Size      string
}

// Order models the checkout aggregate. Lines and totals are immutable after
// creation; only Status may change afterwards.
type Order struct {
	ID              string
	FullName        string
	Email           string
	PhoneNumber     string
	ShippingAddress string
	Lines           []Line
	TotalAmount     float64
	PaymentMethod   PaymentMethod
	Status          Status
}

// NewOrder validates and constructs a new Order aggregate with the default
// Processing status.
func NewOrder(id, fullName, email, phone, address string, lines []Line, total float64, payment PaymentMethod) (*Order, error) {
	order := &Order{
		ID:              id,
		FullName:        strings.TrimSpace(fullName),
		Email:           strings.TrimSpace(email),
		PhoneNumber:     strings.TrimSpace(phone),
		ShippingAddress: strings.TrimSpace(address),
		Lines:           append([]Line{}, lines...),
		TotalAmount:     total,
		PaymentMethod:   payment,
		Status:          StatusProcessing,
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces the aggregate invariants.
func (o *Order) Validate() error {
	if o.FullName == "" {
		return ErrEmptyFullName
	}
	if o.Email == "" {
		return ErrEmptyEmail
	}
	if o.PhoneNumber == "" {
		return ErrEmptyPhone
	}
	if o.ShippingAddress == "" {
		return ErrEmptyAddress
	}
	if len(o.Lines) == 0 {
		return ErrEmptyCart
	}
	for _, line := range o.Lines {
		if line.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	if !isValidPayment(o.PaymentMethod) {
		return ErrInvalidPayment
	}
	if !IsValidStatus(o.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// UpdateStatus moves the order to any known status. No transition graph is
// enforced: Delivered may move back to Processing. Empty defaults to
// Processing.
func (o *Order) UpdateStatus(status Status) error {
	if status == "" {
		status = StatusProcessing
	}
	if !IsValidStatus(status) {
		return ErrInvalidStatus
	}
	o.Status = status
	return nil
}

// IsValidStatus reports whether the value is one of the defined states.
func IsValidStatus(status Status) bool {
	switch status {
	case StatusProcessing, StatusShipped, StatusDelivered, StatusCancel:
		return true
	default:
		return false
	}
}

func isValidPayment(method PaymentMethod) bool {
	switch method {
	case PaymentCash, PaymentOnline:
		return true
	default:
		return false
	}
}
