package mapper

import (
	ordersdomain "github.com/aeshsummer/storefront-api/internal/domains/orders/domain"
	ordersports "github.com/aeshsummer/storefront-api/internal/domains/orders/ports"
)

// CartItem is the HTTP representation of one submitted cart line.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Size      string  `json:"size,omitempty"`
}

// PlaceOrderRequest captures the checkout payload.
type PlaceOrderRequest struct {
	FullName        string     `json:"fullName"`
	Email           string     `json:"email"`
	PhoneNumber     string     `json:"phoneNumber"`
	ShippingAddress string     `json:"shippingAddress"`
	CartItems       []CartItem `json:"cartItems"`
	TotalAmount     float64    `json:"totalAmount"`
	PaymentMethod   string     `json:"paymentMethod"`
}

// UpdateStatusRequest captures the admin status transition payload.
type UpdateStatusRequest struct {
	ID        string `json:"id"`
	NewStatus string `json:"newStatus"`
}

// Order is the HTTP representation of a persisted order.
type Order struct {
	ID              string     `json:"id"`
	FullName        string     `json:"fullName"`
	Email           string     `json:"email"`
	PhoneNumber     string     `json:"phoneNumber"`
	ShippingAddress string     `json:"shippingAddress"`
	CartItems       []CartItem `json:"cartItems"`
	TotalAmount     float64    `json:"totalAmount"`
	PaymentMethod   string     `json:"paymentMethod"`
	Status          string     `json:"status"`
}

// ToPlaceOrderInput converts the checkout payload into the application input.
func ToPlaceOrderInput(req PlaceOrderRequest, idempotencyKey string) ordersports.PlaceOrderInput {
	items := make([]ordersports.CartLineInput, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		items = append(items, ordersports.CartLineInput{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Size:      item.Size,
		})
	}
	return ordersports.PlaceOrderInput{
		FullName:        req.FullName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		ShippingAddress: req.ShippingAddress,
		CartItems:       items,
		TotalAmount:     req.TotalAmount,
		PaymentMethod:   req.PaymentMethod,
		IdempotencyKey:  idempotencyKey,
	}
}

// FromDomainOrder maps a persisted order to its HTTP shape.
func FromDomainOrder(order *ordersdomain.Order) Order {
	items := make([]CartItem, 0, len(order.Lines))
	for _, line := range order.Lines {
		items = append(items, CartItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
			Size:      line.Size,
		})
	}
	return Order{
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

// FromDomainOrders maps a list of orders.
func FromDomainOrders(orders []*ordersdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomainOrder(order))
	}
	return result
}
