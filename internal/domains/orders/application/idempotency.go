package application

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/aeshsummer/storefront-api/internal/domains/orders/ports"
)

type normalizedPlaceOrderInput struct {
	FullName        string               `json:"fullName"`
	Email           string               `json:"email"`
	PhoneNumber     string               `json:"phoneNumber"`
	ShippingAddress string               `json:"shippingAddress"`
	CartItems       []normalizedCartLine `json:"cartItems"`
	TotalAmount     float64              `json:"totalAmount"`
	PaymentMethod   string               `json:"paymentMethod"`
}

type normalizedCartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
}

// FingerprintPlaceOrder builds a deterministic hash of the placement payload (excluding the idempotency key).
func FingerprintPlaceOrder(input ports.PlaceOrderInput) (string, error) {
	normalized := normalizedPlaceOrderInput{
		FullName:        input.FullName,
		Email:           input.Email,
		PhoneNumber:     input.PhoneNumber,
		ShippingAddress: input.ShippingAddress,
		CartItems:       make([]normalizedCartLine, 0, len(input.CartItems)),
		TotalAmount:     input.TotalAmount,
		PaymentMethod:   input.PaymentMethod,
	}
	for _, item := range input.CartItems {
		normalized.CartItems = append(normalized.CartItems, normalizedCartLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Size:      item.Size,
		})
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
