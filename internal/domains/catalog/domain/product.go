package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName        = errors.New("product name is required")
	ErrNegativePrice    = errors.New("product price must not be negative")
	ErrNegativeQuantity = errors.New("product quantity must not be negative")
	ErrEmptyType        = errors.New("product type reference is required")
)

// Product is the catalog aggregate: a sellable item with live stock and
// optional size variants. Quantity is only ever reduced by order placement.
type Product struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
	TypeID   string
	Sizes    []string
	ImageURL string
}

// NewProduct validates invariants and builds a new Product aggregate.
func NewProduct(id, name string, price float64, quantity int, typeID string) (*Product, error) {
	p := &Product{ID: id}
	if err := p.Rename(name); err != nil {
		return nil, err
	}
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	if err := p.SetQuantity(quantity); err != nil {
		return nil, err
	}
	if err := p.SetType(typeID); err != nil {
		return nil, err
	}
	return p, nil
}

// Rename mutates the product name ensuring the invariant.
func (p *Product) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// SetPrice stores a non-negative unit price.
func (p *Product) SetPrice(price float64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	p.Price = price
	return nil
}

// SetQuantity stores the available stock count.
func (p *Product) SetQuantity(quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	p.Quantity = quantity
	return nil
}

// SetType points the product at its category.
func (p *Product) SetType(typeID string) error {
	if strings.TrimSpace(typeID) == "" {
		return ErrEmptyType
	}
	p.TypeID = typeID
	return nil
}

// ReplaceSizes overwrites the size variants. An empty list means the product
// has no size dimension.
func (p *Product) ReplaceSizes(sizes []string) {
	if len(sizes) == 0 {
		p.Sizes = nil
		return
	}
	p.Sizes = append([]string{}, sizes...)
}

// SetImageURL records the display asset location.
func (p *Product) SetImageURL(url string) {
	p.ImageURL = strings.TrimSpace(url)
}

// HasSize reports whether the exact size variant is offered. Matching is
// case-sensitive: "M" and "m" are distinct variants.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Sized reports whether the product carries size variants at all.
func (p *Product) Sized() bool {
	return len(p.Sizes) > 0
}

// Validate re-applies the aggregate invariants for persistence.
func (p *Product) Validate() error {
	if err := p.Rename(p.Name); err != nil {
		return err
	}
	if err := p.SetPrice(p.Price); err != nil {
		return err
	}
	if err := p.SetQuantity(p.Quantity); err != nil {
		return err
	}
	return p.SetType(p.TypeID)
}
