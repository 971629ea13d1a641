package domain

import (
	"errors"
	"strings"
)

var ErrEmptyTypeName = errors.New("product type name is required")

// ProductType groups products into a named category. Names are unique across
// the catalog.
type ProductType struct {
	ID   string
	Name string
}

// NewProductType validates and constructs a category.
func NewProductType(id, name string) (*ProductType, error) {
	t := &ProductType{ID: id}
	if err := t.Rename(name); err != nil {
		return nil, err
	}
	return t, nil
}

// Rename trims and validates the category name.
func (t *ProductType) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyTypeName
	}
	t.Name = name
	return nil
}
