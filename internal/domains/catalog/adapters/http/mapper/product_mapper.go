package mapper

import (
	"time"

	catalogdomain "github.com/aeshsummer/storefront-api/internal/domains/catalog/domain"
	"github.com/aeshsummer/storefront-api/internal/shared/projection"
)

// Product is the HTTP representation of a catalog item. The type reference is
// resolved to its category name for display.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	TypeID    string    `json:"type"`
	TypeName  string    `json:"typeName,omitempty"`
	Sizes     []string  `json:"sizes,omitempty"`
	ImageURL  string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProductType is the HTTP representation of a category.
type ProductType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AddProductRequest captures the admin payload for a new product.
type AddProductRequest struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"`
	TypeID   string   `json:"type"`
	Sizes    []string `json:"sizes"`
	ImageURL string   `json:"image"`
}

// EditProductRequest captures a partial admin update; nil fields are untouched.
type EditProductRequest struct {
	ID       string    `json:"id"`
	Name     *string   `json:"name"`
	Price    *float64  `json:"price"`
	Quantity *int      `json:"quantity"`
	TypeID   *string   `json:"typeId"`
	Sizes    *[]string `json:"sizes"`
	ImageURL *string   `json:"image"`
}

// FromProjection maps a stored product plus its resolved category name.
func FromProjection(p *projection.Projection[*catalogdomain.Product], typeName string) Product {
	product := p.Entity
	return Product{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  product.Quantity,
		TypeID:    product.TypeID,
		TypeName:  typeName,
		Sizes:     append([]string{}, product.Sizes...),
		ImageURL:  product.ImageURL,
		CreatedAt: p.Metadata.CreatedAt,
	}
}

// FromProjectionList maps stored products, resolving category names through
// the provided id-to-name index.
func FromProjectionList(list []*projection.Projection[*catalogdomain.Product], typeNames map[string]string) []Product {
	result := make([]Product, 0, len(list))
	for _, p := range list {
		result = append(result, FromProjection(p, typeNames[p.Entity.TypeID]))
	}
	return result
}

// FromDomainType maps a category to its HTTP shape.
func FromDomainType(t *catalogdomain.ProductType) ProductType {
	return ProductType{ID: t.ID, Name: t.Name}
}

// FromDomainTypes maps a list of categories.
func FromDomainTypes(types []*catalogdomain.ProductType) []ProductType {
	result := make([]ProductType, 0, len(types))
	for _, t := range types {
		result = append(result, FromDomainType(t))
	}
	return result
}
