package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeshsummer/storefront-api/internal/domains/catalog/adapters/memory"
	"github.com/aeshsummer/storefront-api/internal/domains/catalog/domain"
	"github.com/aeshsummer/storefront-api/internal/domains/catalog/ports"
)

func newTestService(t *testing.T) (*Service, *domain.ProductType) {
	t.Helper()
	svc := NewService(memory.NewRepository(), memory.NewTypeRepository())
	shirts, err := svc.AddProductType(context.Background(), "Shirts")
	require.NoError(t, err)
	return svc, shirts
}

func TestAddProduct(t *testing.T) {
	svc, shirts := newTestService(t)

	saved, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Name:     "Linen Shirt",
		Price:    49.90,
		Quantity: 10,
		TypeID:   shirts.ID,
		Sizes:    []string{"S", "M", "L"},
		ImageURL: "https://cdn.example.com/linen.jpg",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.Entity.ID)
	assert.Equal(t, []string{"S", "M", "L"}, saved.Entity.Sizes)

	loaded, err := svc.GetProduct(context.Background(), saved.Entity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Linen Shirt", loaded.Entity.Name)
}

func TestAddProduct_UnknownType(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Name:     "Linen Shirt",
		Price:    49.90,
		Quantity: 10,
		TypeID:   "missing",
	})
	require.ErrorIs(t, err, ports.ErrTypeNotFound)
}

func TestAddProduct_InvalidFields(t *testing.T) {
	svc, shirts := newTestService(t)

	_, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Name: "", Price: 10, Quantity: 1, TypeID: shirts.ID,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddProduct(context.Background(), ports.AddProductInput{
		Name: "Shirt", Price: -1, Quantity: 1, TypeID: shirts.ID,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestEditProduct_PartialUpdate(t *testing.T) {
	svc, shirts := newTestService(t)
	saved, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Name: "Linen Shirt", Price: 49.90, Quantity: 10, TypeID: shirts.ID,
	})
	require.NoError(t, err)

	newPrice := 39.90
	edited, err := svc.EditProduct(context.Background(), ports.EditProductInput{
		ID:    saved.Entity.ID,
		Price: &newPrice,
	})
	require.NoError(t, err)

	// Only the price changed.
	assert.Equal(t, 39.90, edited.Entity.Price)
	assert.Equal(t, "Linen Shirt", edited.Entity.Name)
	assert.Equal(t, 10, edited.Entity.Quantity)
}

func TestEditProduct_UnknownTypeRejected(t *testing.T) {
	svc, shirts := newTestService(t)
	saved, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Name: "Linen Shirt", Price: 49.90, Quantity: 10, TypeID: shirts.ID,
	})
	require.NoError(t, err)

	missing := "missing"
	_, err = svc.EditProduct(context.Background(), ports.EditProductInput{
		ID:     saved.Entity.ID,
		TypeID: &missing,
	})
	require.ErrorIs(t, err, ports.ErrTypeNotFound)
}

func TestEditProduct_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	name := "Anything"
	_, err := svc.EditProduct(context.Background(), ports.EditProductInput{ID: "missing", Name: &name})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc, shirts := newTestService(t)
	saved, err := svc.AddProduct(context.Background(), ports.AddProductInput{
		Name: "Linen Shirt", Price: 49.90, Quantity: 10, TypeID: shirts.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(context.Background(), saved.Entity.ID))
	_, err = svc.GetProduct(context.Background(), saved.Entity.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestListProductsByCategory(t *testing.T) {
	svc, shirts := newTestService(t)
	hats, err := svc.AddProductType(context.Background(), "Hats")
	require.NoError(t, err)

	_, err = svc.AddProduct(context.Background(), ports.AddProductInput{
		Name: "Linen Shirt", Price: 49.90, Quantity: 10, TypeID: shirts.ID,
	})
	require.NoError(t, err)
	_, err = svc.AddProduct(context.Background(), ports.AddProductInput{
		Name: "Straw Hat", Price: 19.90, Quantity: 4, TypeID: hats.ID,
	})
	require.NoError(t, err)

	// Category names resolve case-insensitively.
	list, err := svc.ListProductsByCategory(context.Background(), "shirts")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Linen Shirt", list[0].Entity.Name)

	_, err = svc.ListProductsByCategory(context.Background(), "Boots")
	require.ErrorIs(t, err, ports.ErrTypeNotFound)
}

func TestListLatestProducts_DefaultLimit(t *testing.T) {
	svc, shirts := newTestService(t)
	for i := 0; i < 8; i++ {
		_, err := svc.AddProduct(context.Background(), ports.AddProductInput{
			Name: "Shirt", Price: 10, Quantity: 1, TypeID: shirts.ID,
		})
		require.NoError(t, err)
	}

	latest, err := svc.ListLatestProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, latest, 6)
}

func TestAddProductType_DuplicateName(t *testing.T) {
	svc, _ := newTestService(t)

	// Duplicate detection is case-insensitive, matching the name lookup.
	_, err := svc.AddProductType(context.Background(), "SHIRTS")
	require.ErrorIs(t, err, ports.ErrTypeExists)
}

func TestRenameProductType(t *testing.T) {
	svc, shirts := newTestService(t)

	renamed, err := svc.RenameProductType(context.Background(), shirts.ID, "Summer Shirts")
	require.NoError(t, err)
	assert.Equal(t, "Summer Shirts", renamed.Name)

	_, err = svc.RenameProductType(context.Background(), "missing", "Anything")
	require.ErrorIs(t, err, ports.ErrTypeNotFound)
}

func TestDeleteProductType(t *testing.T) {
	svc, shirts := newTestService(t)

	require.NoError(t, svc.DeleteProductType(context.Background(), shirts.ID))
	require.ErrorIs(t, svc.DeleteProductType(context.Background(), shirts.ID), ports.ErrTypeNotFound)

	types, err := svc.ListProductTypes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, types)
}
