//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	pacttest "github.com/aeshsummer/storefront-api/test/pact"

	storefrontserver "github.com/aeshsummer/storefront-api/go"
	adminmemory "github.com/aeshsummer/storefront-api/internal/domains/admins/adapters/memory"
	adminapp "github.com/aeshsummer/storefront-api/internal/domains/admins/application"
	catalogmemory "github.com/aeshsummer/storefront-api/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/aeshsummer/storefront-api/internal/domains/catalog/application"
	catalogdomain "github.com/aeshsummer/storefront-api/internal/domains/catalog/domain"
	contactsmemory "github.com/aeshsummer/storefront-api/internal/domains/contacts/adapters/memory"
	contactsapp "github.com/aeshsummer/storefront-api/internal/domains/contacts/application"
	"github.com/aeshsummer/storefront-api/internal/domains/orders/adapters/catalogbridge"
	ordersmemory "github.com/aeshsummer/storefront-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/aeshsummer/storefront-api/internal/domains/orders/adapters/observability"
	ordersapp "github.com/aeshsummer/storefront-api/internal/domains/orders/application"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestStorefrontProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateCatalogSeeded: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedProduct(t)
			}
			return nil, nil
		},
		pacttest.StateProductMissing: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
		pacttest.StateOrdersBaseline: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
		BeforeEach: func() error {
			app.reset(t)
			return nil
		},
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	products *catalogmemory.Repository
	server   *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	products := catalogmemory.NewRepository()
	types := catalogmemory.NewTypeRepository()
	catalogService := catalogapp.NewService(products, types)

	orderService := ordersobs.New(ordersapp.NewService(catalogbridge.New(products), ordersmemory.NewRepository()))
	contactService := contactsapp.NewService(contactsmemory.NewRepository())
	adminService := adminapp.NewService(adminmemory.NewRepository(), adminmemory.NewSessionStore(0))

	handlers := storefrontserver.ApiHandleFunctions{
		OrdersAPI:  storefrontserver.NewOrdersAPI(orderService, nil),
		CatalogAPI: storefrontserver.NewCatalogAPI(catalogService),
		ContactAPI: storefrontserver.NewContactAPI(contactService),
		AdminAPI:   storefrontserver.NewAdminAPI(adminService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = storefrontserver.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		products: products,
		server:   server,
	}
}

func (a *contractProviderApp) reset(t testing.TB) {
	t.Helper()
	list, err := a.products.List(context.Background())
	require.NoError(t, err)
	for _, projection := range list {
		_ = a.products.Delete(context.Background(), projection.Entity.ID)
	}
}

func (a *contractProviderApp) seedProduct(t testing.TB) {
	t.Helper()
	product, err := catalogdomain.NewProduct(pacttest.SeededProductID, pacttest.SeededProductName, 49.90, 10, "shirts")
	require.NoError(t, err)
	product.ReplaceSizes([]string{"S", "M", "L"})
	_, err = a.products.Save(context.Background(), product)
	require.NoError(t, err)
}
