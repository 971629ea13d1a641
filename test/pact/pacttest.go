//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "storefront-api"
	ConsumerName = "storefront-web"

	StateCatalogSeeded  = "catalog has a shirt in stock"
	StateProductMissing = "no product with the ghost id"
	StateOrdersBaseline = "orders baseline"
)

const (
	SeededProductID   = "11111111-1111-4111-8111-111111111111"
	MissingProductID  = "00000000-0000-4000-8000-000000000000"
	SeededProductName = "Pact Linen Shirt"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the storefront consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleOrderPayload provides stable checkout data for pact interactions.
func ExampleOrderPayload(productID string) map[string]any {
	return map[string]any{
		"fullName":        "Pact Customer",
		"email":           "pact.customer@example.com",
		"phoneNumber":     "555-0101",
		"shippingAddress": "12 Shore Road",
		"cartItems": []map[string]any{
			{
				"productId": productID,
				"name":      SeededProductName,
				"quantity":  1,
				"price":     49.90,
				"size":      "M",
			},
		},
		"totalAmount":   49.90,
		"paymentMethod": "cash",
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
