package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/aeshsummer/storefront-api/internal/domains/orders/domain"
	"github.com/aeshsummer/storefront-api/internal/domains/orders/ports"
)

// Service orchestrates the order use cases. Placement is the transactional
// core: validate the cart against live catalog state, reserve stock through
// atomic conditional decrements, then persist the order. Reservation-first
// ordering means a failed order write can always be compensated by restoring
// stock, so no committed order exists without its inventory effect.
type Service struct {
	catalog     ports.Catalog
	repo        ports.Repository
	idempotency ports.IdempotencyStore
	logger      *slog.Logger
}

// Option customizes the service.
type Option func(*Service)

// WithLogger attaches a structured logger used for stock consistency
// warnings during compensation.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIdempotencyStore enables replay of placements that carry a client
// idempotency key.
func WithIdempotencyStore(store ports.IdempotencyStore) Option {
	return func(s *Service) {
		s.idempotency = store
	}
}

// NewService wires the order service with its collaborators.
func NewService(catalog ports.Catalog, repo ports.Repository, opts ...Option) *Service {
	s := &Service{
		catalog: catalog,
		repo:    repo,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// PlaceOrder validates the submitted cart, reserves inventory, and persists
// the order. Any validation failure aborts before state changes; any commit
// failure is compensated so stock and orders stay consistent.
func (s *Service) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	key := strings.TrimSpace(input.IdempotencyKey)
	var requestHash string
	if key != "" && s.idempotency != nil {
		hash, err := FingerprintPlaceOrder(input)
		if err != nil {
			return nil, err
		}
		requestHash = hash
		existing, err := s.idempotency.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			if existing.RequestHash != requestHash {
				return nil, ports.ErrIdempotencyConflict
			}
			return s.repo.GetByID(ctx, existing.OrderID)
		}
	}

	order, err := buildOrder(input)
	if err != nil {
		return nil, mapError(err)
	}
	if err := s.validateLines(ctx, order.Lines); err != nil {
		return nil, err
	}
	reserved, err := s.reserveStock(ctx, order.Lines)
	if err != nil {
		s.releaseStock(ctx, reserved)
		return nil, err
	}
	saved, err := s.repo.Save(ctx, order)
	if err != nil {
		s.releaseStock(ctx, order.Lines)
		return nil, err
	}
	if key != "" && s.idempotency != nil {
		s.recordIdempotency(ctx, key, requestHash, saved.ID)
	}
	return saved, nil
}

// recordIdempotency stores the processed key after commit. A failure here only
// costs replay protection for retries, never the order itself.
func (s *Service) recordIdempotency(ctx context.Context, key, hash, orderID string) {
	_, err := s.idempotency.Save(ctx, ports.IdempotencyRecord{
		Key:         key,
		RequestHash: hash,
		OrderID:     orderID,
	})
	if err != nil && !errors.Is(err, ports.ErrIdempotencyConflict) {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to record idempotency key",
			slog.String("order.id", orderID),
			slog.String("error", err.Error()),
		)
	}
}

// SetStatus transitions an existing order's status. Every known status may
// move to every other; no workflow graph is enforced.
func (s *Service) SetStatus(ctx context.Context, orderID string, newStatus domain.Status) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.UpdateStatus(newStatus); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, order)
}

// GetOrderByID loads a single order.
func (s *Service) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, orderID)
}

// ListOrders returns all orders for the admin dashboard.
func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

// validateLines checks every cart line against the catalog, in cart order,
// failing fast on the first violation: unknown product, unoffered size, then
// insufficient stock.
func (s *Service) validateLines(ctx context.Context, lines []domain.Line) error {
	for _, line := range lines {
		view, err := s.catalog.Lookup(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, ports.ErrUnknownProduct) {
				return &ProductNotFoundError{ProductID: line.ProductID, Name: line.Name}
			}
			return err
		}
		if line.Size != "" && !view.HasSize(line.Size) {
			return &SizeUnavailableError{ProductID: line.ProductID, Name: line.Name, Size: line.Size}
		}
		if view.Quantity < line.Quantity {
			return &InsufficientStockError{
				ProductID: line.ProductID,
				Name:      line.Name,
				Requested: line.Quantity,
				Available: view.Quantity,
			}
		}
	}
	return nil
}

// reserveStock applies the conditional decrement per line, returning the
// lines already reserved so the caller can compensate on failure. A guard
// failure here is stock lost to a concurrent placement after validation
// passed; it surfaces as the same insufficient-stock rejection.
func (s *Service) reserveStock(ctx context.Context, lines []domain.Line) ([]domain.Line, error) {
	reserved := make([]domain.Line, 0, len(lines))
	for _, line := range lines {
		if err := s.catalog.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			switch {
			case errors.Is(err, ports.ErrStockConflict):
				return reserved, &InsufficientStockError{
					ProductID: line.ProductID,
					Name:      line.Name,
					Requested: line.Quantity,
					Available: s.currentStock(ctx, line.ProductID),
				}
			case errors.Is(err, ports.ErrUnknownProduct):
				return reserved, &ProductNotFoundError{ProductID: line.ProductID, Name: line.Name}
			default:
				return reserved, err
			}
		}
		reserved = append(reserved, line)
	}
	return reserved, nil
}

// releaseStock compensates reserved lines after a failed commit. A restore
// failure leaves inventory under-counted; it is logged loudly because unlike
// a validation rejection the customer was never told the order succeeded.
func (s *Service) releaseStock(ctx context.Context, lines []domain.Line) {
	for _, line := range lines {
		if err := s.catalog.RestoreStock(ctx, line.ProductID, line.Quantity); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelError, "stock restore failed, inventory is under-counted",
				slog.String("product.id", line.ProductID),
				slog.Int("quantity", line.Quantity),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (s *Service) currentStock(ctx context.Context, productID string) int {
	view, err := s.catalog.Lookup(ctx, productID)
	if err != nil {
		return 0
	}
	return view.Quantity
}

func buildOrder(input ports.PlaceOrderInput) (*domain.Order, error) {
	lines := make([]domain.Line, 0, len(input.CartItems))
	for _, item := range input.CartItems {
		lines = append(lines, domain.Line{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Size:      item.Size,
		})
	}
	return domain.NewOrder(
		uuid.NewString(),
		input.FullName,
		input.Email,
		input.PhoneNumber,
		input.ShippingAddress,
		lines,
		input.TotalAmount,
		domain.PaymentMethod(input.PaymentMethod),
	)
}

var _ ports.Service = (*Service)(nil)
