package observability

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	ordersapp "github.com/aeshsummer/storefront-api/internal/domains/orders/application"
	ordersdomain "github.com/aeshsummer/storefront-api/internal/domains/orders/domain"
	ordersports "github.com/aeshsummer/storefront-api/internal/domains/orders/ports"
)

const tracerName = "github.com/aeshsummer/storefront-api/internal/domains/orders/adapters/observability/service"

// Service decorates the order service with tracing, logging, and metrics.
type Service struct {
	inner   ordersports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core order service.
func New(inner ordersports.Service, opts ...Option) ordersports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) PlaceOrder(ctx context.Context, input ordersports.PlaceOrderInput) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.PlaceOrder",
		trace.WithAttributes(
			attribute.Int("order.lines", len(input.CartItems)),
			attribute.String("order.payment_method", input.PaymentMethod),
		))
	defer span.End()

	s.logInfo(ctx, "placing order", slog.Int("order.lines", len(input.CartItems)))
	result, err := s.inner.PlaceOrder(ctx, input)
	if err != nil {
		if errors.Is(err, ordersapp.ErrRejected) || errors.Is(err, ordersapp.ErrInvalidInput) {
			s.metrics.recordRejected(ctx)
			span.SetAttributes(attribute.String("order.rejection", err.Error()))
			s.logInfo(ctx, "order rejected", slog.String("reason", err.Error()))
			return nil, err
		}
		return nil, s.handleError(ctx, span, err, "failed to place order")
	}
	s.metrics.recordPlaced(ctx, result.PaymentMethod)
	s.logInfo(ctx, "order placed",
		slog.String("order.id", result.ID),
		slog.Int("order.lines", len(result.Lines)),
		slog.Float64("order.total", result.TotalAmount),
	)
	return result, nil
}

func (s *Service) SetStatus(ctx context.Context, orderID string, newStatus ordersdomain.Status) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.SetStatus",
		trace.WithAttributes(
			attribute.String("order.id", orderID),
			attribute.String("order.status", string(newStatus)),
		))
	defer span.End()

	result, err := s.inner.SetStatus(ctx, orderID, newStatus)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order status", slog.String("order.id", orderID))
	}
	s.metrics.recordStatusUpdate(ctx, result.Status)
	s.logInfo(ctx, "order status updated", slog.String("order.id", result.ID), slog.String("status", string(result.Status)))
	return result, nil
}

func (s *Service) GetOrderByID(ctx context.Context, orderID string) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrderByID", trace.WithAttributes(attribute.String("order.id", orderID)))
	defer span.End()

	result, err := s.inner.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.String("order.id", orderID))
	}
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrders")
	defer span.End()

	result, err := s.inner.ListOrders(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	ordersPlaced   metric.Int64Counter
	ordersRejected metric.Int64Counter
	statusUpdates  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	placed, _ := m.Int64Counter("orders.service.placed", metric.WithDescription("Number of orders placed"))
	rejected, _ := m.Int64Counter("orders.service.rejected", metric.WithDescription("Number of cart submissions rejected during validation"))
	updates, _ := m.Int64Counter("orders.service.status_updates", metric.WithDescription("Number of order status transitions"))
	return serviceMetrics{ordersPlaced: placed, ordersRejected: rejected, statusUpdates: updates}
}

func (m serviceMetrics) recordPlaced(ctx context.Context, method ordersdomain.PaymentMethod) {
	if m.ordersPlaced != nil {
		m.ordersPlaced.Add(ctx, 1, metric.WithAttributes(attribute.String("order.payment_method", string(method))))
	}
}

func (m serviceMetrics) recordRejected(ctx context.Context) {
	if m.ordersRejected != nil {
		m.ordersRejected.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordStatusUpdate(ctx context.Context, status ordersdomain.Status) {
	if m.statusUpdates != nil {
		m.statusUpdates.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", string(status))))
	}
}

var _ ordersports.Service = (*Service)(nil)
