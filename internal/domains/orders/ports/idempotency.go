package ports

import (
	"context"
	"errors"
	"time"
)

// ErrIdempotencyConflict signals reuse of an idempotency key with a different payload.
var ErrIdempotencyConflict = errors.New("idempotency key conflict")

// IdempotencyRecord captures a processed placement keyed by client idempotency key.
type IdempotencyRecord struct {
	Key         string
	RequestHash string
	OrderID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IdempotencyStore abstracts idempotency key persistence for order placement.
type IdempotencyStore interface {
	// Get loads a record by key, returning nil when absent.
	Get(ctx context.Context, key string) (*IdempotencyRecord, error)
	// Save inserts the record; if the key already exists with the same
	// hash/order it is returned, otherwise ErrIdempotencyConflict is
	// returned with the stored record.
	Save(ctx context.Context, record IdempotencyRecord) (*IdempotencyRecord, error)
}
