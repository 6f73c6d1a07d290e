package ports

import (
	"context"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates.
type OrderRepository interface {
	// Add stores a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns an order by ID or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetMany returns orders in the order of ids, locked for update.
	// It fails with errs.ObjectNotFoundError naming the first missing ID.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)
}
