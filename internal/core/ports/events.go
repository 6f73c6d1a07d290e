package ports

import (
	"context"

	"hospitalfood/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed order status changes to other systems.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, events []order.StatusChanged) error
}
