package commands

import (
	"context"
	"fmt"
	"time"

	"hospitalfood/internal/core/domain/model/order"
	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/core/domain/services"
	"hospitalfood/internal/core/ports"

	"go.uber.org/zap"
)

type UpdateOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	assigner   services.DeliveryAssigner
	publisher  ports.OrderEventPublisher
	logger     *zap.Logger
}

func NewUpdateOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	assigner services.DeliveryAssigner,
	publisher ports.OrderEventPublisher,
	logger *zap.Logger,
) UpdateOrdersCommandHandler {
	return UpdateOrdersCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		publisher:  publisher,
		logger:     logger.With(zap.String("component", "update-orders")),
	}
}

// Handle applies the changes to every order in one transaction and returns how many orders changed.
// Status change events are published after commit; a publishing failure is logged, not returned.
func (h *UpdateOrdersCommandHandler) Handle(ctx context.Context, cmd UpdateOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetMany(ctx, cmd.OrderIDs())
	if err != nil {
		return 0, err
	}

	if err = checkScope(cmd.Actor(), orders); err != nil {
		return 0, err
	}

	if personID := cmd.DeliveryPersonID(); personID != nil {
		person, getErr := uow.StaffRepository().Get(ctx, *personID)
		if getErr != nil {
			return 0, getErr
		}
		if err = h.assigner.Assign(orders, person, cmd.Location(), cmd.DeliverySpecialNotes()); err != nil {
			return 0, err
		}
	}

	now := time.Now()
	for _, o := range orders {
		if err = apply(o, cmd, now); err != nil {
			return 0, fmt.Errorf("order %s: %w", o.ID(), err)
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.publish(ctx, orders)
	return len(orders), nil
}

func apply(o *order.Order, cmd UpdateOrdersCommand, now time.Time) error {
	if notes := cmd.CookingSpecialNotes(); notes != nil {
		if err := o.UpdateCookingNotes(*notes); err != nil {
			return err
		}
	}
	if status := cmd.OrderStatus(); status != nil {
		if err := o.AdvanceOrderStatus(*status, now); err != nil {
			return err
		}
	}
	if status := cmd.DeliveryStatus(); status != nil {
		if err := o.AdvanceDeliveryStatus(*status, now); err != nil {
			return err
		}
	}
	return nil
}

// checkScope keeps pantry and delivery staff to the orders routed to them.
func checkScope(actor Actor, orders []*order.Order) error {
	for _, o := range orders {
		switch actor.Role {
		case staff.RoleDelivery:
			if !o.IsAssignedTo(actor.ID) {
				return fmt.Errorf("%w: order %s is not assigned to you", ports.ErrAccessDenied, o.ID())
			}
		case staff.RolePantryStaff:
			if !o.PantryStaffID().IsEqual(actor.ID) {
				return fmt.Errorf("%w: order %s belongs to another pantry", ports.ErrAccessDenied, o.ID())
			}
		}
	}
	return nil
}

func (h *UpdateOrdersCommandHandler) publish(ctx context.Context, orders []*order.Order) {
	var events []order.StatusChanged
	for _, o := range orders {
		events = append(events, o.DomainEvents()...)
		o.ClearDomainEvents()
	}
	if len(events) == 0 {
		return
	}

	if err := h.publisher.PublishStatusChanged(ctx, events); err != nil {
		h.logger.Error("failed to publish order status events", zap.Int("events", len(events)), zap.Error(err))
	}
}
