package http

import (
	"bytes"
	"fmt"
	"net/http"

	"hospitalfood/internal/adapters/out/report"
	"hospitalfood/internal/core/application/usecases/commands"
	"hospitalfood/internal/core/application/usecases/queries"
	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/order"
	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/generated/servers"
	"hospitalfood/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetOrdersByFilters handles POST /api/orders/filter.
func (s *Server) GetOrdersByFilters(c echo.Context) error {
	page, _, err := s.filterOrders(c)
	if err != nil {
		return err
	}

	orders := make([]servers.Order, len(page.Orders))
	for i, view := range page.Orders {
		orders[i] = toOrder(view)
	}
	return c.JSON(http.StatusOK, servers.OrdersResponse{
		Orders:  orders,
		Message: ordersMessage(len(orders), page.Truncated),
	})
}

func ordersMessage(count int, truncated bool) string {
	if count == 0 {
		return "No orders found"
	}
	if truncated {
		return fmt.Sprintf("Showing the newest %d orders; narrow the filters to see older ones", count)
	}
	return fmt.Sprintf("%d order(s) found", count)
}

// ExportOrders handles POST /api/orders/export with the same body as the filter.
// A truncated export is flagged in the X-Orders-Truncated header.
func (s *Server) ExportOrders(c echo.Context) error {
	page, req, err := s.filterOrders(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = report.WriteOrders(&buf, page.Orders); err != nil {
		return err
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s", report.FileName(req.InputDate)))
	if page.Truncated {
		header.Set(HeaderOrdersTruncated, "true")
	}
	return c.Blob(http.StatusOK, report.ContentType, buf.Bytes())
}

// HeaderOrdersTruncated marks an export cut at queries.MaxOrdersPerPage rows.
const HeaderOrdersTruncated = "X-Orders-Truncated"

func (s *Server) filterOrders(c echo.Context) (queries.OrderPage, servers.OrderFilter, error) {
	req, err := bind[servers.OrderFilter](c)
	if err != nil {
		return queries.OrderPage{}, req, err
	}
	actor, err := actorOf(c)
	if err != nil {
		return queries.OrderPage{}, req, err
	}

	filters := queries.OrderFilters{
		Date:           req.InputDate,
		OrderStatus:    req.OrderStatus,
		DeliveryStatus: req.DeliveryStatus,
		Session:        req.Session,
	}
	if err = scopeFilters(&filters, actor, req); err != nil {
		return queries.OrderPage{}, req, err
	}

	query, err := queries.NewGetOrdersByFiltersQuery(filters)
	if err != nil {
		return queries.OrderPage{}, req, err
	}

	page, err := s.handlers.GetOrdersByFilters.Handle(c.Request().Context(), query)
	return page, req, err
}

// scopeFilters narrows pantry staff and delivery personnel to their own orders.
func scopeFilters(filters *queries.OrderFilters, actor commands.Actor, req servers.OrderFilter) error {
	switch actor.Role {
	case staff.RolePantryStaff:
		filters.Scope, filters.ScopeID = queries.ScopePantry, actor.ID
	case staff.RoleDelivery:
		filters.Scope, filters.ScopeID = queries.ScopeDelivery, actor.ID
	default:
		switch {
		case req.PantryId != nil:
			id, err := toID("pantryId", *req.PantryId)
			if err != nil {
				return err
			}
			filters.Scope, filters.ScopeID = queries.ScopePantry, id
		case req.DeliveryId != nil:
			id, err := toID("deliveryId", *req.DeliveryId)
			if err != nil {
				return err
			}
			filters.Scope, filters.ScopeID = queries.ScopeDelivery, id
		default:
			filters.Scope = queries.ScopeAll
		}
	}
	return nil
}

// UpdateOrders handles PUT /api/orders/status.
func (s *Server) UpdateOrders(c echo.Context) error {
	req, err := bind[servers.UpdateOrdersRequest](c)
	if err != nil {
		return err
	}
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	ids, err := toIDs("orderIds", req.OrderIds)
	if err != nil {
		return err
	}
	changes, err := toOrderChanges(req)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrdersCommand(actor, ids, changes)
	if err != nil {
		return err
	}

	updated, err := s.handlers.UpdateOrders.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, servers.UpdateOrdersResponse{
		Message: fmt.Sprintf("%d order(s) updated successfully", updated),
		Updated: updated,
	})
}

func toOrderChanges(req servers.UpdateOrdersRequest) (commands.OrderChanges, error) {
	changes := commands.OrderChanges{
		Location:             req.Location,
		DeliverySpecialNotes: req.DeliverySpecialNotes,
		CookingSpecialNotes:  req.CookingSpecialNotes,
	}

	if req.OrderStatus != nil {
		status, err := order.ParseOrderStatus(string(*req.OrderStatus))
		if err != nil {
			return commands.OrderChanges{}, err
		}
		changes.OrderStatus = &status
	}
	if req.DeliveryStatus != nil {
		status, err := order.ParseDeliveryStatus(string(*req.DeliveryStatus))
		if err != nil {
			return commands.OrderChanges{}, err
		}
		changes.DeliveryStatus = &status
	}
	if req.DeliveryId != nil {
		id, err := toID("deliveryId", *req.DeliveryId)
		if err != nil {
			return commands.OrderChanges{}, err
		}
		changes.DeliveryPersonID = &id
	}

	return changes, nil
}

// PlaceMealOrder handles POST /api/orders.
func (s *Server) PlaceMealOrder(c echo.Context) error {
	req, err := bind[servers.PlaceOrderRequest](c)
	if err != nil {
		return err
	}

	patientIDs, err := toIDs("patientIds", req.PatientIds)
	if err != nil {
		return err
	}
	session, err := kernel.ParseSession(string(req.Session))
	if err != nil {
		return err
	}
	pantryID, err := toID("pantryStaffId", req.PantryStaffId)
	if err != nil {
		return err
	}

	food := make(map[kernel.UUID][]kernel.FoodItem, len(req.FoodDetails))
	for rawID, items := range req.FoodDetails {
		id, parseErr := kernel.UUIDFromString(rawID)
		if parseErr != nil {
			return errs.NewValueIsInvalidErrorWithCause("foodDetails", parseErr)
		}
		if food[id], err = fromFoodItems(items); err != nil {
			return err
		}
	}

	cmd, err := commands.NewPlaceMealOrderCommand(patientIDs, session, food, pantryID, req.Location,
		req.SpecialNotes, req.CookingSpecialNote)
	if err != nil {
		return err
	}

	ids, err := s.handlers.PlaceMealOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	orderIDs := make([]openapi_types.UUID, len(ids))
	for i, id := range ids {
		orderIDs[i] = id.Bytes()
	}
	return c.JSON(http.StatusCreated, servers.PlaceOrderResponse{
		Message:  fmt.Sprintf("%d order(s) placed", len(ids)),
		OrderIds: orderIDs,
	})
}
