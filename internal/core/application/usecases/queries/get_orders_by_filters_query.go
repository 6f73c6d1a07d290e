package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/order"
	"hospitalfood/internal/pkg/errs"
	"hospitalfood/internal/pkg/guard"
)

// DateLayout is the wire format of the order date filter.
const DateLayout = "2006-01-02"

var ErrGetOrdersByFiltersQueryIsNotConstructed = errors.New(
	"GetOrdersByFiltersQuery must be created via NewGetOrdersByFiltersQuery constructor",
)

// OrderScope narrows the working set to the orders routed to one staff member.
type OrderScope string

const (
	ScopeAll      OrderScope = "all"
	ScopePantry   OrderScope = "pantry"
	ScopeDelivery OrderScope = "delivery"
)

// OrderFilters carries the raw filter values as they arrive on the wire.
// A blank field matches every order.
type OrderFilters struct {
	Date           string
	OrderStatus    string
	DeliveryStatus string
	Session        string
	Scope          OrderScope
	// ScopeID is the pantry staff member or delivery person for ScopePantry and ScopeDelivery.
	ScopeID kernel.UUID
}

// GetOrdersByFiltersQuery selects the working set of a dashboard.
//
// Every criterion is optional. Date matches the UTC calendar day the order was placed on.
// Scope "pantry" keeps the orders cooked by ScopeID, scope "delivery" those assigned to it.
//
// Example:
//
//	query, err := NewGetOrdersByFiltersQuery(OrderFilters{
//	    Date:        "2024-05-01",
//	    OrderStatus: "pending",
//	    Session:     "morning",
//	})
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetOrdersByFiltersQuery struct { //nolint:recvcheck //using for validation
	date           *time.Time
	orderStatus    *order.OrderStatus
	deliveryStatus *order.DeliveryStatus
	session        *kernel.Session
	scope          OrderScope
	scopeID        kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrdersByFiltersQuery(filters OrderFilters) (GetOrdersByFiltersQuery, error) {
	q := GetOrdersByFiltersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setDate(filters.Date),
		q.setOrderStatus(filters.OrderStatus),
		q.setDeliveryStatus(filters.DeliveryStatus),
		q.setSession(filters.Session),
		q.setScope(filters.Scope, filters.ScopeID),
	); err != nil {
		return GetOrdersByFiltersQuery{}, err
	}

	return q, nil
}

func (q GetOrdersByFiltersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByFiltersQueryIsNotConstructed)
}

func (q GetOrdersByFiltersQuery) Scope() OrderScope {
	return q.scope
}

func (q GetOrdersByFiltersQuery) ScopeID() kernel.UUID {
	return q.scopeID
}

func (q *GetOrdersByFiltersQuery) setDate(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%q is not YYYY-MM-DD", value))
	}
	q.date = &date
	return nil
}

func (q *GetOrdersByFiltersQuery) setOrderStatus(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	status, err := order.ParseOrderStatus(strings.TrimSpace(value))
	if err != nil {
		return err
	}
	q.orderStatus = &status
	return nil
}

func (q *GetOrdersByFiltersQuery) setDeliveryStatus(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	status, err := order.ParseDeliveryStatus(strings.TrimSpace(value))
	if err != nil {
		return err
	}
	q.deliveryStatus = &status
	return nil
}

func (q *GetOrdersByFiltersQuery) setSession(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	session, err := kernel.ParseSession(value)
	if err != nil {
		return err
	}
	q.session = &session
	return nil
}

func (q *GetOrdersByFiltersQuery) setScope(scope OrderScope, id kernel.UUID) error {
	switch scope {
	case "", ScopeAll:
		q.scope = ScopeAll
		return nil
	case ScopePantry, ScopeDelivery:
		if err := id.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("scopeId", err)
		}
		q.scope = scope
		q.scopeID = id
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"scope",
			fmt.Errorf("%q is not one of all, pantry, delivery", scope),
		)
	}
}

// PatientRef is the part of a patient shown next to an order.
type PatientRef struct {
	ID          kernel.UUID
	Name        string
	RoomNumber  string
	BedNumber   string
	FloorNumber string
}

// OrderView is one row of the dashboard order list.
type OrderView struct {
	ID                   kernel.UUID
	Session              kernel.Session
	OrderDate            time.Time
	CreatedAt            time.Time
	OrderStatus          order.OrderStatus
	DeliveryStatus       order.DeliveryStatus
	Patient              PatientRef
	Pantry               StaffRef
	PantryLocation       string
	Items                []FoodItem
	DeliveryPerson       *StaffRef
	DeliveryLocation     string
	SpecialNotes         string
	CookingSpecialNotes  string
	DeliverySpecialNotes string
}
