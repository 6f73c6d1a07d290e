package lifecycle_test

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"hospitalfood/internal/client/api"
	"hospitalfood/internal/client/lifecycle"
	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/staff"
)

// fakeService is an in-memory food-service API that applies updates to its orders.
type fakeService struct {
	mu sync.Mutex

	orders    []api.Order
	locations map[staff.Role][]string
	people    map[string][]api.StaffMember
	patients  []api.PatientMeal

	filterErr error
	updateErr error
	placeErr  error

	// beforeUpdate runs inside UpdateOrders before the change is applied.
	beforeUpdate func()
	// onLookup runs inside UsersByLocation before it answers.
	onLookup func(location string)
	// onFilter runs inside FilterOrders before it answers.
	onFilter func(filter api.Filter)

	calls   map[string]int
	updates []api.OrderUpdate
	placed  []api.MealOrder
}

func newFakeService(orders ...api.Order) *fakeService {
	return &fakeService{
		orders:    orders,
		locations: map[staff.Role][]string{},
		people:    map[string][]api.StaffMember{},
		calls:     map[string]int{},
	}
}

func (f *fakeService) count(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeService) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeService) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeService) FilterOrders(_ context.Context, filter api.Filter) (api.OrderList, error) {
	f.count("FilterOrders")
	if f.onFilter != nil {
		f.onFilter(filter)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.filterErr != nil {
		return api.OrderList{}, f.filterErr
	}

	var out []api.Order
	for _, o := range f.orders {
		if filter.Date != "" && o.OrderDate != filter.Date {
			continue
		}
		if filter.OrderStatus.Validate() == nil && o.OrderStatus != filter.OrderStatus {
			continue
		}
		if filter.DeliveryStatus.Validate() == nil && o.DeliveryStatus != filter.DeliveryStatus {
			continue
		}
		if filter.Session.Validate() == nil && o.Session != filter.Session {
			continue
		}
		out = append(out, o)
	}
	return api.OrderList{Orders: out, Message: fmt.Sprintf("%d order(s) found", len(out))}, nil
}

func (f *fakeService) UpdateOrders(_ context.Context, update api.OrderUpdate) (string, error) {
	f.count("UpdateOrders")
	if f.beforeUpdate != nil {
		f.beforeUpdate()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, update)
	if f.updateErr != nil {
		return "", f.updateErr
	}

	for i := range f.orders {
		o := &f.orders[i]
		if !slices.ContainsFunc(update.OrderIDs, o.ID.IsEqual) {
			continue
		}
		if update.OrderStatus != nil {
			o.OrderStatus = *update.OrderStatus
		}
		if update.DeliveryStatus != nil {
			o.DeliveryStatus = *update.DeliveryStatus
		}
		if update.DeliveryID != nil {
			o.DeliveryPerson = &api.StaffRef{ID: *update.DeliveryID}
		}
		if update.Location != nil {
			o.DeliveryLocation = *update.Location
		}
	}
	return fmt.Sprintf("%d order(s) updated successfully", len(update.OrderIDs)), nil
}

func (f *fakeService) UniqueLocations(_ context.Context, role staff.Role) ([]string, error) {
	f.count("UniqueLocations")
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.locations[role]), nil
}

func (f *fakeService) UsersByLocation(_ context.Context, _ staff.Role, location string) ([]api.StaffMember, error) {
	f.count("UsersByLocation")
	if f.onLookup != nil {
		f.onLookup(location)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.people[location]), nil
}

func (f *fakeService) PatientsWithMeal(context.Context, kernel.Session) ([]api.PatientMeal, error) {
	f.count("PatientsWithMeal")
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.patients), nil
}

func (f *fakeService) PlaceOrder(_ context.Context, mealOrder api.MealOrder) (string, error) {
	f.count("PlaceOrder")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.placed = append(f.placed, mealOrder)
	if f.placeErr != nil {
		return "", f.placeErr
	}
	return fmt.Sprintf("%d order(s) placed", len(mealOrder.PatientIDs)), nil
}

type notice struct {
	level   lifecycle.Level
	message string
}

// notices records everything the coordinator reports.
type notices struct {
	mu   sync.Mutex
	list []notice
}

func (n *notices) Notify(level lifecycle.Level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.list = append(n.list, notice{level: level, message: message})
}

func (n *notices) Last() notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.list) == 0 {
		return notice{}
	}
	return n.list[len(n.list)-1]
}

func (n *notices) Count(level lifecycle.Level) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	count := 0
	for _, item := range n.list {
		if item.level == level {
			count++
		}
	}
	return count
}
