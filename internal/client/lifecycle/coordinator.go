package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"hospitalfood/internal/client/api"
	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/order"
	"hospitalfood/internal/core/domain/model/staff"

	"go.uber.org/zap"
)

// NoOrdersMessage is the notice for a filter that matched nothing.
const NoOrdersMessage = "No orders found for the selected filters."

// ErrUnsupportedRole is returned for a staff lookup of a role nobody picks from.
var ErrUnsupportedRole = errors.New("no staff picker for role")

// OrderService is the part of the food-service API the coordinator talks to.
type OrderService interface {
	FilterOrders(ctx context.Context, filter api.Filter) (api.OrderList, error)
	UpdateOrders(ctx context.Context, update api.OrderUpdate) (string, error)
	UniqueLocations(ctx context.Context, role staff.Role) ([]string, error)
	UsersByLocation(ctx context.Context, role staff.Role, location string) ([]api.StaffMember, error)
	PatientsWithMeal(ctx context.Context, session kernel.Session) ([]api.PatientMeal, error)
	PlaceOrder(ctx context.Context, mealOrder api.MealOrder) (string, error)
}

// Outcome tells a successful fetch that found orders from one that found none.
// OutcomeStale is a fetch whose answer arrived after a newer fetch was started; it changes nothing.
type Outcome int

const (
	OutcomeLoaded Outcome = iota + 1
	OutcomeEmpty
	OutcomeStale
)

// Coordinator turns staff actions into order fetches and batch updates.
// State changes only after the server confirms; a failed call leaves it as it was.
// All methods are safe for concurrent use.
type Coordinator struct {
	service  OrderService
	notifier Notifier
	logger   *zap.Logger

	mu           sync.Mutex
	fetches      uint64
	orders       []api.Order
	summary      string
	activeFilter *api.Filter
	selection    Selection
	assignOpen   bool
	pickers      map[staff.Role]*StaffPicker

	mealSession      kernel.Session
	patients         []api.PatientMeal
	patientSelection Selection

	inFlight atomic.Bool
}

func New(service OrderService, notifier Notifier, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		service:  service,
		notifier: notifier,
		logger:   logger.Named("lifecycle"),
		pickers: map[staff.Role]*StaffPicker{
			staff.RoleDelivery:    newStaffPicker(staff.RoleDelivery),
			staff.RolePantryStaff: newStaffPicker(staff.RolePantryStaff),
		},
	}
}

// Fetch loads the orders matching filter and makes it the active filter.
// Zero matches is OutcomeEmpty with an informational notice, not an error.
// Only the latest fetch may change state: an earlier one answering late is dropped as OutcomeStale.
func (c *Coordinator) Fetch(ctx context.Context, filter api.Filter) (Outcome, error) {
	c.mu.Lock()
	c.fetches++
	generation := c.fetches
	c.mu.Unlock()

	list, err := c.service.FilterOrders(ctx, filter)

	c.mu.Lock()
	current := generation == c.fetches
	if err == nil && current {
		c.orders = slices.Clone(list.Orders)
		c.summary = list.Message
		c.activeFilter = &filter
		c.pruneSelection()
	}
	c.mu.Unlock()

	if !current {
		c.logger.Debug("dropped stale order fetch", zap.Uint64("generation", generation))
		return OutcomeStale, nil
	}
	if err != nil {
		c.fail(err)
		return 0, err
	}

	if len(list.Orders) == 0 {
		c.notifier.Notify(LevelInfo, NoOrdersMessage)
		return OutcomeEmpty, nil
	}
	return OutcomeLoaded, nil
}

// Refresh re-runs the active filter. Without one it does nothing.
func (c *Coordinator) Refresh(ctx context.Context) (Outcome, error) {
	filter, ok := c.ActiveFilter()
	if !ok {
		return 0, nil
	}
	return c.Fetch(ctx, filter)
}

// Toggle flips the selection of an order and reports whether it is now selected.
func (c *Coordinator) Toggle(id kernel.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.Toggle(id)
}

// ClearSelection empties the order selection.
func (c *Coordinator) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.Clear()
}

// LoadLocations fetches the distinct locations of role for its picker.
func (c *Coordinator) LoadLocations(ctx context.Context, role staff.Role) ([]string, error) {
	if _, err := c.picker(role); err != nil {
		c.fail(err)
		return nil, err
	}

	locations, err := c.service.UniqueLocations(ctx, role)
	if err != nil {
		c.fail(err)
		return nil, err
	}

	c.mu.Lock()
	c.pickers[role].locations = slices.Clone(locations)
	c.mu.Unlock()
	return locations, nil
}

// SelectLocation switches the picker of role to location, drops the chosen person and
// loads the people working there. An answer for a location that is no longer selected is dropped.
func (c *Coordinator) SelectLocation(ctx context.Context, role staff.Role, location string) error {
	c.mu.Lock()
	p, err := c.picker(role)
	if err != nil {
		c.mu.Unlock()
		c.fail(err)
		return err
	}
	generation := p.selectLocation(location)
	c.mu.Unlock()

	if location == "" {
		return nil
	}

	people, err := c.service.UsersByLocation(ctx, role, location)

	c.mu.Lock()
	current := generation == p.generation
	if err == nil && current {
		p.setPeople(generation, people)
	}
	c.mu.Unlock()

	if !current {
		c.logger.Debug("dropped stale staff lookup", zap.String("location", location))
		return nil
	}
	if err != nil {
		c.fail(err)
		return err
	}
	if len(people) == 0 {
		c.notifier.Notify(LevelInfo, fmt.Sprintf("No %s staff found at %s.", role, location))
	}
	return nil
}

// ChoosePerson picks a member listed for the current location of role's picker.
func (c *Coordinator) ChoosePerson(role staff.Role, id kernel.UUID) error {
	c.mu.Lock()
	p, err := c.picker(role)
	if err == nil {
		err = p.choose(id)
	}
	c.mu.Unlock()

	if err != nil {
		c.fail(err)
	}
	return err
}

func (c *Coordinator) OpenAssign() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.assignOpen = true
}

func (c *Coordinator) CloseAssign() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.assignOpen = false
}

// AssignDelivery hands the selected orders to the chosen delivery person at the chosen location.
// Missing selection, location or person is reported without calling the server.
func (c *Coordinator) AssignDelivery(ctx context.Context, notes string) error {
	c.mu.Lock()
	ids := c.selection.IDs()
	location, person, err := c.pickers[staff.RoleDelivery].resolved()
	if len(ids) == 0 {
		err = ErrEmptySelection
	}
	c.mu.Unlock()
	if err != nil {
		c.fail(err)
		return err
	}

	update := api.OrderUpdate{
		OrderIDs:             ids,
		DeliveryID:           &person.ID,
		Location:             &location,
		DeliverySpecialNotes: &notes,
	}
	return c.submit(ctx, update, func() {
		c.assignOpen = false
	}, false)
}

// AdvanceDelivery moves every selected order's delivery status to target, then refreshes.
func (c *Coordinator) AdvanceDelivery(ctx context.Context, target order.DeliveryStatus) error {
	if target != order.DeliveryInProgress && target != order.DeliveryDelivered {
		err := fmt.Errorf("%w: deliveryStatus can only be set to %s or %s, not %s",
			ErrInvalidTarget, order.DeliveryInProgress, order.DeliveryDelivered, target)
		c.fail(err)
		return err
	}

	ids, err := c.checkSelected(func(o api.Order) error {
		if err := o.DeliveryStatus.ValidateAdvanceTo(target); err != nil {
			return fmt.Errorf("%w: order for %s: %w", ErrInvalidTarget, o.Patient.Name, err)
		}
		if o.DeliveryPerson == nil {
			return fmt.Errorf("%w: order for %s has no delivery person", ErrPersonRequired, o.Patient.Name)
		}
		return nil
	})
	if err != nil {
		c.fail(err)
		return err
	}

	return c.submit(ctx, api.OrderUpdate{OrderIDs: ids, DeliveryStatus: &target}, nil, true)
}

// AdvanceKitchen moves every selected order's kitchen status to target, then refreshes.
func (c *Coordinator) AdvanceKitchen(ctx context.Context, target order.OrderStatus) error {
	if target != order.OrderPreparing && target != order.OrderCompleted {
		err := fmt.Errorf("%w: orderStatus can only be set to %s or %s, not %s",
			ErrInvalidTarget, order.OrderPreparing, order.OrderCompleted, target)
		c.fail(err)
		return err
	}

	ids, err := c.checkSelected(func(o api.Order) error {
		if err := o.OrderStatus.ValidateAdvanceTo(target); err != nil {
			return fmt.Errorf("%w: order for %s: %w", ErrInvalidTarget, o.Patient.Name, err)
		}
		return nil
	})
	if err != nil {
		c.fail(err)
		return err
	}

	return c.submit(ctx, api.OrderUpdate{OrderIDs: ids, OrderStatus: &target}, nil, true)
}

// LoadPatients fetches the patients with a planned meal for session and clears the patient selection.
func (c *Coordinator) LoadPatients(ctx context.Context, session kernel.Session) error {
	patients, err := c.service.PatientsWithMeal(ctx, session)
	if err != nil {
		c.fail(err)
		return err
	}

	c.mu.Lock()
	c.mealSession = session
	c.patients = slices.Clone(patients)
	c.patientSelection.Clear()
	c.mu.Unlock()

	if len(patients) == 0 {
		c.notifier.Notify(LevelInfo, fmt.Sprintf("No patients have a %s meal planned.", session))
	}
	return nil
}

func (c *Coordinator) TogglePatient(id kernel.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.patientSelection.Toggle(id)
}

// MealOrderInput carries what the caregiver types next to the patient selection.
// FoodDetails overrides the planned meal of the patients it names.
type MealOrderInput struct {
	FoodDetails  map[kernel.UUID][]api.FoodItem
	SpecialNotes string
	CookingNotes string
}

// PlaceOrder orders the loaded session's meal for every selected patient from the chosen pantry.
func (c *Coordinator) PlaceOrder(ctx context.Context, input MealOrderInput) error {
	c.mu.Lock()
	ids := c.patientSelection.IDs()
	session := c.mealSession
	location, pantry, err := c.pickers[staff.RolePantryStaff].resolved()
	if len(ids) == 0 || session.Validate() != nil {
		err = ErrEmptySelection
	}
	c.mu.Unlock()
	if err != nil {
		c.fail(err)
		return err
	}

	var food map[kernel.UUID][]api.FoodItem
	if len(input.FoodDetails) > 0 {
		food = maps.Clone(input.FoodDetails)
	}

	if !c.inFlight.CompareAndSwap(false, true) {
		c.fail(ErrSubmissionInFlight)
		return ErrSubmissionInFlight
	}
	defer c.inFlight.Store(false)

	msg, err := c.service.PlaceOrder(ctx, api.MealOrder{
		PatientIDs:         ids,
		Session:            session,
		FoodDetails:        food,
		PantryStaffID:      pantry.ID,
		Location:           location,
		SpecialNotes:       input.SpecialNotes,
		CookingSpecialNote: input.CookingNotes,
	})
	if err != nil {
		c.fail(err)
		return err
	}

	c.mu.Lock()
	c.patientSelection.Clear()
	c.mu.Unlock()
	c.notifier.Notify(LevelSuccess, msg)
	return nil
}

// submit sends one batch update behind the in-flight guard. On success it clears the
// selection, runs onSuccess under the lock and optionally re-runs the active filter.
func (c *Coordinator) submit(ctx context.Context, update api.OrderUpdate, onSuccess func(), refresh bool) error {
	if !c.inFlight.CompareAndSwap(false, true) {
		c.fail(ErrSubmissionInFlight)
		return ErrSubmissionInFlight
	}

	msg, err := c.service.UpdateOrders(ctx, update)
	c.inFlight.Store(false)
	if err != nil {
		c.fail(err)
		return err
	}

	c.mu.Lock()
	c.selection.Clear()
	if onSuccess != nil {
		onSuccess()
	}
	c.mu.Unlock()
	c.notifier.Notify(LevelSuccess, msg)

	if refresh {
		// the update went through; a failed refresh is reported by Fetch itself
		_, _ = c.Refresh(ctx)
	}
	return nil
}

// checkSelected returns the selected IDs after running check on each selected order that is loaded.
func (c *Coordinator) checkSelected(check func(api.Order) error) ([]kernel.UUID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := c.selection.IDs()
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}
	for _, o := range c.orders {
		if !c.selection.Contains(o.ID) {
			continue
		}
		if err := check(o); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

// pruneSelection drops selected IDs that are not in the loaded orders. Callers hold mu.
func (c *Coordinator) pruneSelection() {
	for _, id := range c.selection.IDs() {
		if !slices.ContainsFunc(c.orders, func(o api.Order) bool { return o.ID.IsEqual(id) }) {
			c.selection.Toggle(id)
		}
	}
}

func (c *Coordinator) picker(role staff.Role) (*StaffPicker, error) {
	p, ok := c.pickers[role]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnsupportedRole, role)
	}
	return p, nil
}

func (c *Coordinator) fail(err error) {
	c.logger.Debug("action failed", zap.Error(err))
	c.notifier.Notify(LevelError, err.Error())
}

// Orders returns the orders of the last successful fetch.
func (c *Coordinator) Orders() []api.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.orders)
}

// Summary is the server's message for the last successful fetch, such as a note that
// only the newest orders were returned.
func (c *Coordinator) Summary() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summary
}

func (c *Coordinator) Selected() []kernel.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.IDs()
}

func (c *Coordinator) IsSelected(id kernel.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.Contains(id)
}

func (c *Coordinator) ActiveFilter() (api.Filter, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeFilter == nil {
		return api.Filter{}, false
	}
	return *c.activeFilter, true
}

func (c *Coordinator) AssignOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.assignOpen
}

// Picker returns a snapshot of role's location and person choice.
func (c *Coordinator) Picker(role staff.Role) (PickerState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, err := c.picker(role)
	if err != nil {
		return PickerState{}, err
	}
	return p.state(), nil
}

// ResetPicker forgets role's location and chosen person.
func (c *Coordinator) ResetPicker(role staff.Role) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, err := c.picker(role); err == nil {
		p.reset()
	}
}

func (c *Coordinator) Patients() []api.PatientMeal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.patients)
}

func (c *Coordinator) SelectedPatients() []kernel.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.patientSelection.IDs()
}

// Submitting reports whether a submission is waiting for the server.
func (c *Coordinator) Submitting() bool {
	return c.inFlight.Load()
}
