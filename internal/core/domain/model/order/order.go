package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when the aggregate bypassed its constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrDeliveryPersonRequired is returned when delivery progresses with nobody assigned.
	ErrDeliveryPersonRequired = errs.NewValueIsRequiredErrorWithCause(
		"deliveryPersonId",
		errors.New("delivery cannot start before a delivery person is assigned"),
	)
	// ErrOrderAlreadyDelivered is returned when a delivered order is reassigned.
	ErrOrderAlreadyDelivered = errs.NewValueIsInvalidErrorWithCause(
		"deliveryStatus is invalid",
		errors.New("delivered orders cannot be reassigned"),
	)
)

// MaxNotesLength bounds every free-text notes field.
const MaxNotesLength = 1000

// Order is the aggregate root for one patient's meal in one session.
type Order struct {
	id        kernel.UUID
	patientID kernel.UUID
	session   kernel.Session
	orderDate time.Time
	createdAt time.Time

	orderStatus    OrderStatus
	deliveryStatus DeliveryStatus

	pantryStaffID  kernel.UUID
	pantryLocation kernel.Location
	items          []kernel.FoodItem

	deliveryPersonID *kernel.UUID
	deliveryLocation kernel.Location

	specialNotes         string
	cookingSpecialNotes  string
	deliverySpecialNotes string

	events []StatusChanged

	isConstructed bool
}

// NewOrder places a pending order. orderDate is the UTC calendar day of createdAt.
func NewOrder(
	id kernel.UUID,
	patientID kernel.UUID,
	session kernel.Session,
	pantryStaffID kernel.UUID,
	pantryLocation kernel.Location,
	items []kernel.FoodItem,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		orderStatus:    OrderPending,
		deliveryStatus: DeliveryPending,
		createdAt:      createdAt.UTC(),
		orderDate:      DateOf(createdAt),
		isConstructed:  true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setPatientID(patientID),
		order.setSession(session),
		order.setPantryStaff(pantryStaffID, pantryLocation),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Snapshot carries the persisted state of an order.
type Snapshot struct {
	ID                   kernel.UUID
	PatientID            kernel.UUID
	Session              kernel.Session
	OrderDate            time.Time
	CreatedAt            time.Time
	OrderStatus          OrderStatus
	DeliveryStatus       DeliveryStatus
	PantryStaffID        kernel.UUID
	PantryLocation       kernel.Location
	Items                []kernel.FoodItem
	DeliveryPersonID     *kernel.UUID
	DeliveryLocation     kernel.Location
	SpecialNotes         string
	CookingSpecialNotes  string
	DeliverySpecialNotes string
}

// RestoreOrder rebuilds an order from storage, re-checking every invariant.
func RestoreOrder(s Snapshot) (*Order, error) {
	order := &Order{
		orderDate:            s.OrderDate.UTC(),
		createdAt:            s.CreatedAt.UTC(),
		deliveryLocation:     s.DeliveryLocation,
		specialNotes:         s.SpecialNotes,
		cookingSpecialNotes:  s.CookingSpecialNotes,
		deliverySpecialNotes: s.DeliverySpecialNotes,
		isConstructed:        true,
	}

	if err := errors.Join(
		order.setID(s.ID),
		order.setPatientID(s.PatientID),
		order.setSession(s.Session),
		order.setPantryStaff(s.PantryStaffID, s.PantryLocation),
		order.setItems(s.Items),
		s.OrderStatus.Validate(),
		s.DeliveryStatus.Validate(),
	); err != nil {
		return nil, err
	}

	order.orderStatus = s.OrderStatus
	order.deliveryStatus = s.DeliveryStatus

	if s.DeliveryPersonID != nil {
		if err := s.DeliveryPersonID.Validate(); err != nil {
			return nil, err
		}
		personID := *s.DeliveryPersonID
		order.deliveryPersonID = &personID
	} else if s.DeliveryStatus != DeliveryPending {
		return nil, ErrDeliveryPersonRequired
	}

	return order, nil
}

// Snapshot exports the current state for persistence.
func (o *Order) Snapshot() Snapshot {
	var personID *kernel.UUID
	if o.deliveryPersonID != nil {
		id := *o.deliveryPersonID
		personID = &id
	}

	return Snapshot{
		ID:                   o.id,
		PatientID:            o.patientID,
		Session:              o.session,
		OrderDate:            o.orderDate,
		CreatedAt:            o.createdAt,
		OrderStatus:          o.orderStatus,
		DeliveryStatus:       o.deliveryStatus,
		PantryStaffID:        o.pantryStaffID,
		PantryLocation:       o.pantryLocation,
		Items:                o.Items(),
		DeliveryPersonID:     personID,
		DeliveryLocation:     o.deliveryLocation,
		SpecialNotes:         o.specialNotes,
		CookingSpecialNotes:  o.cookingSpecialNotes,
		DeliverySpecialNotes: o.deliverySpecialNotes,
	}
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) PatientID() kernel.UUID {
	return o.patientID
}

func (o *Order) Session() kernel.Session {
	return o.session
}

func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) OrderStatus() OrderStatus {
	return o.orderStatus
}

func (o *Order) DeliveryStatus() DeliveryStatus {
	return o.deliveryStatus
}

func (o *Order) PantryStaffID() kernel.UUID {
	return o.pantryStaffID
}

func (o *Order) PantryLocation() kernel.Location {
	return o.pantryLocation
}

func (o *Order) DeliveryLocation() kernel.Location {
	return o.deliveryLocation
}

func (o *Order) SpecialNotes() string {
	return o.specialNotes
}

func (o *Order) CookingSpecialNotes() string {
	return o.cookingSpecialNotes
}

func (o *Order) DeliverySpecialNotes() string {
	return o.deliverySpecialNotes
}

// Items returns a copy of the ordered food items.
func (o *Order) Items() []kernel.FoodItem {
	return slices.Clone(o.items)
}

// DeliveryPerson returns the assigned delivery person or nil.
func (o *Order) DeliveryPerson() *kernel.UUID {
	if o.deliveryPersonID == nil {
		return nil
	}
	id := *o.deliveryPersonID
	return &id
}

// IsAssignedTo reports whether personID is the order's delivery person.
func (o *Order) IsAssignedTo(personID kernel.UUID) bool {
	return o.deliveryPersonID != nil && o.deliveryPersonID.IsEqual(personID)
}

// AssignDelivery (re)assigns the delivery person and destination until the order is delivered.
func (o *Order) AssignDelivery(personID kernel.UUID, location kernel.Location, notes string) error {
	if o.deliveryStatus.IsTerminal() {
		return ErrOrderAlreadyDelivered
	}
	if err := errors.Join(personID.Validate(), location.Validate(), validateNotes("deliverySpecialNotes", notes)); err != nil {
		return err
	}

	o.deliveryPersonID = &personID
	o.deliveryLocation = location
	o.deliverySpecialNotes = strings.TrimSpace(notes)
	return nil
}

// AdvanceOrderStatus moves the kitchen axis forward. The delivery axis is untouched.
func (o *Order) AdvanceOrderStatus(target OrderStatus, at time.Time) error {
	newStatus, err := o.orderStatus.AdvanceTo(target)
	if err != nil {
		return err
	}

	o.events = append(o.events, StatusChanged{
		OrderID:    o.id,
		Axis:       AxisOrder,
		From:       o.orderStatus.String(),
		To:         newStatus.String(),
		OccurredAt: at.UTC(),
	})
	o.orderStatus = newStatus
	return nil
}

// AdvanceDeliveryStatus moves the delivery axis forward. The kitchen axis is untouched.
func (o *Order) AdvanceDeliveryStatus(target DeliveryStatus, at time.Time) error {
	newStatus, err := o.deliveryStatus.AdvanceTo(target)
	if err != nil {
		return err
	}
	if o.deliveryPersonID == nil {
		return ErrDeliveryPersonRequired
	}

	o.events = append(o.events, StatusChanged{
		OrderID:    o.id,
		Axis:       AxisDelivery,
		From:       o.deliveryStatus.String(),
		To:         newStatus.String(),
		OccurredAt: at.UTC(),
	})
	o.deliveryStatus = newStatus
	return nil
}

// UpdateCookingNotes replaces the kitchen notes while the order is still being prepared.
func (o *Order) UpdateCookingNotes(notes string) error {
	if o.orderStatus == OrderCompleted {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderStatus is invalid",
			errors.New("cooking notes cannot change once the order is completed"),
		)
	}
	if err := validateNotes("cookingSpecialNotes", notes); err != nil {
		return err
	}

	o.cookingSpecialNotes = strings.TrimSpace(notes)
	return nil
}

// SetSpecialNotes records the caregiver's notes at placement time.
func (o *Order) SetSpecialNotes(notes, cookingNotes string) error {
	if err := errors.Join(
		validateNotes("specialNotes", notes),
		validateNotes("cookingSpecialNotes", cookingNotes),
	); err != nil {
		return err
	}

	o.specialNotes = strings.TrimSpace(notes)
	o.cookingSpecialNotes = strings.TrimSpace(cookingNotes)
	return nil
}

// DomainEvents returns the status changes recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []StatusChanged {
	return slices.Clone(o.events)
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPatientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("patientId", err)
	}
	o.patientID = id
	return nil
}

func (o *Order) setSession(session kernel.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	o.session = session
	return nil
}

func (o *Order) setPantryStaff(id kernel.UUID, location kernel.Location) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pantryStaffId", err)
	}
	if err := location.Validate(); err != nil {
		return err
	}
	o.pantryStaffID = id
	o.pantryLocation = location
	return nil
}

func (o *Order) setItems(items []kernel.FoodItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("foodItems")
	}
	for i, item := range items {
		if item.IsZero() {
			return errs.NewValueIsInvalidErrorWithCause("foodItems", fmt.Errorf("item %d was not constructed", i))
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func validateNotes(field, notes string) error {
	if n := len([]rune(notes)); n > MaxNotesLength {
		return errs.NewValueIsOutOfRangeError(field, n, 0, MaxNotesLength)
	}
	return nil
}

// DateOf truncates t to its UTC calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
