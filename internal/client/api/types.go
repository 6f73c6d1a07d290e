package api

import (
	"time"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/order"
	"hospitalfood/internal/core/domain/model/staff"
)

type StaffMember struct {
	ID          kernel.UUID `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email,omitempty"`
	Role        staff.Role  `json:"role"`
	ContactInfo string      `json:"contactInfo"`
	Location    string      `json:"location"`
}

type LoginResult struct {
	Token string      `json:"token"`
	Role  staff.Role  `json:"role"`
	User  StaffMember `json:"user"`
}

type FoodItem struct {
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	Instructions string `json:"instructions,omitempty"`
}

type PatientRef struct {
	ID          kernel.UUID `json:"id"`
	Name        string      `json:"name"`
	RoomNumber  string      `json:"roomNumber"`
	BedNumber   string      `json:"bedNumber"`
	FloorNumber string      `json:"floorNumber"`
}

type StaffRef struct {
	ID          kernel.UUID `json:"id"`
	Name        string      `json:"name"`
	ContactInfo string      `json:"contactInfo"`
}

type Order struct {
	ID                   kernel.UUID          `json:"id"`
	Session              kernel.Session       `json:"session"`
	OrderDate            string               `json:"orderDate"`
	CreatedAt            time.Time            `json:"createdAt"`
	OrderStatus          order.OrderStatus    `json:"orderStatus"`
	DeliveryStatus       order.DeliveryStatus `json:"deliveryStatus"`
	Patient              PatientRef           `json:"patient"`
	PantryStaff          StaffRef             `json:"pantryStaff"`
	PantryLocation       string               `json:"pantryLocation"`
	FoodItems            []FoodItem           `json:"foodItems"`
	DeliveryPerson       *StaffRef            `json:"deliveryPerson,omitempty"`
	DeliveryLocation     string               `json:"deliveryLocation,omitempty"`
	SpecialNotes         string               `json:"specialNotes,omitempty"`
	CookingSpecialNotes  string               `json:"cookingSpecialNotes,omitempty"`
	DeliverySpecialNotes string               `json:"deliverySpecialNotes,omitempty"`
}

// OrderList is one answer to a filter. Message is the server's summary and says
// when only the newest orders were returned.
type OrderList struct {
	Orders  []Order `json:"orders"`
	Message string  `json:"message"`
}

// Filter selects orders. Zero fields match everything.
type Filter struct {
	Date           string
	OrderStatus    order.OrderStatus
	DeliveryStatus order.DeliveryStatus
	Session        kernel.Session
	// PantryID and DeliveryID only narrow a manager's view.
	PantryID   *kernel.UUID
	DeliveryID *kernel.UUID
}

// OrderUpdate changes every listed order the same way. Nil fields are left out of the request.
type OrderUpdate struct {
	OrderIDs             []kernel.UUID
	OrderStatus          *order.OrderStatus
	DeliveryStatus       *order.DeliveryStatus
	DeliveryID           *kernel.UUID
	Location             *string
	DeliverySpecialNotes *string
	CookingSpecialNotes  *string
}

type Patient struct {
	ID          kernel.UUID `json:"id"`
	Name        string      `json:"name"`
	Allergies   []string    `json:"allergies"`
	RoomNumber  string      `json:"roomNumber"`
	BedNumber   string      `json:"bedNumber"`
	FloorNumber string      `json:"floorNumber"`
}

type PatientMeal struct {
	Patient     Patient    `json:"patient"`
	MealDetails []FoodItem `json:"mealDetails"`
}

// MealOrder places one order per patient for a session.
// Patients missing from FoodDetails get their planned meal.
type MealOrder struct {
	PatientIDs         []kernel.UUID
	Session            kernel.Session
	FoodDetails        map[kernel.UUID][]FoodItem
	PantryStaffID      kernel.UUID
	Location           string
	SpecialNotes       string
	CookingSpecialNote string
}
