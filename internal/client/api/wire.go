package api

import (
	"hospitalfood/internal/core/domain/model/kernel"
)

// Request bodies as the server expects them. Unknown enum values are sent as blank strings.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type roleRequest struct {
	Role string `json:"role"`
}

type locationRoleRequest struct {
	Role     string `json:"role"`
	Location string `json:"location"`
}

type filterRequest struct {
	InputDate      string `json:"inputDate"`
	OrderStatus    string `json:"orderStatus"`
	DeliveryStatus string `json:"deliveryStatus"`
	Session        string `json:"session"`
	PantryID       string `json:"pantryId,omitempty"`
	DeliveryID     string `json:"deliveryId,omitempty"`
}

type updateRequest struct {
	OrderIDs             []string `json:"orderIds"`
	OrderStatus          *string  `json:"orderStatus,omitempty"`
	DeliveryStatus       *string  `json:"deliveryStatus,omitempty"`
	DeliveryID           *string  `json:"deliveryId,omitempty"`
	Location             *string  `json:"location,omitempty"`
	DeliverySpecialNotes *string  `json:"deliverySpecialNotes,omitempty"`
	CookingSpecialNotes  *string  `json:"cookingSpecialNotes,omitempty"`
}

type mealTimeRequest struct {
	MealTime string `json:"mealTime"`
}

type placeOrderRequest struct {
	PatientIDs         []string              `json:"patientIds"`
	Session            string                `json:"session"`
	FoodDetails        map[string][]FoodItem `json:"foodDetails,omitempty"`
	PantryStaffID      string                `json:"pantryStaffId"`
	Location           string                `json:"location"`
	SpecialNotes       string                `json:"specialNotes,omitempty"`
	CookingSpecialNote string                `json:"cookingSpecialNote,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (f Filter) request() filterRequest {
	req := filterRequest{InputDate: f.Date}
	if f.OrderStatus.Validate() == nil {
		req.OrderStatus = f.OrderStatus.String()
	}
	if f.DeliveryStatus.Validate() == nil {
		req.DeliveryStatus = f.DeliveryStatus.String()
	}
	if f.Session.Validate() == nil {
		req.Session = f.Session.String()
	}
	if f.PantryID != nil {
		req.PantryID = f.PantryID.String()
	}
	if f.DeliveryID != nil {
		req.DeliveryID = f.DeliveryID.String()
	}
	return req
}

func (u OrderUpdate) request() updateRequest {
	req := updateRequest{
		OrderIDs:             idStrings(u.OrderIDs),
		Location:             u.Location,
		DeliverySpecialNotes: u.DeliverySpecialNotes,
		CookingSpecialNotes:  u.CookingSpecialNotes,
	}
	if u.OrderStatus != nil {
		s := u.OrderStatus.String()
		req.OrderStatus = &s
	}
	if u.DeliveryStatus != nil {
		s := u.DeliveryStatus.String()
		req.DeliveryStatus = &s
	}
	if u.DeliveryID != nil {
		s := u.DeliveryID.String()
		req.DeliveryID = &s
	}
	return req
}

func (m MealOrder) request() placeOrderRequest {
	req := placeOrderRequest{
		PatientIDs:         idStrings(m.PatientIDs),
		Session:            m.Session.String(),
		PantryStaffID:      m.PantryStaffID.String(),
		Location:           m.Location,
		SpecialNotes:       m.SpecialNotes,
		CookingSpecialNote: m.CookingSpecialNote,
	}
	if len(m.FoodDetails) > 0 {
		req.FoodDetails = make(map[string][]FoodItem, len(m.FoodDetails))
		for id, items := range m.FoodDetails {
			req.FoodDetails[id.String()] = items
		}
	}
	return req
}

func idStrings(ids []kernel.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
