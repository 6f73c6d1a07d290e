package http

import (
	"hospitalfood/internal/core/application/usecases/queries"
	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/generated/servers"
	"hospitalfood/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// toID turns a decoded identifier into a kernel.UUID. The nil UUID counts as missing.
func toID(field string, id openapi_types.UUID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(field, err)
	}
	return parsed, nil
}

func toIDs(field string, ids []openapi_types.UUID) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		parsed, err := toID(field, id)
		if err != nil {
			return nil, err
		}
		out = append(out, parsed)
	}
	return out, nil
}

func toFoodItems(items []queries.FoodItem) []servers.FoodItem {
	out := make([]servers.FoodItem, len(items))
	for i, item := range items {
		out[i] = servers.FoodItem{
			Name:         item.Name,
			Quantity:     item.Quantity,
			Instructions: item.Instructions,
		}
	}
	return out
}

func fromFoodItems(items []servers.FoodItem) ([]kernel.FoodItem, error) {
	out := make([]kernel.FoodItem, 0, len(items))
	for _, item := range items {
		food, err := kernel.NewFoodItem(item.Name, item.Quantity, item.Instructions)
		if err != nil {
			return nil, err
		}
		out = append(out, food)
	}
	return out, nil
}

func toStaffRef(ref queries.StaffRef) servers.StaffRef {
	return servers.StaffRef{
		Id:          ref.ID.Bytes(),
		Name:        ref.Name,
		ContactInfo: ref.ContactInfo,
	}
}

func toOrder(view queries.OrderView) servers.Order {
	dto := servers.Order{
		Id:             view.ID.Bytes(),
		Session:        servers.Session(view.Session.String()),
		OrderDate:      openapi_types.Date{Time: view.OrderDate},
		CreatedAt:      view.CreatedAt,
		OrderStatus:    servers.OrderStatus(view.OrderStatus.String()),
		DeliveryStatus: servers.DeliveryStatus(view.DeliveryStatus.String()),
		Patient: servers.PatientRef{
			Id:          view.Patient.ID.Bytes(),
			Name:        view.Patient.Name,
			RoomNumber:  view.Patient.RoomNumber,
			BedNumber:   view.Patient.BedNumber,
			FloorNumber: view.Patient.FloorNumber,
		},
		PantryStaff:          toStaffRef(view.Pantry),
		PantryLocation:       view.PantryLocation,
		FoodItems:            toFoodItems(view.Items),
		DeliveryLocation:     view.DeliveryLocation,
		SpecialNotes:         view.SpecialNotes,
		CookingSpecialNotes:  view.CookingSpecialNotes,
		DeliverySpecialNotes: view.DeliverySpecialNotes,
	}
	if view.DeliveryPerson != nil {
		ref := toStaffRef(*view.DeliveryPerson)
		dto.DeliveryPerson = &ref
	}
	return dto
}

func toPatient(view queries.PatientView) servers.Patient {
	return servers.Patient{
		Id:               view.ID.Bytes(),
		Name:             view.Name,
		Diseases:         view.Diseases,
		Allergies:        view.Allergies,
		RoomNumber:       view.RoomNumber,
		BedNumber:        view.BedNumber,
		FloorNumber:      view.FloorNumber,
		Age:              view.Age,
		Gender:           view.Gender,
		ContactInfo:      view.ContactInfo,
		EmergencyContact: view.EmergencyContact,
		Others:           view.Others,
		CreatedAt:        view.CreatedAt,
	}
}

func toStaffMember(view queries.StaffView) servers.StaffMember {
	return servers.StaffMember{
		Id:          view.ID.Bytes(),
		Name:        view.Name,
		Email:       view.Email,
		Role:        servers.Role(view.Role.String()),
		ContactInfo: view.ContactInfo,
		Location:    view.Location,
		CreatedAt:   view.CreatedAt,
	}
}

func toStaffList(members []queries.StaffView) []servers.StaffMember {
	out := make([]servers.StaffMember, len(members))
	for i, member := range members {
		out[i] = toStaffMember(member)
	}
	return out
}
