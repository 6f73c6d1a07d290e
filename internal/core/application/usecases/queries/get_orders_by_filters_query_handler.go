package queries

import (
	"context"
	"database/sql"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/order"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxOrdersPerPage caps a single filter result.
const MaxOrdersPerPage = 500

// OrderPage is one capped filter result. Truncated is set when more orders matched
// than the page holds; the newest ones are kept.
type OrderPage struct {
	Orders    []OrderView
	Truncated bool
}

// GetOrdersByFiltersQueryHandler reads orders joined with their patient and staff.
type GetOrdersByFiltersQueryHandler struct {
	db       *gorm.DB
	pageSize int
}

func NewGetOrdersByFiltersQueryHandler(db *gorm.DB) GetOrdersByFiltersQueryHandler {
	return GetOrdersByFiltersQueryHandler{db: db, pageSize: MaxOrdersPerPage}
}

// WithPageSize lowers the cap. Values outside 1..MaxOrdersPerPage are ignored.
func (h GetOrdersByFiltersQueryHandler) WithPageSize(size int) GetOrdersByFiltersQueryHandler {
	if size > 0 && size <= MaxOrdersPerPage {
		h.pageSize = size
	}
	return h
}

// Handle returns matching orders, newest first. No match is an empty, non-nil slice.
// One row beyond the page size is read to tell a full page from a truncated one.
func (h GetOrdersByFiltersQueryHandler) Handle(ctx context.Context, query GetOrdersByFiltersQuery) (OrderPage, error) {
	if err := query.Validate(); err != nil {
		return OrderPage{}, err
	}

	orders, err := h.read(ctx, query)
	if err != nil {
		return OrderPage{}, err
	}

	page := OrderPage{Orders: orders}
	if len(orders) > h.pageSize {
		page.Orders, page.Truncated = orders[:h.pageSize], true
	}
	return page, nil
}

func (h GetOrdersByFiltersQueryHandler) read(ctx context.Context, query GetOrdersByFiltersQuery) ([]OrderView, error) {
	stmt, args, err := query.toSQL(uint64(h.pageSize) + 1)
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		var (
			view                                 OrderView
			id, patientID, pantryID              uuid.UUID
			personID                             uuid.NullUUID
			personName, personContact            sql.NullString
			session, orderStatus, deliveryStatus int
			items                                []byte
		)

		err = rows.Scan(
			&id, &session, &view.OrderDate, &view.CreatedAt, &orderStatus, &deliveryStatus,
			&patientID, &view.Patient.Name, &view.Patient.RoomNumber, &view.Patient.BedNumber, &view.Patient.FloorNumber,
			&pantryID, &view.Pantry.Name, &view.Pantry.ContactInfo, &view.PantryLocation,
			&items,
			&personID, &personName, &personContact, &view.DeliveryLocation,
			&view.SpecialNotes, &view.CookingSpecialNotes, &view.DeliverySpecialNotes,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		if view.Patient.ID, err = toKernelUUID(patientID); err != nil {
			return nil, err
		}
		if view.Pantry.ID, err = toKernelUUID(pantryID); err != nil {
			return nil, err
		}
		if personID.Valid {
			ref := StaffRef{Name: personName.String, ContactInfo: personContact.String}
			if ref.ID, err = toKernelUUID(personID.UUID); err != nil {
				return nil, err
			}
			view.DeliveryPerson = &ref
		}
		if view.Items, err = decodeItems(items); err != nil {
			return nil, err
		}

		view.Session = kernel.Session(session)
		view.OrderStatus = order.OrderStatus(orderStatus)
		view.DeliveryStatus = order.DeliveryStatus(deliveryStatus)
		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// toSQL renders the query with "?" placeholders, the form gorm's Raw expects.
func (q GetOrdersByFiltersQuery) toSQL(limit uint64) (string, []any, error) {
	builder := sq.Select(
		"o.id", "o.session", "o.order_date", "o.created_at", "o.order_status", "o.delivery_status",
		"p.id", "p.name", "p.room_number", "p.bed_number", "p.floor_number",
		"ps.id", "ps.name", "ps.contact_info", "o.pantry_location",
		"o.items",
		"dp.id", "dp.name", "dp.contact_info", "o.delivery_location",
		"o.special_notes", "o.cooking_special_notes", "o.delivery_special_notes",
	).
		From("orders o").
		Join("patients p ON p.id = o.patient_id").
		Join("staff ps ON ps.id = o.pantry_staff_id").
		LeftJoin("staff dp ON dp.id = o.delivery_person_id").
		OrderBy("o.created_at DESC", "o.id").
		Limit(limit)

	if q.date != nil {
		builder = builder.Where(sq.Eq{"o.order_date": q.date.Format(DateLayout)})
	}
	if q.orderStatus != nil {
		builder = builder.Where(sq.Eq{"o.order_status": int(*q.orderStatus)})
	}
	if q.deliveryStatus != nil {
		builder = builder.Where(sq.Eq{"o.delivery_status": int(*q.deliveryStatus)})
	}
	if q.session != nil {
		builder = builder.Where(sq.Eq{"o.session": int(*q.session)})
	}

	switch q.scope {
	case ScopePantry:
		builder = builder.Where(sq.Eq{"o.pantry_staff_id": q.scopeID.String()})
	case ScopeDelivery:
		builder = builder.Where(sq.Eq{"o.delivery_person_id": q.scopeID.String()})
	}

	return builder.ToSql()
}
