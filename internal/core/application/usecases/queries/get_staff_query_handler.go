package queries

import (
	"context"
	"database/sql"

	"hospitalfood/internal/core/domain/model/staff"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const staffColumns = `s.id, s.name, s.email, s.role, s.contact_info, s.location, s.created_at`

type GetStaffQueryHandler struct {
	db *gorm.DB
}

func NewGetStaffQueryHandler(db *gorm.DB) GetStaffQueryHandler {
	return GetStaffQueryHandler{db: db}
}

func (h GetStaffQueryHandler) Handle(ctx context.Context, query GetStaffQuery) ([]StaffView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)
	var (
		rows *sql.Rows
		err  error
	)
	if role := query.Role(); role != nil {
		rows, err = tx.Raw(`SELECT `+staffColumns+` FROM staff s WHERE s.role = ? ORDER BY s.name, s.id`, int(*role)).Rows()
	} else {
		rows, err = tx.Raw(`SELECT ` + staffColumns + ` FROM staff s ORDER BY s.name, s.id`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStaff(rows)
}

func scanStaff(rows *sql.Rows) ([]StaffView, error) {
	members := make([]StaffView, 0)
	for rows.Next() {
		var (
			view StaffView
			id   uuid.UUID
			role int
		)

		if err := rows.Scan(&id, &view.Name, &view.Email, &role, &view.ContactInfo, &view.Location, &view.CreatedAt); err != nil {
			return nil, err
		}

		var err error
		if view.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		view.Role = staff.Role(role)
		view.CreatedAt = view.CreatedAt.UTC()
		members = append(members, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
