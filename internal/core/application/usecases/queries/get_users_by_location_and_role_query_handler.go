package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetUsersByLocationAndRoleQueryHandler struct {
	db *gorm.DB
}

func NewGetUsersByLocationAndRoleQueryHandler(db *gorm.DB) GetUsersByLocationAndRoleQueryHandler {
	return GetUsersByLocationAndRoleQueryHandler{db: db}
}

// Handle matches the location case-insensitively and orders members by name.
func (h GetUsersByLocationAndRoleQueryHandler) Handle(
	ctx context.Context,
	query GetUsersByLocationAndRoleQuery,
) ([]StaffView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT `+staffColumns+`
		FROM staff s
		WHERE s.role = ? AND lower(s.location) = lower(?)
		ORDER BY s.name, s.id`, int(query.Role()), query.Location().Name()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStaff(rows)
}
