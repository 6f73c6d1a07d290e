package ports

import (
	"context"

	"hospitalfood/internal/core/domain/model/staff"
)

// LocationCache keeps the distinct locations of each role between requests.
type LocationCache interface {
	// Get returns ok=false on a miss.
	Get(ctx context.Context, role staff.Role) (locations []string, ok bool, err error)

	Set(ctx context.Context, role staff.Role, locations []string) error

	Invalidate(ctx context.Context, role staff.Role) error
}
