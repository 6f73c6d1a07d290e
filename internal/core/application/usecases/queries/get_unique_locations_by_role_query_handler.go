package queries

import (
	"context"

	"hospitalfood/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GetUniqueLocationsByRoleQueryHandler reads through the location cache.
// Cache failures are logged and fall back to the database.
type GetUniqueLocationsByRoleQueryHandler struct {
	db     *gorm.DB
	cache  ports.LocationCache
	logger *zap.Logger
}

func NewGetUniqueLocationsByRoleQueryHandler(
	db *gorm.DB,
	cache ports.LocationCache,
	logger *zap.Logger,
) GetUniqueLocationsByRoleQueryHandler {
	return GetUniqueLocationsByRoleQueryHandler{
		db:     db,
		cache:  cache,
		logger: logger.With(zap.String("component", "unique_locations_query")),
	}
}

// Handle returns locations sorted case-insensitively. Spellings differing only in case
// collapse into one entry.
func (h GetUniqueLocationsByRoleQueryHandler) Handle(
	ctx context.Context,
	query GetUniqueLocationsByRoleQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	locations, ok, err := h.cache.Get(ctx, query.Role())
	if err != nil {
		h.logger.Warn("location cache read failed", zap.Stringer("role", query.Role()), zap.Error(err))
	} else if ok {
		return locations, nil
	}

	locations = make([]string, 0)
	err = h.db.WithContext(ctx).Raw(`
		SELECT MIN(location)
		FROM staff
		WHERE role = ? AND location <> ''
		GROUP BY lower(location)
		ORDER BY lower(location)`, int(query.Role())).
		Scan(&locations).Error
	if err != nil {
		return nil, err
	}

	if err = h.cache.Set(ctx, query.Role(), locations); err != nil {
		h.logger.Warn("location cache write failed", zap.Stringer("role", query.Role()), zap.Error(err))
	}

	return locations, nil
}
