// Package queries contains the read side of the food-service API.
//
// Query handlers read straight from PostgreSQL through *gorm.DB with hand-written or
// squirrel-built SQL and return flat read models shaped for the dashboards. They never
// load aggregates and never write, except for the location cache kept by
// GetUniqueLocationsByRoleQueryHandler.
package queries
