package queries

import (
	"testing"

	"hospitalfood/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSessionDigestQuery_toSQL(t *testing.T) {
	t.Run("should count in the database grouped by session", func(t *testing.T) {
		query, err := NewGetSessionDigestQuery("2024-05-01")
		require.NoError(t, err)

		stmt, args, err := query.toSQL()

		require.NoError(t, err)
		assert.Contains(t, stmt, "COUNT(*) FILTER (WHERE o.order_status <> ?) AS awaiting_kitchen")
		assert.Contains(t, stmt, "o.delivery_person_id IS NULL")
		assert.Contains(t, stmt, "WHERE o.order_date = ? GROUP BY o.session")
		assert.NotContains(t, stmt, "LIMIT")
		delivered := int(order.DeliveryDelivered)
		assert.Equal(t, []any{int(order.OrderCompleted), delivered, delivered, "2024-05-01"}, args)
	})
}

func TestNewGetSessionDigestQuery(t *testing.T) {
	t.Run("should reject a malformed date", func(t *testing.T) {
		_, err := NewGetSessionDigestQuery("01/05/2024")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "YYYY-MM-DD")
	})

	t.Run("should refuse a zero value", func(t *testing.T) {
		require.ErrorIs(t, GetSessionDigestQuery{}.Validate(), ErrGetSessionDigestQueryIsNotConstructed)
	})
}
