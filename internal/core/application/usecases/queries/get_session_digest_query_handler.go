package queries

import (
	"context"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/order"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

// SessionCounts is the state of one session's orders. Every order is counted, with no page cap.
type SessionCounts struct {
	Session          kernel.Session
	Total            int
	AwaitingKitchen  int
	AwaitingDelivery int
	Unassigned       int
}

// GetSessionDigestQueryHandler aggregates order counts in the database.
type GetSessionDigestQueryHandler struct {
	db *gorm.DB
}

func NewGetSessionDigestQueryHandler(db *gorm.DB) GetSessionDigestQueryHandler {
	return GetSessionDigestQueryHandler{db: db}
}

// Handle returns one entry per session in serving order, zeroed when the session has no orders.
func (h GetSessionDigestQueryHandler) Handle(ctx context.Context, query GetSessionDigestQuery) ([]SessionCounts, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt, args, err := query.toSQL()
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Session          int
		Total            int
		AwaitingKitchen  int
		AwaitingDelivery int
		Unassigned       int
	}
	if err = h.db.WithContext(ctx).Raw(stmt, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	sessions := kernel.Sessions()
	counts := make([]SessionCounts, len(sessions))
	index := make(map[kernel.Session]int, len(sessions))
	for i, s := range sessions {
		counts[i] = SessionCounts{Session: s}
		index[s] = i
	}
	for _, row := range rows {
		i, ok := index[kernel.Session(row.Session)]
		if !ok {
			continue
		}
		counts[i].Total = row.Total
		counts[i].AwaitingKitchen = row.AwaitingKitchen
		counts[i].AwaitingDelivery = row.AwaitingDelivery
		counts[i].Unassigned = row.Unassigned
	}
	return counts, nil
}

func (q GetSessionDigestQuery) toSQL() (string, []any, error) {
	completed, delivered := int(order.OrderCompleted), int(order.DeliveryDelivered)

	return sq.Select("o.session AS session", "COUNT(*) AS total").
		Column(sq.Expr("COUNT(*) FILTER (WHERE o.order_status <> ?) AS awaiting_kitchen", completed)).
		Column(sq.Expr("COUNT(*) FILTER (WHERE o.delivery_status <> ?) AS awaiting_delivery", delivered)).
		Column(sq.Expr(
			"COUNT(*) FILTER (WHERE o.delivery_status <> ? AND o.delivery_person_id IS NULL) AS unassigned",
			delivered)).
		From("orders o").
		Where(sq.Eq{"o.order_date": q.Date()}).
		GroupBy("o.session").
		ToSql()
}
