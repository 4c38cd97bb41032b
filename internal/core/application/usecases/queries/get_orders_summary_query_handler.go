package queries

import (
	"context"

	"workshop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersSummaryQueryHandler aggregates order counts in the database.
type GetOrdersSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersSummaryQueryHandler creates a handler for status summaries.
func NewGetOrdersSummaryQueryHandler(db *gorm.DB) GetOrdersSummaryQueryHandler {
	return GetOrdersSummaryQueryHandler{db: db}
}

// Handle returns one entry per order status in lifecycle order, statuses
// without orders included with a zero count.
func (h GetOrdersSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersSummaryQuery,
) ([]GetOrdersSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[order.Status]int)
	for rows.Next() {
		var (
			raw   string
			count int
		)
		if err = rows.Scan(&raw, &count); err != nil {
			return nil, err
		}

		status, parseErr := order.ParseStatus(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		counts[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	summary := make([]GetOrdersSummaryQueryResponse, 0, len(order.Statuses()))
	for _, status := range order.Statuses() {
		summary = append(summary, GetOrdersSummaryQueryResponse{Status: status, Count: counts[status]})
	}

	return summary, nil
}
