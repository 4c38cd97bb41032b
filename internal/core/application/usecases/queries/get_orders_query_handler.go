package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns all orders, newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			car_id,
			customer_id,
			status,
			total_time,
			created_at,
			updated_at
		FROM orders
		ORDER BY created_at DESC, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		o, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
