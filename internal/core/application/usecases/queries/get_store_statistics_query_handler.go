package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type GetStoreStatisticsQueryHandler struct {
	db *gorm.DB
}

func NewGetStoreStatisticsQueryHandler(db *gorm.DB) GetStoreStatisticsQueryHandler {
	return GetStoreStatisticsQueryHandler{db: db}
}

func (h GetStoreStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetStoreStatisticsQuery,
) (StoreStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return StoreStatisticsQueryResponse{}, err
	}

	var (
		stats  StoreStatisticsQueryResponse
		latest sql.NullString
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM order_items),
			(SELECT COALESCE(SUM(oi.quantity * p.weight), 0)
				FROM order_items oi
				JOIN products p ON p.id = oi.product_id),
			(SELECT order_number FROM orders ORDER BY id DESC LIMIT 1)
	`).Row()

	if err := row.Scan(
		&stats.Customers,
		&stats.Products,
		&stats.Orders,
		&stats.OrderItems,
		&stats.TotalWeight,
		&latest,
	); err != nil {
		return StoreStatisticsQueryResponse{}, err
	}

	stats.LatestOrderNumber = latest.String
	return stats, nil
}
