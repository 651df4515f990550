package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListCustomersQueryHandler reads customers straight from the database,
// bypassing the aggregates.
type ListCustomersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

// Handle returns all customers, or an empty slice when there are none.
func (h ListCustomersQueryHandler) Handle(ctx context.Context, query ListCustomersQuery) ([]CustomerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, contact_number, email
		FROM customers
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]CustomerQueryResponse, 0)
	for rows.Next() {
		var c CustomerQueryResponse
		if err = rows.Scan(&c.ID, &c.Name, &c.ContactNumber, &c.Email); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
