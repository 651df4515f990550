package queries

import (
	"errors"

	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetStoreStatisticsQueryIsNotConstructed = errors.New(
	"GetStoreStatisticsQuery must be created via NewGetStoreStatisticsQuery constructor",
)

// GetStoreStatisticsQuery summarizes what the store holds.
type GetStoreStatisticsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStoreStatisticsQuery() GetStoreStatisticsQuery {
	return GetStoreStatisticsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetStoreStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreStatisticsQueryIsNotConstructed)
}

// StoreStatisticsQueryResponse holds entity counts, the weight of every order
// item together and the most recently issued order number, empty when no order
// exists.
type StoreStatisticsQueryResponse struct {
	Customers         int64
	Products          int64
	Orders            int64
	OrderItems        int64
	TotalWeight       decimal.Decimal
	LatestOrderNumber string
}
