package order

import (
	"errors"
	"fmt"
	"math"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// MaxQuantity is the largest quantity the order_items.quantity column holds.
const MaxQuantity = math.MaxInt32

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Line is a product and quantity pair as requested by a caller, before it
// becomes part of an order.
type Line struct {
	ProductID int64
	Quantity  int
}

// Item is a line of an order: a product and how many units of it.
// An item belongs to exactly one order and has no life outside of it.
type Item struct {
	id        int64
	productID int64
	quantity  int
	guard     guard.ConstructorGuard
}

// NewItem creates an unsaved order line.
func NewItem(productID int64, quantity int) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rebuilds a persisted order line.
func RestoreItem(id int64, productID int64, quantity int) (*Item, error) {
	item, err := NewItem(productID, quantity)
	if err != nil {
		return nil, err
	}

	item.id = id
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the store id, 0 until the item is saved.
func (i *Item) ID() int64 {
	return i.id
}

func (i *Item) ProductID() int64 {
	return i.productID
}

func (i *Item) Quantity() int {
	return i.quantity
}

// Line returns the item as a product and quantity pair.
func (i *Item) Line() Line {
	return Line{ProductID: i.productID, Quantity: i.quantity}
}

// AssignID records the id given by the store on insert.
func (i *Item) AssignID(id int64) {
	i.id = id
}

func (i *Item) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsRequiredError("product")
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	i.quantity = quantity
	return nil
}

// MergeLines applies upserts on top of current by product: a product already
// present gets the upserted quantity, a new product is appended. Order of
// current lines is kept.
func MergeLines(current []Line, upserts []Line) []Line {
	merged := make([]Line, 0, len(current)+len(upserts))
	index := make(map[int64]int, len(current)+len(upserts))

	for _, line := range current {
		index[line.ProductID] = len(merged)
		merged = append(merged, line)
	}

	for _, line := range upserts {
		if at, ok := index[line.ProductID]; ok {
			merged[at].Quantity = line.Quantity
			continue
		}
		index[line.ProductID] = len(merged)
		merged = append(merged, line)
	}

	return merged
}
