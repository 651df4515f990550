// Package kernel provides the value objects shared across the order domain.
//
// The package includes:
//   - Weight: the weight of one product unit, a two digit decimal in [0, 25]
//   - Date: a calendar day without time of day, used for order dates
//
// Both are built through constructors guarded by guard.ConstructorGuard, so a
// zero value fails Validate.
package kernel
