// Package order provides the Order aggregate of the order management system.
//
// The package includes:
//   - Order: The aggregate root holding number, customer, date, address and items
//   - Item: An order line, unique by product within its order
//   - Number: The "ORD" + zero-padded sequence identifier and its generator NextNumber
//
// Key business rules:
//   - Order numbers are generated from the latest existing number, never supplied by callers
//   - The first number is ORD00001; past ORD99999 the sequence widens rather than wraps
//   - Updating items is an upsert by product: existing lines change quantity, new ones are added
//   - Quantities are positive
package order
