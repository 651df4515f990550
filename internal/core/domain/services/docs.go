// Package services provides domain services that apply business rules spanning
// several aggregates of the order management system.
//
// The package includes:
//   - ValidationEngine: the single gate for customer, product and order writes,
//     checking references, name uniqueness, weight bounds, order dates,
//     per-order product uniqueness and the cumulative order weight limit
//
// Services are pure: they receive the data they judge and return typed errors
// from package errs, leaving loading and persistence to the use cases.
package services
