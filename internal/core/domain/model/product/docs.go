// Package product provides the Product aggregate. A product has a unique name
// and a unit weight between 0 and 25 with two fraction digits; order weight
// limits are computed from it.
package product
