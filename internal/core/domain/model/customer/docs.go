// Package customer provides the Customer aggregate: a uniquely named person with
// a contact number and an email address who places orders.
package customer
