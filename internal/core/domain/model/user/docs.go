// Package user holds the identity record shared by administrators, customers
// and riders, and the Role tag used to dispatch between them.
package user
