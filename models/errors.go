package models

import "errors"

// Domain errors shared by the transactional handlers. Handlers translate
// them to HTTP statuses with errors.Is; anything else is a storage failure
// and surfaces as a generic 500.
var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrShipmentNotFound = errors.New("shipment not found")

	ErrOrderNotPending     = errors.New("order is no longer pending")
	ErrOrderNotCancellable = errors.New("delivered orders cannot be cancelled")
	ErrOrderLocked         = errors.New("order is already on its way, delivery data can no longer be changed")

	ErrEmptyCart             = errors.New("cart is empty")
	ErrInvalidShippingMethod = errors.New("invalid shipping method")
	ErrInsufficientStock     = errors.New("insufficient stock")

	ErrDuplicateEmail = errors.New("email is already registered")
)
