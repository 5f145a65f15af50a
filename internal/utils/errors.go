package utils

import "errors"

// Common application errors used across services.
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrTenderNotFound     = errors.New("tender not found")
	ErrSKUExists          = errors.New("sku already exists")
	ErrProductHasOrders   = errors.New("product has associated orders")
	ErrUnknownProducts    = errors.New("one or more products do not exist")
	ErrInvalidDate        = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
)
