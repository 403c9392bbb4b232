package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrEmptyOrder            = errors.New("order must contain at least one item")
	ErrInvalidDeliveryMethod = errors.New("delivery method must be pickup or courier")
	ErrInvalidTotal          = errors.New("order total must not be negative")
	ErrInvalidTransition     = errors.New("order status transition not allowed")
	ErrProductNotOnSale      = errors.New("product is not available for sale")
	ErrOutOfStock            = errors.New("variant has insufficient stock")
	ErrMissingCustomer       = errors.New("customer reference cannot be empty")
)

var validationErrors = []error{
	ErrEmptyOrder,
	ErrInvalidDeliveryMethod,
	ErrInvalidTotal,
	ErrInvalidTransition,
	ErrProductNotOnSale,
	ErrOutOfStock,
	ErrMissingCustomer,
}

// IsValidation reports whether err is caused by malformed or unprocessable input.
func IsValidation(err error) bool {
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err is caused by a missing referenced entity.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound)
}
