package domain

import "errors"

// Domain errors as sentinel values
var (
	// Entity lookup errors
	ErrProductNotFound  = errors.New("product not found")
	ErrVariantNotFound  = errors.New("variant not found")
	ErrCategoryNotFound = errors.New("category not found")

	// Product errors
	ErrEmptyName            = errors.New("product name cannot be empty")
	ErrInvalidPrice         = errors.New("product price must be positive")
	ErrInvalidCategory      = errors.New("product category cannot be empty")
	ErrCannotModifyArchived = errors.New("cannot modify archived product")
	ErrAlreadyArchived      = errors.New("product is already archived")
	ErrAlreadyActive        = errors.New("product is already active")

	// Variant errors
	ErrVariantMismatch = errors.New("variant does not belong to product")
	ErrNegativeStock   = errors.New("variant stock cannot be negative")

	// Pricing errors
	ErrInvalidPercent        = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidDiscountWindow = errors.New("discount window end cannot be before start")
	ErrWindowNotUTC          = errors.New("discount window bounds must be in UTC")
	ErrDiscountAlreadySet    = errors.New("product already has a discount")
	ErrInvalidQuantity       = errors.New("quantity must be a positive integer")
	ErrMissingUnitPrice      = errors.New("line item unit price is required")

	// Query errors
	ErrInvalidPageToken = errors.New("page token is malformed")

	// Storage errors
	ErrMoneyOverflow = errors.New("money value exceeds storage bounds")
)

var validationErrors = []error{
	ErrEmptyName,
	ErrInvalidPrice,
	ErrInvalidCategory,
	ErrVariantMismatch,
	ErrNegativeStock,
	ErrInvalidPercent,
	ErrInvalidDiscountWindow,
	ErrWindowNotUTC,
	ErrInvalidQuantity,
	ErrMissingUnitPrice,
	ErrInvalidPageToken,
}

var notFoundErrors = []error{
	ErrProductNotFound,
	ErrVariantNotFound,
	ErrCategoryNotFound,
}

// IsValidation reports whether err is caused by malformed or out-of-range input.
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
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
