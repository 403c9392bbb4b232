package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrBookingNotFound    = errors.New("repair booking not found")
	ErrEmptyCustomerName  = errors.New("customer name cannot be empty")
	ErrInvalidEmail       = errors.New("customer email is malformed")
	ErrMissingDeviceModel = errors.New("booking requires a device model")
	ErrInvalidHandover    = errors.New("handover method must be dropoff or courier")
	ErrPastSchedule       = errors.New("scheduled time must be in the future")
	ErrInvalidTotal       = errors.New("quote total must not be negative")
	ErrInvalidTransition  = errors.New("booking status transition not allowed")
)

var validationErrors = []error{
	ErrEmptyCustomerName,
	ErrInvalidEmail,
	ErrMissingDeviceModel,
	ErrInvalidHandover,
	ErrPastSchedule,
	ErrInvalidTotal,
	ErrInvalidTransition,
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
	return errors.Is(err, ErrBookingNotFound)
}
