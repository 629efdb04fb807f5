package booking

import "fmt"

// BookingError is a caller-visible booking failure. Message is speakable.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionNotFoundError() error {
	return &BookingError{
		Code:    "sessionNotFound",
		Message: "This call's booking session has expired. Let's start over.",
	}
}

func NewSlotConflictError() error {
	return &BookingError{
		Code:    "slotConflict",
		Message: "All of the times we offered are already booked. Please call back to try other dates.",
	}
}

func NewBookingFailedError() error {
	return &BookingError{
		Code:    "bookingFailed",
		Message: "We couldn't finalize your appointment just now. Please call back shortly.",
	}
}
