package scheduling

import "fmt"

// SchedulingError is a caller-visible scheduling rejection. Message is
// written to be spoken back over the phone as-is.
type SchedulingError struct {
	Code    string
	Message string
}

func (e *SchedulingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewOutOfAreaError(zip string) error {
	return &SchedulingError{
		Code:    "outOfServiceArea",
		Message: fmt.Sprintf("Sorry, ZIP code %s is outside our service area.", zip),
	}
}

func NewExcludedApplianceError(appliance string) error {
	return &SchedulingError{
		Code:    "excludedAppliance",
		Message: fmt.Sprintf("Sorry, we don't service %s. We only service major appliances.", appliance),
	}
}

func NewNoAvailabilityError() error {
	return &SchedulingError{
		Code:    "noAvailability",
		Message: "Sorry, we couldn't find an open date in the next two months.",
	}
}

func NewValidationError(message string) error {
	return &SchedulingError{
		Code:    "invalidRequest",
		Message: message,
	}
}
