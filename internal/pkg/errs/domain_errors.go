package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Barber errors
	ErrBarberNotFound = errors.New("barber not found")
	ErrBarberInactive = errors.New("barber is inactive")

	// Service errors
	ErrServiceNotFound = errors.New("service not found")
	ErrServiceInactive = errors.New("service is inactive")

	// Client errors
	ErrClientNotFound = errors.New("client not found")

	// Appointment errors
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrOutsideWorkingHours = errors.New("outside working hours")
	ErrTimeOffConflict     = errors.New("time off conflict")
	ErrSlotConflict        = errors.New("slot conflict")
	ErrInvalidStatusChange = errors.New("invalid appointment status change")
	ErrInvalidInterval     = errors.New("invalid appointment interval")

	// Schedule errors
	ErrWorkingHoursNotFound = errors.New("working hours entry not found")
	ErrTimeOffNotFound      = errors.New("time off entry not found")

	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
