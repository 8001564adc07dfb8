package domain

import "errors"

var ErrAppointmentNotFound = errors.New("appointment not found")
var ErrSlotConflict = errors.New("veterinarian unavailable at this time")
var ErrSlotLocked = errors.New("time slot is being booked by someone else")
var ErrPetNotFound = errors.New("pet not found")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrVaccineNotFound = errors.New("vaccine not found")
var ErrRecordNotFound = errors.New("record not found")
var ErrCatalogItemNotFound = errors.New("catalog item not found")

// ValidationError reports a single invalid or missing form field. Handlers
// surface it per field so the client can render the message inline.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Msg
}

// NewValidationError builds a field-level validation failure.
func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
