package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for the rental domain errors.
*/

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409 AppError.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidStatus flags an operation illegal in the entity's current status.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth & users ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Incorrect email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"users",
	"Email already exists",
	http.StatusConflict,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)

// --- Properties ---

var ErrPropertyNotFound = New(
	CodeNotFound,
	"property",
	"Property not found",
	http.StatusNotFound,
)

// ErrNotPropertyOwner rejects mutations by anyone but the owning host.
var ErrNotPropertyOwner = New(
	CodeForbidden,
	"property",
	"You are not authorized to perform this action",
	http.StatusForbidden,
)

// --- Bookings ---

var ErrBookingNotFound = New(
	CodeNotFound,
	"booking",
	"Booking not found",
	http.StatusNotFound,
)

// ErrBookingOverlap rejects a booking whose date range intersects an
// existing confirmed booking on the same property.
var ErrBookingOverlap = New(
	CodeConflict,
	"booking",
	"Booking overlaps with existing booking",
	http.StatusConflict,
)

// ErrBookingNotConfirmed rejects check-in on anything but a confirmed booking.
var ErrBookingNotConfirmed = New(
	CodeInvalidStatus,
	"booking",
	"Booking is not confirmed",
	http.StatusBadRequest,
)
