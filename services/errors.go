package services

import "errors"

// Sentinel errors raised at the point of detection and matched with
// errors.Is at the controllers, where they map to an HTTP status.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrAllergyNotFound    = errors.New("allergy not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrHistoryNotFound    = errors.New("history entry not found")
	ErrBlankBarcode       = errors.New("barcode must not be blank")
	ErrNotOwner           = errors.New("history entry belongs to another user")
)
