package domain

import "errors"

var (
	ErrUnauthenticated = errors.New("no user is logged in")

	ErrNotFound = errors.New("not found")

	ErrInvalidTarget = errors.New("review target does not exist")

	ErrValidation = errors.New("validation failed")

	ErrPaymentDeclined = errors.New("payment declined")

	ErrForbidden = errors.New("not allowed for this user")
)
