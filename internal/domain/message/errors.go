package message

import "errors"

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrTripNotFound    = errors.New("trip not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrTripMismatch    = errors.New("trip_id in body does not match the path")
	ErrEmptyMessage    = errors.New("message must have text or a file attachment")
)
