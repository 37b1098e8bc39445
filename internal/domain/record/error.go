package record

import "errors"

var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidDate  = errors.New("invalid calendar date")
	ErrInvalidRange = errors.New("end date precedes start date")
	ErrMissingID    = errors.New("missing record id")
)
