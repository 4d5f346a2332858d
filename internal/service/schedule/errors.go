package schedule

import "errors"

var (
	ErrInvalidDate    = errors.New("date must be in YYYY-MM-DD form")
	ErrInvalidShift   = errors.New("invalid shift")
	ErrInvalidRange   = errors.New("invalid date range")
	ErrClinicNotFound = errors.New("clinic not found")
)
