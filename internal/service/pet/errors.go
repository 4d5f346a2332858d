package pet

import "errors"

var (
	ErrNotFound     = errors.New("pet not found")
	ErrUnauthorized = errors.New("not authorized to access this pet")
	ErrHasUpcoming  = errors.New("pet has upcoming appointments and cannot be deleted")
)
