package vet

import "errors"

var (
	ErrNotFound       = errors.New("veterinarian not found")
	ErrClinicNotFound = errors.New("partner has no registered clinic")
)
