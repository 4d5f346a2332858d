package clinic

import "errors"

var (
	ErrNotFound        = errors.New("clinic not found")
	ErrAlreadyExists   = errors.New("partner already has a registered clinic")
	ErrSlugTaken       = errors.New("clinic slug is already taken")
	ErrNotPending      = errors.New("clinic is not awaiting review")
	ErrNotApproved     = errors.New("clinic is not approved")
	ErrServiceNotFound = errors.New("service item not found")
)
