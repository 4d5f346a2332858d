package appointment

import "errors"

var (
	ErrNotFound          = errors.New("appointment not found")
	ErrClinicNotApproved = errors.New("clinic is not approved for booking")
	ErrInvalidDate       = errors.New("date must be in YYYY-MM-DD form")
	ErrInvalidShift      = errors.New("invalid shift")
	ErrNoPets            = errors.New("at least one pet is required")
	ErrTooManyPets       = errors.New("too many pets in one booking")
	ErrPetNotOwned       = errors.New("pet does not belong to the customer")
	ErrShiftFull         = errors.New("shift has no remaining capacity")
	ErrBadTransition     = errors.New("status transition is not allowed")
	ErrReasonRequired    = errors.New("cancellation reason is required")
	ErrForbidden         = errors.New("not allowed to modify this appointment")
)
