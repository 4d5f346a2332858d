package agenda

// Action is a status transition a client may request.
type Action string

const (
	ActionConfirm Action = "confirm"
	ActionCancel  Action = "cancel"
)

// AllowedActions returns the actions the apps may offer for an appointment
// in the given status. Terminal statuses get none; completion is a
// partner-side bookkeeping transition and is never offered as a button.
func AllowedActions(s Status) []Action {
	switch s {
	case StatusPending:
		return []Action{ActionConfirm, ActionCancel}
	case StatusConfirmed:
		return []Action{ActionCancel}
	default:
		return nil
	}
}

// CanTransition reports whether moving from one status to another is legal.
// This is the single source of truth the appointment service enforces.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCancelled || to == StatusCompleted
	default:
		return false
	}
}
