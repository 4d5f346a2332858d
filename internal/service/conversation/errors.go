package conversation

import "errors"

var (
	ErrNotFound        = errors.New("conversation not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrUnauthorized    = errors.New("not a participant of this conversation")
	ErrEmptyMessage    = errors.New("message must have content or a file")
)
