package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// FallbackMessage is shown when an error response carries no usable message.
const FallbackMessage = "Đã có lỗi xảy ra, vui lòng thử lại sau"

// ErrSessionExpired is returned before any request is sent when the stored
// session has passed its expiry.
var ErrSessionExpired = errors.New("phiên đăng nhập đã hết hạn")

// ErrorKind tags how much structure an error response carried.
type ErrorKind string

const (
	KindMessage     ErrorKind = "message"
	KindFieldErrors ErrorKind = "fieldErrors"
	KindUnknown     ErrorKind = "unknown"
)

// APIError is the normalized form of every non-2xx response. Backends emit
// error payloads in several shapes (a message string, an array of messages,
// a field-keyed object); one parser folds them all into this tagged union so
// call sites never duck-type response bodies.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("api error (%d): %s (%d field errors)", e.StatusCode, e.Message, len(e.Fields))
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// parseAPIError normalizes an error response body. It never fails: anything
// unrecognizable becomes KindUnknown with the generic fallback message.
func parseAPIError(status int, body []byte) *APIError {
	out := &APIError{Kind: KindUnknown, StatusCode: status, Message: FallbackMessage}

	var raw struct {
		Status  string          `json:"status"`
		Message json.RawMessage `json:"message"`
		Error   json.RawMessage `json:"error"`
		Errors  json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return out
	}

	if fields := parseFieldErrors(raw.Errors); len(fields) > 0 {
		out.Kind = KindFieldErrors
		out.Fields = fields
	}

	msg := parseMessage(raw.Message)
	if msg == "" {
		msg = parseMessage(raw.Error)
	}
	if msg != "" {
		out.Message = msg
		if out.Kind == KindUnknown {
			out.Kind = KindMessage
		}
	}
	return out
}

// parseMessage accepts a string or an array of strings.
func parseMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return strings.TrimSpace(strings.Join(list, "; "))
	}
	return ""
}

// parseFieldErrors accepts {"field": "msg"} and {"field": ["msg", ...]}.
func parseFieldErrors(raw json.RawMessage) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	var flat map[string]string
	if err := json.Unmarshal(raw, &flat); err == nil && len(flat) > 0 {
		return flat
	}
	var nested map[string][]string
	if err := json.Unmarshal(raw, &nested); err == nil && len(nested) > 0 {
		out := make(map[string]string, len(nested))
		for field, msgs := range nested {
			if len(msgs) > 0 {
				out[field] = msgs[0]
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
