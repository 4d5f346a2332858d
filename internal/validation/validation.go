// Package validation implements the field-level rules both apps enforce
// before submitting a form. Services run the same rules server-side so a
// bypassed client cannot store anything the forms would have rejected.
package validation

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"
)

// DefaultPhoneRegion is used when a phone number has no international prefix.
const DefaultPhoneRegion = "VN"

// FieldErrors maps form field names to their first validation message.
type FieldErrors map[string]string

func (fe FieldErrors) Add(field, msg string) {
	if _, exists := fe[field]; !exists {
		fe[field] = msg
	}
}

// Error is returned by services when one or more fields fail validation.
// Handlers render it as the errors object of the response envelope.
type Error struct {
	Fields FieldErrors
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ErrorIf wraps the collected field errors, or returns nil when the form is
// clean.
func ErrorIf(fe FieldErrors) error {
	if len(fe) == 0 {
		return nil
	}
	return &Error{Fields: fe}
}

func Required(fe FieldErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		fe.Add(field, "Trường này là bắt buộc")
	}
}

func StringLen(fe FieldErrors, field, value string, min, max int) {
	n := len([]rune(strings.TrimSpace(value)))
	if n < min || n > max {
		fe.Add(field, fmt.Sprintf("Độ dài phải từ %d đến %d ký tự", min, max))
	}
}

func FloatRange(fe FieldErrors, field string, value, min, max float64) {
	if value < min || value > max {
		fe.Add(field, fmt.Sprintf("Giá trị phải trong khoảng %g đến %g", min, max))
	}
}

func Email(fe FieldErrors, field, value string) {
	if _, err := mail.ParseAddress(strings.TrimSpace(value)); err != nil {
		fe.Add(field, "Địa chỉ email không hợp lệ")
	}
}

// Phone validates and requires a possible phone number, defaulting to
// Vietnamese numbering when no country prefix is present.
func Phone(fe FieldErrors, field, value string) {
	num, err := phonenumbers.Parse(strings.TrimSpace(value), DefaultPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		fe.Add(field, "Số điện thoại không hợp lệ")
	}
}

// FormatPhone normalizes a previously validated number to E.164 for storage.
func FormatPhone(value string) string {
	num, err := phonenumbers.Parse(strings.TrimSpace(value), DefaultPhoneRegion)
	if err != nil {
		return strings.TrimSpace(value)
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

// URL accepts only absolute http/https links.
func URL(fe FieldErrors, field, value string) {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		fe.Add(field, "Đường dẫn không hợp lệ")
	}
}

// BirthDate rejects dates in the future and dates more than maxYears back.
func BirthDate(fe FieldErrors, field string, value time.Time, maxYears int) {
	now := time.Now()
	if value.After(now) {
		fe.Add(field, "Ngày sinh không được ở tương lai")
		return
	}
	if value.Before(now.AddDate(-maxYears, 0, 0)) {
		fe.Add(field, fmt.Sprintf("Ngày sinh không được quá %d năm trước", maxYears))
	}
}
