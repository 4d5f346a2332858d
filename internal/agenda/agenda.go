// Package agenda builds the derived, render-ready views of the appointment
// book: calendar grids, day buckets, per-customer grouping and the filter
// pipeline shared by the customer and partner apps. Everything here is pure
// computation over already-loaded appointments; nothing touches storage.
package agenda

import (
	"time"
)

// Shift is the coarse time-of-day bucket of a clinic appointment.
type Shift string

const (
	ShiftMorning   Shift = "Morning"
	ShiftAfternoon Shift = "Afternoon"
	ShiftEvening   Shift = "Evening"
)

// Status values are the wire values the apps match on, verbatim.
type Status string

const (
	StatusPending   Status = "Pending_Confirmation"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

// CreatedBy tags who booked the appointment.
type CreatedBy string

const (
	CreatedByCustomer CreatedBy = "customer"
	CreatedByPartner  CreatedBy = "partner"
)

// Appointment is the flattened view the agenda works with. Date is the raw
// date string as served (a date key or an RFC 3339 timestamp); entries whose
// date cannot be parsed are excluded from calendar matching rather than
// failing a whole grid.
type Appointment struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`
	Shift        Shift     `json:"shift"`
	Status       Status    `json:"status"`
	CreatedBy    CreatedBy `json:"created_by"`
	CustomerID   string    `json:"customer_id"`
	UserID       string    `json:"user_id"`
	CustomerName string    `json:"customer_name"`
	PetCount     int       `json:"pet_count"`
}

const dateKeyLayout = "2006-01-02"

// DateKey normalizes a time to its local-calendar-day key, YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses a date key back to local midnight. Date keys are
// always interpreted in local time; parsing them as UTC shifts the day at
// negative-offset timezones.
func ParseDateKey(s string) (time.Time, error) {
	return time.ParseInLocation(dateKeyLayout, s, time.Local)
}

// DayKey returns the appointment's date key, reporting false when the date
// is unparseable.
func (a Appointment) DayKey() (string, bool) {
	if _, err := ParseDateKey(a.Date); err == nil {
		return a.Date, true
	}
	if t, err := time.ParseInLocation(time.RFC3339, a.Date, time.Local); err == nil {
		return DateKey(t), true
	}
	return "", false
}

// Cell is one calendar cell of a month grid.
type Cell struct {
	Date    time.Time
	InMonth bool
}

// monday steps back from t to the Monday of its week. Go weekdays start at
// Sunday=0; (wd+6)%7 re-bases them so Monday=0.
func monday(t time.Time) time.Time {
	lead := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day()-lead, 0, 0, 0, 0, t.Location())
}

// MonthGrid returns the ordered cells of the month view around ref:
// Monday-aligned leading days from the previous month, the month itself,
// then trailing days padded to a 35-cell grid, or 42 when the lead plus the
// month no longer fit in five rows.
func MonthGrid(ref time.Time) []Cell {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	daysInMonth := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location()).Day()
	lead := (int(first.Weekday()) + 6) % 7

	total := 35
	if lead+daysInMonth > 35 {
		total = 42
	}

	cells := make([]Cell, 0, total)
	start := first.AddDate(0, 0, -lead)
	for i := 0; i < total; i++ {
		d := start.AddDate(0, 0, i)
		cells = append(cells, Cell{Date: d, InMonth: d.Month() == first.Month()})
	}
	return cells
}

// WeekDays returns the 7 consecutive days of ref's week, Monday first.
func WeekDays(ref time.Time) []time.Time {
	start := monday(ref)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// ByDay buckets appointments under their date key. Unparseable dates are
// dropped.
func ByDay(appts []Appointment) map[string][]Appointment {
	out := make(map[string][]Appointment)
	for _, a := range appts {
		key, ok := a.DayKey()
		if !ok {
			continue
		}
		out[key] = append(out[key], a)
	}
	return out
}
