package agenda

import (
	"testing"
	"time"
)

func TestMonthGrid(t *testing.T) {
	// Every month of a leap and a non-leap year: the grid is always 35 or
	// 42 cells, and the in-month cells cover exactly the month's days.
	for _, year := range []int{2023, 2024} {
		for m := time.January; m <= time.December; m++ {
			ref := time.Date(year, m, 15, 0, 0, 0, 0, time.Local)
			cells := MonthGrid(ref)

			if len(cells) != 35 && len(cells) != 42 {
				t.Errorf("%d-%02d: got %d cells, want 35 or 42", year, m, len(cells))
			}
			if len(cells)%7 != 0 {
				t.Errorf("%d-%02d: %d cells is not a whole number of weeks", year, m, len(cells))
			}

			wantDays := time.Date(year, m+1, 0, 0, 0, 0, 0, time.Local).Day()
			inMonth := 0
			for _, c := range cells {
				if c.InMonth {
					inMonth++
				}
			}
			if inMonth != wantDays {
				t.Errorf("%d-%02d: %d in-month cells, want %d", year, m, inMonth, wantDays)
			}

			if wd := cells[0].Date.Weekday(); wd != time.Monday {
				t.Errorf("%d-%02d: grid starts on %s, want Monday", year, m, wd)
			}
			for i := 1; i < len(cells); i++ {
				if !cells[i].Date.Equal(cells[i-1].Date.AddDate(0, 0, 1)) {
					t.Fatalf("%d-%02d: cells %d and %d are not consecutive days", year, m, i-1, i)
				}
			}
		}
	}
}

func TestMonthGridPadding(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want int
	}{
		// Feb 2021 starts on a Monday and has 28 days: a perfect 4-week fit,
		// still padded to five rows.
		{"february fitting exactly", time.Date(2021, time.February, 10, 0, 0, 0, 0, time.Local), 35},
		// Mar 2024 starts on a Friday: 4 leading days + 31 = 35, exactly five rows.
		{"long month fitting five rows", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local), 35},
		// Dec 2024 starts on a Sunday: 6 leading days + 31 > 35, spills into row six.
		{"long month with long lead", time.Date(2024, time.December, 5, 0, 0, 0, 0, time.Local), 42},
		{"april 2024", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local), 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(MonthGrid(tt.ref)); got != tt.want {
				t.Errorf("MonthGrid(%s) = %d cells, want %d", DateKey(tt.ref), got, tt.want)
			}
		})
	}
}

func TestWeekDays(t *testing.T) {
	for d := 0; d < 14; d++ {
		ref := time.Date(2024, time.March, 1+d, 13, 30, 0, 0, time.Local)
		days := WeekDays(ref)

		if len(days) != 7 {
			t.Fatalf("got %d days, want 7", len(days))
		}
		if days[0].Weekday() != time.Monday {
			t.Errorf("week of %s starts on %s", DateKey(ref), days[0].Weekday())
		}
		for i := 1; i < 7; i++ {
			if !days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
				t.Errorf("week of %s: day %d is not consecutive", DateKey(ref), i)
			}
		}
		found := false
		for _, day := range days {
			if DateKey(day) == DateKey(ref) {
				found = true
			}
		}
		if !found {
			t.Errorf("week of %s does not contain the reference day", DateKey(ref))
		}
	}
}

func TestDateKeyRoundTrip(t *testing.T) {
	refs := []time.Time{
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local),
		time.Date(2024, time.February, 29, 23, 59, 59, 0, time.Local),
		time.Date(2031, time.December, 31, 6, 0, 0, 0, time.Local),
	}
	for _, ref := range refs {
		key := DateKey(ref)
		parsed, err := ParseDateKey(key)
		if err != nil {
			t.Fatalf("ParseDateKey(%q): %v", key, err)
		}
		if got := DateKey(parsed); got != key {
			t.Errorf("DateKey not idempotent: %q became %q", key, got)
		}
		if parsed.Hour() != 0 || parsed.Location() != time.Local {
			t.Errorf("ParseDateKey(%q) = %v, want local midnight", key, parsed)
		}
	}
}

func TestDayKey(t *testing.T) {
	tests := []struct {
		date   string
		want   string
		wantOK bool
	}{
		{"2024-03-05", "2024-03-05", true},
		{"2024-03-05T09:30:00+07:00", "2024-03-05", true},
		{"not-a-date", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := Appointment{Date: tt.date}.DayKey()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("DayKey(%q) = (%q, %v), want (%q, %v)", tt.date, got, ok, tt.want, tt.wantOK)
		}
	}
}
