package agenda

import (
	"testing"
	"time"
)

func TestCustomerKeyFallbacks(t *testing.T) {
	tests := []struct {
		name string
		appt Appointment
		want string
	}{
		{"customer id wins", Appointment{CustomerID: "C1", UserID: "U1", CustomerName: "An"}, "C1"},
		{"user id next", Appointment{UserID: "U1", CustomerName: "An"}, "U1"},
		{"name next", Appointment{CustomerName: "An"}, "An"},
		{"unknown last", Appointment{}, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CustomerKey(tt.appt); got != tt.want {
				t.Errorf("CustomerKey = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOrderNumbersFirstSeen(t *testing.T) {
	// C2 appears before C1 in array order, so C2 gets number 1 regardless
	// of any filter state applied later.
	appts := []Appointment{
		{ID: "A1", CustomerID: "C2"},
		{ID: "A2", CustomerID: "C1"},
		{ID: "A3", CustomerID: "C2"},
		{ID: "A4", CustomerID: "C3"},
	}
	order := OrderNumbers(appts)

	want := map[string]int{"C2": 1, "C1": 2, "C3": 3}
	for key, n := range want {
		if order[key] != n {
			t.Errorf("order[%q] = %d, want %d", key, order[key], n)
		}
	}

	filtered := Apply(appts, Filter{}, "c1")
	assertIDs(t, filtered, "A2")
	// Numbering is computed over the unfiltered list, so C1 keeps 2.
	if order[CustomerKey(filtered[0])] != 2 {
		t.Error("filtering changed a customer's order number")
	}
}

func TestOrderLabel(t *testing.T) {
	if got := OrderLabel(1); got != "Đơn 1" {
		t.Errorf("OrderLabel(1) = %q", got)
	}
	if got := OrderLabel(12); got != "Đơn 12" {
		t.Errorf("OrderLabel(12) = %q", got)
	}
}

func TestColorClass(t *testing.T) {
	for _, key := range []string{"C1", "unknown", "Nguyễn Thị An"} {
		first := ColorClass(key)
		if first == "" {
			t.Fatalf("ColorClass(%q) is empty", key)
		}
		for i := 0; i < 5; i++ {
			if got := ColorClass(key); got != first {
				t.Errorf("ColorClass(%q) not deterministic: %q then %q", key, first, got)
			}
		}
	}
	// Distinct palette entries exist; collisions are fine but the palette
	// should not collapse to one class.
	seen := map[string]bool{}
	for _, key := range []string{"a", "b", "c", "d", "e"} {
		seen[ColorClass(key)] = true
	}
	if len(seen) < 2 {
		t.Error("palette collapsed to a single class")
	}
}

func TestDayCardsGroupsByCustomer(t *testing.T) {
	appts := []Appointment{
		{ID: "A", Date: "2024-03-05", Status: StatusPending, CustomerID: "U1", CustomerName: "An", PetCount: 1},
		{ID: "B", Date: "2024-03-05", Status: StatusConfirmed, CustomerID: "U1", CustomerName: "An", PetCount: 2},
		{ID: "C", Date: "2024-03-06", Status: StatusConfirmed, CustomerID: "U1", CustomerName: "An", PetCount: 1},
		{ID: "D", Date: "2024-03-05", Status: StatusConfirmed, CustomerID: "U2", CustomerName: "Bình", PetCount: 1},
	}
	day := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)

	cards := DayCards(appts, day)
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}

	first := cards[0]
	if first.Key != "U1" || first.OrderLabel != "Đơn 1" {
		t.Errorf("first card = %q / %q, want U1 / Đơn 1", first.Key, first.OrderLabel)
	}
	if len(first.Appointments) != 2 {
		t.Errorf("first card has %d appointments, want 2", len(first.Appointments))
	}
	if first.PetCount != 3 {
		t.Errorf("first card pet total = %d, want 3", first.PetCount)
	}
	if first.Color != ColorClass("U1") {
		t.Error("card color does not match the customer's color class")
	}

	if cards[1].Key != "U2" || cards[1].OrderLabel != "Đơn 2" {
		t.Errorf("second card = %q / %q, want U2 / Đơn 2", cards[1].Key, cards[1].OrderLabel)
	}
}

func TestAllowedActions(t *testing.T) {
	tests := []struct {
		status Status
		want   []Action
	}{
		{StatusPending, []Action{ActionConfirm, ActionCancel}},
		{StatusConfirmed, []Action{ActionCancel}},
		{StatusCancelled, nil},
		{StatusCompleted, nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := AllowedActions(tt.status)
			if len(got) != len(tt.want) {
				t.Fatalf("AllowedActions(%s) = %v, want %v", tt.status, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("AllowedActions(%s) = %v, want %v", tt.status, got, tt.want)
				}
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	allowed := map[[2]Status]bool{
		{StatusPending, StatusConfirmed}:   true,
		{StatusPending, StatusCancelled}:   true,
		{StatusConfirmed, StatusCancelled}: true,
		{StatusConfirmed, StatusCompleted}: true,
	}
	statuses := []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]Status{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}
