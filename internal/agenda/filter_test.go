package agenda

import (
	"testing"
)

// fixture spans edge dates, all statuses, both creators and a few identity
// fallbacks.
func fixture() []Appointment {
	return []Appointment{
		{ID: "A01", Date: "2023-12-31", Status: StatusConfirmed, CreatedBy: CreatedByCustomer, CustomerID: "C2", CustomerName: "Trần Văn Bình", PetCount: 1},
		{ID: "A02", Date: "2024-01-01", Status: StatusConfirmed, CreatedBy: CreatedByPartner, CustomerID: "C1", CustomerName: "Nguyễn Thị An", PetCount: 2},
		{ID: "A03", Date: "2024-01-01", Status: StatusPending, CreatedBy: CreatedByCustomer, CustomerID: "C2", CustomerName: "Trần Văn Bình", PetCount: 1},
		{ID: "A04", Date: "2024-01-15", Status: StatusCancelled, CreatedBy: CreatedByCustomer, CustomerID: "C3", CustomerName: "Lê Hoàng Cúc", PetCount: 1},
		{ID: "A05", Date: "2024-01-31", Status: StatusConfirmed, CreatedBy: CreatedByCustomer, CustomerID: "C1", CustomerName: "Nguyễn Thị An", PetCount: 1},
		{ID: "A06", Date: "2024-02-01", Status: StatusConfirmed, CreatedBy: CreatedByCustomer, CustomerID: "C4", CustomerName: "Phạm Minh Đức", PetCount: 3},
		{ID: "A07", Date: "2024-01-20", Status: StatusCompleted, CreatedBy: CreatedByPartner, CustomerID: "C1", CustomerName: "Nguyễn Thị An", PetCount: 1},
		{ID: "A08", Date: "2024-01-10", Status: StatusConfirmed, CustomerID: "C5", CustomerName: "Võ Thu Em", PetCount: 2}, // no created_by tag
		{ID: "A09", Date: "2024-01-05", Status: StatusPending, CreatedBy: CreatedByCustomer, UserID: "U9", CustomerName: "Khách vãng lai", PetCount: 1},
		{ID: "A10", Date: "bogus-date", Status: StatusConfirmed, CreatedBy: CreatedByCustomer, CustomerID: "C6", CustomerName: "Đỗ Quốc Phong", PetCount: 1},
		{ID: "A11", Date: "2024-01-31", Status: StatusPending, CreatedBy: CreatedByPartner, CustomerName: "Khách lẻ", PetCount: 1},
	}
}

func ids(appts []Appointment) []string {
	out := make([]string, len(appts))
	for i, a := range appts {
		out[i] = a.ID
	}
	return out
}

func assertIDs(t *testing.T, got []Appointment, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
	}
}

func TestApplyConjunctive(t *testing.T) {
	got := Apply(fixture(), Filter{
		Status:   "Confirmed",
		DateFrom: "2024-01-01",
		DateTo:   "2024-01-31",
	}, "")
	// Exactly the appointments satisfying all three predicates: A01 is out
	// of range below, A06 above, A03/A07 wrong status, A10 unparseable.
	assertIDs(t, got, "A02", "A05", "A08")
}

func TestApplySinglePredicates(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		query  string
		want   []string
	}{
		{"no filters", Filter{}, "", []string{"A01", "A02", "A03", "A04", "A05", "A06", "A07", "A08", "A09", "A10", "A11"}},
		{"status all is a no-op", Filter{Status: "all"}, "", []string{"A01", "A02", "A03", "A04", "A05", "A06", "A07", "A08", "A09", "A10", "A11"}},
		{"status exact", Filter{Status: "Cancelled"}, "", []string{"A04"}},
		{"date range inclusive both ends", Filter{DateFrom: "2024-01-01", DateTo: "2024-02-01"}, "", []string{"A02", "A03", "A04", "A05", "A06", "A07", "A08", "A09", "A11"}},
		{"created_by partner", Filter{CreatedBy: "partner"}, "", []string{"A02", "A07", "A11"}},
		// An appointment with no created_by tag never matches a specific value.
		{"created_by customer skips untagged", Filter{CreatedBy: "customer"}, "", []string{"A01", "A03", "A04", "A05", "A06", "A09", "A10"}},
		{"query matches id exactly", Filter{}, "a04", []string{"A04"}},
		{"query matches customer id exactly", Filter{}, "C1", []string{"A02", "A05", "A07"}},
		{"query matches name substring", Filter{}, "thị an", []string{"A02", "A05", "A07"}},
		{"query misses", Filter{}, "zzz", nil},
		{"query and status combine", Filter{Status: "Pending_Confirmation"}, "khách", []string{"A09", "A11"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(fixture(), tt.filter, tt.query)
			assertIDs(t, got, tt.want...)
		})
	}
}

func TestApplyDateRangeExcludesUnparseable(t *testing.T) {
	got := Apply(fixture(), Filter{DateFrom: "2000-01-01"}, "")
	for _, a := range got {
		if a.ID == "A10" {
			t.Error("appointment with unparseable date matched a date filter")
		}
	}
}
