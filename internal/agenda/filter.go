package agenda

import "strings"

// Filter is the partner-app filter bar state. Zero values (or "all" for
// Status) disable the corresponding predicate.
type Filter struct {
	Status    string
	DateFrom  string
	DateTo    string
	CreatedBy string
}

// Apply returns the appointments satisfying every active filter predicate
// and the free-text query. Predicates are conjunctive; each one is evaluated
// for every appointment so the semantics stay identical whichever field is
// set. Date bounds are inclusive on both ends and compared lexicographically,
// which is correct because date keys are zero-padded.
func Apply(appts []Appointment, f Filter, query string) []Appointment {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Appointment, 0, len(appts))
	for _, a := range appts {
		statusOK := matchStatus(a, f.Status)
		dateOK := matchDateRange(a, f.DateFrom, f.DateTo)
		createdOK := matchCreatedBy(a, f.CreatedBy)
		queryOK := matchQuery(a, q)
		if statusOK && dateOK && createdOK && queryOK {
			out = append(out, a)
		}
	}
	return out
}

func matchStatus(a Appointment, status string) bool {
	if status == "" || status == "all" {
		return true
	}
	return string(a.Status) == status
}

func matchDateRange(a Appointment, from, to string) bool {
	if from == "" && to == "" {
		return true
	}
	key, ok := a.DayKey()
	if !ok {
		return false
	}
	if from != "" && key < from {
		return false
	}
	if to != "" && key > to {
		return false
	}
	return true
}

// matchCreatedBy treats a missing created_by tag as the empty string, so an
// untagged appointment never matches a specific filter value.
func matchCreatedBy(a Appointment, createdBy string) bool {
	if createdBy == "" || createdBy == "all" {
		return true
	}
	return string(a.CreatedBy) == createdBy
}

// matchQuery matches when the query equals the appointment id, equals the
// customer id, or is a substring of the customer display name. All three
// comparisons are case-insensitive.
func matchQuery(a Appointment, q string) bool {
	if q == "" {
		return true
	}
	if strings.ToLower(a.ID) == q {
		return true
	}
	if a.CustomerID != "" && strings.ToLower(a.CustomerID) == q {
		return true
	}
	return strings.Contains(strings.ToLower(a.CustomerName), q)
}
