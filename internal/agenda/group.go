package agenda

import (
	"fmt"
	"time"
)

// customerKeyUnknown is the bucket for appointments with no customer
// identity at all.
const customerKeyUnknown = "unknown"

// CustomerKey resolves the grouping key of an appointment: customer id,
// falling back to user id, then display name, then "unknown".
func CustomerKey(a Appointment) string {
	switch {
	case a.CustomerID != "":
		return a.CustomerID
	case a.UserID != "":
		return a.UserID
	case a.CustomerName != "":
		return a.CustomerName
	default:
		return customerKeyUnknown
	}
}

// OrderNumbers assigns each distinct customer a sequential number in
// first-seen order over the given list. The list must be the full,
// unfiltered appointment set so the same customer keeps the same number in
// every calendar cell of a render pass.
func OrderNumbers(appts []Appointment) map[string]int {
	order := make(map[string]int)
	next := 1
	for _, a := range appts {
		key := CustomerKey(a)
		if _, seen := order[key]; !seen {
			order[key] = next
			next++
		}
	}
	return order
}

// OrderLabel formats a customer order number the way both apps display it.
func OrderLabel(n int) string {
	return fmt.Sprintf("Đơn %d", n)
}

// colorPalette is the fixed set of badge classes customers are colored
// with. Collisions are acceptable; the hash only needs to be deterministic.
var colorPalette = [10]string{
	"badge-rose",
	"badge-orange",
	"badge-amber",
	"badge-lime",
	"badge-emerald",
	"badge-teal",
	"badge-sky",
	"badge-indigo",
	"badge-violet",
	"badge-pink",
}

// ColorClass maps a customer key to its palette class via an additive
// code-point hash.
func ColorClass(key string) string {
	sum := 0
	for _, r := range key {
		sum += int(r)
	}
	return colorPalette[sum%len(colorPalette)]
}

// CustomerCard is the day-view summary card: one per customer, with that
// customer's appointments for the day and a running pet total.
type CustomerCard struct {
	Key          string        `json:"key"`
	CustomerName string        `json:"customer_name"`
	OrderNumber  int           `json:"order_number"`
	OrderLabel   string        `json:"order_label"`
	Color        string        `json:"color"`
	PetCount     int           `json:"pet_count"`
	Appointments []Appointment `json:"appointments"`
}

// DayCards groups the given day's appointments into one card per customer.
// Ordering and numbering come from the full list, so cards keep their "Đơn N"
// labels regardless of which day is open.
func DayCards(appts []Appointment, day time.Time) []CustomerCard {
	dayKey := DateKey(day)
	order := OrderNumbers(appts)

	var cards []CustomerCard
	index := make(map[string]int)
	for _, a := range appts {
		key, ok := a.DayKey()
		if !ok || key != dayKey {
			continue
		}

		ck := CustomerKey(a)
		i, seen := index[ck]
		if !seen {
			n := order[ck]
			cards = append(cards, CustomerCard{
				Key:          ck,
				CustomerName: a.CustomerName,
				OrderNumber:  n,
				OrderLabel:   OrderLabel(n),
				Color:        ColorClass(ck),
			})
			i = len(cards) - 1
			index[ck] = i
		}
		cards[i].Appointments = append(cards[i].Appointments, a)
		cards[i].PetCount += a.PetCount
		if cards[i].CustomerName == "" {
			cards[i].CustomerName = a.CustomerName
		}
	}
	return cards
}
