package order

import "time"

// HistoryEntry is one record of the edit history. Entries are values and the order
// only ever appends them.
type HistoryEntry struct {
	At     time.Time
	Action Action

	// Stage is the order status at the time of the action.
	Stage Stage

	ItemName string
	Quantity int
	Detail   string
}

func (o *Order) record(entry HistoryEntry) {
	o.history = append(o.history, entry)
	o.edited = true
}
