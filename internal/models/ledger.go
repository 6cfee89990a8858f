package models

// ReservedAtFormat is the timestamp layout recorded on reservations.
// It sorts lexicographically in chronological order.
const ReservedAtFormat = "20060102150405"

// Ledger maps item IDs to their reservation entries. Entries are
// created lazily on first reservation and are never deleted.
type Ledger map[string]LedgerEntry

// LedgerEntry accumulates the reservations made against one item.
type LedgerEntry struct {
	// GiftID references the reserved item.
	GiftID string `json:"gift_id"`

	// GiftTitle is a copy of the item title taken at first reservation.
	// It is not resynced when the item is later renamed.
	GiftTitle string `json:"gift_title"`

	// PartsReserved is the running total of parts claimed so far.
	// It stays 0 for items reserved as a whole.
	PartsReserved int `json:"gift_parts_reserved"`

	// PartsTotal is a copy of the item's parts count taken at first
	// reservation.
	PartsTotal int `json:"gift_parts_total"`

	// Reservations is the append-only, ordered sequence of individual
	// claims against the item. It is never reordered or truncated.
	Reservations []Reservation `json:"gift_reservations"`
}

// Reservation records a single claim by a visitor.
type Reservation struct {
	// Reserver is the visitor's free-text name. Unverified.
	Reserver string `json:"gift_reserver"`

	// Parts is the number of parts claimed (0 for whole-item claims).
	Parts int `json:"gift_parts"`

	// Email is the visitor's address, or empty if the submitted value
	// was not a syntactically valid email.
	Email string `json:"gift_reserver_email"`

	// Message is optional free text left for the registry owner.
	Message string `json:"gift_reserver_message"`

	// ReservedAt is the wall-clock timestamp in ReservedAtFormat.
	ReservedAt string `json:"gift_reservation_date"`
}

// Clone returns a deep copy of the ledger. Reservation slices are
// copied so appends on the clone never alias the original.
func (l Ledger) Clone() Ledger {
	if l == nil {
		return Ledger{}
	}
	out := make(Ledger, len(l))
	for id, entry := range l {
		reservations := make([]Reservation, len(entry.Reservations))
		copy(reservations, entry.Reservations)
		entry.Reservations = reservations
		out[id] = entry
	}
	return out
}
