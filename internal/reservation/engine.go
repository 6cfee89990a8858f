// Package reservation implements the pure reservation-state update
// logic. It has no I/O: callers load the current item list and ledger,
// apply a request, and persist whatever comes back.
package reservation

import (
	"errors"
	"time"

	"github.com/murphy83/wpgiftregistry/internal/models"
)

// ErrGiftNotFound is returned when a request targets an item ID that
// does not exist in the wishlist. Nothing is computed in that case.
var ErrGiftNotFound = errors.New("gift not found in wishlist")

// Request carries one sanitized reservation against a single item.
// Validation happens at the gateway; the engine trusts its inputs.
type Request struct {
	// GiftID identifies the target item within the wishlist.
	GiftID string

	// Availability is the caller's proposed availability. It is
	// authoritative for indivisible items only; for divisible items the
	// engine derives availability from the ledger instead.
	Availability bool

	// PartsClaimed is the number of parts claimed by this request.
	// 0 for whole-item reservations.
	PartsClaimed int

	// Reserver, Email and Message describe the visitor. Email is either
	// a syntactically valid address or empty.
	Reserver string
	Email    string
	Message  string

	// Now is the wall-clock time stamped onto the ledger record.
	Now time.Time
}

// Apply computes the updated item list and ledger for one reservation.
// Inputs are never mutated; the returned values are independent copies.
//
// For a divisible item the new availability is derived from the ledger:
// the item stays available unless the running total of reserved parts
// lands exactly on the item's parts count. A claim that overshoots the
// total therefore flips the item back to available. This mirrors the
// long-standing behavior of the stored records and is covered by a
// regression test; do not "fix" it without a data migration.
//
// For an indivisible item the caller-supplied availability is written
// verbatim. In both cases the ledger entry is upserted and the claim is
// appended to its reservation sequence.
func Apply(items []models.Item, ledger models.Ledger, req Request) ([]models.Item, models.Ledger, error) {
	idx := -1
	for i := range items {
		if items[i].ID == req.GiftID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil, ErrGiftNotFound
	}

	updated := models.CloneItems(items)
	item := &updated[idx]

	switch item.Kind() {
	case models.KindDivisible:
		item.Available = ReservedParts(ledger, req.GiftID)+req.PartsClaimed != item.PartsTotal
	case models.KindIndivisible:
		item.Available = req.Availability
	}

	newLedger := ledger.Clone()
	entry, ok := newLedger[req.GiftID]
	if !ok {
		entry = models.LedgerEntry{
			GiftID:     item.ID,
			GiftTitle:  item.Title,
			PartsTotal: item.PartsTotal,
		}
	}
	entry.PartsReserved += req.PartsClaimed
	entry.Reservations = append(entry.Reservations, models.Reservation{
		Reserver:   req.Reserver,
		Parts:      req.PartsClaimed,
		Email:      req.Email,
		Message:    req.Message,
		ReservedAt: req.Now.Format(models.ReservedAtFormat),
	})
	newLedger[req.GiftID] = entry

	return updated, newLedger, nil
}

// ReservedParts returns the running total of parts already reserved
// for the given item, or 0 if the item has no ledger entry yet.
func ReservedParts(ledger models.Ledger, giftID string) int {
	if entry, ok := ledger[giftID]; ok {
		return entry.PartsReserved
	}
	return 0
}

// ApplyLegacy updates the old flat wishlist format: every item whose
// title matches is overwritten with the requested availability. Legacy
// items carry no identifiers, so duplicate titles are indistinguishable
// and all of them are updated. No ledger is involved.
func ApplyLegacy(list models.LegacyList, title string, available bool) (models.LegacyList, error) {
	matched := false
	items := make([]models.LegacyItem, len(list.Items))
	copy(items, list.Items)
	for i := range items {
		if items[i].Title == title {
			items[i].Available = available
			matched = true
		}
	}
	if !matched {
		return models.LegacyList{}, ErrGiftNotFound
	}
	return models.LegacyList{Items: items}, nil
}
