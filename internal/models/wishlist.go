package models

// ItemKind tags the two availability policies an item can follow.
type ItemKind int

const (
	// KindIndivisible items are reserved as a whole; availability is
	// set directly by the reservation request.
	KindIndivisible ItemKind = iota

	// KindDivisible items are split into PartsTotal independently
	// reservable parts; availability is derived from the ledger.
	KindDivisible
)

// Wishlist represents one published gift registry.
type Wishlist struct {
	// ID is the unique identifier for the wishlist (UUID format).
	ID string `json:"id"`

	// Title is the display name of the wishlist (e.g., "Wedding 2026").
	Title string `json:"title"`

	// Items is the ordered list of gifts on this wishlist.
	Items []Item `json:"items"`

	// CreatedAt is the Unix timestamp when the wishlist was created.
	CreatedAt int64 `json:"created_at"`
}

// Item represents a single gift on a wishlist.
// Items are created and edited by an administrator; the reservation
// flow only ever mutates the Available field.
type Item struct {
	// ID is the unique identifier for the item within its wishlist.
	ID string `json:"gift_id"`

	// Title is the display text of the gift.
	Title string `json:"gift_title"`

	// Description is optional free text shown alongside the gift.
	Description string `json:"gift_description,omitempty"`

	// URL is an optional link to a shop page for the gift.
	URL string `json:"gift_url,omitempty"`

	// Price is the display price of the gift. The currency symbol and
	// its placement come from injected display settings, not from here.
	Price float64 `json:"gift_price,omitempty"`

	// HasParts marks the item as divisible into PartsTotal parts that
	// different visitors can claim independently.
	HasParts bool `json:"gift_has_parts"`

	// PartsTotal is the number of reservable parts. Only meaningful
	// when HasParts is true.
	PartsTotal int `json:"gift_parts_total,omitempty"`

	// Available reports whether the item can still be reserved.
	// For divisible items this is derived from the ledger; for
	// indivisible items it is set directly by a reservation.
	Available bool `json:"gift_availability"`
}

// Kind returns the availability policy for the item, derived from the
// stored item state. Request-supplied divisibility claims are never
// trusted over this.
func (i Item) Kind() ItemKind {
	if i.HasParts && i.PartsTotal >= 1 {
		return KindDivisible
	}
	return KindIndivisible
}

// CloneItems returns a deep copy of an item list.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
