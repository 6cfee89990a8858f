package models

// LegacyItem is a gift in the old flat wishlist format. Legacy items
// have no identifier; they are matched by title.
type LegacyItem struct {
	Title     string `json:"gift_title"`
	Available bool   `json:"gift_availability"`
}

// LegacyList is the old single-wishlist format, stored under one fixed
// key with no ledger and no per-item identifiers. It is kept readable
// and writable indefinitely for records created by prior versions.
type LegacyList struct {
	Items []LegacyItem `json:"wishlist_group"`
}
