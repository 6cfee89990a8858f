// Package models defines the core domain models for the gift registry.
//
// # Current Models
//
//   - Wishlist: a published collection of gift Items, stored as one
//     document per wishlist together with its reservation Ledger
//   - Item: a single giftable thing, optionally divisible into parts
//   - Ledger / LedgerEntry / Reservation: the append-only record of
//     reservations made against the items of one wishlist
//   - LegacyList: the older flat, ledger-less wishlist format kept for
//     backward compatibility
//
// Visitors are identified by free-text name/email only (no accounts).
//
// # Design Principles
//
// 1. **Documents, not rows**: a wishlist's item list and its ledger are
// two sibling attributes of one stored document, mirroring the source
// system's per-wishlist metadata layout
// 2. **Derived availability**: Item.Available is not independently
// authoritative for divisible items; it is recomputed from the ledger
// 3. **Denormalized by design**: a LedgerEntry copies the item title and
// parts total at first-reservation time and never resyncs them
// 4. **Avoid circular references**: ledger entries reference items by
// ID string, never by pointer
package models
