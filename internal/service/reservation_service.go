// Package service implements the request gateway: it validates update
// requests, dispatches them to the right schema adapter, serializes
// writes per wishlist, and drives the reservation engine against the
// registry store.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/murphy83/wpgiftregistry/internal/models"
	"github.com/murphy83/wpgiftregistry/internal/reservation"
	"github.com/murphy83/wpgiftregistry/internal/storage"
)

// legacyLockKey serializes legacy-list updates; the legacy schema has a
// single global record rather than per-wishlist documents.
const legacyLockKey = "__legacy__"

// schemaAdapter applies one update against one storage representation.
// Both the current and the legacy schema implement it, so the dispatch
// site does not branch on schema internals.
type schemaAdapter interface {
	Apply(ctx context.Context, req UpdateRequest) error
}

// ReservationService coordinates availability updates.
type ReservationService struct {
	store    storage.Store
	locks    *keyedMutex
	now      func() time.Time
	adapters map[SchemaVersion]schemaAdapter
}

// NewReservationService creates a reservation service over the store.
func NewReservationService(store storage.Store) *ReservationService {
	s := &ReservationService{
		store: store,
		locks: newKeyedMutex(),
		now:   time.Now,
	}
	s.adapters = map[SchemaVersion]schemaAdapter{
		SchemaCurrent: &currentSchema{s},
		SchemaLegacy:  &legacySchema{s},
	}
	return s
}

// Update applies one sanitized availability update. The whole
// read-compute-persist sequence runs under a per-wishlist lock, so
// concurrent requests against the same wishlist serialize instead of
// racing on a stale running total.
func (s *ReservationService) Update(ctx context.Context, req UpdateRequest) error {
	adapter, ok := s.adapters[req.Schema]
	if !ok {
		return ErrBadRequest
	}
	return adapter.Apply(ctx, req)
}

// ReservedParts returns the running total of parts reserved for an
// item, or 0 if nothing has been reserved yet. Pure read.
func (s *ReservationService) ReservedParts(ctx context.Context, wishlistID, giftID string) (int, error) {
	_, ledger, err := s.store.GetWishlist(ctx, wishlistID)
	if err != nil {
		return 0, err
	}
	return reservation.ReservedParts(ledger, giftID), nil
}

// currentSchema updates the per-item representation and its ledger.
type currentSchema struct {
	svc *ReservationService
}

func (c *currentSchema) Apply(ctx context.Context, req UpdateRequest) error {
	unlock := c.svc.locks.lock(req.WishlistID)
	defer unlock()

	w, ledger, err := c.svc.store.GetWishlist(ctx, req.WishlistID)
	if err != nil {
		return err
	}

	warnOnKindMismatch(w.Items, req)

	items, updated, err := reservation.Apply(w.Items, ledger, reservation.Request{
		GiftID:       req.GiftID,
		Availability: req.Availability,
		PartsClaimed: req.PartsClaimed,
		Reserver:     req.Reserver,
		Email:        req.Email,
		Message:      req.Message,
		Now:          c.svc.now(),
	})
	if err != nil {
		return err
	}

	return c.svc.store.UpdateReservationState(ctx, req.WishlistID, items, updated)
}

// warnOnKindMismatch logs requests whose divisibility claim disagrees
// with the stored item. The stored item always wins; the flag is kept
// on the wire only for compatibility with existing clients.
func warnOnKindMismatch(items []models.Item, req UpdateRequest) {
	for i := range items {
		if items[i].ID != req.GiftID {
			continue
		}
		divisible := items[i].Kind() == models.KindDivisible
		if divisible != req.HasParts {
			slog.Warn("request divisibility claim ignored",
				"wishlist_id", req.WishlistID,
				"gift_id", req.GiftID,
				"claimed_has_parts", req.HasParts,
				"stored_has_parts", divisible,
			)
		}
		return
	}
}

// legacySchema updates the flat legacy list by title match.
type legacySchema struct {
	svc *ReservationService
}

func (l *legacySchema) Apply(ctx context.Context, req UpdateRequest) error {
	unlock := l.svc.locks.lock(legacyLockKey)
	defer unlock()

	list, err := l.svc.store.GetLegacyList(ctx)
	if err != nil {
		return err
	}

	updated, err := reservation.ApplyLegacy(list, req.ItemTitle, req.Availability)
	if err != nil {
		return err
	}

	return l.svc.store.PutLegacyList(ctx, updated)
}
