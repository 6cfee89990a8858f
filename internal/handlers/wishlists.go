package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/murphy83/wpgiftregistry/internal/models"
)

// listWishlists returns all wishlists that have at least one item.
// Empty wishlists do not exist for display purposes.
func (h *Handler) listWishlists(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.registry.Wishlists(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

// getWishlist returns one wishlist with per-item availability, reserved
// parts and the injected display settings.
func (h *Handler) getWishlist(w http.ResponseWriter, r *http.Request) {
	view, err := h.registry.Wishlist(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// getLegacyList returns the flat legacy wishlist.
func (h *Handler) getLegacyList(w http.ResponseWriter, r *http.Request) {
	list, err := h.registry.LegacyList(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// createWishlist persists a new wishlist, optionally seeded with items.
func (h *Handler) createWishlist(w http.ResponseWriter, r *http.Request) {
	var wishlist models.Wishlist
	if err := json.NewDecoder(r.Body).Decode(&wishlist); err != nil {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "bad_request", Error: "malformed JSON body"})
		return
	}
	if err := h.registry.CreateWishlist(r.Context(), &wishlist); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, wishlist)
}

// addItem appends one item to an existing wishlist.
func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "bad_request", Error: "malformed JSON body"})
		return
	}
	if err := h.registry.AddItem(r.Context(), r.PathValue("id"), &item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// replaceLegacyList overwrites the flat legacy wishlist.
func (h *Handler) replaceLegacyList(w http.ResponseWriter, r *http.Request) {
	var list models.LegacyList
	if err := json.NewDecoder(r.Body).Decode(&list); err != nil {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "bad_request", Error: "malformed JSON body"})
		return
	}
	if err := h.registry.ReplaceLegacyList(r.Context(), list); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}
