// Package handlers exposes the registry over HTTP: the availability
// update endpoint used by the wishlist widget, the JSON read surface
// for rendering, and the admin management endpoints.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/murphy83/wpgiftregistry/internal/auth"
	"github.com/murphy83/wpgiftregistry/internal/reservation"
	"github.com/murphy83/wpgiftregistry/internal/service"
	"github.com/murphy83/wpgiftregistry/internal/storage"
)

// Handler bundles the HTTP endpoints and their collaborators.
type Handler struct {
	nonces       *auth.NonceManager
	admin        *auth.AdminAuthenticator
	reservations *service.ReservationService
	registry     *service.RegistryService
}

// New creates a Handler.
func New(nonces *auth.NonceManager, admin *auth.AdminAuthenticator, reservations *service.ReservationService, registry *service.RegistryService) *Handler {
	return &Handler{
		nonces:       nonces,
		admin:        admin,
		reservations: reservations,
		registry:     registry,
	}
}

// Register attaches all routes to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/nonce", h.issueNonce)
	mux.HandleFunc("POST /api/gifts/availability", h.updateAvailability)
	mux.HandleFunc("GET /api/wishlists", h.listWishlists)
	mux.HandleFunc("GET /api/wishlists/legacy", h.getLegacyList)
	mux.HandleFunc("GET /api/wishlists/{id}", h.getWishlist)
	mux.HandleFunc("POST /api/admin/wishlists", h.requireAdmin(h.createWishlist))
	mux.HandleFunc("POST /api/admin/wishlists/{id}/items", h.requireAdmin(h.addItem))
	mux.HandleFunc("PUT /api/admin/legacy", h.requireAdmin(h.replaceLegacyList))
}

// statusResponse is the structured result body of write endpoints.
type statusResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors onto the ok / not_found / bad_request /
// unauthorized taxonomy.
func writeError(w http.ResponseWriter, err error) string {
	switch {
	case errors.Is(err, auth.ErrInvalidNonce), errors.Is(err, auth.ErrMissingNonce):
		writeJSON(w, http.StatusForbidden, statusResponse{Status: "unauthorized"})
		return "unauthorized"
	case errors.Is(err, service.ErrBadRequest):
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "bad_request", Error: err.Error()})
		return "bad_request"
	case errors.Is(err, reservation.ErrGiftNotFound), errors.Is(err, storage.ErrNotFound):
		writeJSON(w, http.StatusNotFound, statusResponse{Status: "not_found"})
		return "not_found"
	default:
		slog.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, statusResponse{Status: "internal"})
		return "internal"
	}
}

// requireAdmin guards management endpoints with the shared admin
// credential carried as a bearer token.
func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		password, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || h.admin.Authenticate(password) != nil {
			writeJSON(w, http.StatusUnauthorized, statusResponse{Status: "unauthorized"})
			return
		}
		next(w, r)
	}
}
