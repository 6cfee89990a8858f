package handlers

import (
	"net/http"

	"github.com/murphy83/wpgiftregistry/internal/middleware"
	"github.com/murphy83/wpgiftregistry/internal/service"
)

// issueNonce hands the widget the anti-forgery token it must echo back
// on every availability update.
func (h *Handler) issueNonce(w http.ResponseWriter, r *http.Request) {
	nonce, err := h.nonces.Issue()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"nonce": nonce})
}

// updateAvailability is the reservation endpoint. The nonce is checked
// before anything else; an invalid token aborts with no state change.
// Field validation and the actual update live in the service layer.
func (h *Handler) updateAvailability(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, statusResponse{Status: "bad_request", Error: "malformed form body"})
		middleware.ReservationsTotal.WithLabelValues("unknown", "bad_request").Inc()
		return
	}

	schema := r.PostForm.Get("version")
	if schema == "" {
		schema = "unknown"
	}

	if err := h.nonces.Verify(r.PostForm.Get("nonce")); err != nil {
		middleware.ReservationsTotal.WithLabelValues(schema, writeError(w, err)).Inc()
		return
	}

	req, err := service.ParseUpdate(r.PostForm)
	if err != nil {
		middleware.ReservationsTotal.WithLabelValues(schema, writeError(w, err)).Inc()
		return
	}

	if err := h.reservations.Update(r.Context(), req); err != nil {
		middleware.ReservationsTotal.WithLabelValues(schema, writeError(w, err)).Inc()
		return
	}

	middleware.ReservationsTotal.WithLabelValues(schema, "ok").Inc()
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}
