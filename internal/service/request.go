package service

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// ErrBadRequest marks validation failures at the gateway boundary.
// Malformed values are rejected here, never silently coerced; the
// engine only ever sees sanitized input.
var ErrBadRequest = errors.New("bad request")

// SchemaVersion selects which storage representation a request targets.
type SchemaVersion string

const (
	// SchemaCurrent is the per-item representation with a ledger.
	SchemaCurrent SchemaVersion = "new"
	// SchemaLegacy is the flat, ledger-less list matched by title.
	SchemaLegacy SchemaVersion = "old"
)

// UpdateRequest is one sanitized availability update.
type UpdateRequest struct {
	Schema SchemaVersion

	// Current-schema fields.
	WishlistID   string
	GiftID       string
	Availability bool
	HasParts     bool // caller's claim; the stored item is authoritative
	PartsClaimed int
	Reserver     string
	Email        string
	Message      string

	// Legacy-schema fields.
	ItemTitle string
}

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// ParseUpdate validates and sanitizes the raw form fields of an
// availability update. Field names follow the wire contract of the
// original AJAX endpoint.
func ParseUpdate(form url.Values) (UpdateRequest, error) {
	req := UpdateRequest{Schema: SchemaVersion(form.Get("version"))}

	switch req.Schema {
	case SchemaCurrent:
		var err error
		if req.WishlistID, err = parseKey(form.Get("wishlist_id"), "wishlist_id"); err != nil {
			return UpdateRequest{}, err
		}
		if req.GiftID, err = parseKey(form.Get("gift_id"), "gift_id"); err != nil {
			return UpdateRequest{}, err
		}
		if req.Availability, err = parseBool(form.Get("gift_availability"), "gift_availability"); err != nil {
			return UpdateRequest{}, err
		}
		if req.HasParts, err = parseBool(form.Get("gift_has_parts"), "gift_has_parts"); err != nil {
			return UpdateRequest{}, err
		}
		if req.PartsClaimed, err = parseParts(form.Get("gift_parts_reserved")); err != nil {
			return UpdateRequest{}, err
		}
		req.Reserver = sanitizeText(form.Get("gift_reserver"))
		req.Email = validEmailOrEmpty(form.Get("gift_reserver_email"))
		req.Message = sanitizeText(form.Get("gift_reserver_message"))
		return req, nil

	case SchemaLegacy:
		req.ItemTitle = sanitizeText(form.Get("itemName"))
		if req.ItemTitle == "" {
			return UpdateRequest{}, fmt.Errorf("%w: itemName is required", ErrBadRequest)
		}
		var err error
		if req.Availability, err = parseBool(form.Get("availability"), "availability"); err != nil {
			return UpdateRequest{}, err
		}
		return req, nil

	default:
		return UpdateRequest{}, fmt.Errorf("%w: version must be %q or %q", ErrBadRequest, SchemaCurrent, SchemaLegacy)
	}
}

func parseKey(value, field string) (string, error) {
	if value == "" || !keyPattern.MatchString(value) {
		return "", fmt.Errorf("%w: %s must be a non-empty identifier", ErrBadRequest, field)
	}
	return value, nil
}

func parseBool(value, field string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s must be \"true\" or \"false\"", ErrBadRequest, field)
}

// parseParts treats an absent field as zero parts (whole-item claims
// omit it) but rejects anything present that is not a non-negative
// integer.
func parseParts(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: gift_parts_reserved must be a non-negative integer", ErrBadRequest)
	}
	return n, nil
}

// sanitizeText strips markup from free-text fields.
func sanitizeText(value string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(value, ""))
}

// validEmailOrEmpty returns the address if syntactically valid, else "".
func validEmailOrEmpty(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return ""
	}
	return addr.Address
}
