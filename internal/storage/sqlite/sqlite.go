// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/murphy83/wpgiftregistry/internal/models"
	"github.com/murphy83/wpgiftregistry/internal/storage"
)

// legacyKey is the fixed row key for the flat legacy wishlist,
// mirroring the single option record of the old format.
const legacyKey = "wishlist"

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateWishlist persists a new wishlist document.
func (s *SQLiteStore) CreateWishlist(ctx context.Context, w *models.Wishlist) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.CreatedAt == 0 {
		w.CreatedAt = time.Now().Unix()
	}
	for i := range w.Items {
		if w.Items[i].ID == "" {
			w.Items[i].ID = uuid.New().String()
		}
	}

	itemsJSON, err := json.Marshal(itemsOrEmpty(w.Items))
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO wishlists (id, title, items, ledger, created_at) VALUES (?, ?, ?, '{}', ?)",
		w.ID, w.Title, string(itemsJSON), w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert wishlist: %w", err)
	}
	return nil
}

// GetWishlist retrieves a wishlist and its ledger by ID.
func (s *SQLiteStore) GetWishlist(ctx context.Context, id string) (*models.Wishlist, models.Ledger, error) {
	w := &models.Wishlist{}
	var itemsJSON, ledgerJSON string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, items, ledger, created_at FROM wishlists WHERE id = ?",
		id,
	).Scan(&w.ID, &w.Title, &itemsJSON, &ledgerJSON, &w.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get wishlist: %w", err)
	}

	if err := json.Unmarshal([]byte(itemsJSON), &w.Items); err != nil {
		return nil, nil, fmt.Errorf("failed to decode items: %w", err)
	}
	ledger := models.Ledger{}
	if err := json.Unmarshal([]byte(ledgerJSON), &ledger); err != nil {
		return nil, nil, fmt.Errorf("failed to decode ledger: %w", err)
	}
	return w, ledger, nil
}

// ListWishlists returns all wishlists with their items, oldest first.
func (s *SQLiteStore) ListWishlists(ctx context.Context) ([]*models.Wishlist, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, items, created_at FROM wishlists ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlists: %w", err)
	}
	defer rows.Close()

	var lists []*models.Wishlist
	for rows.Next() {
		w := &models.Wishlist{}
		var itemsJSON string
		if err := rows.Scan(&w.ID, &w.Title, &itemsJSON, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wishlist: %w", err)
		}
		if err := json.Unmarshal([]byte(itemsJSON), &w.Items); err != nil {
			return nil, fmt.Errorf("failed to decode items: %w", err)
		}
		lists = append(lists, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wishlists: %w", err)
	}
	return lists, nil
}

// AddItem appends an item to a wishlist's item list.
func (s *SQLiteStore) AddItem(ctx context.Context, wishlistID string, item *models.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var itemsJSON string
	err = tx.QueryRowContext(ctx,
		"SELECT items FROM wishlists WHERE id = ?", wishlistID,
	).Scan(&itemsJSON)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, wishlistID)
	}
	if err != nil {
		return fmt.Errorf("failed to get wishlist items: %w", err)
	}

	var items []models.Item
	if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
		return fmt.Errorf("failed to decode items: %w", err)
	}
	items = append(items, *item)

	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE wishlists SET items = ? WHERE id = ?", string(encoded), wishlistID,
	); err != nil {
		return fmt.Errorf("failed to update items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateReservationState replaces the item list and ledger attributes
// of a wishlist. Both land in one UPDATE of the document row, so the
// write is atomic: a reservation can never be visible in only one of
// the two attributes.
func (s *SQLiteStore) UpdateReservationState(ctx context.Context, id string, items []models.Item, ledger models.Ledger) error {
	itemsJSON, err := json.Marshal(itemsOrEmpty(items))
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}
	if ledger == nil {
		ledger = models.Ledger{}
	}
	ledgerJSON, err := json.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE wishlists SET items = ?, ledger = ? WHERE id = ?",
		string(itemsJSON), string(ledgerJSON), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update reservation state: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	return nil
}

// GetLegacyList retrieves the flat legacy wishlist.
func (s *SQLiteStore) GetLegacyList(ctx context.Context) (models.LegacyList, error) {
	var itemsJSON string
	err := s.db.QueryRowContext(ctx,
		"SELECT items FROM legacy_wishlist WHERE key = ?", legacyKey,
	).Scan(&itemsJSON)
	if err == sql.ErrNoRows {
		return models.LegacyList{}, nil
	}
	if err != nil {
		return models.LegacyList{}, fmt.Errorf("failed to get legacy wishlist: %w", err)
	}

	var list models.LegacyList
	if err := json.Unmarshal([]byte(itemsJSON), &list.Items); err != nil {
		return models.LegacyList{}, fmt.Errorf("failed to decode legacy items: %w", err)
	}
	return list, nil
}

// PutLegacyList replaces the flat legacy wishlist.
func (s *SQLiteStore) PutLegacyList(ctx context.Context, list models.LegacyList) error {
	itemsJSON, err := json.Marshal(legacyItemsOrEmpty(list.Items))
	if err != nil {
		return fmt.Errorf("failed to encode legacy items: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO legacy_wishlist (key, items) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET items = excluded.items`,
		legacyKey, string(itemsJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to put legacy wishlist: %w", err)
	}
	return nil
}

// itemsOrEmpty keeps the stored JSON an array even for nil slices.
func itemsOrEmpty(items []models.Item) []models.Item {
	if items == nil {
		return []models.Item{}
	}
	return items
}

func legacyItemsOrEmpty(items []models.LegacyItem) []models.LegacyItem {
	if items == nil {
		return []models.LegacyItem{}
	}
	return items
}
