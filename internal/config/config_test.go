package config

import "testing"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("NONCE_SECRET", "test-secret")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.NonceTTL.Hours() != 12 {
		t.Errorf("NonceTTL = %v, want 12h", cfg.NonceTTL)
	}
	if cfg.CurrencySymbol != "$" || cfg.CurrencySymbolPlacement != "before" {
		t.Errorf("currency defaults = %q %q", cfg.CurrencySymbol, cfg.CurrencySymbolPlacement)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("NONCE_SECRET", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "x")
	if _, err := Load(); err == nil {
		t.Error("expected error for missing NONCE_SECRET")
	}

	setRequired(t)
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	if _, err := Load(); err == nil {
		t.Error("expected error for missing ADMIN_PASSWORD_HASH")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	setRequired(t)

	t.Setenv("NONCE_TTL", "yesterday")
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid NONCE_TTL")
	}
	t.Setenv("NONCE_TTL", "1h")

	t.Setenv("CURRENCY_SYMBOL_PLACEMENT", "around")
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid CURRENCY_SYMBOL_PLACEMENT")
	}
}
