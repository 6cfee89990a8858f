package auth

import (
	"errors"
	"testing"
	"time"
)

func TestNonceIssueAndVerify(t *testing.T) {
	mgr := NewNonceManager("test-secret-key-0123456789abcdef", time.Hour)

	nonce, err := mgr.Issue()
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if err := mgr.Verify(nonce); err != nil {
		t.Errorf("Verify failed on fresh nonce: %v", err)
	}
}

func TestNonceVerifyRejections(t *testing.T) {
	mgr := NewNonceManager("test-secret-key-0123456789abcdef", time.Hour)

	t.Run("empty nonce", func(t *testing.T) {
		if err := mgr.Verify(""); !errors.Is(err, ErrMissingNonce) {
			t.Errorf("error = %v, want ErrMissingNonce", err)
		}
	})

	t.Run("garbage nonce", func(t *testing.T) {
		if err := mgr.Verify("not-a-token"); !errors.Is(err, ErrInvalidNonce) {
			t.Errorf("error = %v, want ErrInvalidNonce", err)
		}
	})

	t.Run("expired nonce", func(t *testing.T) {
		expired := NewNonceManager("test-secret-key-0123456789abcdef", -time.Minute)
		nonce, err := expired.Issue()
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		if err := mgr.Verify(nonce); !errors.Is(err, ErrInvalidNonce) {
			t.Errorf("error = %v, want ErrInvalidNonce", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewNonceManager("a-completely-different-secret-key", time.Hour)
		nonce, err := other.Issue()
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		if err := mgr.Verify(nonce); !errors.Is(err, ErrInvalidNonce) {
			t.Errorf("error = %v, want ErrInvalidNonce", err)
		}
	})
}

func TestAdminAuthenticator(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	admin := NewAdminAuthenticator(hash)

	if err := admin.Authenticate("hunter22"); err != nil {
		t.Errorf("Authenticate failed with correct password: %v", err)
	}
	if err := admin.Authenticate("wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}
}
