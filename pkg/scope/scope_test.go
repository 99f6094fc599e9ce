package scope

import (
	"errors"
	"testing"
)

func TestCreateAndVerifyToken(t *testing.T) {
	mgr := New("test-secret")

	token, err := mgr.CreateToken(Payload{UserID: "user-1", Username: "alice"})
	if err != nil {
		t.Fatalf("CreateToken returned error: %v", err)
	}
	if token == "" {
		t.Fatal("CreateToken returned an empty token")
	}

	payload, err := mgr.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if payload.UserID != "user-1" || payload.Username != "alice" {
		t.Errorf("unexpected payload: %+v", payload)
	}
	if payload.Subject != "user-1" {
		t.Errorf("Subject should mirror the user id, got %q", payload.Subject)
	}
	if payload.ID == "" {
		t.Error("token should carry a jti")
	}
}

func TestVerifyRejectsEmptyToken(t *testing.T) {
	mgr := New("test-secret")

	if _, err := mgr.Verify(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	mgr := New("test-secret")

	token, err := mgr.CreateToken(Payload{UserID: "user-1"})
	if err != nil {
		t.Fatalf("CreateToken returned error: %v", err)
	}

	if _, err := mgr.Verify(token + "x"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for a tampered token, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := New("secret-a").CreateToken(Payload{UserID: "user-1"})
	if err != nil {
		t.Fatalf("CreateToken returned error: %v", err)
	}

	if _, err := New("secret-b").Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for a foreign secret, got %v", err)
	}
}

func TestNewScope(t *testing.T) {
	sc := NewScope(Payload{UserID: "user-1", Username: "alice"})
	if sc.UserID != "user-1" || sc.Username != "alice" {
		t.Errorf("unexpected scope: %+v", sc)
	}
}
