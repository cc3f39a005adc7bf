package auth

import (
	"errors"
	"path/filepath"
	"testing"

	"campuschat/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	store, err := storage.OpenPath(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenPath failed: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})

	return NewService(store)
}

func TestSignupSigninRoundTrip(t *testing.T) {
	service := newTestService(t)

	created, err := service.Signup(NewUser{
		Name:     "Sarah Chen",
		Email:    "Sarah@Example.edu",
		Username: "sarahc",
		Password: "correct horse",
		Campus:   "hku_main",
	})
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated user id")
	}
	if created.Email != "sarah@example.edu" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}

	// Signup signs the user in.
	current, ok := service.CurrentUser()
	if !ok {
		t.Fatalf("expected a current user after signup")
	}
	if current.ID != created.ID {
		t.Fatalf("expected current user %q, got %q", created.ID, current.ID)
	}

	if err := service.Signout(); err != nil {
		t.Fatalf("Signout failed: %v", err)
	}
	if _, ok := service.CurrentUser(); ok {
		t.Fatalf("expected no current user after signout")
	}

	signed, err := service.Signin("sarah@example.edu", "correct horse")
	if err != nil {
		t.Fatalf("Signin failed: %v", err)
	}
	if signed.ID != created.ID {
		t.Fatalf("expected same account, got %q vs %q", signed.ID, created.ID)
	}
	if _, ok := service.CurrentUser(); !ok {
		t.Fatalf("expected current user after signin")
	}
}

func TestSigninRejectsBadCredentials(t *testing.T) {
	service := newTestService(t)

	if _, err := service.Signup(NewUser{
		Name:     "Mike Johnson",
		Email:    "mike@example.edu",
		Username: "mikej",
		Password: "coffeetime",
	}); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	if _, err := service.Signin("mike@example.edu", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := service.Signin("nobody@example.edu", "coffeetime"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	service := newTestService(t)

	user := NewUser{
		Name:     "Emma Wilson",
		Email:    "emma@example.edu",
		Username: "emmaw",
		Password: "assignment1",
	}
	if _, err := service.Signup(user); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if _, err := service.Signup(user); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSignupValidation(t *testing.T) {
	service := newTestService(t)

	if _, err := service.Signup(NewUser{Email: "x@example.edu", Username: "x", Password: "longenough"}); err == nil {
		t.Fatalf("expected missing name to fail")
	}
	if _, err := service.Signup(NewUser{Name: "X", Email: "x@example.edu", Username: "x", Password: "short"}); err == nil {
		t.Fatalf("expected short password to fail")
	}
}

func TestCurrentUserAbsentOnFreshStore(t *testing.T) {
	service := newTestService(t)

	if _, ok := service.CurrentUser(); ok {
		t.Fatalf("expected no current user on a fresh store")
	}
}
