package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/seekline/jobtrack/internal/services"
	"github.com/seekline/jobtrack/internal/store"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := services.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("Failed to hash: %v", err)
	}
	if hash == "s3cret" || hash == "" {
		t.Fatal("Hash must not be empty or the plaintext")
	}
	if !services.CheckPassword("s3cret", hash) {
		t.Error("Expected correct password to verify")
	}
	if services.CheckPassword("wrong", hash) {
		t.Error("Expected wrong password to fail")
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	rs := store.NewMemory()

	user, err := services.RegisterUser(ctx, rs, services.RegisterInput{
		Username: "alice",
		Password: "s3cret",
		Email:    "alice@example.com",
	})
	if err != nil {
		t.Fatalf("Failed to register: %v", err)
	}
	if user.ID == "" {
		t.Error("Expected generated user id")
	}
	if user.PasswordHash == "s3cret" {
		t.Error("Password must be stored hashed")
	}

	got, err := services.Authenticate(ctx, rs, "alice", "s3cret")
	if err != nil {
		t.Fatalf("Failed to authenticate: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("Expected user %s, got %s", user.ID, got.ID)
	}
}

// TestAuthenticateFailuresIndistinguishable checks that a wrong password and
// an unknown username produce the same error, so login cannot enumerate
// usernames.
func TestAuthenticateFailuresIndistinguishable(t *testing.T) {
	ctx := context.Background()
	rs := store.NewMemory()

	if _, err := services.RegisterUser(ctx, rs, services.RegisterInput{Username: "alice", Password: "s3cret"}); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	_, wrongPassword := services.Authenticate(ctx, rs, "alice", "nope")
	_, unknownUser := services.Authenticate(ctx, rs, "nobody", "nope")

	if !errors.Is(wrongPassword, services.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", wrongPassword)
	}
	if !errors.Is(unknownUser, services.ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown user, got %v", unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Error("Failure messages must be identical")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	rs := store.NewMemory()

	if _, err := services.RegisterUser(ctx, rs, services.RegisterInput{Username: "alice", Password: "first"}); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}
	if _, err := services.RegisterUser(ctx, rs, services.RegisterInput{Username: "alice", Password: "second"}); !errors.Is(err, store.ErrConflict) {
		t.Fatalf("Expected ErrConflict, got %v", err)
	}

	// original credentials still work
	if _, err := services.Authenticate(ctx, rs, "alice", "first"); err != nil {
		t.Errorf("Original user must be unmodified: %v", err)
	}
	if _, err := services.Authenticate(ctx, rs, "alice", "second"); err == nil {
		t.Error("Duplicate registration must not change the password")
	}
}
