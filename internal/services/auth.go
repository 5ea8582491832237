package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/seekline/jobtrack/internal/models"
	"github.com/seekline/jobtrack/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the fixed bcrypt work factor for password hashing.
// bcrypt is deliberately slow so offline guessing stays expensive; changing
// this only affects newly hashed passwords.
const BcryptCost = bcrypt.DefaultCost

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password. The two cases are indistinguishable on purpose, so the login
// endpoint cannot be used to enumerate usernames.
var ErrInvalidCredentials = errors.New("incorrect username or password")

// RegisterInput is the registration request body.
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// HashPassword derives a one-way salted hash of the password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword verifies a password against a stored hash. The comparison is
// delegated to bcrypt, which is constant-time safe.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// RegisterUser creates a new account. A taken username reports
// store.ErrConflict and leaves the existing user untouched.
func RegisterUser(ctx context.Context, rs store.RecordStore, input RegisterInput) (*models.User, error) {
	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		PasswordHash: hash,
		Email:        input.Email,
	}
	if err := rs.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate resolves a username/password pair to a user. Both an unknown
// username and a failed password check report ErrInvalidCredentials.
func Authenticate(ctx context.Context, rs store.RecordStore, username, password string) (*models.User, error) {
	user, err := rs.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
