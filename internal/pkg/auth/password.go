package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	domainErrors "github.com/tradsolution/storefront/internal/domain/errors"
)

// PasswordHasher hashes the admin password at start and checks login attempts against it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// BcryptHasher hashes with bcrypt at a fixed cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates BcryptHasher. A cost outside bcrypt's range means bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of password. Passwords longer than 72 bytes are rejected.
func (h *BcryptHasher) Hash(password string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(encoded), nil
}

// Compare returns ErrInvalidCredentials when password does not match hash.
func (h *BcryptHasher) Compare(hash string, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domainErrors.ErrInvalidCredentials
	}
	return err
}
