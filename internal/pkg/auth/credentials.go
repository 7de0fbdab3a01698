package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"

	domainErrors "github.com/tradsolution/storefront/internal/domain/errors"
)

// AdminCredentials holds the single admin login. The password is kept
// only as a bcrypt hash.
type AdminCredentials struct {
	email  string
	hash   string
	hasher PasswordHasher
}

// NewAdminCredentials hashes password with hasher.
func NewAdminCredentials(email, password string, hasher PasswordHasher) (*AdminCredentials, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("admin credentials: %w", domainErrors.ErrInvalidInput)
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &AdminCredentials{email: strings.ToLower(email), hash: hash, hasher: hasher}, nil
}

// Email returns the admin login.
func (c *AdminCredentials) Email() string {
	return c.email
}

// Verify returns ErrInvalidCredentials unless email and password match.
func (c *AdminCredentials) Verify(email, password string) error {
	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(strings.TrimSpace(email))), []byte(c.email)) == 1
	// always compare the hash so timing does not reveal the email match
	passwordOK := c.hasher.Compare(c.hash, password) == nil
	if !emailOK || !passwordOK {
		return domainErrors.ErrInvalidCredentials
	}
	return nil
}
