package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	domainErrors "github.com/tradsolution/storefront/internal/domain/errors"
)

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error)  { return "", errors.New("hash failed") }
func (failingHasher) Compare(string, string) error { return errors.New("mismatch") }

func TestAdminCredentialsVerify(t *testing.T) {
	creds, err := NewAdminCredentials("admin@tradsolution.com", "krikucis", NewBcryptHasher(bcrypt.MinCost))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{"match", "admin@tradsolution.com", "krikucis", false},
		{"email case and spaces", "  ADMIN@tradsolution.com ", "krikucis", false},
		{"wrong password", "admin@tradsolution.com", "nope", true},
		{"wrong email", "root@tradsolution.com", "krikucis", true},
		{"empty", "", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := creds.Verify(tc.email, tc.password)
			if tc.wantErr && !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Fatalf("expected invalid credentials, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewAdminCredentialsErrors(t *testing.T) {
	if _, err := NewAdminCredentials("", "pw", NewBcryptHasher(0)); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := NewAdminCredentials("a@b.c", "pw", failingHasher{}); err == nil {
		t.Fatal("expected hash error")
	}
}
