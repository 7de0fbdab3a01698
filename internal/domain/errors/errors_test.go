package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"product not found", ErrProductNotFound},
		{"invalid input", ErrInvalidInput},
		{"invalid credentials", ErrInvalidCredentials},
		{"link inactive", ErrLinkInactive},
		{"link expired", ErrLinkExpired},
		{"limit reached", ErrDownloadLimitReached},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("context: %w", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match: %v", tc.err)
			}
		})
	}
}
