package usecase

import (
	pkgAuth "github.com/tradsolution/storefront/internal/pkg/auth"
)

// AuthUseCase checks the admin login and manages session tokens.
type AuthUseCase struct {
	admin  *pkgAuth.AdminCredentials
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(admin *pkgAuth.AdminCredentials, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{admin: admin, tokens: strategy}
}

// Login validates credentials and returns a session token.
func (u *AuthUseCase) Login(email, password string) (string, error) {
	if err := u.admin.Verify(email, password); err != nil {
		return "", err
	}
	return u.tokens.IssueToken(u.admin.Email())
}

// ParseToken returns the session subject.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}
