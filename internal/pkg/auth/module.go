package auth

import (
	"go.uber.org/fx"

	"github.com/tradsolution/storefront/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
	fx.Provide(newAdminCredentials),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewHMACStrategy(p.Config.TokenSecret, Options{})
}

func newAdminCredentials(cfg *config.Config, hasher PasswordHasher) (*AdminCredentials, error) {
	return NewAdminCredentials(cfg.AdminEmail, cfg.AdminPassword, hasher)
}
