package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/tradsolution/storefront/internal/domain/errors"
	"github.com/tradsolution/storefront/internal/domain/model"
	"github.com/tradsolution/storefront/internal/domain/repository"
)

// SettingsUseCase manages payment provider settings.
type SettingsUseCase struct {
	repos repository.Factory
}

// NewSettingsUseCase constructs SettingsUseCase.
func NewSettingsUseCase(repos repository.Factory) *SettingsUseCase {
	return &SettingsUseCase{repos: repos}
}

// PayPal returns current PayPal settings.
func (u *SettingsUseCase) PayPal(ctx context.Context) (*model.PayPalSettings, error) {
	return u.repos.Settings().PayPal(ctx)
}

// UpdatePayPal replaces PayPal settings.
func (u *SettingsUseCase) UpdatePayPal(ctx context.Context, settings model.PayPalSettings) (*model.PayPalSettings, error) {
	settings.Mode = model.PayPalMode(strings.ToUpper(string(settings.Mode)))
	if settings.Mode != model.PayPalModeSandbox && settings.Mode != model.PayPalModeLive {
		return nil, fmt.Errorf("paypal mode %q: %w", settings.Mode, domainErrors.ErrInvalidInput)
	}
	settings.ClientID = strings.TrimSpace(settings.ClientID)
	if settings.Enabled && settings.ClientID == "" {
		return nil, fmt.Errorf("client id is required when paypal is enabled: %w", domainErrors.ErrInvalidInput)
	}

	if err := u.repos.Settings().SavePayPal(ctx, settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
