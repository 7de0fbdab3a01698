package repository

import (
	"context"

	"github.com/tradsolution/storefront/internal/domain/model"
)

// SettingsRepository keeps payment provider settings.
type SettingsRepository interface {
	PayPal(ctx context.Context) (*model.PayPalSettings, error)
	SavePayPal(ctx context.Context, settings model.PayPalSettings) error
}

// ProductCatalog provides read access to sellable products.
type ProductCatalog interface {
	Products() []model.Product
	Product(id string) (*model.Product, error)
	Landing() model.Landing
}
