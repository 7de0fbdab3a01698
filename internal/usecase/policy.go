package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradsolution/storefront/internal/config"
)

// Policy carries commercial constants applied to new orders and links.
type Policy struct {
	VATRate          decimal.Decimal
	Currency         string
	LinkTTL          time.Duration
	LinkMaxDownloads int
}

// NewPolicy reads policy values from configuration.
func NewPolicy(cfg *config.Config) Policy {
	return Policy{
		VATRate:          cfg.VATRate,
		Currency:         cfg.Currency,
		LinkTTL:          cfg.LinkTTL,
		LinkMaxDownloads: cfg.LinkMaxDownloads,
	}
}

// DefaultPolicy matches the storefront defaults: 20% VAT, EUR, 30 day links with 5 downloads.
func DefaultPolicy() Policy {
	return Policy{
		VATRate:          decimal.RequireFromString("0.20"),
		Currency:         "EUR",
		LinkTTL:          30 * 24 * time.Hour,
		LinkMaxDownloads: 5,
	}
}

// Tax returns VAT for amount rounded to cents.
func (p Policy) Tax(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.VATRate).Round(2)
}
