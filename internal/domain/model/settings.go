package model

import "github.com/shopspring/decimal"

// PayPalMode selects PayPal environment.
type PayPalMode string

const (
	PayPalModeSandbox PayPalMode = "SANDBOX"
	PayPalModeLive    PayPalMode = "LIVE"
)

// PayPalSettings configures checkout through PayPal.
type PayPalSettings struct {
	Enabled      bool       `json:"enabled"`
	Mode         PayPalMode `json:"mode"`
	ClientID     string     `json:"clientId"`
	ClientSecret string     `json:"clientSecret"`
}

// Sandbox reports whether payments run against the PayPal sandbox.
func (s PayPalSettings) Sandbox() bool {
	return s.Mode == PayPalModeSandbox
}

// AdminStats aggregates dashboard figures.
type AdminStats struct {
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalOrders    int             `json:"totalOrders"`
	ActiveUsers    int             `json:"activeUsers"`
	ConversionRate float64         `json:"conversionRate"`
}
