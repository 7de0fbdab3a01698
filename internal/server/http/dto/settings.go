package dto

import "github.com/tradsolution/storefront/internal/domain/model"

// PayPalRequest replaces PayPal settings.
type PayPalRequest struct {
	Enabled      bool   `json:"enabled"`
	Mode         string `json:"mode" binding:"required"`
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
}

// Settings converts the request into domain settings.
func (r PayPalRequest) Settings() model.PayPalSettings {
	return model.PayPalSettings{
		Enabled:      r.Enabled,
		Mode:         model.PayPalMode(r.Mode),
		ClientID:     r.ClientID,
		ClientSecret: r.ClientSecret,
	}
}
