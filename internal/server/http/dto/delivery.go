package dto

import "time"

// RedemptionResponse confirms a served download.
type RedemptionResponse struct {
	OrderID       string    `json:"orderId"`
	Resource      string    `json:"resource"`
	DownloadCount int       `json:"downloadCount"`
	Remaining     int       `json:"remaining"`
	ExpiresAt     time.Time `json:"expiresAt"`
}
