package model

import "time"

// DownloadLink grants time and usage limited access to a purchased file.
type DownloadLink struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"orderId"`
	ProductName   string    `json:"productName"`
	Key           string    `json:"key"`
	ExpiresAt     time.Time `json:"expiresAt"`
	MaxDownloads  int       `json:"maxDownloads"`
	DownloadCount int       `json:"downloadCount"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Expired reports whether link validity ended before now.
func (l DownloadLink) Expired(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}

// Exhausted reports whether download allowance is used up.
func (l DownloadLink) Exhausted() bool {
	return l.DownloadCount >= l.MaxDownloads
}

// Remaining returns number of downloads left.
func (l DownloadLink) Remaining() int {
	return max(0, l.MaxDownloads-l.DownloadCount)
}

// AccessLog records a single download event.
type AccessLog struct {
	ID              string    `json:"id"`
	LinkID          string    `json:"linkId,omitempty"`
	Resource        string    `json:"resource"`
	Timestamp       time.Time `json:"timestamp"`
	IP              string    `json:"ip"`
	DeviceSignature string    `json:"deviceSig"`
}
