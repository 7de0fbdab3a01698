package repository

import (
	"context"
	"time"

	"github.com/tradsolution/storefront/internal/domain/model"
)

// DownloadLinkRepository manages download access tokens.
type DownloadLinkRepository interface {
	List(ctx context.Context) ([]model.DownloadLink, error)
	Get(ctx context.Context, id string) (*model.DownloadLink, error)
	GetByKey(ctx context.Context, key string) (*model.DownloadLink, error)
	// FirstByOrderID returns the link listed first for the order.
	FirstByOrderID(ctx context.Context, orderID string) (*model.DownloadLink, error)
	// Create puts the link ahead of all existing links.
	Create(ctx context.Context, link model.DownloadLink) error
	// Append puts the link after all existing links.
	Append(ctx context.Context, link model.DownloadLink) error
	Update(ctx context.Context, link model.DownloadLink) error
	// ListStale returns active links that expired or ran out of downloads.
	ListStale(ctx context.Context, now time.Time, limit int) ([]model.DownloadLink, error)
}

// AccessLogRepository stores download events.
type AccessLogRepository interface {
	List(ctx context.Context) ([]model.AccessLog, error)
	Append(ctx context.Context, log model.AccessLog) error
	// FirstByLinkID returns the earliest event recorded for the link.
	FirstByLinkID(ctx context.Context, linkID string) (*model.AccessLog, error)
}
