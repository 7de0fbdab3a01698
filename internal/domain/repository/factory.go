package repository

import "context"

// Factory describes access to different domain repositories.
type Factory interface {
	Orders() OrderRepository
	Invoices() InvoiceRepository
	Links() DownloadLinkRepository
	AccessLogs() AccessLogRepository
	Settings() SettingsRepository

	// WithinTransaction runs fn against repositories that commit together.
	WithinTransaction(ctx context.Context, fn func(Factory) error) error
}
