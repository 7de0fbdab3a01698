package handlers

import (
	"context"

	"github.com/tradsolution/storefront/internal/domain/model"
	"github.com/tradsolution/storefront/internal/usecase"
)

// CatalogFacade exposes the product catalog.
type CatalogFacade interface {
	Products() []model.Product
	Product(id string) (*model.Product, error)
	Landing() model.Landing
}

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(email, password string) (string, error)
	ParseToken(token string) (string, error)
	View(portal, token string) usecase.View
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Checkout(ctx context.Context, productID, name, email string) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.Order, error)
	UpdateOrder(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error)
	Stats(ctx context.Context) (*model.AdminStats, error)
}

// InvoiceFacade provides invoice operations.
type InvoiceFacade interface {
	Invoices(ctx context.Context) ([]model.Invoice, error)
	InvoiceForOrder(ctx context.Context, orderID string) (*model.Invoice, error)
	SaveInvoice(ctx context.Context, invoice model.Invoice) (*model.Invoice, error)
	GenerateInvoice(ctx context.Context, orderID string) (*model.Invoice, error)
	InvoiceAudit(ctx context.Context, invoiceID string) (*model.Invoice, error)
	InvoicePDF(ctx context.Context, invoiceID string) (*usecase.RenderedInvoice, error)
}

// DeliveryFacade manages download links.
type DeliveryFacade interface {
	Links(ctx context.Context) ([]model.DownloadLink, error)
	CreateLink(ctx context.Context, orderID string) (*model.DownloadLink, error)
	DeactivateLink(ctx context.Context, id string) (*model.DownloadLink, error)
	Redeem(ctx context.Context, key, ip, userAgent string) (*usecase.Redemption, error)
	AccessLogs(ctx context.Context) ([]model.AccessLog, error)
}

// SettingsFacade reads and writes payment settings.
type SettingsFacade interface {
	PayPalSettings(ctx context.Context) (*model.PayPalSettings, error)
	UpdatePayPalSettings(ctx context.Context, settings model.PayPalSettings) (*model.PayPalSettings, error)
}

// HealthFacade reports backend health.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	CatalogFacade
	AuthFacade
	OrderFacade
	InvoiceFacade
	DeliveryFacade
	SettingsFacade
	HealthFacade
}
