package app

import (
	"context"

	"github.com/tradsolution/storefront/internal/domain/model"
	"github.com/tradsolution/storefront/internal/domain/repository"
	"github.com/tradsolution/storefront/internal/usecase"
)

// HealthChecker reports backend availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// StorefrontFacade joins use cases behind a single surface for the HTTP layer and workers.
type StorefrontFacade struct {
	catalog  repository.ProductCatalog
	auth     *usecase.AuthUseCase
	orders   *usecase.OrderUseCase
	invoices *usecase.InvoiceUseCase
	delivery *usecase.DeliveryUseCase
	settings *usecase.SettingsUseCase
	health   HealthChecker
}

// NewStorefrontFacade constructs StorefrontFacade.
func NewStorefrontFacade(
	catalog repository.ProductCatalog,
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	invoices *usecase.InvoiceUseCase,
	delivery *usecase.DeliveryUseCase,
	settings *usecase.SettingsUseCase,
	health HealthChecker,
) *StorefrontFacade {
	return &StorefrontFacade{
		catalog:  catalog,
		auth:     auth,
		orders:   orders,
		invoices: invoices,
		delivery: delivery,
		settings: settings,
		health:   health,
	}
}

func (f *StorefrontFacade) Products() []model.Product {
	return f.catalog.Products()
}

func (f *StorefrontFacade) Product(id string) (*model.Product, error) {
	return f.catalog.Product(id)
}

func (f *StorefrontFacade) Landing() model.Landing {
	return f.catalog.Landing()
}

func (f *StorefrontFacade) Login(email, password string) (string, error) {
	return f.auth.Login(email, password)
}

func (f *StorefrontFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

// View resolves the root screen, treating any invalid token as anonymous.
func (f *StorefrontFacade) View(portal, token string) usecase.View {
	_, err := f.auth.ParseToken(token)
	return usecase.ResolveView(portal, err == nil)
}

func (f *StorefrontFacade) Checkout(ctx context.Context, productID, name, email string) (*model.Order, error) {
	return f.orders.Checkout(ctx, productID, name, email)
}

func (f *StorefrontFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *StorefrontFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *StorefrontFacade) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.Order, error) {
	return f.orders.Create(ctx, in)
}

func (f *StorefrontFacade) UpdateOrder(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	return f.orders.Update(ctx, id, patch)
}

func (f *StorefrontFacade) Stats(ctx context.Context) (*model.AdminStats, error) {
	return f.orders.Stats(ctx)
}

func (f *StorefrontFacade) Invoices(ctx context.Context) ([]model.Invoice, error) {
	return f.invoices.List(ctx)
}

func (f *StorefrontFacade) InvoiceForOrder(ctx context.Context, orderID string) (*model.Invoice, error) {
	return f.invoices.ForOrder(ctx, orderID)
}

func (f *StorefrontFacade) SaveInvoice(ctx context.Context, invoice model.Invoice) (*model.Invoice, error) {
	return f.invoices.Save(ctx, invoice)
}

func (f *StorefrontFacade) GenerateInvoice(ctx context.Context, orderID string) (*model.Invoice, error) {
	return f.invoices.Generate(ctx, orderID)
}

func (f *StorefrontFacade) InvoiceAudit(ctx context.Context, invoiceID string) (*model.Invoice, error) {
	return f.invoices.Audit(ctx, invoiceID)
}

func (f *StorefrontFacade) InvoicePDF(ctx context.Context, invoiceID string) (*usecase.RenderedInvoice, error) {
	return f.invoices.RenderPDF(ctx, invoiceID)
}

func (f *StorefrontFacade) Links(ctx context.Context) ([]model.DownloadLink, error) {
	return f.delivery.Links(ctx)
}

func (f *StorefrontFacade) CreateLink(ctx context.Context, orderID string) (*model.DownloadLink, error) {
	return f.delivery.CreateLink(ctx, orderID)
}

func (f *StorefrontFacade) DeactivateLink(ctx context.Context, id string) (*model.DownloadLink, error) {
	return f.delivery.Deactivate(ctx, id)
}

func (f *StorefrontFacade) Redeem(ctx context.Context, key, ip, userAgent string) (*usecase.Redemption, error) {
	return f.delivery.Redeem(ctx, key, ip, userAgent)
}

func (f *StorefrontFacade) AccessLogs(ctx context.Context) ([]model.AccessLog, error) {
	return f.delivery.Logs(ctx)
}

func (f *StorefrontFacade) StaleLinks(ctx context.Context, limit int) ([]model.DownloadLink, error) {
	return f.delivery.StaleLinks(ctx, limit)
}

func (f *StorefrontFacade) RetireLink(ctx context.Context, id string) (bool, error) {
	return f.delivery.RetireLink(ctx, id)
}

func (f *StorefrontFacade) PayPalSettings(ctx context.Context) (*model.PayPalSettings, error) {
	return f.settings.PayPal(ctx)
}

func (f *StorefrontFacade) UpdatePayPalSettings(ctx context.Context, settings model.PayPalSettings) (*model.PayPalSettings, error) {
	return f.settings.UpdatePayPal(ctx, settings)
}

// Health returns nil when the storage backend answers.
func (f *StorefrontFacade) Health(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}
