package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/tradsolution/storefront/internal/domain/errors"
	"github.com/tradsolution/storefront/internal/domain/model"
	"github.com/tradsolution/storefront/internal/usecase"
)

// CatalogFacadeStub serves a fixed catalog.
type CatalogFacadeStub struct {
	Items       []model.Product
	LandingPage model.Landing
}

// Products returns configured items.
func (s CatalogFacadeStub) Products() []model.Product {
	return s.Items
}

// Product looks up an item by id.
func (s CatalogFacadeStub) Product(id string) (*model.Product, error) {
	for i := range s.Items {
		if s.Items[i].ID == id {
			p := s.Items[i]
			return &p, nil
		}
	}
	return nil, domainErrors.ErrProductNotFound
}

// Landing returns configured landing content.
func (s CatalogFacadeStub) Landing() model.Landing {
	return s.LandingPage
}

// AuthFacadeStub provides controllable authentication.
type AuthFacadeStub struct {
	LoginFn func(string, string) (string, error)
	ParseFn func(string) (string, error)
	ViewFn  func(string, string) usecase.View
}

// Login delegates to LoginFn or issues a token for email.
func (s AuthFacadeStub) Login(email, password string) (string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(email, password)
	}
	return "token:" + email, nil
}

// ParseToken delegates to ParseFn or accepts any non-empty token.
func (s AuthFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "admin@tradsolution.com", nil
}

// View delegates to ViewFn or resolves with any non-empty token as a session.
func (s AuthFacadeStub) View(portal, token string) usecase.View {
	if s.ViewFn != nil {
		return s.ViewFn(portal, token)
	}
	return usecase.ResolveView(portal, token != "")
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CheckoutFn func(context.Context, string, string, string) (*model.Order, error)
	OrdersFn   func(context.Context) ([]model.Order, error)
	OrderFn    func(context.Context, string) (*model.Order, error)
	CreateFn   func(context.Context, usecase.CreateOrderInput) (*model.Order, error)
	UpdateFn   func(context.Context, string, model.OrderPatch) (*model.Order, error)
	StatsFn    func(context.Context) (*model.AdminStats, error)
}

// Checkout delegates to CheckoutFn or returns a completed order.
func (s OrderFacadeStub) Checkout(ctx context.Context, productID, name, email string) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, productID, name, email)
	}
	return &model.Order{ID: "ord_1", ProductID: productID, CustomerName: name, CustomerEmail: email, Status: model.OrderStatusCompleted}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return nil, nil
}

// Order delegates to OrderFn or reports not found.
func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// CreateOrder delegates to CreateFn or echoes the input.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}
	return &model.Order{ID: "ord_1", ProductID: in.ProductID, CustomerName: in.CustomerName, CustomerEmail: in.CustomerEmail, Status: in.Status}, nil
}

// UpdateOrder delegates to UpdateFn or reports not found.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	return nil, domainErrors.ErrNotFound
}

// Stats delegates to StatsFn or returns empty stats.
func (s OrderFacadeStub) Stats(ctx context.Context) (*model.AdminStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.AdminStats{TotalRevenue: decimal.Zero}, nil
}

// InvoiceFacadeStub provides controllable invoice operations.
type InvoiceFacadeStub struct {
	InvoicesFn func(context.Context) ([]model.Invoice, error)
	ForOrderFn func(context.Context, string) (*model.Invoice, error)
	SaveFn     func(context.Context, model.Invoice) (*model.Invoice, error)
	GenerateFn func(context.Context, string) (*model.Invoice, error)
	AuditFn    func(context.Context, string) (*model.Invoice, error)
	PDFFn      func(context.Context, string) (*usecase.RenderedInvoice, error)
}

// Invoices returns predefined invoices.
func (s InvoiceFacadeStub) Invoices(ctx context.Context) ([]model.Invoice, error) {
	if s.InvoicesFn != nil {
		return s.InvoicesFn(ctx)
	}
	return nil, nil
}

// InvoiceForOrder delegates to ForOrderFn or returns a draft.
func (s InvoiceFacadeStub) InvoiceForOrder(ctx context.Context, orderID string) (*model.Invoice, error) {
	if s.ForOrderFn != nil {
		return s.ForOrderFn(ctx, orderID)
	}
	return &model.Invoice{ID: "inv_draft_1", OrderID: orderID, Status: model.InvoiceStatusDraft}, nil
}

// SaveInvoice delegates to SaveFn or echoes the invoice.
func (s InvoiceFacadeStub) SaveInvoice(ctx context.Context, invoice model.Invoice) (*model.Invoice, error) {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, invoice)
	}
	return &invoice, nil
}

// GenerateInvoice delegates to GenerateFn or returns an issued invoice.
func (s InvoiceFacadeStub) GenerateInvoice(ctx context.Context, orderID string) (*model.Invoice, error) {
	if s.GenerateFn != nil {
		return s.GenerateFn(ctx, orderID)
	}
	return &model.Invoice{ID: "inv_1", OrderID: orderID, Status: model.InvoiceStatusIssued}, nil
}

// InvoiceAudit delegates to AuditFn or reports not found.
func (s InvoiceFacadeStub) InvoiceAudit(ctx context.Context, invoiceID string) (*model.Invoice, error) {
	if s.AuditFn != nil {
		return s.AuditFn(ctx, invoiceID)
	}
	return nil, domainErrors.ErrNotFound
}

// InvoicePDF delegates to PDFFn or returns a stub document.
func (s InvoiceFacadeStub) InvoicePDF(ctx context.Context, invoiceID string) (*usecase.RenderedInvoice, error) {
	if s.PDFFn != nil {
		return s.PDFFn(ctx, invoiceID)
	}
	return &usecase.RenderedInvoice{Filename: invoiceID + ".pdf", Content: []byte("%PDF-stub")}, nil
}

// DeliveryFacadeStub provides controllable link operations.
type DeliveryFacadeStub struct {
	LinksFn      func(context.Context) ([]model.DownloadLink, error)
	CreateFn     func(context.Context, string) (*model.DownloadLink, error)
	DeactivateFn func(context.Context, string) (*model.DownloadLink, error)
	RedeemFn     func(context.Context, string, string, string) (*usecase.Redemption, error)
	LogsFn       func(context.Context) ([]model.AccessLog, error)
}

// Links returns predefined links.
func (s DeliveryFacadeStub) Links(ctx context.Context) ([]model.DownloadLink, error) {
	if s.LinksFn != nil {
		return s.LinksFn(ctx)
	}
	return nil, nil
}

// CreateLink delegates to CreateFn or returns an active link.
func (s DeliveryFacadeStub) CreateLink(ctx context.Context, orderID string) (*model.DownloadLink, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, orderID)
	}
	return &model.DownloadLink{ID: "dl_1", OrderID: orderID, IsActive: true, MaxDownloads: 5}, nil
}

// DeactivateLink delegates to DeactivateFn or reports not found.
func (s DeliveryFacadeStub) DeactivateLink(ctx context.Context, id string) (*model.DownloadLink, error) {
	if s.DeactivateFn != nil {
		return s.DeactivateFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// Redeem delegates to RedeemFn or reports not found.
func (s DeliveryFacadeStub) Redeem(ctx context.Context, key, ip, userAgent string) (*usecase.Redemption, error) {
	if s.RedeemFn != nil {
		return s.RedeemFn(ctx, key, ip, userAgent)
	}
	return nil, domainErrors.ErrNotFound
}

// AccessLogs returns predefined logs.
func (s DeliveryFacadeStub) AccessLogs(ctx context.Context) ([]model.AccessLog, error) {
	if s.LogsFn != nil {
		return s.LogsFn(ctx)
	}
	return nil, nil
}

// SettingsFacadeStub keeps PayPal settings in memory.
type SettingsFacadeStub struct {
	GetFn    func(context.Context) (*model.PayPalSettings, error)
	UpdateFn func(context.Context, model.PayPalSettings) (*model.PayPalSettings, error)
}

// PayPalSettings delegates to GetFn or returns sandbox settings.
func (s SettingsFacadeStub) PayPalSettings(ctx context.Context) (*model.PayPalSettings, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx)
	}
	return &model.PayPalSettings{Enabled: true, Mode: model.PayPalModeSandbox}, nil
}

// UpdatePayPalSettings delegates to UpdateFn or echoes settings.
func (s SettingsFacadeStub) UpdatePayPalSettings(ctx context.Context, settings model.PayPalSettings) (*model.PayPalSettings, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, settings)
	}
	return &settings, nil
}

// HealthFacadeStub reports Err as backend health.
type HealthFacadeStub struct {
	Err error
}

// Health returns configured error.
func (s HealthFacadeStub) Health(context.Context) error {
	return s.Err
}

// StorefrontFacadeStub combines all facade stubs.
type StorefrontFacadeStub struct {
	CatalogFacadeStub
	AuthFacadeStub
	OrderFacadeStub
	InvoiceFacadeStub
	DeliveryFacadeStub
	SettingsFacadeStub
	HealthFacadeStub
}
