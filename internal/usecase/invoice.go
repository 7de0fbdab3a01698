package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/tradsolution/storefront/internal/domain/errors"
	"github.com/tradsolution/storefront/internal/domain/model"
	"github.com/tradsolution/storefront/internal/domain/repository"
	"github.com/tradsolution/storefront/internal/pkg/ident"
)

const (
	defaultItemDescription = "Premium Trading Manual"
	invoiceNumberAttempts  = 5
)

// InvoiceRenderer turns an invoice with audit trail into a document.
type InvoiceRenderer interface {
	Render(invoice model.Invoice, description string) ([]byte, error)
}

// RenderedInvoice is a generated invoice document.
type RenderedInvoice struct {
	Filename string
	Content  []byte
}

// InvoiceUseCase manages invoices and their delivery audit trail.
type InvoiceUseCase struct {
	repos    repository.Factory
	renderer InvoiceRenderer
	recorder Recorder
	now      func() time.Time
	number   func(time.Time) string
}

// NewInvoiceUseCase constructs InvoiceUseCase.
func NewInvoiceUseCase(repos repository.Factory, renderer InvoiceRenderer, recorder Recorder) *InvoiceUseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &InvoiceUseCase{repos: repos, renderer: renderer, recorder: recorder, now: time.Now, number: ident.InvoiceNumber}
}

// List returns all invoices.
func (u *InvoiceUseCase) List(ctx context.Context) ([]model.Invoice, error) {
	return u.repos.Invoices().List(ctx)
}

// ForOrder returns the stored invoice of the order or an unsaved draft
// prefilled from it.
func (u *InvoiceUseCase) ForOrder(ctx context.Context, orderID string) (*model.Invoice, error) {
	existing, err := u.repos.Invoices().GetByOrderID(ctx, orderID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	order, err := u.repos.Orders().Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	return &model.Invoice{
		ID:            ident.DraftInvoiceID(now),
		OrderID:       order.ID,
		InvoiceNumber: ident.InvoiceNumber(now),
		IssueDate:     order.CreatedAt,
		Subtotal:      order.Amount,
		Tax:           order.Tax,
		Total:         order.Total(),
		Currency:      order.Currency,
		Status:        model.InvoiceStatusPaid,
		BillTo: model.BillTo{
			Name:    order.CustomerName,
			Email:   order.CustomerEmail,
			Address: order.BillingAddress,
			Country: order.BillingCountry,
		},
		PDFURL: "#",
	}, nil
}

// Save validates and upserts an invoice. Total is always subtotal plus tax.
func (u *InvoiceUseCase) Save(ctx context.Context, invoice model.Invoice) (*model.Invoice, error) {
	invoice.InvoiceNumber = strings.TrimSpace(invoice.InvoiceNumber)
	switch {
	case invoice.ID == "":
		return nil, fmt.Errorf("invoice id is required: %w", domainErrors.ErrInvalidInput)
	case invoice.InvoiceNumber == "":
		return nil, fmt.Errorf("invoice number is required: %w", domainErrors.ErrInvalidInput)
	case strings.TrimSpace(invoice.BillTo.Name) == "", strings.TrimSpace(invoice.BillTo.Email) == "":
		return nil, fmt.Errorf("bill-to name and email are required: %w", domainErrors.ErrInvalidInput)
	case invoice.Status == "":
		invoice.Status = model.InvoiceStatusDraft
	case !invoice.Status.Valid():
		return nil, fmt.Errorf("invoice status %q: %w", invoice.Status, domainErrors.ErrInvalidInput)
	}
	if invoice.Subtotal.IsNegative() || invoice.Tax.IsNegative() {
		return nil, fmt.Errorf("amounts must not be negative: %w", domainErrors.ErrInvalidInput)
	}

	invoice.Recalculate()
	invoice.AuditTrail = nil

	if err := u.repos.Invoices().Save(ctx, invoice); err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, fmt.Errorf("invoice number already exists: %w", err)
		}
		return nil, err
	}
	return &invoice, nil
}

// Generate issues a paid invoice for the order dated now. A number already
// taken is replaced by a fresh one, up to invoiceNumberAttempts times.
func (u *InvoiceUseCase) Generate(ctx context.Context, orderID string) (*model.Invoice, error) {
	var invoice model.Invoice
	err := u.repos.WithinTransaction(ctx, func(tx repository.Factory) error {
		order, err := tx.Orders().Get(ctx, orderID)
		if err != nil {
			return err
		}

		now := u.now().UTC()
		invoice = model.Invoice{
			OrderID:   order.ID,
			IssueDate: now,
			Subtotal:  order.Amount,
			Tax:       order.Tax,
			Total:     order.Total(),
			Currency:  order.Currency,
			Status:    model.InvoiceStatusPaid,
			BillTo:    model.BillTo{Name: order.CustomerName, Email: order.CustomerEmail},
			PDFURL:    "#",
		}
		for attempt := 1; ; attempt++ {
			invoice.ID = ident.InvoiceID()
			invoice.InvoiceNumber = u.number(now)
			err = tx.Invoices().Create(ctx, invoice)
			if !errors.Is(err, domainErrors.ErrAlreadyExists) || attempt == invoiceNumberAttempts {
				break
			}
		}
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return fmt.Errorf("no free invoice number after %d attempts: %w", invoiceNumberAttempts, err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// Audit returns the invoice with its delivery audit trail. The trail uses the
// first link of the order and the first access through that link.
func (u *InvoiceUseCase) Audit(ctx context.Context, invoiceID string) (*model.Invoice, error) {
	invoice, err := u.repos.Invoices().Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	settings, err := u.repos.Settings().PayPal(ctx)
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	trail := &model.InvoiceAuditTrail{
		DeliveryStatus: model.DeliveryStatusPending,
		Sandbox:        settings != nil && settings.Sandbox(),
	}

	link, err := u.repos.Links().FirstByOrderID(ctx, invoice.OrderID)
	switch {
	case err == nil:
		sent := link.CreatedAt
		trail.LinkID = link.ID
		trail.SentAt = &sent

		log, err := u.repos.AccessLogs().FirstByLinkID(ctx, link.ID)
		switch {
		case err == nil:
			accessed := log.Timestamp
			trail.DeliveryStatus = model.DeliveryStatusDownloaded
			trail.AccessIP = log.IP
			trail.AccessedAt = &accessed
			trail.DeviceSignature = log.DeviceSignature
		case !errors.Is(err, domainErrors.ErrNotFound):
			return nil, err
		}
	case !errors.Is(err, domainErrors.ErrNotFound):
		return nil, err
	}

	invoice.AuditTrail = trail
	return invoice, nil
}

// RenderPDF renders the invoice with its audit trail.
func (u *InvoiceUseCase) RenderPDF(ctx context.Context, invoiceID string) (*RenderedInvoice, error) {
	invoice, err := u.Audit(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	description := defaultItemDescription
	order, err := u.repos.Orders().Get(ctx, invoice.OrderID)
	switch {
	case err == nil:
		description = order.ProductName
	case !errors.Is(err, domainErrors.ErrNotFound):
		return nil, err
	}

	content, err := u.renderer.Render(*invoice, description)
	if err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", invoice.InvoiceNumber, err)
	}

	u.recorder.InvoiceRendered()
	return &RenderedInvoice{
		Filename: "Invoice_" + invoice.InvoiceNumber + ".pdf",
		Content:  content,
	}, nil
}
