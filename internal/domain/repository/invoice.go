package repository

import (
	"context"

	"github.com/tradsolution/storefront/internal/domain/model"
)

// InvoiceRepository describes persistence operations with invoices.
type InvoiceRepository interface {
	List(ctx context.Context) ([]model.Invoice, error)
	Get(ctx context.Context, id string) (*model.Invoice, error)
	GetByOrderID(ctx context.Context, orderID string) (*model.Invoice, error)
	// Create stores a new invoice ahead of existing ones.
	Create(ctx context.Context, invoice model.Invoice) error
	// Save replaces invoice with the same ID or appends it.
	// Returns ErrAlreadyExists when another invoice holds the same number.
	Save(ctx context.Context, invoice model.Invoice) error
}
