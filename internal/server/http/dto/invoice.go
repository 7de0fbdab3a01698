package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradsolution/storefront/internal/domain/model"
)

// BillToRequest is the invoice recipient.
type BillToRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address"`
	Country string `json:"country"`
	VATID   string `json:"vatId"`
}

// InvoiceRequest is an invoice edited in the admin panel. The ID comes from the path.
type InvoiceRequest struct {
	OrderID       string          `json:"orderId"`
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	IssueDate     time.Time       `json:"issueDate"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Currency      string          `json:"currency" binding:"omitempty,iso4217"`
	Status        string          `json:"status" binding:"omitempty,oneof=DRAFT ISSUED VOIDED PAID"`
	BillTo        BillToRequest   `json:"billTo"`
	PDFURL        string          `json:"pdfUrl"`
}

// Invoice converts the request into a domain invoice with id.
func (r InvoiceRequest) Invoice(id string) model.Invoice {
	return model.Invoice{
		ID:            id,
		OrderID:       r.OrderID,
		InvoiceNumber: r.InvoiceNumber,
		IssueDate:     r.IssueDate,
		Subtotal:      r.Subtotal,
		Tax:           r.Tax,
		Currency:      r.Currency,
		Status:        model.InvoiceStatus(r.Status),
		BillTo: model.BillTo{
			Name:    r.BillTo.Name,
			Email:   r.BillTo.Email,
			Address: r.BillTo.Address,
			Country: r.BillTo.Country,
			VATID:   r.BillTo.VATID,
		},
		PDFURL: r.PDFURL,
	}
}
