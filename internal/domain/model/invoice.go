package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus describes billing document state.
type InvoiceStatus string

const (
	InvoiceStatusDraft  InvoiceStatus = "DRAFT"
	InvoiceStatusIssued InvoiceStatus = "ISSUED"
	InvoiceStatusVoided InvoiceStatus = "VOIDED"
	InvoiceStatusPaid   InvoiceStatus = "PAID"
)

// Valid reports whether status is known.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusIssued, InvoiceStatusVoided, InvoiceStatusPaid:
		return true
	}
	return false
}

// DeliveryStatus tells whether the purchased file was fetched.
type DeliveryStatus string

const (
	DeliveryStatusDownloaded DeliveryStatus = "DOWNLOADED"
	DeliveryStatusPending    DeliveryStatus = "PENDING"
)

// BillTo holds invoice recipient details.
type BillTo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
	Country string `json:"country,omitempty"`
	VATID   string `json:"vatId,omitempty"`
}

// Invoice is a billing document derived from an order.
type Invoice struct {
	ID            string             `json:"id"`
	OrderID       string             `json:"orderId"`
	InvoiceNumber string             `json:"invoiceNumber"`
	IssueDate     time.Time          `json:"issueDate"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Tax           decimal.Decimal    `json:"tax"`
	Total         decimal.Decimal    `json:"total"`
	Currency      string             `json:"currency"`
	Status        InvoiceStatus      `json:"status"`
	BillTo        BillTo             `json:"billTo"`
	PDFURL        string             `json:"pdfUrl,omitempty"`
	AuditTrail    *InvoiceAuditTrail `json:"auditTrail,omitempty"`
}

// Recalculate sets total to subtotal plus tax.
func (i *Invoice) Recalculate() {
	i.Total = i.Subtotal.Add(i.Tax)
}

// InvoiceAuditTrail is the proof-of-delivery block attached to invoices.
// Zero values mean the corresponding event has not happened.
type InvoiceAuditTrail struct {
	DeliveryStatus  DeliveryStatus `json:"deliveryStatus"`
	LinkID          string         `json:"linkId,omitempty"`
	SentAt          *time.Time     `json:"sentTimestamp,omitempty"`
	AccessIP        string         `json:"accessIp,omitempty"`
	AccessedAt      *time.Time     `json:"accessTime,omitempty"`
	DeviceSignature string         `json:"deviceSig,omitempty"`
	Sandbox         bool           `json:"isSandbox"`
}
