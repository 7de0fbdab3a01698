package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes purchase lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusFailed     OrderStatus = "FAILED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
	OrderStatusDownloaded OrderStatus = "DOWNLOADED"
)

// Valid reports whether status is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusFailed, OrderStatusRefunded, OrderStatusDownloaded:
		return true
	}
	return false
}

// Delivered reports whether the order grants access to the product file.
func (s OrderStatus) Delivered() bool {
	return s == OrderStatusCompleted || s == OrderStatusDownloaded
}

// PaymentMethod identifies how an order was paid.
type PaymentMethod string

const (
	PaymentMethodPayPal PaymentMethod = "PAYPAL"
	PaymentMethodStripe PaymentMethod = "STRIPE"
	PaymentMethodManual PaymentMethod = "MANUAL"
)

// Valid reports whether method is supported.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodPayPal, PaymentMethodStripe, PaymentMethodManual:
		return true
	}
	return false
}

// Order describes a purchase of a single catalog product.
type Order struct {
	ID             string          `json:"id"`
	Status         OrderStatus     `json:"status"`
	ProductID      string          `json:"productId"`
	ProductName    string          `json:"productName"`
	CustomerName   string          `json:"customerName"`
	CustomerEmail  string          `json:"customerEmail"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Tax            decimal.Decimal `json:"tax"`
	CreatedAt      time.Time       `json:"createdAt"`
	Notes          string          `json:"notes,omitempty"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod,omitempty"`
	TransactionID  string          `json:"transactionId,omitempty"`
	BillingAddress string          `json:"billingAddress,omitempty"`
	BillingCountry string          `json:"billingCountry,omitempty"`
}

// Total returns amount including tax.
func (o Order) Total() decimal.Decimal {
	return o.Amount.Add(o.Tax)
}

// OrderPatch carries partial order updates. Nil fields are left untouched.
type OrderPatch struct {
	Status         *OrderStatus
	CustomerName   *string
	CustomerEmail  *string
	Notes          *string
	PaymentMethod  *PaymentMethod
	TransactionID  *string
	BillingAddress *string
	BillingCountry *string
}

// Apply merges patch into order and returns the result.
func (p OrderPatch) Apply(o Order) Order {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.CustomerName != nil {
		o.CustomerName = *p.CustomerName
	}
	if p.CustomerEmail != nil {
		o.CustomerEmail = *p.CustomerEmail
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
	if p.PaymentMethod != nil {
		o.PaymentMethod = *p.PaymentMethod
	}
	if p.TransactionID != nil {
		o.TransactionID = *p.TransactionID
	}
	if p.BillingAddress != nil {
		o.BillingAddress = *p.BillingAddress
	}
	if p.BillingCountry != nil {
		o.BillingCountry = *p.BillingCountry
	}
	return o
}
