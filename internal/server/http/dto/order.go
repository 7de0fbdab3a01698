package dto

import (
	"time"

	"github.com/tradsolution/storefront/internal/domain/model"
)

// CheckoutRequest is a public purchase of a catalog product.
type CheckoutRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Name      string `json:"name" binding:"max=200"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// CreateOrderRequest is an order entered from the admin panel.
type CreateOrderRequest struct {
	ProductID     string     `json:"productId" binding:"required"`
	CustomerName  string     `json:"customerName" binding:"required,max=200"`
	CustomerEmail string     `json:"customerEmail" binding:"required,email"`
	PaymentMethod string     `json:"paymentMethod" binding:"omitempty,oneof=PAYPAL STRIPE MANUAL"`
	Status        string     `json:"status" binding:"omitempty,oneof=PENDING COMPLETED FAILED REFUNDED DOWNLOADED"`
	Address       string     `json:"billingAddress"`
	Country       string     `json:"billingCountry"`
	CreatedAt     *time.Time `json:"createdAt"`
	AccessTime    *time.Time `json:"accessTime"`
}

// UpdateOrderRequest patches an order. Absent fields stay unchanged.
type UpdateOrderRequest struct {
	Status         *string `json:"status" binding:"omitempty,oneof=PENDING COMPLETED FAILED REFUNDED DOWNLOADED"`
	CustomerName   *string `json:"customerName" binding:"omitempty,max=200"`
	CustomerEmail  *string `json:"customerEmail" binding:"omitempty,email"`
	Notes          *string `json:"notes"`
	PaymentMethod  *string `json:"paymentMethod" binding:"omitempty,oneof=PAYPAL STRIPE MANUAL"`
	TransactionID  *string `json:"transactionId"`
	BillingAddress *string `json:"billingAddress"`
	BillingCountry *string `json:"billingCountry"`
}

// Patch converts the request into a domain patch.
func (r UpdateOrderRequest) Patch() model.OrderPatch {
	patch := model.OrderPatch{
		CustomerName:   r.CustomerName,
		CustomerEmail:  r.CustomerEmail,
		Notes:          r.Notes,
		TransactionID:  r.TransactionID,
		BillingAddress: r.BillingAddress,
		BillingCountry: r.BillingCountry,
	}
	if r.Status != nil {
		status := model.OrderStatus(*r.Status)
		patch.Status = &status
	}
	if r.PaymentMethod != nil {
		method := model.PaymentMethod(*r.PaymentMethod)
		patch.PaymentMethod = &method
	}
	return patch
}
