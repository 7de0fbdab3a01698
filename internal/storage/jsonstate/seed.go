package jsonstate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradsolution/storefront/internal/domain/model"
)

const day = 24 * time.Hour

// seed returns the initial demo state relative to now.
func seed(now time.Time) state {
	address := "Palatine Hill 1\nRome, Empire"

	return state{
		orders: []model.Order{
			{
				ID:             "ord_123",
				Status:         model.OrderStatusCompleted,
				ProductID:      "prod_4",
				ProductName:    "Institutional Playbook",
				CustomerName:   "Marcus Aurelius",
				CustomerEmail:  "marcus@rome.com",
				Amount:         decimal.NewFromInt(1000),
				Currency:       "EUR",
				Tax:            decimal.NewFromInt(200),
				CreatedAt:      now.Add(-2 * day),
				Notes:          "VIP Client",
				PaymentMethod:  model.PaymentMethodPayPal,
				TransactionID:  "PAY-882731",
				BillingAddress: address,
				BillingCountry: "Italy",
			},
			{
				ID:            "ord_124",
				Status:        model.OrderStatusPending,
				ProductID:     "prod_2",
				ProductName:   "The Prop Challenge Manual",
				CustomerName:  "Lucius Verus",
				CustomerEmail: "lucius@rome.com",
				Amount:        decimal.NewFromInt(250),
				Currency:      "EUR",
				Tax:           decimal.NewFromInt(50),
				CreatedAt:     now.Add(-time.Hour),
				PaymentMethod: model.PaymentMethodManual,
			},
		},
		invoices: []model.Invoice{
			{
				ID:            "inv_001",
				OrderID:       "ord_123",
				InvoiceNumber: "TS-2024-0001",
				IssueDate:     now,
				Subtotal:      decimal.NewFromInt(1000),
				Tax:           decimal.NewFromInt(200),
				Total:         decimal.NewFromInt(1200),
				Currency:      "EUR",
				Status:        model.InvoiceStatusPaid,
				BillTo: model.BillTo{
					Name:    "Marcus Aurelius",
					Email:   "marcus@rome.com",
					Address: address,
					Country: "Italy",
				},
				PDFURL: "#",
			},
		},
		links: []model.DownloadLink{
			{
				ID:            "dl_1",
				OrderID:       "ord_123",
				ProductName:   "Institutional Playbook",
				Key:           "sec_829102",
				ExpiresAt:     now.Add(30 * day),
				MaxDownloads:  5,
				DownloadCount: 1,
				IsActive:      true,
				CreatedAt:     now.Add(-2*day + time.Hour),
			},
		},
		logs: []model.AccessLog{
			{
				ID:              "log_1",
				LinkID:          "dl_1",
				Resource:        "Institutional Playbook PDF",
				Timestamp:       now,
				IP:              "81.198.34.17",
				DeviceSignature: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/17C54 Safari/605.1.15",
			},
		},
		settings: model.PayPalSettings{
			Enabled:      true,
			Mode:         model.PayPalModeSandbox,
			ClientID:     "sb-client-id-mock",
			ClientSecret: "sb-secret-key-mock",
		},
	}
}
