package test

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/tradsolution/storefront/internal/domain/model"
)

// Fixtures builds domain values filled with fake data. A fixed seed makes runs reproducible.
type Fixtures struct {
	faker *gofakeit.Faker
	Now   time.Time
}

// NewFixtures returns fixtures seeded with seed. Now defaults to a fixed instant.
func NewFixtures(seed uint64) *Fixtures {
	return &Fixtures{
		faker: gofakeit.New(seed),
		Now:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Word returns a random lowercase word.
func (f *Fixtures) Word() string {
	return f.faker.Word()
}

// Order returns a completed order for prod_2.
func (f *Fixtures) Order() model.Order {
	return model.Order{
		ID:             "ord_" + f.faker.LetterN(9),
		Status:         model.OrderStatusCompleted,
		ProductID:      "prod_2",
		ProductName:    "The Prop Challenge Manual",
		CustomerName:   f.faker.Name(),
		CustomerEmail:  f.faker.Email(),
		Amount:         decimal.NewFromInt(250),
		Currency:       "EUR",
		Tax:            decimal.NewFromInt(50),
		CreatedAt:      f.Now.Add(-time.Hour),
		PaymentMethod:  model.PaymentMethodManual,
		BillingAddress: f.faker.Street(),
		BillingCountry: f.faker.Country(),
	}
}

// Invoice returns a paid invoice for order.
func (f *Fixtures) Invoice(order model.Order) model.Invoice {
	return model.Invoice{
		ID:            "inv_" + f.faker.LetterN(9),
		OrderID:       order.ID,
		InvoiceNumber: "TS-2024-" + f.faker.Numerify("####"),
		IssueDate:     f.Now,
		Subtotal:      order.Amount,
		Tax:           order.Tax,
		Total:         order.Total(),
		Currency:      order.Currency,
		Status:        model.InvoiceStatusPaid,
		BillTo:        model.BillTo{Name: order.CustomerName, Email: order.CustomerEmail},
		PDFURL:        "#",
	}
}

// Link returns an active unused link for order valid for a day.
func (f *Fixtures) Link(order model.Order) model.DownloadLink {
	return model.DownloadLink{
		ID:           "dl_" + f.faker.LetterN(6),
		OrderID:      order.ID,
		ProductName:  order.ProductName,
		Key:          f.faker.LetterN(12),
		ExpiresAt:    f.Now.Add(24 * time.Hour),
		MaxDownloads: 5,
		IsActive:     true,
		CreatedAt:    f.Now.Add(-time.Minute),
	}
}

// AccessLog returns a download event through link.
func (f *Fixtures) AccessLog(link model.DownloadLink) model.AccessLog {
	return model.AccessLog{
		ID:              "log_" + f.faker.LetterN(6),
		LinkID:          link.ID,
		Resource:        link.ProductName + " PDF",
		Timestamp:       f.Now,
		IP:              f.faker.IPv4Address(),
		DeviceSignature: f.faker.UserAgent(),
	}
}
