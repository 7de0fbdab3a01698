package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/tradsolution/storefront/internal/domain/errors"
	"github.com/tradsolution/storefront/internal/domain/model"
	"github.com/tradsolution/storefront/internal/test"
)

func newInvoiceUseCase() (*InvoiceUseCase, *test.Repositories, *test.RendererStub, *test.RecorderStub) {
	repos := test.NewRepositories()
	renderer := &test.RendererStub{}
	recorder := test.NewRecorderStub()
	uc := NewInvoiceUseCase(repos, renderer, recorder)
	uc.now = clock
	return uc, repos, renderer, recorder
}

func TestInvoiceForOrderReturnsExisting(t *testing.T) {
	uc, repos, _, _ := newInvoiceUseCase()
	fixtures := test.NewFixtures(10)
	order := fixtures.Order()
	invoice := fixtures.Invoice(order)
	repos.OrderRows = []model.Order{order}
	repos.InvoiceRows = []model.Invoice{invoice}

	got, err := uc.ForOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, invoice, *got)
}

func TestInvoiceForOrderDraftsFromOrder(t *testing.T) {
	uc, repos, _, _ := newInvoiceUseCase()
	order := test.NewFixtures(11).Order()
	repos.OrderRows = []model.Order{order}

	got, err := uc.ForOrder(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, "inv_draft_1714564800000", got.ID)
	assert.Regexp(t, `^TS-2024-\d{4}$`, got.InvoiceNumber)
	assert.Equal(t, order.CreatedAt, got.IssueDate)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, model.InvoiceStatusPaid, got.Status)
	assert.Equal(t, model.BillTo{
		Name:    order.CustomerName,
		Email:   order.CustomerEmail,
		Address: order.BillingAddress,
		Country: order.BillingCountry,
	}, got.BillTo)
	assert.Equal(t, "#", got.PDFURL)
	assert.Empty(t, repos.InvoiceRows, "draft must not be stored")

	_, err = uc.ForOrder(context.Background(), "ord_missing")
	require.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestInvoiceSave(t *testing.T) {
	uc, repos, _, _ := newInvoiceUseCase()
	fixtures := test.NewFixtures(12)
	order := fixtures.Order()
	existing := fixtures.Invoice(order)
	existing.InvoiceNumber = "TS-2024-0001"
	repos.InvoiceRows = []model.Invoice{existing}

	draft := fixtures.Invoice(order)
	draft.InvoiceNumber = "TS-2024-0002"
	draft.Status = ""
	draft.Total = decimal.NewFromInt(1)
	draft.AuditTrail = &model.InvoiceAuditTrail{DeliveryStatus: model.DeliveryStatusDownloaded}

	saved, err := uc.Save(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusDraft, saved.Status)
	assert.True(t, saved.Total.Equal(decimal.NewFromInt(300)))
	assert.Nil(t, saved.AuditTrail)
	require.Len(t, repos.InvoiceRows, 2)
	assert.Equal(t, draft.ID, repos.InvoiceRows[1].ID, "new invoices are appended on save")

	existing.Tax = decimal.NewFromInt(60)
	existing.Status = model.InvoiceStatusVoided
	updated, err := uc.Save(context.Background(), existing)
	require.NoError(t, err)
	assert.True(t, updated.Total.Equal(decimal.NewFromInt(310)))
	assert.Equal(t, model.InvoiceStatusVoided, repos.InvoiceRows[0].Status)
}

func TestInvoiceSaveRejectsDuplicateNumber(t *testing.T) {
	uc, repos, _, _ := newInvoiceUseCase()
	fixtures := test.NewFixtures(13)
	order := fixtures.Order()
	existing := fixtures.Invoice(order)
	repos.InvoiceRows = []model.Invoice{existing}

	clash := fixtures.Invoice(order)
	clash.InvoiceNumber = " " + existing.InvoiceNumber + " "
	_, err := uc.Save(context.Background(), clash)
	require.ErrorIs(t, err, domainErrors.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "invoice number already exists")
	assert.Len(t, repos.InvoiceRows, 1)
}

func TestInvoiceSaveValidation(t *testing.T) {
	valid := test.NewFixtures(14).Invoice(test.NewFixtures(14).Order())
	cases := map[string]func(*model.Invoice){
		"missing id":      func(i *model.Invoice) { i.ID = "" },
		"missing number":  func(i *model.Invoice) { i.InvoiceNumber = "  " },
		"missing name":    func(i *model.Invoice) { i.BillTo.Name = "" },
		"missing email":   func(i *model.Invoice) { i.BillTo.Email = " " },
		"unknown status":  func(i *model.Invoice) { i.Status = "LOST" },
		"negative amount": func(i *model.Invoice) { i.Tax = decimal.NewFromInt(-1) },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			uc, repos, _, _ := newInvoiceUseCase()
			invoice := valid
			mutate(&invoice)
			_, err := uc.Save(context.Background(), invoice)
			require.ErrorIs(t, err, domainErrors.ErrInvalidInput)
			assert.Empty(t, repos.InvoiceRows)
		})
	}
}

func TestInvoiceGenerate(t *testing.T) {
	uc, repos, _, _ := newInvoiceUseCase()
	fixtures := test.NewFixtures(15)
	order := fixtures.Order()
	older := fixtures.Invoice(fixtures.Order())
	repos.OrderRows = []model.Order{order}
	repos.InvoiceRows = []model.Invoice{older}

	got, err := uc.Generate(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Regexp(t, `^inv_[a-z0-9]{9}$`, got.ID)
	assert.Equal(t, fixedNow, got.IssueDate)
	assert.Equal(t, model.InvoiceStatusPaid, got.Status)
	assert.Equal(t, model.BillTo{Name: order.CustomerName, Email: order.CustomerEmail}, got.BillTo)
	assert.True(t, got.Total.Equal(order.Total()))
	require.Len(t, repos.InvoiceRows, 2)
	assert.Equal(t, got.ID, repos.InvoiceRows[0].ID, "generated invoices go first")

	_, err = uc.Generate(context.Background(), "ord_missing")
	require.ErrorIs(t, err, domainErrors.ErrNotFound)
}

func TestInvoiceGenerateRetriesTakenNumber(t *testing.T) {
	uc, repos, _, _ := newInvoiceUseCase()
	fixtures := test.NewFixtures(16)
	order := fixtures.Order()
	taken := fixtures.Invoice(fixtures.Order())
	taken.InvoiceNumber = "TS-2024-1111"
	repos.OrderRows = []model.Order{order}
	repos.InvoiceRows = []model.Invoice{taken}

	numbers := []string{"TS-2024-1111", "TS-2024-1111", "TS-2024-2222"}
	var calls int
	uc.number = func(time.Time) string {
		n := numbers[calls]
		calls++
		return n
	}

	got, err := uc.Generate(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "TS-2024-2222", got.InvoiceNumber)
	assert.Equal(t, 3, calls)
	require.Len(t, repos.InvoiceRows, 2)
	assert.Equal(t, got.ID, repos.InvoiceRows[0].ID)
	assert.Equal(t, 1, repos.Commits)
}

func TestInvoiceGenerateGivesUpOnTakenNumbers(t *testing.T) {
	uc, repos, _, _ := newInvoiceUseCase()
	fixtures := test.NewFixtures(17)
	order := fixtures.Order()
	taken := fixtures.Invoice(fixtures.Order())
	taken.InvoiceNumber = "TS-2024-1111"
	repos.OrderRows = []model.Order{order}
	repos.InvoiceRows = []model.Invoice{taken}

	var calls int
	uc.number = func(time.Time) string {
		calls++
		return "TS-2024-1111"
	}

	_, err := uc.Generate(context.Background(), order.ID)
	require.ErrorIs(t, err, domainErrors.ErrAlreadyExists)
	assert.Equal(t, invoiceNumberAttempts, calls)
	assert.Len(t, repos.InvoiceRows, 1)
}

func TestInvoiceAuditPending(t *testing.T) {
	uc, repos, _, _ := newInvoiceUseCase()
	fixtures := test.NewFixtures(16)
	order := fixtures.Order()
	invoice := fixtures.Invoice(order)
	repos.InvoiceRows = []model.Invoice{invoice}
	repos.PayPal = &model.PayPalSettings{Mode: model.PayPalModeLive}

	got, err := uc.Audit(context.Background(), invoice.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AuditTrail)
	assert.Equal(t, model.InvoiceAuditTrail{DeliveryStatus: model.DeliveryStatusPending}, *got.AuditTrail)
}

func TestInvoiceAuditDownloaded(t *testing.T) {
	uc, repos, _, _ := newInvoiceUseCase()
	fixtures := test.NewFixtures(17)
	order := fixtures.Order()
	invoice := fixtures.Invoice(order)
	newer := fixtures.Link(order)
	first := fixtures.Link(order)
	first.CreatedAt = fixedNow.Add(-time.Hour)
	early := fixtures.AccessLog(first)
	late := fixtures.AccessLog(first)
	late.Timestamp = fixedNow.Add(time.Minute)

	repos.InvoiceRows = []model.Invoice{invoice}
	repos.LinkRows = []model.DownloadLink{first, newer}
	repos.LogRows = []model.AccessLog{early, late}

	got, err := uc.Audit(context.Background(), invoice.ID)
	require.NoError(t, err)
	trail := got.AuditTrail
	require.NotNil(t, trail)
	assert.Equal(t, model.DeliveryStatusDownloaded, trail.DeliveryStatus)
	assert.Equal(t, first.ID, trail.LinkID)
	assert.Equal(t, first.CreatedAt, *trail.SentAt)
	assert.Equal(t, early.IP, trail.AccessIP)
	assert.Equal(t, early.Timestamp, *trail.AccessedAt)
	assert.Equal(t, early.DeviceSignature, trail.DeviceSignature)
	assert.True(t, trail.Sandbox)
	assert.Nil(t, repos.InvoiceRows[0].AuditTrail, "audit trail is never stored")
}

func TestInvoiceAuditLinkWithoutAccess(t *testing.T) {
	uc, repos, _, _ := newInvoiceUseCase()
	fixtures := test.NewFixtures(18)
	order := fixtures.Order()
	invoice := fixtures.Invoice(order)
	link := fixtures.Link(order)
	repos.InvoiceRows = []model.Invoice{invoice}
	repos.LinkRows = []model.DownloadLink{link}

	got, err := uc.Audit(context.Background(), invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryStatusPending, got.AuditTrail.DeliveryStatus)
	assert.Equal(t, link.ID, got.AuditTrail.LinkID)
	assert.Nil(t, got.AuditTrail.AccessedAt)
}

func TestInvoiceAuditErrors(t *testing.T) {
	uc, repos, _, _ := newInvoiceUseCase()
	_, err := uc.Audit(context.Background(), "inv_missing")
	require.ErrorIs(t, err, domainErrors.ErrNotFound)

	fixtures := test.NewFixtures(19)
	invoice := fixtures.Invoice(fixtures.Order())
	repos.InvoiceRows = []model.Invoice{invoice}
	repos.Fail["Links.FirstByOrderID"] = errors.New("boom")
	_, err = uc.Audit(context.Background(), invoice.ID)
	require.EqualError(t, err, "boom")
}

func TestInvoiceRenderPDF(t *testing.T) {
	uc, repos, renderer, recorder := newInvoiceUseCase()
	fixtures := test.NewFixtures(20)
	order := fixtures.Order()
	invoice := fixtures.Invoice(order)
	repos.OrderRows = []model.Order{order}
	repos.InvoiceRows = []model.Invoice{invoice}

	doc, err := uc.RenderPDF(context.Background(), invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Invoice_"+invoice.InvoiceNumber+".pdf", doc.Filename)
	assert.Equal(t, []byte("%PDF-stub"), doc.Content)
	assert.Equal(t, order.ProductName, renderer.Description)
	assert.NotNil(t, renderer.Invoice.AuditTrail)
	assert.Equal(t, 1, recorder.Rendered)
}

func TestInvoiceRenderPDFWithoutOrder(t *testing.T) {
	uc, repos, renderer, recorder := newInvoiceUseCase()
	fixtures := test.NewFixtures(21)
	invoice := fixtures.Invoice(fixtures.Order())
	repos.InvoiceRows = []model.Invoice{invoice}

	_, err := uc.RenderPDF(context.Background(), invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Premium Trading Manual", renderer.Description)

	renderer.Err = errors.New("font missing")
	_, err = uc.RenderPDF(context.Background(), invoice.ID)
	require.ErrorContains(t, err, "font missing")
	assert.Equal(t, 1, recorder.Rendered)
}

func TestInvoiceList(t *testing.T) {
	uc, repos, _, _ := newInvoiceUseCase()
	fixtures := test.NewFixtures(22)
	invoices := []model.Invoice{fixtures.Invoice(fixtures.Order()), fixtures.Invoice(fixtures.Order())}
	repos.InvoiceRows = invoices

	got, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, invoices, got)
}
