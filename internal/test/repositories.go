package test

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/samber/lo"

	domainErrors "github.com/tradsolution/storefront/internal/domain/errors"
	"github.com/tradsolution/storefront/internal/domain/model"
	"github.com/tradsolution/storefront/internal/domain/repository"
)

// Repositories is an in-memory repository.Factory. Errors put into Fail
// under "<Repo>.<Method>" keys (e.g. "Links.Update") are returned by that call.
type Repositories struct {
	mu sync.Mutex

	OrderRows   []model.Order
	InvoiceRows []model.Invoice
	LinkRows    []model.DownloadLink
	LogRows     []model.AccessLog
	PayPal      *model.PayPalSettings
	Fail        map[string]error
	Commits     int
	Rollbacks   int
	inTx        bool
	txSnapshots []snapshot
}

type snapshot struct {
	orders   []model.Order
	invoices []model.Invoice
	links    []model.DownloadLink
	logs     []model.AccessLog
	paypal   *model.PayPalSettings
}

var _ repository.Factory = (*Repositories)(nil)

// NewRepositories returns an empty store with sandbox PayPal settings.
func NewRepositories() *Repositories {
	return &Repositories{
		PayPal: &model.PayPalSettings{Enabled: true, Mode: model.PayPalModeSandbox, ClientID: "sb-id", ClientSecret: "sb-secret"},
		Fail:   map[string]error{},
	}
}

func (r *Repositories) fail(op string) error {
	if r.Fail == nil {
		return nil
	}
	return r.Fail[op]
}

func (r *Repositories) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *Repositories) Orders() repository.OrderRepository         { return orderRepo{r} }
func (r *Repositories) Invoices() repository.InvoiceRepository     { return invoiceRepo{r} }
func (r *Repositories) Links() repository.DownloadLinkRepository   { return linkRepo{r} }
func (r *Repositories) AccessLogs() repository.AccessLogRepository { return logRepo{r} }
func (r *Repositories) Settings() repository.SettingsRepository    { return settingsRepo{r} }

// WithinTransaction restores previous state when fn fails.
func (r *Repositories) WithinTransaction(ctx context.Context, fn func(repository.Factory) error) error {
	if err := r.fail("WithinTransaction"); err != nil {
		return err
	}
	if r.inTx {
		return fn(r)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	snap := snapshot{
		orders:   slices.Clone(r.OrderRows),
		invoices: slices.Clone(r.InvoiceRows),
		links:    slices.Clone(r.LinkRows),
		logs:     slices.Clone(r.LogRows),
		paypal:   r.PayPal,
	}
	r.inTx = true
	err := fn(r)
	r.inTx = false
	if err != nil {
		r.OrderRows, r.InvoiceRows, r.LinkRows, r.LogRows, r.PayPal = snap.orders, snap.invoices, snap.links, snap.logs, snap.paypal
		r.Rollbacks++
		return err
	}
	r.Commits++
	return nil
}

type orderRepo struct{ r *Repositories }

func (o orderRepo) List(context.Context) ([]model.Order, error) {
	defer o.r.lock()()
	if err := o.r.fail("Orders.List"); err != nil {
		return nil, err
	}
	return slices.Clone(o.r.OrderRows), nil
}

func (o orderRepo) Get(_ context.Context, id string) (*model.Order, error) {
	defer o.r.lock()()
	if err := o.r.fail("Orders.Get"); err != nil {
		return nil, err
	}
	found, ok := lo.Find(o.r.OrderRows, func(x model.Order) bool { return x.ID == id })
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &found, nil
}

func (o orderRepo) Create(_ context.Context, order model.Order) error {
	defer o.r.lock()()
	if err := o.r.fail("Orders.Create"); err != nil {
		return err
	}
	o.r.OrderRows = append([]model.Order{order}, o.r.OrderRows...)
	return nil
}

func (o orderRepo) Update(_ context.Context, order model.Order) error {
	defer o.r.lock()()
	if err := o.r.fail("Orders.Update"); err != nil {
		return err
	}
	_, idx, ok := lo.FindIndexOf(o.r.OrderRows, func(x model.Order) bool { return x.ID == order.ID })
	if !ok {
		return domainErrors.ErrNotFound
	}
	o.r.OrderRows[idx] = order
	return nil
}

type invoiceRepo struct{ r *Repositories }

func (i invoiceRepo) List(context.Context) ([]model.Invoice, error) {
	defer i.r.lock()()
	if err := i.r.fail("Invoices.List"); err != nil {
		return nil, err
	}
	return slices.Clone(i.r.InvoiceRows), nil
}

func (i invoiceRepo) find(op string, match func(model.Invoice) bool) (*model.Invoice, error) {
	defer i.r.lock()()
	if err := i.r.fail(op); err != nil {
		return nil, err
	}
	found, ok := lo.Find(i.r.InvoiceRows, match)
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &found, nil
}

func (i invoiceRepo) Get(_ context.Context, id string) (*model.Invoice, error) {
	return i.find("Invoices.Get", func(x model.Invoice) bool { return x.ID == id })
}

func (i invoiceRepo) GetByOrderID(_ context.Context, orderID string) (*model.Invoice, error) {
	return i.find("Invoices.GetByOrderID", func(x model.Invoice) bool { return x.OrderID == orderID })
}

func (i invoiceRepo) Create(_ context.Context, invoice model.Invoice) error {
	defer i.r.lock()()
	if err := i.r.fail("Invoices.Create"); err != nil {
		return err
	}
	if lo.ContainsBy(i.r.InvoiceRows, func(x model.Invoice) bool {
		return x.ID == invoice.ID || x.InvoiceNumber == invoice.InvoiceNumber
	}) {
		return domainErrors.ErrAlreadyExists
	}
	i.r.InvoiceRows = append([]model.Invoice{invoice}, i.r.InvoiceRows...)
	return nil
}

func (i invoiceRepo) Save(_ context.Context, invoice model.Invoice) error {
	defer i.r.lock()()
	if err := i.r.fail("Invoices.Save"); err != nil {
		return err
	}
	if lo.ContainsBy(i.r.InvoiceRows, func(x model.Invoice) bool {
		return x.InvoiceNumber == invoice.InvoiceNumber && x.ID != invoice.ID
	}) {
		return domainErrors.ErrAlreadyExists
	}
	_, idx, ok := lo.FindIndexOf(i.r.InvoiceRows, func(x model.Invoice) bool { return x.ID == invoice.ID })
	if ok {
		i.r.InvoiceRows[idx] = invoice
	} else {
		i.r.InvoiceRows = append(i.r.InvoiceRows, invoice)
	}
	return nil
}

type linkRepo struct{ r *Repositories }

func (l linkRepo) List(context.Context) ([]model.DownloadLink, error) {
	defer l.r.lock()()
	if err := l.r.fail("Links.List"); err != nil {
		return nil, err
	}
	return slices.Clone(l.r.LinkRows), nil
}

func (l linkRepo) find(op string, match func(model.DownloadLink) bool) (*model.DownloadLink, error) {
	defer l.r.lock()()
	if err := l.r.fail(op); err != nil {
		return nil, err
	}
	found, ok := lo.Find(l.r.LinkRows, match)
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &found, nil
}

func (l linkRepo) Get(_ context.Context, id string) (*model.DownloadLink, error) {
	return l.find("Links.Get", func(x model.DownloadLink) bool { return x.ID == id })
}

func (l linkRepo) GetByKey(_ context.Context, key string) (*model.DownloadLink, error) {
	return l.find("Links.GetByKey", func(x model.DownloadLink) bool { return x.Key == key })
}

func (l linkRepo) FirstByOrderID(_ context.Context, orderID string) (*model.DownloadLink, error) {
	return l.find("Links.FirstByOrderID", func(x model.DownloadLink) bool { return x.OrderID == orderID })
}

func (l linkRepo) Create(_ context.Context, link model.DownloadLink) error {
	defer l.r.lock()()
	if err := l.r.fail("Links.Create"); err != nil {
		return err
	}
	l.r.LinkRows = append([]model.DownloadLink{link}, l.r.LinkRows...)
	return nil
}

func (l linkRepo) Append(_ context.Context, link model.DownloadLink) error {
	defer l.r.lock()()
	if err := l.r.fail("Links.Append"); err != nil {
		return err
	}
	l.r.LinkRows = append(l.r.LinkRows, link)
	return nil
}

func (l linkRepo) Update(_ context.Context, link model.DownloadLink) error {
	defer l.r.lock()()
	if err := l.r.fail("Links.Update"); err != nil {
		return err
	}
	_, idx, ok := lo.FindIndexOf(l.r.LinkRows, func(x model.DownloadLink) bool { return x.ID == link.ID })
	if !ok {
		return domainErrors.ErrNotFound
	}
	l.r.LinkRows[idx] = link
	return nil
}

func (l linkRepo) ListStale(_ context.Context, now time.Time, limit int) ([]model.DownloadLink, error) {
	defer l.r.lock()()
	if err := l.r.fail("Links.ListStale"); err != nil {
		return nil, err
	}
	stale := lo.Filter(l.r.LinkRows, func(x model.DownloadLink, _ int) bool {
		return x.IsActive && (x.Expired(now) || x.Exhausted())
	})
	if limit > 0 && len(stale) > limit {
		stale = stale[:limit]
	}
	return stale, nil
}

type logRepo struct{ r *Repositories }

func (l logRepo) List(context.Context) ([]model.AccessLog, error) {
	defer l.r.lock()()
	if err := l.r.fail("AccessLogs.List"); err != nil {
		return nil, err
	}
	return slices.Clone(l.r.LogRows), nil
}

func (l logRepo) Append(_ context.Context, log model.AccessLog) error {
	defer l.r.lock()()
	if err := l.r.fail("AccessLogs.Append"); err != nil {
		return err
	}
	l.r.LogRows = append(l.r.LogRows, log)
	return nil
}

func (l logRepo) FirstByLinkID(_ context.Context, linkID string) (*model.AccessLog, error) {
	defer l.r.lock()()
	if err := l.r.fail("AccessLogs.FirstByLinkID"); err != nil {
		return nil, err
	}
	found, ok := lo.Find(l.r.LogRows, func(x model.AccessLog) bool { return x.LinkID == linkID })
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &found, nil
}

type settingsRepo struct{ r *Repositories }

func (s settingsRepo) PayPal(context.Context) (*model.PayPalSettings, error) {
	defer s.r.lock()()
	if err := s.r.fail("Settings.PayPal"); err != nil {
		return nil, err
	}
	if s.r.PayPal == nil {
		return nil, domainErrors.ErrNotFound
	}
	settings := *s.r.PayPal
	return &settings, nil
}

func (s settingsRepo) SavePayPal(_ context.Context, settings model.PayPalSettings) error {
	defer s.r.lock()()
	if err := s.r.fail("Settings.SavePayPal"); err != nil {
		return err
	}
	s.r.PayPal = &settings
	return nil
}
