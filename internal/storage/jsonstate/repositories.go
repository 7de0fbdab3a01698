package jsonstate

import (
	"context"
	"time"

	"github.com/samber/lo"

	domainErrors "github.com/tradsolution/storefront/internal/domain/errors"
	"github.com/tradsolution/storefront/internal/domain/model"
)

// --- OrderRepository implementation ---

type orderRepository struct {
	s *session
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	var result []model.Order
	err := r.s.read(ctx, func(st *state) error {
		result = append([]model.Order(nil), st.orders...)
		return nil
	})
	return result, err
}

func (r *orderRepository) Get(ctx context.Context, id string) (*model.Order, error) {
	var result *model.Order
	err := r.s.read(ctx, func(st *state) error {
		order, ok := lo.Find(st.orders, func(o model.Order) bool { return o.ID == id })
		if !ok {
			return domainErrors.ErrNotFound
		}
		result = &order
		return nil
	})
	return result, err
}

func (r *orderRepository) Create(ctx context.Context, order model.Order) error {
	return r.s.write(ctx, func(st *state) error {
		if lo.ContainsBy(st.orders, func(o model.Order) bool { return o.ID == order.ID }) {
			return domainErrors.ErrAlreadyExists
		}
		st.orders = append([]model.Order{order}, st.orders...)
		return nil
	})
}

func (r *orderRepository) Update(ctx context.Context, order model.Order) error {
	return r.s.write(ctx, func(st *state) error {
		_, idx, ok := lo.FindIndexOf(st.orders, func(o model.Order) bool { return o.ID == order.ID })
		if !ok {
			return domainErrors.ErrNotFound
		}
		st.orders[idx] = order
		return nil
	})
}

// --- InvoiceRepository implementation ---

type invoiceRepository struct {
	s *session
}

func (r *invoiceRepository) List(ctx context.Context) ([]model.Invoice, error) {
	var result []model.Invoice
	err := r.s.read(ctx, func(st *state) error {
		result = append([]model.Invoice(nil), st.invoices...)
		return nil
	})
	return result, err
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*model.Invoice, error) {
	return r.find(ctx, func(i model.Invoice) bool { return i.ID == id })
}

func (r *invoiceRepository) GetByOrderID(ctx context.Context, orderID string) (*model.Invoice, error) {
	return r.find(ctx, func(i model.Invoice) bool { return i.OrderID == orderID })
}

func (r *invoiceRepository) find(ctx context.Context, match func(model.Invoice) bool) (*model.Invoice, error) {
	var result *model.Invoice
	err := r.s.read(ctx, func(st *state) error {
		invoice, ok := lo.Find(st.invoices, match)
		if !ok {
			return domainErrors.ErrNotFound
		}
		result = &invoice
		return nil
	})
	return result, err
}

func (r *invoiceRepository) Create(ctx context.Context, invoice model.Invoice) error {
	invoice.AuditTrail = nil
	return r.s.write(ctx, func(st *state) error {
		if lo.ContainsBy(st.invoices, func(i model.Invoice) bool {
			return i.ID == invoice.ID || i.InvoiceNumber == invoice.InvoiceNumber
		}) {
			return domainErrors.ErrAlreadyExists
		}
		st.invoices = append([]model.Invoice{invoice}, st.invoices...)
		return nil
	})
}

func (r *invoiceRepository) Save(ctx context.Context, invoice model.Invoice) error {
	invoice.AuditTrail = nil
	return r.s.write(ctx, func(st *state) error {
		if lo.ContainsBy(st.invoices, func(i model.Invoice) bool {
			return i.InvoiceNumber == invoice.InvoiceNumber && i.ID != invoice.ID
		}) {
			return domainErrors.ErrAlreadyExists
		}

		_, idx, ok := lo.FindIndexOf(st.invoices, func(i model.Invoice) bool { return i.ID == invoice.ID })
		if ok {
			st.invoices[idx] = invoice
		} else {
			st.invoices = append(st.invoices, invoice)
		}
		return nil
	})
}

// --- DownloadLinkRepository implementation ---

type linkRepository struct {
	s *session
}

func (r *linkRepository) List(ctx context.Context) ([]model.DownloadLink, error) {
	var result []model.DownloadLink
	err := r.s.read(ctx, func(st *state) error {
		result = append([]model.DownloadLink(nil), st.links...)
		return nil
	})
	return result, err
}

func (r *linkRepository) Get(ctx context.Context, id string) (*model.DownloadLink, error) {
	return r.find(ctx, func(l model.DownloadLink) bool { return l.ID == id })
}

func (r *linkRepository) GetByKey(ctx context.Context, key string) (*model.DownloadLink, error) {
	return r.find(ctx, func(l model.DownloadLink) bool { return l.Key == key })
}

func (r *linkRepository) FirstByOrderID(ctx context.Context, orderID string) (*model.DownloadLink, error) {
	return r.find(ctx, func(l model.DownloadLink) bool { return l.OrderID == orderID })
}

func (r *linkRepository) find(ctx context.Context, match func(model.DownloadLink) bool) (*model.DownloadLink, error) {
	var result *model.DownloadLink
	err := r.s.read(ctx, func(st *state) error {
		link, ok := lo.Find(st.links, match)
		if !ok {
			return domainErrors.ErrNotFound
		}
		result = &link
		return nil
	})
	return result, err
}

func (r *linkRepository) Create(ctx context.Context, link model.DownloadLink) error {
	return r.insert(ctx, link, false)
}

func (r *linkRepository) Append(ctx context.Context, link model.DownloadLink) error {
	return r.insert(ctx, link, true)
}

func (r *linkRepository) insert(ctx context.Context, link model.DownloadLink, last bool) error {
	return r.s.write(ctx, func(st *state) error {
		if lo.ContainsBy(st.links, func(l model.DownloadLink) bool { return l.ID == link.ID || l.Key == link.Key }) {
			return domainErrors.ErrAlreadyExists
		}
		if last {
			st.links = append(st.links, link)
		} else {
			st.links = append([]model.DownloadLink{link}, st.links...)
		}
		return nil
	})
}

func (r *linkRepository) Update(ctx context.Context, link model.DownloadLink) error {
	return r.s.write(ctx, func(st *state) error {
		_, idx, ok := lo.FindIndexOf(st.links, func(l model.DownloadLink) bool { return l.ID == link.ID })
		if !ok {
			return domainErrors.ErrNotFound
		}
		st.links[idx] = link
		return nil
	})
}

func (r *linkRepository) ListStale(ctx context.Context, now time.Time, limit int) ([]model.DownloadLink, error) {
	var result []model.DownloadLink
	err := r.s.read(ctx, func(st *state) error {
		stale := lo.Filter(st.links, func(l model.DownloadLink, _ int) bool {
			return l.IsActive && (l.Expired(now) || l.Exhausted())
		})
		if limit > 0 && len(stale) > limit {
			stale = stale[:limit]
		}
		result = stale
		return nil
	})
	return result, err
}

// --- AccessLogRepository implementation ---

type accessLogRepository struct {
	s *session
}

func (r *accessLogRepository) List(ctx context.Context) ([]model.AccessLog, error) {
	var result []model.AccessLog
	err := r.s.read(ctx, func(st *state) error {
		result = append([]model.AccessLog(nil), st.logs...)
		return nil
	})
	return result, err
}

func (r *accessLogRepository) Append(ctx context.Context, log model.AccessLog) error {
	return r.s.write(ctx, func(st *state) error {
		st.logs = append(st.logs, log)
		return nil
	})
}

func (r *accessLogRepository) FirstByLinkID(ctx context.Context, linkID string) (*model.AccessLog, error) {
	var result *model.AccessLog
	err := r.s.read(ctx, func(st *state) error {
		log, ok := lo.Find(st.logs, func(l model.AccessLog) bool { return l.LinkID == linkID })
		if !ok {
			return domainErrors.ErrNotFound
		}
		result = &log
		return nil
	})
	return result, err
}

// --- SettingsRepository implementation ---

type settingsRepository struct {
	s *session
}

func (r *settingsRepository) PayPal(ctx context.Context) (*model.PayPalSettings, error) {
	var result model.PayPalSettings
	err := r.s.read(ctx, func(st *state) error {
		result = st.settings
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *settingsRepository) SavePayPal(ctx context.Context, settings model.PayPalSettings) error {
	return r.s.write(ctx, func(st *state) error {
		st.settings = settings
		return nil
	})
}
