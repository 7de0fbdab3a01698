package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/tradsolution/storefront/internal/domain/errors"
	"github.com/tradsolution/storefront/internal/domain/model"
)

type scanner interface {
	Scan(dest ...any) error
}

// parseMoney converts NUMERIC columns read as text.
func parseMoney(raw ...string) ([]decimal.Decimal, error) {
	result := make([]decimal.Decimal, len(raw))
	for i, v := range raw {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("parse amount %q: %w", v, err)
		}
		result[i] = d
	}
	return result, nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domainErrors.ErrNotFound
	}
	return err
}

// --- OrderRepository implementation ---

type orderRepository struct {
	q querier
}

const orderColumns = `id, status, product_id, product_name, customer_name, customer_email,
    amount::text, currency, tax::text, created_at, notes, payment_method, transaction_id,
    billing_address, billing_country`

func scanOrder(row scanner) (model.Order, error) {
	var (
		o           model.Order
		amount, tax string
	)
	if err := row.Scan(&o.ID, &o.Status, &o.ProductID, &o.ProductName, &o.CustomerName, &o.CustomerEmail,
		&amount, &o.Currency, &tax, &o.CreatedAt, &o.Notes, &o.PaymentMethod, &o.TransactionID,
		&o.BillingAddress, &o.BillingCountry); err != nil {
		return o, err
	}
	money, err := parseMoney(amount, tax)
	if err != nil {
		return o, err
	}
	o.Amount, o.Tax = money[0], money[1]
	return o, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	rows, err := r.q.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Get(ctx context.Context, id string) (*model.Order, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, o model.Order) error {
	const query = `INSERT INTO orders (id, position, status, product_id, product_name, customer_name,
        customer_email, amount, currency, tax, created_at, notes, payment_method, transaction_id,
        billing_address, billing_country)
        VALUES ($1, (SELECT COALESCE(MIN(position), 0) - 1 FROM orders), $2, $3, $4, $5, $6, $7, $8, $9, $10,
        $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query, o.ID, o.Status, o.ProductID, o.ProductName, o.CustomerName,
		o.CustomerEmail, o.Amount.String(), o.Currency, o.Tax.String(), o.CreatedAt, o.Notes,
		o.PaymentMethod, o.TransactionID, o.BillingAddress, o.BillingCountry)
	if isUniqueViolation(err) {
		return domainErrors.ErrAlreadyExists
	}
	return err
}

func (r *orderRepository) Update(ctx context.Context, o model.Order) error {
	const query = `UPDATE orders SET status=$2, customer_name=$3, customer_email=$4, notes=$5,
        payment_method=$6, transaction_id=$7, billing_address=$8, billing_country=$9
        WHERE id=$1`
	tag, err := r.q.Exec(ctx, query, o.ID, o.Status, o.CustomerName, o.CustomerEmail, o.Notes,
		o.PaymentMethod, o.TransactionID, o.BillingAddress, o.BillingCountry)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- InvoiceRepository implementation ---

type invoiceRepository struct {
	q querier
}

const invoiceColumns = `id, order_id, invoice_number, issue_date, subtotal::text, tax::text, total::text,
    currency, status, bill_to_name, bill_to_email, bill_to_address, bill_to_country, bill_to_vat_id, pdf_url`

func scanInvoice(row scanner) (model.Invoice, error) {
	var (
		inv                  model.Invoice
		subtotal, tax, total string
	)
	if err := row.Scan(&inv.ID, &inv.OrderID, &inv.InvoiceNumber, &inv.IssueDate, &subtotal, &tax, &total,
		&inv.Currency, &inv.Status, &inv.BillTo.Name, &inv.BillTo.Email, &inv.BillTo.Address,
		&inv.BillTo.Country, &inv.BillTo.VATID, &inv.PDFURL); err != nil {
		return inv, err
	}
	money, err := parseMoney(subtotal, tax, total)
	if err != nil {
		return inv, err
	}
	inv.Subtotal, inv.Tax, inv.Total = money[0], money[1], money[2]
	return inv, nil
}

func (r *invoiceRepository) List(ctx context.Context) ([]model.Invoice, error) {
	rows, err := r.q.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*model.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id=$1`, id))
	if err != nil {
		return nil, notFound(err)
	}
	return &inv, nil
}

func (r *invoiceRepository) GetByOrderID(ctx context.Context, orderID string) (*model.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE order_id=$1 ORDER BY position LIMIT 1`, orderID))
	if err != nil {
		return nil, notFound(err)
	}
	return &inv, nil
}

func (r *invoiceRepository) Create(ctx context.Context, inv model.Invoice) error {
	const query = `INSERT INTO invoices (id, position, order_id, invoice_number, issue_date, subtotal, tax,
        total, currency, status, bill_to_name, bill_to_email, bill_to_address, bill_to_country,
        bill_to_vat_id, pdf_url)
        VALUES ($1, (SELECT COALESCE(MIN(position), 0) - 1 FROM invoices), $2, $3, $4, $5, $6, $7, $8, $9,
        $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query, inv.ID, inv.OrderID, inv.InvoiceNumber, inv.IssueDate,
		inv.Subtotal.String(), inv.Tax.String(), inv.Total.String(), inv.Currency, inv.Status,
		inv.BillTo.Name, inv.BillTo.Email, inv.BillTo.Address, inv.BillTo.Country, inv.BillTo.VATID, inv.PDFURL)
	if isUniqueViolation(err) {
		return domainErrors.ErrAlreadyExists
	}
	return err
}

func (r *invoiceRepository) Save(ctx context.Context, inv model.Invoice) error {
	const query = `INSERT INTO invoices (id, position, order_id, invoice_number, issue_date, subtotal, tax,
        total, currency, status, bill_to_name, bill_to_email, bill_to_address, bill_to_country,
        bill_to_vat_id, pdf_url)
        VALUES ($1, (SELECT COALESCE(MAX(position), 0) + 1 FROM invoices), $2, $3, $4, $5, $6, $7, $8, $9,
        $10, $11, $12, $13, $14, $15)
        ON CONFLICT (id) DO UPDATE SET order_id=EXCLUDED.order_id, invoice_number=EXCLUDED.invoice_number,
        issue_date=EXCLUDED.issue_date, subtotal=EXCLUDED.subtotal, tax=EXCLUDED.tax, total=EXCLUDED.total,
        currency=EXCLUDED.currency, status=EXCLUDED.status, bill_to_name=EXCLUDED.bill_to_name,
        bill_to_email=EXCLUDED.bill_to_email, bill_to_address=EXCLUDED.bill_to_address,
        bill_to_country=EXCLUDED.bill_to_country, bill_to_vat_id=EXCLUDED.bill_to_vat_id,
        pdf_url=EXCLUDED.pdf_url`
	_, err := r.q.Exec(ctx, query, inv.ID, inv.OrderID, inv.InvoiceNumber, inv.IssueDate,
		inv.Subtotal.String(), inv.Tax.String(), inv.Total.String(), inv.Currency, inv.Status,
		inv.BillTo.Name, inv.BillTo.Email, inv.BillTo.Address, inv.BillTo.Country, inv.BillTo.VATID, inv.PDFURL)
	if isUniqueViolation(err) {
		return domainErrors.ErrAlreadyExists
	}
	return err
}

// --- DownloadLinkRepository implementation ---

type linkRepository struct {
	q querier
}

const linkColumns = `id, order_id, product_name, key, expires_at, max_downloads, download_count, is_active, created_at`

func scanLink(row scanner) (model.DownloadLink, error) {
	var l model.DownloadLink
	err := row.Scan(&l.ID, &l.OrderID, &l.ProductName, &l.Key, &l.ExpiresAt, &l.MaxDownloads,
		&l.DownloadCount, &l.IsActive, &l.CreatedAt)
	return l, err
}

func (r *linkRepository) list(ctx context.Context, query string, args ...any) ([]model.DownloadLink, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.DownloadLink
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *linkRepository) List(ctx context.Context) ([]model.DownloadLink, error) {
	return r.list(ctx, `SELECT `+linkColumns+` FROM download_links ORDER BY position`)
}

func (r *linkRepository) get(ctx context.Context, where string, arg any) (*model.DownloadLink, error) {
	l, err := scanLink(r.q.QueryRow(ctx, `SELECT `+linkColumns+` FROM download_links WHERE `+where+` ORDER BY position LIMIT 1`, arg))
	if err != nil {
		return nil, notFound(err)
	}
	return &l, nil
}

func (r *linkRepository) Get(ctx context.Context, id string) (*model.DownloadLink, error) {
	return r.get(ctx, "id=$1", id)
}

func (r *linkRepository) GetByKey(ctx context.Context, key string) (*model.DownloadLink, error) {
	return r.get(ctx, "key=$1", key)
}

func (r *linkRepository) FirstByOrderID(ctx context.Context, orderID string) (*model.DownloadLink, error) {
	return r.get(ctx, "order_id=$1", orderID)
}

func (r *linkRepository) Create(ctx context.Context, l model.DownloadLink) error {
	return r.insert(ctx, `(SELECT COALESCE(MIN(position), 0) - 1 FROM download_links)`, l)
}

func (r *linkRepository) Append(ctx context.Context, l model.DownloadLink) error {
	return r.insert(ctx, `(SELECT COALESCE(MAX(position), 0) + 1 FROM download_links)`, l)
}

func (r *linkRepository) insert(ctx context.Context, position string, l model.DownloadLink) error {
	query := `INSERT INTO download_links (id, position, order_id, product_name, key, expires_at,
        max_downloads, download_count, is_active, created_at)
        VALUES ($1, ` + position + `, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query, l.ID, l.OrderID, l.ProductName, l.Key, l.ExpiresAt, l.MaxDownloads,
		l.DownloadCount, l.IsActive, l.CreatedAt)
	if isUniqueViolation(err) {
		return domainErrors.ErrAlreadyExists
	}
	return err
}

func (r *linkRepository) Update(ctx context.Context, l model.DownloadLink) error {
	const query = `UPDATE download_links SET expires_at=$2, max_downloads=$3, download_count=$4, is_active=$5
        WHERE id=$1`
	tag, err := r.q.Exec(ctx, query, l.ID, l.ExpiresAt, l.MaxDownloads, l.DownloadCount, l.IsActive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *linkRepository) ListStale(ctx context.Context, now time.Time, limit int) ([]model.DownloadLink, error) {
	const query = `SELECT ` + linkColumns + ` FROM download_links
        WHERE is_active AND (expires_at <= $1 OR download_count >= max_downloads)
        ORDER BY position
        LIMIT $2`
	if limit <= 0 {
		// LIMIT NULL means no limit
		return r.list(ctx, query, now, nil)
	}
	return r.list(ctx, query, now, limit)
}

// --- AccessLogRepository implementation ---

type accessLogRepository struct {
	q querier
}

const accessLogColumns = `id, link_id, resource, accessed_at, ip, device_sig`

func scanAccessLog(row scanner) (model.AccessLog, error) {
	var l model.AccessLog
	err := row.Scan(&l.ID, &l.LinkID, &l.Resource, &l.Timestamp, &l.IP, &l.DeviceSignature)
	return l, err
}

func (r *accessLogRepository) List(ctx context.Context) ([]model.AccessLog, error) {
	rows, err := r.q.Query(ctx, `SELECT `+accessLogColumns+` FROM access_logs ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.AccessLog
	for rows.Next() {
		l, err := scanAccessLog(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *accessLogRepository) Append(ctx context.Context, l model.AccessLog) error {
	const query = `INSERT INTO access_logs (id, link_id, resource, accessed_at, ip, device_sig)
        VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, l.ID, l.LinkID, l.Resource, l.Timestamp, l.IP, l.DeviceSignature)
	if isUniqueViolation(err) {
		return domainErrors.ErrAlreadyExists
	}
	return err
}

func (r *accessLogRepository) FirstByLinkID(ctx context.Context, linkID string) (*model.AccessLog, error) {
	l, err := scanAccessLog(r.q.QueryRow(ctx,
		`SELECT `+accessLogColumns+` FROM access_logs WHERE link_id=$1 ORDER BY position LIMIT 1`, linkID))
	if err != nil {
		return nil, notFound(err)
	}
	return &l, nil
}

// --- SettingsRepository implementation ---

type settingsRepository struct {
	q querier
}

func (r *settingsRepository) PayPal(ctx context.Context) (*model.PayPalSettings, error) {
	const query = `SELECT enabled, mode, client_id, client_secret FROM settings WHERE name='paypal'`
	var s model.PayPalSettings
	if err := r.q.QueryRow(ctx, query).Scan(&s.Enabled, &s.Mode, &s.ClientID, &s.ClientSecret); err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (r *settingsRepository) SavePayPal(ctx context.Context, s model.PayPalSettings) error {
	const query = `INSERT INTO settings (name, enabled, mode, client_id, client_secret)
        VALUES ('paypal', $1, $2, $3, $4)
        ON CONFLICT (name) DO UPDATE SET enabled=EXCLUDED.enabled, mode=EXCLUDED.mode,
        client_id=EXCLUDED.client_id, client_secret=EXCLUDED.client_secret`
	_, err := r.q.Exec(ctx, query, s.Enabled, s.Mode, s.ClientID, s.ClientSecret)
	return err
}
