package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/tradsolution/storefront/internal/domain/repository"
)

// pgxPool is the subset of *pgxpool.Pool used by storage.
type pgxPool interface {
	querier
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// querier is satisfied by both the pool and a running transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

const uniqueViolation = "23505"

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *zap.Logger
}

var _ repository.Factory = (*Storage)(nil)

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *zap.Logger) (*Storage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger.Named("postgres")}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{q: s.pool}
}

func (s *Storage) Invoices() repository.InvoiceRepository {
	return &invoiceRepository{q: s.pool}
}

func (s *Storage) Links() repository.DownloadLinkRepository {
	return &linkRepository{q: s.pool}
}

func (s *Storage) AccessLogs() repository.AccessLogRepository {
	return &accessLogRepository{q: s.pool}
}

func (s *Storage) Settings() repository.SettingsRepository {
	return &settingsRepository{q: s.pool}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            position BIGINT NOT NULL,
            status TEXT NOT NULL,
            product_id TEXT NOT NULL,
            product_name TEXT NOT NULL,
            customer_name TEXT NOT NULL,
            customer_email TEXT NOT NULL,
            amount NUMERIC(12,2) NOT NULL,
            currency CHAR(3) NOT NULL,
            tax NUMERIC(12,2) NOT NULL,
            created_at TIMESTAMPTZ NOT NULL,
            notes TEXT NOT NULL DEFAULT '',
            payment_method TEXT NOT NULL DEFAULT '',
            transaction_id TEXT NOT NULL DEFAULT '',
            billing_address TEXT NOT NULL DEFAULT '',
            billing_country TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS invoices (
            id TEXT PRIMARY KEY,
            position BIGINT NOT NULL,
            order_id TEXT NOT NULL,
            invoice_number TEXT UNIQUE NOT NULL,
            issue_date TIMESTAMPTZ NOT NULL,
            subtotal NUMERIC(12,2) NOT NULL,
            tax NUMERIC(12,2) NOT NULL,
            total NUMERIC(12,2) NOT NULL,
            currency CHAR(3) NOT NULL,
            status TEXT NOT NULL,
            bill_to_name TEXT NOT NULL,
            bill_to_email TEXT NOT NULL,
            bill_to_address TEXT NOT NULL DEFAULT '',
            bill_to_country TEXT NOT NULL DEFAULT '',
            bill_to_vat_id TEXT NOT NULL DEFAULT '',
            pdf_url TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS download_links (
            id TEXT PRIMARY KEY,
            position BIGINT NOT NULL,
            order_id TEXT NOT NULL,
            product_name TEXT NOT NULL,
            key TEXT UNIQUE NOT NULL,
            expires_at TIMESTAMPTZ NOT NULL,
            max_downloads INTEGER NOT NULL,
            download_count INTEGER NOT NULL DEFAULT 0,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS access_logs (
            id TEXT PRIMARY KEY,
            position BIGSERIAL,
            link_id TEXT NOT NULL DEFAULT '',
            resource TEXT NOT NULL,
            accessed_at TIMESTAMPTZ NOT NULL,
            ip TEXT NOT NULL,
            device_sig TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS settings (
            name TEXT PRIMARY KEY,
            enabled BOOLEAN NOT NULL,
            mode TEXT NOT NULL,
            client_id TEXT NOT NULL,
            client_secret TEXT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_download_links_order ON download_links(order_id, position)`,
		`CREATE INDEX IF NOT EXISTS idx_access_logs_link ON access_logs(link_id, position)`,
		`INSERT INTO settings (name, enabled, mode, client_id, client_secret)
            VALUES ('paypal', TRUE, 'SANDBOX', 'sb-client-id-mock', 'sb-secret-key-mock')
            ON CONFLICT (name) DO NOTHING`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction executes fn with repositories bound to one transaction.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(repository.Factory) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Warn("rollback failed", zap.Error(rbErr))
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(&txFactory{tx: tx})
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

type txFactory struct {
	tx pgx.Tx
}

func (f *txFactory) Orders() repository.OrderRepository         { return &orderRepository{q: f.tx} }
func (f *txFactory) Invoices() repository.InvoiceRepository     { return &invoiceRepository{q: f.tx} }
func (f *txFactory) Links() repository.DownloadLinkRepository   { return &linkRepository{q: f.tx} }
func (f *txFactory) AccessLogs() repository.AccessLogRepository { return &accessLogRepository{q: f.tx} }
func (f *txFactory) Settings() repository.SettingsRepository    { return &settingsRepository{q: f.tx} }

// WithinTransaction joins the running transaction.
func (f *txFactory) WithinTransaction(_ context.Context, fn func(repository.Factory) error) error {
	return fn(f)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
