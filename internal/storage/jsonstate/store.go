// Package jsonstate keeps storefront state in five JSON files that are
// rewritten together on every mutation.
package jsonstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tradsolution/storefront/internal/domain/model"
	"github.com/tradsolution/storefront/internal/domain/repository"
)

const (
	ordersFile   = "ts_orders.json"
	invoicesFile = "ts_invoices.json"
	linksFile    = "ts_links.json"
	logsFile     = "ts_logs.json"
	settingsFile = "ts_settings.json"
)

type state struct {
	orders   []model.Order
	invoices []model.Invoice
	links    []model.DownloadLink
	logs     []model.AccessLog
	settings model.PayPalSettings
}

func (s state) clone() state {
	return state{
		orders:   slices.Clone(s.orders),
		invoices: slices.Clone(s.invoices),
		links:    slices.Clone(s.links),
		logs:     slices.Clone(s.logs),
		settings: s.settings,
	}
}

// Store is a file backed repository factory guarded by a single mutex.
type Store struct {
	mu     sync.Mutex
	dir    string
	logger *zap.Logger
	st     state
	root   *session
}

var _ repository.Factory = (*Store)(nil)

// Open loads state from dir, falling back to seed data per missing or corrupt file.
func Open(dir string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	s := &Store{dir: dir, logger: logger.Named("jsonstate")}
	s.root = &session{store: s}

	initial := seed(time.Now().UTC())
	s.st = state{
		orders:   loadBlob(s, ordersFile, initial.orders),
		invoices: loadBlob(s, invoicesFile, initial.invoices),
		links:    loadBlob(s, linksFile, initial.links),
		logs:     loadBlob(s, logsFile, initial.logs),
		settings: loadBlob(s, settingsFile, initial.settings),
	}

	return s, nil
}

func loadBlob[T any](s *Store, name string, fallback T) T {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("state file unreadable, using seed data", zap.String("file", name), zap.Error(err))
		}
		return fallback
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		s.logger.Warn("state file corrupt, using seed data", zap.String("file", name), zap.Error(err))
		return fallback
	}
	return value
}

// Dir returns the directory holding state files.
func (s *Store) Dir() string {
	return s.dir
}

// Close is a no-op; every mutation is already on disk.
func (s *Store) Close() {}

// HealthCheck reports whether the state directory is still usable.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("state dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("state dir %s is not a directory", s.dir)
	}
	return nil
}

// Reset replaces all state with seed data and persists it.
func (s *Store) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.st
	s.st = seed(time.Now().UTC())
	if err := s.persist(); err != nil {
		s.st = previous
		return err
	}
	return nil
}

func (s *Store) Orders() repository.OrderRepository       { return &orderRepository{s: s.root} }
func (s *Store) Invoices() repository.InvoiceRepository   { return &invoiceRepository{s: s.root} }
func (s *Store) Links() repository.DownloadLinkRepository { return &linkRepository{s: s.root} }
func (s *Store) AccessLogs() repository.AccessLogRepository {
	return &accessLogRepository{s: s.root}
}
func (s *Store) Settings() repository.SettingsRepository { return &settingsRepository{s: s.root} }

// WithinTransaction runs fn under one lock and writes state once at the end.
// State is restored when fn or the write fails.
func (s *Store) WithinTransaction(ctx context.Context, fn func(repository.Factory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(&txFactory{s: &session{store: s, inTx: true}}); err != nil {
		s.st = snapshot
		return err
	}
	if err := s.persist(); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

// persist writes all five blobs. Callers hold mu.
func (s *Store) persist() error {
	blobs := []struct {
		name  string
		value any
	}{
		{ordersFile, s.st.orders},
		{invoicesFile, s.st.invoices},
		{linksFile, s.st.links},
		{logsFile, s.st.logs},
		{settingsFile, s.st.settings},
	}

	for _, b := range blobs {
		if err := s.writeFile(b.name, b.value); err != nil {
			s.logger.Error("failed to save state", zap.String("file", b.name), zap.Error(err))
			return fmt.Errorf("save %s: %w", b.name, err)
		}
	}
	return nil
}

func (s *Store) writeFile(name string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(s.dir, name))
}

// session scopes repository access either to the store lock or to a running transaction.
type session struct {
	store *Store
	inTx  bool
}

func (s *session) read(ctx context.Context, fn func(*state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.inTx {
		return fn(&s.store.st)
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return fn(&s.store.st)
}

func (s *session) write(ctx context.Context, fn func(*state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.inTx {
		return fn(&s.store.st)
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	snapshot := s.store.st.clone()
	if err := fn(&s.store.st); err != nil {
		s.store.st = snapshot
		return err
	}
	if err := s.store.persist(); err != nil {
		s.store.st = snapshot
		return err
	}
	return nil
}

type txFactory struct {
	s *session
}

func (f *txFactory) Orders() repository.OrderRepository       { return &orderRepository{s: f.s} }
func (f *txFactory) Invoices() repository.InvoiceRepository   { return &invoiceRepository{s: f.s} }
func (f *txFactory) Links() repository.DownloadLinkRepository { return &linkRepository{s: f.s} }
func (f *txFactory) AccessLogs() repository.AccessLogRepository {
	return &accessLogRepository{s: f.s}
}
func (f *txFactory) Settings() repository.SettingsRepository { return &settingsRepository{s: f.s} }

// WithinTransaction joins the running transaction.
func (f *txFactory) WithinTransaction(_ context.Context, fn func(repository.Factory) error) error {
	return fn(f)
}
