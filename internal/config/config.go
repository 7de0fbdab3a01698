package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	StateDir           string
	CatalogFile        string
	AdminEmail         string
	AdminPassword      string
	TokenSecret        string
	VATRate            decimal.Decimal
	Currency           string
	LinkTTL            time.Duration
	LinkMaxDownloads   int
	SweepInterval      time.Duration
	SweepBatch         int
	WorkerPoolSize     int
	ShutdownTimeout    time.Duration
	SimulatedLatency   time.Duration
	LogLevel           string
	LoginRatePerMinute int
}

const (
	defaultRunAddress         = ":8080"
	defaultStateDir           = "data"
	defaultAdminEmail         = "admin@tradsolution.com"
	defaultAdminPassword      = "krikucis"
	defaultTokenSecret        = "change-me-in-production"
	defaultVATRate            = "0.20"
	defaultCurrency           = "EUR"
	defaultLinkTTL            = 30 * 24 * time.Hour
	defaultLinkMaxDownloads   = 5
	defaultSweepInterval      = time.Minute
	defaultSweepBatch         = 32
	defaultWorkerPoolSize     = 2
	defaultShutdownTimeout    = 10 * time.Second
	defaultLogLevel           = "info"
	defaultLoginRatePerMinute = 20
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

// FromEnv parses configuration from environment variables only. Command line
// tools that own their flags use it.
func FromEnv() (*Config, error) {
	return load(nil, os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		StateDir:           getString(lookup, "STATE_DIR", defaultStateDir),
		CatalogFile:        getString(lookup, "CATALOG_FILE", ""),
		AdminEmail:         getString(lookup, "ADMIN_EMAIL", defaultAdminEmail),
		AdminPassword:      getString(lookup, "ADMIN_PASSWORD", defaultAdminPassword),
		TokenSecret:        getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		Currency:           getString(lookup, "CURRENCY", defaultCurrency),
		LinkTTL:            getDuration(lookup, "LINK_TTL", defaultLinkTTL),
		LinkMaxDownloads:   getInt(lookup, "LINK_MAX_DOWNLOADS", defaultLinkMaxDownloads),
		SweepInterval:      getDuration(lookup, "SWEEP_INTERVAL", defaultSweepInterval),
		SweepBatch:         getInt(lookup, "SWEEP_BATCH", defaultSweepBatch),
		WorkerPoolSize:     getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		SimulatedLatency:   getDuration(lookup, "SIMULATED_LATENCY", 0),
		LogLevel:           getString(lookup, "LOG_LEVEL", defaultLogLevel),
		LoginRatePerMinute: getInt(lookup, "LOGIN_RATE_PER_MINUTE", defaultLoginRatePerMinute),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		vatRateStr         = getString(lookup, "VAT_RATE", defaultVATRate)
		linkTTLStr         = cfg.LinkTTL.String()
		sweepIntervalStr   = cfg.SweepInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		latencyStr         = cfg.SimulatedLatency.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN; JSON state files are used when empty")
	fs.StringVar(&cfg.StateDir, "s", cfg.StateDir, "Directory holding JSON state files")
	fs.StringVar(&cfg.CatalogFile, "catalog", cfg.CatalogFile, "YAML catalog overriding the embedded one")
	fs.StringVar(&cfg.AdminEmail, "admin-email", cfg.AdminEmail, "Admin login email")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing admin session tokens")
	fs.StringVar(&vatRateStr, "vat-rate", vatRateStr, "VAT rate applied to orders")
	fs.StringVar(&cfg.Currency, "currency", cfg.Currency, "ISO 4217 currency of orders")
	fs.StringVar(&linkTTLStr, "link-ttl", linkTTLStr, "Download link validity")
	fs.IntVar(&cfg.LinkMaxDownloads, "link-max-downloads", cfg.LinkMaxDownloads, "Downloads allowed per link")
	fs.StringVar(&sweepIntervalStr, "sweep-interval", sweepIntervalStr, "Interval between stale link sweeps")
	fs.IntVar(&cfg.SweepBatch, "sweep-batch", cfg.SweepBatch, "Maximum links per sweep")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent sweep workers")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&latencyStr, "latency", latencyStr, "Artificial delay added to API responses")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.VATRate, err = decimal.NewFromString(vatRateStr); err != nil {
		return nil, fmt.Errorf("invalid vat rate: %w", err)
	}
	if cfg.VATRate.IsNegative() || cfg.VATRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("invalid vat rate: %s is outside [0, 1)", cfg.VATRate)
	}

	if cfg.LinkTTL, err = time.ParseDuration(linkTTLStr); err != nil {
		return nil, fmt.Errorf("invalid link ttl: %w", err)
	}

	if cfg.SweepInterval, err = time.ParseDuration(sweepIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.SimulatedLatency, err = time.ParseDuration(latencyStr); err != nil {
		return nil, fmt.Errorf("invalid latency: %w", err)
	}

	unit, err := currency.ParseISO(strings.ToUpper(cfg.Currency))
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", cfg.Currency, err)
	}
	cfg.Currency = unit.String()

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = strings.TrimSpace(string(content))
	}

	if passwordFile, ok := lookup("ADMIN_PASSWORD_FILE"); ok && passwordFile != "" {
		content, err := os.ReadFile(passwordFile)
		if err != nil {
			return nil, fmt.Errorf("read admin password file: %w", err)
		}
		cfg.AdminPassword = strings.TrimSpace(string(content))
	}

	if cfg.LinkTTL <= 0 {
		cfg.LinkTTL = defaultLinkTTL
	}

	if cfg.LinkMaxDownloads <= 0 {
		cfg.LinkMaxDownloads = defaultLinkMaxDownloads
	}

	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = defaultSweepInterval
	}

	if cfg.SweepBatch <= 0 {
		cfg.SweepBatch = defaultSweepBatch
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.SimulatedLatency < 0 {
		cfg.SimulatedLatency = 0
	}

	// Zero disables login rate limiting.
	if cfg.LoginRatePerMinute < 0 {
		cfg.LoginRatePerMinute = 0
	}

	if cfg.DatabaseURI == "" && cfg.StateDir == "" {
		return nil, fmt.Errorf("either database URI or state directory must be provided")
	}

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil, fmt.Errorf("admin credentials must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
