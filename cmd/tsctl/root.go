package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tradsolution/storefront/internal/catalog"
	"github.com/tradsolution/storefront/internal/config"
	"github.com/tradsolution/storefront/internal/invoicepdf"
	"github.com/tradsolution/storefront/internal/storage"
	"github.com/tradsolution/storefront/internal/usecase"
)

type options struct {
	stateDir    string
	databaseURI string
	verbose     bool
}

// env holds the services a command runs against.
type env struct {
	cfg      *config.Config
	logger   *zap.Logger
	backend  storage.Backend
	orders   *usecase.OrderUseCase
	invoices *usecase.InvoiceUseCase
	delivery *usecase.DeliveryUseCase
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "tsctl",
		Short:         "Storefront maintenance tool",
		Long:          "tsctl reads and maintains storefront state directly from the configured backend.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.stateDir, "state-dir", "s", "", "JSON state directory (overrides STATE_DIR)")
	root.PersistentFlags().StringVarP(&opts.databaseURI, "database-uri", "d", "", "PostgreSQL DSN (overrides DATABASE_URI)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log storage activity to stderr")

	root.AddCommand(
		newOrdersCmd(opts),
		newInvoicePDFCmd(opts),
		newLinksCmd(opts),
		newResetCmd(opts),
	)
	return root
}

// open builds the backend and use cases for one command run. The caller must close the env.
func open(ctx context.Context, opts *options) (*env, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	if opts.stateDir != "" {
		cfg.StateDir = opts.stateDir
	}
	if opts.databaseURI != "" {
		cfg.DatabaseURI = opts.databaseURI
	}

	logger := zap.NewNop()
	if opts.verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, err
		}
	}

	c, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	backend, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	policy := usecase.NewPolicy(cfg)
	return &env{
		cfg:      cfg,
		logger:   logger,
		backend:  backend,
		orders:   usecase.NewOrderUseCase(backend, c, policy, usecase.NewSimulatedAccess(), nil),
		invoices: usecase.NewInvoiceUseCase(backend, invoicepdf.New(), nil),
		delivery: usecase.NewDeliveryUseCase(backend, policy, nil),
	}, nil
}

func (e *env) Close() {
	e.backend.Close()
	_ = e.logger.Sync()
}

// withEnv adapts a command body that needs an open env into a cobra RunE.
func withEnv(opts *options, fn func(cmd *cobra.Command, args []string, e *env) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := open(cmd.Context(), opts)
		if err != nil {
			return err
		}
		defer e.Close()
		return fn(cmd, args, e)
	}
}
