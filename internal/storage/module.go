// Package storage selects the persistence backend.
package storage

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tradsolution/storefront/internal/config"
	"github.com/tradsolution/storefront/internal/domain/repository"
	"github.com/tradsolution/storefront/internal/storage/jsonstate"
	"github.com/tradsolution/storefront/internal/storage/postgres"
)

// Backend is a repository factory owning external resources.
type Backend interface {
	repository.Factory
	HealthCheck(ctx context.Context) error
	Close()
}

// Module wires the configured backend and its lifecycle.
var Module = fx.Options(
	fx.Provide(newBackend),
	fx.Provide(func(b Backend) repository.Factory { return b }),
	fx.Invoke(registerLifecycle),
)

type backendParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *zap.Logger
}

func newBackend(p backendParams) (Backend, error) {
	return Open(p.Ctx, p.Config, p.Logger)
}

// Open returns postgres storage when a database URI is configured and the
// JSON state store otherwise.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Backend, error) {
	if cfg.DatabaseURI != "" {
		st, err := postgres.New(ctx, cfg.DatabaseURI, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("using postgres storage")
		return st, nil
	}

	st, err := jsonstate.Open(cfg.StateDir, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("using json state storage", zap.String("dir", st.Dir()))
	return st, nil
}

func registerLifecycle(lc fx.Lifecycle, backend Backend) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			backend.Close()
			return nil
		},
	})
}
