package di

import (
	"go.uber.org/fx"

	"github.com/tradsolution/storefront/internal/app"
	"github.com/tradsolution/storefront/internal/catalog"
	"github.com/tradsolution/storefront/internal/config"
	"github.com/tradsolution/storefront/internal/invoicepdf"
	"github.com/tradsolution/storefront/internal/logger"
	"github.com/tradsolution/storefront/internal/metrics"
	"github.com/tradsolution/storefront/internal/pkg/auth"
	"github.com/tradsolution/storefront/internal/server/http/router"
	"github.com/tradsolution/storefront/internal/storage"
	"github.com/tradsolution/storefront/internal/usecase"
)

// Module composes the storefront service graph. Extra options are appended
// last so callers can replace any provided value.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		catalog.Module,
		storage.Module,
		metrics.Module,
		invoicepdf.Module,
		usecase.Module,
		fx.Provide(func(b storage.Backend) app.HealthChecker { return b }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
