package metrics

import (
	"go.uber.org/fx"

	"github.com/tradsolution/storefront/internal/usecase"
)

// Module provides the metrics registry and exposes it as the usecase event recorder.
var Module = fx.Provide(
	NewRegistry,
	func(r *Registry) usecase.Recorder { return r },
)
