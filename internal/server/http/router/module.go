package router

import (
	"go.uber.org/fx"

	"github.com/tradsolution/storefront/internal/app"
	"github.com/tradsolution/storefront/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	Setup,
	func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f },
)
