package invoicepdf

import (
	"go.uber.org/fx"

	"github.com/tradsolution/storefront/internal/usecase"
)

// Module provides the PDF invoice renderer.
var Module = fx.Provide(
	func() usecase.InvoiceRenderer { return New() },
)
