package usecase

import "go.uber.org/fx"

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewPolicy,
	fx.Annotate(NewSimulatedAccess, fx.As(new(AccessSource))),
	NewAuthUseCase,
	NewOrderUseCase,
	NewInvoiceUseCase,
	NewDeliveryUseCase,
	NewSettingsUseCase,
)
