package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/fx"

	"github.com/tradsolution/storefront/internal/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := fx.New(
		fx.Supply(fx.Annotate(ctx, fx.As(new(context.Context)))),
		di.Module(),
	)

	run(ctx, app)
}
