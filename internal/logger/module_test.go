package logger

import (
	"context"
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tradsolution/storefront/internal/config"
)

func TestModuleProvidesConfiguredLogger(t *testing.T) {
	var resolved *zap.Logger
	app := fxtest.New(t,
		fx.Supply(&config.Config{LogLevel: "warn"}),
		Module,
		fx.Populate(&resolved),
	)
	app.RequireStart()
	app.RequireStop()

	if resolved == nil {
		t.Fatal("expected logger to be populated")
	}
	if resolved.Core().Enabled(zapcore.InfoLevel) {
		t.Error("expected info to be disabled at warn level")
	}
}

func TestModuleRejectsUnknownLevel(t *testing.T) {
	app := fx.New(
		fx.NopLogger,
		fx.Supply(&config.Config{LogLevel: "loud"}),
		fx.Provide(New),
		fx.Invoke(func(*zap.Logger) {}),
	)
	if app.Err() == nil {
		t.Fatal("expected invalid log level to fail the graph")
	}
}

func TestModuleRoutesFxEventsThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	app := fx.New(
		fx.Supply(&config.Config{}),
		Module,
		fx.Decorate(func(*zap.Logger) *zap.Logger { return zap.New(core) }),
		fx.Invoke(func(*zap.Logger) {}),
	)
	if err := app.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := app.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}

	if logs.FilterLoggerName("fx").Len() == 0 {
		t.Fatalf("expected fx events on the fx logger, got %v", logs.All())
	}
}
