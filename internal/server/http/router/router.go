package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tradsolution/storefront/internal/config"
	"github.com/tradsolution/storefront/internal/metrics"
	"github.com/tradsolution/storefront/internal/server/http/handlers"
	"github.com/tradsolution/storefront/internal/server/http/middleware"
)

// Params lists router dependencies.
type Params struct {
	fx.In

	Facade  handlers.StorefrontFacade
	Logger  *zap.Logger
	Metrics *metrics.Registry
	Config  *config.Config
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.Metrics(p.Metrics))
	engine.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithDecompressFn(gzip.DefaultDecompressHandle),
		gzip.WithExcludedPaths([]string{"/metrics"}),
		gzip.WithExcludedPathsRegexs([]string{`/pdf$`}),
	))
	if p.Config.SimulatedLatency > 0 {
		engine.Use(middleware.SimulatedLatency(p.Config.SimulatedLatency))
	}

	limiter := middleware.NewIPRateLimiter(p.Config.LoginRatePerMinute)
	throttle := middleware.RateLimit(limiter)

	catalogHandler := handlers.NewCatalogHandler(p.Facade, p.Facade)
	authHandler := handlers.NewAuthHandler(p.Facade)
	orderHandler := handlers.NewOrderHandler(p.Facade)
	invoiceHandler := handlers.NewInvoiceHandler(p.Facade)
	deliveryHandler := handlers.NewDeliveryHandler(p.Facade)
	settingsHandler := handlers.NewSettingsHandler(p.Facade)
	healthHandler := handlers.NewHealthHandler(p.Facade)

	engine.GET("/", catalogHandler.Root)
	engine.GET("/healthz", healthHandler.Health)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	api := engine.Group("/api")
	api.GET("/products", catalogHandler.Products)
	api.GET("/products/:id", catalogHandler.Product)
	api.GET("/landing", catalogHandler.Landing)
	api.POST("/checkout", orderHandler.Checkout)
	api.GET("/downloads/:key", throttle, deliveryHandler.Redeem)

	admin := api.Group("/admin")
	admin.POST("/login", throttle, authHandler.Login)

	adminAuth := admin.Group("")
	adminAuth.Use(middleware.AuthRequired(p.Facade))
	adminAuth.POST("/logout", authHandler.Logout)
	adminAuth.GET("/stats", orderHandler.Stats)

	adminAuth.GET("/orders", orderHandler.List)
	adminAuth.POST("/orders", orderHandler.Create)
	adminAuth.GET("/orders/:id", orderHandler.Get)
	adminAuth.PATCH("/orders/:id", orderHandler.Update)
	adminAuth.GET("/orders/:id/invoice", invoiceHandler.ForOrder)
	adminAuth.POST("/orders/:id/invoice", invoiceHandler.Generate)
	adminAuth.POST("/orders/:id/links", deliveryHandler.Create)

	adminAuth.GET("/invoices", invoiceHandler.List)
	adminAuth.PUT("/invoices/:id", invoiceHandler.Save)
	adminAuth.GET("/invoices/:id/audit", invoiceHandler.Audit)
	adminAuth.GET("/invoices/:id/pdf", invoiceHandler.PDF)

	adminAuth.GET("/links", deliveryHandler.Links)
	adminAuth.POST("/links/:id/deactivate", deliveryHandler.Deactivate)
	adminAuth.GET("/logs", deliveryHandler.Logs)

	adminAuth.GET("/settings/paypal", settingsHandler.PayPal)
	adminAuth.PUT("/settings/paypal", settingsHandler.UpdatePayPal)

	return engine
}
