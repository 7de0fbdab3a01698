package catalog

import (
	"go.uber.org/fx"

	"github.com/tradsolution/storefront/internal/config"
	"github.com/tradsolution/storefront/internal/domain/repository"
)

// Module provides product catalog to the fx graph.
var Module = fx.Provide(
	func(cfg *config.Config) (*Catalog, error) { return Load(cfg.CatalogFile) },
	func(c *Catalog) repository.ProductCatalog { return c },
)
