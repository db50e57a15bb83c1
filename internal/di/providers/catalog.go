package providers

import (
	"github.com/samber/do/v2"

	"github.com/GamingGoku/ProductionMealApp/internal/catalog"
	"github.com/GamingGoku/ProductionMealApp/internal/config"
	"github.com/GamingGoku/ProductionMealApp/internal/importer"
	"github.com/GamingGoku/ProductionMealApp/internal/logger"
)

// ProvideCatalog provides the file-backed meal catalog.
func ProvideCatalog(i do.Injector) (*catalog.Catalog, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return catalog.New(cfg.Catalog.Path, log.Logger), nil
}

// ProvideImporter provides the recipe page fetcher.
func ProvideImporter(i do.Injector) (*importer.Importer, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return importer.New(log.Logger, cfg.Import.RequestsPerSecond, cfg.Import.Burst, cfg.Import.Timeout), nil
}
