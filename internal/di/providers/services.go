package providers

import (
	"github.com/samber/do/v2"

	"github.com/GamingGoku/ProductionMealApp/internal/catalog"
	"github.com/GamingGoku/ProductionMealApp/internal/importer"
	"github.com/GamingGoku/ProductionMealApp/internal/logger"
	"github.com/GamingGoku/ProductionMealApp/internal/service"
)

// ProvidePlanService provides the meal plan service.
func ProvidePlanService(i do.Injector) (*service.PlanService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	cat := do.MustInvoke[*catalog.Catalog](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewPlanService(storeHandle.Store, cat, log.Logger), nil
}

// ProvideShoppingService provides the shopping list service.
func ProvideShoppingService(i do.Injector) (*service.ShoppingService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	cat := do.MustInvoke[*catalog.Catalog](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewShoppingService(storeHandle.Store, cat, log.Logger), nil
}

// ProvideCatalogService provides the catalog and import service.
func ProvideCatalogService(i do.Injector) (*service.CatalogService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	cat := do.MustInvoke[*catalog.Catalog](i)
	fetcher := do.MustInvoke[*importer.Importer](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCatalogService(storeHandle.Store, cat, fetcher, log.Logger), nil
}
