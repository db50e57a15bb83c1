// Package di provides dependency injection configuration for the meal planner server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/GamingGoku/ProductionMealApp/internal/catalog"
	"github.com/GamingGoku/ProductionMealApp/internal/config"
	"github.com/GamingGoku/ProductionMealApp/internal/di/providers"
	"github.com/GamingGoku/ProductionMealApp/internal/importer"
	"github.com/GamingGoku/ProductionMealApp/internal/logger"
	"github.com/GamingGoku/ProductionMealApp/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideSSEManager)
	do.Provide(injector, providers.ProvideReplicator)
	do.Provide(injector, providers.ProvideStore)

	// Catalog and import
	do.Provide(injector, providers.ProvideCatalog)
	do.Provide(injector, providers.ProvideImporter)

	// Business services
	do.Provide(injector, providers.ProvidePlanService)
	do.Provide(injector, providers.ProvideShoppingService)
	do.Provide(injector, providers.ProvideCatalogService)

	// Workers
	do.Provide(injector, providers.ProvideReplicatorWorker)
	do.Provide(injector, providers.ProvideCatalogWatcher)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.SSEManagerHandle](injector)
	_ = do.MustInvoke[*service.Replicator](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*catalog.Catalog](injector)
	_ = do.MustInvoke[*importer.Importer](injector)

	// Business services
	_ = do.MustInvoke[*service.PlanService](injector)
	_ = do.MustInvoke[*service.ShoppingService](injector)
	_ = do.MustInvoke[*service.CatalogService](injector)

	// Workers
	_ = do.MustInvoke[*providers.ReplicatorWorkerHandle](injector)
	_ = do.MustInvoke[*providers.CatalogWatcherHandle](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
