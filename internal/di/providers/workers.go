package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/GamingGoku/ProductionMealApp/internal/catalog"
	"github.com/GamingGoku/ProductionMealApp/internal/logger"
	"github.com/GamingGoku/ProductionMealApp/internal/service"
)

// ReplicatorWorkerHandle runs the replicator loop with lifecycle management.
type ReplicatorWorkerHandle struct {
	Replicator *service.Replicator
	cancel     context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *ReplicatorWorkerHandle) Shutdown() error {
	h.cancel()
	return nil
}

// ProvideReplicatorWorker binds the replicator to the store and shopping
// service and starts its processing loop. Must be provided after both exist;
// no store writes happen before the HTTP server is up.
func ProvideReplicatorWorker(i do.Injector) (*ReplicatorWorkerHandle, error) {
	replicator := do.MustInvoke[*service.Replicator](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	shopping := do.MustInvoke[*service.ShoppingService](i)
	log := do.MustInvoke[*logger.Logger](i)

	replicator.Bind(storeHandle.Store, shopping)

	ctx, cancel := context.WithCancel(context.Background())
	go replicator.Run(ctx)

	log.Info("Replicator started")

	return &ReplicatorWorkerHandle{Replicator: replicator, cancel: cancel}, nil
}

// CatalogWatcherHandle runs the catalog file watcher with lifecycle management.
type CatalogWatcherHandle struct {
	cancel context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *CatalogWatcherHandle) Shutdown() error {
	h.cancel()
	return nil
}

// ProvideCatalogWatcher starts the fsnotify watcher on the catalog file.
// Edits to meals.json reload the catalog and push fresh state to all windows.
func ProvideCatalogWatcher(i do.Injector) (*CatalogWatcherHandle, error) {
	cat := do.MustInvoke[*catalog.Catalog](i)
	worker := do.MustInvoke[*ReplicatorWorkerHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		err := cat.Watch(ctx, func() {
			worker.Replicator.CatalogReloaded(context.Background())
		})
		if err != nil {
			log.Warn("Catalog watcher unavailable", "error", err)
		}
	}()

	log.Info("Catalog watcher started")

	return &CatalogWatcherHandle{cancel: cancel}, nil
}
