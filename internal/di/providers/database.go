package providers

import (
	"context"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/GamingGoku/ProductionMealApp/internal/config"
	"github.com/GamingGoku/ProductionMealApp/internal/logger"
	"github.com/GamingGoku/ProductionMealApp/internal/service"
	"github.com/GamingGoku/ProductionMealApp/internal/sse"
	"github.com/GamingGoku/ProductionMealApp/internal/store"
)

// SSEManagerHandle wraps the SSE manager with its context for lifecycle management.
type SSEManagerHandle struct {
	*sse.Manager
	cancel context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *SSEManagerHandle) Shutdown() error {
	h.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Manager.Shutdown(ctx)
}

// ProvideSSEManager provides the server-sent events manager.
func ProvideSSEManager(i do.Injector) (*SSEManagerHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)

	manager := sse.NewManager(log.Logger)

	// Start in background
	ctx, cancel := context.WithCancel(context.Background())
	go manager.Start(ctx)

	log.Info("SSE manager started")

	return &SSEManagerHandle{
		Manager: manager,
		cancel:  cancel,
	}, nil
}

// ProvideReplicator provides the store-to-SSE replicator. The store and
// shopping service are bound later by ProvideReplicatorWorker; the store needs
// the replicator first as its change emitter.
func ProvideReplicator(i do.Injector) (*service.Replicator, error) {
	log := do.MustInvoke[*logger.Logger](i)
	sseHandle := do.MustInvoke[*SSEManagerHandle](i)

	return service.NewReplicator(sseHandle.Manager, log.Logger), nil
}

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the database store, wired to the replicator so every
// record write becomes a change event.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	replicator := do.MustInvoke[*service.Replicator](i)

	dbPath := filepath.Join(cfg.Data.BasePath, "db")
	db, err := store.New(dbPath, log.Logger, replicator)
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "path", dbPath)

	return &StoreHandle{Store: db}, nil
}
