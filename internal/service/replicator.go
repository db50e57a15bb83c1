package service

import (
	"context"
	"log/slog"

	"github.com/GamingGoku/ProductionMealApp/internal/sse"
	"github.com/GamingGoku/ProductionMealApp/internal/store"
)

// Replicator turns store record changes into SSE events so every open
// window converges on the same state. It implements store.EventEmitter; the
// store is wired to it at startup and each write lands here.
//
// Changes are processed asynchronously: the write path only queues, the Run
// loop reloads the affected state and pushes a fresh shopping.updated
// snapshot.
type Replicator struct {
	manager *sse.Manager
	logger  *slog.Logger

	// Bound after store construction; the store needs the emitter first.
	store    *store.Store
	shopping *ShoppingService

	changes chan store.RecordChange
}

// NewReplicator creates a replicator publishing to the given SSE manager.
func NewReplicator(manager *sse.Manager, logger *slog.Logger) *Replicator {
	return &Replicator{
		manager: manager,
		logger:  logger,
		changes: make(chan store.RecordChange, 256),
	}
}

// Bind attaches the store and shopping service. Must be called before Run.
func (r *Replicator) Bind(s *store.Store, shopping *ShoppingService) {
	r.store = s
	r.shopping = shopping
}

// Emit implements store.EventEmitter. Non-blocking; a full queue drops the
// change and logs, the next change re-syncs clients anyway.
func (r *Replicator) Emit(event any) {
	change, ok := event.(store.RecordChange)
	if !ok {
		return
	}

	select {
	case r.changes <- change:
	default:
		r.logger.Warn("replicator queue full, dropping change", "key", change.Key)
	}
}

// Run processes queued record changes until the context is canceled.
func (r *Replicator) Run(ctx context.Context) {
	r.logger.Info("replicator starting")
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("replicator stopping")
			return
		case change := <-r.changes:
			r.handle(ctx, change)
		}
	}
}

// CatalogReloaded notifies clients that the catalog file changed on disk.
func (r *Replicator) CatalogReloaded(ctx context.Context) {
	custom, err := r.store.GetCustomMeals(ctx)
	if err != nil {
		r.logger.Error("failed to reload custom meals", "error", err)
		custom = nil
	}
	r.manager.Emit(sse.NewCatalogUpdatedEvent(len(r.shopping.catalog.Meals(custom))))
	r.broadcastShopping(ctx)
}

// handle maps one record change to its SSE events.
func (r *Replicator) handle(ctx context.Context, change store.RecordChange) {
	switch change.Key {
	case store.KeyPlan:
		if change.Deleted {
			r.manager.Emit(sse.NewPlanClearedEvent())
		} else if plan, err := r.store.GetPlan(ctx); err == nil {
			r.manager.Emit(sse.NewPlanUpdatedEvent(plan))
		}
		r.broadcastShopping(ctx)

	case store.KeyPlanLock:
		locked, err := r.store.GetLocked(ctx)
		if err != nil {
			r.logger.Error("failed to reload lock state", "error", err)
			return
		}
		r.manager.Emit(sse.NewLockChangedEvent(locked))

	case store.KeyChecked:
		r.manager.Emit(sse.NewRecordEvent(sse.EventCheckedUpdated))
		r.broadcastShopping(ctx)

	case store.KeyExtras:
		r.manager.Emit(sse.NewRecordEvent(sse.EventExtrasUpdated))
		r.broadcastShopping(ctx)

	case store.KeyCategoryOverride, store.KeyQuantityOverride:
		r.manager.Emit(sse.NewRecordEvent(sse.EventOverridesUpdated))
		r.broadcastShopping(ctx)

	case store.KeyOpenCategories:
		r.broadcastShopping(ctx)

	case store.KeyCustomMeals:
		custom, err := r.store.GetCustomMeals(ctx)
		if err != nil {
			r.logger.Error("failed to reload custom meals", "error", err)
			return
		}
		r.manager.Emit(sse.NewCatalogUpdatedEvent(len(r.shopping.catalog.Meals(custom))))
		r.broadcastShopping(ctx)

	default:
		// Unwatched key.
	}
}

// broadcastShopping rebuilds the aggregate and pushes the snapshot.
func (r *Replicator) broadcastShopping(ctx context.Context) {
	list, err := r.shopping.Build(ctx)
	if err != nil {
		r.logger.Error("failed to rebuild shopping list", "error", err)
		return
	}
	r.manager.Emit(sse.NewShoppingUpdatedEvent(list))
}
