// Package sse implements Server-Sent Events so every open window converges
// on the same plan and shopping list without refreshing.
package sse

import (
	"time"

	"github.com/GamingGoku/ProductionMealApp/internal/domain"
	"github.com/GamingGoku/ProductionMealApp/internal/shopping"
)

// EventType represents the type of SSE Event.
type EventType string

const (
	// EventPlanUpdated carries the full plan after generation or reorder.
	EventPlanUpdated EventType = "plan.updated"
	// EventPlanCleared signals the plan was removed.
	EventPlanCleared EventType = "plan.cleared"
	// EventLockChanged signals the plan lock was toggled.
	EventLockChanged EventType = "lock.changed"

	// EventShoppingUpdated carries the freshly derived shopping list after
	// any change to its inputs.
	EventShoppingUpdated EventType = "shopping.updated"

	// EventExtrasUpdated signals the extras list changed.
	EventExtrasUpdated EventType = "extras.updated"
	// EventCheckedUpdated signals the checked-off set changed.
	EventCheckedUpdated EventType = "checked.updated"
	// EventOverridesUpdated signals a category or quantity override changed.
	EventOverridesUpdated EventType = "overrides.updated"

	// EventCatalogUpdated signals the meal catalog changed, either the file
	// on disk or the custom meals.
	EventCatalogUpdated EventType = "catalog.updated"

	// EventHeartbeat represents a connection keepalive event.
	EventHeartbeat EventType = "heartbeat"
)

// Event represents an SSE event to be sent to clients.
// The Data field contains the event payload as a JSON object for direct deserialization.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
	Type      EventType `json:"type"`
}

// PlanEventData is the payload for plan.updated events.
type PlanEventData struct {
	Plan *domain.Plan `json:"plan"`
}

// LockEventData is the payload for lock.changed events.
type LockEventData struct {
	Locked    bool      `json:"locked"`
	ChangedAt time.Time `json:"changed_at"`
}

// ShoppingEventData is the payload for shopping.updated events. The full
// list snapshot keeps events self-contained so clients render without a
// follow-up request.
type ShoppingEventData struct {
	List *shopping.List `json:"list"`
}

// CatalogEventData is the payload for catalog.updated events.
type CatalogEventData struct {
	Meals      int       `json:"meals"`
	ReloadedAt time.Time `json:"reloaded_at"`
}

// HeartbeatEventData is the payload for heartbeat events.
type HeartbeatEventData struct {
	ServerTime time.Time `json:"server_time"`
}

// NewPlanUpdatedEvent creates a plan.updated event.
func NewPlanUpdatedEvent(plan *domain.Plan) Event {
	return Event{
		Type:      EventPlanUpdated,
		Timestamp: time.Now(),
		Data:      PlanEventData{Plan: plan},
	}
}

// NewPlanClearedEvent creates a plan.cleared event.
func NewPlanClearedEvent() Event {
	return Event{
		Type:      EventPlanCleared,
		Timestamp: time.Now(),
	}
}

// NewLockChangedEvent creates a lock.changed event.
func NewLockChangedEvent(locked bool) Event {
	return Event{
		Type:      EventLockChanged,
		Timestamp: time.Now(),
		Data:      LockEventData{Locked: locked, ChangedAt: time.Now()},
	}
}

// NewShoppingUpdatedEvent creates a shopping.updated event.
func NewShoppingUpdatedEvent(list *shopping.List) Event {
	return Event{
		Type:      EventShoppingUpdated,
		Timestamp: time.Now(),
		Data:      ShoppingEventData{List: list},
	}
}

// NewRecordEvent creates a payload-free event of the given type. Used for
// the granular change signals where the shopping.updated snapshot that
// follows already carries the data.
func NewRecordEvent(t EventType) Event {
	return Event{
		Type:      t,
		Timestamp: time.Now(),
	}
}

// NewCatalogUpdatedEvent creates a catalog.updated event.
func NewCatalogUpdatedEvent(meals int) Event {
	return Event{
		Type:      EventCatalogUpdated,
		Timestamp: time.Now(),
		Data:      CatalogEventData{Meals: meals, ReloadedAt: time.Now()},
	}
}

// NewHeartbeatEvent creates a heartbeat event.
func NewHeartbeatEvent() Event {
	return Event{
		Type:      EventHeartbeat,
		Timestamp: time.Now(),
		Data:      HeartbeatEventData{ServerTime: time.Now()},
	}
}
