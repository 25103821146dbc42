package dashboard

import (
	"sync"

	"github.com/penwyp/go-activity-timeline/internal/core/window"
)

// StateManager holds the last derived aggregate in a thread-safe
// manner. While a refresh is in flight it keeps the previous complete
// aggregate available so the display never goes empty mid-load.
type StateManager struct {
	mu sync.RWMutex

	current  window.Aggregate
	previous window.Aggregate
	hasData  bool
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// SetAggregate stores a freshly derived aggregate, keeping the old one
// as the fallback for loading states.
func (sm *StateManager) SetAggregate(agg window.Aggregate) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.hasData {
		sm.previous = sm.current
	}
	sm.current = agg
	sm.hasData = true
}

// Aggregate returns the latest aggregate.
func (sm *StateManager) Aggregate() window.Aggregate {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.current
}

// AggregateForDisplay returns the aggregate the renderer should show:
// the current one normally, the previous complete one while every
// active day is still loading and older data exists.
func (sm *StateManager) AggregateForDisplay() window.Aggregate {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if sm.current.IsLoadingAny && len(sm.current.LoadingDays) == len(sm.current.ActiveDates) && len(sm.previous.LoadedDays) > 0 {
		return sm.previous
	}
	return sm.current
}
