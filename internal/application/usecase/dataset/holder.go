// Package dataset contains the load-cycle use cases and the process-wide
// snapshot of the two built ledgers.
package dataset

import (
	"sync"

	"github.com/simrs-budget/backend/internal/domain/entity"
	domainerror "github.com/simrs-budget/backend/internal/domain/error"
)

// Holder keeps the current dataset snapshot. A load cycle builds a complete
// Dataset and swaps it in atomically; readers either see the previous snapshot
// or the new one, never a partial load.
type Holder struct {
	mu      sync.RWMutex
	current *entity.Dataset
}

// NewHolder creates an empty Holder.
func NewHolder() *Holder {
	return &Holder{}
}

// Current returns the active snapshot, or ErrDatasetNotLoaded before the
// first successful load cycle.
func (h *Holder) Current() (*entity.Dataset, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeDatasetNotLoaded,
			"no dataset loaded yet",
			domainerror.ErrDatasetNotLoaded,
		)
	}
	return h.current, nil
}

// Publish replaces the active snapshot.
func (h *Holder) Publish(d *entity.Dataset) {
	h.mu.Lock()
	h.current = d
	h.mu.Unlock()
}
