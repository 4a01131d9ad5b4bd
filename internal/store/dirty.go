package store

import (
	"context"
	"sync"

	plxerrors "github.com/plannerx/plx/internal/errors"
)

// The dirty set tracks unsaved grid edits for the selected dimension's
// values: one merged patch per row id. It is cleared on successful
// batch save, on discard, and whenever the dimension selection changes.

// MarkValueDirty folds a patch into the dirty entry for a row.
// Applying the same patch twice still yields a single entry.
func (s *Store) MarkValueDirty(valueID int, patch ValuePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty[valueID] = s.dirty[valueID].merge(patch)
}

// DirtyCount reports how many rows have unsaved edits
func (s *Store) DirtyCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.dirty)
}

// DirtyPatches returns a copy of the pending edits
func (s *Store) DirtyPatches() map[int]ValuePatch {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int]ValuePatch, len(s.dirty))
	for id, patch := range s.dirty {
		out[id] = patch
	}
	return out
}

// DiscardDirty drops all unsaved edits
func (s *Store) DiscardDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = map[int]ValuePatch{}
}

// SaveDirtyValues dispatches one PATCH per dirty row concurrently and
// tolerates partial failure: it returns how many rows failed rather
// than aborting the batch. The dirty set is cleared and the value cache
// reloaded from the server regardless of the failure count, so edits
// that failed to save are discarded rather than silently retried.
func (s *Store) SaveDirtyValues(ctx context.Context) (int, error) {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return 0, plxerrors.NewNotAuthenticatedError()
	}
	companyID := s.activeCompanyID
	dimensionID := s.selectedDimensionID
	entries := make(map[int]ValuePatch, len(s.dirty))
	for id, patch := range s.dirty {
		entries[id] = patch
	}
	s.mu.Unlock()

	if companyID == 0 {
		return 0, plxerrors.NewNoActiveCompanyError()
	}
	if dimensionID == 0 {
		return 0, plxerrors.New(plxerrors.ErrCodeNoDimension, "no dimension selected")
	}
	if len(entries) == 0 {
		return 0, nil
	}

	var (
		wg     sync.WaitGroup
		failMu sync.Mutex
		failed int
	)
	for valueID, patch := range entries {
		wg.Add(1)
		go func(valueID int, patch ValuePatch) {
			defer wg.Done()
			if _, err := s.UpdateDimensionValue(ctx, companyID, dimensionID, valueID, patch); err != nil {
				s.logger.WithError(err).Warn("dimension value save failed", "value_id", valueID)
				failMu.Lock()
				failed++
				failMu.Unlock()
			}
		}(valueID, patch)
	}
	wg.Wait()

	s.mu.Lock()
	s.dirty = map[int]ValuePatch{}
	s.mu.Unlock()

	// Reload the authoritative collection whether or not rows failed.
	if _, err := s.LoadDimensionValues(ctx, companyID, dimensionID); err != nil {
		return failed, err
	}
	return failed, nil
}
