package store

import (
	"sync/atomic"

	"github.com/mmdatafocus/tracking_backend/fixtures"
	"github.com/mmdatafocus/tracking_backend/models"
)

// RecordStore holds the current fixture table behind an atomic pointer.
// Replace swaps the whole table; readers that take a Snapshot keep seeing
// the table they loaded even if a Replace lands mid-request.
type RecordStore struct {
	table atomic.Pointer[fixtures.Table]
}

// New returns an empty store.
func New() *RecordStore {
	s := &RecordStore{}
	s.table.Store(fixtures.NewTable())
	return s
}

// Snapshot returns the current table. Callers must treat it as read-only.
func (s *RecordStore) Snapshot() *fixtures.Table {
	return s.table.Load()
}

// Replace installs t as the current table. A nil t empties the store.
func (s *RecordStore) Replace(t *fixtures.Table) {
	if t == nil {
		t = fixtures.NewTable()
	}
	s.table.Store(t)
}

func (s *RecordStore) Lookup(pin string) (models.ShipmentScan, bool) {
	return s.Snapshot().Get(pin)
}

func (s *RecordStore) AllKeys() []string {
	return s.Snapshot().Keys()
}

func (s *RecordStore) Len() int {
	return s.Snapshot().Len()
}
