package ui

import (
	"sync"
	"time"

	"datareport/domain/core"
	"datareport/domain/table"

	"github.com/google/uuid"
)

// Dataset is one uploaded table held for the life of the process. There is
// no persistence across restarts; each upload gets a fresh ID.
//
// Imputation mutates the table's column slices in place while other
// handlers read them, so every access to Table must hold mu: read lock
// for statistics, charts, and report runs, write lock for imputation.
type Dataset struct {
	ID         string
	Filename   string
	Table      *table.Table
	UploadedAt time.Time

	mu sync.RWMutex
}

// DatasetStore is an in-memory, process-local dataset registry.
type DatasetStore struct {
	mu       sync.RWMutex
	datasets map[string]*Dataset
}

// NewDatasetStore creates an empty store.
func NewDatasetStore() *DatasetStore {
	return &DatasetStore{datasets: make(map[string]*Dataset)}
}

// Put registers a table under a fresh ID and returns the dataset.
func (s *DatasetStore) Put(filename string, t *table.Table) *Dataset {
	ds := &Dataset{
		ID:         uuid.NewString(),
		Filename:   filename,
		Table:      t,
		UploadedAt: time.Now(),
	}
	s.mu.Lock()
	s.datasets[ds.ID] = ds
	s.mu.Unlock()
	return ds
}

// Get looks up a dataset by ID.
func (s *DatasetStore) Get(id string) (*Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, ok := s.datasets[id]
	if !ok {
		return nil, core.ErrDatasetNotFound
	}
	return ds, nil
}

// Delete removes a dataset.
func (s *DatasetStore) Delete(id string) {
	s.mu.Lock()
	delete(s.datasets, id)
	s.mu.Unlock()
}
