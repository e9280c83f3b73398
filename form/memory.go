package form

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/SRSager/bucks-county-fence/models"
)

// MemoryStorage keeps serialized records in a process-local map. It is
// the fallback when no database is configured and the backend of choice
// in tests.
type MemoryStorage struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{records: map[string][]byte{}}
}

func (m *MemoryStorage) Load(ctx context.Context, key string) (*models.Lead, error) {
	m.mu.RLock()
	raw, ok := m.records[key]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var lead models.Lead
	if err := json.Unmarshal(raw, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (m *MemoryStorage) Save(ctx context.Context, key string, lead models.Lead) error {
	raw, err := json.Marshal(lead)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.records[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.records, key)
	m.mu.Unlock()
	return nil
}

var _ Storage = (*MemoryStorage)(nil)
