package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/priceboard/backend/internal/domain"
)

// lastUpdatedLayout is the display format shown next to each supplier
// in the dashboard.
const lastUpdatedLayout = "02/01/2006 15:04"

// MemoryStore is a thread-safe in-memory supplier store. It stands in
// for the hosted document store the dashboard persists suppliers in.
type MemoryStore struct {
	suppliers map[string]domain.Supplier
	mutex     sync.RWMutex
	now       func() time.Time
}

// NewMemoryStore creates an empty in-memory supplier store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		suppliers: make(map[string]domain.Supplier),
		now:       time.Now,
	}
}

// List returns all suppliers ordered by name
func (s *MemoryStore) List(ctx context.Context) ([]domain.Supplier, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	suppliers := make([]domain.Supplier, 0, len(s.suppliers))
	for _, supplier := range s.suppliers {
		suppliers = append(suppliers, supplier)
	}

	sort.Slice(suppliers, func(i, j int) bool {
		return suppliers[i].Name < suppliers[j].Name
	})
	return suppliers, nil
}

// Get retrieves a supplier by id
func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.Supplier, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	supplier, exists := s.suppliers[id]
	if !exists {
		return nil, domain.ErrSupplierNotFound
	}
	return &supplier, nil
}

// Create stores a new supplier and stamps its last-update time
func (s *MemoryStore) Create(ctx context.Context, input domain.SupplierInput) (*domain.Supplier, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidRequest
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	supplier := domain.Supplier{
		ID:          uuid.NewString(),
		Name:        input.Name,
		RawListText: input.RawListText,
		LastUpdated: s.now().Format(lastUpdatedLayout),
	}
	s.suppliers[supplier.ID] = supplier
	return &supplier, nil
}

// Update replaces a supplier's name and raw list text and re-stamps it
func (s *MemoryStore) Update(ctx context.Context, id string, input domain.SupplierInput) (*domain.Supplier, error) {
	if input.Name == "" {
		return nil, domain.ErrInvalidRequest
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	supplier, exists := s.suppliers[id]
	if !exists {
		return nil, domain.ErrSupplierNotFound
	}

	supplier.Name = input.Name
	supplier.RawListText = input.RawListText
	supplier.LastUpdated = s.now().Format(lastUpdatedLayout)
	s.suppliers[id] = supplier
	return &supplier, nil
}

// Delete removes a supplier by id
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.suppliers[id]; !exists {
		return domain.ErrSupplierNotFound
	}
	delete(s.suppliers, id)
	return nil
}

// Size returns the current number of suppliers (for debugging/monitoring)
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.suppliers)
}
