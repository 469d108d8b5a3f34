package catalog

import (
	"sync"

	"go.uber.org/zap"

	"ShopKart/internal/storage"
)

// Store owns the product catalog. Products keep insertion order; the whole
// list is persisted to the catalog slot after every mutation.
//
// Update and Delete of an unknown id are silent no-ops. That is the
// documented contract, not an oversight: the admin surface favors
// availability over strictness.
type Store struct {
	log   *zap.Logger
	slots storage.Slots

	mu       sync.RWMutex
	products []Product
}

func NewStore(slots storage.Slots, log *zap.Logger) *Store {
	s := &Store{log: log, slots: slots}

	var loaded []Product
	found, err := slots.Load(storage.SlotCatalog, &loaded)
	if err != nil {
		log.Warn("catalog slot unreadable, reseeding", zap.Error(err))
	}

	if found && err == nil {
		s.products = loaded
		return s
	}

	// First run (or corrupt slot): seed and persist immediately so
	// subsequent loads are stable.
	s.products = SeedProducts()
	s.persist()
	return s
}

func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Get(id int) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func (s *Store) Add(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, p)
	s.persist()
}

func (s *Store) Update(id int, p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i] = p
			s.persist()
			return
		}
	}
}

func (s *Store) Delete(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persist()
			return
		}
	}
}

// persist must be called with s.mu held. Save failures are logged and do not
// fail the mutation; in-memory state is the source of truth for the run.
func (s *Store) persist() {
	if err := s.slots.Save(storage.SlotCatalog, s.products); err != nil {
		s.log.Error("persist catalog failed", zap.Error(err))
	}
}
