package listing

import "fmt"

// Store is read-only access to the authoritative, ordered set of listings.
type Store interface {
	// All returns every listing in insertion order.
	All() []Listing
	// FindByID returns the listing with the given ID and whether it exists.
	FindByID(id int64) (Listing, bool)
	// ValidTypes returns the property types listings may have.
	ValidTypes() []PropertyType
}

// Lister is a backing source that can produce the full listing collection.
type Lister interface {
	List() ([]Listing, error)
}

// MemoryStore is a Store over a fixed, in-memory collection.
// It is never modified after construction, so concurrent readers need no locking.
type MemoryStore struct {
	listings []Listing
	byID     map[int64]int
}

// NewMemoryStore creates a store holding a copy of listings.
// Listings are expected to have unique IDs; if an ID repeats, FindByID
// returns the first occurrence.
func NewMemoryStore(listings []Listing) *MemoryStore {
	s := &MemoryStore{
		listings: make([]Listing, len(listings)),
		byID:     make(map[int64]int, len(listings)),
	}
	for i, l := range listings {
		s.listings[i] = l.clone()
		if _, ok := s.byID[l.ID]; !ok {
			s.byID[l.ID] = i
		}
	}
	return s
}

// LoadStore reads the full collection from src into a MemoryStore.
func LoadStore(src Lister) (*MemoryStore, error) {
	listings, err := src.List()
	if err != nil {
		return nil, fmt.Errorf("loading listings: %w", err)
	}
	return NewMemoryStore(listings), nil
}

// All returns a copy of every listing in insertion order.
func (s *MemoryStore) All() []Listing {
	out := make([]Listing, len(s.listings))
	for i, l := range s.listings {
		out[i] = l.clone()
	}
	return out
}

// FindByID returns the listing with the given ID.
func (s *MemoryStore) FindByID(id int64) (Listing, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Listing{}, false
	}
	return s.listings[i].clone(), true
}

// ValidTypes returns the known property types.
func (s *MemoryStore) ValidTypes() []PropertyType {
	return Types()
}

// Len returns the number of listings in the store.
func (s *MemoryStore) Len() int {
	return len(s.listings)
}
