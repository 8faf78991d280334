// Package cs implements the content store of the microservice: cached Data
// packets indexed by a name trie, with a capacity bound enforced by an LRU
// admission list. The trie itself is policy-free; every eviction is an
// explicit Remove decided here.
package cs

import (
	"errors"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/DOCTOR-ANR/NDN-microservices/internal/cs/nametree"
	"github.com/DOCTOR-ANR/NDN-microservices/internal/ndn/name"
)

// ErrInvalidCapacity is returned when a store is created with a
// non-positive capacity.
var ErrInvalidCapacity = errors.New("content store capacity must be positive")

// Entry is one cached Data packet.
type Entry struct {
	Name      name.Name
	Data      []byte
	CreatedAt time.Time
}

// Store is the mutex-guarded owner of the name trie. The trie performs
// multi-step mutations, so all access funnels through one lock.
type Store struct {
	mu        sync.Mutex
	tree      *nametree.Tree[Entry]
	admission *lru.Cache[string, name.Name]
	hits      uint64
	misses    uint64
}

// NewStore creates an empty content store holding at most capacity packets.
func NewStore(capacity int) (*Store, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	s := &Store{tree: nametree.New[Entry]()}

	// Admission list evictions run inside our own locked sections, so the
	// callback touches the tree directly.
	admission, err := lru.NewWithEvict(capacity, func(_ string, evicted name.Name) {
		s.tree.Remove(evicted)
	})
	if err != nil {
		return nil, err
	}
	s.admission = admission

	return s, nil
}

// Insert caches a Data packet, replacing any packet already stored under
// the same name. When the store is at capacity the least recently used
// packet is evicted to make room.
func (s *Store) Insert(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	s.tree.Insert(e.Name, &e, true)
	s.admission.Add(e.Name.Key(), e.Name)
}

// Remove drops the packet stored under exactly n, if any.
func (s *Store) Remove(n name.Name) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.admission.Remove(n.Key())
	s.tree.Remove(n)
}

// Get returns the packet stored under exactly n and refreshes its recency.
func (s *Store) Get(n name.Name) (*Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.tree.Find(n)
	if !ok {
		s.misses++
		return nil, false
	}
	s.hits++
	s.admission.Get(n.Key())
	return e, true
}

// Lookup matches an interest against the store. With canBePrefix the
// closest populated descendant of n is returned, biased to the rightmost
// sibling edge when requested (the NDN child selector); otherwise only an
// exact match satisfies the interest.
func (s *Store) Lookup(n name.Name, canBePrefix, rightmost bool) (*Entry, bool) {
	if !canBePrefix {
		return s.Get(n)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.tree.FindFirstPopulatedDescendant(n, rightmost)
	if !ok {
		s.misses++
		return nil, false
	}
	s.hits++
	s.admission.Get(m.Name.Key())
	return m.Value, true
}

// Len returns the number of cached packets.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.PopulatedCount()
}

// NodeCount returns the number of trie nodes, structural ones included.
func (s *Store) NodeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Size()
}

// Stats returns the cumulative lookup hit and miss counts.
func (s *Store) Stats() (hits, misses uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits, s.misses
}
