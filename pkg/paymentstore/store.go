// Package paymentstore keeps the payments read back from a fixture file, keyed by payment id.
// For each id only the most recent payment is stored, together with the number of times the id was seen.
// A count above one means the id is duplicated in the file.
// The store is thread safe.
package paymentstore

import (
	"fmt"
	"sort"
	"sync"
)

// Payment is a fixture row as alglobo reads it
type Payment struct {
	ID            int
	AirlineAmount float64
	HotelAmount   float64
}

type storeEntry struct {
	recent     Payment
	numUpdates int
}

// Store is the payment store
type Store struct {
	sync.RWMutex
	entry map[int]*storeEntry
}

// NewStore creates a new payment store
func NewStore() *Store {
	return &Store{
		entry: make(map[int]*storeEntry),
	}
}

// Write stores a payment, replacing an earlier payment with the same id
func (s *Store) Write(p Payment) {
	s.Lock()
	defer s.Unlock()

	e, ok := s.entry[p.ID]
	if !ok {
		e = &storeEntry{}
		s.entry[p.ID] = e
	}
	e.numUpdates++
	e.recent = p
}

// Read returns the most recent payment for id.
// In addition, it returns the number of writes for the id since the last call to Read().
// If the id was never written, an error is returned.
func (s *Store) Read(id int) (Payment, int, error) {
	s.Lock()
	defer s.Unlock()

	e, ok := s.entry[id]
	if !ok {
		return Payment{}, 0, fmt.Errorf("no payment with id %d", id)
	}
	numUpdates := e.numUpdates
	e.numUpdates = 0
	return e.recent, numUpdates, nil
}

// List returns all stored ids in ascending order
func (s *Store) List() []int {
	s.RLock()
	defer s.RUnlock()

	ids := make([]int, 0, len(s.entry))
	for id := range s.entry {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Len returns the number of distinct ids
func (s *Store) Len() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.entry)
}
