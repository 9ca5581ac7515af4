package entity

import (
	"github.com/sqmodcore/host/abi"
	"github.com/sqmodcore/host/corelog"
)

// Handle is a small signed integer identifying a slot in a pool; validity
// is a function of occupancy, not of value. HandleInvalid is the sentinel
// for "no entity" (spec.md §3).
type Handle = int32

const HandleInvalid Handle = -1

// Store is one fixed-capacity pool: a dense array of Records addressed by
// handle, 1:1 with the host's own pool of the same capacity.
type Store struct {
	pool     Pool
	records  []Record
	occupied int // count of occupied slots, for diagnostics/tests only
}

// NewStore allocates a Store with capacity slots, all initially
// unoccupied. Capacity must match the host's pool capacity exactly
// (spec.md §3: "exact capacities are constants owned by the core and must
// match the host's capacities").
func NewStore(pool Pool, capacity int) *Store {
	s := &Store{pool: pool, records: make([]Record, capacity)}
	for i := range s.records {
		s.records[i] = *newRecord()
	}
	return s
}

// Capacity returns the fixed size of the pool.
func (s *Store) Capacity() int { return len(s.records) }

// Allocate marks handle occupied and resets its shadow state. Fails with
// PoolExhausted only in the sense that handle must be in range — for
// entities the host creates, the host has already chosen the handle
// (spec.md §4.C); an out-of-range handle from a confused caller is a
// programmer error surfaced the same way.
func (s *Store) Allocate(handle Handle) (*Record, error) {
	if handle < 0 || int(handle) >= len(s.records) {
		return nil, abi.Wrap(abi.ErrPoolExhausted, string(s.pool), handle, "Allocate")
	}
	r := &s.records[handle]
	if r.Occupied {
		return nil, abi.Wrap(abi.ErrArgumentOutOfBounds, string(s.pool), handle, "Allocate: already occupied")
	}
	r.reset()
	r.Occupied = true
	s.occupied++
	corelog.Debug(corelog.CategoryEntity).Str("pool", string(s.pool)).Int("handle", int(handle)).Log("allocated")
	return r, nil
}

// Get returns the record at handle if occupied, else ErrNoSuchEntity.
func (s *Store) Get(handle Handle) (*Record, error) {
	if handle < 0 || int(handle) >= len(s.records) {
		return nil, abi.Wrap(abi.ErrNoSuchEntity, string(s.pool), handle, "Get")
	}
	r := &s.records[handle]
	if !r.Occupied {
		return nil, abi.Wrap(abi.ErrNoSuchEntity, string(s.pool), handle, "Get")
	}
	return r, nil
}

// ReleaseFunc is invoked by Release with the record immediately before it
// is cleared, so the caller can emit the destroy event and unmanage any
// areas while the record's state (tag, data, areas) is still intact.
type ReleaseFunc func(r *Record)

// Release clears record state (areas first, then user-data, then
// listeners, then occupancy — spec.md §4.C/§4.H ordering), invoking before
// with the still-live record first so callers can run the destroy
// sequence (emit destroy event, unmanage areas) before state disappears.
func (s *Store) Release(handle Handle, before ReleaseFunc) error {
	r, err := s.Get(handle)
	if err != nil {
		return err
	}
	if before != nil {
		before(r)
	}
	r.reset()
	s.occupied--
	corelog.Debug(corelog.CategoryEntity).Str("pool", string(s.pool)).Int("handle", int(handle)).Log("released")
	return nil
}

// SetTag sets the record's user tag.
func (s *Store) SetTag(handle Handle, tag string) error {
	r, err := s.Get(handle)
	if err != nil {
		return err
	}
	r.Tag = tag
	return nil
}

// GetTag returns the record's user tag.
func (s *Store) GetTag(handle Handle) (string, error) {
	r, err := s.Get(handle)
	if err != nil {
		return "", err
	}
	return r.Tag, nil
}

// SetData sets the record's opaque script-owned data reference.
func (s *Store) SetData(handle Handle, data any) error {
	r, err := s.Get(handle)
	if err != nil {
		return err
	}
	r.Data = data
	return nil
}

// GetData returns the record's opaque script-owned data reference.
func (s *Store) GetData(handle Handle) (any, error) {
	r, err := s.Get(handle)
	if err != nil {
		return nil, err
	}
	return r.Data, nil
}

// Iterate calls fn for every occupied record, in ascending handle order
// (spec.md §4.F requires this ordering for the tracking pass; §4.C's
// general iterate inherits the same deterministic order). Iteration stops
// early if fn returns false.
func (s *Store) Iterate(fn func(handle Handle, r *Record) bool) {
	for i := range s.records {
		if !s.records[i].Occupied {
			continue
		}
		if !fn(Handle(i), &s.records[i]) {
			return
		}
	}
}

// Occupied returns the current count of occupied slots.
func (s *Store) Occupied() int { return s.occupied }
