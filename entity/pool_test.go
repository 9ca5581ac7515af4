package entity

import (
	"errors"
	"testing"

	"github.com/sqmodcore/host/abi"
	"github.com/sqmodcore/host/area"
	"github.com/sqmodcore/host/event"
	"github.com/sqmodcore/host/mathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateGetRelease(t *testing.T) {
	s := NewStore(PoolPlayers, 4)
	r, err := s.Allocate(1)
	require.NoError(t, err)
	r.Tag = "alice"
	assert.Equal(t, 1, s.Occupied())

	got, err := s.Get(1)
	require.NoError(t, err)
	assert.Same(t, r, got)

	var releasedTag string
	err = s.Release(1, func(rec *Record) { releasedTag = rec.Tag })
	require.NoError(t, err)
	assert.Equal(t, "alice", releasedTag)
	assert.Equal(t, 0, s.Occupied())

	_, err = s.Get(1)
	assert.True(t, errors.Is(err, abi.ErrNoSuchEntity))
}

func TestAllocateOutOfRangeIsPoolExhausted(t *testing.T) {
	s := NewStore(PoolPlayers, 2)
	_, err := s.Allocate(5)
	assert.True(t, errors.Is(err, abi.ErrPoolExhausted))
}

func TestOccupancyIsExclusive(t *testing.T) {
	s := NewStore(PoolPlayers, 2)
	_, err := s.Allocate(0)
	require.NoError(t, err)
	_, err = s.Allocate(0)
	assert.Error(t, err, "double allocate of the same handle must fail")
}

func TestIterateYieldsOnlyOccupiedInAscendingOrder(t *testing.T) {
	s := NewStore(PoolPlayers, 5)
	_, _ = s.Allocate(3)
	_, _ = s.Allocate(1)
	_, _ = s.Allocate(4)

	var seen []Handle
	s.Iterate(func(h Handle, r *Record) bool {
		seen = append(seen, h)
		return true
	})
	assert.Equal(t, []Handle{1, 3, 4}, seen)
}

func TestReleaseClearsAreasTagDataListeners(t *testing.T) {
	s := NewStore(PoolPlayers, 2)
	r, err := s.Allocate(0)
	require.NoError(t, err)
	r.Tag = "bob"
	r.Data = struct{}{}
	r.Areas[area.NewArea("zone")] = struct{}{}
	r.Events.On(event.KindPlayerSpawn, func(*event.Event) {})

	require.NoError(t, s.Release(0, nil))

	r2, err := s.Allocate(0)
	require.NoError(t, err)
	assert.Empty(t, r2.Tag)
	assert.Nil(t, r2.Data)
	assert.Empty(t, r2.Areas)
	assert.False(t, r2.Events.HasListeners(event.KindPlayerSpawn))
}

func TestPositionRoundTripIsNamedFieldNotPositional(t *testing.T) {
	// Regression test for spec.md §9's "SetPositionZ passes (z,y,z)" typo
	// class of bug: this module's records store a mathutil.Vector3 and
	// every assignment is by field name, so there is no positional triple
	// to transpose.
	s := NewStore(PoolPlayers, 1)
	r, err := s.Allocate(0)
	require.NoError(t, err)

	want := mathutil.Vector3{X: 1, Y: 2, Z: 3}
	r.Last.Position = want
	assert.Equal(t, want, r.Last.Position)
}
