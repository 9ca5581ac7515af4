package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bitWorld Bits = 1 << 0

func TestAcquireReleaseClearsOnExit(t *testing.T) {
	var locks Bits
	g, ok := Acquire(&locks, bitWorld)
	require.True(t, ok)
	assert.True(t, locks.Held(bitWorld))
	g.Release()
	assert.False(t, locks.Held(bitWorld))
}

func TestAcquireFailsWhileHeld(t *testing.T) {
	var locks Bits
	g, ok := Acquire(&locks, bitWorld)
	require.True(t, ok)
	defer g.Release()

	_, ok2 := Acquire(&locks, bitWorld)
	assert.False(t, ok2, "recursive acquire of the same bit must fail")
}

func TestZeroGuardReleaseIsNoOp(t *testing.T) {
	var g Guard
	assert.NotPanics(t, func() { g.Release() })
}

func TestReleaseOnPanicPath(t *testing.T) {
	var locks Bits
	func() {
		g, ok := Acquire(&locks, bitWorld)
		require.True(t, ok)
		defer g.Release()
		defer func() { recover() }()
		panic("boom")
	}()
	assert.False(t, locks.Held(bitWorld), "bit must be clear after a panicking handler unwinds")
}
