package abi

import (
	"errors"
	"testing"

	"github.com/sqmodcore/host/mathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeNoSuchEntityIsComparable(t *testing.T) {
	f := NewFake()
	_, err := f.GetPlayerPosition(7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSuchEntity))

	var ce *CoreError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "player", ce.Pool)
	assert.Equal(t, int32(7), ce.Handle)
}

func TestFakePlayerPositionRoundTrip(t *testing.T) {
	f := NewFake()
	f.AddPlayer(1, "alice")
	want := mathutil.Vector3{X: 1, Y: 2, Z: 3}
	require.NoError(t, f.SetPlayerPosition(1, want))
	got, err := f.GetPlayerPosition(1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFakeSetPlayerNameRejectsEmpty(t *testing.T) {
	f := NewFake()
	f.AddPlayer(1, "alice")
	err := f.SetPlayerName(1, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidName))
}
