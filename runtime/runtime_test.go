package runtime

import (
	"testing"
	"time"

	"github.com/sqmodcore/host/abi"
	"github.com/sqmodcore/host/event"
	"github.com/sqmodcore/host/mathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesCapacityOptions(t *testing.T) {
	rt := New(abi.NewFake(), WithPlayerCapacity(4), WithVehicleCapacity(2))
	assert.Equal(t, 4, rt.Players.Capacity())
	assert.Equal(t, 2, rt.Vehicles.Capacity())
}

func TestNewDefaultsMatchRealServerCapacities(t *testing.T) {
	rt := New(abi.NewFake())
	assert.Equal(t, 100, rt.Players.Capacity())
	assert.Equal(t, 50, rt.Vehicles.Capacity())
	assert.Equal(t, 64, rt.Pickups.Capacity())
	assert.Equal(t, 256, rt.Objects.Capacity())
	assert.Equal(t, 64, rt.Checkpoints.Capacity())
	assert.Equal(t, 64, rt.Blips.Capacity())
}

func TestOnServerFrameRunsTracking(t *testing.T) {
	host := abi.NewFake()
	host.AddPlayer(0, "alice")
	rt := New(host, WithPlayerCapacity(2))

	rec, err := rt.Lifecycle.PlayerConnect(0, "alice")
	require.NoError(t, err)
	rec.TrackPosition = -1

	var fired int
	rec.Events.On(event.KindPositionChange, func(*event.Event) { fired++ })

	rt.OnServerFrame(16)
	assert.Equal(t, 0, fired)

	require.NoError(t, host.SetPlayerPosition(0, mathutil.Vector3{X: 1}))
	rt.OnServerFrame(16)
	assert.Equal(t, 1, fired)
}

func TestFloodGuardVetoesOverLimitMessages(t *testing.T) {
	rt := New(abi.NewFake(), WithRateLimiter(nil, map[time.Duration]int{time.Second: 1}))

	var listenerRuns int
	rt.Server.On(event.KindPlayerMessage, func(*event.Event) { listenerRuns++ })

	ev1 := event.NewEvent(event.KindPlayerMessage, playerHandleDetail{handle: 1})
	rt.Server.Dispatch(ev1)
	assert.False(t, ev1.Cancel, "first message within the window must not be vetoed")
	assert.Equal(t, 1, listenerRuns)

	ev2 := event.NewEvent(event.KindPlayerMessage, playerHandleDetail{handle: 1})
	rt.Server.Dispatch(ev2)
	assert.True(t, ev2.Cancel, "second message within the same window must be vetoed")
	assert.Equal(t, 1, listenerRuns, "the script listener must not run once the flood guard vetoes")
}

type playerHandleDetail struct{ handle int32 }

func (d playerHandleDetail) PlayerHandle() int32 { return d.handle }
