package tracking

import (
	"testing"

	"github.com/sqmodcore/host/abi"
	"github.com/sqmodcore/host/area"
	"github.com/sqmodcore/host/entity"
	"github.com/sqmodcore/host/event"
	"github.com/sqmodcore/host/mathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Seed scenario 4 (spec.md §8.4): area enter/leave across a frame.
func TestAreaEnterLeaveAcrossFrames(t *testing.T) {
	host := abi.NewFake()
	host.AddPlayer(1, "alice")

	players := entity.NewStore(entity.PoolPlayers, 8)
	vehicles := entity.NewStore(entity.PoolVehicles, 8)
	areas := area.NewManager(4)

	zone := area.NewTriangle(area.Point2{X: 0, Y: -1000}, area.Point2{X: 1000, Y: -1000}, area.Point2{X: 1000, Y: 1000})
	_ = zone.AddPointEx(0, 1000)
	areas.Manage(zone, "owner")

	rec, err := players.Allocate(1)
	require.NoError(t, err)
	rec.AreaTrack = true

	var entered, left int
	rec.Events.On(event.KindEnterArea, func(*event.Event) { entered++ })
	rec.Events.On(event.KindLeaveArea, func(*event.Event) { left++ })

	eng := NewEngine(host, players, vehicles, areas)

	require.NoError(t, host.SetPlayerPosition(1, mathutil.Vector3{X: -1, Y: 0, Z: 0}))
	eng.RunFrame()
	assert.Equal(t, 0, entered)

	require.NoError(t, host.SetPlayerPosition(1, mathutil.Vector3{X: 1, Y: 0, Z: 0}))
	eng.RunFrame()
	assert.Equal(t, 1, entered)
	assert.Equal(t, 0, left)

	require.NoError(t, host.SetPlayerPosition(1, mathutil.Vector3{X: -1, Y: 0, Z: 0}))
	eng.RunFrame()
	assert.Equal(t, 1, entered)
	assert.Equal(t, 1, left)
}

func TestNoChangeEventOnUnmovedPosition(t *testing.T) {
	host := abi.NewFake()
	host.AddPlayer(1, "alice")
	players := entity.NewStore(entity.PoolPlayers, 8)
	vehicles := entity.NewStore(entity.PoolVehicles, 8)
	areas := area.NewManager(4)

	rec, err := players.Allocate(1)
	require.NoError(t, err)
	rec.TrackPosition = -1 // always-on subscription, no budget

	var fired int
	rec.Events.On(event.KindPositionChange, func(*event.Event) { fired++ })

	eng := NewEngine(host, players, vehicles, areas)
	eng.RunFrame()
	eng.RunFrame()
	assert.Equal(t, 0, fired, "position never changed; no event should fire")
}

func TestPositionChangeBudgetDecrements(t *testing.T) {
	host := abi.NewFake()
	host.AddPlayer(1, "alice")
	players := entity.NewStore(entity.PoolPlayers, 8)
	vehicles := entity.NewStore(entity.PoolVehicles, 8)
	areas := area.NewManager(4)

	rec, err := players.Allocate(1)
	require.NoError(t, err)
	rec.TrackPosition = 1

	var fired int
	rec.Events.On(event.KindPositionChange, func(*event.Event) { fired++ })

	eng := NewEngine(host, players, vehicles, areas)
	require.NoError(t, host.SetPlayerPosition(1, mathutil.Vector3{X: 1}))
	eng.RunFrame()
	assert.Equal(t, 1, fired)
	assert.Equal(t, int32(0), rec.TrackPosition)

	require.NoError(t, host.SetPlayerPosition(1, mathutil.Vector3{X: 2}))
	eng.RunFrame()
	assert.Equal(t, 1, fired, "budget exhausted, no further emission")
}

func TestDistanceAccumulates(t *testing.T) {
	host := abi.NewFake()
	host.AddPlayer(1, "alice")
	players := entity.NewStore(entity.PoolPlayers, 8)
	vehicles := entity.NewStore(entity.PoolVehicles, 8)
	areas := area.NewManager(4)

	rec, err := players.Allocate(1)
	require.NoError(t, err)
	rec.DistTrack = true

	eng := NewEngine(host, players, vehicles, areas)
	eng.RunFrame()
	require.NoError(t, host.SetPlayerPosition(1, mathutil.Vector3{X: 3, Y: 0, Z: 4}))
	eng.RunFrame()
	assert.InDelta(t, 5.0, rec.Distance, 1e-9)
}
