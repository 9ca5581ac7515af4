// Package entity implements the fixed-capacity entity pools of
// SPEC_FULL.md §4.C: six pools (players, vehicles, pickups, objects,
// checkpoints, blips), each a dense array of records addressed by a
// host-assigned handle, with an occupancy bitmap rather than the teacher's
// registry.go weak-pointer + ring-buffer scavenging — entity lifetime here
// is governed by the host (connect/disconnect, create/destroy), not the Go
// garbage collector, so there is nothing to scavenge: an unoccupied slot is
// simply free for the host to reuse.
package entity

import (
	"github.com/sqmodcore/host/area"
	"github.com/sqmodcore/host/event"
	"github.com/sqmodcore/host/guard"
	"github.com/sqmodcore/host/mathutil"
)

// Pool identifies one of the six fixed-capacity entity classes.
type Pool string

const (
	PoolPlayers     Pool = "players"
	PoolVehicles    Pool = "vehicles"
	PoolPickups     Pool = "pickups"
	PoolObjects     Pool = "objects"
	PoolCheckpoints Pool = "checkpoints"
	PoolBlips       Pool = "blips"
)

// Re-entrancy bits for the Record's per-instance guard field, scoped to the
// properties whose setters are also event sources (spec.md §4.D examples).
const (
	EmitPlayerWorld          guard.Bits = 1 << iota // position/world change
	EmitPlayerSkin                                  // model/skin change
	EmitVehiclePartStatus
	EmitCheckpointRadius
	EmitPickupAlpha
)

// TrackedValues is the tracking engine's "last sampled" snapshot
// (spec.md §3, §4.F): position, rotation (heading), health, armour,
// weapon, and the two paintjob colors.
type TrackedValues struct {
	Position       mathutil.Vector3
	Heading        float64
	Health         float64
	Armour         float64
	Weapon         int32
	PrimaryColor   mathutil.Color3
	SecondaryColor mathutil.Color3
}

// Record is the per-entity shadow state kept alongside the host's
// authoritative state, one per possible handle in a pool (spec.md §3).
type Record struct {
	Occupied bool
	Tag      string
	Data     any

	Events *event.Target

	Locks guard.Bits

	// pending holds property-set requests deferred because their bit was
	// already held when requested (see PropertySetter.Set) — the
	// per-record analogue of the area manager's deferred mutation queue.
	pending []func()

	// Tracking flags and counters (spec.md §4.F).
	AreaTrack     bool
	DistTrack     bool
	TrackPosition int32 // positive => emit position deltas; decremented as a one-shot budget
	TrackHeading  int32
	Distance      float64
	Last          TrackedValues

	// Areas currently containing this entity (spec.md §3: "set of areas
	// currently containing the entity"), keyed by area identity.
	Areas map[*area.Area]struct{}

	// Authority level and kick/ban staging (spec.md §3, §4.H).
	Authority     int32
	KickBanHeader string
	KickBanPayload string
}

func newRecord() *Record {
	return &Record{Events: event.NewTarget(), Areas: make(map[*area.Area]struct{})}
}

// reset clears a record back to its unoccupied zero state, preserving the
// allocated Events target and Areas map (reused, not reallocated, to avoid
// churn across the pool's lifetime) but emptying both.
func (r *Record) reset() {
	for k := range r.Areas {
		delete(r.Areas, k)
	}
	r.Tag = ""
	r.Data = nil
	r.Events.Clear()
	r.Locks = 0
	r.AreaTrack = false
	r.DistTrack = false
	r.TrackPosition = 0
	r.TrackHeading = 0
	r.Distance = 0
	r.Last = TrackedValues{}
	r.Authority = 0
	r.KickBanHeader = ""
	r.KickBanPayload = ""
	r.Occupied = false
}
