// Package tracking implements the per-frame sampling/diff-emission engine
// of SPEC_FULL.md §4.F: every server frame, occupied player and vehicle
// records with tracking flags set are re-sampled from the host, compared
// against their last-known values, and any change is emitted as a typed
// event before the last-known values are updated.
package tracking

import (
	"github.com/sqmodcore/host/abi"
	"github.com/sqmodcore/host/area"
	"github.com/sqmodcore/host/corelog"
	"github.com/sqmodcore/host/entity"
	"github.com/sqmodcore/host/event"
	"github.com/sqmodcore/host/mathutil"
)

// PositionDiff is the detail payload of a position_change event.
type PositionDiff struct{ Old, New mathutil.Vector3 }

// HeadingDiff is the detail payload of a heading_change event.
type HeadingDiff struct{ Old, New float64 }

// HealthDiff is the detail payload of a health_change event.
type HealthDiff struct{ Old, New float64 }

// ArmourDiff is the detail payload of an armour_change event.
type ArmourDiff struct{ Old, New float64 }

// WeaponDiff is the detail payload of a weapon_change event.
type WeaponDiff struct{ Old, New int32 }

// AreaTransition is the detail payload of enter_area/leave_area events.
type AreaTransition struct {
	Area  *area.Area
	Owner any
}

// Engine drives one RunFrame pass over the player and vehicle pools.
type Engine struct {
	host     abi.HostFuncs
	players  *entity.Store
	vehicles *entity.Store
	areas    *area.Manager
}

// NewEngine wires an Engine against the host adapter, the player and
// vehicle pools, and the spatial index.
func NewEngine(host abi.HostFuncs, players, vehicles *entity.Store, areas *area.Manager) *Engine {
	return &Engine{host: host, players: players, vehicles: vehicles, areas: areas}
}

// RunFrame performs one tracking pass: players before vehicles, ascending
// handle within each pool (spec.md §4.F's deterministic ordering). Errors
// from the host adapter for one entity are logged and do not abort the
// rest of the pass — a single misbehaving handle must not stall tracking
// for every other entity.
func (e *Engine) RunFrame() {
	e.players.Iterate(func(handle entity.Handle, r *entity.Record) bool {
		e.trackPlayer(handle, r)
		return true
	})
	e.vehicles.Iterate(func(handle entity.Handle, r *entity.Record) bool {
		e.trackVehicle(handle, r)
		return true
	})
}

func (e *Engine) trackPlayer(handle entity.Handle, r *entity.Record) {
	if !r.AreaTrack && !r.DistTrack && r.TrackPosition == 0 && r.TrackHeading == 0 {
		return
	}

	pos, err := e.host.GetPlayerPosition(handle)
	if err != nil {
		corelog.Warn(corelog.CategoryTracking).Str("pool", "players").Int("handle", int(handle)).Err(err).Log("sample position failed")
		return
	}
	heading, err := e.host.GetPlayerHeading(handle)
	if err != nil {
		corelog.Warn(corelog.CategoryTracking).Str("pool", "players").Int("handle", int(handle)).Err(err).Log("sample heading failed")
		return
	}
	health, _ := e.host.GetPlayerHealth(handle)
	armour, _ := e.host.GetPlayerArmour(handle)
	weapon, _ := e.host.GetPlayerWeapon(handle)

	e.diffPosition(r, handle, pos)
	e.diffHeading(r, handle, heading)
	if health != r.Last.Health {
		r.Events.Dispatch(event.NewEvent(event.KindHealthChange, HealthDiff{Old: r.Last.Health, New: health}))
	}
	r.Last.Health = health
	if armour != r.Last.Armour {
		r.Events.Dispatch(event.NewEvent(event.KindArmourChange, ArmourDiff{Old: r.Last.Armour, New: armour}))
	}
	r.Last.Armour = armour
	if weapon != r.Last.Weapon {
		r.Events.Dispatch(event.NewEvent(event.KindWeaponChange, WeaponDiff{Old: r.Last.Weapon, New: weapon}))
		r.Last.Weapon = weapon
	}

	if r.AreaTrack {
		e.retestAreas(r, pos)
	}
}

func (e *Engine) trackVehicle(handle entity.Handle, r *entity.Record) {
	if !r.AreaTrack && !r.DistTrack && r.TrackPosition == 0 {
		return
	}
	pos, err := e.host.GetVehiclePosition(handle)
	if err != nil {
		corelog.Warn(corelog.CategoryTracking).Str("pool", "vehicles").Int("handle", int(handle)).Err(err).Log("sample position failed")
		return
	}
	e.diffPosition(r, handle, pos)
	if r.AreaTrack {
		e.retestAreas(r, pos)
	}
}

// diffPosition computes the Euclidean delta from the last sampled
// position, accumulates Distance if DistTrack is set, and emits
// position_change if TrackPosition is active and the position actually
// moved — never for a no-op set to the same value (spec.md §8 round-trip
// invariant). A positive TrackPosition acts as a one-shot emission budget
// and is decremented after firing; it is left untouched when zero or
// negative (an always-on subscription has no budget to spend).
func (e *Engine) diffPosition(r *entity.Record, handle entity.Handle, pos mathutil.Vector3) {
	old := r.Last.Position
	if r.DistTrack {
		r.Distance += old.Distance(pos)
	}
	if pos != old && r.TrackPosition != 0 {
		r.Events.Dispatch(event.NewEvent(event.KindPositionChange, PositionDiff{Old: old, New: pos}))
		if r.TrackPosition > 0 {
			r.TrackPosition--
		}
	}
	r.Last.Position = pos
}

func (e *Engine) diffHeading(r *entity.Record, handle entity.Handle, heading float64) {
	old := r.Last.Heading
	if heading != old && r.TrackHeading != 0 {
		r.Events.Dispatch(event.NewEvent(event.KindHeadingChange, HeadingDiff{Old: old, New: heading}))
		if r.TrackHeading > 0 {
			r.TrackHeading--
		}
	}
	r.Last.Heading = heading
}

// retestAreas re-tests the entity's current position against the spatial
// index and emits enter_area/leave_area for the symmetric set difference
// against r.Areas, then updates r.Areas to the new containment set
// (spec.md §4.F step 5).
func (e *Engine) retestAreas(r *entity.Record, pos mathutil.Vector3) {
	current := make(map[*area.Area]any, len(r.Areas))
	e.areas.TestPoint(pos.X, pos.Z, func(a *area.Area, owner any) {
		current[a] = owner
	})

	for a := range r.Areas {
		if _, ok := current[a]; !ok {
			r.Events.Dispatch(event.NewEvent(event.KindLeaveArea, AreaTransition{Area: a}))
			delete(r.Areas, a)
		}
	}
	for a, owner := range current {
		if _, ok := r.Areas[a]; !ok {
			r.Events.Dispatch(event.NewEvent(event.KindEnterArea, AreaTransition{Area: a, Owner: owner}))
			r.Areas[a] = struct{}{}
		}
	}
}
