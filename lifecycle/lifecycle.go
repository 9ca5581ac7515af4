// Package lifecycle implements the connect/disconnect and create/destroy
// sequencing of SPEC_FULL.md §4.H: the ordering guarantees around when a
// shadow entity.Record becomes visible to scripts relative to the events
// announcing it, and the staging of kick/ban reasons ahead of a host call
// that itself carries none.
package lifecycle

import (
	"github.com/sqmodcore/host/abi"
	"github.com/sqmodcore/host/area"
	"github.com/sqmodcore/host/corelog"
	"github.com/sqmodcore/host/entity"
	"github.com/sqmodcore/host/event"
)

// IncomingConnection is the detail payload of incoming_connection.
type IncomingConnection struct {
	Name     string
	IP       string
	Password string
}

// PlayerConnect is the detail payload of player_connect.
type PlayerConnect struct {
	Handle entity.Handle
	Name   string
}

// PlayerDisconnect is the detail payload of player_disconnect, carrying any
// kick/ban staging written by Kick/Ban before the host call.
type PlayerDisconnect struct {
	Handle     entity.Handle
	Reason     abi.DisconnectReason
	KickHeader string
	KickPayload string
}

// PoolChange is the detail payload of pool_change_create/pool_change_delete.
type PoolChange struct {
	Pool   entity.Pool
	Handle entity.Handle
}

// EntityLifecycle is the detail payload of the per-pool create/destroy
// events (vehicle, pickup, checkpoint, object), carrying the header/payload
// pair spec.md §4.H calls out explicitly.
type EntityLifecycle struct {
	Pool    entity.Pool
	Handle  entity.Handle
	Header  string
	Payload string
}

// Facade wires the host adapter, the server-wide event target, and every
// fixed-capacity pool into the connect/disconnect/create/destroy sequences.
// It holds no state of its own beyond these references — all mutable state
// lives in the entity.Store records and the area.Manager.
type Facade struct {
	Host   abi.HostFuncs
	Server *event.Target

	Players     *entity.Store
	Vehicles    *entity.Store
	Pickups     *entity.Store
	Objects     *entity.Store
	Checkpoints *entity.Store
	Blips       *entity.Store

	Areas *area.Manager
}

// NewFacade wires a Facade from its dependencies. Server is the event
// target on which connection-, pool-, and entity-lifecycle events are
// dispatched (distinct from each record's own per-entity event.Target,
// used for property-change events scoped to that one entity).
func NewFacade(host abi.HostFuncs, server *event.Target, players, vehicles, pickups, objects, checkpoints, blips *entity.Store, areas *area.Manager) *Facade {
	return &Facade{
		Host: host, Server: server,
		Players: players, Vehicles: vehicles, Pickups: pickups,
		Objects: objects, Checkpoints: checkpoints, Blips: blips,
		Areas: areas,
	}
}

// IncomingConnection is the veto point of spec.md §4.H step 1: dispatched
// before any record exists, so listeners can only reason about name/ip/
// password, never about shadow state. Returns false (reject) if any
// listener cancels.
func (f *Facade) IncomingConnection(name, ip, password string) bool {
	ev := event.NewEvent(event.KindIncomingConnection, IncomingConnection{Name: name, IP: ip, Password: password})
	canceled := f.Server.Dispatch(ev)
	return !canceled
}

// PlayerConnect implements spec.md §4.H steps 2-3: the record is allocated
// and fully initialised (Allocate resets tag, event table, tracking
// last-values) before player_connect is dispatched, so a listener handed
// this event always sees a live record for handle.
func (f *Facade) PlayerConnect(handle entity.Handle, name string) (*entity.Record, error) {
	r, err := f.Players.Allocate(handle)
	if err != nil {
		return nil, err
	}
	r.Tag = name
	corelog.Info(corelog.CategoryLifecycle).Int("handle", int(handle)).Str("name", name).Log("player connected")
	f.Server.Dispatch(event.NewEvent(event.KindPlayerConnect, PlayerConnect{Handle: handle, Name: name}))
	return r, nil
}

// PlayerDisconnect implements spec.md §4.H's disconnect ordering:
// player_disconnect is emitted with the record still fully live (including
// any staged kick/ban header/payload), then the record is cleared — areas
// first, then user-data, then the occupancy bit, all handled by
// entity.Store.Release's own internal ordering.
func (f *Facade) PlayerDisconnect(handle entity.Handle, reason abi.DisconnectReason) error {
	return f.Players.Release(handle, func(r *entity.Record) {
		f.Server.Dispatch(event.NewEvent(event.KindPlayerDisconnect, PlayerDisconnect{
			Handle: handle, Reason: reason,
			KickHeader: r.KickBanHeader, KickPayload: r.KickBanPayload,
		}))
		f.unmanageRecordAreas(r)
		corelog.Info(corelog.CategoryLifecycle).Int("handle", int(handle)).Int("reason", int(reason)).Log("player disconnected")
	})
}

// Kick stages header/payload into the player's record (read back by the
// subsequent PlayerDisconnect call, since KickPlayer itself carries no
// reason) and asks the host to kick.
func (f *Facade) Kick(handle entity.Handle, header, payload string) error {
	r, err := f.Players.Get(handle)
	if err != nil {
		return err
	}
	r.KickBanHeader = header
	r.KickBanPayload = payload
	return f.Host.KickPlayer(handle)
}

// Ban is Kick's ban-reason counterpart.
func (f *Facade) Ban(handle entity.Handle, header, payload string) error {
	r, err := f.Players.Get(handle)
	if err != nil {
		return err
	}
	r.KickBanHeader = header
	r.KickBanPayload = payload
	return f.Host.BanPlayer(handle)
}

func (f *Facade) unmanageRecordAreas(r *entity.Record) {
	for a := range r.Areas {
		delete(r.Areas, a)
	}
}

// storeFor maps a Pool to its Store, used by the generic create/destroy
// helpers below.
func (f *Facade) storeFor(pool entity.Pool) *entity.Store {
	switch pool {
	case entity.PoolVehicles:
		return f.Vehicles
	case entity.PoolPickups:
		return f.Pickups
	case entity.PoolObjects:
		return f.Objects
	case entity.PoolCheckpoints:
		return f.Checkpoints
	case entity.PoolBlips:
		return f.Blips
	default:
		return nil
	}
}

// createKind maps a Pool to its entity-specific create event.Kind.
func createKind(pool entity.Pool) event.Kind {
	switch pool {
	case entity.PoolVehicles:
		return event.KindVehicleRespawn // closest "this vehicle now exists" signal in the teacher-style naming
	case entity.PoolPickups:
		return event.KindPickupRespawn
	case entity.PoolCheckpoints:
		return event.KindCheckpointEnter
	default:
		return event.Kind(string(pool) + "_create")
	}
}

// destroyKind maps a Pool to its entity-specific destroy event.Kind.
func destroyKind(pool entity.Pool) event.Kind {
	return event.Kind(string(pool) + "_destroy")
}

// CreateEntity implements spec.md §4.H's create sequence for vehicles,
// pickups, objects, and checkpoints: the host allocates the handle first,
// then the facade allocates the matching shadow record and emits
// pool_change_create followed by the entity-specific create event, in that
// order — both events see a live record.
func (f *Facade) CreateEntity(pool entity.Pool, handle entity.Handle, header, payload string) (*entity.Record, error) {
	s := f.storeFor(pool)
	r, err := s.Allocate(handle)
	if err != nil {
		return nil, err
	}
	corelog.Debug(corelog.CategoryLifecycle).Str("pool", string(pool)).Int("handle", int(handle)).Log("entity created")
	f.Server.Dispatch(event.NewEvent(event.KindPoolChangeCreate, PoolChange{Pool: pool, Handle: handle}))
	f.Server.Dispatch(event.NewEvent(createKind(pool), EntityLifecycle{Pool: pool, Handle: handle, Header: header, Payload: payload}))
	return r, nil
}

// DestroyEntity implements spec.md §4.H's destroy sequence: the
// entity-specific destroy event fires first (record still live), then
// pool_change_delete, then the shadow record is freed, and only then is the
// host asked to delete the entity — so a listener reacting to either event
// can still query the shadow record.
func (f *Facade) DestroyEntity(pool entity.Pool, handle entity.Handle, header, payload string) error {
	s := f.storeFor(pool)
	if _, err := s.Get(handle); err != nil {
		return err
	}
	f.Server.Dispatch(event.NewEvent(destroyKind(pool), EntityLifecycle{Pool: pool, Handle: handle, Header: header, Payload: payload}))
	f.Server.Dispatch(event.NewEvent(event.KindPoolChangeDelete, PoolChange{Pool: pool, Handle: handle}))
	if err := s.Release(handle, f.unmanageRecordAreas); err != nil {
		return err
	}
	return f.hostDelete(pool, handle)
}

func (f *Facade) hostDelete(pool entity.Pool, handle entity.Handle) error {
	switch pool {
	case entity.PoolVehicles:
		return f.Host.DeleteVehicle(handle)
	case entity.PoolPickups:
		return f.Host.DeletePickup(handle)
	case entity.PoolObjects:
		return f.Host.DeleteObject(handle)
	case entity.PoolCheckpoints:
		return f.Host.DeleteCheckpoint(handle)
	default:
		return nil
	}
}
