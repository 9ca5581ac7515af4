// Package runtime wires every leaf package of this module — corelog, the
// entity pools, the area manager, the event dispatcher, the tracking
// engine, the lifecycle facade, and the frame scheduler — into a single
// constructed value, the way the teacher's eventloop.NewLoop wires a Loop
// from its own LoopOption set (SPEC_FULL.md §4.K).
package runtime

import (
	"github.com/sqmodcore/host/abi"
	"github.com/sqmodcore/host/area"
	"github.com/sqmodcore/host/corelog"
	"github.com/sqmodcore/host/entity"
	"github.com/sqmodcore/host/event"
	"github.com/sqmodcore/host/lifecycle"
	"github.com/sqmodcore/host/scheduler"
	"github.com/sqmodcore/host/tracking"
)

// Runtime is the fully wired plugin core: every pool, the spatial index,
// the lifecycle facade, and the frame scheduler, constructed from a host
// adapter and a set of Options.
type Runtime struct {
	Host abi.HostFuncs

	Server *event.Target

	Players     *entity.Store
	Vehicles    *entity.Store
	Pickups     *entity.Store
	Objects     *entity.Store
	Checkpoints *entity.Store
	Blips       *entity.Store

	Areas     *area.Manager
	Lifecycle *lifecycle.Facade
	Tracking  *tracking.Engine
	Scheduler *scheduler.Scheduler

	rates *rateLimiter
}

// New constructs a Runtime against host, applying opts over the default
// configuration (pool capacities matching the real server, a discarding
// logger, generous flood-guard rates).
func New(host abi.HostFuncs, opts ...Option) *Runtime {
	cfg := resolveOptions(opts)

	if cfg.logger != nil {
		corelog.SetLogger(cfg.logger)
	}

	server := event.NewTarget()
	players := entity.NewStore(entity.PoolPlayers, cfg.playerCapacity)
	vehicles := entity.NewStore(entity.PoolVehicles, cfg.vehicleCapacity)
	pickups := entity.NewStore(entity.PoolPickups, cfg.pickupCapacity)
	objects := entity.NewStore(entity.PoolObjects, cfg.objectCapacity)
	checkpoints := entity.NewStore(entity.PoolCheckpoints, cfg.checkpointCapacity)
	blips := entity.NewStore(entity.PoolBlips, cfg.blipCapacity)
	areas := area.NewManager(cfg.gridReserve)

	lc := lifecycle.NewFacade(host, server, players, vehicles, pickups, objects, checkpoints, blips, areas)
	eng := tracking.NewEngine(host, players, vehicles, areas)
	sch := scheduler.New(eng, areas)
	rates := newRateLimiter(cfg)
	rates.Guard(server, func(ev *event.Event) (entity.Handle, bool) {
		type handled interface{ PlayerHandle() entity.Handle }
		if h, ok := ev.Detail.(handled); ok {
			return h.PlayerHandle(), true
		}
		return 0, false
	})

	return &Runtime{
		Host: host, Server: server,
		Players: players, Vehicles: vehicles, Pickups: pickups,
		Objects: objects, Checkpoints: checkpoints, Blips: blips,
		Areas: areas, Lifecycle: lc, Tracking: eng, Scheduler: sch,
		rates: rates,
	}
}

// AllowDiagnosticLog reports whether a diagnostic log line for a repeated
// EntityError of kind errKind from pool should be emitted now (SPEC_FULL.md
// §4.L item 1), throttling a misbehaving script's hot-path log spam.
func (rt *Runtime) AllowDiagnosticLog(pool entity.Pool, errKind string) bool {
	return rt.rates.AllowDiagnostic(pool, errKind)
}

// OnServerFrame forwards to the wired scheduler.
func (rt *Runtime) OnServerFrame(elapsedMs int64) {
	rt.Scheduler.OnServerFrame(elapsedMs)
}
