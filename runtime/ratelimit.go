package runtime

import (
	"time"

	"github.com/joeycumines/go-catrate"
	"github.com/sqmodcore/host/corelog"
	"github.com/sqmodcore/host/entity"
	"github.com/sqmodcore/host/event"
)

// rateLimiter bundles the two catrate.Limiter uses of SPEC_FULL.md §4.L:
// diagnostic log throttling per (pool, errorKind), and a vetoable flood
// guard per player handle over chat/command/private-message events.
type rateLimiter struct {
	diagnostic *catrate.Limiter
	flood      *catrate.Limiter
}

// diagnosticCategory is the catrate category key for EntityError log
// throttling: one bucket per (pool, error) pair.
type diagnosticCategory struct {
	Pool  entity.Pool
	Error string
}

// newLimiterOrNil constructs a catrate.Limiter, or leaves it nil when rates
// is empty — catrate.NewLimiter panics on an empty map, but a nil *Limiter
// is itself a valid "unlimited" receiver (its Allow always reports allowed).
func newLimiterOrNil(rates map[time.Duration]int) *catrate.Limiter {
	if len(rates) == 0 {
		return nil
	}
	return catrate.NewLimiter(rates)
}

func newRateLimiter(cfg *config) *rateLimiter {
	return &rateLimiter{
		diagnostic: newLimiterOrNil(cfg.diagnosticRates),
		flood:      newLimiterOrNil(cfg.floodRates),
	}
}

// AllowDiagnostic reports whether a diagnostic log line for (pool, errKind)
// should be emitted now, suppressing the flood of identical warnings a
// misbehaving script can generate by repeatedly hitting the same
// EntityError.
func (r *rateLimiter) AllowDiagnostic(pool entity.Pool, errKind string) bool {
	_, ok := r.diagnostic.Allow(diagnosticCategory{Pool: pool, Error: errKind})
	return ok
}

// floodGuardKinds is the set of event kinds subject to the per-player flood
// guard (SPEC_FULL.md §4.L item 2).
var floodGuardKinds = map[event.Kind]bool{
	event.KindPlayerMessage:        true,
	event.KindPlayerCommand:        true,
	event.KindPlayerPrivateMessage: true,
}

// Guard installs a listener on server that auto-vetoes flood-guarded events
// once a player's handle exceeds the configured rate, logging the
// suppression at Debug. It must be registered before any script listener so
// the veto takes effect before those listeners run.
func (r *rateLimiter) Guard(server *event.Target, handleOf func(*event.Event) (entity.Handle, bool)) {
	for kind := range floodGuardKinds {
		kind := kind
		server.On(kind, func(ev *event.Event) {
			handle, ok := handleOf(ev)
			if !ok {
				return
			}
			if _, allowed := r.flood.Allow(handle); !allowed {
				ev.Cancel = true
				corelog.Debug(corelog.CategoryEvent).Str("kind", string(kind)).Int("handle", int(handle)).Log("event flood-guard vetoed")
			}
		})
	}
}
