package entity

import (
	"github.com/sqmodcore/host/event"
	"github.com/sqmodcore/host/guard"
)

// PropertyDiff is the generic before/after payload dispatched by
// PropertySetter.Set (spec.md §4.D).
type PropertyDiff[T any] struct {
	Old, New T
}

// PropertySetter wraps a single mutable property whose setter doubles as an
// event source, generalizing the teacher's scoped-bitflag re-entrancy guard
// (guard.Bits) around "set field, emit before/after event" (spec.md §4.C,
// §4.D): test bit, set bit, call the host setter, emit the change event,
// clear the bit on scope exit.
//
// A Set call made while the bit is already held — a script handler invoked
// synchronously from the event dispatch of an in-flight Set on the same
// property — is not run nested. It is deferred onto the record's pending
// queue and runs once the in-flight Set's guard releases, so a handler that
// sets World to 7 upon observing World change to 5 sees its own (5,7)
// transition dispatched strictly after (1,5) finishes, never nested inside
// it (seed scenario 3).
type PropertySetter[T comparable] struct {
	Bit   guard.Bits
	Kind  event.Kind
	Get   func() T
	Apply func(T) error
}

// Set applies new_ if it differs from the property's current value,
// dispatching Kind with a PropertyDiff[T] detail. Setting a property to its
// current value is a no-op: no host call, no event, no guard bit raised
// (spec.md §8's "set to same value" invariant).
func (p PropertySetter[T]) Set(r *Record, new_ T) error {
	old := p.Get()
	if old == new_ {
		return nil
	}
	if r.Locks.Held(p.Bit) {
		r.pending = append(r.pending, func() { _ = p.Set(r, new_) })
		return nil
	}
	g, _ := guard.Acquire(&r.Locks, p.Bit)
	defer func() {
		g.Release()
		r.drainPending()
	}()
	if err := p.Apply(new_); err != nil {
		return err
	}
	r.Events.Dispatch(event.NewEvent(p.Kind, PropertyDiff[T]{Old: old, New: new_}))
	return nil
}

// drainPending runs every property-set request queued while some bit was
// held, in FIFO order. A request whose bit is still held (a different
// in-flight property) re-queues itself rather than running nested, mirroring
// area.Manager.procQueue's ready/not-ready split.
func (r *Record) drainPending() {
	if len(r.pending) == 0 {
		return
	}
	pending := r.pending
	r.pending = nil
	for _, fn := range pending {
		fn()
	}
}
