// Package guard implements the scoped re-entrancy bit guard of SPEC_FULL.md
// §4.D, generalized from the teacher's FastState CAS state machine: because
// the runtime guarantees exactly one goroutine ever touches a record's
// state (SPEC_FULL.md §5), the atomic, cache-line-padded machinery is
// unneeded here — a plain bitfield with scoped acquire/release suffices.
package guard

// Bits is the per-entity-class re-entrancy bitfield (examples:
// EMIT_PLAYER_WORLD, EMIT_PLAYER_SKIN, EMIT_VEHICLE_PARTSTATUS,
// EMIT_CHECKPOINT_RADIUS, EMIT_PICKUP_ALPHA, per spec.md §4.D).
type Bits uint32

// Held reports whether bit is currently set.
func (b Bits) Held(bit Bits) bool {
	return b&bit != 0
}

// Guard is a scoped acquisition of one bit in a Bits field, set on
// construction and cleared on Release — the Go analogue of
// `BitGuardU32 bg(m_CircularLocks, BIT)`. Release must be called on every
// exit path, including via a deferred call, so a recursive setter observes
// the bit as held and a panicking handler still clears it.
type Guard struct {
	field *Bits
	bit   Bits
}

// Acquire reports whether bit was free on field and, if so, sets it and
// returns a Guard whose Release clears it. If bit was already held, Acquire
// returns (Guard{}, false) and the caller must skip the recursive
// operation rather than call Release.
func Acquire(field *Bits, bit Bits) (Guard, bool) {
	if field.Held(bit) {
		return Guard{}, false
	}
	*field |= bit
	return Guard{field: field, bit: bit}, true
}

// Release clears the guarded bit. Safe to call on the zero Guard (a no-op).
func (g Guard) Release() {
	if g.field == nil {
		return
	}
	*g.field &^= g.bit
}
