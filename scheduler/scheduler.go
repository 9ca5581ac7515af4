// Package scheduler implements the per-frame driver of SPEC_FULL.md §4.I:
// the single entry point the host calls once per server frame, which
// advances wall-clock bookkeeping, runs the tracking engine, and drains the
// area manager's deferred-mutation queue as a safety net.
package scheduler

import (
	"github.com/sqmodcore/host/area"
	"github.com/sqmodcore/host/corelog"
	"github.com/sqmodcore/host/tracking"
)

// Scheduler drives one on_server_frame(elapsed_ms) call per host frame.
type Scheduler struct {
	tracking *tracking.Engine
	areas    *area.Manager

	elapsedTotalMs int64
	frameCount     int64
}

// New wires a Scheduler against the tracking engine and the spatial index.
func New(tracking *tracking.Engine, areas *area.Manager) *Scheduler {
	return &Scheduler{tracking: tracking, areas: areas}
}

// OnServerFrame runs one scheduler pass: advance wall-clock counters, run
// the tracking engine, then drain any area-manager mutations that could not
// apply inline (spec.md §4.I). Queue drain here is a safety net only — the
// ordinary drain happens the instant a CellGuard releases — but a caller
// that holds a guard across a frame boundary (none of this module's own
// code does, but a future caller might) would otherwise leave the queue
// stuck until its next incidental release.
func (s *Scheduler) OnServerFrame(elapsedMs int64) {
	s.elapsedTotalMs += elapsedMs
	s.frameCount++

	s.tracking.RunFrame()
	s.areas.DrainQueue()

	corelog.Debug(corelog.CategoryScheduler).Int64("elapsed_ms", elapsedMs).Int64("frame", s.frameCount).Log("frame processed")
}

// ElapsedMs returns the cumulative elapsed time across every processed
// frame, the scheduler's own notion of wall-clock time independent of the
// host's GetTime.
func (s *Scheduler) ElapsedMs() int64 { return s.elapsedTotalMs }

// FrameCount returns the number of frames processed so far.
func (s *Scheduler) FrameCount() int64 { return s.frameCount }
