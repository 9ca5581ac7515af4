package area

// areaEntry pairs an area with an opaque owner reference (the script-side
// object keeping it alive), matching AreaCell::AreaPair in the original.
type areaEntry struct {
	area  *Area
	owner any
}

// Cell is one tile of the 16×16 world grid: a fixed bounding box, the list
// of (area, owner) pairs currently intersecting it, and a lock counter —
// a depth, not a boolean, so nested test_point calls on the same cell
// (re-entrant script callbacks) are supported (spec.md §3).
type Cell struct {
	L, B, R, T float64
	areas      []areaEntry
	locks      int
}

// Locked reports whether the cell currently has any outstanding guard.
func (c *Cell) Locked() bool {
	return c.locks > 0
}

// Len returns the number of areas currently listed in the cell.
func (c *Cell) Len() int {
	return len(c.areas)
}

// CellGuard is a scoped lock acquisition on a Cell, incrementing its lock
// counter on construction and decrementing (then draining the manager's
// deferred queue) on Release — the Go analogue of the original's
// `CellGuard cg(cell)` RAII helper. Nesting is supported: the counter, not
// a boolean, is the source of truth.
type CellGuard struct {
	mgr  *Manager
	cell *Cell
}

func newCellGuard(mgr *Manager, c *Cell) CellGuard {
	c.locks++
	return CellGuard{mgr: mgr, cell: c}
}

// Release decrements the cell's lock counter and, if it reaches zero,
// drains the manager's deferred mutation queue.
func (g CellGuard) Release() {
	g.cell.locks--
	g.mgr.procQueue()
}
