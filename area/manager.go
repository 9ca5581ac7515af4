package area

import "github.com/sqmodcore/host/corelog"

// Manager partitions the world into a fixed 16×16 grid of cells and tracks
// which areas intersect which cells, supporting safe mutation during
// iteration via per-cell lock counters and a deferred queue
// (spec.md §4.G).
type Manager struct {
	grid  [GridN][GridN]Cell
	queue []queueElement
}

// NewManager builds a grid with the exact cell bounding boxes of the
// original construction algorithm: origin-centered, CellD-wide cells,
// row-major. reserve pre-sizes each cell's area slice.
func NewManager(reserve int) *Manager {
	m := &Manager{}

	l := float64(-GridH * CellD)
	b := absF(l) - CellD
	r := l + CellD
	t := absF(l)

	for row := 0; row < GridN; row++ {
		for col := 0; col < GridN; col++ {
			c := &m.grid[row][col]
			c.L, c.B, c.R, c.T = l, b, r, t
			if reserve > 0 {
				c.areas = make([]areaEntry, 0, reserve)
			}

			l = r
			r += CellD
			if r > GridH*CellD {
				l = -GridH * CellD
				r = l + CellD
				b -= CellD
				t -= CellD
			}
		}
	}

	return m
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Cell returns the grid cell at (col, row). Panics if out of range; callers
// should only use coordinates returned by LocateCell.
func (m *Manager) Cell(coord CellCoord) *Cell {
	return &m.grid[coord.Row][coord.Col]
}

// insert performs (or queues) a single cell insertion. The area is always
// associated with the cell immediately, even if the actual list insert was
// queued, so a subsequent Manage call observes the area as already managed
// and skips it (spec.md §4.G).
func (m *Manager) insert(c *Cell, a *Area, owner any) {
	if c.Locked() {
		m.queue = append(m.queue, queueElement{cell: c, area: a, owner: owner})
	} else {
		c.areas = append(c.areas, areaEntry{area: a, owner: owner})
	}
	a.Cells = append(a.Cells, c)
}

// remove performs (or queues) a single cell removal. The area's Cells list
// is always updated synchronously.
func (m *Manager) remove(c *Cell, a *Area) {
	if c.Locked() {
		m.queue = append(m.queue, queueElement{cell: c, area: a, owner: nil})
	} else {
		for i, e := range c.areas {
			if e.area == a {
				c.areas = append(c.areas[:i:i], c.areas[i+1:]...)
				break
			}
		}
	}
	for i, cc := range a.Cells {
		if cc == c {
			a.Cells = append(a.Cells[:i:i], a.Cells[i+1:]...)
			break
		}
	}
}

// procQueue walks the queue front-to-back, applies every entry whose cell
// is currently unlocked (null owner => Remove, else Insert), and erases
// those entries. Applying an entry only touches the cell's area list: the
// area's Cells list was already updated when the entry was queued. Within
// one cell, arrival order is preserved; there is no ordering constraint
// between independent cells (spec.md §4.G).
func (m *Manager) procQueue() {
	if len(m.queue) == 0 {
		return
	}
	ready := make([]int, 0, len(m.queue))
	for i, qe := range m.queue {
		if !qe.cell.Locked() {
			ready = append(ready, i)
		}
	}
	for _, i := range ready {
		qe := m.queue[i]
		if qe.owner == nil {
			for j, e := range qe.cell.areas {
				if e.area == qe.area {
					qe.cell.areas = append(qe.cell.areas[:j:j], qe.cell.areas[j+1:]...)
					break
				}
			}
		} else {
			qe.cell.areas = append(qe.cell.areas, areaEntry{area: qe.area, owner: qe.owner})
		}
	}
	for k := len(ready) - 1; k >= 0; k-- {
		i := ready[k]
		m.queue = append(m.queue[:i], m.queue[i+1:]...)
	}
}

// DrainQueue applies every pending queued mutation whose cell is currently
// unlocked. Ordinarily the queue drains the instant a CellGuard releases;
// this is the scheduler's safety net for a guard held across a frame
// boundary (spec.md §4.I).
func (m *Manager) DrainQueue() {
	m.procQueue()
}

// Manage scans all cells and inserts a into every one whose bounding box
// intersects a's (spec.md §4.G "manage"). A no-op if a is already managed
// or has no points.
func (m *Manager) Manage(a *Area, owner any) {
	if a.Managed() || len(a.Points) == 0 {
		return
	}
	for row := 0; row < GridN; row++ {
		for col := 0; col < GridN; col++ {
			c := &m.grid[row][col]
			if a.intersectsCellBBox(c) {
				m.insert(c, a, owner)
			}
		}
	}
	corelog.Debug(corelog.CategoryArea).Str("area", a.Name).Int("cells", len(a.Cells)).Log("managed")
}

// Unmanage removes a from every cell it is currently in.
func (m *Manager) Unmanage(a *Area) {
	// Snapshot: remove() mutates a.Cells as it iterates, and the original's
	// range-for over the same vector being erased from is undefined
	// behavior we deliberately don't reproduce.
	cells := append([]*Cell(nil), a.Cells...)
	for _, c := range cells {
		m.remove(c, a)
	}
	corelog.Debug(corelog.CategoryArea).Str("area", a.Name).Log("unmanaged")
}

// TestPointFunc is invoked once per area containing the tested point, in
// the cell's current iteration order.
type TestPointFunc func(a *Area, owner any)

// TestPoint locates the cell containing (x, y), locks it for the duration
// of the callback loop, and invokes f for every area whose bbox contains
// the point and whose Test passes. Safe against a callback unmanaging
// (or managing) areas mid-iteration: such mutations are deferred via the
// queue and applied once the lock is released (spec.md §4.G).
func (m *Manager) TestPoint(x, y float64, f TestPointFunc) {
	coord := LocateCell(x, y)
	if !coord.Valid() {
		return
	}
	c := m.Cell(coord)
	if len(c.areas) == 0 {
		return
	}

	guard := newCellGuard(m, c)
	defer guard.Release()

	for _, e := range c.areas {
		if e.area.Test(x, y) {
			f(e.area, e.owner)
		}
	}
}
