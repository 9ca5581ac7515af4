// Package area implements the spatial index ("area manager") of
// SPEC_FULL.md §4.G: a 16×16 grid of polygonal areas supporting enter/leave
// events under concurrent iteration, via per-cell lock counters and a
// deferred-mutation queue. Grounded directly on
// original_source/module/Core/Areas.cpp and Misc/Areas.hpp, cross-checked
// for Go container idiom against lixenwraith/vi-fighter's SpatialGrid and
// astrosteveo/fleetforge's cell types.
package area

import "math"

const (
	// GridN is the number of cells per side.
	GridN = 16
	// GridH is half of GridN.
	GridH = GridN / 2
	// Cells is the total number of cells in the grid.
	Cells = GridN * GridN
	// CellD is the world-unit size of one cell's side.
	CellD = 256.0
	// NoCell is the sentinel CellCoord.Col value for "out of range".
	NoCell = -1
)

// CellCoord is a (column, row) pair identifying one grid cell.
type CellCoord struct {
	Col, Row int
}

// Valid reports whether c identifies a real cell (as opposed to NoCell).
func (c CellCoord) Valid() bool {
	return c.Col != NoCell
}

// noCellCoord is returned by LocateCell for out-of-range input.
var noCellCoord = CellCoord{Col: NoCell, Row: NoCell}

// LocateCell rounds world coordinates to cell indices, clamps to the valid
// range, and returns the (col, row) pair, or NoCell if (x, y) falls outside
// the grid's scanning area entirely (spec.md §4.G).
//
// This corrects a transcription bug present in the original source: the
// y-clamp branch there tests the sign of xc (the already-computed x
// coordinate) instead of yc, which reads as a copy-paste mistake between
// the otherwise structurally identical x- and y-clamp blocks. No seed
// scenario in spec.md §8 exercises the buggy cross-axis behavior, so this
// implementation clamps each axis on its own sign. See DESIGN.md's Open
// Question decisions.
func LocateCell(x, y float64) CellCoord {
	xc := int(math.Round(x / CellD))
	yc := int(math.Round(y / CellD))

	xca := absInt(xc)
	yca := absInt(yc)
	if xca > GridH+1 || yca > GridH+1 {
		return noCellCoord
	}

	if xca >= GridH {
		if xc < 0 {
			xc = -(GridH - 1)
		} else {
			xc = GridH - 1
		}
	}
	if yca >= GridH {
		if yc < 0 {
			yc = -(GridH - 1)
		} else {
			yc = GridH - 1
		}
	}

	return CellCoord{Col: GridH + xc, Row: GridH - yc}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
