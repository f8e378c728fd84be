package heightmap

import "fmt"

// ElevationOf maps a grid character to its normalized elevation.
// 'S' counts as 'a' and 'E' as 'z'. Any other character outside 'a'..'z'
// yields ErrInvalidElevation.
func ElevationOf(r rune) (Elevation, error) {
	switch {
	case r == StartMarker:
		return Lowest, nil
	case r == EndMarker:
		return Highest, nil
	case r >= 'a' && r <= 'z':
		return Elevation(r - 'a'), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidElevation, r)
}

// Parse builds a HeightMap from a non-empty, rectangular set of rows.
// Exactly one 'S' and one 'E' must appear across the whole grid.
//
// Every cell receives an adjacency entry, possibly empty. Edges are added
// in neighbor order down, up, right, left.
// Complexity: O(R×C) time and memory.
func Parse(rows []string) (*HeightMap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	grid := make([][]rune, len(rows))
	for i, row := range rows {
		grid[i] = []rune(row)
	}
	h, w := len(grid), len(grid[0])
	for y, row := range grid {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	hm := &HeightMap{
		Rows:      h,
		Cols:      w,
		heights:   make([][]Elevation, h),
		adjacency: make(map[Cell][]Cell, h*w),
	}
	var haveStart, haveEnd bool
	// Normalize every cell once.
	for y, row := range grid {
		hm.heights[y] = make([]Elevation, w)
		for x, r := range row {
			e, err := ElevationOf(r)
			if err != nil {
				return nil, fmt.Errorf("%w at row %d, column %d", err, y, x)
			}
			hm.heights[y][x] = e
			switch r {
			case StartMarker:
				if haveStart {
					return nil, fmt.Errorf("%w: at %v and %v", ErrDuplicateStart, hm.Start, Cell{y, x})
				}
				hm.Start, haveStart = Cell{y, x}, true
			case EndMarker:
				if haveEnd {
					return nil, fmt.Errorf("%w: at %v and %v", ErrDuplicateEnd, hm.End, Cell{y, x})
				}
				hm.End, haveEnd = Cell{y, x}, true
			}
		}
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveEnd {
		return nil, ErrMissingEnd
	}

	// Derive the directed adjacency relation.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			from := Cell{y, x}
			out := make([]Cell, 0, len(neighborOffsets))
			for _, d := range neighborOffsets {
				to := Cell{y + d[0], x + d[1]}
				if !hm.InBounds(to) {
					continue
				}
				if hm.heights[to.Row][to.Col]-hm.heights[y][x] <= MaxClimb {
					out = append(out, to)
				}
			}
			hm.adjacency[from] = out
			hm.edges += len(out)
		}
	}

	return hm, nil
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (hm *HeightMap) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < hm.Rows && c.Col >= 0 && c.Col < hm.Cols
}

// Elevation returns the normalized elevation of c, or false if c is out of bounds.
func (hm *HeightMap) Elevation(c Cell) (Elevation, bool) {
	if !hm.InBounds(c) {
		return 0, false
	}
	return hm.heights[c.Row][c.Col], true
}

// Neighbors returns the cells reachable from c in one move.
// Out-of-bounds cells have no neighbors. The returned slice is shared and
// must not be modified.
func (hm *HeightMap) Neighbors(c Cell) []Cell {
	return hm.adjacency[c]
}

// HasEdge reports whether a single move from → to is allowed.
func (hm *HeightMap) HasEdge(from, to Cell) bool {
	for _, n := range hm.adjacency[from] {
		if n == to {
			return true
		}
	}
	return false
}

// EdgeCount returns the number of directed edges in the relation.
func (hm *HeightMap) EdgeCount() int {
	return hm.edges
}

// Cells returns every cell in row-major order.
func (hm *HeightMap) Cells() []Cell {
	out := make([]Cell, 0, hm.Rows*hm.Cols)
	for y := 0; y < hm.Rows; y++ {
		for x := 0; x < hm.Cols; x++ {
			out = append(out, Cell{y, x})
		}
	}
	return out
}

// CellsAt returns, in row-major order, every cell whose normalized elevation
// equals e. CellsAt(Lowest) includes the Start cell.
func (hm *HeightMap) CellsAt(e Elevation) []Cell {
	var out []Cell
	for y, row := range hm.heights {
		for x, v := range row {
			if v == e {
				out = append(out, Cell{y, x})
			}
		}
	}
	return out
}
