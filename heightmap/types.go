package heightmap

import "fmt"

// Elevation is a normalized cell height: 'a' → 0 … 'z' → 25.
type Elevation int

const (
	// Lowest is the elevation of 'a' and of the start marker 'S'.
	Lowest Elevation = 0
	// Highest is the elevation of 'z' and of the end marker 'E'.
	Highest Elevation = 25
	// MaxClimb is the largest upward step allowed in one move.
	MaxClimb Elevation = 1
)

// Grid markers.
const (
	StartMarker = 'S'
	EndMarker   = 'E'
)

// Cell is a (row, column) grid coordinate. Two cells are equal iff their
// coordinates match, so Cell is usable as a map key.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// neighborOffsets lists the four orthogonal moves in adjacency order:
// down, up, right, left.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// HeightMap is an elevation grid plus its derived adjacency relation.
// It is immutable once built; all methods are safe for concurrent readers.
type HeightMap struct {
	Rows, Cols int
	// Start and End are the positions of the 'S' and 'E' markers.
	Start, End Cell

	heights   [][]Elevation
	adjacency map[Cell][]Cell
	edges     int
}
