package climb

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// Route returns one shortest route from from to hm.End, both inclusive.
// Returns an error wrapping bfs.ErrNoPath if the goal cannot be reached.
func Route(ctx context.Context, hm *heightmap.HeightMap, from heightmap.Cell) ([]heightmap.Cell, error) {
	if hm == nil {
		return nil, ErrNilHeightMap
	}
	res, err := bfs.Search(hm, from, hm.End, bfs.WithContext[heightmap.Cell](ctx))
	if err != nil {
		return nil, err
	}
	return res.PathTo(hm.End)
}

// Render draws route over an empty copy of the grid. Each route cell except
// the last shows the direction it is left by (^ v < >), the last shows 'E',
// and every other cell is '.'.
func Render(hm *heightmap.HeightMap, route []heightmap.Cell) (string, error) {
	canvas := make([][]byte, hm.Rows)
	for y := range canvas {
		canvas[y] = []byte(strings.Repeat(".", hm.Cols))
	}
	for i, c := range route {
		if !hm.InBounds(c) {
			return "", fmt.Errorf("climb: route cell %v out of bounds", c)
		}
		if i == len(route)-1 {
			canvas[c.Row][c.Col] = heightmap.EndMarker
			break
		}
		arrow, err := direction(c, route[i+1])
		if err != nil {
			return "", err
		}
		canvas[c.Row][c.Col] = arrow
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func direction(from, to heightmap.Cell) (byte, error) {
	switch (heightmap.Cell{Row: to.Row - from.Row, Col: to.Col - from.Col}) {
	case heightmap.Cell{Row: -1}:
		return '^', nil
	case heightmap.Cell{Row: 1}:
		return 'v', nil
	case heightmap.Cell{Col: -1}:
		return '<', nil
	case heightmap.Cell{Col: 1}:
		return '>', nil
	}
	return 0, fmt.Errorf("climb: %v and %v are not adjacent", from, to)
}
