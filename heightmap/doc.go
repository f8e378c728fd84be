// Package heightmap treats a 2D grid of elevation letters as a directed graph
// under a climbing constraint.
//
// What:
//
//   - HeightMap wraps a rectangular grid of elevation codes 'a'..'z'.
//   - The markers 'S' and 'E' are normalized to 'a' and 'z' and their
//     positions are recorded as Start and End.
//   - An edge A→B exists iff B is an orthogonal in-bounds neighbor of A and
//     elevation(B) − elevation(A) ≤ MaxClimb. Descents of any size are allowed,
//     so the relation is not symmetric.
//   - *HeightMap satisfies bfs.Graph[Cell].
//
// Complexity:
//
//   - Parse: O(R×C) time and memory, at most 4 edges per cell.
//   - Neighbors, Elevation, InBounds: O(1).
//
// Errors:
//
// Every loader error wraps ErrMalformedInput:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidElevation: a character outside {a..z, S, E}.
//   - ErrMissingStart / ErrMissingEnd: a marker is absent.
//   - ErrDuplicateStart / ErrDuplicateEnd: a marker occurs more than once.
package heightmap
