// Package hillclimb finds the fewest steps up a height map — a grid of
// elevation letters 'a'..'z' where each move may climb at most one level.
//
// 🚀 What is hillclimb?
//
//	A small, dependency-light toolkit that brings together:
//		• heightmap: grid loading, validation and the directed climb relation
//		• bfs:       generic breadth-first shortest paths with hooks & limits
//		• climb:     fixed-start and best-lowest-start answers, route drawing
//
// ✨ Why a directed graph?
//
//   - Descending any amount is allowed, climbing only by one, so an edge
//     A→B does not imply B→A.
//   - Every move costs one step, so breadth-first order already yields
//     shortest distances.
//
// Under the hood, everything is organized under three subpackages:
//
//	heightmap/ — Cell, Elevation, HeightMap, Parse/Read/Load and sentinel errors
//	bfs/       — Graph interface, ShortestPath, Search, Result.PathTo
//	climb/     — FromStart, BestStart (optional worker pool), Solve, Route, Render
//
// Quick ASCII example:
//
//	S b c      S→a, S→b, b→c ... E is 'z':
//	a b E      nothing here can climb onto it.
//
// The command-line front end lives in cmd/hillclimb.
//
//	go install github.com/katalvlaran/hillclimb/cmd/hillclimb@latest
package hillclimb
