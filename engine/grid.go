package engine

import (
	"math"

	"github.com/polygl-phys/feather2d/body"
)

// spatialGrid is a uniform spatial hash broad phase, ported to 2D cells
// from the teacher's SpatialGrid (spec.md §9's "a spatial hash ... is a
// drop-in replacement"). Unlike the teacher's version it runs
// single-threaded: the engine's concurrency model (spec.md §5) is
// cooperative and synchronous, so the teacher's FindPairsParallel
// goroutine-worker split has no home here (see DESIGN.md).
type spatialGrid struct {
	cellSize float64
	cellMask int
	cells    [][]int
}

type cellKey struct{ x, y int }

func newSpatialGrid(cellSize float64, numCells int) *spatialGrid {
	numCells = nextPowerOfTwo(numCells)
	return &spatialGrid{
		cellSize: cellSize,
		cellMask: numCells - 1,
		cells:    make([][]int, numCells),
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

func (g *spatialGrid) hash(k cellKey) int {
	h := (k.x * 73856093) ^ (k.y * 19349663)
	return h & g.cellMask
}

func (g *spatialGrid) worldToCell(x, y float64) cellKey {
	return cellKey{
		x: int(math.Floor(x / g.cellSize)),
		y: int(math.Floor(y / g.cellSize)),
	}
}

func (g *spatialGrid) clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

func (g *spatialGrid) insert(index int, b *body.Body) {
	bounds := b.Bounds()
	min := g.worldToCell(bounds.Min.X, bounds.Min.Y)
	max := g.worldToCell(bounds.Max.X, bounds.Max.Y)

	for x := min.x; x <= max.x; x++ {
		for y := min.y; y <= max.y; y++ {
			idx := g.hash(cellKey{x, y})
			g.cells[idx] = append(g.cells[idx], index)
		}
	}
}

// pairs enumerates candidate collision pairs by walking each body's
// occupied cells and testing against later-indexed occupants only, the
// same deterministic-order dedup the teacher's sequential FindPairs uses.
func (g *spatialGrid) pairs(bodies []*body.Body) []pair {
	g.clear()
	for i, b := range bodies {
		g.insert(i, b)
	}

	seen := make(map[[2]int]bool)
	out := make([]pair, 0, len(bodies))

	for i, a := range bodies {
		bounds := a.Bounds()
		min := g.worldToCell(bounds.Min.X, bounds.Min.Y)
		max := g.worldToCell(bounds.Max.X, bounds.Max.Y)

		for x := min.x; x <= max.x; x++ {
			for y := min.y; y <= max.y; y++ {
				idx := g.hash(cellKey{x, y})
				for _, j := range g.cells[idx] {
					if j <= i {
						continue
					}
					key := [2]int{i, j}
					if seen[key] {
						continue
					}
					seen[key] = true

					b := bodies[j]
					if !shouldPair(a, b) {
						continue
					}
					if a.Bounds().Overlaps(b.Bounds()) {
						out = append(out, pair{a, b})
					}
				}
			}
		}
	}
	return out
}
