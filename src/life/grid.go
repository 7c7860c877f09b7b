package life

import (
	"errors"
	"fmt"
)

//Cell is the state of a single grid position
type Cell bool

const (
	Alive Cell = true
	Dead  Cell = false
)

//BoundaryPolicy selects how neighbors are counted at the grid edges
//it is fixed for a simulation run
type BoundaryPolicy int

const (
	//Bounded treats positions outside the grid as permanently dead
	Bounded BoundaryPolicy = iota
	//Wrapping folds edge coordinates modulo the grid dimensions (torus)
	Wrapping
)

var boundaryNames = map[BoundaryPolicy]string{
	Bounded:  "bounded",
	Wrapping: "wrapping",
}

func (p BoundaryPolicy) String() string {
	return boundaryNames[p]
}

//ParseBoundaryPolicy converts the CLI option value to a BoundaryPolicy
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	for p, name := range boundaryNames {
		if name == s {
			return p, nil
		}
	}
	return Bounded, fmt.Errorf("unknown boundary policy %q", s)
}

var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrDimensionMismatch = errors.New("grids have different dimensions")
)

//Grid is a fixed-size rectangular field of cells, row-major
//a Grid is never mutated after construction, "updating" means building a new one
type Grid struct {
	width  int
	height int
	cells  []Cell
}

//NewGrid builds a grid by calling init for every position
//init must be pure, it may be called in any order
func NewGrid(width int, height int, init func(x int, y int) Cell) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidDimensions, width, height)
	}
	g := &Grid{width: width, height: height, cells: make([]Cell, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[y*width+x] = init(x, y)
		}
	}
	return g, nil
}

//newEmptyGrid allocates an all-dead grid without running an initializer
//dimensions must already be validated
func newEmptyGrid(width int, height int) *Grid {
	return &Grid{width: width, height: height, cells: make([]Cell, width*height)}
}

//Get returns the cell at x,y
//access outside the grid is a contract violation and panics
func (g *Grid) Get(x int, y int) Cell {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		panic(fmt.Sprintf("grid access out of bounds: (%v,%v) on %vx%v", x, y, g.width, g.height))
	}
	return g.cells[y*g.width+x]
}

//Dimensions returns width and height
func (g *Grid) Dimensions() (int, int) {
	return g.width, g.height
}

//Equal reports whether both grids have the same dimensions and cell states
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

//LiveCells counts the alive cells
func (g *Grid) LiveCells() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

//LiveNeighbors counts the live cells in the Moore neighborhood of x,y
//under Bounded positions outside the grid count as dead,
//under Wrapping coordinates are folded modulo the dimensions
func LiveNeighbors(g *Grid, x int, y int, policy BoundaryPolicy) int {
	live := 0
	for j := -1; j < 2; j++ {
		for i := -1; i < 2; i++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			nx := x + i
			ny := y + j
			if policy == Wrapping {
				nx = (nx + g.width) % g.width
				ny = (ny + g.height) % g.height
			} else if nx < 0 || ny < 0 || nx >= g.width || ny >= g.height {
				continue
			}
			if g.cells[ny*g.width+nx] == Alive {
				live++
			}
		}
	}
	return live
}
