package life

import (
	"fmt"
	"math/rand"
)

//Config is the validated configuration bundle for one simulation run
type Config struct {
	Width    int
	Height   int
	Boundary BoundaryPolicy
	//MetaState enables transition tracking, when false the previous
	//generation is not retained
	MetaState bool
	//Workers for Advance and Diff, <= 0 selects the default
	Workers int
	//Seed is a literal pattern of x,y coordinates placed at SeedOffsetX/Y,
	//cells inside the grid but outside the pattern stay dead
	//when Seed is nil the grid is filled randomly instead:
	//each cell is alive with probability Probability
	Seed        [][]int
	SeedOffsetX int
	SeedOffsetY int
	Probability float64
	//RandSeed makes random initialization reproducible
	RandSeed int64
}

//Driver owns the simulation state and steps it
//two states: uninitialized and running, Initialize moves it to running
//not safe for concurrent use, the caller serializes steps
type Driver struct {
	config     Config
	current    *Grid
	previous   *Grid
	overlay    *Overlay
	generation int
	running    bool
}

func NewDriver() *Driver {
	return &Driver{}
}

//Initialize builds the generation-0 grid from the configuration
//and moves the driver to the running state
func (d *Driver) Initialize(c Config) error {
	var g *Grid
	var err error
	if c.Seed != nil {
		g, err = NewGrid(c.Width, c.Height, func(x, y int) Cell { return Dead })
		if err == nil {
			g = withCells(g, c.Seed, c.SeedOffsetX, c.SeedOffsetY, Alive)
		}
	} else {
		if c.Probability < 0 || c.Probability > 1 {
			return fmt.Errorf("probability %v outside [0,1]", c.Probability)
		}
		rng := rand.New(rand.NewSource(c.RandSeed))
		g, err = NewGrid(c.Width, c.Height, func(x, y int) Cell {
			return Cell(rng.Float64() < c.Probability)
		})
	}
	if err != nil {
		return err
	}
	d.config = c
	d.current = g
	d.previous = nil
	d.overlay = nil
	d.generation = 0
	d.running = true
	return nil
}

//Running reports whether Initialize has completed
func (d *Driver) Running() bool {
	return d.running
}

//Config returns the configuration the driver was initialized with
func (d *Driver) Config() Config {
	return d.config
}

//Step advances the simulation by one generation
//the old current grid becomes the previous one, the overlay is rebuilt,
//stepping an uninitialized driver is a contract violation
func (d *Driver) Step() {
	if !d.running {
		panic("step on uninitialized driver")
	}
	next := Advance(d.current, d.config.Boundary, d.config.Workers)
	if d.config.MetaState {
		o, err := Diff(d.current, next, d.config.Workers)
		if err != nil {
			//Advance preserves dimensions, this cannot happen
			panic(err)
		}
		d.overlay = o
		d.previous = d.current
	} else {
		d.previous = nil
	}
	d.current = next
	d.generation++
}

//Snapshot returns a read-only view of one consistent generation:
//the current grid, the overlay derived from the step that produced it
//(nil before the first step or when meta state is disabled),
//and the generation number
func (d *Driver) Snapshot() (*Grid, *Overlay, int) {
	return d.current, d.overlay, d.generation
}

//Install replaces the current grid, used by the shell for manual edits
//the previous grid and overlay no longer correspond and are dropped
func (d *Driver) Install(g *Grid) error {
	if !d.running {
		panic("install on uninitialized driver")
	}
	if !sameDimensions(d.current, g) {
		return fmt.Errorf("%w: cannot install %vx%v into %vx%v run",
			ErrDimensionMismatch, g.width, g.height, d.current.width, d.current.height)
	}
	d.current = g
	d.previous = nil
	d.overlay = nil
	return nil
}

//Reset kills all cells and rewinds the generation counter
func (d *Driver) Reset() {
	if !d.running {
		panic("reset on uninitialized driver")
	}
	d.current = newEmptyGrid(d.current.width, d.current.height)
	d.previous = nil
	d.overlay = nil
	d.generation = 0
}

func sameDimensions(a *Grid, b *Grid) bool {
	return a.width == b.width && a.height == b.height
}

//withCells builds a copy of g with the pattern coordinates set to state
//coordinates outside the grid are ignored
func withCells(g *Grid, vc [][]int, offsetX int, offsetY int, state Cell) *Grid {
	next := newEmptyGrid(g.width, g.height)
	copy(next.cells, g.cells)
	for _, v := range vc {
		x := v[0] + offsetX
		y := v[1] + offsetY
		if x < 0 || y < 0 || x >= g.width || y >= g.height {
			continue
		}
		next.cells[y*g.width+x] = state
	}
	return next
}

//WithCells returns a copy of g with the given coordinates set to state
func WithCells(g *Grid, vc [][]int, state Cell) *Grid {
	return withCells(g, vc, 0, 0, state)
}

//WithToggled returns a copy of g with the cell at x,y inverted
func WithToggled(g *Grid, x int, y int) *Grid {
	next := newEmptyGrid(g.width, g.height)
	copy(next.cells, g.cells)
	next.cells[y*g.width+x] = !next.cells[y*g.width+x]
	return next
}
