package life

import (
	"fmt"
	"sync"
)

//Transition classifies what happened to a cell between two generations
type Transition byte

const (
	StillDead  Transition = iota //was dead, stays dead
	StillAlive                   //was alive, stays alive
	Born                         //was dead, reproduced
	Died                         //was alive, under- or overpopulated
)

//Overlay maps every grid position to its Transition for one generation step
//it is valid for exactly one step and replaced on the next
type Overlay struct {
	width  int
	height int
	events []Transition
}

//Get returns the transition at x,y
//access outside the overlay is a contract violation and panics
func (o *Overlay) Get(x int, y int) Transition {
	if x < 0 || y < 0 || x >= o.width || y >= o.height {
		panic(fmt.Sprintf("overlay access out of bounds: (%v,%v) on %vx%v", x, y, o.width, o.height))
	}
	return o.events[y*o.width+x]
}

//Dimensions returns width and height
func (o *Overlay) Dimensions() (int, int) {
	return o.width, o.height
}

//classify maps a (previous, next) cell pair to its Transition
func classify(prev Cell, next Cell) Transition {
	switch {
	case prev == Alive && next == Alive:
		return StillAlive
	case prev == Alive && next == Dead:
		return Died
	case prev == Dead && next == Alive:
		return Born
	default:
		return StillDead
	}
}

//Diff derives the transition overlay from two consecutive generations
//both grids must have the same dimensions
//partitioned across workers the same way Advance is
func Diff(prev *Grid, next *Grid, workers int) (*Overlay, error) {
	if prev.width != next.width || prev.height != next.height {
		return nil, fmt.Errorf("%w: %vx%v vs %vx%v",
			ErrDimensionMismatch, prev.width, prev.height, next.width, next.height)
	}
	o := &Overlay{
		width:  prev.width,
		height: prev.height,
		events: make([]Transition, prev.width*prev.height),
	}
	var waitGroup sync.WaitGroup
	for _, band := range splitRows(prev.height, workers) {
		waitGroup.Add(1)
		go func(band rowBand) {
			for i := band.y1 * o.width; i < (band.y2+1)*o.width; i++ {
				o.events[i] = classify(prev.cells[i], next.cells[i])
			}
			waitGroup.Done()
		}(band)
	}
	waitGroup.Wait()
	return o, nil
}
