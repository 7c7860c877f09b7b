package life

import (
	"sync"
)

/*
	The generation engine computes the successor of a grid in parallel.
	The field is split into contiguous row bands, each band is computed
	by an individual goroutine. Workers only read the immutable input
	grid and write to the rows of the output grid they own, so no
	locking is needed, the only synchronization is the final join.
*/

const (
	DefWorkers          = 10 //default workers
	DefMinRowsPerWorker = 3  //minimum rows for one worker
)

//rowBand is the row range [y1,y2] owned by one worker
type rowBand struct {
	y1 int
	y2 int
}

//splitRows partitions height rows into at most workers contiguous bands
//workers <= 0 selects the default sizing
func splitRows(height int, workers int) []rowBand {
	if workers <= 0 {
		workers = DefWorkers
	}
	rowsPerBand := height / workers
	if rowsPerBand < DefMinRowsPerWorker {
		rowsPerBand = DefMinRowsPerWorker
	} else if rowsPerBand*workers < height {
		rowsPerBand++
	}
	bands := make([]rowBand, 0, workers)
	for y1 := 0; y1 < height; y1 += rowsPerBand {
		y2 := y1 + rowsPerBand - 1
		if y2 > height-1 {
			y2 = height - 1
		}
		bands = append(bands, rowBand{y1, y2})
	}
	return bands
}

//Advance computes the next generation of g under the given boundary policy
//the input grid is not modified, the result is a fresh grid
//deterministic: the same input always produces the same output
//regardless of how rows were partitioned among workers
func Advance(g *Grid, policy BoundaryPolicy, workers int) *Grid {
	next := newEmptyGrid(g.width, g.height)
	var waitGroup sync.WaitGroup
	for _, band := range splitRows(g.height, workers) {
		waitGroup.Add(1)
		go func(band rowBand) {
			advanceBand(g, next, band, policy)
			waitGroup.Done()
		}(band)
	}
	waitGroup.Wait()
	return next
}

//advanceBand evaluates the transition rule for every cell in the band
//writes only to the band's own rows of next
func advanceBand(g *Grid, next *Grid, band rowBand, policy BoundaryPolicy) {
	for y := band.y1; y <= band.y2; y++ {
		for x := 0; x < g.width; x++ {
			next.cells[y*g.width+x] = nextState(g, x, y, policy)
		}
	}
}

//nextState applies the Life transition rule to the cell at x,y
func nextState(g *Grid, x int, y int, policy BoundaryPolicy) Cell {
	liveNeighbours := LiveNeighbors(g, x, y, policy)
	if liveNeighbours < 2 {
		return Dead
	} else if liveNeighbours > 3 {
		return Dead
	} else if liveNeighbours == 3 {
		return Alive
	} else if g.cells[y*g.width+x] == Alive {
		return Alive
	}
	return Dead
}
