package universe

import (
	"sync"
	"time"

	"golife/src/life"
)

//BaseUniverse is the universe shell around the simulation driver
//implements Universe interface
//all driver mutations go through the control channel, so at most one
//step is ever in flight
type BaseUniverse struct {
	options Options
	state   struct {
		Status
		sync.Mutex
	}
	sim struct {
		driver *life.Driver
		sync.Mutex
	}
	stateCh   chan Status
	views     []Viewer
	templates map[string]Template
	controlCh chan func()
	closeCh   chan bool
}

//NewBaseUniverse creates the BaseUniverse instance
//fails when the configured dimensions are invalid
func NewBaseUniverse(o *Options, stateCh chan Status) (*BaseUniverse, error) {
	if o == nil {
		o = &DefaultUniverseOptions
	}
	o.Advanced = make(map[string]interface{})
	o.Advanced["boundary"] = o.Boundary.String()
	o.Advanced["meta state"] = o.MetaState

	u := BaseUniverse{
		options:   *o,
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
		stateCh:   stateCh,
		templates: map[string]Template{},
	}
	driver := life.NewDriver()
	err := driver.Initialize(life.Config{
		Width:     o.Width,
		Height:    o.Height,
		Boundary:  o.Boundary,
		MetaState: o.MetaState,
		Workers:   o.Workers,
		Seed:      [][]int{}, //start with an empty field, settle later
	})
	if err != nil {
		return nil, err
	}
	u.sim.driver = driver
	u.refreshView()
	go u.mainLoop()
	return &u, nil
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (u *BaseUniverse) AddTemplate(tmpl Template) {
	u.templates[tmpl.Name] = tmpl
}

//SettleTemplate populates the universe with the seeding template
func (u *BaseUniverse) SettleTemplate(name string) {
	tmpl, ok := u.templates[name]
	if !ok {
		return
	}
	u.controlCh <- func() {
		u.settle(tmpl.Coordinates)
	}
}

//SettleWithRandomData populates the universe with random data
//each cell is set alive with the configured probability
func (u *BaseUniverse) SettleWithRandomData() {
	if u.state.RunningMode == RunningStateManual || u.state.RunningMode == RunningStateFinished {
		u.controlCh <- u.clear
		u.controlCh <- func() {
			seed := u.options.RandSeed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			u.sim.Lock()
			//reinitializing keeps the driver as the single owner of the grid
			_ = u.sim.driver.Initialize(life.Config{
				Width:       u.options.Width,
				Height:      u.options.Height,
				Boundary:    u.options.Boundary,
				MetaState:   u.options.MetaState,
				Workers:     u.options.Workers,
				Probability: u.options.Probability,
				RandSeed:    seed,
			})
			g, _, _ := u.sim.driver.Snapshot()
			u.sim.Unlock()
			u.state.Lock()
			u.state.LiveCells = g.LiveCells()
			u.state.Unlock()
			u.refreshView()
		}
	}
}

//ToggleCell inverses the cell state at point x, y
func (u *BaseUniverse) ToggleCell(x int, y int) {
	if x < 0 || y < 0 || x >= u.options.Width || y >= u.options.Height {
		return
	}
	u.controlCh <- func() {
		u.sim.Lock()
		g, _, _ := u.sim.driver.Snapshot()
		err := u.sim.driver.Install(life.WithToggled(g, x, y))
		if err == nil {
			g, _, _ = u.sim.driver.Snapshot()
		}
		u.sim.Unlock()
		u.state.Lock()
		u.state.LiveCells = g.LiveCells()
		u.state.Unlock()
		u.refreshView()
	}
}

//RegisterViewer registers the viewer - the universe will call the viewer when the state is changed
func (u *BaseUniverse) RegisterViewer(v Viewer) {
	u.views = append(u.views, v)
	v.Register(u)
}

//StateCh returns the channel with the universe's status updates
func (u *BaseUniverse) StateCh() chan Status {
	return u.stateCh
}

//Status returns current universe status represented by Status struct
func (u *BaseUniverse) Status() Status {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.Status
}

//Options returns current universe configuration represented by Options struct
func (u *BaseUniverse) Options() Options {
	return u.options
}

//Snapshot returns the current generation: the grid, the transition
//overlay of the last step (nil before the first step or when meta state
//is disabled) and the generation number
//the returned grid and overlay are never mutated and safe to read
func (u *BaseUniverse) Snapshot() (*life.Grid, *life.Overlay, int) {
	u.sim.Lock()
	defer u.sim.Unlock()
	return u.sim.driver.Snapshot()
}

//Run starts the universe simulation, returns immediately
func (u *BaseUniverse) Run() {
	u.controlCh <- u.run
}

//Stop stops the universe simulation, returns immediately
//the Status struct will be written the stateCh on finish
func (u *BaseUniverse) Stop() {
	u.controlCh <- u.stop
}

//Step do one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (u *BaseUniverse) Step() {
	u.controlCh <- u.step
}

//Clear clears the universe (kill all cells and reset all counters), returns immediately
//the Status struct will be written to the stateCh on finish
func (u *BaseUniverse) Clear() {
	u.controlCh <- u.clear
}

//Close stops the main loop, close the channels, returns immediately
func (u *BaseUniverse) Close() {
	u.closeCh <- true
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (u *BaseUniverse) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-u.controlCh:
			cmd()
		case c = <-u.closeCh:

		}
	}
	close(u.closeCh)
	close(u.controlCh)
}

//settle raises the cells at the given coordinates
func (u *BaseUniverse) settle(vc [][]int) {
	u.sim.Lock()
	g, _, _ := u.sim.driver.Snapshot()
	err := u.sim.driver.Install(life.WithCells(g, vc, life.Alive))
	if err == nil {
		g, _, _ = u.sim.driver.Snapshot()
	}
	u.sim.Unlock()
	u.state.Lock()
	u.state.LiveCells = g.LiveCells()
	u.state.Unlock()
	u.refreshView()
}

//switchRunningState switch the state of the universe to RunningState
//also writes the new state to the stateCh to signal upper control software
func (u *BaseUniverse) switchRunningState(to RunningState) {
	u.state.Lock()
	u.state.RunningMode = to
	st := u.state.Status
	u.state.Unlock()
	if u.stateCh != nil {
		u.stateCh <- st
	}
}

//run starts the universe simulation
//simulation will stop on Stop() calling or when the boundary conditions are reached
func (u *BaseUniverse) run() {
	go func() {
		u.switchRunningState(RunningStateRun)
		skipped := 0
		done := make(chan bool)
		defer close(done)
		for {
			mode := u.Status().RunningMode
			if mode != RunningStateRun && mode != RunningStateStep {
				break
			}
			if skipped > u.options.MaxSkippedTicks {
				u.switchRunningState(RunningStateFinished)
				break
			}
			//skip the tick if the universe is still in the calculation mode
			if mode != RunningStateStep {
				skipped = 0
				u.controlCh <- func() {
					u.step()
					done <- true
				}
				<-done
			} else {
				skipped++
			}
			if u.options.Interval > 0 {
				time.Sleep(u.options.Interval)
			}
		}
	}()
}

//stop stops the universe running cycle
func (u *BaseUniverse) stop() {
	if u.Status().RunningMode == RunningStateRun {
		u.switchRunningState(RunningStateManual)
	}
}

//step advances the universe by one generation
//finishes the run when the max steps boundary is reached, when all
//cells died or when the field stopped changing
func (u *BaseUniverse) step() {
	finished := false
	rm := u.Status().RunningMode
	maxSteps := u.options.MaxSteps
	defer func() {
		if finished {
			u.switchRunningState(RunningStateFinished)
		} else {
			u.switchRunningState(rm)
		}
		u.refreshView()
	}()

	u.switchRunningState(RunningStateStep)

	u.sim.Lock()
	before, _, _ := u.sim.driver.Snapshot()
	start := time.Now()
	u.sim.driver.Step()
	stepTime := time.Since(start)
	after, _, generation := u.sim.driver.Snapshot()
	u.sim.Unlock()

	liveCells := after.LiveCells()
	u.state.Lock()
	u.state.GenerationNum = generation
	u.state.LiveCells = liveCells
	u.state.StepTime = stepTime
	u.state.Unlock()

	if liveCells == 0 || after.Equal(before) {
		finished = true
		return
	}
	if maxSteps != 0 && generation >= maxSteps {
		finished = true
	}
}

//clear clears the universe data, reset all counters
func (u *BaseUniverse) clear() {
	u.sim.Lock()
	u.sim.driver.Reset()
	u.sim.Unlock()
	u.state.Lock()
	u.state.GenerationNum = 0
	u.state.LiveCells = 0
	u.state.RunningMode = RunningStateManual
	u.state.Unlock()
	u.switchRunningState(RunningStateManual)
	u.refreshView()
}

//refreshView calls Refresh event for all registered views
func (u *BaseUniverse) refreshView() {
	for _, v := range u.views {
		v.Refresh()
	}
}
