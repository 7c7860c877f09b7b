package universe

import (
	"time"

	"golife/src/life"
)

type Universe interface {
	Status() Status
	Options() Options
	Snapshot() (*life.Grid, *life.Overlay, int)
	StateCh() chan Status
	AddTemplate(tmpl Template)
	SettleTemplate(name string)
	SettleWithRandomData()
	ToggleCell(x int, y int)
	RegisterViewer(v Viewer)
	Run()
	Stop()
	Step()
	Clear()
	Close()
}

//Options represents the Universe's configurable options
type Options struct {
	Width           int
	Height          int
	Interval        time.Duration
	MaxSteps        int
	MaxSkippedTicks int
	Boundary        life.BoundaryPolicy
	MetaState       bool
	Probability     float64
	Workers         int
	RandSeed        int64
	Advanced        map[string]interface{} //advanced details for the viewers
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	GenerationNum int
	RunningMode   RunningState
	LiveCells     int
	StepTime      time.Duration
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	Refresh()
	Register(u Universe)
	Start()
}

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] coordinates
}

//The universe running status at the concrete moment
type RunningState int

const (
	RunningStateManual RunningState = iota
	RunningStateStep
	RunningStateRun
	RunningStateFinished
)

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
	DefWidth              = 40
	DefHeight             = 15
	DefMaxSkippedTicks    = 5
	DefProbability        = 0.5
)

var DefaultUniverseOptions = Options{
	Width:           DefWidth,
	Height:          DefHeight,
	Interval:        DefSimulationInterval,
	MaxSteps:        DefMaxSteps,
	MaxSkippedTicks: DefMaxSkippedTicks,
	Boundary:        life.Bounded,
	Probability:     DefProbability,
}
