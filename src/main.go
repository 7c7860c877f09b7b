package main

import (
	"strings"

	"github.com/integrii/flaggy"

	"golife/src/life"
	"golife/src/universe"
	"golife/src/view"
)

var (
	templates = []universe.Template{
		{
			Name:  "testSample1",
			Descr: "the test sample with 3 stable patterns",
			Coordinates: [][]int{
				{1, 1}, {1, 2},
				{2, 1}, {2, 2},
				{3, 3},
				{4, 2},
				{4, 3},
				{5, 3},
			},
		},
		{
			Name:        "blinker",
			Descr:       "period-2 oscillator",
			Coordinates: [][]int{{4, 5}, {5, 5}, {6, 5}},
		},
		{
			Name:        "glider",
			Descr:       "the classic diagonal walker",
			Coordinates: [][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
		},
	}
)

type EnvOptions struct {
	interactive bool
	randomData  bool
	stats       bool
	template    string
	boundary    string
}

func main() {
	eo, uo := initOptions()

	var stateCh chan universe.Status

	if !eo.interactive {
		stateCh = make(chan universe.Status, 10) //the buffered channel to getting the universe status
	}

	u, err := universe.NewBaseUniverse(uo, stateCh)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	for _, tmpl := range templates {
		u.AddTemplate(tmpl)
	}

	if eo.randomData {
		u.SettleWithRandomData()
	} else {
		u.SettleTemplate(eo.template)
	}

	if eo.interactive {
		v := view.NewConsoleUI(uo.MetaState)
		u.RegisterViewer(v)
		v.Start()
		u.Close()
	} else {
		var profiler *view.Profiler
		if eo.stats {
			profiler = view.NewProfiler()
		}
		v := view.NewConsoleOut(profiler)
		u.RegisterViewer(v)
		v.Start()

		u.Run()
		for {
			st := <-stateCh
			if st.RunningMode == universe.RunningStateFinished {
				break
			}
		}
		u.Close()
		close(stateCh)
	}

}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	uo = &universe.DefaultUniverseOptions
	templateNames := make([]string, 0, len(templates))
	for _, tmpl := range templates {
		templateNames = append(templateNames, tmpl.Name)
	}
	eo = &EnvOptions{template: "testSample1", boundary: life.Bounded.String()}
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Width, "x", "width", "Width of a simulation field")
	flaggy.Int(&uo.Height, "y", "height", "Height of a simulation field")
	flaggy.Duration(&uo.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&uo.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps")
	flaggy.String(&eo.boundary, "b", "boundary", "Edge neighbor policy [bounded|wrapping]")
	flaggy.Float64(&uo.Probability, "p", "probability", "Probability for a cell to be alive on random settle, from 0 to 1")
	flaggy.Bool(&uo.MetaState, "m", "meta", "Track cell transitions and color just-born and just-died cells")
	flaggy.Int(&uo.Workers, "w", "workers", "Workers computing a generation, 0 for the default")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.Bool(&eo.stats, "t", "stats", "Show the step time distribution on exit")
	flaggy.String(&eo.template, "e", "template", "Template to settle ["+strings.Join(templateNames, "|")+"]")

	flaggy.Parse()

	boundary, err := life.ParseBoundaryPolicy(eo.boundary)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	uo.Boundary = boundary

	if uo.Probability < 0 || uo.Probability > 1 {
		flaggy.ShowHelpAndExit("probability must be in [0,1]")
	}

	if !eo.randomData {
		found := false
		for _, tmpl := range templates {
			if tmpl.Name == eo.template {
				found = true
			}
		}
		if !found {
			flaggy.ShowHelpAndExit("unknown template")
		}
	}

	return
}
