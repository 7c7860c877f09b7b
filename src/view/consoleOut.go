package view

import (
	"fmt"
	"sort"
	"time"

	"golife/src/universe"
)

type ConsoleOut struct {
	u         universe.Universe
	profiler  *Profiler
	startTime time.Time
	lastGen   int
}

//NewConsoleOut creates the plain console reporter
//profiler may be nil when step statistics are not wanted
func NewConsoleOut(profiler *Profiler) *ConsoleOut {
	return &ConsoleOut{profiler: profiler}
}

func (c *ConsoleOut) Refresh() {
	st := c.u.Status()
	if c.profiler != nil && st.GenerationNum > c.lastGen {
		c.profiler.Add(st.StepTime)
		c.lastGen = st.GenerationNum
	}
	if st.RunningMode == universe.RunningStateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last generation": st.GenerationNum,
			"Total time":      totalTime,
			"Live cells":      st.LiveCells,
		}
		fmt.Println("\nFinished:")
		c.printHashData(resultData)
		if c.profiler != nil {
			c.profiler.Print()
		}
	} else if st.RunningMode == universe.RunningStateRun {
		if st.GenerationNum%10 == 0 {
			fmt.Printf("  Generations done: %v\n", st.GenerationNum)
		}
	}
}

func (c *ConsoleOut) Register(u universe.Universe) {
	c.u = u
	o := c.u.Options()
	fmt.Println("Running configuration:")
	fmt.Printf("  Dimension: %v x %v\n", o.Width, o.Height)
	fmt.Printf("  Interval: %v\n", o.Interval)
	fmt.Printf("  Max iterations: %v steps\n", o.MaxSteps)
	c.printHashData(o.Advanced)
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Println("\nSimulation started...")
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Printf("  %s: %v\n", propName, d[propName])
	}
}
