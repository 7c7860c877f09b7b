package universe

import (
	"testing"
	"time"

	"golife/src/life"
)

func newTestUniverse(t *testing.T, o Options) (*BaseUniverse, chan Status) {
	t.Helper()
	o.Interval = 0
	stateCh := make(chan Status, 10)
	u, err := NewBaseUniverse(&o, stateCh)
	if err != nil {
		t.Fatal(err)
	}
	return u, stateCh
}

func waitForFinish(t *testing.T, stateCh chan Status) Status {
	t.Helper()
	for {
		select {
		case st := <-stateCh:
			if st.RunningMode == RunningStateFinished {
				return st
			}
		case <-time.After(5 * time.Second):
			t.Fatal("universe did not finish")
		}
	}
}

func Test_Universe_InvalidDimensions(t *testing.T) {
	o := DefaultUniverseOptions
	o.Width = 0
	if _, err := NewBaseUniverse(&o, nil); err == nil {
		t.Error("universe accepted zero width")
	}
}

func Test_Universe_FinishesOnStillLife(t *testing.T) {
	u, stateCh := newTestUniverse(t, Options{Width: 10, Height: 10, MaxSteps: 100})
	defer u.Close()
	u.AddTemplate(Template{"block", "2x2 still life", [][]int{{4, 4}, {5, 4}, {4, 5}, {5, 5}}})
	u.SettleTemplate("block")
	u.Run()
	st := waitForFinish(t, stateCh)
	if st.LiveCells != 4 {
		t.Errorf("still life finished with %v live cells, want 4", st.LiveCells)
	}
	if st.GenerationNum >= 100 {
		t.Error("still life ran to the step limit instead of stagnation")
	}
}

func Test_Universe_FinishesOnExtinction(t *testing.T) {
	u, stateCh := newTestUniverse(t, Options{Width: 10, Height: 10, MaxSteps: 100})
	defer u.Close()
	u.AddTemplate(Template{"lonely", "one doomed cell", [][]int{{5, 5}}})
	u.SettleTemplate("lonely")
	u.Run()
	st := waitForFinish(t, stateCh)
	if st.LiveCells != 0 {
		t.Errorf("extinction finished with %v live cells", st.LiveCells)
	}
	if st.GenerationNum != 1 {
		t.Errorf("extinction took %v generations, want 1", st.GenerationNum)
	}
}

func Test_Universe_FinishesOnMaxSteps(t *testing.T) {
	u, stateCh := newTestUniverse(t, Options{Width: 10, Height: 10, MaxSteps: 5})
	defer u.Close()
	//a blinker never stagnates, only the step limit stops it
	u.AddTemplate(Template{"blinker", "period-2 oscillator", [][]int{{4, 5}, {5, 5}, {6, 5}}})
	u.SettleTemplate("blinker")
	u.Run()
	st := waitForFinish(t, stateCh)
	if st.GenerationNum != 5 {
		t.Errorf("finished at generation %v, want 5", st.GenerationNum)
	}
	if st.LiveCells != 3 {
		t.Errorf("blinker finished with %v live cells, want 3", st.LiveCells)
	}
}

func Test_Universe_MetaOverlayOnStep(t *testing.T) {
	u, stateCh := newTestUniverse(t, Options{
		Width: 10, Height: 10, MaxSteps: 100, MetaState: true,
	})
	defer u.Close()
	u.AddTemplate(Template{"blinker", "period-2 oscillator", [][]int{{4, 5}, {5, 5}, {6, 5}}})
	u.SettleTemplate("blinker")
	u.Step()
	for {
		st := <-stateCh
		if st.RunningMode != RunningStateStep {
			break
		}
	}
	grid, overlay, generation := u.Snapshot()
	if generation != 1 {
		t.Fatalf("generation = %v, want 1", generation)
	}
	if overlay == nil {
		t.Fatal("no overlay after a step with meta state enabled")
	}
	if grid.Get(5, 4) != life.Alive || overlay.Get(5, 4) != life.Born {
		t.Error("overlay does not match the grid it was stepped with")
	}
}

func Test_Universe_ToggleCell(t *testing.T) {
	u, stateCh := newTestUniverse(t, Options{Width: 10, Height: 10, MaxSteps: 100})
	defer u.Close()
	u.ToggleCell(3, 3)
	u.ToggleCell(50, 3) //outside, ignored
	u.Step()
	for {
		st := <-stateCh
		if st.RunningMode == RunningStateFinished {
			break
		}
	}
	//a single toggled cell dies of underpopulation on the first step
	grid, _, _ := u.Snapshot()
	if grid.LiveCells() != 0 {
		t.Errorf("%v live cells after the lonely toggled cell stepped", grid.LiveCells())
	}
}
