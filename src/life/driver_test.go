package life

import (
	"testing"
)

func Test_Driver_RandomInitialization(t *testing.T) {
	d := NewDriver()
	err := d.Initialize(Config{Width: 20, Height: 10, Probability: 0})
	if err != nil {
		t.Fatal(err)
	}
	g, overlay, generation := d.Snapshot()
	if g.LiveCells() != 0 {
		t.Errorf("probability 0 produced %v live cells", g.LiveCells())
	}
	if overlay != nil || generation != 0 {
		t.Errorf("fresh driver: overlay = %v, generation = %v", overlay, generation)
	}

	if err := d.Initialize(Config{Width: 20, Height: 10, Probability: 1}); err != nil {
		t.Fatal(err)
	}
	g, _, _ = d.Snapshot()
	if g.LiveCells() != 200 {
		t.Errorf("probability 1 produced %v live cells, want 200", g.LiveCells())
	}
}

func Test_Driver_RandomReproducible(t *testing.T) {
	build := func(seed int64) *Grid {
		d := NewDriver()
		if err := d.Initialize(Config{Width: 30, Height: 30, Probability: 0.5, RandSeed: seed}); err != nil {
			t.Fatal(err)
		}
		g, _, _ := d.Snapshot()
		return g
	}
	if !build(42).Equal(build(42)) {
		t.Error("same seed produced different grids")
	}
	if build(42).Equal(build(43)) {
		t.Error("different seeds produced identical 30x30 grids")
	}
}

func Test_Driver_InvalidProbability(t *testing.T) {
	d := NewDriver()
	if err := d.Initialize(Config{Width: 5, Height: 5, Probability: 1.5}); err == nil {
		t.Error("probability outside [0,1] accepted")
	}
	if d.Running() {
		t.Error("driver running after failed initialization")
	}
}

func Test_Driver_InvalidDimensions(t *testing.T) {
	d := NewDriver()
	if err := d.Initialize(Config{Width: 0, Height: 5}); err == nil {
		t.Error("zero width accepted")
	}
	if err := d.Initialize(Config{Width: 5, Height: -1, Seed: [][]int{}}); err == nil {
		t.Error("negative height accepted")
	}
}

func Test_Driver_SeedPattern(t *testing.T) {
	d := NewDriver()
	err := d.Initialize(Config{
		Width:  10,
		Height: 10,
		//the out-of-grid coordinate must be clipped, not fail
		Seed:        [][]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {50, 50}},
		SeedOffsetX: 4,
		SeedOffsetY: 3,
	})
	if err != nil {
		t.Fatal(err)
	}
	g, _, _ := d.Snapshot()
	if g.LiveCells() != 4 {
		t.Fatalf("seeded %v cells, want 4", g.LiveCells())
	}
	for _, p := range [][]int{{4, 3}, {5, 3}, {4, 4}, {5, 4}} {
		if g.Get(p[0], p[1]) != Alive {
			t.Errorf("cell (%v,%v) not seeded", p[0], p[1])
		}
	}
}

func Test_Driver_StepWithMetaState(t *testing.T) {
	d := NewDriver()
	err := d.Initialize(Config{
		Width:     10,
		Height:    10,
		Boundary:  Bounded,
		MetaState: true,
		Seed:      [][]int{{4, 5}, {5, 5}, {6, 5}}, //blinker
	})
	if err != nil {
		t.Fatal(err)
	}
	d.Step()
	g, overlay, generation := d.Snapshot()
	if generation != 1 {
		t.Errorf("generation = %v, want 1", generation)
	}
	if overlay == nil {
		t.Fatal("meta state enabled but overlay is nil after a step")
	}
	//the overlay must describe exactly the step that produced the grid
	if g.Get(5, 4) != Alive || overlay.Get(5, 4) != Born {
		t.Errorf("(5,4): cell %v, overlay %v", g.Get(5, 4), overlay.Get(5, 4))
	}
	if g.Get(4, 5) != Dead || overlay.Get(4, 5) != Died {
		t.Errorf("(4,5): cell %v, overlay %v", g.Get(4, 5), overlay.Get(4, 5))
	}
	if overlay.Get(5, 5) != StillAlive {
		t.Errorf("(5,5): overlay %v, want StillAlive", overlay.Get(5, 5))
	}
	d.Step()
	_, overlay2, generation := d.Snapshot()
	if generation != 2 {
		t.Errorf("generation = %v, want 2", generation)
	}
	if overlay2 == overlay {
		t.Error("overlay not replaced by the second step")
	}
}

func Test_Driver_StepWithoutMetaState(t *testing.T) {
	d := NewDriver()
	err := d.Initialize(Config{
		Width:  10,
		Height: 10,
		Seed:   [][]int{{4, 5}, {5, 5}, {6, 5}},
	})
	if err != nil {
		t.Fatal(err)
	}
	d.Step()
	_, overlay, _ := d.Snapshot()
	if overlay != nil {
		t.Error("meta state disabled but a step produced an overlay")
	}
	if d.previous != nil {
		t.Error("meta state disabled but the previous generation was retained")
	}
}

func Test_Driver_StepUninitialized(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("step on an uninitialized driver did not panic")
		}
	}()
	NewDriver().Step()
}

func Test_Driver_InstallAndReset(t *testing.T) {
	d := NewDriver()
	if err := d.Initialize(Config{Width: 5, Height: 5, Seed: [][]int{}}); err != nil {
		t.Fatal(err)
	}
	g, _, _ := d.Snapshot()

	toggled := WithToggled(g, 2, 2)
	if err := d.Install(toggled); err != nil {
		t.Fatal(err)
	}
	g, _, _ = d.Snapshot()
	if g.Get(2, 2) != Alive {
		t.Error("toggled cell not installed")
	}

	other, err := NewGrid(4, 4, func(x, y int) Cell { return Dead })
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Install(other); err == nil {
		t.Error("grid of foreign dimensions installed")
	}

	d.Step()
	d.Reset()
	g, overlay, generation := d.Snapshot()
	if g.LiveCells() != 0 || overlay != nil || generation != 0 {
		t.Errorf("after reset: %v live cells, overlay %v, generation %v",
			g.LiveCells(), overlay, generation)
	}
}
