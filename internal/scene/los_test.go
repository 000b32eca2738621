package scene

import "testing"

// losGrid is a 7x7 floor with a wall column at x=3, rows 1..5.
func losGrid() Grid {
	g := NewGrid(7, CellFloor)
	for y := 1; y <= 5; y++ {
		g[y][3] = CellWall
	}
	return g
}

func TestLOS_ClearLine(t *testing.T) {
	if !NewGrid(5, CellFloor).HasLineOfSight(0.5, 0.5, 4.5, 4.5) {
		t.Fatal("expected clear LOS with no walls")
	}
}

func TestLOS_BlockedByWall(t *testing.T) {
	if losGrid().HasLineOfSight(1.5, 3.5, 5.5, 3.5) {
		t.Fatal("expected LOS blocked by the wall column")
	}
}

func TestLOS_WallItselfIsVisible(t *testing.T) {
	if !losGrid().HasLineOfSight(1.5, 3.5, 3.5, 3.5) {
		t.Fatal("the facing wall cell should be visible")
	}
}

func TestLOS_AroundTheEnd(t *testing.T) {
	// Row 0 is open above the wall.
	if !losGrid().HasLineOfSight(1.5, 0.5, 5.5, 0.5) {
		t.Fatal("ray along the open row should be clear")
	}
}

func TestLOS_DiagonalBlocked(t *testing.T) {
	if losGrid().HasLineOfSight(0.5, 1.5, 6.5, 5.5) {
		t.Fatal("diagonal ray should hit the wall column")
	}
}

func TestLOS_ZeroLength(t *testing.T) {
	// Same start and end: must not panic, and a point on floor sees itself.
	if !losGrid().HasLineOfSight(2.5, 2.5, 2.5, 2.5) {
		t.Fatal("a point should see itself")
	}
}

func TestRayIntersectsAABB(t *testing.T) {
	cases := []struct {
		name                   string
		ox, oy, ex, ey         float64
		minX, minY, maxX, maxY float64
		want                   bool
	}{
		{"inside", 1, 1, 2, 2, 0, 0, 10, 10, true},
		{"through", -5, 5, 15, 5, 0, 0, 10, 10, true},
		{"stops short", -5, 5, -1, 5, 0, 0, 10, 10, false},
		{"passes above", -5, -1, 15, -1, 0, 0, 10, 10, false},
		{"vertical miss", 11, -5, 11, 15, 0, 0, 10, 10, false},
		{"touches edge", -5, 0, 15, 0, 0, 0, 10, 10, true},
	}
	for _, tc := range cases {
		got := rayIntersectsAABB(tc.ox, tc.oy, tc.ex, tc.ey, tc.minX, tc.minY, tc.maxX, tc.maxY)
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestWorld_FogStopsAtWalls(t *testing.T) {
	w := &World{size: 7, sightRadius: 6, dungeon: losGrid(), fog: NewFog(7, true)}
	w.player = &Unit{X: 1, Y: 3}
	w.reveal()
	if w.fog[3][1] {
		t.Fatal("player cell should be revealed")
	}
	if w.fog[3][3] {
		t.Fatal("facing wall should be revealed")
	}
	if !w.fog[3][5] {
		t.Fatal("cell behind the wall should stay fogged")
	}
	if w.fog[0][1] {
		t.Fatal("open floor straight ahead should be revealed")
	}

	w.player.Y = 0
	w.reveal()
	if w.fog[0][5] {
		t.Fatal("open row around the wall end should be revealed")
	}
}
