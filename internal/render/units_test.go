package render

import (
	"image/color"
	"testing"

	"github.com/Garsondee/Dungeon-View/internal/scene"
)

func hurt(health, maxHealth float64) *scene.Unit {
	return &scene.Unit{HasHealth: true, Health: health, MaxHealth: maxHealth}
}

func TestHealthBarFor_HalfHealth(t *testing.T) {
	bar, ok := HealthBarFor(hurt(50, 100), 128, 64, 64)
	if !ok {
		t.Fatal("expected a bar at half health")
	}
	if bar.Width != 64 || bar.Fill != 32 {
		t.Fatalf("width/fill = %d/%d, want 64/32", bar.Width, bar.Fill)
	}
	if bar.X != 128 || bar.Y != 56 || bar.Height != 5 {
		t.Fatalf("geometry = %+v, want x=128 y=56 h=5", bar)
	}
	if bar.Color != healthBarAmber {
		t.Fatalf("exactly half should be amber, got %v", bar.Color)
	}
}

func TestHealthColor_Thresholds(t *testing.T) {
	cases := []struct {
		ratio float64
		want  string
	}{
		{0.99, "green"},
		{0.51, "green"},
		{0.5, "amber"},
		{0.26, "amber"},
		{0.25, "red"},
		{0.01, "red"},
	}
	names := map[string]color.RGBA{"green": healthBarGreen, "amber": healthBarAmber, "red": healthBarRed}
	for _, tc := range cases {
		if got := HealthColor(tc.ratio); got != names[tc.want] {
			t.Errorf("HealthColor(%v) = %v, want %s", tc.ratio, got, tc.want)
		}
	}
}

func TestHealthBarFor_Hidden(t *testing.T) {
	cases := []struct {
		name string
		u    *scene.Unit
	}{
		{"full health", hurt(100, 100)},
		{"overhealed", hurt(120, 100)},
		{"no max", hurt(5, 0)},
		{"no health attribute", &scene.Unit{Health: 1, MaxHealth: 10}},
	}
	for _, tc := range cases {
		if _, ok := HealthBarFor(tc.u, 0, 0, 32); ok {
			t.Errorf("%s: bar should not be drawn", tc.name)
		}
	}
}

func TestHealthBarFor_FillRounding(t *testing.T) {
	cases := []struct {
		health float64
		ts     int
		fill   int
	}{
		{1, 48, 0},   // 0.48 px
		{2, 48, 1},   // 0.96 px
		{33, 64, 21}, // 21.12 px
		{99, 96, 95}, // 95.04 px
	}
	for _, tc := range cases {
		bar, ok := HealthBarFor(hurt(tc.health, 100), 0, 0, tc.ts)
		if !ok {
			t.Fatalf("health %v: no bar", tc.health)
		}
		if bar.Fill != tc.fill {
			t.Errorf("health %v tile %d: fill = %d, want %d", tc.health, tc.ts, bar.Fill, tc.fill)
		}
	}
}

func TestHealthBar_DrawOrder(t *testing.T) {
	bar, _ := HealthBarFor(hurt(10, 100), 32, 40, 32)
	tr := NewTrace(100, 100, nil)
	bar.Draw(tr)
	ops := tr.Ops()
	if len(ops) != 2 {
		t.Fatalf("ops = %v, want background then foreground", ops)
	}
	if ops[0].Color != healthBarBg || ops[0].W != 32 {
		t.Fatalf("background = %v", ops[0])
	}
	if ops[1].Color != healthBarRed || ops[1].W != 3 || ops[1].Y != 32 {
		t.Fatalf("foreground = %v", ops[1])
	}

	// Zero-width foreground is skipped.
	empty, _ := HealthBarFor(hurt(1, 100), 0, 0, 32)
	tr.Reset()
	empty.Draw(tr)
	if len(tr.Ops()) != 1 {
		t.Fatalf("zero fill should draw background only, got %v", tr.Ops())
	}
}
