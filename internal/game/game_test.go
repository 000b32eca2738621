package game

import (
	"strings"
	"testing"

	"github.com/Garsondee/Dungeon-View/internal/assets"
	"github.com/Garsondee/Dungeon-View/internal/render"
	"github.com/Garsondee/Dungeon-View/internal/scene"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(scene.NewWorld(scene.WithSeed(4), scene.WithSize(24)), assets.Table{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestGame_AdvanceAccumulatesFractionalSpeed(t *testing.T) {
	g := newTestGame(t)
	total := 0
	for i := 0; i < 10; i++ {
		total += g.advance()
	}
	if total != 5 || g.world.Tick() != 5 {
		t.Fatalf("10 updates at 0.5x ran %d steps (world tick %d), want 5", total, g.world.Tick())
	}

	g.SetSpeed(3)
	if n := g.advance(); n != 3 {
		t.Fatalf("3x speed ran %d steps, want 3", n)
	}
}

func TestGame_PausedDoesNotStep(t *testing.T) {
	g := newTestGame(t)
	g.SetSpeed(-1)
	for i := 0; i < 20; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if g.world.Tick() != 0 {
		t.Fatalf("paused world advanced to tick %d", g.world.Tick())
	}
}

func TestGame_LayoutFollowsWindow(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	if w != 1920 || h != 1080 {
		t.Fatalf("Layout returned %dx%d", w, h)
	}
	if vp := g.Viewport(); vp != (render.Viewport{Width: 1920, Height: 1080, TileSize: 54}) {
		t.Fatalf("viewport = %+v", vp)
	}
	g.Layout(640, 480)
	if g.Viewport().TileSize != 32 {
		t.Fatalf("tile size after shrink = %d, want 32", g.Viewport().TileSize)
	}
}

func TestHUDLine(t *testing.T) {
	line := hudLine(42, render.Frame{
		Camera:      render.Camera{X: 3, Y: 7},
		UnitsDrawn:  5,
		UnitsCulled: 2,
	}, render.Viewport{TileSize: 48})
	for _, want := range []string{"tick 42", "cam 3,7", "tile 48px", "units 5 (culled 2"} {
		if !strings.Contains(line, want) {
			t.Fatalf("hud line %q missing %q", line, want)
		}
	}
}
