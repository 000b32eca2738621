package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Dungeon-View/internal/assets"
	"github.com/Garsondee/Dungeon-View/internal/render"
	"github.com/Garsondee/Dungeon-View/internal/scene"
)

// defaultSimSpeed is world steps per ebiten update. At 60 TPS the player walks
// about 3.75 tiles per second.
const defaultSimSpeed = 0.5

// backdrop shows through wherever the dungeon does not cover the window.
var backdrop = color.RGBA{R: 12, G: 10, B: 14, A: 255}

// Game hosts a dungeon World in an ebiten window.
type Game struct {
	world    *scene.World
	renderer *render.Renderer
	images   *imageCache
	table    assets.Table
	hud      *hud

	vp        render.Viewport
	lastFrame render.Frame
	lastScene *scene.Scene

	// Simulation speed control.
	simSpeed  float64 // world steps per update: 0=paused
	tickAccum float64 // fractional step accumulator for sub-1x speeds
}

// New returns a Game drawing w with the given (already loaded) asset table.
// Images are uploaded to the GPU once here.
func New(w *scene.World, table assets.Table, opts ...render.Option) (*Game, error) {
	h, err := newHUD()
	if err != nil {
		return nil, err
	}
	g := &Game{
		world:    w,
		renderer: render.New(opts...),
		images:   newImageCache(),
		hud:      h,
		simSpeed: defaultSimSpeed,
	}
	g.table = g.images.prepare(table)
	return g, nil
}

// SetSpeed sets world steps per update; 0 pauses.
func (g *Game) SetSpeed(s float64) {
	if s < 0 {
		s = 0
	}
	g.simSpeed = s
}

func (g *Game) Update() error {
	g.advance()
	return nil
}

// advance runs however many world steps the accumulated speed allows.
func (g *Game) advance() int {
	if g.simSpeed <= 0 {
		return 0
	}
	steps := 0
	g.tickAccum += g.simSpeed
	for g.tickAccum >= 1.0 {
		g.tickAccum -= 1.0
		g.world.Step()
		steps++
	}
	return steps
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.vp.Valid() {
		b := screen.Bounds()
		g.vp = render.NewViewport(b.Dx(), b.Dy())
	}

	sc := g.world.Snapshot()
	frame, ok := g.renderer.Render(newScreenCanvas(screen, g.images), g.table, g.vp, sc)
	if !ok {
		screen.Fill(backdrop)
		return
	}
	g.lastFrame = frame
	g.lastScene = sc

	g.hud.draw(screen, hudLine(g.world.Tick(), frame, g.vp))
}

// Layout tracks the window size so the tile size follows it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.vp.Width || outsideHeight != g.vp.Height {
		g.vp = render.NewViewport(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Viewport returns the viewport used for the next frame.
func (g *Game) Viewport() render.Viewport {
	return g.vp
}

// LastFrame returns the most recent frame summary and the scene it drew.
func (g *Game) LastFrame() (render.Frame, *scene.Scene) {
	return g.lastFrame, g.lastScene
}
