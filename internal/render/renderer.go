package render

import (
	"image/color"

	"github.com/Garsondee/Dungeon-View/internal/assets"
	"github.com/Garsondee/Dungeon-View/internal/scene"
)

// EffectDrawer draws status-effect overlays for a unit after its sprite and
// health bar. (sx, sy) is the unit's snapped top-left pixel.
type EffectDrawer interface {
	DrawEffects(c Canvas, sx, sy, tileSize int, u *scene.Unit)
}

// EffectDrawerFunc adapts a function to EffectDrawer.
type EffectDrawerFunc func(c Canvas, sx, sy, tileSize int, u *scene.Unit)

func (fn EffectDrawerFunc) DrawEffects(c Canvas, sx, sy, tileSize int, u *scene.Unit) {
	fn(c, sx, sy, tileSize, u)
}

// Renderer draws a scene snapshot onto a Canvas. It holds only options, so one
// Renderer can serve any number of canvases.
type Renderer struct {
	defaultSprite string
	fogColor      color.Color
	effects       EffectDrawer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDefaultSprite sets the asset key used for units with no sprite of their
// own. Defaults to assets.KeyZombie.
func WithDefaultSprite(key string) Option {
	return func(r *Renderer) { r.defaultSprite = key }
}

// WithFogColor sets the fill for fogged cells. Defaults to opaque black.
func WithFogColor(c color.Color) Option {
	return func(r *Renderer) { r.fogColor = c }
}

// WithEffectDrawer installs a status-effect overlay.
func WithEffectDrawer(d EffectDrawer) Option {
	return func(r *Renderer) { r.effects = d }
}

// New returns a Renderer with the given options applied.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		defaultSprite: assets.KeyZombie,
		fogColor:      color.Black,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Frame summarises one render pass.
type Frame struct {
	Camera      Camera
	Visible     TileRange
	TilesDrawn  int
	FoggedTiles int
	UnitsDrawn  int
	UnitsCulled int
	UnitsFogged int
}

// Render draws sc onto c: camera, tiles, then units back to front. Units
// standing on a fogged cell are not drawn. It returns false without drawing
// if there is no canvas, no scene, or the viewport is degenerate. The scene is
// never modified; the camera is returned in Frame.
func (r *Renderer) Render(c Canvas, table assets.Table, vp Viewport, sc *scene.Scene) (Frame, bool) {
	if c == nil || sc == nil || !vp.Valid() {
		return Frame{}, false
	}
	c.Clear()

	var px, py float64
	if sc.Player != nil {
		px, py = sc.Player.X, sc.Player.Y
	}
	f := Frame{Camera: ComputeCamera(vp, px, py, sc.Size)}
	f.Visible = VisibleRange(f.Camera, vp, sc.Size)

	r.drawTiles(c, table, vp, sc, &f)
	r.drawUnits(c, table, vp, sc, &f)
	return f, true
}
