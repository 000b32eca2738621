package render

import (
	"image"
	"image/color"
	"sort"
	"strings"

	"github.com/Garsondee/Dungeon-View/internal/assets"
	"github.com/Garsondee/Dungeon-View/internal/scene"
)

const (
	healthBarHeight = 5
	healthBarGap    = 8 // pixels from the bar's top edge to the sprite's top edge
)

var (
	healthBarBg    = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	healthBarGreen = color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 255}
	healthBarAmber = color.RGBA{R: 0xFF, G: 0xC1, B: 0x07, A: 255}
	healthBarRed   = color.RGBA{R: 0xF4, G: 0x43, B: 0x36, A: 255}
)

// DrawOrder returns the live units of sc sorted back to front (ascending
// world Y). Dead units are left out; equal Y keeps monsters, mercenaries,
// player order.
func DrawOrder(sc *scene.Scene) []*scene.Unit {
	all := sc.Units()
	live := make([]*scene.Unit, 0, len(all))
	for _, u := range all {
		if u.Alive() {
			live = append(live, u)
		}
	}
	sort.SliceStable(live, func(i, j int) bool { return live[i].Y < live[j].Y })
	return live
}

func (r *Renderer) drawUnits(c Canvas, table assets.Table, vp Viewport, sc *scene.Scene, f *Frame) {
	ts := vp.TileSize
	for _, u := range DrawOrder(sc) {
		sx, sy := f.Camera.WorldToScreen(u.X, u.Y, ts)
		// One tile of slack on every side.
		if sx < -ts || sx > vp.Width || sy < -ts || sy > vp.Height {
			f.UnitsCulled++
			continue
		}
		if sc.Fog.Hidden(snap(u.X), snap(u.Y)) {
			f.UnitsFogged++
			continue
		}

		if img := r.sprite(table, u, u == sc.Player); img != nil {
			c.DrawImage(img, sx, sy, ts, ts)
		}
		if bar, ok := HealthBarFor(u, sx, sy, ts); ok {
			bar.Draw(c)
		}
		if r.effects != nil {
			r.effects.DrawEffects(c, sx, sy, ts, u)
		}
		f.UnitsDrawn++
	}
}

// SpriteKey is the asset key a unit asks for before any fallback.
func (r *Renderer) SpriteKey(u *scene.Unit, isPlayer bool) string {
	switch {
	case u.Type != "":
		return strings.ToLower(u.Type)
	case isPlayer:
		return assets.KeyPlayer
	default:
		return r.defaultSprite
	}
}

func (r *Renderer) sprite(table assets.Table, u *scene.Unit, isPlayer bool) image.Image {
	if img := table[r.SpriteKey(u, isPlayer)]; img != nil {
		return img
	}
	return table[r.defaultSprite]
}

// HealthBar is the pixel geometry of one unit's health bar.
type HealthBar struct {
	X, Y   int
	Width  int // full bar, equal to the tile size
	Height int
	Fill   int // foreground width
	Color  color.RGBA
}

// HealthBarFor returns the bar for a unit drawn at (sx, sy), or false when the
// unit is at full health or has no health to show.
func HealthBarFor(u *scene.Unit, sx, sy, tileSize int) (HealthBar, bool) {
	if !u.HasHealth || u.MaxHealth <= 0 || u.Health >= u.MaxHealth {
		return HealthBar{}, false
	}
	ratio := u.Health / u.MaxHealth
	fill := max(0, min(tileSize, snap(float64(tileSize)*ratio)))
	return HealthBar{
		X:      sx,
		Y:      sy - healthBarGap,
		Width:  tileSize,
		Height: healthBarHeight,
		Fill:   fill,
		Color:  HealthColor(ratio),
	}, true
}

// HealthColor is green above half health, amber above a quarter, red below.
// Exactly half is amber.
func HealthColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.5:
		return healthBarGreen
	case ratio > 0.25:
		return healthBarAmber
	default:
		return healthBarRed
	}
}

// Draw paints the background then the foreground.
func (b HealthBar) Draw(c Canvas) {
	c.FillRect(b.X, b.Y, b.Width, b.Height, healthBarBg)
	if b.Fill > 0 {
		c.FillRect(b.X, b.Y, b.Fill, b.Height, b.Color)
	}
}
