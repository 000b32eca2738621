package render

import (
	"image/color"

	"github.com/Garsondee/Dungeon-View/internal/assets"
	"github.com/Garsondee/Dungeon-View/internal/scene"
)

// fallbackColors fills cells whose symbol has no sprite of its own.
var fallbackColors = map[scene.Cell]color.RGBA{
	scene.CellChest: {R: 0xB8, G: 0x86, B: 0x0B, A: 255}, // dark goldenrod
	scene.CellMine:  {R: 0x88, G: 0x88, B: 0x88, A: 255},
	scene.CellTree:  {R: 0x22, G: 0x8B, B: 0x22, A: 255}, // forest green
	scene.CellBones: {R: 0xDD, G: 0xDD, B: 0xDD, A: 255},
	scene.CellGrave: {R: 0x55, G: 0x55, B: 0x55, A: 255},
	scene.CellAltar: {R: 0xFF, G: 0xCC, B: 0x00, A: 255},
	scene.CellExit:  {R: 0x00, G: 0xFF, B: 0xFF, A: 255},
	scene.CellShop:  {R: 0xFF, G: 0x69, B: 0xB4, A: 255}, // hot pink
}

// FallbackColor returns the flat fill for a cell symbol, if it has one.
func FallbackColor(c scene.Cell) (color.RGBA, bool) {
	col, ok := fallbackColors[c]
	return col, ok
}

func (r *Renderer) drawTiles(c Canvas, table assets.Table, vp Viewport, sc *scene.Scene, f *Frame) {
	ts := vp.TileSize
	vis := f.Visible
	for y := vis.Y0; y < vis.Y1; y++ {
		for x := vis.X0; x < vis.X1; x++ {
			sx, sy := f.Camera.WorldToScreen(float64(x), float64(y), ts)

			// Fog hides everything else in the cell.
			if sc.Fog.Hidden(x, y) {
				c.FillRect(sx, sy, ts, ts, r.fogColor)
				f.FoggedTiles++
				continue
			}

			cell := sc.Dungeon.At(x, y)
			terrain := assets.KeyFloor
			if cell == scene.CellWall {
				terrain = assets.KeyWall
			}
			if img := table[terrain]; img != nil {
				c.DrawImage(img, sx, sy, ts, ts)
			}

			key := string(cell)
			if img := table[key]; img != nil && key != terrain {
				c.DrawImage(img, sx, sy, ts, ts)
			} else if col, ok := fallbackColors[cell]; ok {
				c.FillRect(sx, sy, ts, ts, col)
			}
			f.TilesDrawn++
		}
	}
}
