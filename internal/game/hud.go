package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/Garsondee/Dungeon-View/internal/render"
)

const (
	hudFontSize = 14
	hudPad      = 6
)

// hud is the one-line status strip along the top edge.
type hud struct {
	face *text.GoTextFace
}

func newHUD() (*hud, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load hud font: %w", err)
	}
	return &hud{face: &text.GoTextFace{Source: src, Size: hudFontSize}}, nil
}

func (h *hud) draw(screen *ebiten.Image, line string) {
	w, lh := text.Measure(line, h.face, 0)
	vector.FillRect(screen, 0, 0, float32(w)+2*hudPad, float32(lh)+2*hudPad, color.RGBA{A: 170}, false)

	opts := &text.DrawOptions{}
	opts.GeoM.Translate(hudPad, hudPad)
	opts.ColorScale.ScaleWithColor(color.RGBA{R: 220, G: 230, B: 220, A: 255})
	text.Draw(screen, line, h.face, opts)

	b := screen.Bounds()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f fps", ebiten.ActualFPS()), b.Dx()-60, b.Dy()-20)
}

func hudLine(tick int, f render.Frame, vp render.Viewport) string {
	return fmt.Sprintf("tick %d  cam %d,%d  tile %dpx  units %d (culled %d, fogged %d)",
		tick, f.Camera.X, f.Camera.Y, vp.TileSize, f.UnitsDrawn, f.UnitsCulled, f.UnitsFogged)
}
