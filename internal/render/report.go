package render

import (
	"fmt"
	"strings"

	"github.com/Garsondee/Dungeon-View/internal/scene"
)

// Report describes one rendered frame in plain text, for logs and bug
// reports.
func Report(f Frame, vp Viewport, sc *scene.Scene) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Dungeon View frame report ---\n")
	fmt.Fprintf(&b, "viewport=%dx%d tile=%d\n", vp.Width, vp.Height, vp.TileSize)
	if sc != nil {
		fmt.Fprintf(&b, "dungeon=%d", sc.Size)
		if sc.Player != nil {
			fmt.Fprintf(&b, " player=(%.2f,%.2f)", sc.Player.X, sc.Player.Y)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "camera x=%d y=%d span=%dx%d\n", f.Camera.X, f.Camera.Y, f.Camera.Width, f.Camera.Height)
	fmt.Fprintf(&b, "visible cols=[%d,%d) rows=[%d,%d)\n", f.Visible.X0, f.Visible.X1, f.Visible.Y0, f.Visible.Y1)
	fmt.Fprintf(&b, "tiles drawn=%d fogged=%d\n", f.TilesDrawn, f.FoggedTiles)
	fmt.Fprintf(&b, "units drawn=%d culled=%d fogged=%d\n", f.UnitsDrawn, f.UnitsCulled, f.UnitsFogged)

	if sc == nil {
		return b.String()
	}
	order := DrawOrder(sc)
	if len(order) == 0 {
		return b.String()
	}
	b.WriteString("draw order:\n")
	for _, u := range order {
		fmt.Fprintf(&b, "  - %-10s %-9s y=%6.2f", u.ID, u.Kind, u.Y)
		if u.HasHealth {
			fmt.Fprintf(&b, " hp=%.0f/%.0f", u.Health, u.MaxHealth)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
