package render

import "math"

// Camera is the visible world window for one frame: top-left tile offset and
// tile extent, all whole tiles.
type Camera struct {
	X, Y          int
	Width, Height int
}

// ComputeCamera centres the camera on (px, py), clamps it to the dungeon and
// snaps it to whole tiles. When the viewport is larger than the dungeon the
// offset is 0 on that axis.
func ComputeCamera(vp Viewport, px, py float64, dungeonSize int) Camera {
	ts := float64(vp.TileSize)
	spanX := float64(vp.Width) / ts
	spanY := float64(vp.Height) / ts

	camX := clampCamera(px-spanX/2, float64(dungeonSize)-spanX)
	camY := clampCamera(py-spanY/2, float64(dungeonSize)-spanY)

	cam := Camera{
		X:      snap(camX),
		Y:      snap(camY),
		Width:  vp.tilesWide(),
		Height: vp.tilesHigh(),
	}
	// A fractional span can round the offset one tile past the far edge.
	cam.X = min(cam.X, max(0, dungeonSize-cam.Width))
	cam.Y = min(cam.Y, max(0, dungeonSize-cam.Height))
	return cam
}

// clampCamera clamps v to [0, hi], with the lower bound winning if hi < 0.
func clampCamera(v, hi float64) float64 {
	return math.Max(0, math.Min(v, hi))
}

// WorldToScreen maps a world position to a pixel position. Each coordinate is
// snapped on its own so neighbouring tiles never accumulate drift.
func (c Camera) WorldToScreen(wx, wy float64, tileSize int) (int, int) {
	ts := float64(tileSize)
	return snap((wx - float64(c.X)) * ts), snap((wy - float64(c.Y)) * ts)
}

// TileRange is a half-open block of grid cells.
type TileRange struct {
	X0, X1 int
	Y0, Y1 int
}

// Empty reports whether the range holds no cells.
func (r TileRange) Empty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// VisibleRange returns the cells that can touch the viewport. One extra
// tile on the far edge covers any partial tile.
func VisibleRange(c Camera, vp Viewport, dungeonSize int) TileRange {
	return TileRange{
		X0: max(0, c.X),
		X1: min(dungeonSize, c.X+vp.tilesWide()+1),
		Y0: max(0, c.Y),
		Y1: min(dungeonSize, c.Y+vp.tilesHigh()+1),
	}
}

// snap rounds half up, the same way on both sides of zero.
func snap(v float64) int {
	return int(math.Floor(v + 0.5))
}
