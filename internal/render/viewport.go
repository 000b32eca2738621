package render

// Tile size bounds used when deriving a tile size from the window.
const (
	MinTileSize = 32
	MaxTileSize = 96

	tilesAcross = 20 // target tiles across the shorter window edge
)

// Viewport is the pixel size of the drawing surface and the edge length of
// one tile on it. It is passed into every render call; nothing about it is
// kept between frames.
type Viewport struct {
	Width    int
	Height   int
	TileSize int
}

// TileSizeFor picks a tile size for a w×h surface: the shorter edge split
// into tilesAcross tiles, clamped to [MinTileSize, MaxTileSize].
func TileSizeFor(w, h int) int {
	ts := min(w, h) / tilesAcross
	return max(MinTileSize, min(MaxTileSize, ts))
}

// NewViewport returns a viewport for a w×h surface with a derived tile size.
func NewViewport(w, h int) Viewport {
	return Viewport{Width: w, Height: h, TileSize: TileSizeFor(w, h)}
}

// Valid reports whether the viewport can be drawn into.
func (vp Viewport) Valid() bool {
	return vp.Width > 0 && vp.Height > 0 && vp.TileSize > 0
}

// tilesWide is the number of whole-or-partial tiles across the viewport.
func (vp Viewport) tilesWide() int {
	return ceilDiv(vp.Width, vp.TileSize)
}

func (vp Viewport) tilesHigh() int {
	return ceilDiv(vp.Height, vp.TileSize)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
