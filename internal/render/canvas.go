package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Canvas is the drawing context the renderer targets. Every coordinate is an
// integer pixel; there is no way to place anything between pixels.
type Canvas interface {
	Size() (w, h int)
	Clear()
	FillRect(x, y, w, h int, c color.Color)
	// DrawImage scales img to w×h at (x, y) without filtering.
	DrawImage(img image.Image, x, y, w, h int)
}

// RasterCanvas draws into an in-memory RGBA image. Sprites are scaled
// nearest-neighbour so pixel art stays crisp.
type RasterCanvas struct {
	img *image.RGBA
}

// NewRasterCanvas allocates a transparent w×h canvas.
func NewRasterCanvas(w, h int) *RasterCanvas {
	return &RasterCanvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the backing image.
func (rc *RasterCanvas) Image() *image.RGBA {
	return rc.img
}

func (rc *RasterCanvas) Size() (int, int) {
	b := rc.img.Bounds()
	return b.Dx(), b.Dy()
}

func (rc *RasterCanvas) Clear() {
	draw.Draw(rc.img, rc.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (rc *RasterCanvas) FillRect(x, y, w, h int, c color.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(rc.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(rc.img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

func (rc *RasterCanvas) DrawImage(img image.Image, x, y, w, h int) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	draw.NearestNeighbor.Scale(rc.img, image.Rect(x, y, x+w, y+h), img, img.Bounds(), draw.Over, nil)
}
