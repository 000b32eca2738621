package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Dungeon-View/internal/assets"
)

// imageCache maps decoded images to their GPU copies so each asset is
// uploaded once.
type imageCache struct {
	gpu map[image.Image]*ebiten.Image
}

func newImageCache() *imageCache {
	return &imageCache{gpu: make(map[image.Image]*ebiten.Image)}
}

// prepare returns a table holding GPU images for every entry of t. The
// original images stay the cache keys so lookups work with either.
func (ic *imageCache) prepare(t assets.Table) assets.Table {
	out := make(assets.Table, len(t))
	for k, img := range t {
		out[k] = ic.lookup(img)
	}
	return out
}

func (ic *imageCache) lookup(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if e, ok := ic.gpu[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	ic.gpu[img] = e
	return e
}

// screenCanvas adapts an ebiten image to render.Canvas. Fills are not
// anti-aliased and sprites use nearest filtering.
type screenCanvas struct {
	dst    *ebiten.Image
	images *imageCache
}

func newScreenCanvas(dst *ebiten.Image, images *imageCache) *screenCanvas {
	return &screenCanvas{dst: dst, images: images}
}

func (sc *screenCanvas) Size() (int, int) {
	b := sc.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (sc *screenCanvas) Clear() {
	sc.dst.Fill(backdrop)
}

func (sc *screenCanvas) FillRect(x, y, w, h int, c color.Color) {
	vector.FillRect(sc.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (sc *screenCanvas) DrawImage(img image.Image, x, y, w, h int) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	src := sc.images.lookup(img)
	b := src.Bounds()
	if b.Empty() {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.Filter = ebiten.FilterNearest
	opts.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	opts.GeoM.Translate(float64(x), float64(y))
	sc.dst.DrawImage(src, opts)
}
