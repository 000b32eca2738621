package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/Garsondee/Dungeon-View/internal/assets"
)

// OpKind names a recorded canvas operation.
type OpKind string

const (
	OpClear OpKind = "clear"
	OpFill  OpKind = "fill"
	OpImage OpKind = "image"
)

// TraceOp is one recorded canvas call.
type TraceOp struct {
	Kind       OpKind
	X, Y, W, H int
	Color      color.RGBA // fills only
	Key        string     // images only: asset key, or "?" if unknown
}

// String formats the op as a fixed-width line.
//
//	image  wall          (  64, 128) 64x64
func (op TraceOp) String() string {
	label := op.Key
	if op.Kind == OpFill {
		label = fmt.Sprintf("#%02X%02X%02X%02X", op.Color.R, op.Color.G, op.Color.B, op.Color.A)
	}
	return fmt.Sprintf("%-6s %-12s (%4d,%4d) %dx%d", op.Kind, label, op.X, op.Y, op.W, op.H)
}

// Trace is a Canvas that records every call instead of drawing. Images are
// labelled with their asset key so draw order can be checked by name.
type Trace struct {
	w, h  int
	keys  map[image.Image]string
	ops   []TraceOp
	inner Canvas
}

// NewTrace returns a w×h recording canvas. table is used only to label images.
func NewTrace(w, h int, table assets.Table) *Trace {
	t := &Trace{w: w, h: h, keys: make(map[image.Image]string, len(table))}
	for k, img := range table {
		t.keys[img] = k
	}
	return t
}

// Tee makes the trace forward every call to c as well as recording it.
func (t *Trace) Tee(c Canvas) *Trace {
	t.inner = c
	return t
}

func (t *Trace) Size() (int, int) {
	return t.w, t.h
}

func (t *Trace) Clear() {
	t.ops = append(t.ops, TraceOp{Kind: OpClear, W: t.w, H: t.h})
	if t.inner != nil {
		t.inner.Clear()
	}
}

func (t *Trace) FillRect(x, y, w, h int, c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	t.ops = append(t.ops, TraceOp{Kind: OpFill, X: x, Y: y, W: w, H: h, Color: rgba})
	if t.inner != nil {
		t.inner.FillRect(x, y, w, h, c)
	}
}

func (t *Trace) DrawImage(img image.Image, x, y, w, h int) {
	key, ok := t.keys[img]
	if !ok {
		key = "?"
	}
	t.ops = append(t.ops, TraceOp{Kind: OpImage, X: x, Y: y, W: w, H: h, Key: key})
	if t.inner != nil {
		t.inner.DrawImage(img, x, y, w, h)
	}
}

// Ops returns every recorded op in call order.
func (t *Trace) Ops() []TraceOp {
	return t.ops
}

// Filter returns ops of the given kind and key. Pass "" to match any.
func (t *Trace) Filter(kind OpKind, key string) []TraceOp {
	var out []TraceOp
	for _, op := range t.ops {
		if kind != "" && op.Kind != kind {
			continue
		}
		if key != "" && op.Key != key {
			continue
		}
		out = append(out, op)
	}
	return out
}

// At returns the ops whose top-left corner is (x, y).
func (t *Trace) At(x, y int) []TraceOp {
	var out []TraceOp
	for _, op := range t.ops {
		if op.X == x && op.Y == y && op.Kind != OpClear {
			out = append(out, op)
		}
	}
	return out
}

// Count returns how many ops match kind and key.
func (t *Trace) Count(kind OpKind, key string) int {
	return len(t.Filter(kind, key))
}

// Reset drops all recorded ops.
func (t *Trace) Reset() {
	t.ops = t.ops[:0]
}
