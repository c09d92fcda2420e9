package compose

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// roundRect is an anti-aliased alpha mask of a rounded rectangle. inset
// shrinks (positive) or grows (negative) the shape.
type roundRect struct {
	r      image.Rectangle
	radius float64
	inset  float64
}

func (m roundRect) ColorModel() color.Model { return color.AlphaModel }

func (m roundRect) Bounds() image.Rectangle { return m.r }

func (m roundRect) At(x, y int) color.Color {
	return color.Alpha{A: coverage(0.5 - m.distance(x, y))}
}

// distance is the signed distance from the pixel center to the outline;
// negative inside.
func (m roundRect) distance(x, y int) float64 {
	minX := float64(m.r.Min.X) + m.inset
	minY := float64(m.r.Min.Y) + m.inset
	maxX := float64(m.r.Max.X) - m.inset
	maxY := float64(m.r.Max.Y) - m.inset
	radius := math.Max(m.radius-m.inset, 0)

	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	hx, hy := (maxX-minX)/2, (maxY-minY)/2
	px, py := float64(x)+0.5, float64(y)+0.5

	qx := math.Abs(px-cx) - (hx - radius)
	qy := math.Abs(py-cy) - (hy - radius)
	outside := math.Hypot(math.Max(qx, 0), math.Max(qy, 0))
	inside := math.Min(math.Max(qx, qy), 0)
	return outside + inside - radius
}

// ring masks a stroke of width centered on the outline of shape.
type ring struct {
	shape roundRect
	width float64
}

func (m ring) ColorModel() color.Model { return color.AlphaModel }

func (m ring) Bounds() image.Rectangle {
	pad := int(math.Ceil(m.width))
	return m.shape.r.Inset(-pad)
}

func (m ring) At(x, y int) color.Color {
	d := math.Abs(m.shape.distance(x, y)) - m.width/2
	return color.Alpha{A: coverage(0.5 - d)}
}

// shadow is a soft falloff around shape, transparent inside it.
type shadow struct {
	shape   roundRect
	blur    float64
	opacity float64
}

func (m shadow) ColorModel() color.Model { return color.AlphaModel }

func (m shadow) Bounds() image.Rectangle {
	return m.shape.r.Inset(-int(math.Ceil(m.blur * 2)))
}

func (m shadow) At(x, y int) color.Color {
	d := m.shape.distance(x, y)
	if d <= 0 {
		return color.Alpha{}
	}
	sigma := m.blur / 2
	a := m.opacity * math.Exp(-(d*d)/(2*sigma*sigma))
	return color.Alpha{A: uint8(a*255 + 0.5)}
}

func coverage(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 0xff
	}
	return uint8(f*255 + 0.5)
}

func fill(dst draw.Image, mask image.Image, c color.Color) {
	b := mask.Bounds()
	draw.DrawMask(dst, b, image.NewUniform(c), image.Point{}, mask, b.Min, draw.Over)
}

// drawClipped scales src into r and paints it through clip.
func drawClipped(dst draw.Image, r image.Rectangle, src image.Image, clip image.Image) {
	if r.Empty() {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)
	draw.DrawMask(dst, r, scaled, image.Point{}, clip, r.Min, draw.Over)
}

// drawCentered writes s with its horizontal center at x and its baseline at
// y.
func drawCentered(dst draw.Image, face font.Face, c color.Color, s string, x, y float64) {
	w := Measure(face, s)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(x - w/2), Y: floatToFixed(y)},
	}
	d.DrawString(s)
}

// middleBaseline returns the baseline that vertically centers face's em box
// on y.
func middleBaseline(face font.Face, y float64) float64 {
	m := face.Metrics()
	return y + (fixedToFloat(m.Ascent)-fixedToFloat(m.Descent))/2
}

func floatToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f * 64))
}
