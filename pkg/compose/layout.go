package compose

import "image"

// Fixed geometry of the exported image, in pixels.
const (
	MaxCols = 4

	CardWidth  = 300
	CardHeight = 420
	CardRadius = 20
	Gap        = 30
	Padding    = 60

	HeaderHeight = 160
	TitleY       = 60
	NicknameY    = 115

	ImageSize   = 260
	ImageTop    = 20
	NameTop     = 310
	NameLeading = 28
	TextWidth   = 260
	PriceTop    = 390
	// PriceTopNoName is used when names are hidden.
	PriceTopNoName = 330
)

// Layout is the grid for a number of cards.
type Layout struct {
	Count  int
	Cols   int
	Rows   int
	Width  int
	Height int
}

// NewLayout arranges n cards in at most MaxCols columns. n must be positive.
func NewLayout(n int) Layout {
	cols := n
	if cols > MaxCols {
		cols = MaxCols
	}
	rows := (n + cols - 1) / cols
	return Layout{
		Count:  n,
		Cols:   cols,
		Rows:   rows,
		Width:  Padding*2 + CardWidth*cols + Gap*(cols-1),
		Height: HeaderHeight + Padding + CardHeight*rows + Gap*(rows-1),
	}
}

// Bounds is the canvas rectangle.
func (l Layout) Bounds() image.Rectangle {
	return image.Rect(0, 0, l.Width, l.Height)
}

// Card returns the rectangle of the i-th card, filled row by row.
func (l Layout) Card(i int) image.Rectangle {
	c := i % l.Cols
	r := i / l.Cols
	x := Padding + c*(CardWidth+Gap)
	y := HeaderHeight + r*(CardHeight+Gap)
	return image.Rect(x, y, x+CardWidth, y+CardHeight)
}

// FitImage returns the destination of an image of size src inside the
// square image slot of card, keeping its aspect ratio and centering it.
func FitImage(card image.Rectangle, src image.Point) image.Rectangle {
	if src.X <= 0 || src.Y <= 0 {
		return image.Rectangle{}
	}
	aspect := float64(src.X) / float64(src.Y)
	dw, dh := float64(ImageSize), float64(ImageSize)
	if aspect > 1 {
		dh = dw / aspect
	} else {
		dw = dh * aspect
	}
	x := float64(card.Min.X) + (CardWidth-dw)/2
	y := float64(card.Min.Y+ImageTop) + (ImageSize-dh)/2
	return image.Rect(round(x), round(y), round(x+dw), round(y+dh))
}

func round(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
