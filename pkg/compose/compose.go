// Package compose renders the checked catalog items as a shareable image:
// a title band above a grid of product cards.
package compose

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"tableflip.dev/nongdam/pkg/catalog"
	"tableflip.dev/nongdam/pkg/checklist"
	"tableflip.dev/nongdam/pkg/logging"
)

// ErrNothingToExport is returned before any drawing when there are no
// records to render.
var ErrNothingToExport = errors.New("compose: nothing to export")

// Mode picks the records an export starts from.
type Mode string

const (
	// ModeAll exports from the whole catalog.
	ModeAll Mode = "all"
	// ModeCurrent exports from the currently filtered records.
	ModeCurrent Mode = "current"
)

// Format is the encoding of the exported file.
type Format string

const (
	JPEG Format = "jpg"
	PNG  Format = "png"
)

// ParseFormat accepts jpg, jpeg or png.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "jpg", "jpeg":
		return JPEG, nil
	case "png":
		return PNG, nil
	}
	return "", fmt.Errorf("compose: unknown format %q, want jpg or png", s)
}

// Theme is the palette of one tab.
type Theme struct {
	Background color.RGBA
	Title      color.RGBA
	Nickname   color.RGBA
	Card       color.RGBA
	Border     color.RGBA
	Shadow     float64
	Name       color.RGBA
	Price      color.RGBA
}

// ThemeFor returns the palette of tab.
func ThemeFor(tab checklist.Tab) Theme {
	t := Theme{
		Background: rgb(0xfd, 0xfb, 0xf7),
		Title:      rgb(0xae, 0xb4, 0xd1),
		Nickname:   rgb(0x63, 0x6e, 0x72),
		Card:       rgb(0xff, 0xff, 0xff),
		Border:     rgb(0xea, 0xe8, 0xe4),
		Shadow:     0.1,
		Name:       rgb(0x2d, 0x34, 0x36),
		Price:      rgb(0xb2, 0xbe, 0xc3),
	}
	if tab == checklist.Wish {
		t.Title = rgb(0xe8, 0xa0, 0xb4)
	}
	return t
}

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xff} }

// DefaultTitle is the title used when none is given.
func DefaultTitle(tab checklist.Tab) string {
	if tab == checklist.Wish {
		return "농담곰 인형 위시 리스트"
	}
	return "농담곰 인형 보유 리스트"
}

// Options are the per export choices.
type Options struct {
	Tab       checklist.Tab
	ShowTitle bool
	Title     string
	// Nickname is drawn under the title when it is not blank.
	Nickname  string
	ShowName  bool
	ShowPrice bool
}

// DefaultOptions shows title, names and prices with the tab's title.
func DefaultOptions(tab checklist.Tab) Options {
	return Options{
		Tab:       tab,
		ShowTitle: true,
		Title:     DefaultTitle(tab),
		ShowName:  true,
		ShowPrice: true,
	}
}

// Select returns the records of source checked on tab, in order. On the
// wish tab owned records are left out when excludeOwned is set.
func Select(source catalog.Snapshot, lists checklist.Checklists, tab checklist.Tab, excludeOwned bool) catalog.Snapshot {
	set := lists.For(tab)
	out := make(catalog.Snapshot, 0, len(set))
	for _, r := range source {
		if !set.Has(r.ID()) {
			continue
		}
		if tab == checklist.Wish && excludeOwned && lists.IsOwned(r.ID()) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Composer draws records onto a canvas.
type Composer struct {
	Images ImageLoader
	Fonts  *FontSet
	Log    *zap.Logger
}

// Compose renders records as a card grid. Images are loaded one at a time
// in record order; a card whose image fails to load is drawn without one.
func (c *Composer) Compose(ctx context.Context, records catalog.Snapshot, opts Options) (*image.RGBA, error) {
	if len(records) == 0 {
		return nil, ErrNothingToExport
	}
	log := c.Log
	if log == nil {
		log = logging.Named("compose")
	}
	fonts := c.Fonts
	if fonts == nil {
		var err error
		if fonts, err = NewFontSet(nil); err != nil {
			return nil, err
		}
	}

	layout := NewLayout(len(records))
	theme := ThemeFor(opts.Tab)
	canvas := image.NewRGBA(layout.Bounds())
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(theme.Background), image.Point{}, draw.Src)

	center := float64(layout.Width) / 2
	if opts.ShowTitle {
		drawCentered(canvas, fonts.Title, theme.Title, opts.Title, center, middleBaseline(fonts.Title, TitleY))
	}
	if strings.TrimSpace(opts.Nickname) != "" {
		drawCentered(canvas, fonts.Nickname, theme.Nickname, opts.Nickname, center, middleBaseline(fonts.Nickname, NicknameY))
	}

	for i, r := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		card := layout.Card(i)
		shape := roundRect{r: card, radius: CardRadius}

		fill(canvas, shape, theme.Card)
		fill(canvas, shadow{shape: shape, blur: 15, opacity: theme.Shadow}, color.Black)
		fill(canvas, ring{shape: shape, width: 2}, theme.Border)

		if img := c.loadImage(ctx, log, r); img != nil {
			drawClipped(canvas, FitImage(card, img.Bounds().Size()), img, shape)
		}

		cx := float64(card.Min.X) + CardWidth/2
		if opts.ShowName {
			y := float64(card.Min.Y + NameTop)
			measure := func(s string) float64 { return Measure(fonts.Name, s) }
			for _, line := range WrapLines(r.Name(), TextWidth, measure) {
				drawCentered(canvas, fonts.Name, theme.Name, line, cx, y)
				y += NameLeading
			}
		}
		if opts.ShowPrice {
			top := PriceTopNoName
			if opts.ShowName {
				top = PriceTop
			}
			drawCentered(canvas, fonts.Price, theme.Price, r.Price(), cx, float64(card.Min.Y+top))
		}
	}
	return canvas, nil
}

func (c *Composer) loadImage(ctx context.Context, log *zap.Logger, r catalog.Record) image.Image {
	if c.Images == nil || r.Image() == "" {
		return nil
	}
	img, err := c.Images.LoadImage(ctx, r.Image())
	if err != nil {
		log.Debug("card drawn without image",
			zap.String("id", r.ID()),
			zap.String("image", r.Image()),
			zap.Error(err))
		return nil
	}
	return img
}

// Encode writes img in format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case JPEG, "":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 92})
	}
	return fmt.Errorf("compose: unknown format %q", format)
}

// FileName names the export of tab. A non-zero at adds a timestamp.
func FileName(tab checklist.Tab, format Format, at time.Time) string {
	if format == "" {
		format = JPEG
	}
	if at.IsZero() {
		return fmt.Sprintf("nongdam_%s_list.%s", tab, format)
	}
	return fmt.Sprintf("nongdam_%s_list_%s.%s", tab, at.Format("20060102-150405"), format)
}
