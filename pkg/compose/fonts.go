package compose

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontTimeout bounds how long an export waits for a custom font.
const FontTimeout = 3 * time.Second

// Text sizes in pixels.
const (
	TitleSize    = 45
	NicknameSize = 24
	NameSize     = 22
	PriceSize    = 18
)

// ErrFontTimeout is reported when a font did not load within FontTimeout.
var ErrFontTimeout = errors.New("compose: font load timed out")

// FontLoader produces raw TTF or OTF bytes.
type FontLoader func(ctx context.Context) ([]byte, error)

// FileFont loads a font file from disk.
func FileFont(path string) FontLoader {
	return func(context.Context) ([]byte, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font %s: %w", path, err)
		}
		return data, nil
	}
}

// FontResult is the outcome of LoadFont. Font is always usable; Fallback is
// set when it is the built-in font because the custom one failed.
type FontResult struct {
	Font     *opentype.Font
	Fallback bool
	Err      error
}

// TimedOut reports whether the custom font lost the race with the timer.
func (r FontResult) TimedOut() bool { return errors.Is(r.Err, ErrFontTimeout) }

// LoadFont runs load against a FontTimeout timer. Whichever finishes first
// wins; a failure or timeout yields the built-in bold font. A nil load means
// no custom font. after is the timer source; nil uses time.After.
func LoadFont(ctx context.Context, load FontLoader, after func(time.Duration) <-chan time.Time) FontResult {
	if load == nil {
		return FontResult{Font: defaultFont()}
	}
	if after == nil {
		after = time.After
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type loaded struct {
		font *opentype.Font
		err  error
	}
	done := make(chan loaded, 1)
	go func() {
		data, err := load(ctx)
		if err != nil {
			done <- loaded{err: err}
			return
		}
		f, err := opentype.Parse(data)
		if err != nil {
			err = fmt.Errorf("parse font: %w", err)
		}
		done <- loaded{font: f, err: err}
	}()

	select {
	case l := <-done:
		if l.err != nil {
			return FontResult{Font: defaultFont(), Fallback: true, Err: l.err}
		}
		return FontResult{Font: l.font}
	case <-after(FontTimeout):
		return FontResult{Font: defaultFont(), Fallback: true, Err: ErrFontTimeout}
	case <-ctx.Done():
		return FontResult{Font: defaultFont(), Fallback: true, Err: ctx.Err()}
	}
}

var (
	builtinOnce sync.Once
	builtin     *opentype.Font
)

func defaultFont() *opentype.Font {
	builtinOnce.Do(func() {
		f, err := opentype.Parse(gobold.TTF)
		if err != nil {
			panic(fmt.Sprintf("compose: built-in font: %v", err))
		}
		builtin = f
	})
	return builtin
}

// FontSet holds one face per text role.
type FontSet struct {
	Title    font.Face
	Nickname font.Face
	Name     font.Face
	Price    font.Face
}

// NewFontSet builds faces for every role from f. A nil f uses the built-in
// bold font.
func NewFontSet(f *opentype.Font) (*FontSet, error) {
	if f == nil {
		f = defaultFont()
	}
	face := func(size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	var (
		fs  FontSet
		err error
	)
	if fs.Title, err = face(TitleSize); err != nil {
		return nil, err
	}
	if fs.Nickname, err = face(NicknameSize); err != nil {
		return nil, err
	}
	if fs.Name, err = face(NameSize); err != nil {
		return nil, err
	}
	if fs.Price, err = face(PriceSize); err != nil {
		return nil, err
	}
	return &fs, nil
}

// Measure returns the advance width of s in pixels.
func Measure(face font.Face, s string) float64 {
	return fixedToFloat(font.MeasureString(face, s))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
