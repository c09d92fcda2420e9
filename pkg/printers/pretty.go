package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/nongdam/pkg/catalog/viewmodel"
	"tableflip.dev/nongdam/pkg/glyph"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Grouping prints every group, or the empty message when there is nothing
// to show.
func (pp *PrettyPrint) Grouping(g viewmodel.Grouping) {
	if len(g.Groups) == 0 {
		pp.Empty(g.Message)
		return
	}
	spacing := pp.spacing(g)
	for _, grp := range g.Groups {
		pp.Group(grp, spacing)
	}
}

// spacing is the width of the id column.
func (pp *PrettyPrint) spacing(g viewmodel.Grouping) int {
	if !pp.ShowID {
		return 0
	}
	width := 0
	for _, grp := range g.Groups {
		for _, it := range grp.Items {
			if n := len(it.Record.ID()); n > width {
				width = n
			}
		}
	}
	return width + 2
}

func (pp *PrettyPrint) Group(grp viewmodel.Group, spacing int) {
	w := pp.out()
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if spacing > 0 {
		_, _ = fmt.Fprint(w, strings.Repeat(" ", spacing))
	}
	_, _ = t.Fprint(w, grp.Label)
	_, _ = c.Fprintf(w, " (%d/%d)\n", grp.Owned, grp.Total)

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	p := color.New(color.Faint)
	for _, it := range grp.Items {
		if spacing > 0 {
			id := it.Record.ID()
			_, _ = y.Fprint(w, id)
			_, _ = fmt.Fprint(w, strings.Repeat(" ", spacing-len(id)))
		}
		mark := glyph.MarkFor(it.Checked, it.Locked, it.Toggleable)
		_, _ = markColor(mark).Fprint(w, mark.String())
		_, _ = fmt.Fprintf(w, " %s", it.Record.Name())
		if price := it.Record.Price(); price != "" {
			_, _ = p.Fprintf(w, "  %s", price)
		}
		_, _ = fmt.Fprintln(w)
	}
	_, _ = fmt.Fprintln(w)
}

func (pp *PrettyPrint) Empty(message string) {
	if message == "" {
		return
	}
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintf(pp.out(), " %s\n\n", message)
}

func markColor(m glyph.Mark) *color.Color {
	switch m {
	case glyph.Checked:
		return color.New(color.FgHiGreen)
	case glyph.Locked:
		return color.New(color.FgHiBlue)
	case glyph.Gallery:
		return color.New(color.FgHiMagenta)
	}
	return color.New(color.Faint)
}
