// Package key provides CLI helpers to display the item mark legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/nongdam/pkg/glyph"
)

// Key prints a legend describing item marks.
type Key struct {
	Out io.Writer
}

// Do renders the legend to color.Output.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, "")

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Mark"), bold.Sprint("Meaning"))
	for _, v := range glyph.DefaultGlyphs() {
		tbl.AddRow(v.Symbol, v.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
