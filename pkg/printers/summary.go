package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/nongdam/pkg/catalog/viewmodel"
)

// Summary prints the owned and total counts of every group as a table.
type Summary struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (s *Summary) Print(g viewmodel.Grouping) {
	out := s.Out
	if out == nil {
		out = color.Output
	}
	if len(g.Groups) == 0 {
		(&PrettyPrint{Out: out}).Empty(g.Message)
		return
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Group"), bold.Sprint("Owned"), bold.Sprint("Total"), bold.Sprint("%"))

	owned, total := 0, 0
	for _, grp := range g.Groups {
		tbl.AddRow(grp.Label, grp.Owned, grp.Total, percent(grp.Owned, grp.Total))
		owned += grp.Owned
		total += grp.Total
	}
	tbl.AddRow(bold.Sprint("All"), owned, total, percent(owned, total))
	tbl.RightAlign(1)
	tbl.RightAlign(2)
	tbl.RightAlign(3)

	_, _ = fmt.Fprintln(out, tbl)
}

func percent(n, of int) string {
	if of == 0 {
		return "-"
	}
	return fmt.Sprintf("%d%%", n*100/of)
}
