package summary

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/nongdam/pkg/app"
	"tableflip.dev/nongdam/pkg/catalog/viewmodel"
	"tableflip.dev/nongdam/pkg/printers"
)

// Summary prints owned counts per group.
type Summary struct {
	Service *app.Service
	Filters viewmodel.Filters
	Out     io.Writer
}

func (n *Summary) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not summarize, no service")
	}
	if _, err := n.Service.Load(ctx); err != nil {
		return err
	}
	f := n.Filters
	f.CheckedOnly = false
	n.Service.SetFilters(f)

	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, "")
	s := printers.Summary{Out: out}
	s.Print(n.Service.Grouping())
	return nil
}
