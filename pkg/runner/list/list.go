package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"tableflip.dev/nongdam/pkg/app"
	"tableflip.dev/nongdam/pkg/catalog/viewmodel"
	"tableflip.dev/nongdam/pkg/printers"
)

// List prints the grouped catalog for a set of filters.
type List struct {
	Service *app.Service
	Filters viewmodel.Filters
	ShowID  bool
	JSON    bool
	YAML    bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	if _, err := n.Service.Load(ctx); err != nil {
		return err
	}
	n.Service.SetFilters(n.Filters)
	g := n.Service.Grouping()

	out := n.Out
	if out == nil {
		out = color.Output
	}
	switch {
	case n.JSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	case n.YAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(g); err != nil {
			return err
		}
		return enc.Close()
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
	_, _ = fmt.Fprintln(out, "")
	pp.Title(fmt.Sprintf("%s · %d", n.Filters.Normalize().Tab.Label(), g.Len()))
	pp.NewLine()
	pp.Grouping(g)
	return nil
}
