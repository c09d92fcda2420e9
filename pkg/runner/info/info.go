package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/nongdam/pkg/checklist"
	"tableflip.dev/nongdam/pkg/source"
	"tableflip.dev/nongdam/pkg/store"
)

// Info prints where the configuration and the checklists live.
type Info struct {
	Config      *store.FileConfig
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv(store.EnvConfigPath); override != "" {
		_, _ = fmt.Fprintf(out, "%s found on env, using %s\n", store.EnvConfigPath, override)
	} else {
		_, _ = fmt.Fprintf(out, "%s env var not set\n", store.EnvConfigPath)
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Persistence == nil {
		return errors.New("failed to create persistence object")
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	file := n.Config.File
	if file == "" {
		file = "(none)"
	}
	tbl.AddRow(bold.Sprint("config"), file)
	tbl.AddRow(bold.Sprint("path"), n.Persistence.BasePath())
	sheet := &source.Sheet{ID: n.Config.SheetID, Name: n.Config.SheetName}
	tbl.AddRow(bold.Sprint("sheet"), sheet.URL())
	if n.Config.Font != "" {
		tbl.AddRow(bold.Sprint("font"), n.Config.Font)
	}
	tbl.AddRow(bold.Sprint("out"), n.Config.Out)
	for _, tab := range checklist.Tabs() {
		tbl.AddRow(bold.Sprint(store.Key(tab)), fmt.Sprintf("%d items", len(n.Persistence.Checklist(tab))))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
