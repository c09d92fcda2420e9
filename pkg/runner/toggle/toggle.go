package toggle

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"tableflip.dev/nongdam/pkg/app"
	"tableflip.dev/nongdam/pkg/checklist"
	"tableflip.dev/nongdam/pkg/glyph"
	"tableflip.dev/nongdam/pkg/logging"
)

// Toggle flips ids on a tab.
type Toggle struct {
	Service *app.Service
	Tab     checklist.Tab
	IDs     []string
	// Offline skips the catalog lookup; ids are toggled unchecked.
	Offline bool
	Out     io.Writer
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not toggle, no service")
	}
	if len(n.IDs) == 0 {
		return errors.New("toggle: no ids given")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	names := map[string]string{}
	if !n.Offline {
		snapshot, err := n.Service.Load(ctx)
		if err != nil {
			return err
		}
		for _, id := range n.IDs {
			r, ok := snapshot.Find(id)
			if !ok {
				return fmt.Errorf("toggle: unknown id %q", id)
			}
			names[id] = r.Name()
		}
	}

	log := logging.Named("toggle")
	for _, id := range n.IDs {
		if n.Tab == checklist.Wish && n.Service.IsOwned(id) {
			log.Info("wishing an owned item", zap.String("id", id))
		}
		on := n.Service.Toggle(n.Tab, id)
		name := names[id]
		if name == "" {
			name = id
		}
		if on {
			_, _ = fmt.Fprintf(out, "%s %s added to %s\n", glyph.Checked, name, n.Tab.Label())
		} else {
			_, _ = fmt.Fprintf(out, "%s %s removed from %s\n", glyph.Unchecked, name, n.Tab.Label())
		}
	}
	return nil
}
