package clear

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/nongdam/pkg/app"
	"tableflip.dev/nongdam/pkg/checklist"
)

// Clear empties a tab's checklist after confirmation.
type Clear struct {
	Service *app.Service
	Tab     checklist.Tab
	// Yes skips the prompt.
	Yes bool
	In  io.Reader
	Out io.Writer
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not clear, no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	count := len(n.Service.State().Checklists.For(n.Tab))
	if count == 0 {
		_, _ = fmt.Fprintf(out, "%s is already empty\n", n.Tab.Label())
		return nil
	}

	if !n.Yes {
		in := n.In
		if in == nil {
			in = os.Stdin
		}
		_, _ = fmt.Fprintf(out, "Clear %d items from %s? [y/N] ", count, n.Tab.Label())
		answer, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
		default:
			_, _ = fmt.Fprintln(out, "cancelled")
			return nil
		}
	}

	n.Service.Clear(n.Tab)
	_, _ = fmt.Fprintf(out, "cleared %d items from %s\n", count, n.Tab.Label())
	return nil
}
