package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/nongdam/pkg/checklist"
	"tableflip.dev/nongdam/pkg/commands/options"
	"tableflip.dev/nongdam/pkg/runner/toggle"
	"tableflip.dev/nongdam/pkg/store"
)

func addToggle(topLevel *cobra.Command) {
	to := &options.TabOptions{}
	offline := false

	cmd := &cobra.Command{
		Use:   "toggle <id>...",
		Short: "Check or uncheck items on a tab.",
		Example: `
nongdam toggle 12
nongdam toggle 12 13 --tab wish
`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return checkedCompletions(to, toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			tab, err := to.Parse()
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			s := toggle.Toggle{
				Service: svc,
				Tab:     tab,
				IDs:     args,
				Offline: offline,
			}
			return s.Do(context.Background())
		},
	}

	options.AddTabArg(cmd, to)
	cmd.Flags().BoolVar(&offline, "offline", false,
		"Do not look the ids up in the catalog.")

	topLevel.AddCommand(cmd)
}

// checkedCompletions offers the ids already on the tab, which is enough to
// uncheck without fetching the catalog.
func checkedCompletions(to *options.TabOptions, toComplete string) []string {
	tab, err := to.Parse()
	if err != nil {
		tab = checklist.Owned
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil
	}
	var ids []string
	for _, id := range p.Checklist(tab).Sorted() {
		if strings.HasPrefix(id, toComplete) {
			ids = append(ids, id)
		}
	}
	return ids
}
