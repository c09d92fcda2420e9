package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nongdam/pkg/commands/options"
	"tableflip.dev/nongdam/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	to := &options.TabOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Browse and check items in a terminal ui.",
		Example: `
nongdam ui
nongdam ui --tab wish
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, err := to.Parse()
			if err != nil {
				return err
			}
			logToFile()
			svc, err := newService()
			if err != nil {
				return err
			}
			svc.SetTab(tab)
			s := ui.UI{Service: svc}
			return s.Do(context.Background())
		},
	}

	options.AddTabArg(cmd, to)

	topLevel.AddCommand(cmd)
}
