package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nongdam/pkg/commands/options"
	teaui "tableflip.dev/nongdam/pkg/runner/tea"
)

func addBrowse(topLevel *cobra.Command) {
	to := &options.TabOptions{}
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse, check and export items in a full screen ui.",
		Example: `
nongdam browse
nongdam browse --tab wish --format png
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
			// The browser still opens on a failed load and shows the error.
			_, loadErr := svc.Load(context.Background())
			svc.SetTab(tab)
			ex, err := newExport(svc, eo)
			if err != nil {
				return err
			}
			return teaui.Run(svc, ex.RunState, loadErr)
		},
	}

	options.AddTabArg(cmd, to)
	options.AddExportArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}
