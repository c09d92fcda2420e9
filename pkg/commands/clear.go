package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nongdam/pkg/commands/options"
	"tableflip.dev/nongdam/pkg/runner/clear"
)

func addClear(topLevel *cobra.Command) {
	to := &options.TabOptions{}
	yes := false

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Uncheck every item on a tab.",
		Example: `
nongdam clear --tab wish
nongdam clear --yes
`,
		Args: cobra.NoArgs,
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
			s := clear.Clear{
				Service: svc,
				Tab:     tab,
				Yes:     yes,
			}
			return s.Do(context.Background())
		},
	}

	options.AddTabArg(cmd, to)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false,
		"Do not ask for confirmation.")

	topLevel.AddCommand(cmd)
}
