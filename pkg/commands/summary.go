package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nongdam/pkg/commands/options"
	"tableflip.dev/nongdam/pkg/runner/summary"
)

func addSummary(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show how many items of each group are owned.",
		Example: `
nongdam summary
nongdam summary --character ngn
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			f, err := fo.Filters()
			if err != nil {
				return err
			}
			warnCompanyGroup(f)
			svc, err := newService()
			if err != nil {
				return err
			}
			s := summary.Summary{Service: svc, Filters: f}
			return s.Do(context.Background())
		},
	}

	options.AddFilterArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
