package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nongdam/pkg/commands/options"
	"tableflip.dev/nongdam/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List the catalog grouped for the current filters.",
		Example: `
nongdam list
nongdam list --tab wish --character ngn
nongdam list --company-group old --checked-only
nongdam list --json
`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return output.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			f, err := fo.Filters()
			if err != nil {
				return err
			}
			warnCompanyGroup(f)
			svc, err := newService()
			if err != nil {
				return output.HandleError(err)
			}
			s := list.List{
				Service: svc,
				Filters: f,
				ShowID:  io.ShowID,
				JSON:    output.JSON,
				YAML:    output.YAML,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	options.AddStructuredOutputArgs(cmd, output)

	topLevel.AddCommand(cmd)
}
