package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nongdam/pkg/runner/info"
	"tableflip.dev/nongdam/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show where the configuration and checklists are stored.",
		Example: `
nongdam info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(config)
			if err != nil {
				return err
			}
			s := info.Info{Config: config, Persistence: p}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
