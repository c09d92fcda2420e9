package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nongdam/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Show the legend of item marks.",
		Example: `
nongdam key
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{}
			return k.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
