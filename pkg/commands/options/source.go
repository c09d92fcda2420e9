package options

import (
	"github.com/spf13/cobra"
)

// SourceOptions override where the catalog comes from.
type SourceOptions struct {
	File      string
	SheetID   string
	SheetName string
}

func AddSourceArgs(cmd *cobra.Command, o *SourceOptions) {
	cmd.PersistentFlags().StringVar(&o.File, "file", "",
		"Read the catalog from a local CSV file instead of the spreadsheet.")
	cmd.PersistentFlags().StringVar(&o.SheetID, "sheet-id", "",
		"Spreadsheet id, overrides the configured one.")
	cmd.PersistentFlags().StringVar(&o.SheetName, "sheet-name", "",
		"Sheet title, overrides the configured one.")
}
