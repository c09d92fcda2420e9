package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/nongdam/pkg/app"
	"tableflip.dev/nongdam/pkg/commands/options"
	"tableflip.dev/nongdam/pkg/compose"
	"tableflip.dev/nongdam/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the checked items of a tab as an image.",
		Example: `
nongdam export
nongdam export --tab wish --nickname "곰돌이" --format png
nongdam export --mode current --country japan --no-price
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
			svc.SetFilters(f)
			s, err := newExport(svc, eo)
			if err != nil {
				return err
			}
			return s.Do(context.Background())
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddExportArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}

// newExport builds an exporter from the flags, falling back to the
// configured output directory and font.
func newExport(svc *app.Service, eo *options.ExportOptions) (*export.Export, error) {
	mode, err := eo.ParseMode()
	if err != nil {
		return nil, err
	}
	format, err := compose.ParseFormat(eo.Format)
	if err != nil {
		return nil, err
	}
	out := eo.Out
	if out == "" {
		out = config.Out
	}
	font := eo.Font
	if font == "" {
		font = config.Font
	}
	return &export.Export{
		Service:      svc,
		Mode:         mode,
		Options:      eo.ComposeOptions(),
		Format:       format,
		ExcludeOwned: !eo.IncludeOwned,
		OutDir:       out,
		Timestamp:    eo.Timestamp,
		FontPath:     font,
	}, nil
}
