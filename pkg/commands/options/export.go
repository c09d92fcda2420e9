package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/nongdam/pkg/compose"
)

// ExportOptions
type ExportOptions struct {
	Mode         string
	Format       string
	Out          string
	Font         string
	Title        string
	Nickname     string
	NoTitle      bool
	NoName       bool
	NoPrice      bool
	Timestamp    bool
	IncludeOwned bool
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVar(&o.Mode, "mode", string(compose.ModeAll),
		"Export checked items from the whole catalog (all) or only the filtered items (current).")
	cmd.Flags().StringVarP(&o.Format, "format", "f", string(compose.JPEG),
		"Image format, jpg or png.")
	cmd.Flags().StringVarP(&o.Out, "out", "o", "",
		"Directory to write the image to. Defaults to the configured out.")
	cmd.Flags().StringVar(&o.Font, "font", "",
		"TTF or OTF font file. Defaults to the configured font.")
	cmd.Flags().StringVar(&o.Title, "title", "",
		"Title drawn above the grid. Defaults to the tab's title.")
	cmd.Flags().StringVar(&o.Nickname, "nickname", "",
		"Line drawn under the title.")
	cmd.Flags().BoolVar(&o.NoTitle, "no-title", false,
		"Do not draw the title.")
	cmd.Flags().BoolVar(&o.NoName, "no-name", false,
		"Do not draw item names.")
	cmd.Flags().BoolVar(&o.NoPrice, "no-price", false,
		"Do not draw item prices.")
	cmd.Flags().BoolVar(&o.Timestamp, "timestamp", false,
		"Add a timestamp to the file name.")
	cmd.Flags().BoolVar(&o.IncludeOwned, "include-owned", false,
		"On the wish tab, also export items that are already owned.")
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(compose.ModeAll), string(compose.ModeCurrent)}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(compose.JPEG), string(compose.PNG)}, cobra.ShellCompDirectiveNoFileComp
	})
}

// ComposeOptions converts the flags for the composer. The tab is filled in
// by the exporter.
func (o *ExportOptions) ComposeOptions() compose.Options {
	return compose.Options{
		ShowTitle: !o.NoTitle,
		Title:     o.Title,
		Nickname:  o.Nickname,
		ShowName:  !o.NoName,
		ShowPrice: !o.NoPrice,
	}
}

func (o *ExportOptions) ParseMode() (compose.Mode, error) {
	switch compose.Mode(o.Mode) {
	case compose.ModeAll, compose.ModeCurrent:
		return compose.Mode(o.Mode), nil
	}
	return "", fmt.Errorf("invalid --mode %q, want all or current", o.Mode)
}
