package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/nongdam/pkg/catalog/viewmodel"
	"tableflip.dev/nongdam/pkg/checklist"
)

// TabOptions selects the checklist a command works on.
type TabOptions struct {
	Tab string
}

func AddTabArg(cmd *cobra.Command, o *TabOptions) {
	cmd.Flags().StringVarP(&o.Tab, "tab", "t", string(checklist.Owned),
		"Checklist to use, owned or wish.")
	_ = cmd.RegisterFlagCompletionFunc("tab", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(checklist.Owned), string(checklist.Wish)}, cobra.ShellCompDirectiveNoFileComp
	})
}

func (o *TabOptions) Parse() (checklist.Tab, error) {
	return checklist.ParseTab(o.Tab)
}

// FilterOptions narrow the catalog view.
type FilterOptions struct {
	TabOptions
	Country      string
	Character    string
	CompanyGroup string
	Company      string
	CheckedOnly  bool
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	AddTabArg(cmd, &o.TabOptions)
	cmd.Flags().StringVar(&o.Country, "country", viewmodel.All,
		"Only show items from this country.")
	cmd.Flags().StringVar(&o.Character, "character", viewmodel.All,
		"Only show items of this character.")
	cmd.Flags().StringVar(&o.CompanyGroup, "company-group", viewmodel.All,
		"Only show items from a company group, old or new.")
	cmd.Flags().StringVar(&o.Company, "company", "",
		"Only show items from this company. Overrides --company-group.")
	cmd.Flags().BoolVar(&o.CheckedOnly, "checked-only", false,
		"Only show checked items, read only.")
	_ = cmd.RegisterFlagCompletionFunc("company-group", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{viewmodel.All, viewmodel.CompanyOld, viewmodel.CompanyNew}, cobra.ShellCompDirectiveNoFileComp
	})
}

// Filters converts the flags to a filter state.
func (o *FilterOptions) Filters() (viewmodel.Filters, error) {
	tab, err := o.Parse()
	if err != nil {
		return viewmodel.Filters{}, err
	}
	switch o.CompanyGroup {
	case "", viewmodel.All, viewmodel.CompanyOld, viewmodel.CompanyNew:
	default:
		return viewmodel.Filters{}, fmt.Errorf("invalid --company-group %q, want all, old or new", o.CompanyGroup)
	}
	return viewmodel.Filters{
		Country:      o.Country,
		Character:    o.Character,
		CompanyGroup: o.CompanyGroup,
		Company:      o.Company,
		Tab:          tab,
		CheckedOnly:  o.CheckedOnly,
	}.Normalize(), nil
}
