// Package viewmodel derives the display grouping of the catalog from the
// current filters and checklists. Everything here is a pure function of its
// inputs so printers and the tui stay thin.
package viewmodel

import (
	"tableflip.dev/nongdam/pkg/catalog"
	"tableflip.dev/nongdam/pkg/checklist"
)

// All disables a filter.
const All = "all"

// Company groups understood by the coarse company filter.
const (
	CompanyOld = "old"
	CompanyNew = "new"
)

// DefaultSubgroupCharacter is the character whose records group by subgroup.
const DefaultSubgroupCharacter = "ngn"

// FallbackLabel names the group of records without a group value.
const FallbackLabel = "Others"

// Messages shown when a grouping is empty.
const (
	MessageNoMatch   = "No items match the current filters."
	MessageNoChecked = "No checked items to show."
)

// Filters is the current view selection. The zero value shows everything on
// the owned tab.
type Filters struct {
	Country      string `json:"country" yaml:"country"`
	Character    string `json:"character" yaml:"character"`
	CompanyGroup string `json:"companyGroup" yaml:"companyGroup"`
	Company      string `json:"company" yaml:"company"`

	Tab         checklist.Tab `json:"tab" yaml:"tab"`
	CheckedOnly bool          `json:"checkedOnly" yaml:"checkedOnly"`
}

// DefaultFilters shows everything on tab.
func DefaultFilters(tab checklist.Tab) Filters {
	return Filters{
		Country:      All,
		Character:    All,
		CompanyGroup: All,
		Company:      "",
		Tab:          tab,
	}.Normalize()
}

// Reset clears every predicate and checked-only mode but keeps the tab.
func (f Filters) Reset() Filters {
	return DefaultFilters(f.Tab)
}

// Normalize fills unset fields with their defaults.
func (f Filters) Normalize() Filters {
	if f.Country == "" {
		f.Country = All
	}
	if f.Character == "" {
		f.Character = All
	}
	if f.CompanyGroup == "" {
		f.CompanyGroup = All
	}
	if f.Company == All {
		f.Company = ""
	}
	if f.Tab == "" {
		f.Tab = checklist.Owned
	}
	return f
}

// Item is one visible record with its derived display state.
type Item struct {
	Record catalog.Record `json:"record" yaml:"record"`

	Checked bool `json:"checked" yaml:"checked"`
	Locked  bool `json:"locked" yaml:"locked"`
	// Toggleable is false for locked items and in checked-only mode.
	Toggleable bool `json:"toggleable" yaml:"toggleable"`
}

// Group is a labelled run of items. Total and Owned count every record of
// the group that passed the filters, including ones hidden by checked-only
// mode; Owned is always measured against the owned set.
type Group struct {
	Label string `json:"label" yaml:"label"`
	Total int    `json:"total" yaml:"total"`
	Owned int    `json:"owned" yaml:"owned"`
	Items []Item `json:"items" yaml:"items"`
}

// Empty explains why a grouping has no groups.
type Empty int

const (
	EmptyNone Empty = iota
	// EmptyNoData means nothing is loaded; no message is shown.
	EmptyNoData
	EmptyNoMatch
	EmptyNoChecked
)

// Grouping is the display model of the catalog.
type Grouping struct {
	Groups  []Group `json:"groups" yaml:"groups"`
	Empty   Empty   `json:"empty" yaml:"empty"`
	Message string  `json:"message,omitempty" yaml:"message,omitempty"`
}

// Len is the number of visible items.
func (g Grouping) Len() int {
	n := 0
	for _, grp := range g.Groups {
		n += len(grp.Items)
	}
	return n
}

// Option customises ComputeGrouping and Filtered.
type Option func(*buildOptions)

// WithSubgroupCharacter sets the character value that groups by subgroup.
func WithSubgroupCharacter(character string) Option {
	return func(opts *buildOptions) {
		if character != "" {
			opts.subgroupCharacter = character
		}
	}
}

// WithCompanyGroups maps a coarse company group to its companies.
func WithCompanyGroups(m map[string][]string) Option {
	return func(opts *buildOptions) {
		if len(m) == 0 {
			return
		}
		opts.companies = make(map[string]map[string]bool, len(m))
		for group, companies := range m {
			set := make(map[string]bool, len(companies))
			for _, c := range companies {
				set[c] = true
			}
			opts.companies[group] = set
		}
	}
}

type buildOptions struct {
	subgroupCharacter string
	companies         map[string]map[string]bool
}

func newBuildOptions(opts []Option) *buildOptions {
	config := &buildOptions{subgroupCharacter: DefaultSubgroupCharacter}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// Filtered returns the records passing every predicate of f, in catalog
// order.
func Filtered(snapshot catalog.Snapshot, f Filters, opts ...Option) catalog.Snapshot {
	return filtered(snapshot, f.Normalize(), newBuildOptions(opts))
}

func filtered(snapshot catalog.Snapshot, f Filters, config *buildOptions) catalog.Snapshot {
	out := make(catalog.Snapshot, 0, len(snapshot))
	for _, r := range snapshot {
		if config.matches(r, f) {
			out = append(out, r)
		}
	}
	return out
}

func (o *buildOptions) matches(r catalog.Record, f Filters) bool {
	if f.Country != All && r.Country() != f.Country {
		return false
	}
	if f.Character != All && r.Character() != f.Character {
		return false
	}
	if f.Company != "" {
		return r.Company() == f.Company
	}
	if f.CompanyGroup != All {
		return o.companies[f.CompanyGroup][r.Company()]
	}
	return true
}

func (o *buildOptions) groupKey(r catalog.Record, f Filters) string {
	if f.Character == o.subgroupCharacter && r.SubGroup() != "" {
		return r.SubGroup()
	}
	if r.Group() == "" {
		return FallbackLabel
	}
	return r.Group()
}

// ItemState derives the checked and locked flags of id on tab. On the wish
// tab an owned item is shown checked and locked.
func ItemState(tab checklist.Tab, lists checklist.Checklists, id string) (checked, locked bool) {
	owned := lists.IsOwned(id)
	if tab == checklist.Wish {
		if owned {
			return true, true
		}
		return lists.IsWished(id), false
	}
	return owned, false
}

// ComputeGrouping filters snapshot, groups the survivors by label in order
// of first appearance and derives per item display state for f.Tab.
func ComputeGrouping(snapshot catalog.Snapshot, lists checklist.Checklists, f Filters, opts ...Option) Grouping {
	f = f.Normalize()
	config := newBuildOptions(opts)

	if len(snapshot) == 0 {
		return Grouping{Empty: EmptyNoData}
	}
	visible := filtered(snapshot, f, config)
	if len(visible) == 0 {
		return Grouping{Empty: EmptyNoMatch, Message: MessageNoMatch}
	}

	var order []string
	byLabel := make(map[string][]catalog.Record)
	for _, r := range visible {
		key := config.groupKey(r, f)
		if _, ok := byLabel[key]; !ok {
			order = append(order, key)
		}
		byLabel[key] = append(byLabel[key], r)
	}

	groups := make([]Group, 0, len(order))
	for _, label := range order {
		records := byLabel[label]
		g := Group{Label: label, Total: len(records)}
		for _, r := range records {
			if lists.IsOwned(r.ID()) {
				g.Owned++
			}
			checked, locked := ItemState(f.Tab, lists, r.ID())
			if f.CheckedOnly {
				if !checked {
					continue
				}
				g.Items = append(g.Items, Item{Record: r})
				continue
			}
			g.Items = append(g.Items, Item{
				Record:     r,
				Checked:    checked,
				Locked:     locked,
				Toggleable: !locked,
			})
		}
		if len(g.Items) > 0 {
			groups = append(groups, g)
		}
	}

	if len(groups) == 0 {
		return Grouping{Empty: EmptyNoChecked, Message: MessageNoChecked}
	}
	return Grouping{Groups: groups}
}
