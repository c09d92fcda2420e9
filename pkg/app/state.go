package app

import (
	"tableflip.dev/nongdam/pkg/catalog"
	"tableflip.dev/nongdam/pkg/catalog/viewmodel"
	"tableflip.dev/nongdam/pkg/checklist"
	"tableflip.dev/nongdam/pkg/compose"
)

// State is the whole application state as a value. Every method returns a
// new State and leaves the receiver untouched.
type State struct {
	Snapshot   catalog.Snapshot     `json:"-" yaml:"-"`
	Checklists checklist.Checklists `json:"-" yaml:"-"`
	Filters    viewmodel.Filters    `json:"filters" yaml:"filters"`
}

// Toggle flips id in the set of tab.
func (st State) Toggle(tab checklist.Tab, id string) (State, bool) {
	var on bool
	st.Checklists, on = st.Checklists.Toggle(tab, id)
	return st, on
}

// Clear empties the set of tab.
func (st State) Clear(tab checklist.Tab) State {
	st.Checklists = st.Checklists.Clear(tab)
	return st
}

// WithFilters replaces the filters.
func (st State) WithFilters(f viewmodel.Filters) State {
	st.Filters = f.Normalize()
	return st
}

// WithTab switches the active tab.
func (st State) WithTab(tab checklist.Tab) State {
	st.Filters.Tab = tab
	st.Filters = st.Filters.Normalize()
	return st
}

// Grouping derives the display grouping.
func (st State) Grouping(opts ...viewmodel.Option) viewmodel.Grouping {
	return viewmodel.ComputeGrouping(st.Snapshot, st.Checklists, st.Filters, opts...)
}

// ExportRecords selects the checked records of the active tab from the
// whole catalog (compose.ModeAll) or from the filtered records
// (compose.ModeCurrent).
func (st State) ExportRecords(mode compose.Mode, excludeOwned bool, opts ...viewmodel.Option) catalog.Snapshot {
	src := st.Snapshot
	if mode == compose.ModeCurrent {
		src = viewmodel.Filtered(st.Snapshot, st.Filters, opts...)
	}
	return compose.Select(src, st.Checklists, st.Filters.Normalize().Tab, excludeOwned)
}
