// Package checklist models the owned and wished id sets.
package checklist

import (
	"fmt"
	"sort"
)

// Tab selects which checklist a view or an edit applies to.
type Tab string

const (
	Owned Tab = "owned"
	Wish  Tab = "wish"
)

// Tabs lists every tab in display order.
func Tabs() []Tab { return []Tab{Owned, Wish} }

// ParseTab accepts a tab name or one of its aliases.
func ParseTab(s string) (Tab, error) {
	switch s {
	case "owned", "own", "have", "보유":
		return Owned, nil
	case "wish", "wished", "wishlist", "위시":
		return Wish, nil
	}
	return "", fmt.Errorf("checklist: unknown tab %q, want owned or wish", s)
}

// List is the stored name of the tab's set, which is also the tab name.
func (t Tab) List() string {
	if t == Wish {
		return "wish"
	}
	return "owned"
}

// Label is the short display name of the tab.
func (t Tab) Label() string {
	if t == Wish {
		return "위시"
	}
	return "보유"
}

func (t Tab) String() string { return string(t) }

// Set is an unordered set of record ids.
type Set map[string]struct{}

// NewSet builds a set from ids, ignoring empties.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership. A nil set is empty.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in ascending order.
func (s Set) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// Checklists holds both sets. An id may be in neither, one, or both.
type Checklists struct {
	Owned  Set
	Wished Set
}

// For returns the set that backs a tab.
func (c Checklists) For(t Tab) Set {
	if t == Wish {
		return c.Wished
	}
	return c.Owned
}

// IsOwned reports whether id is in the owned set.
func (c Checklists) IsOwned(id string) bool { return c.Owned.Has(id) }

// IsWished reports whether id is in the wished set.
func (c Checklists) IsWished(id string) bool { return c.Wished.Has(id) }

// Toggle flips id in the tab's set and returns the new membership. The
// returned Checklists shares nothing with c for the edited set.
func (c Checklists) Toggle(t Tab, id string) (Checklists, bool) {
	set := c.For(t).Clone()
	on := !set.Has(id)
	if on {
		set[id] = struct{}{}
	} else {
		delete(set, id)
	}
	return c.with(t, set), on
}

// Clear empties the tab's set.
func (c Checklists) Clear(t Tab) Checklists {
	return c.with(t, Set{})
}

func (c Checklists) with(t Tab, set Set) Checklists {
	if t == Wish {
		c.Wished = set
	} else {
		c.Owned = set
	}
	return c
}
