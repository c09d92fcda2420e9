package viewmodel

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/nongdam/pkg/catalog"
	"tableflip.dev/nongdam/pkg/checklist"
)

func sampleSnapshot() catalog.Snapshot {
	return catalog.ParseCSV(`id,nameKo,price,country,character,company,group,subGroup
1,기본곰,"10,000",japan,ngn,Spiritus,Plush,Mini
2,하치와레,5000,japan,chiikawa,Chiikawa Land,Plush,
3,먼작귀,7000,korea,chiikawa,Daewon,Keyring,
4,파자마곰,12000,japan,ngn,Spiritus,Plush,Pajama
5,무명곰,3000,korea,ngn,Daewon,,`)
}

func labels(g Grouping) []string {
	var out []string
	for _, grp := range g.Groups {
		out = append(out, grp.Label)
	}
	return out
}

func ids(g Grouping) []string {
	var out []string
	for _, grp := range g.Groups {
		for _, it := range grp.Items {
			out = append(out, it.Record.ID())
		}
	}
	return out
}

func TestCountryFilter(t *testing.T) {
	snap := catalog.ParseCSV(`id,nameKo,country,group
1,a,japan,A
2,b,korea,B
3,c,japan,C`)
	f := DefaultFilters(checklist.Owned)
	f.Country = "japan"

	g := ComputeGrouping(snap, checklist.Checklists{}, f)
	if diff := cmp.Diff([]string{"1", "3"}, ids(g)); diff != "" {
		t.Fatalf("unexpected ids (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"A", "C"}, labels(g)); diff != "" {
		t.Fatalf("unexpected labels (-want +got):\n%s", diff)
	}
}

func TestFilterInvariant(t *testing.T) {
	snap := sampleSnapshot()
	opts := []Option{WithCompanyGroups(map[string][]string{
		CompanyOld: {"Chiikawa Land", "Daewon"},
		CompanyNew: {"Spiritus"},
	})}
	filters := []Filters{
		{Country: "japan"},
		{Character: "chiikawa"},
		{CompanyGroup: CompanyOld},
		{CompanyGroup: CompanyNew, Country: "japan"},
		{CompanyGroup: CompanyNew, Company: "Daewon"},
		{Country: "korea", Character: "ngn"},
	}
	for _, f := range filters {
		f = f.Normalize()
		g := ComputeGrouping(snap, checklist.Checklists{}, f, opts...)
		for _, grp := range g.Groups {
			for _, it := range grp.Items {
				r := it.Record
				if f.Country != All && r.Country() != f.Country {
					t.Fatalf("%+v: record %s has country %s", f, r.ID(), r.Country())
				}
				if f.Character != All && r.Character() != f.Character {
					t.Fatalf("%+v: record %s has character %s", f, r.ID(), r.Character())
				}
			}
		}
	}
}

func TestCompanyFilter(t *testing.T) {
	snap := sampleSnapshot()
	opts := []Option{WithCompanyGroups(map[string][]string{
		CompanyOld: {"Chiikawa Land", "Daewon"},
		CompanyNew: {"Spiritus"},
	})}

	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{name: "all", filters: Filters{}, want: []string{"1", "2", "4", "3", "5"}},
		{name: "old group", filters: Filters{CompanyGroup: CompanyOld}, want: []string{"2", "3", "5"}},
		{name: "new group", filters: Filters{CompanyGroup: CompanyNew}, want: []string{"1", "4"}},
		{name: "specific overrides group", filters: Filters{CompanyGroup: CompanyNew, Company: "Daewon"}, want: []string{"3", "5"}},
		{name: "specific all is unset", filters: Filters{CompanyGroup: CompanyOld, Company: All}, want: []string{"2", "3", "5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filtered(snap, tt.filters, opts...)
			if diff := cmp.Diff(tt.want, groupedIDs(got)); diff != "" {
				t.Fatalf("unexpected ids (-want +got):\n%s", diff)
			}
		})
	}
}

// groupedIDs returns the ids of records in the order ComputeGrouping shows them.
func groupedIDs(records catalog.Snapshot) []string {
	return ids(ComputeGrouping(records, checklist.Checklists{}, Filters{}))
}

func TestUnknownCompanyGroupMatchesNothing(t *testing.T) {
	g := ComputeGrouping(sampleSnapshot(), checklist.Checklists{}, Filters{CompanyGroup: "future"})
	if g.Empty != EmptyNoMatch || g.Message != MessageNoMatch {
		t.Fatalf("expected no match, got %+v", g)
	}
}

func TestSubgroupGrouping(t *testing.T) {
	snap := sampleSnapshot()

	g := ComputeGrouping(snap, checklist.Checklists{}, Filters{Character: "ngn"})
	if diff := cmp.Diff([]string{"Mini", "Pajama", FallbackLabel}, labels(g)); diff != "" {
		t.Fatalf("unexpected labels (-want +got):\n%s", diff)
	}

	g = ComputeGrouping(snap, checklist.Checklists{}, Filters{})
	if diff := cmp.Diff([]string{"Plush", "Keyring", FallbackLabel}, labels(g)); diff != "" {
		t.Fatalf("unexpected labels without subgroup character (-want +got):\n%s", diff)
	}

	g = ComputeGrouping(snap, checklist.Checklists{}, Filters{Character: "chiikawa"}, WithSubgroupCharacter("chiikawa"))
	if diff := cmp.Diff([]string{"Plush", "Keyring"}, labels(g)); diff != "" {
		t.Fatalf("records without subgroup fall back to group (-want +got):\n%s", diff)
	}
}

func TestOwnedCountIgnoresTab(t *testing.T) {
	snap := sampleSnapshot()
	lists := checklist.Checklists{
		Owned:  checklist.NewSet("1", "2"),
		Wished: checklist.NewSet("4", "3"),
	}
	for _, tab := range checklist.Tabs() {
		g := ComputeGrouping(snap, lists, Filters{Tab: tab})
		for _, grp := range g.Groups {
			want := 0
			for _, it := range grp.Items {
				if lists.IsOwned(it.Record.ID()) {
					want++
				}
			}
			if grp.Owned != want {
				t.Fatalf("%s/%s: owned count %d, want %d", tab, grp.Label, grp.Owned, want)
			}
			if grp.Total != len(grp.Items) {
				t.Fatalf("%s/%s: total %d, want %d", tab, grp.Label, grp.Total, len(grp.Items))
			}
		}
	}
}

func TestItemState(t *testing.T) {
	lists := checklist.Checklists{
		Owned:  checklist.NewSet("1", "3"),
		Wished: checklist.NewSet("2", "3"),
	}
	tests := []struct {
		tab           checklist.Tab
		id            string
		checked, lock bool
	}{
		{tab: checklist.Owned, id: "1", checked: true},
		{tab: checklist.Owned, id: "2"},
		{tab: checklist.Owned, id: "3", checked: true},
		{tab: checklist.Wish, id: "1", checked: true, lock: true},
		{tab: checklist.Wish, id: "2", checked: true},
		{tab: checklist.Wish, id: "3", checked: true, lock: true},
		{tab: checklist.Wish, id: "4"},
	}
	for _, tt := range tests {
		checked, locked := ItemState(tt.tab, lists, tt.id)
		if checked != tt.checked || locked != tt.lock {
			t.Fatalf("%s/%s: got checked=%v locked=%v, want %v %v", tt.tab, tt.id, checked, locked, tt.checked, tt.lock)
		}
	}
}

func TestWishTabLocksOwned(t *testing.T) {
	snap := catalog.ParseCSV("id,nameKo,group\n3,c,A\n4,d,A")
	lists := checklist.Checklists{Owned: checklist.NewSet("3"), Wished: checklist.NewSet("3")}

	g := ComputeGrouping(snap, lists, Filters{Tab: checklist.Wish})
	want := []Item{
		{Record: snap[0], Checked: true, Locked: true, Toggleable: false},
		{Record: snap[1], Checked: false, Locked: false, Toggleable: true},
	}
	if diff := cmp.Diff(want, g.Groups[0].Items); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
}

func TestCheckedOnly(t *testing.T) {
	snap := sampleSnapshot()
	lists := checklist.Checklists{
		Owned:  checklist.NewSet("1"),
		Wished: checklist.NewSet("3"),
	}

	g := ComputeGrouping(snap, lists, Filters{Tab: checklist.Wish, CheckedOnly: true})
	if diff := cmp.Diff([]string{"1", "3"}, ids(g)); diff != "" {
		t.Fatalf("unexpected ids (-want +got):\n%s", diff)
	}
	for _, grp := range g.Groups {
		for _, it := range grp.Items {
			if it.Checked || it.Locked || it.Toggleable {
				t.Fatalf("checked-only item %s exposes state %+v", it.Record.ID(), it)
			}
		}
	}
	// Counts still cover the whole filtered group.
	if g.Groups[0].Label != "Plush" || g.Groups[0].Total != 3 || g.Groups[0].Owned != 1 {
		t.Fatalf("unexpected first group %+v", g.Groups[0])
	}
}

func TestEmptyPolicy(t *testing.T) {
	snap := sampleSnapshot()

	g := ComputeGrouping(nil, checklist.Checklists{}, Filters{})
	if g.Empty != EmptyNoData || g.Message != "" {
		t.Fatalf("expected silent no-data, got %+v", g)
	}

	g = ComputeGrouping(snap, checklist.Checklists{}, Filters{Country: "france"})
	if g.Empty != EmptyNoMatch || g.Message != MessageNoMatch {
		t.Fatalf("expected no-match, got %+v", g)
	}

	g = ComputeGrouping(snap, checklist.Checklists{}, Filters{CheckedOnly: true})
	if g.Empty != EmptyNoChecked || g.Message != MessageNoChecked {
		t.Fatalf("expected no-checked, got %+v", g)
	}
}

func TestComputeGroupingIdempotent(t *testing.T) {
	snap := sampleSnapshot()
	lists := checklist.Checklists{Owned: checklist.NewSet("2"), Wished: checklist.NewSet("5")}
	f := Filters{Tab: checklist.Wish, Country: "korea"}

	first := ComputeGrouping(snap, lists, f)
	second := ComputeGrouping(snap, lists, f)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("grouping changed between calls:\n%s", diff)
	}
}

func TestFiltersResetKeepsTab(t *testing.T) {
	f := Filters{Country: "japan", Character: "ngn", CompanyGroup: CompanyOld, Company: "Daewon", Tab: checklist.Wish, CheckedOnly: true}
	got := f.Reset()
	want := Filters{Country: All, Character: All, CompanyGroup: All, Tab: checklist.Wish}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected reset filters (-want +got):\n%s", diff)
	}
}
