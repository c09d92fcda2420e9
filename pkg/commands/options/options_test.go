package options

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/nongdam/pkg/catalog/viewmodel"
	"tableflip.dev/nongdam/pkg/checklist"
	"tableflip.dev/nongdam/pkg/compose"
)

func TestFilters(t *testing.T) {
	tests := []struct {
		name    string
		opts    FilterOptions
		want    viewmodel.Filters
		wantErr bool
	}{{
		name: "defaults",
		opts: FilterOptions{TabOptions: TabOptions{Tab: "owned"}},
		want: viewmodel.DefaultFilters(checklist.Owned),
	}, {
		name: "wish alias with filters",
		opts: FilterOptions{
			TabOptions:  TabOptions{Tab: "위시"},
			Country:     "japan",
			Company:     "all",
			CheckedOnly: true,
		},
		want: viewmodel.Filters{
			Country:      "japan",
			Character:    viewmodel.All,
			CompanyGroup: viewmodel.All,
			Tab:          checklist.Wish,
			CheckedOnly:  true,
		},
	}, {
		name:    "unknown company group",
		opts:    FilterOptions{TabOptions: TabOptions{Tab: "owned"}, CompanyGroup: "older"},
		wantErr: true,
	}, {
		name:    "unknown tab",
		opts:    FilterOptions{TabOptions: TabOptions{Tab: "sold"}},
		wantErr: true,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.Filters()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Filters() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Filters() (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExportOptions(t *testing.T) {
	o := &ExportOptions{Mode: "current", NoPrice: true, Nickname: "곰"}
	mode, err := o.ParseMode()
	if err != nil || mode != compose.ModeCurrent {
		t.Fatalf("ParseMode() = %q, %v", mode, err)
	}
	got := o.ComposeOptions()
	want := compose.Options{ShowTitle: true, Nickname: "곰", ShowName: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ComposeOptions() (-want +got):\n%s", diff)
	}

	o.Mode = "some"
	if _, err := o.ParseMode(); err == nil {
		t.Fatalf("expected an error for an unknown mode")
	}
}

func TestOutputValidate(t *testing.T) {
	if err := (&OutputOptions{JSON: true, YAML: true}).Validate(); err == nil {
		t.Fatalf("expected --json and --yaml to conflict")
	}
	if err := (&OutputOptions{YAML: true}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
