package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/nongdam/pkg/checklist"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestChecklistAbsentIsEmpty(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	for _, tab := range checklist.Tabs() {
		if got := p.Checklist(tab); len(got) != 0 {
			t.Fatalf("expected empty %s set, got %v", tab, got.Sorted())
		}
	}
}

func TestStoreChecklistRoundTrip(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.StoreChecklist(checklist.Wish, checklist.NewSet("3", "1")); err != nil {
		t.Fatalf("store: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(base, "nongdam_wish"))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != `["1","3"]` {
		t.Fatalf("unexpected stored value %s", data)
	}

	// A second persistence over the same directory sees the same value.
	p2, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("reload persistence: %v", err)
	}
	if diff := cmp.Diff([]string{"1", "3"}, p2.Checklist(checklist.Wish).Sorted()); diff != "" {
		t.Fatalf("unexpected wished set (-want +got):\n%s", diff)
	}
	if got := p2.Checklist(checklist.Owned); len(got) != 0 {
		t.Fatalf("owned set should be untouched, got %v", got.Sorted())
	}
}

func TestChecklistCorruptIsEmpty(t *testing.T) {
	base := t.TempDir()
	if err := os.WriteFile(filepath.Join(base, "nongdam_owned"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if got := p.Checklist(checklist.Owned); len(got) != 0 {
		t.Fatalf("expected corrupt set to load empty, got %v", got.Sorted())
	}
}

func TestLoadRequiresBasePath(t *testing.T) {
	if _, err := Load(testConfig{}); err == nil {
		t.Fatalf("expected an error without a base path")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`path: ` + filepath.Join(dir, "db") + `
sheet_name: dolls
companies:
  old: [Chiikawa Land]
  new: [Spiritus]
`)
	if err := os.WriteFile(filepath.Join(dir, ".nongdam.yaml"), yaml, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvConfigPath, dir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "db") {
		t.Fatalf("unexpected base path %q", cfg.BasePath())
	}
	if cfg.SheetID != DefaultSheetID || cfg.SheetName != "dolls" {
		t.Fatalf("unexpected sheet settings %q %q", cfg.SheetID, cfg.SheetName)
	}
	if diff := cmp.Diff([]string{"Chiikawa Land"}, cfg.Companies["old"]); diff != "" {
		t.Fatalf("unexpected old companies:\n%s", diff)
	}
	if cfg.SubgroupCharacter != "ngn" {
		t.Fatalf("unexpected subgroup character %q", cfg.SubgroupCharacter)
	}
}
