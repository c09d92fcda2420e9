package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/nongdam/pkg/app"
	"tableflip.dev/nongdam/pkg/checklist"
	"tableflip.dev/nongdam/pkg/compose"
	"tableflip.dev/nongdam/pkg/source"
	"tableflip.dev/nongdam/pkg/store"
)

type dirConfig string

func (d dirConfig) BasePath() string { return string(d) }

type blankImages struct{}

func (blankImages) LoadImage(context.Context, string) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, 10, 10)), nil
}

const catalogCSV = `id,nameKo,price,image,group
1,기본곰,"10,000",a.png,A
2,하치와레,5000,b.png,A
3,우사기,6000,c.png,B`

func newService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(dirConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	svc := app.New(p, source.Static(catalogCSV))
	svc.Log = zap.NewNop()
	return svc
}

func TestExportWritesImage(t *testing.T) {
	svc := newService(t)
	svc.Toggle(checklist.Owned, "1")
	svc.Toggle(checklist.Owned, "3")

	dir := t.TempDir()
	var out bytes.Buffer
	e := &Export{
		Service:   svc,
		Options:   compose.DefaultOptions(checklist.Owned),
		Format:    compose.PNG,
		OutDir:    dir,
		Timestamp: true,
		Images:    blankImages{},
		Now:       func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) },
		Out:       &out,
	}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("export: %v", err)
	}

	path := filepath.Join(dir, "nongdam_owned_list_20261019-120000.png")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected %s: %v", path, err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := compose.NewLayout(2)
	if cfg.Width != want.Width || cfg.Height != want.Height {
		t.Fatalf("image is %dx%d, want %dx%d", cfg.Width, cfg.Height, want.Width, want.Height)
	}
	if !bytes.Contains(out.Bytes(), []byte(path)) {
		t.Fatalf("expected the path to be reported, got %q", out.String())
	}
}

func TestExportNothingChecked(t *testing.T) {
	dir := t.TempDir()
	e := &Export{
		Service: newService(t),
		Options: compose.DefaultOptions(checklist.Owned),
		OutDir:  dir,
		Images:  blankImages{},
	}
	if _, err := e.Run(context.Background()); !errors.Is(err, compose.ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no file, found %d", len(entries))
	}
}

func TestExportWishExcludesOwned(t *testing.T) {
	svc := newService(t)
	svc.Toggle(checklist.Owned, "1")
	svc.Toggle(checklist.Wish, "1")
	svc.SetTab(checklist.Wish)

	e := &Export{
		Service:      svc,
		ExcludeOwned: true,
		OutDir:       t.TempDir(),
		Images:       blankImages{},
	}
	if _, err := e.Run(context.Background()); !errors.Is(err, compose.ErrNothingToExport) {
		t.Fatalf("the only wished item is owned, expected ErrNothingToExport, got %v", err)
	}

	e.ExcludeOwned = false
	path, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Base(path) != "nongdam_wish_list.jpg" {
		t.Fatalf("unexpected file %s", path)
	}
}

func TestRunStateUsesGivenState(t *testing.T) {
	svc := newService(t)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	svc.Toggle(checklist.Owned, "2")
	st := svc.State()

	svc.SetTab(checklist.Wish)
	svc.Clear(checklist.Owned)

	e := &Export{Service: svc, OutDir: t.TempDir(), Images: blankImages{}}
	path, err := e.RunState(context.Background(), st)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Base(path) != "nongdam_owned_list.jpg" {
		t.Fatalf("expected the owned tab of the given state, got %s", path)
	}
	if _, err := e.Run(context.Background()); !errors.Is(err, compose.ErrNothingToExport) {
		t.Fatalf("the service state has nothing checked, got %v", err)
	}
}
