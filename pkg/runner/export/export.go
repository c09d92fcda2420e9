package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"tableflip.dev/nongdam/pkg/app"
	"tableflip.dev/nongdam/pkg/catalog/viewmodel"
	"tableflip.dev/nongdam/pkg/compose"
	"tableflip.dev/nongdam/pkg/logging"
)

// Export renders the checked items of the active tab to an image file.
type Export struct {
	Service *app.Service

	Mode         compose.Mode
	Options      compose.Options
	Format       compose.Format
	ExcludeOwned bool

	// OutDir receives the file; empty means the working directory.
	OutDir    string
	Timestamp bool
	// FontPath is an optional TTF or OTF file; empty uses the built-in font.
	FontPath string

	Images compose.ImageLoader
	Now    func() time.Time
	Out    io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	path, err := n.Run(ctx)
	if err != nil {
		return err
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "wrote %s\n", path)
	return nil
}

// Run writes the image for the service's current state and returns its
// path. The catalog is loaded first when the service has none.
func (n *Export) Run(ctx context.Context) (string, error) {
	if n.Service == nil {
		return "", errors.New("can not export, no service")
	}
	if len(n.Service.State().Snapshot) == 0 {
		if _, err := n.Service.Load(ctx); err != nil {
			return "", err
		}
	}
	return n.RunState(ctx, n.Service.State())
}

// RunState writes the image for st. Apart from st only the grouping
// options are read from the service, so st can be taken by the goroutine
// that owns the service and exported on another one.
func (n *Export) RunState(ctx context.Context, st app.State) (string, error) {
	mode := n.Mode
	if mode == "" {
		mode = compose.ModeAll
	}
	var vopts []viewmodel.Option
	if n.Service != nil {
		vopts = n.Service.Options
	}
	records := st.ExportRecords(mode, n.ExcludeOwned, vopts...)
	if len(records) == 0 {
		return "", compose.ErrNothingToExport
	}

	log := logging.Named("export")
	opts := n.Options
	opts.Tab = st.Filters.Normalize().Tab
	if opts.Title == "" {
		opts.Title = compose.DefaultTitle(opts.Tab)
	}

	var load compose.FontLoader
	if n.FontPath != "" {
		load = compose.FileFont(n.FontPath)
	}
	res := compose.LoadFont(ctx, load, nil)
	if res.Fallback {
		log.Debug("using the built-in font", zap.String("font", n.FontPath), zap.Error(res.Err))
	}
	fonts, err := compose.NewFontSet(res.Font)
	if err != nil {
		return "", err
	}

	images := n.Images
	if images == nil {
		images = &compose.WebImageLoader{}
	}
	c := compose.Composer{Images: images, Fonts: fonts, Log: log}
	img, err := c.Compose(ctx, records, opts)
	if err != nil {
		return "", err
	}

	var at time.Time
	if n.Timestamp {
		now := n.Now
		if now == nil {
			now = time.Now
		}
		at = now()
	}
	dir := n.OutDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: ensure out dir: %w", err)
	}
	path := filepath.Join(dir, compose.FileName(opts.Tab, n.Format, at))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	if err := compose.Encode(f, img, n.Format); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("export: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	log.Info("exported", zap.String("path", path), zap.Int("items", len(records)))
	return path, nil
}
