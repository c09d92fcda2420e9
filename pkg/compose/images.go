package compose

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	_ "golang.org/x/image/webp" // register decoder
)

// ImageLoader fetches and decodes one product image.
type ImageLoader interface {
	LoadImage(ctx context.Context, ref string) (image.Image, error)
}

// WebImageLoader loads http(s) references over the network and anything
// else from the local filesystem.
type WebImageLoader struct {
	Client *http.Client
}

var _ ImageLoader = (*WebImageLoader)(nil)

func (l *WebImageLoader) LoadImage(ctx context.Context, ref string) (image.Image, error) {
	if ref == "" {
		return nil, fmt.Errorf("compose: empty image reference")
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return l.fetch(ctx, ref)
	}
	f, err := os.Open(ref)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode(f, ref)
}

func (l *WebImageLoader) fetch(ctx context.Context, ref string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("compose: %s returned %d", ref, resp.StatusCode)
	}
	return decode(resp.Body, ref)
}

func decode(r io.Reader, ref string) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("compose: decode %s: %w", ref, err)
	}
	return img, nil
}
