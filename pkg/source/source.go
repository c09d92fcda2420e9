// Package source fetches the catalog CSV from a published spreadsheet.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the spreadsheet host the sheet id is appended to.
const DefaultBaseURL = "https://docs.google.com/spreadsheets/d/"

// ErrLoad matches every *LoadError with errors.Is.
var ErrLoad = errors.New("source: load failed")

// Source yields the raw catalog text.
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// LoadError describes a failed catalog fetch in terms a user can act on.
type LoadError struct {
	URL    string
	Status int
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	msg := "could not load the catalog"
	switch {
	case e.Status != 0:
		msg = fmt.Sprintf("%s: %s returned %d %s", msg, e.URL, e.Status, http.StatusText(e.Status))
	case e.Reason != "":
		msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// Sheet is a published spreadsheet exported as CSV.
type Sheet struct {
	// ID is the spreadsheet document id.
	ID string
	// Name selects a sheet by title. Empty means the first sheet.
	Name string

	BaseURL string
	Client  *http.Client
}

var _ Source = (*Sheet)(nil)

// URL returns the CSV export endpoint for the sheet.
func (s *Sheet) URL() string {
	base := s.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	u := base + url.PathEscape(s.ID)
	if s.Name != "" {
		return u + "/gviz/tq?tqx=out:csv&sheet=" + url.QueryEscape(s.Name)
	}
	return u + "/export?format=csv"
}

// Fetch downloads the sheet. Any failure, including a reply with fewer than
// two non-blank rows, is returned as a *LoadError.
func (s *Sheet) Fetch(ctx context.Context) (string, error) {
	if s.ID == "" {
		return "", &LoadError{Reason: "no sheet id configured"}
	}
	u := s.URL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", &LoadError{URL: u, Err: err}
	}
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", &LoadError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &LoadError{URL: u, Status: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &LoadError{URL: u, Err: err}
	}
	text := string(body)
	if n := countRows(text); n < 2 {
		return "", &LoadError{URL: u, Reason: fmt.Sprintf("expected a header and at least one row, got %d rows", n)}
	}
	return text, nil
}

func countRows(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

// Static serves fixed text. It is used for offline files and tests.
type Static string

func (s Static) Fetch(context.Context) (string, error) {
	if countRows(string(s)) < 2 {
		return "", &LoadError{Reason: "catalog file has no rows"}
	}
	return string(s), nil
}
