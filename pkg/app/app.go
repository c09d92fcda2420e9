package app

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tableflip.dev/nongdam/pkg/catalog"
	"tableflip.dev/nongdam/pkg/catalog/viewmodel"
	"tableflip.dev/nongdam/pkg/checklist"
	"tableflip.dev/nongdam/pkg/compose"
	"tableflip.dev/nongdam/pkg/logging"
	"tableflip.dev/nongdam/pkg/source"
	"tableflip.dev/nongdam/pkg/store"
)

// Service provides the catalog and checklist operations shared by the CLI
// and the interactive views. It owns the current State; callers read it
// with State and change it only through the methods below.
type Service struct {
	Persistence store.Persistence
	Source      source.Source
	// Options tune grouping and filtering, for example the company groups.
	Options []viewmodel.Option
	Log     *zap.Logger

	state  State
	opened bool
}

var ErrNoSource = errors.New("app: no catalog source configured")

// New returns a Service with the default filters on the owned tab.
func New(p store.Persistence, src source.Source, opts ...viewmodel.Option) *Service {
	return &Service{Persistence: p, Source: src, Options: opts}
}

func (s *Service) log() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return logging.Named("app")
}

// open reads both checklists from persistence once.
func (s *Service) open() {
	if s.opened {
		return
	}
	s.opened = true
	s.state.Filters = s.state.Filters.Normalize()
	if s.Persistence == nil {
		s.state.Checklists = checklist.Checklists{Owned: checklist.Set{}, Wished: checklist.Set{}}
		return
	}
	s.state.Checklists = checklist.Checklists{
		Owned:  s.Persistence.Checklist(checklist.Owned),
		Wished: s.Persistence.Checklist(checklist.Wish),
	}
}

// Load fetches and parses the catalog. On failure the snapshot is left
// empty and the error is returned as is, a *source.LoadError for fetch
// problems.
func (s *Service) Load(ctx context.Context) (catalog.Snapshot, error) {
	s.open()
	s.state.Snapshot = nil
	if s.Source == nil {
		return nil, ErrNoSource
	}
	text, err := s.Source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	snapshot, stats := catalog.Parse(text)
	s.log().Debug("catalog loaded",
		zap.Int("rows", stats.Rows),
		zap.Int("records", len(snapshot)),
		zap.Int("skipped", stats.Skipped),
		zap.Int("missing_id", stats.MissingID))
	s.state.Snapshot = snapshot
	return snapshot, nil
}

// State returns the current application state.
func (s *Service) State() State {
	s.open()
	return s.state
}

// Toggle flips id on tab, persists the set and returns the new membership.
// A failed write is logged; the in-memory state still changes.
func (s *Service) Toggle(tab checklist.Tab, id string) bool {
	s.open()
	var on bool
	s.state, on = s.state.Toggle(tab, id)
	s.persist(tab)
	return on
}

// Clear empties the set of tab and persists it.
func (s *Service) Clear(tab checklist.Tab) {
	s.open()
	s.state = s.state.Clear(tab)
	s.persist(tab)
}

func (s *Service) persist(tab checklist.Tab) {
	if s.Persistence == nil {
		return
	}
	if err := s.Persistence.StoreChecklist(tab, s.state.Checklists.For(tab)); err != nil {
		s.log().Error("failed to persist checklist",
			zap.String("tab", tab.String()), zap.Error(err))
	}
}

// IsOwned reports whether id is in the owned set.
func (s *Service) IsOwned(id string) bool {
	s.open()
	return s.state.Checklists.IsOwned(id)
}

// IsWished reports whether id is in the wished set.
func (s *Service) IsWished(id string) bool {
	s.open()
	return s.state.Checklists.IsWished(id)
}

// SetFilters replaces the filter state.
func (s *Service) SetFilters(f viewmodel.Filters) {
	s.open()
	s.state = s.state.WithFilters(f)
}

// SetTab switches the active tab, keeping the other filters.
func (s *Service) SetTab(tab checklist.Tab) {
	s.open()
	s.state = s.state.WithTab(tab)
}

// ResetFilters restores the default filters of the active tab.
func (s *Service) ResetFilters() {
	s.open()
	s.state = s.state.WithFilters(s.state.Filters.Reset())
}

// Grouping derives the display grouping of the current state.
func (s *Service) Grouping() viewmodel.Grouping {
	s.open()
	return s.state.Grouping(s.Options...)
}

// ExportRecords returns the records an export of the active tab renders.
func (s *Service) ExportRecords(mode compose.Mode, excludeOwned bool) catalog.Snapshot {
	s.open()
	return s.state.ExportRecords(mode, excludeOwned, s.Options...)
}
