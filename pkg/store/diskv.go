package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"tableflip.dev/nongdam/pkg/checklist"
	"tableflip.dev/nongdam/pkg/logging"
)

// KeyPrefix namespaces every key this tool writes.
const KeyPrefix = "nongdam_"

// Persistence defines the persistence contract for checklists.
type Persistence interface {
	// Checklist returns the stored set for a tab. A missing or unreadable
	// value is an empty set.
	Checklist(tab checklist.Tab) checklist.Set
	// StoreChecklist replaces the stored set for a tab.
	StoreChecklist(tab checklist.Tab, set checklist.Set) error
	// BasePath is where the values live on disk.
	BasePath() string
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 64 * 1024,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Key returns the diskv key for a tab's set.
func Key(tab checklist.Tab) string {
	return KeyPrefix + tab.List()
}

func (p *persistence) BasePath() string {
	return p.basePath
}

func (p *persistence) Checklist(tab checklist.Tab) checklist.Set {
	key := Key(tab)
	if !p.d.Has(key) {
		return checklist.Set{}
	}
	val, err := p.d.Read(key)
	if err != nil {
		logging.Named("store").Warn("unreadable checklist, starting empty",
			zap.String("key", key), zap.Error(err))
		return checklist.Set{}
	}
	ids, err := decodeIDs(val)
	if err != nil {
		logging.Named("store").Warn("corrupt checklist, starting empty",
			zap.String("key", key), zap.Error(err))
		return checklist.Set{}
	}
	return checklist.NewSet(ids...)
}

func (p *persistence) StoreChecklist(tab checklist.Tab, set checklist.Set) error {
	data, err := json.Marshal(set.Sorted())
	if err != nil {
		return err
	}
	if err := p.d.Write(Key(tab), data); err != nil {
		return fmt.Errorf("store: write %s: %w", Key(tab), err)
	}
	return nil
}

// decodeIDs reads a JSON array of ids. An empty value is an empty list.
func decodeIDs(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
