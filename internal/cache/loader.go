// Package cache reads the Granola desktop app's local cache file and exposes
// it as a read-only meeting repository.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/trigrman/granola-meetings/internal/domain/meeting"
	"github.com/trigrman/granola-meetings/internal/logger"
)

// ErrCacheNotFound is returned when the cache file does not exist.
var ErrCacheNotFound = errors.New("granola cache not found")

// Loader opens the cache file at Path. Every call to Open reads and parses
// the file again.
type Loader struct {
	Path string
}

func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// Open implements meeting.Source.
func (l *Loader) Open() (meeting.Repository, error) {
	store, err := l.Load()
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Load reads the whole cache file into a Store.
func (l *Loader) Load() (*Store, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrCacheNotFound, l.Path)
		}
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	store, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing cache %s: %w", l.Path, err)
	}
	logger.Debugf("[Cache] loaded %d meetings from %s", len(store.meetings), l.Path)
	return store, nil
}

type envelope struct {
	Cache *string `json:"cache"`
}

type payload struct {
	State json.RawMessage `json:"state"`
}

type state struct {
	Documents      object `json:"documents"`
	DocumentPanels object `json:"documentPanels"`
	Transcripts    object `json:"transcripts"`
}

// Parse decodes cache file contents. The file is a JSON object whose "cache"
// field holds the JSON-encoded app state.
func Parse(data []byte) (*Store, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding envelope: %w", err)
	}
	if env.Cache == nil {
		return nil, errors.New(`missing "cache" field`)
	}

	var p payload
	if err := json.Unmarshal([]byte(*env.Cache), &p); err != nil {
		return nil, fmt.Errorf("decoding cache payload: %w", err)
	}

	var st state
	if len(p.State) > 0 && isObject(p.State) {
		if err := json.Unmarshal(p.State, &st); err != nil {
			logger.Warnf("[Cache] state is malformed, treating it as empty: %v", err)
			st = state{}
		}
	}
	return newStore(st), nil
}
