package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/peterbourgon/diskv/v3"
)

const stateKey = "state"

// State is the host-side calendar snapshot kept between runs.
type State struct {
	Name    string     `json:"name"`
	Value   *time.Time `json:"value,omitempty"`
	Display time.Time  `json:"display"`
}

// Persistence stores the calendar host state.
type Persistence interface {
	Load() (State, bool, error)
	Save(State) error
	Reset() error
}

// Open creates a Persistence backed by diskv under basePath.
func Open(basePath string) Persistence {
	return &persistence{
		basePath: basePath,
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 64 * 1024,
		}),
	}
}

type persistence struct {
	basePath string
	d        *diskv.Diskv
}

// Load returns the saved state. The boolean is false when nothing was saved.
func (p *persistence) Load() (State, bool, error) {
	var s State
	if !p.d.Has(stateKey) {
		return s, false, nil
	}
	// Read past the cache; another process may have rewritten the file.
	rc, err := p.d.ReadStream(stateKey, true)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, false, nil
		}
		return s, false, fmt.Errorf("failed to read state: %w", err)
	}
	defer rc.Close()
	val, err := io.ReadAll(rc)
	if err != nil {
		return s, false, fmt.Errorf("failed to read state: %w", err)
	}
	if err := json.Unmarshal(val, &s); err != nil {
		return s, false, fmt.Errorf("failed to decode state: %w", err)
	}
	return s, true, nil
}

// Save replaces the saved state.
func (p *persistence) Save(s State) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := p.d.Write(stateKey, b); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}

// Reset forgets the saved state.
func (p *persistence) Reset() error {
	if !p.d.Has(stateKey) {
		return nil
	}
	return p.d.Erase(stateKey)
}
