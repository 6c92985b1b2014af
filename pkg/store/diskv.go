// Package store persists the planner snapshot to disk and loads the runtime
// configuration.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/DIEGO120000/agenda-test01/pkg/agenda"
)

// Persistence is the persistence contract for the planner snapshot.
type Persistence interface {
	LoadState(ctx context.Context) agenda.State
	SaveState(s agenda.State) error
}

const stateKey = "state"

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
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// LoadState reads the snapshot. A missing key means a fresh journal; a
// corrupt blob degrades per collection, so a load never fails.
func (p *persistence) LoadState(_ context.Context) agenda.State {
	if !p.d.Has(stateKey) {
		return agenda.NewState()
	}
	data, err := p.d.Read(stateKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", stateKey, err)
		return agenda.NewState()
	}
	return agenda.DecodeState(data)
}

func (p *persistence) SaveState(s agenda.State) error {
	s.Init()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return p.d.Write(stateKey, data)
}
