// Package file loads a season from a JSON document on disk.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/league-stats-service/internal/domain"
	"github.com/preston-bernstein/league-stats-service/internal/providers"
)

// Name identifies this provider in logs and metrics.
const Name = "file"

// Provider re-reads the season document on every fetch so edits show up on the next poll.
type Provider struct {
	path string
}

// New creates a provider for the JSON document at path.
func New(path string) *Provider {
	return &Provider{path: path}
}

// FetchSeason reads and decodes the season document.
func (p *Provider) FetchSeason(ctx context.Context) (domain.Season, error) {
	if err := ctx.Err(); err != nil {
		return domain.Season{}, err
	}

	raw, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Season{}, providers.Permanent(Name, fmt.Errorf("season file %s: %w", p.path, err))
	}
	if err != nil {
		return domain.Season{}, providers.Transient(Name, fmt.Errorf("read %s: %w", p.path, err))
	}

	var season domain.Season
	if err := json.Unmarshal(raw, &season); err != nil {
		return domain.Season{}, providers.Permanent(Name, fmt.Errorf("decode %s: %w", p.path, err))
	}
	return season, nil
}

// Write stores season at path as indented JSON. Used to seed a document from another source.
func Write(path string, season domain.Season) error {
	raw, err := json.MarshalIndent(season, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
