// Package session persists in-progress games as JSON save files, so a game
// can be suspended from the TUI and resumed later from the CLI.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/akarpenko/tilematch/internal/games/match"
)

// PayloadVersion is bumped whenever the save format changes incompatibly.
const PayloadVersion = 1

// Payload is the on-disk save format.
type Payload struct {
	Version int               `json:"version"`
	Mode    string            `json:"mode"`
	SavedAt time.Time         `json:"saved_at"`
	Game    match.ResumeState `json:"game"`
}

// SaveInfo summarizes a save file for listings.
type SaveInfo struct {
	Name    string
	Mode    string
	Score   int
	SavedAt time.Time
}

// SaveService reads and writes save files in a single directory.
type SaveService struct {
	dir string
}

// DefaultDir returns the standard save directory under the user's home,
// or a local fallback when home is unavailable.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "saves"
	}
	return filepath.Join(home, ".tilematch", "saves")
}

// NewSaveService creates the save directory if needed and returns a service
// bound to it. A leading ~ in dir expands to the user's home.
func NewSaveService(dir string) (*SaveService, error) {
	if dir != "" && dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("session: cannot expand home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("session: cannot create directory %s: %w", dir, err)
	}

	return &SaveService{dir: dir}, nil
}

// Save writes a game state under the given name, overwriting any previous
// save with that name.
func (s *SaveService) Save(name string, state match.ResumeState) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}

	payload := Payload{
		Version: PayloadVersion,
		Mode:    state.Mode,
		SavedAt: time.Now().UTC(),
		Game:    state,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("session: cannot encode save %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name+".json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("session: cannot write save %s: %w", name, err)
	}
	return nil
}

// Load reads and validates a save by name.
func (s *SaveService) Load(name string) (Payload, error) {
	var payload Payload

	name, err := cleanName(name)
	if err != nil {
		return payload, err
	}

	path := filepath.Join(s.dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return payload, fmt.Errorf("session: cannot read save %s: %w", name, err)
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, fmt.Errorf("session: cannot parse save %s: %w", name, err)
	}
	if payload.Version != PayloadVersion {
		return payload, fmt.Errorf("session: save %s has unsupported version %d", name, payload.Version)
	}
	if payload.Mode == "" || payload.Mode != payload.Game.Mode {
		return payload, fmt.Errorf("session: save %s has inconsistent mode", name)
	}

	return payload, nil
}

// List returns summaries of all saves, newest first. Unreadable or
// incompatible files are skipped.
func (s *SaveService) List() ([]SaveInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("session: cannot list saves: %w", err)
	}

	var infos []SaveInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		payload, err := s.Load(name)
		if err != nil {
			continue
		}
		infos = append(infos, SaveInfo{
			Name:    name,
			Mode:    payload.Mode,
			Score:   payload.Game.Score,
			SavedAt: payload.SavedAt,
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].SavedAt.After(infos[j].SavedAt)
	})

	return infos, nil
}

// Delete removes a save by name.
func (s *SaveService) Delete(name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}
	path := filepath.Join(s.dir, name+".json")
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("session: cannot delete save %s: %w", name, err)
	}
	return nil
}

// cleanName rejects names that could escape the save directory.
func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("session: save name is empty")
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("session: invalid save name %q", name)
	}
	return name, nil
}
