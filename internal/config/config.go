// Package config provides YAML-based game configuration loading and
// difficulty presets for the tilematch platform.
package config

// MatchConfig contains all configuration for the tile-match game.
type MatchConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Mechanics MechanicsConfig `yaml:"mechanics"`
	Duel      DuelConfig      `yaml:"duel"`
}

// BoardConfig defines the board geometry and tile variety.
type BoardConfig struct {
	Cols      int `yaml:"cols"`
	Rows      int `yaml:"rows"`
	TileTypes int `yaml:"tile_types"`
}

// MechanicsConfig toggles the optional clearing mechanics.
type MechanicsConfig struct {
	Bombs      bool `yaml:"bombs"`       // 2x2 blocks detonate a 4x4 area
	ColorChain bool `yaml:"color_chain"` // matches pull in adjacent same-color tiles
}

// DuelConfig defines the player-vs-CPU match structure.
type DuelConfig struct {
	MovesPerRound  int `yaml:"moves_per_round"`
	RoundsPerMatch int `yaml:"rounds_per_match"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyMatchPreset modifies the config based on a difficulty preset.
// Fewer tile types means more frequent matches; hard boards also enable
// every mechanic so the CPU opponent has more to work with.
func ApplyMatchPreset(cfg *MatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.TileTypes = 5
		cfg.Mechanics.Bombs = false
		cfg.Mechanics.ColorChain = false
	case DifficultyHard:
		cfg.Board.TileTypes = 7
		cfg.Mechanics.Bombs = true
		cfg.Mechanics.ColorChain = true
	}
}
