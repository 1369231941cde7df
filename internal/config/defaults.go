package config

import (
	_ "embed"
)

//go:embed defaults/match.yaml
var defaultMatchYAML []byte

// DefaultMatchConfig returns the default tile-match configuration.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Board: BoardConfig{
			Cols:      8,
			Rows:      8,
			TileTypes: 6,
		},
		Mechanics: MechanicsConfig{
			Bombs:      true,
			ColorChain: false,
		},
		Duel: DuelConfig{
			MovesPerRound:  5,
			RoundsPerMatch: 3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "match", "match_duel":
		return defaultMatchYAML
	default:
		return nil
	}
}
