package config

import (
	"fmt"

	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
	"github.com/KDaiyan/EECS22L-Chess/internal/errors"
)

// GameConfig holds settings for a game session.
type GameConfig struct {
	// HumanSide is the side entered from stdin
	HumanSide chess.Colour

	// SelfPlay lets the computer play both sides
	SelfPlay bool

	// MaxPly ends a game as a draw after this many half-moves (0 = no limit)
	MaxPly int

	// StartFEN replaces the standard starting position when set
	StartFEN string
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		HumanSide: chess.White,
		MaxPly:    200,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.MaxPly < 0 {
		return fmt.Errorf("max ply %d is negative: %w", g.MaxPly, errors.ErrInvalidConfig)
	}
	return nil
}

// ParseSide converts "white", "black", "w" or "b" to a colour.
func ParseSide(s string) (chess.Colour, error) {
	switch s {
	case "white", "White", "w":
		return chess.White, nil
	case "black", "Black", "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("side %q: %w", s, errors.ErrInvalidConfig)
}
