package config

import (
	"github.com/hashicorp/go-multierror"

	"github.com/KDaiyan/EECS22L-Chess/internal/errors"
)

// MaxDepth bounds the search depth a user may ask for.
const MaxDepth = 6

// SearchConfig holds settings for the computer player.
type SearchConfig struct {
	// Depth is the number of plies searched for each AI move
	Depth int

	// RandomOpeningMoves is the number of AI turns played at random
	// before searching
	RandomOpeningMoves int

	// Seed for tie-breaks and random moves; 0 seeds from the clock
	Seed int64

	// Workers is the number of goroutines scoring root moves
	Workers int

	// TraceLimit caps the nodes recorded for -trace (0 = default)
	TraceLimit int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:              2,
		RandomOpeningMoves: 3,
		Workers:            1,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	var result *multierror.Error
	if s.Depth < 1 || s.Depth > MaxDepth {
		result = multierror.Append(result, errors.Wrapf(errors.ErrInvalidConfig,
			"depth %d out of range 1..%d", s.Depth, MaxDepth))
	}
	if s.RandomOpeningMoves < 0 {
		result = multierror.Append(result, errors.Wrapf(errors.ErrInvalidConfig,
			"random opening moves %d is negative", s.RandomOpeningMoves))
	}
	if s.Workers < 1 {
		result = multierror.Append(result, errors.Wrapf(errors.ErrInvalidConfig,
			"workers %d, want at least 1", s.Workers))
	}
	if s.TraceLimit < 0 {
		result = multierror.Append(result, errors.Wrapf(errors.ErrInvalidConfig,
			"trace limit %d is negative", s.TraceLimit))
	}
	return result.ErrorOrNil()
}
