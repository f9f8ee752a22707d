package config

import (
	"io"

	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithRandomOpeningMoves sets how many AI turns are played at random.
func (b *ConfigBuilder) WithRandomOpeningMoves(n int) *ConfigBuilder {
	b.cfg.Search.RandomOpeningMoves = n
	return b
}

// WithSeed sets the random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Search.Seed = seed
	return b
}

// WithWorkers sets the number of search workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithHumanSide sets the side played from stdin.
func (b *ConfigBuilder) WithHumanSide(side chess.Colour) *ConfigBuilder {
	b.cfg.Game.HumanSide = side
	return b
}

// WithSelfPlay lets the computer play both sides.
func (b *ConfigBuilder) WithSelfPlay(enabled bool) *ConfigBuilder {
	b.cfg.Game.SelfPlay = enabled
	return b
}

// WithMaxPly sets the half-move limit.
func (b *ConfigBuilder) WithMaxPly(n int) *ConfigBuilder {
	b.cfg.Game.MaxPly = n
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithJSON selects JSON for the game record.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// ShowBoard controls whether the board is printed before human moves.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}
