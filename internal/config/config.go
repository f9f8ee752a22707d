// Package config provides configuration and global state for chessai.
package config

import (
	"io"
	"log"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
	"github.com/KDaiyan/EECS22L-Chess/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=nothing, 1=moves and results, 2=search commentary
	Verbosity int

	// Grouped settings
	Search *SearchConfig
	Game   *GameConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// GlobalConfig is the global configuration instance.
var GlobalConfig *Config

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Search:     NewSearchConfig(),
		Game:       NewGameConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Init initializes the global configuration.
func Init() {
	GlobalConfig = NewConfig()
}

func init() {
	Init()
}

// SetOutput sets the writer for boards, prompts and game records.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logger returns a logger on LogFile when Verbosity is at least level,
// and nil otherwise.
func (c *Config) Logger(level int) *log.Logger {
	if c.LogFile == nil || c.Verbosity < level {
		return nil
	}
	return log.New(c.LogFile, "chessai: ", 0)
}

// HumanSide returns the side the human plays, or false in self-play.
func (c *Config) HumanSide() (chess.Colour, bool) {
	if c.Game.SelfPlay {
		return chess.White, false
	}
	return c.Game.HumanSide, true
}

// Validate reports every invalid setting at once. The returned error wraps
// ErrInvalidConfig.
func (c *Config) Validate() error {
	var result *multierror.Error
	if c.Verbosity < 0 {
		result = multierror.Append(result, errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d is negative", c.Verbosity))
	}
	if c.OutputFile == nil {
		result = multierror.Append(result, errors.Wrap(errors.ErrInvalidConfig, "no output writer"))
	}
	if err := c.Search.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.Game.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}
