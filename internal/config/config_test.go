package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
	chesserrors "github.com/KDaiyan/EECS22L-Chess/internal/errors"
)

// TestSearchConfig_Defaults verifies SearchConfig has sensible defaults
func TestSearchConfig_Defaults(t *testing.T) {
	cfg := NewSearchConfig()

	if cfg.Depth != 2 {
		t.Errorf("Depth = %d, want 2", cfg.Depth)
	}
	if cfg.RandomOpeningMoves != 3 {
		t.Errorf("RandomOpeningMoves = %d, want 3", cfg.RandomOpeningMoves)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
}

// TestGameConfig_Defaults verifies GameConfig has sensible defaults
func TestGameConfig_Defaults(t *testing.T) {
	cfg := NewGameConfig()

	if cfg.HumanSide != chess.White {
		t.Errorf("HumanSide = %v, want White", cfg.HumanSide)
	}
	if cfg.SelfPlay {
		t.Error("SelfPlay should be false by default")
	}
	if cfg.MaxPly != 200 {
		t.Errorf("MaxPly = %d, want 200", cfg.MaxPly)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if !cfg.Output.ShowBoard {
		t.Error("Output.ShowBoard should be true by default")
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output streams should default to stdout and stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
	if GlobalConfig == nil {
		t.Error("GlobalConfig should be initialised")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantCount int
		wantText  []string
	}{
		{"valid", func(c *Config) {}, 0, nil},
		{"depth zero", func(c *Config) { c.Search.Depth = 0 }, 1, []string{"depth 0"}},
		{"depth too deep", func(c *Config) { c.Search.Depth = MaxDepth + 1 }, 1, []string{"out of range"}},
		{"no workers", func(c *Config) { c.Search.Workers = 0 }, 1, []string{"workers 0"}},
		{"negative max ply", func(c *Config) { c.Game.MaxPly = -1 }, 1, []string{"max ply -1"}},
		{
			name: "all problems reported together",
			modify: func(c *Config) {
				c.Verbosity = -1
				c.OutputFile = nil
				c.Search.Depth = -2
				c.Search.RandomOpeningMoves = -1
				c.Search.TraceLimit = -5
				c.Game.MaxPly = -3
			},
			wantCount: 6,
			wantText:  []string{"verbosity -1", "no output writer", "depth -2", "random opening moves -1", "trace limit -5", "max ply -3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantCount == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, should wrap ErrInvalidConfig", err)
			}
			if got := strings.Count(err.Error(), "* "); got != tt.wantCount {
				t.Errorf("Validate() reported %d problems, want %d:\n%v", got, tt.wantCount, err)
			}
			for _, want := range tt.wantText {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("Validate() = %q, missing %q", err, want)
				}
			}
		})
	}
}

func TestParseSide(t *testing.T) {
	tests := []struct {
		in      string
		want    chess.Colour
		wantErr bool
	}{
		{"white", chess.White, false},
		{"w", chess.White, false},
		{"Black", chess.Black, false},
		{"b", chess.Black, false},
		{"red", chess.White, true},
		{"", chess.White, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSide(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSide(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSide(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestConfig_HumanSide(t *testing.T) {
	cfg := NewConfigBuilder().WithHumanSide(chess.Black).Build()
	if side, ok := cfg.HumanSide(); !ok || side != chess.Black {
		t.Errorf("HumanSide() = %v, %v; want Black, true", side, ok)
	}

	cfg.Game.SelfPlay = true
	if _, ok := cfg.HumanSide(); ok {
		t.Error("HumanSide() should report no human in self-play")
	}
}

func TestConfig_Logger(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().WithLog(buf).WithVerbosity(1).Build()

	if cfg.Logger(2) != nil {
		t.Error("Logger(2) should be nil at verbosity 1")
	}
	logger := cfg.Logger(1)
	if logger == nil {
		t.Fatal("Logger(1) should not be nil at verbosity 1")
	}
	logger.Printf("hello")
	if got := buf.String(); got != "chessai: hello\n" {
		t.Errorf("log output = %q", got)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithDepth(4).
		WithRandomOpeningMoves(0).
		WithSeed(7).
		WithWorkers(3).
		WithSelfPlay(true).
		WithMaxPly(50).
		WithStartFEN("8/8/8/8/8/8/8/K6k w - - 0 1").
		WithOutput(buf).
		ShowBoard(false).
		Build()

	if cfg.Search.Depth != 4 {
		t.Errorf("Depth = %d, want 4", cfg.Search.Depth)
	}
	if cfg.Search.RandomOpeningMoves != 0 {
		t.Errorf("RandomOpeningMoves = %d, want 0", cfg.Search.RandomOpeningMoves)
	}
	if cfg.Search.Seed != 7 || cfg.Search.Workers != 3 {
		t.Errorf("Seed, Workers = %d, %d; want 7, 3", cfg.Search.Seed, cfg.Search.Workers)
	}
	if !cfg.Game.SelfPlay || cfg.Game.MaxPly != 50 {
		t.Errorf("SelfPlay, MaxPly = %v, %d; want true, 50", cfg.Game.SelfPlay, cfg.Game.MaxPly)
	}
	if cfg.Game.StartFEN == "" {
		t.Error("StartFEN should be set")
	}
	if cfg.OutputFile != buf {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Output.ShowBoard {
		t.Error("ShowBoard should be false")
	}
}
