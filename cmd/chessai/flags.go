// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/KDaiyan/EECS22L-Chess/internal/config"
)

var (
	// Search options
	depth   = flag.Int("depth", 2, "Search depth in plies for computer moves")
	random  = flag.Int("random", 3, "Number of computer moves played at random before searching")
	seed    = flag.Int64("seed", 0, "Random seed (0 = seed from the clock)")
	workers = flag.Int("workers", 1, "Goroutines scoring root moves in parallel")

	// Game options
	side     = flag.String("side", "white", "Side played by the human: white or black")
	selfPlay = flag.Bool("selfplay", false, "Let the computer play both sides")
	maxPly   = flag.Int("maxply", 200, "Declare a draw after this many half-moves (0 = no limit)")
	fen      = flag.String("fen", "", "Start from this FEN position")

	// Tools
	perft   = flag.Int("perft", 0, "Count leaf nodes to this depth from the start position and exit")
	analyze = flag.Bool("analyze", false, "Search the start position once, print the decision and exit")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	pgnFile    = flag.String("pgn", "", "Write the game record to this file")
	traceFile  = flag.String("trace", "", "Write the last search tree to this file in DOT format")
	traceLimit = flag.Int("tracelimit", 0, "Maximum nodes recorded in the search tree (0 = default)")
	noBoard    = flag.Bool("noboard", false, "Don't print the board before each human move")
	jsonOutput = flag.Bool("J", false, "Write the game record in JSON format")

	// Logging
	logFile   = flag.String("L", "", "Write diagnostics to this file")
	verbosity = flag.Int("v", 1, "Verbosity: 0=quiet, 1=moves, 2=search details")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applySearchFlags(cfg)
	if err := applyGameFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)
	cfg.Verbosity = *verbosity
	return nil
}

func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *depth
	cfg.Search.RandomOpeningMoves = *random
	cfg.Search.Seed = *seed
	cfg.Search.Workers = *workers
	cfg.Search.TraceLimit = *traceLimit
}

func applyGameFlags(cfg *config.Config) error {
	humanSide, err := config.ParseSide(*side)
	if err != nil {
		return err
	}
	cfg.Game.HumanSide = humanSide
	cfg.Game.SelfPlay = *selfPlay
	cfg.Game.MaxPly = *maxPly
	cfg.Game.StartFEN = *fen
	return nil
}

func applyOutputFlags(cfg *config.Config) {
	cfg.Output.PGNFile = *pgnFile
	cfg.Output.TraceFile = *traceFile
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.JSONFormat = *jsonOutput
}
