// chessai plays chess against a human on the terminal, or against itself.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/KDaiyan/EECS22L-Chess/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessai version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	var err error
	switch {
	case *perft > 0:
		err = runPerft(cfg, *perft)
	case *analyze:
		err = runAnalyze(cfg)
	default:
		err = playGame(cfg, os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessai [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess against a minimax opponent.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands during a game:\n")
	fmt.Fprintf(os.Stderr, "  e2e4    Move a piece (castle by moving the rook onto the king, e.g. h1e1)\n")
	fmt.Fprintf(os.Stderr, "  moves   List legal moves\n")
	fmt.Fprintf(os.Stderr, "  board   Print the board\n")
	fmt.Fprintf(os.Stderr, "  fen     Print the position as FEN\n")
	fmt.Fprintf(os.Stderr, "  resign  Give up the game\n")
	fmt.Fprintf(os.Stderr, "  quit    Leave without a result\n")
}
