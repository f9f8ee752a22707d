package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
	"github.com/KDaiyan/EECS22L-Chess/internal/config"
	"github.com/KDaiyan/EECS22L-Chess/internal/engine"
	"github.com/KDaiyan/EECS22L-Chess/internal/hashing"
	"github.com/KDaiyan/EECS22L-Chess/internal/search"
)

// startBoard returns the configured start position.
func startBoard(cfg *config.Config) (*chess.Board, error) {
	if cfg.Game.StartFEN == "" {
		return engine.NewInitialBoard(), nil
	}
	board, err := engine.NewBoardFromFEN(cfg.Game.StartFEN)
	if err != nil {
		return nil, err
	}
	if err := engine.ValidateBoard(board); err != nil {
		return nil, err
	}
	return board, nil
}

// perftCacheSize bounds the positions cached by runPerft.
const perftCacheSize = 1 << 20

// runPerft prints the leaf count below every root move and the total.
func runPerft(cfg *config.Config, depth int) error {
	board, err := startBoard(cfg)
	if err != nil {
		return err
	}

	cache := hashing.NewThreadSafeTable(perftCacheSize)
	counts, err := hashing.Divide(board, depth, cfg.Search.Workers, cache)
	if err != nil {
		return err
	}
	moves := make([]string, 0, len(counts))
	for m := range counts {
		moves = append(moves, m)
	}
	sort.Strings(moves)

	var total uint64
	for _, m := range moves {
		fmt.Fprintf(cfg.OutputFile, "%s: %d\n", m, counts[m])
		total += counts[m]
	}
	fmt.Fprintf(cfg.OutputFile, "\nNodes searched: %d\n", total)
	if logger := cfg.Logger(2); logger != nil {
		logger.Printf("perft: %d cached positions, %d hits", cache.Len(), cache.Hits())
	}
	return nil
}

// runAnalyze searches the start position once and prints the decision.
func runAnalyze(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	board, err := startBoard(cfg)
	if err != nil {
		return err
	}

	s := search.NewSearcher(cfg.Search.Depth, cfg.Search.Seed)
	s.Workers = cfg.Search.Workers
	s.Log = cfg.Logger(2)
	if cfg.Output.TraceFile != "" {
		s.Trace = search.NewTrace()
		s.Trace.Limit = cfg.Search.TraceLimit
	}

	d, err := s.BestMove(board, board.Turn)
	if err != nil {
		return err
	}

	out := cfg.OutputFile
	fmt.Fprintln(out, board)
	fmt.Fprintf(out, "FEN:        %s\n", engine.BoardToFEN(board))
	fmt.Fprintf(out, "Status:     %v\n", engine.GameStatus(board, board.Turn))
	if d.Outcome != search.Undecided {
		fmt.Fprintf(out, "Result:     %v\n", d.Outcome)
	} else {
		fmt.Fprintf(out, "Best move:  %v\n", d.Move)
		fmt.Fprintf(out, "Score:      %+d\n", d.Score)
		fmt.Fprintf(out, "Candidates: %s\n", strings.Join(moveList(d.Candidates), " "))
	}
	fmt.Fprintf(out, "Nodes:      %d\n", d.Nodes)

	if s.Trace != nil {
		dot, err := s.Trace.DOT()
		if err != nil {
			return err
		}
		return writeText(cfg.Output.TraceFile, nil, dot)
	}
	return nil
}
