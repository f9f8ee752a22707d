package testutil

import (
	"io"
	"testing"

	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
	"github.com/KDaiyan/EECS22L-Chess/internal/config"
	"github.com/KDaiyan/EECS22L-Chess/internal/engine"
)

// MustBoard parses a FEN string. It calls t.Fatal if the FEN is invalid.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("MustBoard(%q): %v", fen, err)
	}
	return board
}

// MustMove parses coordinate move text such as "e2e4".
func MustMove(t testing.TB, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("MustMove(%q): %v", text, err)
	}
	return m
}

// PlayMoves plays each move for the side to move and passes the turn. It
// calls t.Fatal on the first illegal move.
func PlayMoves(t testing.TB, board *chess.Board, moves ...string) {
	t.Helper()
	for i, text := range moves {
		m := MustMove(t, text)
		if !engine.MovePiece(board, m.From, m.To) {
			t.Fatalf("move %d %s is illegal in\n%v", i+1, text, board)
		}
		board.ChangeTurn()
	}
}

// QuietConfig returns a configuration that writes nothing and uses a fixed
// seed.
func QuietConfig() *config.Config {
	return config.NewConfigBuilder().
		WithVerbosity(0).
		WithSeed(1).
		WithOutput(io.Discard).
		WithLog(io.Discard).
		ShowBoard(false).
		Build()
}
