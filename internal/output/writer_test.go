package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
	"github.com/KDaiyan/EECS22L-Chess/internal/config"
	"github.com/KDaiyan/EECS22L-Chess/internal/engine"
	"github.com/KDaiyan/EECS22L-Chess/internal/game"
	"github.com/KDaiyan/EECS22L-Chess/internal/testutil"
)

// playTestGame starts a game from fen (or the initial position) and plays
// the given moves.
func playTestGame(t *testing.T, fen string, moves ...string) *game.Game {
	t.Helper()
	cfg := testutil.QuietConfig()
	cfg.Game.StartFEN = fen
	g, err := game.New(cfg)
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	for _, text := range moves {
		m := testutil.MustMove(t, text)
		if err := g.Move(m.From, m.To); err != nil {
			t.Fatalf("Move(%s): %v", text, err)
		}
	}
	return g
}

// TestPGNWriter_WriteGame verifies PGN writer outputs correct format
func TestPGNWriter_WriteGame(t *testing.T) {
	g := playTestGame(t, "", "f2f3", "e7e5", "g2g4", "d8h4")

	var buf bytes.Buffer
	writer := NewPGNWriter(&buf)
	if err := writer.WriteGame(g); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, `[White "Human"]`) {
		t.Error("Missing White tag")
	}
	if !strings.Contains(output, "Qh4#") {
		t.Error("Missing mating move")
	}
	if !strings.Contains(output, "0-1") {
		t.Error("Missing result")
	}
	if !strings.HasSuffix(output, "\n\n") {
		t.Error("Game should be followed by a blank line")
	}
}

// TestJSONWriter_WriteGame verifies JSON writer buffers games until Close
func TestJSONWriter_WriteGame(t *testing.T) {
	g := playTestGame(t, "", "e2e4", "d7d5", "e4d5")

	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)
	if err := writer.WriteGame(g); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Error("JSON should not be written before Close")
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("Invalid JSON output: %v\n%s", err, buf.String())
	}
	if len(out.Games) != 1 {
		t.Fatalf("Expected 1 game, got %d", len(out.Games))
	}

	jg := out.Games[0]
	testutil.AssertEqual(t, jg.White, "Human")
	testutil.AssertEqual(t, jg.Black, "Computer")
	testutil.AssertEqual(t, jg.Result, "*")
	testutil.AssertEqual(t, jg.PlyCount, 3)
	testutil.AssertEqual(t, jg.InitialFEN, engine.InitialFEN)
	testutil.AssertEqual(t, jg.FinalFEN, "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")

	testutil.AssertEqual(t, jg.Moves[2], JSONMove{
		Ply:        3,
		MoveNumber: 2,
		Color:      "white",
		UCI:        "e4d5",
		From:       "e4",
		To:         "d5",
		Piece:      "pawn",
		Captured:   "pawn",
	})

	// A second Close has nothing left to write.
	buf.Reset()
	if err := writer.Close(); err != nil || buf.Len() != 0 {
		t.Errorf("second Close wrote %q, err %v", buf.String(), err)
	}
}

func TestGameToJSON_SpecialMoves(t *testing.T) {
	g := playTestGame(t, "4k3/P7/8/8/8/8/8/4K2R w K - 0 1", "h1e1", "e8d7", "a7a8")
	jg := GameToJSON(g)

	castle := jg.Moves[0]
	testutil.AssertTrue(t, castle.Castle, "h1e1 should be marked as castling")
	testutil.AssertEqual(t, castle.UCI, "e1g1")
	testutil.AssertEqual(t, castle.Piece, "rook")
	testutil.AssertEqual(t, castle.Captured, "")

	promotion := jg.Moves[2]
	testutil.AssertEqual(t, promotion.Promotion, "queen")
	testutil.AssertEqual(t, promotion.UCI, "a7a8q")
	testutil.AssertEqual(t, promotion.MoveNumber, 2)
}

func TestGameToJSON_BlackStarts(t *testing.T) {
	g := playTestGame(t, "4k3/8/8/8/8/8/4P3/4K3 b - - 0 1", "e8d8", "e2e4")
	jg := GameToJSON(g)

	testutil.AssertEqual(t, jg.Moves[0].Color, "black")
	testutil.AssertEqual(t, jg.Moves[0].MoveNumber, 1)
	testutil.AssertEqual(t, jg.Moves[1].Color, "white")
	testutil.AssertEqual(t, jg.Moves[1].MoveNumber, 2)
}

func TestGameToJSON_ComputerMoves(t *testing.T) {
	cfg := config.NewConfigBuilder().
		WithVerbosity(0).
		WithSeed(1).
		WithSelfPlay(true).
		WithRandomOpeningMoves(2).
		Build()
	g, err := game.New(cfg)
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := g.PlayAI(); err != nil {
			t.Fatalf("PlayAI: %v", err)
		}
	}

	jg := GameToJSON(g)
	testutil.AssertEqual(t, jg.White, "Computer")
	for _, m := range jg.Moves {
		testutil.AssertTrue(t, m.Computer, "move %s should be marked as computer", m.UCI)
	}
	testutil.AssertEqual(t, jg.PlyCount, 2)
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		format  string
		want    string
		wantErr bool
	}{
		{"", "*output.PGNWriter", false},
		{"pgn", "*output.PGNWriter", false},
		{"json", "*output.JSONWriter", false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			w, err := NewWriter(tt.format, &buf)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewWriter(%q) should fail", tt.format)
				}
				return
			}
			testutil.AssertNoError(t, err)
			switch w.(type) {
			case *PGNWriter:
				testutil.AssertEqual(t, tt.want, "*output.PGNWriter")
			case *JSONWriter:
				testutil.AssertEqual(t, tt.want, "*output.JSONWriter")
			default:
				t.Errorf("NewWriter(%q) = %T", tt.format, w)
			}
		})
	}
}

func TestKindName(t *testing.T) {
	testutil.AssertEqual(t, kindName(chess.Knight), "knight")
	testutil.AssertEqual(t, kindName(chess.King), "king")
}
