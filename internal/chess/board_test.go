package chess

import (
	"strings"
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.Turn != White {
			t.Errorf("Turn = %v; want White", b.Turn)
		}
		if b.Flipped {
			t.Error("Flipped = true; want false")
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for rank := 0; rank < BoardSize; rank++ {
			for file := 0; file < BoardSize; file++ {
				if got := b.At(Pos(rank, file)); got != NoPiece {
					t.Errorf("At(%d, %d) = %v; want Empty", rank, file, got)
				}
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewStartingBoard()

	tests := []struct {
		square string
		piece  Piece
	}{
		// White back rank
		{"a1", W(Rook)},
		{"b1", W(Knight)},
		{"c1", W(Bishop)},
		{"d1", W(Queen)},
		{"e1", W(King)},
		{"f1", W(Bishop)},
		{"g1", W(Knight)},
		{"h1", W(Rook)},
		// Pawns
		{"a2", W(Pawn)},
		{"h2", W(Pawn)},
		{"a7", B(Pawn)},
		{"h7", B(Pawn)},
		// Black back rank
		{"a8", B(Rook)},
		{"d8", B(Queen)},
		{"e8", B(King)},
		{"h8", B(Rook)},
		// Middle is empty
		{"e4", NoPiece},
		{"d5", NoPiece},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			if got := b.At(MustPosition(tt.square)); got != tt.piece {
				t.Errorf("At(%s) = %v; want %v", tt.square, got, tt.piece)
			}
		})
	}

	if got := b.PieceCount(); got != 32 {
		t.Errorf("PieceCount() = %d; want 32", got)
	}
	if b.Turn != White {
		t.Errorf("Turn = %v; want White", b.Turn)
	}
}

func TestBoardHomeRanks(t *testing.T) {
	b := NewStartingBoard()

	for _, colour := range []Colour{White, Black} {
		home := HomeRank(colour)
		if got := b.At(Pos(home, KingStartFile)); !got.Is(colour, King) {
			t.Errorf("%v king square holds %v", colour, got)
		}
		if got := b.At(Pos(home, LeftRookStartFile)); !got.Is(colour, Rook) {
			t.Errorf("%v left rook square holds %v", colour, got)
		}
		if got := b.At(Pos(home, RightRookStartFile)); !got.Is(colour, Rook) {
			t.Errorf("%v right rook square holds %v", colour, got)
		}
		pawnRank := PawnStartRank(colour)
		if pawnRank+ColourOffset(colour)*-1 != home {
			t.Errorf("%v pawns do not start in front of the home rank", colour)
		}
	}
}

func TestBoardClone(t *testing.T) {
	b := NewStartingBoard()
	b.MarkMoved(White, KingEntity)
	clone := b.Clone()

	clone.Shift(MustPosition("e2"), MustPosition("e4"))
	clone.MarkMoved(Black, LeftRookEntity)
	clone.ChangeTurn()
	clone.FlipOrientation()

	if b.At(MustPosition("e2")) != W(Pawn) {
		t.Error("Clone modification affected original board squares")
	}
	if b.HasMoved(Black, LeftRookEntity) {
		t.Error("Clone modification affected original moved flags")
	}
	if b.Turn != White || b.Flipped {
		t.Error("Clone modification affected original turn or orientation")
	}
	if !clone.HasMoved(White, KingEntity) {
		t.Error("Clone did not copy moved flags")
	}
}

func TestBoardShift(t *testing.T) {
	b := NewStartingBoard()

	// A raw shift onto an occupied square overwrites it.
	b.Shift(MustPosition("d1"), MustPosition("d7"))

	if got := b.At(MustPosition("d7")); got != W(Queen) {
		t.Errorf("At(d7) = %v; want White Queen", got)
	}
	if !b.IsEmpty(MustPosition("d1")) {
		t.Error("d1 should be empty after the shift")
	}
	if got := b.PieceCount(); got != 31 {
		t.Errorf("PieceCount() = %d; want 31", got)
	}
}

func TestBoardOffBoardAccess(t *testing.T) {
	b := NewStartingBoard()

	for _, p := range []Position{Pos(-1, 0), Pos(0, 8), Pos(8, 8), NoPosition} {
		if got := b.At(p); got != NoPiece {
			t.Errorf("At(%v) = %v; want Empty", p, got)
		}
		if b.IsEmpty(p) {
			t.Errorf("IsEmpty(%v) = true; want false for off-board", p)
		}
		b.Set(p, W(Queen))
	}
	if got := b.PieceCount(); got != 32 {
		t.Errorf("PieceCount() = %d; want 32 after off-board Set", got)
	}
}

func TestBoardOrientation(t *testing.T) {
	b := NewStartingBoard()
	e2 := MustPosition("e2")

	if got := b.FromView(e2); got != e2 {
		t.Errorf("FromView(e2) unflipped = %v; want e2", got)
	}

	b.FlipOrientation()
	if !b.Flipped {
		t.Fatal("Flipped = false after FlipOrientation")
	}
	if got := b.FromView(e2); got != MustPosition("d7") {
		t.Errorf("FromView(e2) flipped = %v; want d7", got)
	}
	if got := b.ToView(b.FromView(e2)); got != e2 {
		t.Errorf("ToView(FromView(e2)) = %v; want e2", got)
	}

	// Orientation never moves pieces.
	if b.At(e2) != W(Pawn) {
		t.Error("FlipOrientation moved pieces")
	}

	b.FlipOrientation()
	if b.Flipped {
		t.Error("double FlipOrientation should restore orientation")
	}
}

func TestBoardString(t *testing.T) {
	b := NewStartingBoard()
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")

	if len(lines) != 9 {
		t.Fatalf("String() has %d lines; want 9", len(lines))
	}
	if lines[0] != "8 r n b q k b n r" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[7] != "1 R N B Q K B N R" {
		t.Errorf("last rank line = %q", lines[7])
	}
	if lines[8] != "  a b c d e f g h" {
		t.Errorf("file line = %q", lines[8])
	}

	b.FlipOrientation()
	lines = strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if lines[0] != "1 R N B K Q B N R" {
		t.Errorf("flipped first line = %q", lines[0])
	}
	if lines[8] != "  h g f e d c b a" {
		t.Errorf("flipped file line = %q", lines[8])
	}
}

func TestMoveParsing(t *testing.T) {
	tests := []struct {
		input   string
		want    Move
		wantErr bool
	}{
		{"e2e4", Move{From: Pos(6, 4), To: Pos(4, 4)}, false},
		{"e2-e4", Move{From: Pos(6, 4), To: Pos(4, 4)}, false},
		{" a8h1 ", Move{From: Pos(0, 0), To: Pos(7, 7)}, false},
		{"e2e9", NoMove, true},
		{"i2e4", NoMove, true},
		{"e2", NoMove, true},
		{"", NoMove, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMove(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMove(%q) error = %v; wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %v; want %v", tt.input, got, tt.want)
			}
			if !tt.wantErr && got.String() != strings.ReplaceAll(strings.TrimSpace(tt.input), "-", "") {
				t.Errorf("String() = %q; want round trip of %q", got.String(), tt.input)
			}
		})
	}
}

func TestPositionHelpers(t *testing.T) {
	if NoPosition.InBounds() {
		t.Error("NoPosition.InBounds() = true")
	}
	if got := NoMove.String(); got != "0000" {
		t.Errorf("NoMove.String() = %q; want 0000", got)
	}
	if got := MustPosition("a1").Mirror(); got != MustPosition("h8") {
		t.Errorf("a1.Mirror() = %v; want h8", got)
	}
	if got := MustPosition("e2").Offset(ColourOffset(White), 0); got != MustPosition("e3") {
		t.Errorf("e2 advanced for White = %v; want e3", got)
	}
	if got := MustPosition("e7").Offset(ColourOffset(Black), 0); got != MustPosition("e6") {
		t.Errorf("e7 advanced for Black = %v; want e6", got)
	}
}

func TestPieceLetters(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{W(King), 'K'},
		{B(King), 'k'},
		{W(Pawn), 'P'},
		{B(Knight), 'n'},
		{NoPiece, '.'},
	}
	for _, tt := range tests {
		if got := tt.piece.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %c; want %c", tt.piece, got, tt.want)
		}
	}
}
