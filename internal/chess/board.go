package chess

import (
	"bytes"
)

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The board squares, Squares[rank][file]. Rank 0 is the black back rank.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	Turn Colour

	// Moved records whether each colour's king, left rook and right rook
	// have ever left their square. A flag once set is never cleared.
	Moved [2][NumEntities]bool

	// Flipped is the viewing orientation. It does not affect any rule; it
	// only mirrors coordinates for whoever draws the board or reads clicks.
	Flipped bool
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{Turn: White}
}

// NewStartingBoard creates a board with the standard starting position.
func NewStartingBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{Turn: White}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[BlackHomeRank][file] = B(backRank[file])
		b.Squares[BlackPawnStartRank][file] = B(Pawn)
		b.Squares[WhitePawnStartRank][file] = W(Pawn)
		b.Squares[WhiteHomeRank][file] = W(backRank[file])
	}
}

// At returns the piece at the given position, or NoPiece if the position is
// empty or off the board.
func (b *Board) At(p Position) Piece {
	if !p.InBounds() {
		return NoPiece
	}
	return b.Squares[p.Rank][p.File]
}

// Set places a piece at the given position. Off-board positions are ignored.
func (b *Board) Set(p Position, piece Piece) {
	if p.InBounds() {
		b.Squares[p.Rank][p.File] = piece
	}
}

// IsEmpty returns true if the position is on the board and empty.
func (b *Board) IsEmpty(p Position) bool {
	return p.InBounds() && b.Squares[p.Rank][p.File].IsEmpty()
}

// Shift moves the piece at from onto to, overwriting whatever was there,
// and clears from. No rules are checked.
func (b *Board) Shift(from, to Position) {
	piece := b.At(from)
	b.Set(from, NoPiece)
	b.Set(to, piece)
}

// ChangeTurn passes the move to the other side.
func (b *Board) ChangeTurn() {
	b.Turn = b.Turn.Opposite()
}

// FlipOrientation mirrors the viewing orientation.
func (b *Board) FlipOrientation() {
	b.Flipped = !b.Flipped
}

// FromView converts a position as seen by the viewer into a board position.
func (b *Board) FromView(p Position) Position {
	if b.Flipped && p.InBounds() {
		return p.Mirror()
	}
	return p
}

// ToView converts a board position into the viewer's coordinates.
func (b *Board) ToView(p Position) Position {
	// Mirroring is its own inverse.
	return b.FromView(p)
}

// HasMoved returns true if the colour's entity has ever moved.
func (b *Board) HasMoved(colour Colour, e Entity) bool {
	return b.Moved[colour][e]
}

// MarkMoved records that the colour's entity has moved.
func (b *Board) MarkMoved(colour Colour, e Entity) {
	b.Moved[colour][e] = true
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// PieceCount returns the number of pieces on the board.
func (b *Board) PieceCount() int {
	count := 0
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if !b.Squares[rank][file].IsEmpty() {
				count++
			}
		}
	}
	return count
}

// String draws the board as the viewer sees it. Only useful for debugging
// and the command line.
func (b *Board) String() string {
	buf := &bytes.Buffer{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.FromView(Pos(row, col))
			if col == 0 {
				buf.WriteByte(byte('8' - p.Rank))
			}
			buf.WriteByte(' ')
			buf.WriteByte(b.At(p).Letter())
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte(' ')
	for col := 0; col < BoardSize; col++ {
		buf.WriteByte(' ')
		buf.WriteByte(byte('a' + b.FromView(Pos(0, col)).File))
	}
	buf.WriteByte('\n')
	return buf.String()
}
