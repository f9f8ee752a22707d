// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	Empty Kind = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a kind owned by a colour. The zero value is NoPiece.
// The colour never changes; the kind changes only on promotion.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece marks an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty returns true if there is no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Is returns true if the piece is of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Colour == colour
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black and '.' for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight" or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Board dimensions and the home ranks of each colour. Rank index 0 is the
// black back rank (rank 8 in algebraic notation); rank index 7 is the white
// back rank.
const (
	BoardSize = 8
	LastIndex = BoardSize - 1

	WhiteHomeRank      = 7
	BlackHomeRank      = 0
	WhitePawnStartRank = 6
	BlackPawnStartRank = 1

	KingStartFile      = 4
	LeftRookStartFile  = 0
	RightRookStartFile = 7
)

// HomeRank returns the back rank index of the colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return WhiteHomeRank
	}
	return BlackHomeRank
}

// PawnStartRank returns the rank index the colour's pawns start on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return WhitePawnStartRank
	}
	return BlackPawnStartRank
}

// ColourOffset returns -1 for White, +1 for Black: the rank step of a pawn
// advancing one square.
func ColourOffset(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// Entity identifies a piece whose movement affects castling rights.
type Entity int

const (
	KingEntity Entity = iota
	LeftRookEntity
	RightRookEntity
	NumEntities
)

// String returns the string representation of an entity.
func (e Entity) String() string {
	switch e {
	case KingEntity:
		return "King"
	case LeftRookEntity:
		return "LeftRook"
	case RightRookEntity:
		return "RightRook"
	default:
		return "Unknown"
	}
}
