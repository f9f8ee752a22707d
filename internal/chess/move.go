package chess

import (
	"fmt"
	"strings"

	"github.com/KDaiyan/EECS22L-Chess/internal/errors"
)

// Position is a (rank, file) square index. Rank 0 is the black back rank,
// file 0 is the a-file.
type Position struct {
	Rank int
	File int
}

// NoPosition is the invalid position. It compares unequal to every square
// on the board.
var NoPosition = Position{Rank: -1, File: -1}

// Pos creates a position.
func Pos(rank, file int) Position {
	return Position{Rank: rank, File: file}
}

// InBounds returns true if the position is on the board.
func (p Position) InBounds() bool {
	return p.Rank >= 0 && p.Rank < BoardSize && p.File >= 0 && p.File < BoardSize
}

// Offset returns the position shifted by the given deltas. The result may
// be out of bounds.
func (p Position) Offset(dRank, dFile int) Position {
	return Position{Rank: p.Rank + dRank, File: p.File + dFile}
}

// Mirror returns the position with both rank and file reversed.
func (p Position) Mirror() Position {
	return Position{Rank: LastIndex - p.Rank, File: LastIndex - p.File}
}

// String formats the position in algebraic notation, e.g. "e2".
func (p Position) String() string {
	if !p.InBounds() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+p.File, '8'-p.Rank)
}

// ParsePosition parses a square in algebraic notation.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoPosition, &errors.ParseError{
			Err:      errors.ErrInvalidMoveText,
			Input:    s,
			Expected: "square a1-h8",
		}
	}
	return Position{Rank: int('8' - s[1]), File: int(s[0] - 'a')}, nil
}

// MustPosition parses a square and panics on failure. Intended for tests
// and package-level tables.
func MustPosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Move is an ordered pair of positions.
type Move struct {
	From Position
	To   Position
}

// NoMove is the invalid move.
var NoMove = Move{From: NoPosition, To: NoPosition}

// IsValid returns true if both ends of the move are on the board.
func (m Move) IsValid() bool {
	return m.From.InBounds() && m.To.InBounds()
}

// String formats the move in coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	if !m.IsValid() {
		return "0000"
	}
	return m.From.String() + m.To.String()
}

// ParseMove parses a move in coordinate notation ("e2e4" or "e2-e4").
func ParseMove(s string) (Move, error) {
	text := strings.ReplaceAll(strings.TrimSpace(s), "-", "")
	if len(text) != 4 {
		return NoMove, &errors.ParseError{
			Err:      errors.ErrInvalidMoveText,
			Input:    s,
			Expected: "coordinate move like e2e4",
		}
	}
	from, err := ParsePosition(text[:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParsePosition(text[2:])
	if err != nil {
		return NoMove, err
	}
	return Move{From: from, To: to}, nil
}
