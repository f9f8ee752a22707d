package engine

import (
	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
	"github.com/KDaiyan/EECS22L-Chess/internal/errors"
)

// InCheck returns true if the given colour's king is attacked.
func InCheck(board *chess.Board, colour chess.Colour) bool {
	king := mustLocateKing(board, colour)
	return IsAttacked(board, king, colour.Opposite())
}

// LocateKing finds the king of the given colour on the board. A board
// without one is structurally broken and yields an invariant error.
func LocateKing(board *chess.Board, colour chess.Colour) (chess.Position, error) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			if board.Squares[rank][file].Is(colour, chess.King) {
				return chess.Pos(rank, file), nil
			}
		}
	}
	return chess.NoPosition, errors.Invariant(errors.ErrKingNotFound, "locating %s king", colour)
}

// mustLocateKing is LocateKing for callers that require a valid board. It
// panics with the invariant error; public entry points recover it.
func mustLocateKing(board *chess.Board, colour chess.Colour) chess.Position {
	p, err := LocateKing(board, colour)
	if err != nil {
		panic(err)
	}
	return p
}

// IsAttacked returns true if a piece of byColour could capture on target.
// Pawn diagonals count whether or not target is occupied; pawn pushes and
// castling never attack.
func IsAttacked(board *chess.Board, target chess.Position, byColour chess.Colour) bool {
	// Check pawn attacks
	pawnRank := target.Rank - chess.ColourOffset(byColour)
	for df := -1; df <= 1; df += 2 {
		if board.At(chess.Pos(pawnRank, target.File+df)).Is(byColour, chess.Pawn) {
			return true
		}
	}

	// Check knight attacks
	for _, jump := range knightJumps {
		if board.At(target.Offset(jump[0], jump[1])).Is(byColour, chess.Knight) {
			return true
		}
	}

	// Check king attacks
	for _, step := range kingSteps {
		if board.At(target.Offset(step[0], step[1])).Is(byColour, chess.King) {
			return true
		}
	}

	// Check sliding pieces (bishop, rook, queen)
	if slidingAttack(board, target, byColour, diagonalDirs, chess.Bishop) {
		return true
	}
	return slidingAttack(board, target, byColour, straightDirs, chess.Rook)
}

// slidingAttack looks outward from target along dirs for the first piece on
// each ray and reports whether it is a queen or the given slider of
// byColour.
func slidingAttack(board *chess.Board, target chess.Position, byColour chess.Colour, dirs [][2]int, slider chess.Kind) bool {
	for _, dir := range dirs {
		p := target.Offset(dir[0], dir[1])
		for p.InBounds() {
			piece := board.At(p)
			if !piece.IsEmpty() {
				if piece.Colour == byColour && (piece.Kind == slider || piece.Kind == chess.Queen) {
					return true
				}
				break // Blocked
			}
			p = p.Offset(dir[0], dir[1])
		}
	}
	return false
}
