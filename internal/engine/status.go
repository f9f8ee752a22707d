package engine

import "github.com/KDaiyan/EECS22L-Chess/internal/chess"

// Status is the state of the game from the point of view of the side to
// move.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "Ongoing"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Unknown"
	}
}

// Terminal returns true if the game cannot continue.
func (s Status) Terminal() bool {
	return s == Checkmate || s == Stalemate
}

// Winner returns the winning colour when toMove has been mated. The second
// result is false for every other status, including the stalemate draw.
func (s Status) Winner(toMove chess.Colour) (chess.Colour, bool) {
	if s != Checkmate {
		return toMove, false
	}
	return toMove.Opposite(), true
}

// GameStatus classifies the position for the given side to move.
func GameStatus(board *chess.Board, colour chess.Colour) Status {
	inCheck := InCheck(board, colour)
	hasMoves := HasLegalMoves(board, colour)

	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case inCheck:
		return Check
	default:
		return Ongoing
	}
}

// IsCheckmate returns true if either side is in check with no legal move.
func IsCheckmate(board *chess.Board) bool {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if InCheck(board, colour) && !HasLegalMoves(board, colour) {
			return true
		}
	}
	return false
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	colour := board.Turn
	return !InCheck(board, colour) && !HasLegalMoves(board, colour)
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]

			// Kings don't count for material
			if piece.IsEmpty() || piece.Kind == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if piece.Kind == chess.Pawn || piece.Kind == chess.Rook || piece.Kind == chess.Queen {
				return false
			}

			if piece.Colour == chess.White {
				whitePieces = append(whitePieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					whiteBishopOnLight = isLightSquare(rank, file)
				}
			} else {
				blackPieces = append(blackPieces, piece.Kind)
				if piece.Kind == chess.Bishop {
					blackBishopOnLight = isLightSquare(rank, file)
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square. a8
// (rank index 0, file 0) is light.
func isLightSquare(rank, file int) bool {
	return (rank+file)%2 == 0
}
