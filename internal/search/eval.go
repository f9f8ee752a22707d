// Package search picks moves for the computer player with a fixed-depth
// minimax search and alpha-beta pruning over material.
package search

import "github.com/KDaiyan/EECS22L-Chess/internal/chess"

// Score bounds. MaxScore and MinScore only ever describe a root position
// whose side to move is already mated; a mate found inside the tree scores
// MateScore less its distance from the root.
const (
	MaxScore  = 1_000_000
	MinScore  = -MaxScore
	MateScore = 100_000

	inf = MaxScore + 1
)

var pieceValues = [chess.NumKinds]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   100,
}

// PieceValue returns the material value of a kind.
func PieceValue(kind chess.Kind) int {
	if kind < 0 || kind >= chess.NumKinds {
		return 0
	}
	return pieceValues[kind]
}

// Evaluate returns the material balance from mover's point of view: the
// value of mover's pieces less the value of the opponent's.
func Evaluate(board *chess.Board, mover chess.Colour) int {
	score := 0
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			if piece.IsEmpty() {
				continue
			}
			if piece.Colour == mover {
				score += PieceValue(piece.Kind)
			} else {
				score -= PieceValue(piece.Kind)
			}
		}
	}
	return score
}

// leafScore scores a position reached by mover in White's favour, the
// convention the whole search runs in.
func leafScore(board *chess.Board, mover chess.Colour) int {
	score := Evaluate(board, mover)
	if mover == chess.Black {
		return -score
	}
	return score
}
