package engine

import "github.com/KDaiyan/EECS22L-Chess/internal/chess"

// WouldLeaveKingUnsafe makes the move on a copied board with a raw shift and
// checks if the mover's king is attacked afterwards.
func WouldLeaveKingUnsafe(board *chess.Board, from, to chess.Position) bool {
	colour := board.At(from).Colour

	testBoard := board.Clone()
	testBoard.Shift(from, to)

	king := mustLocateKing(testBoard, colour)
	return IsAttacked(testBoard, king, colour.Opposite())
}

// IsLegal returns true if the piece on from may move to to. A king can never
// be captured. Castling is judged entirely by CanCastle; every other move
// must not leave the mover's own king attacked.
func IsLegal(board *chess.Board, from, to chess.Position) bool {
	if board.At(from).IsEmpty() {
		return false
	}
	if IsCastlingMove(board, from, to) {
		return CanCastle(board, from, to)
	}
	if board.At(to).Kind == chess.King {
		return false
	}
	if !CanReach(board, from, to) {
		return false
	}
	return !WouldLeaveKingUnsafe(board, from, to)
}

// AllPseudoLegalMoves returns the candidate moves of every piece of the
// given colour, scanning the board rank by rank.
func AllPseudoLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			moves = append(moves, Candidates(board, chess.Pos(rank, file))...)
		}
	}
	return moves
}

// AllLegalMoves returns every legal move of the given colour.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	candidates := AllPseudoLegalMoves(board, colour)
	legal := candidates[:0]
	for _, m := range candidates {
		if IsLegal(board, m.From, m.To) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMovesFrom returns the legal moves of the piece on from.
func LegalMovesFrom(board *chess.Board, from chess.Position) []chess.Move {
	candidates := Candidates(board, from)
	legal := candidates[:0]
	for _, m := range candidates {
		if IsLegal(board, m.From, m.To) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			for _, m := range Candidates(board, chess.Pos(rank, file)) {
				if IsLegal(board, m.From, m.To) {
					return true
				}
			}
		}
	}
	return false
}
