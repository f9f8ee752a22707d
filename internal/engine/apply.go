package engine

import (
	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
)

// MovePiece validates and performs a move for the side to move. It returns
// false, leaving the board untouched, when from is empty, holds a piece of
// the wrong colour, or the move is illegal. The turn is not passed.
func MovePiece(board *chess.Board, from, to chess.Position) bool {
	piece := board.At(from)
	if piece.IsEmpty() || piece.Colour != board.Turn {
		return false
	}
	if !IsLegal(board, from, to) {
		return false
	}
	Apply(board, chess.Move{From: from, To: to})
	return true
}

// Apply performs a move without checking legality and returns the captured
// piece, if any. Castling, castling rights and promotion are all handled.
func Apply(board *chess.Board, m chess.Move) chess.Piece {
	piece := board.At(m.From)

	if IsCastlingMove(board, m.From, m.To) {
		PerformCastle(board, m.From, m.To)
		PromotePawns(board)
		return chess.NoPiece
	}

	captured := board.At(m.To)

	switch piece.Kind {
	case chess.King:
		board.MarkMoved(piece.Colour, chess.KingEntity)
	case chess.Rook:
		updateCastlingRightsForRook(board, piece.Colour, m.From)
	}
	if captured.Kind == chess.Rook {
		updateCastlingRightsForRook(board, captured.Colour, m.To)
	}

	board.Shift(m.From, m.To)
	PromotePawns(board)

	return captured
}

// ApplyAndPass applies a move and passes the turn to the other side. The
// orientation is left alone.
func ApplyAndPass(board *chess.Board, m chess.Move) chess.Piece {
	captured := Apply(board, m)
	board.ChangeTurn()
	return captured
}
