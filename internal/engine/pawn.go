package engine

import "github.com/KDaiyan/EECS22L-Chess/internal/chess"

func (pawnRule) canReach(board *chess.Board, from, to chess.Position) bool {
	pawn := board.At(from)
	dir := chess.ColourOffset(pawn.Colour)
	rankDiff := to.Rank - from.Rank
	fileDiff := abs(to.File - from.File)
	target := board.At(to)

	switch {
	case fileDiff == 0 && rankDiff == dir:
		return target.IsEmpty()

	case fileDiff == 0 && rankDiff == 2*dir:
		// Double step from the start rank, both squares empty
		return from.Rank == chess.PawnStartRank(pawn.Colour) &&
			board.IsEmpty(from.Offset(dir, 0)) &&
			target.IsEmpty()

	case fileDiff == 1 && rankDiff == dir:
		return !target.IsEmpty() && target.Colour != pawn.Colour
	}

	return false
}

func (pawnRule) candidates(board *chess.Board, from chess.Position) []chess.Move {
	pawn := board.At(from)
	dir := chess.ColourOffset(pawn.Colour)
	var moves []chess.Move

	// Forward move
	one := from.Offset(dir, 0)
	if board.IsEmpty(one) {
		moves = append(moves, chess.Move{From: from, To: one})

		// Double push from starting rank
		two := from.Offset(2*dir, 0)
		if from.Rank == chess.PawnStartRank(pawn.Colour) && board.IsEmpty(two) {
			moves = append(moves, chess.Move{From: from, To: two})
		}
	}

	// Captures
	for df := -1; df <= 1; df += 2 {
		to := from.Offset(dir, df)
		if target := board.At(to); !target.IsEmpty() && target.Colour != pawn.Colour {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}

	return moves
}

// PromotePawns turns every pawn standing on either back rank into a queen of
// its own colour.
func PromotePawns(board *chess.Board) {
	for _, rank := range []int{chess.BlackHomeRank, chess.WhiteHomeRank} {
		for file := 0; file < chess.BoardSize; file++ {
			p := chess.Pos(rank, file)
			if piece := board.At(p); piece.Kind == chess.Pawn {
				board.Set(p, chess.Piece{Kind: chess.Queen, Colour: piece.Colour})
			}
		}
	}
}
