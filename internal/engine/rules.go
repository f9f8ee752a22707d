// Package engine provides chess move validation and board manipulation.
package engine

import "github.com/KDaiyan/EECS22L-Chess/internal/chess"

// moveRule is the movement geometry of one kind of piece.
type moveRule interface {
	// canReach reports whether the piece on from could move to to, ignoring
	// whether its own king would be left in check.
	canReach(board *chess.Board, from, to chess.Position) bool

	// candidates lists every destination canReach would accept.
	candidates(board *chess.Board, from chess.Position) []chess.Move
}

type (
	pawnRule   struct{}
	knightRule struct{}
	bishopRule struct{}
	rookRule   struct{}
	queenRule  struct{}
	kingRule   struct{}
)

// ruleFor returns the movement rule of a kind, or nil for Empty.
func ruleFor(kind chess.Kind) moveRule {
	switch kind {
	case chess.Pawn:
		return pawnRule{}
	case chess.Knight:
		return knightRule{}
	case chess.Bishop:
		return bishopRule{}
	case chess.Rook:
		return rookRule{}
	case chess.Queen:
		return queenRule{}
	case chess.King:
		return kingRule{}
	default:
		return nil
	}
}

// CanReach returns true if the piece on from could move to to under its
// movement rule. King safety of the mover is not considered except for the
// king itself, which may not step onto an attacked square.
func CanReach(board *chess.Board, from, to chess.Position) bool {
	if !from.InBounds() || !to.InBounds() || from == to {
		return false
	}
	rule := ruleFor(board.At(from).Kind)
	if rule == nil {
		return false
	}
	return rule.canReach(board, from, to)
}

// Candidates returns every pseudo-legal move of the piece on from.
func Candidates(board *chess.Board, from chess.Position) []chess.Move {
	rule := ruleFor(board.At(from).Kind)
	if rule == nil {
		return nil
	}
	return rule.candidates(board, from)
}

// isFriendly returns true if to holds a piece of the same colour as from.
func isFriendly(board *chess.Board, from, to chess.Position) bool {
	target := board.At(to)
	return !target.IsEmpty() && target.Colour == board.At(from).Colour
}

func (knightRule) canReach(board *chess.Board, from, to chess.Position) bool {
	if isFriendly(board, from, to) {
		return false
	}
	rankDiff := abs(to.Rank - from.Rank)
	fileDiff := abs(to.File - from.File)
	return (rankDiff == 1 && fileDiff == 2) || (rankDiff == 2 && fileDiff == 1)
}

func (knightRule) candidates(board *chess.Board, from chess.Position) []chess.Move {
	return steps(board, from, board.At(from).Colour, knightJumps)
}

func (bishopRule) canReach(board *chess.Board, from, to chess.Position) bool {
	if isFriendly(board, from, to) || !isDiagonal(from, to) {
		return false
	}
	return isPathClear(board, from, to)
}

func (bishopRule) candidates(board *chess.Board, from chess.Position) []chess.Move {
	return slide(board, from, board.At(from).Colour, diagonalDirs)
}

func (rookRule) canReach(board *chess.Board, from, to chess.Position) bool {
	if IsCastlingMove(board, from, to) {
		return CanCastle(board, from, to)
	}
	if isFriendly(board, from, to) || !isStraight(from, to) {
		return false
	}
	return isPathClear(board, from, to)
}

func (rookRule) candidates(board *chess.Board, from chess.Position) []chess.Move {
	colour := board.At(from).Colour
	moves := slide(board, from, colour, straightDirs)

	kingPos := chess.Pos(chess.HomeRank(colour), chess.KingStartFile)
	if CanCastle(board, from, kingPos) {
		moves = append(moves, chess.Move{From: from, To: kingPos})
	}
	return moves
}

func (queenRule) canReach(board *chess.Board, from, to chess.Position) bool {
	if isFriendly(board, from, to) {
		return false
	}
	if !isDiagonal(from, to) && !isStraight(from, to) {
		return false
	}
	return isPathClear(board, from, to)
}

func (queenRule) candidates(board *chess.Board, from chess.Position) []chess.Move {
	colour := board.At(from).Colour
	moves := slide(board, from, colour, diagonalDirs)
	return append(moves, slide(board, from, colour, straightDirs)...)
}

func (kingRule) canReach(board *chess.Board, from, to chess.Position) bool {
	if isFriendly(board, from, to) {
		return false
	}
	if abs(to.Rank-from.Rank) > 1 || abs(to.File-from.File) > 1 {
		return false
	}
	return !IsAttacked(board, to, board.At(from).Colour.Opposite())
}

func (r kingRule) candidates(board *chess.Board, from chess.Position) []chess.Move {
	moves := steps(board, from, board.At(from).Colour, kingSteps)
	safe := moves[:0]
	for _, m := range moves {
		if r.canReach(board, m.From, m.To) {
			safe = append(safe, m)
		}
	}
	return safe
}
