package engine

import "github.com/KDaiyan/EECS22L-Chess/internal/chess"

// Direction sets for the sliding pieces, as (rank, file) steps.
var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	knightJumps  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// isDiagonal returns true if from and to lie on a common diagonal.
func isDiagonal(from, to chess.Position) bool {
	rankDiff := abs(to.Rank - from.Rank)
	return rankDiff != 0 && rankDiff == abs(to.File-from.File)
}

// isStraight returns true if from and to share a rank or a file.
func isStraight(from, to chess.Position) bool {
	return from != to && (from.Rank == to.Rank || from.File == to.File)
}

// isPathClear checks that every square strictly between from and to is
// empty. The two squares must be on a common rank, file or diagonal.
func isPathClear(board *chess.Board, from, to chess.Position) bool {
	rankDir := sign(to.Rank - from.Rank)
	fileDir := sign(to.File - from.File)

	p := from.Offset(rankDir, fileDir)
	for p != to {
		if !board.IsEmpty(p) {
			return false
		}
		p = p.Offset(rankDir, fileDir)
	}

	return true
}

// slide collects the destinations of a sliding piece along the given
// directions, stopping at the first occupied square. An enemy on that
// square is a capture; a friendly piece blocks.
func slide(board *chess.Board, from chess.Position, colour chess.Colour, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		p := from.Offset(dir[0], dir[1])
		for p.InBounds() {
			target := board.At(p)
			if !target.IsEmpty() {
				if target.Colour != colour {
					moves = append(moves, chess.Move{From: from, To: p})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: p})
			p = p.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// steps collects the single-step destinations at the given offsets that are
// on the board and not occupied by a friendly piece.
func steps(board *chess.Board, from chess.Position, colour chess.Colour, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, offset := range offsets {
		p := from.Offset(offset[0], offset[1])
		if !p.InBounds() {
			continue
		}
		if target := board.At(p); target.IsEmpty() || target.Colour != colour {
			moves = append(moves, chess.Move{From: from, To: p})
		}
	}
	return moves
}
