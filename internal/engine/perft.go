package engine

import "github.com/KDaiyan/EECS22L-Chess/internal/chess"

// Perft counts the leaf nodes of the legal move tree of the given depth,
// starting with colour to move.
func Perft(board *chess.Board, colour chess.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := AllLegalMoves(board, colour)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := board.Clone()
		ApplyAndPass(child, m)
		nodes += Perft(child, colour.Opposite(), depth-1)
	}
	return nodes
}

// Divide returns the perft count below each legal root move, keyed by the
// move in coordinate notation.
func Divide(board *chess.Board, colour chess.Colour, depth int) map[string]uint64 {
	result := map[string]uint64{}
	for _, m := range AllLegalMoves(board, colour) {
		child := board.Clone()
		ApplyAndPass(child, m)
		result[m.String()] = Perft(child, colour.Opposite(), depth-1)
	}
	return result
}
