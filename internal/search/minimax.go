package search

import (
	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
	"github.com/KDaiyan/EECS22L-Chess/internal/engine"
	"github.com/KDaiyan/EECS22L-Chess/internal/errors"
)

// state is the per-goroutine bookkeeping of one search.
type state struct {
	nodes uint64
	trace *Trace
}

// minimax returns the value of the position in White's favour. last is the
// move that produced the position (NoMove at the root) and toMove the side
// to play. White nodes maximise and Black nodes minimise.
func (st *state) minimax(board *chess.Board, last chess.Move, toMove chess.Colour, depth, ply, alpha, beta int, parent string) int {
	st.nodes++
	id := st.trace.enter(parent, last, toMove)

	if depth <= 0 {
		score := leafScore(board, toMove.Opposite())
		st.trace.leave(id, score, false)
		return score
	}

	moves := engine.AllLegalMoves(board, toMove)
	if len(moves) == 0 {
		score := terminalScore(board, last, toMove, ply)
		st.trace.leave(id, score, false)
		return score
	}

	var best int
	cutoff := false
	if toMove == chess.White {
		best = -inf
		for _, m := range moves {
			child := board.Clone()
			engine.ApplyAndPass(child, m)
			score := st.minimax(child, m, chess.Black, depth-1, ply+1, alpha, beta, id)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				cutoff = true
				break
			}
		}
	} else {
		best = inf
		for _, m := range moves {
			child := board.Clone()
			engine.ApplyAndPass(child, m)
			score := st.minimax(child, m, chess.White, depth-1, ply+1, alpha, beta, id)
			beta = min(best, score)
			if score < best {
				best = score
			}
			if beta <= alpha {
				cutoff = true
				break
			}
		}
	}

	st.trace.leave(id, best, cutoff)
	return best
}

// terminalScore scores a position in which toMove has no legal move. At
// the root a mated side gets the decided-game sentinel; deeper in the tree
// a mate is worth less the further away it is. Stalemate is a draw.
func terminalScore(board *chess.Board, last chess.Move, toMove chess.Colour, ply int) int {
	if !engine.InCheck(board, toMove) {
		return 0
	}
	if last == chess.NoMove {
		if toMove == chess.White {
			return MinScore
		}
		return MaxScore
	}
	if toMove == chess.White {
		return -(MateScore - ply)
	}
	return MateScore - ply
}

// Score returns the exact minimax value in White's favour of the position
// with toMove to play, searched depth plies deep with a full window. Depth
// 0 evaluates the position directly.
func Score(board *chess.Board, last chess.Move, toMove chess.Colour, depth int) (score int, err error) {
	defer errors.RecoverInvariant(&err)
	st := &state{}
	return st.minimax(board, last, toMove, depth, 0, -inf, inf, ""), nil
}
