package search

import (
	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
	"github.com/KDaiyan/EECS22L-Chess/internal/engine"
	"github.com/KDaiyan/EECS22L-Chess/internal/errors"
	"github.com/KDaiyan/EECS22L-Chess/internal/worker"
)

// scoreParallel scores every root move on the worker pool. Each move is
// searched on its own board with a full window, so the scores match the
// sequential search exactly.
func (s *Searcher) scoreParallel(board *chess.Board, side chess.Colour, moves []chess.Move) ([]int, uint64, error) {
	root := s.Trace.enter("", chess.NoMove, side)

	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Board: board.Clone(), Move: m, Index: i}
	}

	results, err := worker.Run(items, s.Workers, func(item worker.WorkItem) worker.ProcessResult {
		return s.scoreRootMove(item, side, root)
	})
	if err != nil {
		return nil, 0, err
	}

	scores := make([]int, len(moves))
	var nodes uint64
	for _, result := range results {
		scores[result.Index] = result.Score
		nodes += result.Nodes
	}

	s.Trace.leave(root, pick(moves, scores, side).Score, false)
	return scores, nodes, nil
}

// scoreRootMove searches one root move. Invariant panics are returned in
// the result since they cannot cross the worker goroutine.
func (s *Searcher) scoreRootMove(item worker.WorkItem, side chess.Colour, root string) (result worker.ProcessResult) {
	result = worker.ProcessResult{Move: item.Move, Index: item.Index}
	defer errors.RecoverInvariant(&result.Error)

	st := &state{trace: s.Trace}
	engine.ApplyAndPass(item.Board, item.Move)
	result.Score = st.minimax(item.Board, item.Move, side.Opposite(), s.Depth-1, 1, -inf, inf, root)
	result.Nodes = st.nodes
	return result
}
