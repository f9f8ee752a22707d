package search

import (
	"log"
	"math/rand"
	"time"

	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
	"github.com/KDaiyan/EECS22L-Chess/internal/engine"
	"github.com/KDaiyan/EECS22L-Chess/internal/errors"
)

// Outcome is the result of a decided game.
type Outcome int

const (
	Undecided Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the string representation of an outcome, in PGN result
// notation.
func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Decision is the result of a search.
type Decision struct {
	Move       chess.Move   // Chosen move, NoMove when the game is decided
	Score      int          // Value of the position in White's favour
	Outcome    Outcome      // Set when the side to move has no legal move
	Nodes      uint64       // Positions visited
	Candidates []chess.Move // Every root move sharing the best score
}

// Searcher chooses moves with a fixed-depth alpha-beta minimax.
type Searcher struct {
	// Depth is the number of plies searched, counting the root move.
	Depth int

	// Workers above 1 score the root moves in parallel.
	Workers int

	// Rand breaks ties between equally scored moves.
	Rand *rand.Rand

	// Trace, when set, records the search tree.
	Trace *Trace

	// Log, when set, receives one line per decision.
	Log *log.Logger
}

// NewSearcher creates a single-threaded searcher. A zero seed seeds the
// tie-break generator from the clock.
func NewSearcher(depth int, seed int64) *Searcher {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Searcher{
		Depth:   depth,
		Workers: 1,
		Rand:    rand.New(rand.NewSource(seed)),
	}
}

// BestMove searches the position for side and returns its decision. When
// side has no legal move the decision carries the outcome and NoMove.
// Otherwise one of the best scoring root moves is picked at random.
func (s *Searcher) BestMove(board *chess.Board, side chess.Colour) (d Decision, err error) {
	defer errors.RecoverInvariant(&err)

	if s.Depth < 1 {
		return Decision{}, errors.Wrapf(errors.ErrInvalidConfig, "search depth %d", s.Depth)
	}

	moves := engine.AllLegalMoves(board, side)
	if len(moves) == 0 {
		return s.decided(board, side), nil
	}

	var scores []int
	var nodes uint64
	if s.Workers > 1 && len(moves) > 1 {
		scores, nodes, err = s.scoreParallel(board, side, moves)
		if err != nil {
			return Decision{}, err
		}
	} else {
		scores, nodes = s.scoreSequential(board, side, moves)
	}

	d = pick(moves, scores, side)
	d.Nodes = nodes + 1
	d.Move = d.Candidates[s.rand().Intn(len(d.Candidates))]

	if s.Log != nil {
		s.Log.Printf("search: %v depth %d chose %v score %+d (%d tied, %d nodes)",
			side, s.Depth, d.Move, d.Score, len(d.Candidates), d.Nodes)
	}
	return d, nil
}

// decided builds the decision for a side with no legal move.
func (s *Searcher) decided(board *chess.Board, side chess.Colour) Decision {
	score := terminalScore(board, chess.NoMove, side, 0)
	d := Decision{Move: chess.NoMove, Score: score, Nodes: 1}
	switch score {
	case MaxScore:
		d.Outcome = WhiteWins
	case MinScore:
		d.Outcome = BlackWins
	default:
		d.Outcome = Draw
	}
	s.Trace.leave(s.Trace.enter("", chess.NoMove, side), score, false)

	if s.Log != nil {
		s.Log.Printf("search: %v has no legal move, result %v", side, d.Outcome)
	}
	return d
}

// scoreSequential scores every root move in order. After the first move
// each child is searched with a window one point wider than the best score
// so far, so every move tying the best is scored exactly.
func (s *Searcher) scoreSequential(board *chess.Board, side chess.Colour, moves []chess.Move) ([]int, uint64) {
	st := &state{trace: s.Trace}
	root := st.trace.enter("", chess.NoMove, side)

	scores := make([]int, len(moves))
	best := -inf
	if side == chess.Black {
		best = inf
	}

	for i, m := range moves {
		alpha, beta := -inf, inf
		if i > 0 {
			if side == chess.White {
				alpha = best - 1
			} else {
				beta = best + 1
			}
		}

		child := board.Clone()
		engine.ApplyAndPass(child, m)
		scores[i] = st.minimax(child, m, side.Opposite(), s.Depth-1, 1, alpha, beta, root)

		if (side == chess.White && scores[i] > best) || (side == chess.Black && scores[i] < best) {
			best = scores[i]
		}
	}

	st.trace.leave(root, best, false)
	return scores, st.nodes
}

// pick collects the root moves sharing the best score for side.
func pick(moves []chess.Move, scores []int, side chess.Colour) Decision {
	best := scores[0]
	for _, score := range scores[1:] {
		if (side == chess.White && score > best) || (side == chess.Black && score < best) {
			best = score
		}
	}

	d := Decision{Score: best}
	for i, m := range moves {
		if scores[i] == best {
			d.Candidates = append(d.Candidates, m)
		}
	}
	return d
}

func (s *Searcher) rand() *rand.Rand {
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s.Rand
}

// RandomMove returns a legal move for side chosen uniformly at random.
func RandomMove(board *chess.Board, side chess.Colour, rng *rand.Rand) (m chess.Move, err error) {
	defer errors.RecoverInvariant(&err)

	moves := engine.AllLegalMoves(board, side)
	if len(moves) == 0 {
		return chess.NoMove, errors.Wrapf(errors.ErrNoLegalMoves, "%v to move", side)
	}
	return moves[rng.Intn(len(moves))], nil
}
