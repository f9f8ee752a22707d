// Package game runs a chess game between a human and the computer: it takes
// turns, keeps the record and decides when the game is over.
package game

import (
	"log"

	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
	"github.com/KDaiyan/EECS22L-Chess/internal/config"
	"github.com/KDaiyan/EECS22L-Chess/internal/engine"
	"github.com/KDaiyan/EECS22L-Chess/internal/errors"
	"github.com/KDaiyan/EECS22L-Chess/internal/record"
	"github.com/KDaiyan/EECS22L-Chess/internal/search"
)

// Game is one game session. After every half-move the turn passes and the
// board orientation flips so the side to move is shown at the bottom.
type Game struct {
	cfg      *config.Config
	board    *chess.Board
	searcher *search.Searcher
	recorder *record.Recorder
	log      *log.Logger

	history  []Played
	startFEN string
	white    string
	black    string
	aiTurns  int
	resigned bool
	loser    chess.Colour
}

// Played describes one half-move of the game.
type Played struct {
	Ply      int
	Side     chess.Colour
	Move     chess.Move
	UCI      string
	Piece    chess.Piece
	Captured chess.Piece
	Castle   bool
	Promoted bool
	Computer bool
}

// New starts a game from cfg.Game.StartFEN, or from the standard position.
func New(cfg *config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	board := engine.NewInitialBoard()
	if cfg.Game.StartFEN != "" {
		var err error
		if board, err = engine.NewBoardFromFEN(cfg.Game.StartFEN); err != nil {
			return nil, err
		}
		if err := engine.ValidateBoard(board); err != nil {
			return nil, err
		}
	}
	if board.Turn == chess.Black {
		board.FlipOrientation()
	}

	rec, err := record.New(cfg.Game.StartFEN)
	if err != nil {
		return nil, err
	}
	rec.SetTag("Event", "chessai")
	white, black := "Computer", "Computer"
	if side, ok := cfg.HumanSide(); ok {
		if side == chess.White {
			white = "Human"
		} else {
			black = "Human"
		}
	}
	rec.SetTag("White", white)
	rec.SetTag("Black", black)

	s := search.NewSearcher(cfg.Search.Depth, cfg.Search.Seed)
	s.Workers = cfg.Search.Workers
	s.Log = cfg.Logger(2)

	return &Game{
		cfg:      cfg,
		board:    board,
		searcher: s,
		recorder: rec,
		log:      cfg.Logger(1),
		startFEN: engine.BoardToFEN(board),
		white:    white,
		black:    black,
	}, nil
}

// Board returns a copy of the current position.
func (g *Game) Board() *chess.Board {
	return g.board.Clone()
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.board.Turn
}

// Plies returns the number of half-moves played.
func (g *Game) Plies() int {
	return len(g.history)
}

// History returns the half-moves played so far.
func (g *Game) History() []Played {
	return append([]Played(nil), g.history...)
}

// Players returns the names recorded for White and Black.
func (g *Game) Players() (white, black string) {
	return g.white, g.black
}

// StartFEN returns the position the game started from.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// LegalMoves returns the legal moves of the side to move.
func (g *Game) LegalMoves() []chess.Move {
	return engine.AllLegalMoves(g.board, g.board.Turn)
}

// Status returns the check status of the side to move.
func (g *Game) Status() engine.Status {
	return engine.GameStatus(g.board, g.board.Turn)
}

// Result returns the outcome of the game, or search.Undecided while it is
// still being played. Checkmate and resignation are wins; stalemate, bare
// material and the ply limit are draws.
func (g *Game) Result() search.Outcome {
	if g.resigned {
		return winFor(g.loser.Opposite())
	}
	switch status := g.Status(); status {
	case engine.Checkmate:
		winner, _ := status.Winner(g.board.Turn)
		return winFor(winner)
	case engine.Stalemate:
		return search.Draw
	}
	if engine.HasInsufficientMaterial(g.board) {
		return search.Draw
	}
	if g.cfg.Game.MaxPly > 0 && g.Plies() >= g.cfg.Game.MaxPly {
		return search.Draw
	}
	return search.Undecided
}

func winFor(side chess.Colour) search.Outcome {
	if side == chess.White {
		return search.WhiteWins
	}
	return search.BlackWins
}

// Move plays a human move given in board coordinates. An illegal move
// returns an error wrapping ErrIllegalMove and leaves the game unchanged.
func (g *Game) Move(from, to chess.Position) error {
	if g.Result() != search.Undecided {
		return errors.ErrGameOver
	}

	m := chess.Move{From: from, To: to}
	before := g.board.Clone()
	if !engine.MovePiece(g.board, from, to) {
		return &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			PlyNum:   g.Plies() + 1,
			Side:     g.board.Turn.String(),
			MoveText: m.String(),
		}
	}
	g.finish(before, m, false)
	return nil
}

// MoveFromView plays a human move given in the coordinates of the board as
// currently displayed.
func (g *Game) MoveFromView(from, to chess.Position) error {
	return g.Move(g.board.FromView(from), g.board.FromView(to))
}

// PlayAI lets the computer move for the side to move. The first
// RandomOpeningMoves computer turns are random; after that the move is
// searched. When the game is already over the decision carries the
// outcome and nothing is played.
func (g *Game) PlayAI() (search.Decision, error) {
	if outcome := g.Result(); outcome != search.Undecided {
		return search.Decision{Move: chess.NoMove, Outcome: outcome}, nil
	}

	side := g.board.Turn
	var d search.Decision
	if g.aiTurns < g.cfg.Search.RandomOpeningMoves {
		m, err := search.RandomMove(g.board, side, g.searcher.Rand)
		if err != nil {
			return search.Decision{}, err
		}
		d = search.Decision{Move: m, Candidates: []chess.Move{m}}
	} else {
		if g.cfg.Output.TraceFile != "" {
			g.searcher.Trace = search.NewTrace()
			g.searcher.Trace.Limit = g.cfg.Search.TraceLimit
		}
		var err error
		if d, err = g.searcher.BestMove(g.board, side); err != nil {
			return search.Decision{}, err
		}
		if d.Outcome != search.Undecided {
			return d, nil
		}
	}

	before := g.board.Clone()
	engine.Apply(g.board, d.Move)
	g.aiTurns++
	g.finish(before, d.Move, true)
	return d, nil
}

// finish records a move already applied to the board and passes the turn.
func (g *Game) finish(before *chess.Board, m chess.Move, computer bool) {
	p := Played{
		Ply:      len(g.history) + 1,
		Side:     before.Turn,
		Move:     m,
		UCI:      record.UCI(before, m),
		Piece:    before.At(m.From),
		Castle:   engine.IsCastlingMove(before, m.From, m.To),
		Computer: computer,
	}
	if !p.Castle {
		p.Captured = before.At(m.To)
		p.Promoted = p.Piece.Kind == chess.Pawn && (m.To.Rank == 0 || m.To.Rank == chess.LastIndex)
	}
	g.history = append(g.history, p)

	if g.recorder != nil {
		if err := g.recorder.Record(before, m); err != nil {
			g.logf("record: %v; game record disabled", err)
			g.recorder = nil
		}
	}

	g.board.ChangeTurn()
	g.board.FlipOrientation()
	g.logf("ply %d: %v played %v", p.Ply, p.Side, m)

	if outcome := g.Result(); outcome != search.Undecided {
		if outcome == search.Draw && g.recorder != nil && g.recorder.Outcome() == search.Undecided.String() {
			if err := g.recorder.Draw(); err != nil {
				g.logf("record: %v", err)
			}
		}
		g.logf("game over after %d plies: %v", p.Ply, outcome)
	}
}

// Resign ends the game as a loss for side.
func (g *Game) Resign(side chess.Colour) {
	if g.Result() != search.Undecided {
		return
	}
	g.resigned, g.loser = true, side
	if g.recorder != nil {
		g.recorder.Resign(side)
	}
	g.logf("%v resigns", side)
}

// Trace returns the search tree of the last searched move, if tracing is
// enabled.
func (g *Game) Trace() *search.Trace {
	return g.searcher.Trace
}

// PGN returns the game record, or "" if recording failed.
func (g *Game) PGN() string {
	if g.recorder == nil {
		return ""
	}
	return g.recorder.PGN()
}

func (g *Game) logf(format string, args ...interface{}) {
	if g.log != nil {
		g.log.Printf(format, args...)
	}
}
