// Package record keeps the score sheet of a game and renders it as PGN.
package record

import (
	notnil "github.com/notnil/chess"

	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
	"github.com/KDaiyan/EECS22L-Chess/internal/engine"
	"github.com/KDaiyan/EECS22L-Chess/internal/errors"
)

// Recorder replays every move of a game on a notnil/chess game, which
// provides standard algebraic notation and PGN output.
type Recorder struct {
	game  *notnil.Game
	plies int
}

// New creates a recorder starting from fen, or from the standard position
// when fen is empty.
func New(fen string) (*Recorder, error) {
	if fen == "" {
		return &Recorder{game: notnil.NewGame()}, nil
	}
	opt, err := notnil.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "%s: %v", fen, err)
	}
	return &Recorder{game: notnil.NewGame(opt)}, nil
}

// SetTag sets a PGN tag pair such as White, Black or Event.
func (r *Recorder) SetTag(key, value string) {
	r.game.RemoveTagPair(key)
	r.game.AddTagPair(key, value)
}

// Record appends m, played on before, to the game. before must be the board
// as it was prior to the move.
func (r *Recorder) Record(before *chess.Board, m chess.Move) error {
	text := UCI(before, m)
	move, err := notnil.UCINotation{}.Decode(r.game.Position(), text)
	if err == nil {
		err = r.game.Move(move)
	}
	if err != nil {
		return &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			PlyNum:   r.plies + 1,
			Side:     before.At(m.From).Colour.String(),
			MoveText: text,
		}
	}
	r.plies++
	return nil
}

// UCI returns m in UCI notation. Castling, stored as the rook moving onto
// its king, becomes the king's two-square move; a pawn reaching the last
// rank promotes to a queen.
func UCI(before *chess.Board, m chess.Move) string {
	if engine.IsCastlingMove(before, m.From, m.To) {
		king := m.To
		dest := chess.Pos(king.Rank, 2)
		if m.From.File == chess.RightRookStartFile {
			dest = chess.Pos(king.Rank, 6)
		}
		return king.String() + dest.String()
	}
	text := m.String()
	if before.At(m.From).Kind == chess.Pawn && (m.To.Rank == 0 || m.To.Rank == chess.LastIndex) {
		text += "q"
	}
	return text
}

// Plies returns the number of recorded half-moves.
func (r *Recorder) Plies() int {
	return r.plies
}

// Resign records that side gave up.
func (r *Recorder) Resign(side chess.Colour) {
	if side == chess.White {
		r.game.Resign(notnil.White)
	} else {
		r.game.Resign(notnil.Black)
	}
}

// Draw records a draw agreed outside the rules, such as a ply limit.
func (r *Recorder) Draw() error {
	return r.game.Draw(notnil.DrawOffer)
}

// Outcome returns the result in PGN notation: "1-0", "0-1", "1/2-1/2" or
// "*" while the game is undecided.
func (r *Recorder) Outcome() string {
	return string(r.game.Outcome())
}

// Method describes how the game ended, e.g. "Checkmate".
func (r *Recorder) Method() string {
	return r.game.Method().String()
}

// FEN returns the current position as FEN.
func (r *Recorder) FEN() string {
	return r.game.FEN()
}

// PGN returns the game text.
func (r *Recorder) PGN() string {
	return r.game.String()
}
