package engine

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
	"github.com/KDaiyan/EECS22L-Chess/internal/errors"
)

// ValidateBoard checks the structural rules every playable board obeys: one
// king per side, no pawns on a back rank and the side not to move not in
// check. All problems found are reported together.
func ValidateBoard(board *chess.Board) error {
	var result *multierror.Error

	kings := map[chess.Colour]int{}
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			switch {
			case piece.Kind == chess.King:
				kings[piece.Colour]++
			case piece.Kind == chess.Pawn && (rank == chess.BlackHomeRank || rank == chess.WhiteHomeRank):
				result = multierror.Append(result,
					fmt.Errorf("%v on back rank square %v", piece, chess.Pos(rank, file)))
			}
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kings[colour] != 1 {
			result = multierror.Append(result,
				fmt.Errorf("%v has %d kings, want 1", colour, kings[colour]))
		}
	}

	// Only meaningful once both kings are known to exist.
	if result.ErrorOrNil() == nil {
		idle := board.Turn.Opposite()
		if InCheck(board, idle) {
			result = multierror.Append(result,
				fmt.Errorf("%v is in check but %v is to move", idle, board.Turn))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.Wrap(errors.ErrInvalidBoard, err.Error())
	}
	return nil
}
