package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
	"github.com/KDaiyan/EECS22L-Chess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// NewBoardFromFEN creates a board from a FEN string. The en passant and clock
// fields are accepted but ignored.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, fen, parts[0]); err != nil {
		return nil, err
	}

	if err := parseSideToMove(board, fen, parts); err != nil {
		return nil, err
	}

	if err := parseCastlingRights(board, fen, parts); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, fen, positions string) error {
	rank, file := 0, 0

	for _, c := range positions {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fenError(fen, 1, "8 squares per rank", fmt.Sprintf("%d", file))
			}
			rank++
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			kind := ConvertFENCharToKind(byte(c))
			if kind == chess.Empty {
				return fenError(fen, 1, "piece letter", string(c))
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			p := chess.Pos(rank, file)
			if !p.InBounds() {
				return fenError(fen, 1, "square on the board", p.String())
			}
			board.Set(p, chess.Piece{Kind: kind, Colour: colour})
			file++
		}
		if file > chess.BoardSize {
			return fenError(fen, 1, "8 squares per rank", fmt.Sprintf("%d", file))
		}
	}

	if rank != chess.LastIndex || file != chess.BoardSize {
		return fenError(fen, 1, "8 complete ranks", positions)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, fen string, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.Turn = chess.White
	case "b":
		board.Turn = chess.Black
	default:
		return fenError(fen, 2, "w or b", parts[1])
	}
	return nil
}

// castlingFlags maps each FEN castling letter to the rook it allows.
var castlingFlags = map[rune]struct {
	colour chess.Colour
	entity chess.Entity
}{
	'K': {chess.White, chess.RightRookEntity},
	'Q': {chess.White, chess.LeftRookEntity},
	'k': {chess.Black, chess.RightRookEntity},
	'q': {chess.Black, chess.LeftRookEntity},
}

// parseCastlingRights parses the castling availability field. A right that
// is absent is recorded by setting the rook's moved flag, and a king with no
// rights at all is marked as moved.
func parseCastlingRights(board *chess.Board, fen string, parts []string) error {
	field := "KQkq"
	if len(parts) >= 3 {
		field = parts[2]
	}

	allowed := map[rune]bool{}
	if field != "-" {
		for _, c := range field {
			if _, ok := castlingFlags[c]; !ok {
				return fenError(fen, 3, "castling letters KQkq or -", string(c))
			}
			allowed[c] = true
		}
	}

	for c, flag := range castlingFlags {
		if !allowed[c] {
			board.MarkMoved(flag.colour, flag.entity)
		}
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if board.HasMoved(colour, chess.LeftRookEntity) && board.HasMoved(colour, chess.RightRookEntity) {
			board.MarkMoved(colour, chess.KingEntity)
		}
	}
	return nil
}

func fenError(fen string, field int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    fen,
		Field:    field,
		Expected: expected,
		Got:      got,
	}
}

// BoardToFEN converts a board to a FEN string. En passant is never
// available and the clocks are written as "0 1".
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteString(" - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Squares[rank][file]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.LastIndex {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.Turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder. A
// right is written while neither the king nor that rook has moved and both
// still stand on their starting squares.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, c := range []rune{'K', 'Q', 'k', 'q'} {
		flag := castlingFlags[c]
		if hasCastlingRight(board, flag.colour, flag.entity) {
			sb.WriteRune(c)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// hasCastlingRight reports whether the colour may still castle with the
// given rook at some later point.
func hasCastlingRight(board *chess.Board, colour chess.Colour, rook chess.Entity) bool {
	if board.HasMoved(colour, chess.KingEntity) || board.HasMoved(colour, rook) {
		return false
	}
	home := chess.HomeRank(colour)
	file := chess.LeftRookStartFile
	if rook == chess.RightRookEntity {
		file = chess.RightRookStartFile
	}
	return board.At(chess.Pos(home, chess.KingStartFile)).Is(colour, chess.King) &&
		board.At(chess.Pos(home, file)).Is(colour, chess.Rook)
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}
