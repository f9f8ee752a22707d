package engine

import "github.com/KDaiyan/EECS22L-Chess/internal/chess"

// rookEntity returns the castling entity of a rook standing on p, if p is
// one of the colour's home corners.
func rookEntity(colour chess.Colour, p chess.Position) (chess.Entity, bool) {
	if p.Rank != chess.HomeRank(colour) {
		return 0, false
	}
	switch p.File {
	case chess.LeftRookStartFile:
		return chess.LeftRookEntity, true
	case chess.RightRookStartFile:
		return chess.RightRookEntity, true
	}
	return 0, false
}

// IsCastlingMove returns true if the move is a rook moving onto the king of
// its own colour, which is how castling is requested.
func IsCastlingMove(board *chess.Board, from, to chess.Position) bool {
	rook := board.At(from)
	if rook.Kind != chess.Rook {
		return false
	}
	return board.At(to).Is(rook.Colour, chess.King)
}

// CanCastle returns true if the rook on rookPos may castle with the king on
// kingPos. Both must stand on their starting squares and never have moved,
// the squares between them must be empty, and the king may not be in check,
// pass through an attacked square or land on one.
func CanCastle(board *chess.Board, rookPos, kingPos chess.Position) bool {
	rook := board.At(rookPos)
	if rook.Kind != chess.Rook {
		return false
	}
	colour := rook.Colour

	entity, ok := rookEntity(colour, rookPos)
	if !ok {
		return false
	}
	if kingPos != chess.Pos(chess.HomeRank(colour), chess.KingStartFile) {
		return false
	}
	if !board.At(kingPos).Is(colour, chess.King) {
		return false
	}
	if board.HasMoved(colour, chess.KingEntity) || board.HasMoved(colour, entity) {
		return false
	}
	if !isPathClear(board, rookPos, kingPos) {
		return false
	}

	enemy := colour.Opposite()
	dir := sign(rookPos.File - kingPos.File)
	for _, p := range []chess.Position{kingPos, kingPos.Offset(0, dir), kingPos.Offset(0, 2*dir)} {
		if IsAttacked(board, p, enemy) {
			return false
		}
	}

	return true
}

// PerformCastle castles the rook on rookPos with the king on kingPos: the
// king moves two squares toward the rook and the rook lands on the square
// the king crossed. Both pieces are marked as moved. No rules are checked.
func PerformCastle(board *chess.Board, rookPos, kingPos chess.Position) {
	colour := board.At(rookPos).Colour
	dir := sign(rookPos.File - kingPos.File)

	board.Shift(kingPos, kingPos.Offset(0, 2*dir))
	board.Shift(rookPos, kingPos.Offset(0, dir))

	board.MarkMoved(colour, chess.KingEntity)
	if entity, ok := rookEntity(colour, rookPos); ok {
		board.MarkMoved(colour, entity)
	}
}

// updateCastlingRightsForRook removes castling rights when a rook moves from
// or is captured on its home corner.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, p chess.Position) {
	if entity, ok := rookEntity(colour, p); ok {
		board.MarkMoved(colour, entity)
	}
}
