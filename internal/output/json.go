package output

import (
	"strings"

	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
	"github.com/KDaiyan/EECS22L-Chess/internal/engine"
	"github.com/KDaiyan/EECS22L-Chess/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	White      string     `json:"white"`
	Black      string     `json:"black"`
	Result     string     `json:"result"`
	PlyCount   int        `json:"plyCount"`
	InitialFEN string     `json:"initialFEN"`
	FinalFEN   string     `json:"finalFEN"`
	Moves      []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply        int    `json:"ply"`
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castle     bool   `json:"castle,omitempty"`
	Computer   bool   `json:"computer,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to JSON format.
func GameToJSON(g *game.Game) *JSONGame {
	white, black := g.Players()
	jg := &JSONGame{
		White:      white,
		Black:      black,
		Result:     g.Result().String(),
		InitialFEN: g.StartFEN(),
		FinalFEN:   engine.BoardToFEN(g.Board()),
	}

	startsWithBlack := strings.Contains(g.StartFEN(), " b ")
	for _, p := range g.History() {
		jg.Moves = append(jg.Moves, moveToJSON(p, startsWithBlack))
	}
	jg.PlyCount = len(jg.Moves)
	return jg
}

func moveToJSON(p game.Played, startsWithBlack bool) JSONMove {
	ply := p.Ply
	if startsWithBlack {
		ply++
	}
	jm := JSONMove{
		Ply:        p.Ply,
		MoveNumber: (ply + 1) / 2,
		Color:      strings.ToLower(p.Side.String()),
		UCI:        p.UCI,
		From:       p.Move.From.String(),
		To:         p.Move.To.String(),
		Piece:      kindName(p.Piece.Kind),
		Castle:     p.Castle,
		Computer:   p.Computer,
	}
	if !p.Captured.IsEmpty() {
		jm.Captured = kindName(p.Captured.Kind)
	}
	if p.Promoted {
		jm.Promotion = kindName(chess.Queen)
	}
	return jm
}

func kindName(k chess.Kind) string {
	return strings.ToLower(k.String())
}
