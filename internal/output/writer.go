// Package output writes finished games as PGN or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/KDaiyan/EECS22L-Chess/internal/errors"
	"github.com/KDaiyan/EECS22L-Chess/internal/game"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (PGN, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(g *game.Game) error

	// Close writes any pending output.
	Close() error
}

// NewWriter returns a writer for the named format: "pgn" or "json".
func NewWriter(format string, w io.Writer) (GameWriter, error) {
	switch format {
	case "", "pgn":
		return NewPGNWriter(w), nil
	case "json":
		return NewJSONWriter(w), nil
	}
	return nil, errors.Wrapf(errors.ErrInvalidConfig, "output format %q", format)
}

// PGNWriter writes games in PGN format.
type PGNWriter struct {
	w io.Writer
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer) *PGNWriter {
	return &PGNWriter{w: w}
}

// WriteGame writes a game in PGN format followed by a blank line.
func (pw *PGNWriter) WriteGame(g *game.Game) error {
	_, err := fmt.Fprintf(pw.w, "%s\n\n", g.PGN())
	return err
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close.
type JSONWriter struct {
	w     io.Writer
	games []*JSONGame
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame buffers a game for JSON output.
func (jw *JSONWriter) WriteGame(g *game.Game) error {
	jw.games = append(jw.games, GameToJSON(g))
	return nil
}

// Close writes all buffered games as a JSON array.
func (jw *JSONWriter) Close() error {
	if len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	jw.games = jw.games[:0]
	return err
}
