package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
	"github.com/KDaiyan/EECS22L-Chess/internal/config"
	"github.com/KDaiyan/EECS22L-Chess/internal/engine"
	"github.com/KDaiyan/EECS22L-Chess/internal/game"
	"github.com/KDaiyan/EECS22L-Chess/internal/output"
	"github.com/KDaiyan/EECS22L-Chess/internal/search"
)

// session drives one game from a line-oriented input.
type session struct {
	cfg *config.Config
	g   *game.Game
	in  *bufio.Scanner
	out io.Writer
}

// playGame runs a game until it is decided, the human quits or input ends,
// then writes the record.
func playGame(cfg *config.Config, in io.Reader) error {
	g, err := game.New(cfg)
	if err != nil {
		return err
	}
	s := &session{cfg: cfg, g: g, in: bufio.NewScanner(in), out: cfg.OutputFile}

	if err := s.loop(); err != nil {
		return err
	}
	return s.finish()
}

func (s *session) loop() error {
	for s.g.Result() == search.Undecided {
		if human, ok := s.cfg.HumanSide(); ok && human == s.g.Turn() {
			done, err := s.humanTurn()
			if err != nil || done {
				return err
			}
			continue
		}

		d, err := s.g.PlayAI()
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%v plays %v\n", s.g.Turn().Opposite(), d.Move)
		if status := s.g.Status(); status == engine.Check {
			fmt.Fprintf(s.out, "%v is in check\n", s.g.Turn())
		}
	}
	return nil
}

// humanTurn reads commands until a move is played. done reports that the
// human left the game.
func (s *session) humanTurn() (done bool, err error) {
	if s.cfg.Output.ShowBoard {
		fmt.Fprintln(s.out, s.g.Board())
	}
	for {
		fmt.Fprintf(s.out, "%v to move: ", s.g.Turn())
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return true, s.in.Err()
		}
		line := strings.TrimSpace(s.in.Text())

		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return true, nil
		case "resign":
			s.g.Resign(s.g.Turn())
			return false, nil
		case "board":
			fmt.Fprintln(s.out, s.g.Board())
			continue
		case "fen":
			fmt.Fprintln(s.out, engine.BoardToFEN(s.g.Board()))
			continue
		case "moves":
			fmt.Fprintln(s.out, strings.Join(moveList(s.g.LegalMoves()), " "))
			continue
		}

		m, err := chess.ParseMove(line)
		if err != nil {
			fmt.Fprintf(s.out, "Cannot read %q: enter a move like e2e4, or \"moves\"\n", line)
			continue
		}
		if err := s.g.Move(m.From, m.To); err != nil {
			fmt.Fprintf(s.out, "Illegal move: %v\n", err)
			continue
		}
		return false, nil
	}
}

// finish reports the result and writes the record and search tree.
func (s *session) finish() error {
	fmt.Fprintf(s.out, "Result: %v\n", s.g.Result())

	if err := s.writeRecord(); err != nil {
		return err
	}
	if s.cfg.Output.TraceFile != "" && s.g.Trace() != nil {
		dot, err := s.g.Trace().DOT()
		if err != nil {
			return err
		}
		return writeText(s.cfg.Output.TraceFile, nil, dot)
	}
	return nil
}

// writeRecord writes the game record to the PGN file, or to the output.
func (s *session) writeRecord() error {
	w := s.out
	if name := s.cfg.Output.PGNFile; name != "" {
		file, err := os.Create(name)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	format := "pgn"
	if s.cfg.Output.JSONFormat {
		format = "json"
	}
	writer, err := output.NewWriter(format, w)
	if err != nil {
		return err
	}
	if err := writer.WriteGame(s.g); err != nil {
		return err
	}
	return writer.Close()
}

// writeText writes text to the named file, or to w when name is empty.
func writeText(name string, w io.Writer, text string) error {
	if name == "" {
		if w == nil {
			return nil
		}
		_, err := io.WriteString(w, text)
		return err
	}
	return os.WriteFile(name, []byte(text), 0644) //nolint:gosec // G306: user-requested output file
}

func moveList(moves []chess.Move) []string {
	list := make([]string, len(moves))
	for i, m := range moves {
		list[i] = m.String()
	}
	sort.Strings(list)
	return list
}
