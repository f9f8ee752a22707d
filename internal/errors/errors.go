// Package errors provides sentinel errors and error types for the chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidMoveText indicates move text that is not in coordinate notation.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidBoard indicates a board that breaks a structural rule.
	ErrInvalidBoard = errors.New("invalid board")

	// ErrKingNotFound indicates a side without a king.
	ErrKingNotFound = errors.New("king not found")

	// ErrNoLegalMoves indicates a move was requested for a side that has none.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrGameOver indicates a move was attempted after the game ended.
	ErrGameOver = errors.New("game is over")
)

// MoveError wraps errors with move context: the ply at which the move was
// attempted, the side that made it and its text.
type MoveError struct {
	Err      error  // The underlying error
	PlyNum   int    // 1-based ply number (0 if not applicable)
	Side     string // Side that attempted the move (if known)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.Side != "" {
		parts = append(parts, e.Side)
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case context == "":
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with location context.
// It's used for FEN and move text parsing errors.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Field    int    // 1-based field number (0 if not applicable)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Field > 0 {
			loc += fmt.Sprintf(" field %d", e.Field)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvariantError reports a structurally broken state, such as a board
// without a king. It signals a programming error upstream and is never an
// expected outcome of play.
type InvariantError struct {
	Err    error  // The violated invariant, usually a sentinel
	Detail string // What was being done when it was detected
}

// Error returns the invariant and the detail.
func (e *InvariantError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invariant violation: %v", e.Err)
	}
	return fmt.Sprintf("invariant violation: %s: %v", e.Detail, e.Err)
}

// Unwrap returns the violated invariant.
func (e *InvariantError) Unwrap() error {
	return e.Err
}

// Invariant builds an InvariantError annotated with the caller's stack.
// Format the result with %+v to print the stack trace.
func Invariant(err error, format string, args ...interface{}) error {
	return pkgerrors.WithStack(&InvariantError{
		Err:    err,
		Detail: fmt.Sprintf(format, args...),
	})
}

// IsInvariant reports whether err is or wraps an InvariantError.
func IsInvariant(err error) bool {
	var ie *InvariantError
	return errors.As(err, &ie)
}

// RecoverInvariant turns a panic carrying an invariant error back into an
// ordinary error stored in *errp. Any other panic is re-raised. It must be
// called directly by defer.
func RecoverInvariant(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok && IsInvariant(err) {
		*errp = err
		return
	}
	panic(r)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
