package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidMoveText", ErrInvalidMoveText, ErrInvalidMoveText},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrInvalidBoard", ErrInvalidBoard, ErrInvalidBoard},
		{"ErrKingNotFound", ErrKingNotFound, ErrKingNotFound},
		{"ErrNoLegalMoves", ErrNoLegalMoves, ErrNoLegalMoves},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to parse position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrIllegalMove,
				PlyNum:   12,
				Side:     "White",
				MoveText: "e2e5",
			},
			contains: []string{"ply 12", "white", "e2e5", "illegal move"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrGameOver},
			contains: []string{"game is over"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:      ErrIllegalMove,
		PlyNum:   24,
		MoveText: "h1e1",
	}

	wrapped := fmt.Errorf("playing failed: %w", moveErr)

	var extractedErr *MoveError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extractedErr.PlyNum != 24 {
		t.Errorf("extractedErr.PlyNum = %d, want 24", extractedErr.PlyNum)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrInvalidFEN,
		Input:    "8/8/8 x",
		Field:    2,
		Expected: "w or b",
		Got:      "x",
	}

	msg := err.Error()
	for _, s := range []string{"8/8/8 x", "field 2", "expected w or b, got x", "invalid FEN"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("errors.Is(parseErr, ErrInvalidFEN) = false, want true")
	}
}

// TestInvariant verifies the stack-annotated invariant error still unwraps.
func TestInvariant(t *testing.T) {
	err := Invariant(ErrKingNotFound, "locating %s king", "black")

	if !errors.Is(err, ErrKingNotFound) {
		t.Error("errors.Is(err, ErrKingNotFound) = false, want true")
	}
	if !IsInvariant(err) {
		t.Error("IsInvariant(err) = false, want true")
	}
	if IsInvariant(ErrIllegalMove) {
		t.Error("IsInvariant(ErrIllegalMove) = true, want false")
	}

	msg := err.Error()
	if !containsIgnoreCase(msg, "locating black king") {
		t.Errorf("Invariant error should include detail, got %q", msg)
	}
	if verbose := fmt.Sprintf("%+v", err); !strings.Contains(verbose, "TestInvariant") {
		t.Errorf("%%+v should include the stack trace, got %q", verbose)
	}
}

// TestRecoverInvariant verifies invariant panics become errors and other
// panics propagate.
func TestRecoverInvariant(t *testing.T) {
	run := func(v interface{}) (err error) {
		defer RecoverInvariant(&err)
		if v != nil {
			panic(v)
		}
		return nil
	}

	if err := run(nil); err != nil {
		t.Errorf("run(nil) = %v, want nil", err)
	}
	if err := run(Invariant(ErrKingNotFound, "test")); !errors.Is(err, ErrKingNotFound) {
		t.Errorf("run(invariant) = %v, want ErrKingNotFound", err)
	}

	defer func() {
		if r := recover(); r != "other" {
			t.Errorf("recover() = %v, want the original panic", r)
		}
	}()
	_ = run("other")
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
	if Wrap(nil, "nothing") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "move %d for %s", 15, "black")

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "move 15 for black") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
