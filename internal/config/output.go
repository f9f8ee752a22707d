package config

// OutputConfig holds settings related to what is written during a game.
type OutputConfig struct {
	// ShowBoard prints the board before every human move
	ShowBoard bool

	// PGNFile receives the game record when the game ends
	PGNFile string

	// JSONFormat writes the game record as JSON instead of PGN
	JSONFormat bool

	// TraceFile receives the last search tree in DOT format
	TraceFile string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard: true,
	}
}
