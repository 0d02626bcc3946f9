package core

// RuntimeConfig contains the platform-provided settings passed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal surface only)
	ScreenH  int   // Screen height in characters (terminal surface only)
	TickRate int   // Target frames per second for the driver (default 60)
	Seed     int64 // RNG seed for obstacle placement; 0 means the platform picks one

	// HighScores persists the best score for the running mode.
	// Nil means the high score lives only in memory.
	HighScores HighScoreStore
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// HighScoreStore is the key/value collaborator holding a single integer high score.
// Implementations absorb their own failures: Load returns 0 when the value is
// missing or unreadable, Save never reports an error to the game.
type HighScoreStore interface {
	LoadHighScore() int
	SaveHighScore(score int)
}

// GameState is the coarse status a game reports to the platform.
type GameState struct {
	Phase     string // "ready", "running" or "over"
	Score     int
	HighScore int
	GameOver  bool
}

// StepResult is returned by Tick and carries the state after the frame together
// with every event emitted since the previous Tick.
type StepResult struct {
	State  GameState
	Events []Event
}
