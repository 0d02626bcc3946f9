package storage

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// highScoreSuffix is appended to the mode id to form its key.
const highScoreSuffix = ".high_score"

// HighScoreKey returns the key holding the best score for a mode.
func HighScoreKey(mode string) string {
	return mode + highScoreSuffix
}

// HighScore adapts a Store key to the single-integer high-score collaborator
// the game expects. Failures are logged and absorbed.
type HighScore struct {
	store  *Store
	key    string
	logger *log.Logger
}

// NewHighScore binds the high-score key of mode. A nil logger discards messages.
func NewHighScore(store *Store, mode string, logger *log.Logger) *HighScore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScore{store: store, key: HighScoreKey(mode), logger: logger}
}

// LoadHighScore returns the stored score, or 0 when it is absent or unreadable.
func (h *HighScore) LoadHighScore() int {
	raw, ok, err := h.store.GetValue(h.key)
	if err != nil {
		h.logger.Warn("high score unavailable", "key", h.key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}

	score, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || score < 0 {
		h.logger.Warn("ignoring malformed high score", "key", h.key, "value", raw)
		return 0
	}
	return score
}

// SaveHighScore writes score as a base-10 integer.
func (h *HighScore) SaveHighScore(score int) {
	if err := h.store.SetValue(h.key, strconv.Itoa(score)); err != nil {
		h.logger.Error("cannot save high score", "key", h.key, "score", score, "error", err)
	}
}

// HighScoreEntry is a mode's best score as shown on the scoreboard.
type HighScoreEntry struct {
	Mode      string
	Score     int
	UpdatedAt time.Time
}

// HighScores lists the best score of every mode that has one.
// Malformed values are skipped.
func (s *Store) HighScores() ([]HighScoreEntry, error) {
	entries, err := s.Entries(highScoreSuffix)
	if err != nil {
		return nil, err
	}

	result := make([]HighScoreEntry, 0, len(entries))
	for _, e := range entries {
		score, err := strconv.Atoi(strings.TrimSpace(e.Value))
		if err != nil {
			continue
		}
		result = append(result, HighScoreEntry{
			Mode:      strings.TrimSuffix(e.Key, highScoreSuffix),
			Score:     score,
			UpdatedAt: e.UpdatedAt,
		})
	}
	return result, nil
}
