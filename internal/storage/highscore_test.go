package storage

import "testing"

func TestHighScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	hs := NewHighScore(store, "flappy", nil)

	if got := hs.LoadHighScore(); got != 0 {
		t.Errorf("absent high score = %d, want 0", got)
	}

	hs.SaveHighScore(42)
	if got := hs.LoadHighScore(); got != 42 {
		t.Errorf("LoadHighScore() = %d, want 42", got)
	}

	v, _, _ := store.GetValue("flappy.high_score")
	if v != "42" {
		t.Errorf("stored value = %q, want decimal 42", v)
	}

	// Modes are independent
	if got := NewHighScore(store, "flappy_rush", nil).LoadHighScore(); got != 0 {
		t.Errorf("other mode = %d, want 0", got)
	}
}

func TestHighScoreMalformed(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		raw  string
		want int
	}{
		{"abc", 0},
		{"", 0},
		{"-5", 0},
		{"12.5", 0},
		{" 7 ", 7},
	}

	hs := NewHighScore(store, "flappy", nil)
	for _, tt := range tests {
		store.SetValue(HighScoreKey("flappy"), tt.raw)
		if got := hs.LoadHighScore(); got != tt.want {
			t.Errorf("LoadHighScore() with %q = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestHighScoresListing(t *testing.T) {
	store := openTestStore(t)

	NewHighScore(store, "flappy", nil).SaveHighScore(9)
	NewHighScore(store, "flappy_rush", nil).SaveHighScore(4)
	store.SetValue("broken.high_score", "nope")

	entries, err := store.HighScores()
	if err != nil {
		t.Fatalf("HighScores() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("HighScores() returned %d, want 2", len(entries))
	}
	if entries[0].Mode != "flappy" || entries[0].Score != 9 {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Mode != "flappy_rush" || entries[1].Score != 4 {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}
