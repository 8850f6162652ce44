package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "nested", "dir", "scores.db"))
	if err != nil {
		t.Fatalf("Open() should create parent directories: %v", err)
	}
	defer store.Close()
}

func TestSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 300, 200} {
		if _, err := store.SaveScore("sumdrop", score); err != nil {
			t.Fatalf("SaveScore() error: %v", err)
		}
	}

	scores, err := store.TopScores("sumdrop", 10)
	if err != nil {
		t.Fatalf("TopScores() error: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("got %d scores, expected 3", len(scores))
	}

	// Ordered by score descending
	want := []int{300, 200, 100}
	for i, entry := range scores {
		if entry.Score != want[i] {
			t.Errorf("scores[%d].Score = %d, expected %d", i, entry.Score, want[i])
		}
		if entry.GameID != "sumdrop" {
			t.Errorf("scores[%d].GameID = %q, expected %q", i, entry.GameID, "sumdrop")
		}
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore("sumdrop", i*10); err != nil {
			t.Fatalf("SaveScore() error: %v", err)
		}
	}

	scores, err := store.TopScores("sumdrop", 5)
	if err != nil {
		t.Fatalf("TopScores() error: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("got %d scores, expected limit of 5", len(scores))
	}
}

func TestScoresAreScopedToVariant(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("sumdrop", 100)
	store.SaveScore("sumdrop_timed", 999)

	scores, err := store.TopScores("sumdrop", 10)
	if err != nil {
		t.Fatalf("TopScores() error: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 100 {
		t.Errorf("classic scores = %+v, expected only the classic entry", scores)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("sumdrop")
	if err != nil {
		t.Fatalf("HighScore() error: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d, expected 0 with no scores", high)
	}

	store.SaveScore("sumdrop", 150)
	store.SaveScore("sumdrop", 400)
	store.SaveScore("sumdrop", 250)

	high, err = store.HighScore("sumdrop")
	if err != nil {
		t.Fatalf("HighScore() error: %v", err)
	}
	if high != 400 {
		t.Errorf("HighScore() = %d, expected 400", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("sumdrop", 100)
	store.SaveScore("sumdrop_timed", 200)

	if err := store.ClearScores("sumdrop"); err != nil {
		t.Fatalf("ClearScores() error: %v", err)
	}

	scores, _ := store.TopScores("sumdrop", 10)
	if len(scores) != 0 {
		t.Errorf("got %d classic scores after clear, expected 0", len(scores))
	}

	// The other variant is untouched
	timed, _ := store.TopScores("sumdrop_timed", 10)
	if len(timed) != 1 {
		t.Errorf("got %d timed scores, expected 1", len(timed))
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("sumdrop", 100)
	store.SaveScore("sumdrop", 300)

	stats, err := store.GetGameStats("sumdrop")
	if err != nil {
		t.Fatalf("GetGameStats() error: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, expected 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, expected 400", stats.TotalScore)
	}
}

func TestGetGameStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("sumdrop")
	if err != nil {
		t.Fatalf("GetGameStats() error: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 {
		t.Errorf("stats = %+v, expected zeroed stats for unplayed variant", stats)
	}
}

func TestGetAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("sumdrop", 100)
	store.SaveScore("sumdrop_timed", 250)

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() error: %v", err)
	}

	if len(all) != 2 {
		t.Fatalf("got stats for %d variants, expected 2", len(all))
	}
	if all["sumdrop"].HighScore != 100 {
		t.Errorf("classic high score = %d, expected 100", all["sumdrop"].HighScore)
	}
	if all["sumdrop_timed"].HighScore != 250 {
		t.Errorf("timed high score = %d, expected 250", all["sumdrop_timed"].HighScore)
	}
}
