package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, gameID string, score, level, combo int) *Result {
	t.Helper()
	r := &Result{GameID: gameID, Score: score, Level: level, MaxCombo: combo}
	if _, err := store.SaveResult(r); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	return r
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSaveResultAssignsRunID(t *testing.T) {
	store := openTestStore(t)

	r := save(t, store, "match3", 1200, 2, 7)
	if r.RunID == uuid.Nil {
		t.Fatal("expected a run ID to be assigned")
	}
	if r.ID == 0 {
		t.Error("expected row ID to be written back")
	}

	got, err := store.ResultByRun(r.RunID)
	if err != nil {
		t.Fatalf("ResultByRun() failed: %v", err)
	}
	if got == nil {
		t.Fatal("run not found")
	}
	if got.Score != 1200 || got.Level != 2 || got.MaxCombo != 7 || got.GameID != "match3" {
		t.Errorf("got %+v", got)
	}
}

func TestSaveResultRejectsDuplicateRun(t *testing.T) {
	store := openTestStore(t)

	r := save(t, store, "match3", 100, 1, 1)
	dup := &Result{RunID: r.RunID, GameID: "match3", Score: 999}
	if _, err := store.SaveResult(dup); !errors.Is(err, ErrDuplicateRun) {
		t.Errorf("err = %v, want ErrDuplicateRun", err)
	}

	high, _ := store.HighScore("match3")
	if high != 100 {
		t.Errorf("duplicate overwrote the run: high = %d", high)
	}
}

func TestResultByRunMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.ResultByRun(uuid.New())
	if err != nil {
		t.Fatalf("ResultByRun() failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestTopScoresOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		save(t, store, "match3", (i+1)*100, 1, 0)
	}
	first := save(t, store, "match3", 500, 3, 0)
	save(t, store, "other", 9000, 1, 0)

	scores, err := store.TopScores("match3", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 500 || scores[2].Score != 400 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	// The tie goes to the earlier run.
	if scores[1].RunID != first.RunID {
		t.Error("later run of equal score should rank second")
	}
}

func TestHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("match3")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "match3", 100, 1, 0)
	save(t, store, "match3", 300, 1, 0)
	save(t, store, "other", 700, 1, 0)

	if high, _ = store.HighScore("match3"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	if err := store.ClearScores("match3"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("match3", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("other game should not be affected by clear")
	}
}

func TestGetGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("match3")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	save(t, store, "match3", 100, 1, 4)
	save(t, store, "match3", 300, 3, 2)

	stats, err := store.GetGameStats("match3")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.BestLevel != 3 || stats.BestCombo != 4 {
		t.Errorf("best level/combo = %d/%d, want 3/4", stats.BestLevel, stats.BestCombo)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("expected LastPlayed to be set")
	}
}
