package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{GameID: "adventure", Player: "ann", Score: 100, Level: 1, Outcome: "lost"},
		{GameID: "adventure", Player: "bob", Score: 50, Level: 1, Outcome: "lost"},
		{GameID: "adventure", Player: "cat", Score: 1200, Level: 3, Outcome: "completed"},
		{GameID: "other", Player: "dan", Score: 500, Level: 2, Outcome: "lost"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("adventure", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	wantScores := []int{1200, 100, 50}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("run %d: expected score %d, got %d", i, want, top[i].Score)
		}
	}
	if top[0].Player != "cat" || top[0].Level != 3 || top[0].Outcome != "completed" {
		t.Errorf("unexpected best run: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}
}

func TestStoreTopRunsTieBreak(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "adventure", Player: "first", Score: 300, Level: 1, Outcome: "lost"})
	store.SaveRun(Run{GameID: "adventure", Player: "deeper", Score: 300, Level: 2, Outcome: "lost"})
	store.SaveRun(Run{GameID: "adventure", Player: "second", Score: 300, Level: 1, Outcome: "lost"})

	top, err := store.TopRuns("adventure", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	want := []string{"deeper", "first", "second"}
	for i, name := range want {
		if top[i].Player != name {
			t.Errorf("position %d: expected %s, got %s", i, name, top[i].Player)
		}
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveRun(Run{GameID: "test", Score: i * 10, Level: 1, Outcome: "lost"})
	}

	tests := []struct {
		limit int
		want  int
	}{
		{5, 5},
		{0, 10}, // default
		{50, 20},
	}
	for _, tt := range tests {
		runs, err := store.TopRuns("test", tt.limit)
		if err != nil {
			t.Fatalf("TopRuns(%d) failed: %v", tt.limit, err)
		}
		if len(runs) != tt.want {
			t.Errorf("TopRuns(%d): expected %d runs, got %d", tt.limit, tt.want, len(runs))
		}
	}
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{GameID: "adventure", Player: "ann", Score: 250, Level: 2, Outcome: "lost"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	r, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r.Score != 250 || r.Level != 2 || r.Player != "ann" {
		t.Errorf("unexpected run: %+v", r)
	}

	if _, err := store.RunByID(id + 100); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore("adventure")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for empty game, got %d", high)
	}

	store.SaveRun(Run{GameID: "adventure", Score: 100, Level: 1, Outcome: "lost"})
	store.SaveRun(Run{GameID: "adventure", Score: 300, Level: 2, Outcome: "lost"})
	store.SaveRun(Run{GameID: "adventure", Score: 200, Level: 1, Outcome: "lost"})

	high, err = store.HighScore("adventure")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "adventure", Score: 100, Level: 1, Outcome: "lost"})
	store.SaveRun(Run{GameID: "adventure", Score: 200, Level: 1, Outcome: "lost"})
	store.SaveRun(Run{GameID: "other", Score: 300, Level: 1, Outcome: "lost"})

	n, err := store.ClearRuns("adventure")
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 cleared runs, got %d", n)
	}

	runs, _ := store.TopRuns("adventure", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	// Other game should be unaffected
	other, _ := store.TopRuns("other", 10)
	if len(other) != 1 {
		t.Errorf("Expected 1 run for other game, got %d", len(other))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GameStats("adventure")
	if err != nil {
		t.Fatalf("GameStats() on empty table failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected empty stats: %+v", empty)
	}

	store.SaveRun(Run{GameID: "adventure", Score: 100, Level: 1, Outcome: "lost"})
	store.SaveRun(Run{GameID: "adventure", Score: 1300, Level: 3, Outcome: "completed"})
	store.SaveRun(Run{GameID: "adventure", Score: 400, Level: 2, Outcome: "lost"})

	stats, err := store.GameStats("adventure")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Runs = %d, want 3", stats.Runs)
	}
	if stats.Completed != 1 {
		t.Errorf("Completed = %d, want 1", stats.Completed)
	}
	if stats.HighScore != 1300 {
		t.Errorf("HighScore = %d, want 1300", stats.HighScore)
	}
	if stats.BestLevel != 3 {
		t.Errorf("BestLevel = %d, want 3", stats.BestLevel)
	}
	if stats.AvgScore != 600 {
		t.Errorf("AvgScore = %v, want 600", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not parsed")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
