package storage

import (
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{LevelID: "warmup", Score: 42}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	// Migrations must be idempotent
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("warmup")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("Expected high score 42 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{LevelID: "proving-grounds", Score: 100, Distance: 1005, Mode: "StandardRunner"},
		{LevelID: "proving-grounds", Score: 50, Distance: 502, Mode: "StandardRunner"},
		{LevelID: "proving-grounds", Score: 200, Distance: 2010, Mode: "FlapFly", Player: "alice"},
		{LevelID: "warmup", Score: 500, Distance: 5000, Mode: "StandardRunner"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("proving-grounds", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not sorted by score: %v", top)
	}
	if top[0].Mode != "FlapFly" || top[0].Player != "alice" || top[0].Distance != 2010 {
		t.Errorf("Run fields not round-tripped: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	warmup, err := store.TopRuns("warmup", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(warmup) != 1 {
		t.Errorf("Expected 1 warmup run, got %d", len(warmup))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{LevelID: "test", Score: (i + 1) * 100})
	}

	top, err := store.TopRuns("test", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", top)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopRuns("test", 0)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 runs with default limit, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("warmup")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for unplayed level, got %d", high)
	}

	store.SaveRun(Run{LevelID: "warmup", Score: 100})
	store.SaveRun(Run{LevelID: "warmup", Score: 300})
	store.SaveRun(Run{LevelID: "warmup", Score: 200})

	high, err = store.HighScore("warmup")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{LevelID: "warmup", Score: 100})
	store.SaveRun(Run{LevelID: "warmup", Score: 200})
	store.SaveRun(Run{LevelID: "proving-grounds", Score: 300})

	if err := store.ClearScores("warmup"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if runs, _ := store.TopRuns("warmup", 10); len(runs) != 0 {
		t.Errorf("Expected 0 warmup runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("proving-grounds", 10); len(runs) != 1 {
		t.Error("Other levels should not be affected by clearing warmup")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("warmup")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats for unplayed level, got %+v", empty)
	}

	store.SaveRun(Run{LevelID: "warmup", Score: 100, Distance: 1000})
	store.SaveRun(Run{LevelID: "warmup", Score: 300, Distance: 3000})
	store.SaveRun(Run{LevelID: "proving-grounds", Score: 10, Distance: 100})

	stats, err := store.Stats("warmup")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.BestDistance != 3000 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(all))
	}
	if all["proving-grounds"].HighScore != 10 {
		t.Errorf("Expected proving-grounds high score 10, got %d", all["proving-grounds"].HighScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
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
