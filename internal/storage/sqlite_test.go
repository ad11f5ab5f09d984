package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yuchenlin/typebomb/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
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

func TestStoreOpenNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	now := time.Now()
	entries := []game.Entry{
		{Name: "ada", Score: 200, CreatedAt: now},
		{Name: "bea", Score: 100, CreatedAt: now},
		{Name: "cal", Score: 50, CreatedAt: now},
	}
	if err := store.Save(game.ModeLatin, entries); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := store.Load(game.ModeLatin)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(loaded) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(loaded))
	}
	if loaded[0].Name != "ada" || loaded[0].Score != 200 {
		t.Errorf("Top entry = %+v, want ada/200", loaded[0])
	}
	if loaded[2].Name != "cal" || loaded[2].Score != 50 {
		t.Errorf("Last entry = %+v, want cal/50", loaded[2])
	}
	if loaded[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should round-trip")
	}
}

func TestStoreLoadEmptyMode(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.Load(game.ModeZhuyin)
	if err != nil {
		t.Fatalf("Load() on empty mode failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty board, got %v", entries)
	}
}

func TestStoreSaveReplacesBoard(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save(game.ModeLatin, []game.Entry{{Name: "old", Score: 10}}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := store.Save(game.ModeLatin, []game.Entry{{Name: "new", Score: 20}}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := store.Load(game.ModeLatin)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Name != "new" {
		t.Errorf("Expected only the new board, got %v", loaded)
	}
}

func TestStoreModesIsolated(t *testing.T) {
	store := openTestStore(t)

	store.Save(game.ModeLatin, []game.Entry{{Name: "ada", Score: 100}})
	store.Save(game.ModeZhuyin, []game.Entry{{Name: "mei", Score: 300}})

	latin, err := store.Load(game.ModeLatin)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(latin) != 1 || latin[0].Name != "ada" {
		t.Errorf("Latin board = %v", latin)
	}

	zhuyin, err := store.Load(game.ModeZhuyin)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(zhuyin) != 1 || zhuyin[0].Name != "mei" {
		t.Errorf("Zhuyin board = %v", zhuyin)
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	store.Save(game.ModeLatin, []game.Entry{
		{Name: "first", Score: 40},
		{Name: "second", Score: 40},
	})

	loaded, err := store.Load(game.ModeLatin)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded[0].Name != "first" || loaded[1].Name != "second" {
		t.Errorf("Tie order = %q, %q; want insertion order", loaded[0].Name, loaded[1].Name)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore(game.ModeLatin)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	store.Save(game.ModeLatin, []game.Entry{
		{Name: "ada", Score: 300},
		{Name: "bea", Score: 100},
	})

	high, err = store.HighScore(game.ModeLatin)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.Save(game.ModeLatin, []game.Entry{{Name: "ada", Score: 100}})
	store.Save(game.ModeZhuyin, []game.Entry{{Name: "mei", Score: 300}})

	if err := store.Clear(game.ModeLatin); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	latin, _ := store.Load(game.ModeLatin)
	if len(latin) != 0 {
		t.Errorf("Expected 0 latin entries after clear, got %d", len(latin))
	}

	zhuyin, _ := store.Load(game.ModeZhuyin)
	if len(zhuyin) != 1 {
		t.Error("Zhuyin board should not be affected by clearing latin")
	}
}

func TestStoreSubmitScoreIntegration(t *testing.T) {
	store := openTestStore(t)

	// Drive the store through the engine's submission path.
	for _, score := range []int{30, 10, 20} {
		if _, err := game.SubmitScore(store, game.ModeLatin, game.Entry{
			Name:      "ada",
			Score:     score,
			CreatedAt: time.Now(),
		}); err != nil {
			t.Fatalf("SubmitScore() failed: %v", err)
		}
	}

	loaded, err := store.Load(game.ModeLatin)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(loaded) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(loaded))
	}
	if loaded[0].Score != 30 || loaded[1].Score != 20 || loaded[2].Score != 10 {
		t.Errorf("Scores not sorted descending: %v", loaded)
	}
}
