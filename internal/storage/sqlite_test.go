package storage

import (
	"os"
	"path/filepath"
	"testing"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	_, err = store.SaveMatch(MatchResult{Mode: "1P", Difficulty: "Medium", ScoreL: 7, ScoreR: 4, Winner: 1, DurationSecs: 180})
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	_, err = store.SaveMatch(MatchResult{Mode: "2P", ScoreL: 3, ScoreR: 7, Winner: 2, DurationSecs: 240})
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	matches, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}

	// Newest first
	if matches[0].Mode != "2P" || matches[0].Winner != 2 {
		t.Errorf("Expected newest match first, got %+v", matches[0])
	}
	if matches[1].Difficulty != "Medium" {
		t.Errorf("Expected difficulty preserved, got %q", matches[1].Difficulty)
	}
	if matches[1].ScoreL != 7 || matches[1].ScoreR != 4 {
		t.Errorf("Expected score 7:4, got %d:%d", matches[1].ScoreL, matches[1].ScoreR)
	}
}

func TestStoreRecentMatchesLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveMatch(MatchResult{Mode: "1P", Difficulty: "Easy", ScoreL: 7, ScoreR: i, Winner: 1})
	}

	matches, err := store.RecentMatches(3)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 3 {
		t.Errorf("Expected 3 matches with limit, got %d", len(matches))
	}
}

func TestStoreStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No matches yet
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Played != 0 {
		t.Errorf("Expected 0 played for empty store, got %d", stats.Played)
	}

	store.SaveMatch(MatchResult{Mode: "1P", Difficulty: "Hard", ScoreL: 7, ScoreR: 5, Winner: 1})
	store.SaveMatch(MatchResult{Mode: "1P", Difficulty: "Hard", ScoreL: 2, ScoreR: 7, Winner: 2})
	store.SaveMatch(MatchResult{Mode: "2P", ScoreL: 7, ScoreR: 0, Winner: 1})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Played != 3 {
		t.Errorf("Expected 3 played, got %d", stats.Played)
	}
	if stats.LeftWins != 2 || stats.RightWins != 1 {
		t.Errorf("Expected 2 left / 1 right wins, got %d/%d", stats.LeftWins, stats.RightWins)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected last played to be set")
	}
}

func TestStoreClearMatches(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveMatch(MatchResult{Mode: "1P", Difficulty: "Easy", ScoreL: 7, ScoreR: 1, Winner: 1})
	store.SaveMatch(MatchResult{Mode: "2P", ScoreL: 7, ScoreR: 6, Winner: 1})

	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	matches, _ := store.RecentMatches(10)
	if len(matches) != 0 {
		t.Errorf("Expected 0 matches after clear, got %d", len(matches))
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
