package data

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) (*DuckStore, func()) {
	t.Helper()

	// Create temp directory for test database
	tmpDir, err := os.MkdirTemp("", "experiencias-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	store, err := NewDuckStore(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to init store: %v", err)
	}

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}

	return store, cleanup
}

func TestDuckStoreSaveAndLoad(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	blob := []byte(`{"experiences":[]}`)
	if err := store.SaveSnapshot(CatalogKey, blob); err != nil {
		t.Fatalf("Failed to save snapshot: %v", err)
	}

	loaded, err := store.LoadSnapshot(CatalogKey)
	if err != nil {
		t.Fatalf("Failed to load snapshot: %v", err)
	}

	if string(loaded) != string(blob) {
		t.Errorf("Expected %s, got %s", blob, loaded)
	}
}

func TestDuckStoreMissingKey(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.LoadSnapshot("missing_v1")
	if err != ErrNoSnapshot {
		t.Errorf("Expected ErrNoSnapshot, got %v", err)
	}
}

func TestDuckStoreOverwrite(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	if err := store.SaveSnapshot(GuestbookKey, []byte("[1]")); err != nil {
		t.Fatalf("Failed to save snapshot: %v", err)
	}
	if err := store.SaveSnapshot(GuestbookKey, []byte("[1,2]")); err != nil {
		t.Fatalf("Failed to overwrite snapshot: %v", err)
	}

	loaded, err := store.LoadSnapshot(GuestbookKey)
	if err != nil {
		t.Fatalf("Failed to load snapshot: %v", err)
	}

	if string(loaded) != "[1,2]" {
		t.Errorf("Expected latest blob, got %s", loaded)
	}
}
