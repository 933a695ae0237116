package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepositoryLoadSeedsOnFirstRun(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	repo := NewRepository(store)

	catalog, err := repo.Load()
	assert.NoError(t, err)
	assert.Equal(t, SeedCatalog().Experiences, catalog.Experiences)
}

func TestRepositoryRoundtrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	repo := NewRepository(store)

	catalog := SeedCatalog()
	catalog.Experiences[0].Items[0].Count = 7
	assert.NoError(t, repo.SaveExperiences(catalog.Experiences))
	assert.NoError(t, repo.SaveGuestbook([]Comment{
		{ID: "1", Author: "Ana", Text: "hola", Date: "01/01/2026 10:00"},
	}))

	loaded, err := repo.Load()
	assert.NoError(t, err)
	assert.Equal(t, 7, loaded.Experiences[0].Items[0].Count)
	assert.Len(t, loaded.Guestbook, 1)
	assert.Equal(t, "Ana", loaded.Guestbook[0].Author)
}

func TestRepositoryCorruptSnapshot(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	assert.NoError(t, store.SaveSnapshot(CatalogKey, []byte("{not json")))

	_, err = NewRepository(store).Load()
	assert.Error(t, err)
}
