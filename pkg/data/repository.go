package data

import (
	"encoding/json"
	"fmt"
)

// Repository serializes catalog state in and out of a Store. The experience
// collection (with its nested comments) and the global guestbook live under
// separate keys but share the same write-through policy.
type Repository struct {
	store Store
}

func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// Load returns the stored catalog, or the seed collection when no snapshot
// exists yet. A stored blob that no longer unmarshals is surfaced as an
// error rather than silently reseeded.
func (r *Repository) Load() (Catalog, error) {
	var catalog Catalog

	blob, err := r.store.LoadSnapshot(CatalogKey)
	switch {
	case err == ErrNoSnapshot:
		catalog = SeedCatalog()
	case err != nil:
		return Catalog{}, err
	default:
		if err := json.Unmarshal(blob, &catalog.Experiences); err != nil {
			return Catalog{}, fmt.Errorf("corrupt catalog snapshot: %w", err)
		}
	}

	blob, err = r.store.LoadSnapshot(GuestbookKey)
	switch {
	case err == ErrNoSnapshot:
		// nothing stored yet
	case err != nil:
		return Catalog{}, err
	default:
		if err := json.Unmarshal(blob, &catalog.Guestbook); err != nil {
			return Catalog{}, fmt.Errorf("corrupt guestbook snapshot: %w", err)
		}
	}

	return catalog, nil
}

func (r *Repository) SaveExperiences(experiences []Experience) error {
	blob, err := json.MarshalIndent(experiences, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize catalog: %w", err)
	}
	return r.store.SaveSnapshot(CatalogKey, blob)
}

func (r *Repository) SaveGuestbook(comments []Comment) error {
	blob, err := json.MarshalIndent(comments, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize guestbook: %w", err)
	}
	return r.store.SaveSnapshot(GuestbookKey, blob)
}

func (r *Repository) Close() error {
	return r.store.Close()
}
