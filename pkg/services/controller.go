package services

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/config"
	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/data"
)

var (
	ErrExperienceNotFound = errors.New("experience not found")
	ErrItemNotFound       = errors.New("download item not found")
	ErrEmptyComment       = errors.New("comment text is empty")
)

// CatalogController owns the in-memory catalog and exposes its only write
// paths. Every successful mutation is written through to the repository
// before returning. Screens and commands read state through the accessors,
// which hand out copies.
type CatalogController struct {
	mu      sync.Mutex
	repo    *data.Repository
	catalog data.Catalog
}

// NewCatalogController opens the configured snapshot backend and loads the
// stored catalog, seeding it on first run.
func NewCatalogController(cfg config.Config) (*CatalogController, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	var store data.Store
	var err error

	switch cfg.Backend {
	case "json":
		store, err = data.NewFileStore(cfg.DataDir)
	default:
		store, err = data.NewDuckStore(filepath.Join(cfg.DataDir, "experiencias.db"))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}

	return NewCatalogControllerWithRepo(data.NewRepository(store))
}

func NewCatalogControllerWithRepo(repo *data.Repository) (*CatalogController, error) {
	catalog, err := repo.Load()
	if err != nil {
		return nil, err
	}
	slog.Debug("catalog loaded", "experiences", len(catalog.Experiences))
	return &CatalogController{repo: repo, catalog: catalog}, nil
}

// RecordDownload increments the matching item's counter by exactly 1 and
// persists the catalog. Unknown ids are reported, not swallowed.
func (c *CatalogController) RecordDownload(expID, itemID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.catalog.Experiences {
		if c.catalog.Experiences[i].ID != expID {
			continue
		}
		for j := range c.catalog.Experiences[i].Items {
			if c.catalog.Experiences[i].Items[j].ID != itemID {
				continue
			}
			c.catalog.Experiences[i].Items[j].Count++
			return c.repo.SaveExperiences(c.catalog.Experiences)
		}
		return fmt.Errorf("%w: %s/%s", ErrItemNotFound, expID, itemID)
	}
	return fmt.Errorf("%w: %s", ErrExperienceNotFound, expID)
}

// AddComment validates and prepends a new comment. With a non-empty expID it
// goes to that experience's list; otherwise to the global guestbook.
// Existing comments are never touched.
func (c *CatalogController) AddComment(author, email, text, expID string) (data.Comment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	comment := data.NewComment(author, email, text)
	if comment.Text == "" {
		return data.Comment{}, ErrEmptyComment
	}

	if expID == "" {
		c.catalog.Guestbook = append([]data.Comment{comment}, c.catalog.Guestbook...)
		return comment, c.repo.SaveGuestbook(c.catalog.Guestbook)
	}

	for i := range c.catalog.Experiences {
		if c.catalog.Experiences[i].ID != expID {
			continue
		}
		exp := &c.catalog.Experiences[i]
		exp.Comments = append([]data.Comment{comment}, exp.Comments...)
		return comment, c.repo.SaveExperiences(c.catalog.Experiences)
	}
	return data.Comment{}, fmt.Errorf("%w: %s", ErrExperienceNotFound, expID)
}

// Experiences returns a copy of the experience collection.
func (c *CatalogController) Experiences() []data.Experience {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyExperiences(c.catalog.Experiences)
}

// Experience returns a copy of a single experience by id.
func (c *CatalogController) Experience(expID string) (data.Experience, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.catalog.Experiences {
		if c.catalog.Experiences[i].ID == expID {
			return copyExperiences(c.catalog.Experiences[i : i+1])[0], nil
		}
	}
	return data.Experience{}, fmt.Errorf("%w: %s", ErrExperienceNotFound, expID)
}

// Guestbook returns a copy of the global comment list, newest first.
func (c *CatalogController) Guestbook() []data.Comment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]data.Comment(nil), c.catalog.Guestbook...)
}

// Snapshot returns a copy of the full catalog state for read-only consumers
// like the report generator.
func (c *CatalogController) Snapshot() data.Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	return data.Catalog{
		Experiences: copyExperiences(c.catalog.Experiences),
		Guestbook:   append([]data.Comment(nil), c.catalog.Guestbook...),
	}
}

// TotalDownloads is the sum of every item counter.
func (c *CatalogController) TotalDownloads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return catalogDownloads(c.catalog)
}

// TotalComments counts per-experience comments plus the guestbook.
func (c *CatalogController) TotalComments() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return catalogComments(c.catalog)
}

// ItemStat is a download counter joined with its experience for ranking.
type ItemStat struct {
	ExperienceID    string
	ExperienceTitle string
	Label           string
	Filename        string
	Count           int
}

// TopItems returns the n most downloaded items, highest count first.
func (c *CatalogController) TopItems(n int) []ItemStat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return catalogTopItems(c.catalog, n)
}

// RecentComments returns the n most recent comments across all collections,
// newest first.
func (c *CatalogController) RecentComments(n int) []data.Comment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return catalogRecentComments(c.catalog, n)
}

func (c *CatalogController) Close() error {
	return c.repo.Close()
}

func copyExperiences(src []data.Experience) []data.Experience {
	out := make([]data.Experience, len(src))
	for i, exp := range src {
		out[i] = exp
		out[i].Items = append([]data.DownloadItem(nil), exp.Items...)
		out[i].Comments = append([]data.Comment(nil), exp.Comments...)
	}
	return out
}
