package services

import (
	"errors"
	"testing"

	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/data"
)

func setupController(t *testing.T) (*CatalogController, *data.Repository) {
	t.Helper()

	store, err := data.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	repo := data.NewRepository(store)

	controller, err := NewCatalogControllerWithRepo(repo)
	if err != nil {
		t.Fatalf("Failed to create controller: %v", err)
	}
	return controller, repo
}

func TestRecordDownloadIncrementsExactlyOne(t *testing.T) {
	controller, _ := setupController(t)

	before := controller.Experiences()

	if err := controller.RecordDownload("exp1", "guia"); err != nil {
		t.Fatalf("RecordDownload failed: %v", err)
	}

	after := controller.Experiences()
	for i, exp := range after {
		for j, item := range exp.Items {
			expected := before[i].Items[j].Count
			if exp.ID == "exp1" && item.ID == "guia" {
				expected++
			}
			if item.Count != expected {
				t.Errorf("Item %s/%s: expected count %d, got %d", exp.ID, item.ID, expected, item.Count)
			}
		}
	}
}

func TestRecordDownloadUnknownIDs(t *testing.T) {
	controller, _ := setupController(t)

	err := controller.RecordDownload("nope", "guia")
	if !errors.Is(err, ErrExperienceNotFound) {
		t.Errorf("Expected ErrExperienceNotFound, got %v", err)
	}

	err = controller.RecordDownload("exp1", "nope")
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("Expected ErrItemNotFound, got %v", err)
	}

	// A failed mutation must not change any counter
	if controller.TotalDownloads() != 0 {
		t.Errorf("Expected no downloads recorded, got %d", controller.TotalDownloads())
	}
}

func TestRecordDownloadPersists(t *testing.T) {
	controller, repo := setupController(t)

	if err := controller.RecordDownload("exp1", "guia"); err != nil {
		t.Fatalf("RecordDownload failed: %v", err)
	}

	// Reload from the same store: the counter must survive
	reloaded, err := NewCatalogControllerWithRepo(repo)
	if err != nil {
		t.Fatalf("Failed to reload controller: %v", err)
	}

	exp, err := reloaded.Experience("exp1")
	if err != nil {
		t.Fatalf("Experience failed: %v", err)
	}
	for _, item := range exp.Items {
		if item.Filename == "exp1-guia.pdf" && item.Count != 1 {
			t.Errorf("Expected persisted count 1, got %d", item.Count)
		}
	}
}

func TestAddCommentPrepends(t *testing.T) {
	controller, _ := setupController(t)

	first, err := controller.AddComment("Ana", "", "Muy útil", "exp1")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if first.Author != "Ana" {
		t.Errorf("Expected author Ana, got %s", first.Author)
	}
	if first.Email != "" {
		t.Errorf("Expected empty email, got %s", first.Email)
	}
	if first.Date == "" {
		t.Error("Expected a non-empty date")
	}

	second, err := controller.AddComment("Luis", "luis@example.com", "Gracias", "exp1")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	exp, err := controller.Experience("exp1")
	if err != nil {
		t.Fatalf("Experience failed: %v", err)
	}

	if len(exp.Comments) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(exp.Comments))
	}
	if exp.Comments[0].ID != second.ID {
		t.Error("Expected newest comment first")
	}
	if exp.Comments[1].ID != first.ID {
		t.Error("Expected earlier comment preserved at the tail")
	}
	if first.ID == second.ID {
		t.Error("Expected unique comment ids")
	}
}

func TestAddCommentWhitespaceRejected(t *testing.T) {
	controller, _ := setupController(t)

	_, err := controller.AddComment("Ana", "", "   \t  ", "exp1")
	if !errors.Is(err, ErrEmptyComment) {
		t.Errorf("Expected ErrEmptyComment, got %v", err)
	}

	exp, _ := controller.Experience("exp1")
	if len(exp.Comments) != 0 {
		t.Errorf("Expected comment list unchanged, got %d entries", len(exp.Comments))
	}
}

func TestAddCommentGuestbook(t *testing.T) {
	controller, repo := setupController(t)

	comment, err := controller.AddComment("", "", "Me encanta el proyecto", "")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if comment.Author != data.AnonymousAuthor {
		t.Errorf("Expected anonymous author, got %s", comment.Author)
	}

	guestbook := controller.Guestbook()
	if len(guestbook) != 1 {
		t.Fatalf("Expected 1 guestbook entry, got %d", len(guestbook))
	}

	// Guestbook persists under its own key
	reloaded, err := NewCatalogControllerWithRepo(repo)
	if err != nil {
		t.Fatalf("Failed to reload controller: %v", err)
	}
	if len(reloaded.Guestbook()) != 1 {
		t.Errorf("Expected guestbook to survive reload, got %d entries", len(reloaded.Guestbook()))
	}
}

func TestAddCommentUnknownExperience(t *testing.T) {
	controller, _ := setupController(t)

	_, err := controller.AddComment("Ana", "", "hola", "nope")
	if !errors.Is(err, ErrExperienceNotFound) {
		t.Errorf("Expected ErrExperienceNotFound, got %v", err)
	}
}

func TestTotalsMatchIndividualCounters(t *testing.T) {
	controller, _ := setupController(t)

	downloads := []struct{ exp, item string }{
		{"exp1", "guia"}, {"exp1", "guia"}, {"exp1", "fichas"},
		{"exp2", "material"}, {"exp3", "plantillas"},
	}
	for _, d := range downloads {
		if err := controller.RecordDownload(d.exp, d.item); err != nil {
			t.Fatalf("RecordDownload failed: %v", err)
		}
	}

	sum := 0
	for _, exp := range controller.Experiences() {
		for _, item := range exp.Items {
			sum += item.Count
		}
	}

	if controller.TotalDownloads() != sum {
		t.Errorf("TotalDownloads %d does not match counter sum %d", controller.TotalDownloads(), sum)
	}
	if controller.TotalDownloads() != len(downloads) {
		t.Errorf("Expected %d downloads, got %d", len(downloads), controller.TotalDownloads())
	}
}

func TestTopItemsRanking(t *testing.T) {
	controller, _ := setupController(t)

	for i := 0; i < 3; i++ {
		controller.RecordDownload("exp2", "material")
	}
	controller.RecordDownload("exp1", "guia")

	top := controller.TopItems(2)
	if len(top) != 2 {
		t.Fatalf("Expected 2 stats, got %d", len(top))
	}
	if top[0].Filename != "exp2-material.pdf" || top[0].Count != 3 {
		t.Errorf("Expected exp2-material.pdf with 3 downloads first, got %s/%d", top[0].Filename, top[0].Count)
	}
	if top[1].Filename != "exp1-guia.pdf" {
		t.Errorf("Expected exp1-guia.pdf second, got %s", top[1].Filename)
	}
}

func TestRecentCommentsMerged(t *testing.T) {
	controller, _ := setupController(t)

	controller.AddComment("Ana", "", "primero", "exp1")
	controller.AddComment("Luis", "", "segundo", "")
	controller.AddComment("Eva", "", "tercero", "exp2")

	recent := controller.RecentComments(2)
	if len(recent) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(recent))
	}
	if recent[0].Text != "tercero" || recent[1].Text != "segundo" {
		t.Errorf("Expected newest first across collections, got %q then %q", recent[0].Text, recent[1].Text)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	controller, _ := setupController(t)

	snapshot := controller.Snapshot()
	snapshot.Experiences[0].Items[0].Count = 999

	if controller.TotalDownloads() != 0 {
		t.Error("Mutating a snapshot must not affect controller state")
	}
}
