package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/ai"
	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/data"
)

// E2E tests for the full browse-download-comment-report flow

func TestE2E_DownloadCommentExport(t *testing.T) {
	dir := t.TempDir()

	store, err := data.NewFileStore(dir)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	controller, err := NewCatalogControllerWithRepo(data.NewRepository(store))
	if err != nil {
		t.Fatalf("Failed to create controller: %v", err)
	}

	// Seed state: exp1-guia.pdf starts at zero
	exp, err := controller.Experience("exp1")
	if err != nil {
		t.Fatalf("Experience failed: %v", err)
	}
	if exp.Items[0].Count != 0 {
		t.Fatalf("Expected seed count 0, got %d", exp.Items[0].Count)
	}

	// One download, one comment
	if err := controller.RecordDownload("exp1", "guia"); err != nil {
		t.Fatalf("RecordDownload failed: %v", err)
	}
	if _, err := controller.AddComment("Ana", "", "Muy útil", "exp1"); err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}

	// Simulate a restart: a fresh controller over the same files
	store2, err := data.NewFileStore(dir)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	reloaded, err := NewCatalogControllerWithRepo(data.NewRepository(store2))
	if err != nil {
		t.Fatalf("Failed to reload controller: %v", err)
	}

	exp, err = reloaded.Experience("exp1")
	if err != nil {
		t.Fatalf("Experience failed after reload: %v", err)
	}
	guiaCount := -1
	for _, item := range exp.Items {
		if item.Filename == "exp1-guia.pdf" {
			guiaCount = item.Count
		}
	}
	if guiaCount != 1 {
		t.Errorf("Expected exp1-guia.pdf count 1 after reload, got %d", guiaCount)
	}
	if len(exp.Comments) != 1 || exp.Comments[0].Author != "Ana" {
		t.Errorf("Expected Ana's comment to survive reload, got %+v", exp.Comments)
	}

	// Export reflects the same state
	csvText := DetailedCSV(reloaded.Snapshot())
	if !strings.Contains(csvText, "exp1-guia.pdf,1") {
		t.Error("Expected export to carry the persisted counter")
	}
	if !strings.Contains(csvText, `"Muy útil"`) {
		t.Error("Expected export to carry the comment")
	}
}

func TestE2E_InsightAgainstFailingService(t *testing.T) {
	// Collaborator always errors
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom"}}`))
	}))
	defer server.Close()

	requester := NewInsightRequester(ai.NewGemini(server.URL, "gemini-1.5-flash", "clave"))

	paragraphs, err := requester.Request(context.Background(), data.SeedCatalog())
	if err != nil {
		t.Fatalf("Request returned unexpected error: %v", err)
	}
	if len(paragraphs) != 1 || paragraphs[0] != InsightFallback {
		t.Errorf("Expected the fixed fallback message, got %v", paragraphs)
	}
	if requester.Busy() {
		t.Error("Expected busy flag cleared after failure")
	}
}

func TestE2E_InsightAgainstWorkingService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Actividad baja.\nSin comentarios aún."}]}}]}`))
	}))
	defer server.Close()

	requester := NewInsightRequester(ai.NewGemini(server.URL, "gemini-1.5-flash", "clave"))

	paragraphs, err := requester.Request(context.Background(), data.SeedCatalog())
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if len(paragraphs) != 2 {
		t.Fatalf("Expected 2 paragraphs, got %d", len(paragraphs))
	}
	if requester.State() != InsightSucceeded {
		t.Errorf("Expected succeeded state, got %s", requester.State())
	}
}
