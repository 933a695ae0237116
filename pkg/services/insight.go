package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/ai"
	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/data"
)

// InsightFallback is shown whenever the generation call fails, regardless of
// cause.
const InsightFallback = "No se pudo generar el resumen automático. Inténtalo de nuevo más tarde."

// ErrInsightInFlight is returned when a request is refused because another
// one is still outstanding.
var ErrInsightInFlight = fmt.Errorf("insight request already in flight")

type InsightState int

const (
	InsightIdle InsightState = iota
	InsightInFlight
	InsightSucceeded
	InsightFailed
)

func (s InsightState) String() string {
	switch s {
	case InsightInFlight:
		return "in-flight"
	case InsightSucceeded:
		return "succeeded"
	case InsightFailed:
		return "failed"
	default:
		return "idle"
	}
}

const (
	insightTopItems       = 3
	insightRecentComments = 5
)

type insightItem struct {
	Archivo   string `json:"archivo"`
	Descargas int    `json:"descargas"`
}

type insightSummary struct {
	TotalDescargas       int           `json:"totalDescargas"`
	TotalComentarios     int           `json:"totalComentarios"`
	ArchivosMasBajados   []insightItem `json:"archivosMasDescargados"`
	ComentariosRecientes []string      `json:"comentariosRecientes"`
}

// BuildInsightPrompt embeds the aggregate summary as JSON into the
// instruction template sent to the text-generation service. Pure over the
// snapshot.
func BuildInsightPrompt(catalog data.Catalog) string {
	summary := insightSummary{
		TotalDescargas:       catalogDownloads(catalog),
		TotalComentarios:     catalogComments(catalog),
		ArchivosMasBajados:   []insightItem{},
		ComentariosRecientes: []string{},
	}
	for _, stat := range catalogTopItems(catalog, insightTopItems) {
		summary.ArchivosMasBajados = append(summary.ArchivosMasBajados, insightItem{
			Archivo:   stat.Filename,
			Descargas: stat.Count,
		})
	}
	for _, comment := range catalogRecentComments(catalog, insightRecentComments) {
		summary.ComentariosRecientes = append(summary.ComentariosRecientes, comment.Text)
	}

	blob, _ := json.Marshal(summary)

	return fmt.Sprintf(
		"Eres el asistente de un catálogo de experiencias de aprendizaje accesibles. "+
			"A partir de estos datos de uso en JSON, redacta un informe breve en español "+
			"con tres apartados: actividad general, materiales más descargados y tono de "+
			"los comentarios. Máximo 120 palabras.\n\nDatos: %s", blob)
}

// InsightRequester wraps the external text-generation collaborator in an
// explicit state machine. At most one request is outstanding at a time;
// refusals leave the previous result untouched.
type InsightRequester struct {
	mu        sync.Mutex
	generator ai.Generator
	state     InsightState
	result    []string
	cancel    context.CancelFunc
}

func NewInsightRequester(generator ai.Generator) *InsightRequester {
	return &InsightRequester{generator: generator, state: InsightIdle}
}

func (r *InsightRequester) State() InsightState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Result returns the last outcome as display paragraphs. After a failure it
// holds only the fallback message.
func (r *InsightRequester) Result() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.result...)
}

// Request runs one generation call to completion over the given snapshot.
// It blocks until the collaborator answers, the context is cancelled, or
// Cancel is called. Failures of any kind collapse into the fallback text.
func (r *InsightRequester) Request(ctx context.Context, catalog data.Catalog) ([]string, error) {
	r.mu.Lock()
	if r.state == InsightInFlight {
		r.mu.Unlock()
		return nil, ErrInsightInFlight
	}
	ctx, cancel := context.WithCancel(ctx)
	r.state = InsightInFlight
	r.cancel = cancel
	r.mu.Unlock()

	text, err := r.generator.Generate(ctx, BuildInsightPrompt(catalog))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancel = nil
	cancel()

	if err != nil {
		slog.Warn("insight generation failed", "error", err)
		r.state = InsightFailed
		r.result = []string{InsightFallback}
		return append([]string(nil), r.result...), nil
	}

	r.state = InsightSucceeded
	r.result = splitParagraphs(text)
	return append([]string(nil), r.result...), nil
}

// Cancel aborts an in-flight request, if any. The pending Request call then
// returns the fallback like any other failure.
func (r *InsightRequester) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
}

// Busy reports whether a request is outstanding. The UI uses it to disable
// the trigger without blocking unrelated mutations.
func (r *InsightRequester) Busy() bool {
	return r.State() == InsightInFlight
}

func splitParagraphs(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	if len(out) == 0 {
		out = []string{InsightFallback}
	}
	return out
}
