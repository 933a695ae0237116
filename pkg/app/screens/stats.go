package screens

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/app/styles"
	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/services"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// StatsScreen is the administrator panel: aggregate counters, ranking,
// recent comments, CSV export and the AI summary.
type StatsScreen struct {
	controller *services.CatalogController
	insight    *services.InsightRequester
	spin       spinner.Model
	paragraphs []string
	notice     string
	width      int
	height     int
	err        error
}

func NewStatsScreen(controller *services.CatalogController, insight *services.InsightRequester) *StatsScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StatusBusy

	return &StatsScreen{
		controller: controller,
		insight:    insight,
		spin:       sp,
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "g":
			// Busy flag: a second trigger is ignored while one request is
			// outstanding. Downloads and comments keep working meanwhile.
			if s.insight.Busy() {
				return s, nil
			}
			return s, tea.Batch(s.spin.Tick, s.requestInsight())
		case "c":
			s.insight.Cancel()
		case "x":
			return s, s.exportCSV
		}

	case insightDoneMsg:
		s.paragraphs = msg.paragraphs

	case exportedMsg:
		s.err = msg.err
		if msg.err == nil {
			s.notice = fmt.Sprintf("Exportado a %s", msg.path)
		}

	case spinner.TickMsg:
		if s.insight.Busy() {
			var cmd tea.Cmd
			s.spin, cmd = s.spin.Update(msg)
			return s, cmd
		}
	}

	return s, nil
}

func (s *StatsScreen) View() string {
	if s.width == 0 {
		return "Cargando..."
	}

	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("📊 Panel de estadísticas"))
	b.WriteString("\n\n")

	if s.err != nil {
		b.WriteString(styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)))
		b.WriteString("\n\n")
	} else if s.notice != "" {
		b.WriteString(styles.StatusOK.Render(s.notice))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.TextStyle.Render(fmt.Sprintf(
		"Descargas totales: %d    Comentarios totales: %d",
		s.controller.TotalDownloads(), s.controller.TotalComments(),
	)))
	b.WriteString("\n\n")

	b.WriteString(styles.SubtitleStyle.Render("Materiales más descargados"))
	b.WriteString("\n")
	top := s.controller.TopItems(5)
	if len(top) == 0 {
		b.WriteString(styles.MutedStyle.Render("  Sin datos todavía."))
		b.WriteString("\n")
	}
	for i, stat := range top {
		b.WriteString(styles.TextStyle.Render(fmt.Sprintf(
			"  %d. %s (%s) — %d", i+1, stat.Label, stat.Filename, stat.Count,
		)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.SubtitleStyle.Render("Comentarios recientes"))
	b.WriteString("\n")
	recent := s.controller.RecentComments(5)
	if len(recent) == 0 {
		b.WriteString(styles.MutedStyle.Render("  Sin comentarios todavía."))
		b.WriteString("\n")
	}
	for _, comment := range recent {
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf(
			"  %s (%s): %s", comment.Author, comment.Date, comment.Text,
		)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.SubtitleStyle.Render("Resumen con IA"))
	b.WriteString("\n")
	if s.insight.Busy() {
		b.WriteString(s.spin.View())
		b.WriteString(styles.StatusBusy.Render(" Generando resumen..."))
		b.WriteString("\n")
	} else if len(s.paragraphs) > 0 {
		for _, p := range s.paragraphs {
			b.WriteString(styles.TextStyle.Render("  " + p))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(styles.MutedStyle.Render("  Pulsa g para generar un resumen."))
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpStyle.Render(
		"g: generar resumen • c: cancelar • x: exportar CSV • tab: catálogo • q: salir",
	))

	return b.String()
}

// Messages
type insightDoneMsg struct {
	paragraphs []string
}

type exportedMsg struct {
	path string
	err  error
}

func (s *StatsScreen) requestInsight() tea.Cmd {
	snapshot := s.controller.Snapshot()
	return func() tea.Msg {
		paragraphs, err := s.insight.Request(context.Background(), snapshot)
		if err != nil {
			// Another request won the race; keep whatever it produced.
			return insightDoneMsg{paragraphs: s.insight.Result()}
		}
		return insightDoneMsg{paragraphs: paragraphs}
	}
}

func (s *StatsScreen) exportCSV() tea.Msg {
	blob := services.DetailedCSV(s.controller.Snapshot())
	if err := os.WriteFile(services.ExportFilename, []byte(blob), 0o644); err != nil {
		return exportedMsg{err: err}
	}
	return exportedMsg{path: services.ExportFilename}
}
