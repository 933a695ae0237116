package screens

import (
	"fmt"
	"strings"

	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/app/components"
	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/app/styles"
	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/data"
	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/services"
	tea "github.com/charmbracelet/bubbletea"
)

type DetailsScreen struct {
	controller   *services.CatalogController
	expID        string
	experience   *data.Experience
	selectedItem int
	form         *components.CommentForm
	showForm     bool
	notice       string
	width        int
	height       int
	err          error
}

func NewDetailsScreen(controller *services.CatalogController, expID string) *DetailsScreen {
	return &DetailsScreen{
		controller: controller,
		expID:      expID,
		form:       components.NewCommentForm(),
	}
}

func (s *DetailsScreen) Init() tea.Cmd {
	return s.loadDetails
}

func (s *DetailsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if s.showForm {
			return s.updateForm(msg)
		}

		switch msg.String() {
		case "up", "k":
			if s.selectedItem > 0 {
				s.selectedItem--
			}
		case "down", "j":
			if s.experience != nil && s.selectedItem < len(s.experience.Items)-1 {
				s.selectedItem++
			}
		case "enter", "d":
			return s, s.downloadSelected()
		case "c":
			s.showForm = true
			s.form.Reset()
			return s, s.form.Init()
		case "r":
			return s, s.loadDetails
		case "esc", "backspace", "q":
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "catalog"}
			}
		}

	case detailsLoadedMsg:
		s.experience = msg.experience
		s.err = msg.err
		if s.experience != nil && s.selectedItem >= len(s.experience.Items) {
			s.selectedItem = 0
		}

	case downloadedMsg:
		s.err = msg.err
		if msg.err == nil {
			s.notice = fmt.Sprintf("Descarga registrada: %s", msg.filename)
		}
		return s, s.loadDetails

	case commentAddedMsg:
		s.err = msg.err
		if msg.err == nil {
			s.showForm = false
			s.notice = "¡Gracias por tu comentario!"
		}
		return s, s.loadDetails
	}

	return s, nil
}

func (s *DetailsScreen) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.showForm = false
		return s, nil
	case "tab":
		s.form.NextField()
		return s, nil
	case "enter":
		if s.form.Empty() {
			s.notice = "El comentario no puede estar vacío"
			return s, nil
		}
		return s, s.submitComment()
	}

	cmd := s.form.Update(msg)
	return s, cmd
}

func (s *DetailsScreen) View() string {
	if s.width == 0 || s.experience == nil {
		return "Cargando..."
	}

	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("🎓 %s", s.experience.Title)))
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render(s.experience.MediaURL))
	b.WriteString("\n\n")

	if s.err != nil {
		b.WriteString(styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)))
		b.WriteString("\n\n")
	} else if s.notice != "" {
		b.WriteString(styles.StatusOK.Render(s.notice))
		b.WriteString("\n\n")
	}

	if s.showForm {
		b.WriteString(styles.SubtitleStyle.Render("Deja tu comentario"))
		b.WriteString("\n\n")
		b.WriteString(s.form.View())
		return b.String()
	}

	b.WriteString(styles.SubtitleStyle.Render("Materiales"))
	b.WriteString("\n")
	for i, item := range s.experience.Items {
		line := fmt.Sprintf("%s (%s) — %d descargas", item.Label, item.Filename, item.Count)
		if i == s.selectedItem {
			b.WriteString(styles.SelectedStyle.Render(line))
		} else {
			b.WriteString(styles.TextStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Comentarios (%d)", len(s.experience.Comments))))
	b.WriteString("\n")
	if len(s.experience.Comments) == 0 {
		b.WriteString(styles.MutedStyle.Render("  Todavía no hay comentarios."))
		b.WriteString("\n")
	}
	for _, comment := range s.experience.Comments {
		b.WriteString(styles.TextStyle.Render(fmt.Sprintf("  %s — %s", comment.Author, comment.Date)))
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render("  " + comment.Text))
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpStyle.Render(
		"↑/↓: elegir material • enter: descargar • c: comentar • esc: volver",
	))

	return b.String()
}

// Messages
type detailsLoadedMsg struct {
	experience *data.Experience
	err        error
}

type downloadedMsg struct {
	filename string
	err      error
}

type commentAddedMsg struct {
	err error
}

func (s *DetailsScreen) loadDetails() tea.Msg {
	exp, err := s.controller.Experience(s.expID)
	if err != nil {
		return detailsLoadedMsg{err: err}
	}
	return detailsLoadedMsg{experience: &exp}
}

func (s *DetailsScreen) downloadSelected() tea.Cmd {
	if s.experience == nil || s.selectedItem >= len(s.experience.Items) {
		return nil
	}
	item := s.experience.Items[s.selectedItem]
	return func() tea.Msg {
		err := s.controller.RecordDownload(s.expID, item.ID)
		return downloadedMsg{filename: item.Filename, err: err}
	}
}

func (s *DetailsScreen) submitComment() tea.Cmd {
	author, email, text := s.form.Author(), s.form.Email(), s.form.Text()
	return func() tea.Msg {
		_, err := s.controller.AddComment(author, email, text, s.expID)
		return commentAddedMsg{err: err}
	}
}
