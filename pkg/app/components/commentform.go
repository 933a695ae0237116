package components

import (
	"strings"

	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/app/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CommentForm is the three-field comment input: name, optional email, text.
// Tab cycles focus; the screen owning the form decides when to submit.
type CommentForm struct {
	inputs  []textinput.Model
	focused int
}

const (
	fieldAuthor = iota
	fieldEmail
	fieldText
)

func NewCommentForm() *CommentForm {
	author := textinput.New()
	author.Placeholder = "Tu nombre (opcional)"
	author.CharLimit = 60
	author.Width = 40
	author.Focus()

	email := textinput.New()
	email.Placeholder = "Correo (opcional)"
	email.CharLimit = 80
	email.Width = 40

	text := textinput.New()
	text.Placeholder = "Escribe tu comentario..."
	text.CharLimit = 500
	text.Width = 60

	return &CommentForm{inputs: []textinput.Model{author, email, text}}
}

func (f *CommentForm) Init() tea.Cmd {
	return textinput.Blink
}

// NextField moves focus to the following input, wrapping around.
func (f *CommentForm) NextField() {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused + 1) % len(f.inputs)
	f.inputs[f.focused].Focus()
}

func (f *CommentForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return cmd
}

func (f *CommentForm) Author() string { return f.inputs[fieldAuthor].Value() }
func (f *CommentForm) Email() string  { return f.inputs[fieldEmail].Value() }
func (f *CommentForm) Text() string   { return f.inputs[fieldText].Value() }

// Empty reports whether the comment text is blank after trimming.
func (f *CommentForm) Empty() bool {
	return strings.TrimSpace(f.Text()) == ""
}

func (f *CommentForm) Reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focused = fieldAuthor
	f.inputs[fieldAuthor].Focus()
}

func (f *CommentForm) View() string {
	var b strings.Builder

	labels := []string{"Nombre", "Correo", "Comentario"}
	for i, input := range f.inputs {
		b.WriteString(styles.SubtitleStyle.Render(labels[i]))
		b.WriteString("\n")
		style := styles.InputStyle
		if i == f.focused {
			style = styles.FocusedInputStyle
		}
		b.WriteString(style.Render(input.View()))
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpStyle.Render("tab: siguiente campo • enter: enviar • esc: cancelar"))
	return b.String()
}
