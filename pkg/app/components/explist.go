package components

import (
	"fmt"
	"strings"

	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/app/styles"
	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/data"
	"github.com/charmbracelet/lipgloss"
)

type ExperienceListItem struct {
	Experience *data.Experience
	Downloads  int
	Comments   int
}

type ExperienceList struct {
	Items         []ExperienceListItem
	SelectedIndex int
	Width         int
	Height        int
}

func NewExperienceList() *ExperienceList {
	return &ExperienceList{
		Items:         []ExperienceListItem{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
	}
}

func (l *ExperienceList) SetItems(items []ExperienceListItem) {
	l.Items = items
	if l.SelectedIndex >= len(items) && len(items) > 0 {
		l.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		l.SelectedIndex = 0
	}
}

func (l *ExperienceList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex++
	if l.SelectedIndex >= len(l.Items) {
		l.SelectedIndex = 0
	}
}

func (l *ExperienceList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex--
	if l.SelectedIndex < 0 {
		l.SelectedIndex = len(l.Items) - 1
	}
}

func (l *ExperienceList) Selected() *ExperienceListItem {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return &l.Items[l.SelectedIndex]
}

func (l *ExperienceList) View() string {
	if len(l.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No hay experiencias en el catálogo")
		return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	for i, item := range l.Items {
		cardStyle := styles.CardStyle
		if i == l.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		title := styles.TextStyle.Render(item.Experience.Title)
		meta := styles.MutedStyle.Render(fmt.Sprintf(
			"%s · %d archivos · %d descargas · %d comentarios",
			item.Experience.Type, len(item.Experience.Items), item.Downloads, item.Comments,
		))

		card := cardStyle.Width(l.Width - 4).Render(title + "\n" + meta)
		b.WriteString(card)
		b.WriteString("\n")
	}

	return b.String()
}
