package screens

import (
	"fmt"

	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/app/components"
	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/app/styles"
	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/services"
	tea "github.com/charmbracelet/bubbletea"
)

type CatalogScreen struct {
	controller *services.CatalogController
	expList    *components.ExperienceList
	width      int
	height     int
	err        error
}

func NewCatalogScreen(controller *services.CatalogController) *CatalogScreen {
	return &CatalogScreen{
		controller: controller,
		expList:    components.NewExperienceList(),
	}
}

func (s *CatalogScreen) Init() tea.Cmd {
	return s.loadCatalog
}

func (s *CatalogScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.expList.Width = msg.Width - 4
		s.expList.Height = msg.Height - 10

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.expList.Prev()
		case "down", "j":
			s.expList.Next()
		case "r":
			return s, s.loadCatalog
		case "enter":
			selected := s.expList.Selected()
			if selected != nil {
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "details", Data: selected.Experience.ID}
				}
			}
		}

	case catalogLoadedMsg:
		s.expList.SetItems(msg.items)
		s.err = msg.err
	}

	return s, nil
}

func (s *CatalogScreen) View() string {
	if s.width == 0 {
		return "Cargando..."
	}

	header := styles.TitleStyle.Render("📚 Experiencias de aprendizaje")

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err))
		errorMsg += "\n\n"
	}

	listView := s.expList.View()

	help := styles.HelpStyle.Render(
		"↑/k: subir • ↓/j: bajar • enter: ver detalle • r: recargar • tab: estadísticas • q: salir",
	)

	return fmt.Sprintf("%s\n\n%s%s\n%s", header, errorMsg, listView, help)
}

// Messages
type catalogLoadedMsg struct {
	items []components.ExperienceListItem
	err   error
}

func (s *CatalogScreen) loadCatalog() tea.Msg {
	experiences := s.controller.Experiences()

	items := make([]components.ExperienceListItem, 0, len(experiences))
	for i := range experiences {
		exp := experiences[i]
		downloads := 0
		for _, item := range exp.Items {
			downloads += item.Count
		}
		items = append(items, components.ExperienceListItem{
			Experience: &exp,
			Downloads:  downloads,
			Comments:   len(exp.Comments),
		})
	}

	return catalogLoadedMsg{items: items}
}
