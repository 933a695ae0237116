package screens

import (
	"fmt"

	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/app/styles"
	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/services"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screenType int

const (
	catalogView screenType = iota
	statsView
	detailsView
)

// SwitchScreenMsg asks the root screen to change the active view.
type SwitchScreenMsg struct {
	Screen string
	Data   any
}

type RootScreen struct {
	controller *services.CatalogController
	insight    *services.InsightRequester

	currentView screenType
	catalog     *CatalogScreen
	stats       *StatsScreen
	details     *DetailsScreen

	width  int
	height int
}

func NewRootScreen(controller *services.CatalogController, insight *services.InsightRequester) *RootScreen {
	return &RootScreen{
		controller:  controller,
		insight:     insight,
		currentView: catalogView,
		catalog:     NewCatalogScreen(controller),
		stats:       NewStatsScreen(controller, insight),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.catalog.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			// The details screen uses q to navigate back
			if r.currentView != detailsView {
				return r, tea.Quit
			}
		case "tab":
			if r.currentView == detailsView {
				// esc leaves details, tab is reserved for its form
				break
			}
			r.currentView = (r.currentView + 1) % 2
			if r.currentView == statsView {
				cmd = r.stats.Init()
			} else {
				cmd = r.catalog.Init()
			}
			return r, cmd
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "catalog":
			r.currentView = catalogView
			cmd = r.catalog.Init()
		case "stats":
			r.currentView = statsView
			cmd = r.stats.Init()
		case "details":
			if expID, ok := msg.Data.(string); ok {
				r.details = NewDetailsScreen(r.controller, expID)
				r.currentView = detailsView
				cmd = r.details.Init()
			}
		}
		return r, cmd
	}

	switch r.currentView {
	case catalogView:
		newModel, newCmd := r.catalog.Update(msg)
		r.catalog = newModel.(*CatalogScreen)
		return r, newCmd
	case statsView:
		newModel, newCmd := r.stats.Update(msg)
		r.stats = newModel.(*StatsScreen)
		return r, newCmd
	case detailsView:
		if r.details != nil {
			newModel, newCmd := r.details.Update(msg)
			r.details = newModel.(*DetailsScreen)
			return r, newCmd
		}
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	tabs := r.renderTabs()

	var content string
	switch r.currentView {
	case catalogView:
		content = r.catalog.View()
	case statsView:
		content = r.stats.View()
	case detailsView:
		if r.details != nil {
			content = r.details.View()
		}
	}

	return fmt.Sprintf("%s\n\n%s", tabs, content)
}

func (r *RootScreen) renderTabs() string {
	if r.currentView == detailsView {
		return ""
	}

	catalogTab := "Catálogo"
	statsTab := "Estadísticas"

	if r.currentView == catalogView {
		catalogTab = styles.ActiveTabStyle.Render(catalogTab)
		statsTab = styles.InactiveTabStyle.Render(statsTab)
	} else {
		catalogTab = styles.InactiveTabStyle.Render(catalogTab)
		statsTab = styles.ActiveTabStyle.Render(statsTab)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, catalogTab, statsTab)
}
