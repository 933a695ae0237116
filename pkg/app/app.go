package app

import (
	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/app/screens"
	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/services"
	tea "github.com/charmbracelet/bubbletea"
)

type App struct {
	controller *services.CatalogController
	insight    *services.InsightRequester
}

func NewApp(controller *services.CatalogController, insight *services.InsightRequester) *App {
	return &App{controller: controller, insight: insight}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.controller, a.insight)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
