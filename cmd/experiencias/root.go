package cmd

import (
	"os"

	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/ai"
	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/app"
	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/config"
	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/services"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "experiencias",
	Short: "Catálogo de experiencias de aprendizaje accesibles",
	Long:  "Browse accessible learning experiences, record downloads, leave comments and review usage statistics",
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		controller, insight, err := wire()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer controller.Close()

		a := app.NewApp(controller, insight)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

// wire builds the controller and insight requester from configuration. Every
// subcommand goes through it so they all share one persistence setup.
func wire() (*services.CatalogController, *services.InsightRequester, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	controller, err := services.NewCatalogController(cfg)
	if err != nil {
		return nil, nil, err
	}

	generator := ai.NewGemini(cfg.AI.Endpoint, cfg.AI.Model, cfg.AI.APIKey)
	return controller, services.NewInsightRequester(generator), nil
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
