package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the experience catalog",
	Long:  "Display every experience with its download and comment totals in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		controller, _, err := wire()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer controller.Close()

		experiences := controller.Experiences()
		if len(experiences) == 0 {
			fmt.Println("📚 El catálogo está vacío.")
			return
		}

		columns := []table.Column{
			{Title: "ID", Width: 6},
			{Title: "Título", Width: 48},
			{Title: "Tipo", Width: 8},
			{Title: "Descargas", Width: 10},
			{Title: "Comentarios", Width: 12},
		}

		rows := []table.Row{}
		for _, exp := range experiences {
			downloads := 0
			for _, item := range exp.Items {
				downloads += item.Count
			}
			rows = append(rows, table.Row{
				exp.ID,
				truncateString(exp.Title, 46),
				exp.Type,
				fmt.Sprintf("%d", downloads),
				fmt.Sprintf("%d", len(exp.Comments)),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n📚 Catálogo (%d experiencias)\n\n", len(experiences))
		fmt.Println(t.View())
	},
}
