package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate usage statistics",
	Long:  "Print download and comment totals, the most downloaded items and the latest comments",
	Run: func(cmd *cobra.Command, args []string) {
		withInsight, _ := cmd.Flags().GetBool("insight")

		controller, insight, err := wire()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer controller.Close()

		fmt.Printf("Descargas totales:   %d\n", controller.TotalDownloads())
		fmt.Printf("Comentarios totales: %d\n\n", controller.TotalComments())

		fmt.Println("Materiales más descargados:")
		for i, stat := range controller.TopItems(5) {
			fmt.Printf("  %d. %s (%s) — %d\n", i+1, stat.Label, stat.Filename, stat.Count)
		}

		fmt.Println("\nComentarios recientes:")
		for _, comment := range controller.RecentComments(5) {
			fmt.Printf("  %s (%s): %s\n", comment.Author, comment.Date, comment.Text)
		}

		if !withInsight {
			return
		}

		fmt.Println("\nGenerando resumen con IA...")
		paragraphs, err := insight.Request(context.Background(), controller.Snapshot())
		if err != nil {
			cobra.CheckErr(err)
		}
		fmt.Println()
		for _, p := range paragraphs {
			fmt.Println(p)
		}
	},
}

func init() {
	statsCmd.Flags().BoolP("insight", "i", false, "Also request an AI-generated summary")
}
