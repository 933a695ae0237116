package cmd

import (
	"fmt"
	"os"

	"github.com/Ivette-Garcia-32/experiencias-de-aprendizaje/pkg/services"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export usage statistics as CSV",
	Long:  "Write the catalog and engagement state to a comma-separated file",
	Run: func(cmd *cobra.Command, args []string) {
		detailed, _ := cmd.Flags().GetBool("detailed")
		output, _ := cmd.Flags().GetString("output")

		controller, _, err := wire()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer controller.Close()

		snapshot := controller.Snapshot()
		var blob string
		if detailed {
			blob = services.DetailedCSV(snapshot)
		} else {
			blob = services.SummaryCSV(snapshot)
		}

		if err := os.WriteFile(output, []byte(blob), 0o644); err != nil {
			cobra.CheckErr(fmt.Errorf("export failed: %w", err))
		}

		fmt.Printf("📄 Exportado a %s\n", output)
	},
}

func init() {
	exportCmd.Flags().BoolP("detailed", "d", false, "Per-item and per-comment layout instead of the per-experience summary")
	exportCmd.Flags().StringP("output", "o", services.ExportFilename, "Output file")
}
