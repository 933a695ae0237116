package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var downloadCmd = &cobra.Command{
	Use:   "download [experience-id] [item-id]",
	Short: "Record a download",
	Long:  "Increment the download counter of one item and persist the catalog",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		controller, _, err := wire()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer controller.Close()

		if err := controller.RecordDownload(args[0], args[1]); err != nil {
			cobra.CheckErr(err)
		}

		exp, err := controller.Experience(args[0])
		if err != nil {
			cobra.CheckErr(err)
		}
		for _, item := range exp.Items {
			if item.ID == args[1] {
				fmt.Printf("⬇️  %s: %d descargas\n", item.Filename, item.Count)
			}
		}
	},
}
