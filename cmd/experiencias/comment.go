package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Add a comment",
	Long:  "Add a comment to an experience, or to the global guestbook when no experience is given",
	Run: func(cmd *cobra.Command, args []string) {
		author, _ := cmd.Flags().GetString("author")
		email, _ := cmd.Flags().GetString("email")
		text, _ := cmd.Flags().GetString("text")
		expID, _ := cmd.Flags().GetString("experience")

		controller, _, err := wire()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer controller.Close()

		comment, err := controller.AddComment(author, email, text, expID)
		if err != nil {
			cobra.CheckErr(err)
		}

		fmt.Printf("💬 Comentario guardado (%s, %s)\n", comment.Author, comment.Date)
	},
}

func init() {
	commentCmd.Flags().StringP("author", "a", "", "Author name (blank for anonymous)")
	commentCmd.Flags().StringP("email", "m", "", "Contact email (optional)")
	commentCmd.Flags().StringP("text", "t", "", "Comment text")
	commentCmd.Flags().StringP("experience", "e", "", "Experience id (blank for the guestbook)")
	commentCmd.MarkFlagRequired("text")
}
