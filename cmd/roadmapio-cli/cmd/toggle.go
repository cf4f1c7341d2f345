package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"roadmapio/internal/application/commands"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <section-id> <topic-id>",
	Short: "Flip a topic between complete and open",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		toggleCmd := commands.NewToggleTopicCommand(GetStore(), args[0], args[1])
		result, err := toggleCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var linkCmd = &cobra.Command{
	Use:   "link <section-id> <topic-id> [post-id]",
	Short: "Link a topic to a blog post, or clear the link",
	Long: `Link a topic to a blog post by ID. Omit the post ID to clear an
existing link. The reference is stored as-is and never validated.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID := ""
		if len(args) == 3 {
			postID = args[2]
		}

		ctx := context.Background()
		linkCmd := commands.NewAssignPostCommand(GetStore(), args[0], args[1], postID)
		result, err := linkCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(linkCmd)
}
