package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"roadmapio/internal/application/commands"
)

var moveCmd = &cobra.Command{
	Use:   "move <section-id> <topic-id> <target-topic-id>",
	Short: "Move a topic to another topic's position",
	Long: `Move a top-level topic to the position of another topic in the same
section. The remaining topics keep their relative order and are
renumbered 1..n.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		moveCmd := commands.NewMoveTopicCommand(GetStore(), args[0], args[1], args[2])
		result, err := moveCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var reorderCmd = &cobra.Command{
	Use:   "reorder",
	Short: "Reorder the children of a roadmap or section",
}

var reorderTopicsCmd = &cobra.Command{
	Use:   "topics <section-id> <topic-id>...",
	Short: "Reorder the topics of a section",
	Long: `Reorder the topics of a section by listing topic IDs in the desired
order. Topics omitted from the list keep their relative order at the
end.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		reorderCmd := commands.NewReorderTopicsCommand(GetStore(), args[0], args[1:])
		result, err := reorderCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var reorderSectionsCmd = &cobra.Command{
	Use:   "sections <roadmap-id> <section-id>...",
	Short: "Reorder the sections of a roadmap",
	Long: `Reorder the sections of a roadmap by listing section IDs in the
desired order. Sections omitted from the list keep their relative
order at the end.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		reorderCmd := commands.NewReorderSectionsCommand(GetStore(), args[0], args[1:])
		result, err := reorderCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(reorderCmd)
	reorderCmd.AddCommand(reorderTopicsCmd)
	reorderCmd.AddCommand(reorderSectionsCmd)
}
