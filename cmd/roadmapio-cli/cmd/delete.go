package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"roadmapio/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a roadmap, section, or topic",
	Long:  `Delete a roadmap, section, or topic. Everything below it is deleted too.`,
}

var deleteRoadmapCmd = &cobra.Command{
	Use:   "roadmap <roadmap-id>",
	Short: "Delete a roadmap and all its sections",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		delCmd := commands.NewDeleteRoadmapCommand(GetStore(), args[0])
		result, err := delCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var deleteSectionCmd = &cobra.Command{
	Use:   "section <section-id>",
	Short: "Delete a section and all its topics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		delCmd := commands.NewDeleteSectionCommand(GetStore(), args[0])
		result, err := delCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var deleteTopicCmd = &cobra.Command{
	Use:   "topic <section-id> <topic-id>",
	Short: "Delete a topic and its sub-topics",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		delCmd := commands.NewDeleteTopicCommand(GetStore(), args[0], args[1])
		result, err := delCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.AddCommand(deleteRoadmapCmd)
	deleteCmd.AddCommand(deleteSectionCmd)
	deleteCmd.AddCommand(deleteTopicCmd)
}
