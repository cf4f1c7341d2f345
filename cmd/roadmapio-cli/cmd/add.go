package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"roadmapio/internal/application/commands"
)

var (
	addRoadmapLanguage    string
	addRoadmapDescription string
	addSectionDescription string
	addTopicParent        string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a roadmap, section, or topic",
}

var addRoadmapCmd = &cobra.Command{
	Use:   "roadmap <title>",
	Short: "Create a new roadmap",
	Long: `Create a new roadmap. The language is created on first use.

Examples:
  roadmapio-cli add roadmap "Go Roadmap" --language Go
  roadmapio-cli add roadmap "Discrete Math"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		addCmd := commands.NewAddRoadmapCommand(GetStore(), addRoadmapLanguage, args[0], addRoadmapDescription)
		result, err := addCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s (ID: %s)\n", result.Message, result.RoadmapID)
		return nil
	},
}

var addSectionCmd = &cobra.Command{
	Use:   "section <roadmap-id> <title>",
	Short: "Append a section to a roadmap",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		addCmd := commands.NewAddSectionCommand(GetStore(), args[0], args[1], addSectionDescription)
		result, err := addCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s (ID: %s)\n", result.Message, result.SectionID)
		return nil
	},
}

var addTopicCmd = &cobra.Command{
	Use:   "topic <section-id> <title>",
	Short: "Append a topic to a section",
	Long: `Append a topic to a section. With --parent the new topic becomes a
sub-topic of an existing topic; sub-topics do not count toward progress.

Examples:
  roadmapio-cli add topic <section-id> "Slices"
  roadmapio-cli add topic <section-id> "Capacity" --parent <topic-id>`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if addTopicParent != "" {
			addCmd := commands.NewAddSubTopicCommand(GetStore(), args[0], addTopicParent, args[1])
			result, err := addCmd.Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%s (ID: %s)\n", result.Message, result.TopicID)
			return nil
		}

		addCmd := commands.NewAddTopicCommand(GetStore(), args[0], args[1])
		result, err := addCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s (ID: %s)\n", result.Message, result.TopicID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.AddCommand(addRoadmapCmd)
	addCmd.AddCommand(addSectionCmd)
	addCmd.AddCommand(addTopicCmd)

	addRoadmapCmd.Flags().StringVarP(&addRoadmapLanguage, "language", "l", "General", "language or subject name")
	addRoadmapCmd.Flags().StringVar(&addRoadmapDescription, "description", "", "roadmap description")
	addSectionCmd.Flags().StringVar(&addSectionDescription, "description", "", "section description")
	addTopicCmd.Flags().StringVarP(&addTopicParent, "parent", "p", "", "parent topic ID (creates a sub-topic)")
}
