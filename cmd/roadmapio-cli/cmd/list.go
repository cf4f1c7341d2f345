package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"roadmapio/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list [roadmaps|sections|topics] [parent-id]",
	Short: "List roadmaps, sections, or topics",
	Long: `List roadmaps, the sections of a roadmap, or the topics of a section.

Examples:
  roadmapio-cli list roadmaps
  roadmapio-cli list sections <roadmap-id>
  roadmapio-cli list topics <section-id>`,
}

var listRoadmapsCmd = &cobra.Command{
	Use:   "roadmaps",
	Short: "List all roadmaps",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, r := range GetStore().Roadmaps() {
			progress := GetStore().RoadmapProgress(r.ID)
			language := ""
			if lang := GetStore().Language(r.LanguageID); lang != nil {
				language = lang.Name
			}
			fmt.Printf("%s  %-30s  %-12s  %3d%%\n", r.ID, r.Title, language, progress.Percentage)
		}
		return nil
	},
}

var listSectionsCmd = &cobra.Command{
	Use:   "sections <roadmap-id>",
	Short: "List sections of a roadmap",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if GetStore().Roadmap(args[0]) == nil {
			return fmt.Errorf("no roadmap with ID %s", args[0])
		}
		for _, s := range GetStore().Sections(args[0]) {
			progress := GetStore().SectionProgress(s.ID)
			fmt.Printf("%s  %-30s  %d/%d\n", s.ID, s.Title, progress.Completed, progress.Total)
		}
		return nil
	},
}

var listTopicsCmd = &cobra.Command{
	Use:   "topics <section-id>",
	Short: "List topics of a section",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		section := GetStore().Section(args[0])
		if section == nil {
			return fmt.Errorf("no section with ID %s", args[0])
		}
		for _, topic := range section.Topics {
			printTopic(topic, "")
		}
		return nil
	},
}

func printTopic(topic *domain.Topic, indent string) {
	mark := "[ ]"
	if topic.Completed {
		mark = "[x]"
	}
	fmt.Printf("%s%s %s  %s\n", indent, mark, topic.ID, topic.Title)
	for _, sub := range topic.SubTopics {
		printTopic(sub, indent+"  ")
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listRoadmapsCmd)
	listCmd.AddCommand(listSectionsCmd)
	listCmd.AddCommand(listTopicsCmd)
}
