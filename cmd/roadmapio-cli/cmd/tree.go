package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"roadmapio/internal/domain"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display all roadmaps as a tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		root := GetStore().BuildTree()
		var sb strings.Builder
		renderTree(&sb, root, "")
		if sb.Len() == 0 {
			fmt.Println("No roadmaps.")
			return nil
		}
		fmt.Print(sb.String())
		return nil
	},
}

func renderTree(sb *strings.Builder, node *domain.TreeNode, prefix string) {
	if node.Kind != domain.NodeRoot {
		switch node.Kind {
		case domain.NodeTopic:
			mark := "[ ]"
			if node.Completed {
				mark = "[x]"
			}
			fmt.Fprintf(sb, "%s%s %s\n", prefix, mark, node.Title)
		default:
			fmt.Fprintf(sb, "%s%s (%d%%)\n", prefix, node.Title, node.Progress.Percentage)
		}
		prefix += "  "
	}
	for _, child := range node.Children {
		renderTree(sb, child, prefix)
	}
}

var progressCmd = &cobra.Command{
	Use:   "progress <roadmap-or-section-id>",
	Short: "Show completion progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if roadmap := GetStore().Roadmap(id); roadmap != nil {
			p := GetStore().RoadmapProgress(id)
			fmt.Printf("%s: %d/%d topics complete (%d%%)\n", roadmap.Title, p.Completed, p.Total, p.Percentage)
			return nil
		}
		if section := GetStore().Section(id); section != nil {
			p := GetStore().SectionProgress(id)
			fmt.Printf("%s: %d/%d topics complete (%d%%)\n", section.Title, p.Completed, p.Total, p.Percentage)
			return nil
		}
		return fmt.Errorf("no roadmap or section with ID %s", id)
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(progressCmd)
}
