package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"roadmapio/internal/application/commands"
	"roadmapio/internal/domain"
	"roadmapio/internal/ports"
)

// RegisterReadTools adds all read-only roadmap tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.RoadmapStore) {
	s.AddTool(listTool(), listHandler(store))
	s.AddTool(treeTool(), treeHandler(store))
	s.AddTool(progressTool(), progressHandler(store))
	s.AddTool(exportTool(), exportHandler(store))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List roadmaps. With a roadmap ID lists its sections; with a section ID lists its topics."),
		mcp.WithString("parent_id",
			mcp.Description("Roadmap or section ID to list children of. Omit to list all roadmaps."),
		),
	)
}

func listHandler(store ports.RoadmapStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		parentID := req.GetString("parent_id", "")

		if parentID == "" {
			roadmaps := store.Roadmaps()
			if len(roadmaps) == 0 {
				return mcp.NewToolResultText("No roadmaps."), nil
			}
			var sb strings.Builder
			for _, r := range roadmaps {
				progress := store.RoadmapProgress(r.ID)
				fmt.Fprintf(&sb, "%s  %s  %d%%\n", r.ID, r.Title, progress.Percentage)
			}
			return mcp.NewToolResultText(sb.String()), nil
		}

		if store.Roadmap(parentID) != nil {
			sections := store.Sections(parentID)
			if len(sections) == 0 {
				return mcp.NewToolResultText("No sections."), nil
			}
			var sb strings.Builder
			for _, sec := range sections {
				progress := store.SectionProgress(sec.ID)
				fmt.Fprintf(&sb, "%s  %s  %d/%d\n", sec.ID, sec.Title, progress.Completed, progress.Total)
			}
			return mcp.NewToolResultText(sb.String()), nil
		}

		if section := store.Section(parentID); section != nil {
			if len(section.Topics) == 0 {
				return mcp.NewToolResultText("No topics."), nil
			}
			var sb strings.Builder
			for _, topic := range section.Topics {
				writeTopic(&sb, topic, "")
			}
			return mcp.NewToolResultText(sb.String()), nil
		}

		return toolError(fmt.Errorf("no roadmap or section with ID %s", parentID))
	}
}

func writeTopic(sb *strings.Builder, topic *domain.Topic, indent string) {
	mark := "[ ]"
	if topic.Completed {
		mark = "[x]"
	}
	fmt.Fprintf(sb, "%s%s %s  %s\n", indent, mark, topic.ID, topic.Title)
	for _, sub := range topic.SubTopics {
		writeTopic(sb, sub, indent+"  ")
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display all roadmaps, sections and topics as a tree with progress."),
	)
}

func treeHandler(store ports.RoadmapStore) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root := store.BuildTree()
		var sb strings.Builder
		renderTree(&sb, root, "")
		if sb.Len() == 0 {
			return mcp.NewToolResultText("No roadmaps."), nil
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
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

// --- progress ---

func progressTool() mcp.Tool {
	return mcp.NewTool("progress",
		mcp.WithDescription("Show completion progress for a roadmap or section."),
		mcp.WithString("id",
			mcp.Description("Roadmap or section ID"),
			mcp.Required(),
		),
	)
}

func progressHandler(store ports.RoadmapStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		if roadmap := store.Roadmap(id); roadmap != nil {
			p := store.RoadmapProgress(id)
			return mcp.NewToolResultText(fmt.Sprintf("%s: %d/%d topics complete (%d%%)", roadmap.Title, p.Completed, p.Total, p.Percentage)), nil
		}
		if section := store.Section(id); section != nil {
			p := store.SectionProgress(id)
			return mcp.NewToolResultText(fmt.Sprintf("%s: %d/%d topics complete (%d%%)", section.Title, p.Completed, p.Total, p.Percentage)), nil
		}

		return toolError(fmt.Errorf("no roadmap or section with ID %s", id))
	}
}

// --- export ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export",
		mcp.WithDescription("Export a roadmap as a portable JSON document."),
		mcp.WithString("roadmap_id",
			mcp.Description("Roadmap ID to export"),
			mcp.Required(),
		),
	)
}

func exportHandler(store ports.RoadmapStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		roadmapID := req.GetString("roadmap_id", "")

		cmd := commands.NewExportCommand(store, roadmapID)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(string(result.JSON)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
