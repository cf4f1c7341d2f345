package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"roadmapio/internal/application/commands"
	"roadmapio/internal/ports"
)

// RegisterWriteTools adds all mutating roadmap tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.RoadmapStore) {
	s.AddTool(addRoadmapTool(), addRoadmapHandler(store))
	s.AddTool(addSectionTool(), addSectionHandler(store))
	s.AddTool(addTopicTool(), addTopicHandler(store))
	s.AddTool(toggleTopicTool(), toggleTopicHandler(store))
	s.AddTool(deleteTool(), deleteHandler(store))
	s.AddTool(reorderTopicsTool(), reorderTopicsHandler(store))
	s.AddTool(reorderSectionsTool(), reorderSectionsHandler(store))
	s.AddTool(importTool(), importHandler(store))
}

// --- add_roadmap ---

func addRoadmapTool() mcp.Tool {
	return mcp.NewTool("add_roadmap",
		mcp.WithDescription("Create a new roadmap. The language is created on first use."),
		mcp.WithString("title",
			mcp.Description("Roadmap title"),
			mcp.Required(),
		),
		mcp.WithString("language",
			mcp.Description("Language or subject name (e.g. Go, Python). Defaults to General."),
		),
		mcp.WithString("description",
			mcp.Description("Optional roadmap description"),
		),
	)
}

func addRoadmapHandler(store ports.RoadmapStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title := req.GetString("title", "")
		language := req.GetString("language", "General")
		description := req.GetString("description", "")

		cmd := commands.NewAddRoadmapCommand(store, language, title, description)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("%s (ID: %s)", result.Message, result.RoadmapID)), nil
	}
}

// --- add_section ---

func addSectionTool() mcp.Tool {
	return mcp.NewTool("add_section",
		mcp.WithDescription("Append a section to a roadmap."),
		mcp.WithString("roadmap_id",
			mcp.Description("Roadmap ID"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("Section title"),
			mcp.Required(),
		),
		mcp.WithString("description",
			mcp.Description("Optional section description"),
		),
	)
}

func addSectionHandler(store ports.RoadmapStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		roadmapID := req.GetString("roadmap_id", "")
		title := req.GetString("title", "")
		description := req.GetString("description", "")

		cmd := commands.NewAddSectionCommand(store, roadmapID, title, description)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("%s (ID: %s)", result.Message, result.SectionID)), nil
	}
}

// --- add_topic ---

func addTopicTool() mcp.Tool {
	return mcp.NewTool("add_topic",
		mcp.WithDescription("Append a topic to a section, or a sub-topic to a topic when parent_topic_id is set."),
		mcp.WithString("section_id",
			mcp.Description("Section ID"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("Topic title"),
			mcp.Required(),
		),
		mcp.WithString("parent_topic_id",
			mcp.Description("Parent topic ID. When set the new topic becomes its sub-topic."),
		),
	)
}

func addTopicHandler(store ports.RoadmapStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sectionID := req.GetString("section_id", "")
		title := req.GetString("title", "")
		parentTopicID := req.GetString("parent_topic_id", "")

		if parentTopicID != "" {
			cmd := commands.NewAddSubTopicCommand(store, sectionID, parentTopicID, title)
			result, err := cmd.Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(fmt.Sprintf("%s (ID: %s)", result.Message, result.TopicID)), nil
		}

		cmd := commands.NewAddTopicCommand(store, sectionID, title)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s (ID: %s)", result.Message, result.TopicID)), nil
	}
}

// --- toggle_topic ---

func toggleTopicTool() mcp.Tool {
	return mcp.NewTool("toggle_topic",
		mcp.WithDescription("Flip a topic between complete and open."),
		mcp.WithString("section_id",
			mcp.Description("Section ID the topic belongs to"),
			mcp.Required(),
		),
		mcp.WithString("topic_id",
			mcp.Description("Topic ID"),
			mcp.Required(),
		),
	)
}

func toggleTopicHandler(store ports.RoadmapStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sectionID := req.GetString("section_id", "")
		topicID := req.GetString("topic_id", "")

		cmd := commands.NewToggleTopicCommand(store, sectionID, topicID)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete a roadmap, section or topic (including everything below it). Exactly one of roadmap_id, section_id or topic_id must be set; topic_id also needs section_id."),
		mcp.WithString("roadmap_id",
			mcp.Description("Roadmap ID to delete"),
		),
		mcp.WithString("section_id",
			mcp.Description("Section ID to delete, or the owning section when deleting a topic"),
		),
		mcp.WithString("topic_id",
			mcp.Description("Topic ID to delete (requires section_id)"),
		),
	)
}

func deleteHandler(store ports.RoadmapStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		roadmapID := req.GetString("roadmap_id", "")
		sectionID := req.GetString("section_id", "")
		topicID := req.GetString("topic_id", "")

		switch {
		case topicID != "":
			cmd := commands.NewDeleteTopicCommand(store, sectionID, topicID)
			result, err := cmd.Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		case sectionID != "":
			cmd := commands.NewDeleteSectionCommand(store, sectionID)
			result, err := cmd.Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		case roadmapID != "":
			cmd := commands.NewDeleteRoadmapCommand(store, roadmapID)
			result, err := cmd.Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message), nil

		default:
			return toolError(fmt.Errorf("one of roadmap_id, section_id or topic_id is required"))
		}
	}
}

// --- reorder_topics ---

func reorderTopicsTool() mcp.Tool {
	return mcp.NewTool("reorder_topics",
		mcp.WithDescription("Reorder the topics of a section. Topics omitted from the list keep their relative order at the end."),
		mcp.WithString("section_id",
			mcp.Description("Section ID"),
			mcp.Required(),
		),
		mcp.WithArray("topic_ids",
			mcp.Description("Topic IDs in the desired order"),
			mcp.Required(),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

func reorderTopicsHandler(store ports.RoadmapStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sectionID := req.GetString("section_id", "")
		topicIDs := req.GetStringSlice("topic_ids", nil)

		cmd := commands.NewReorderTopicsCommand(store, sectionID, topicIDs)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- reorder_sections ---

func reorderSectionsTool() mcp.Tool {
	return mcp.NewTool("reorder_sections",
		mcp.WithDescription("Reorder the sections of a roadmap. Sections omitted from the list keep their relative order at the end."),
		mcp.WithString("roadmap_id",
			mcp.Description("Roadmap ID"),
			mcp.Required(),
		),
		mcp.WithArray("section_ids",
			mcp.Description("Section IDs in the desired order"),
			mcp.Required(),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

func reorderSectionsHandler(store ports.RoadmapStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		roadmapID := req.GetString("roadmap_id", "")
		sectionIDs := req.GetStringSlice("section_ids", nil)

		cmd := commands.NewReorderSectionsCommand(store, roadmapID, sectionIDs)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- import_json ---

func importTool() mcp.Tool {
	return mcp.NewTool("import_json",
		mcp.WithDescription("Import a roadmap JSON document. Roadmaps whose titles already exist are skipped."),
		mcp.WithString("json",
			mcp.Description("The JSON document to import"),
			mcp.Required(),
		),
	)
}

func importHandler(store ports.RoadmapStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data := req.GetString("json", "")

		cmd := commands.NewImportCommand(store, []byte(data))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}
