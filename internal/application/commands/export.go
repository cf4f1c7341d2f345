package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"roadmapio/internal/application"
	"roadmapio/internal/ports"
)

// ExportResult contains the result of an export command
type ExportResult struct {
	Document *application.RoadmapDocument
	JSON     []byte
	Filename string
}

// ExportCommand serializes a roadmap into a portable JSON document
type ExportCommand struct {
	store     ports.RoadmapStore
	RoadmapID string
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(store ports.RoadmapStore, roadmapID string) *ExportCommand {
	return &ExportCommand{store: store, RoadmapID: roadmapID}
}

// Validate checks if the export operation is valid
func (c *ExportCommand) Validate() error {
	return application.ValidateRequired("roadmapID", c.RoadmapID)
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	doc, err := application.ExportRoadmap(c.store, c.RoadmapID)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export: %w", err)
	}

	return &ExportResult{
		Document: doc,
		JSON:     data,
		Filename: application.ExportFilename(doc.Title),
	}, nil
}
