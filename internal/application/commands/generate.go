package commands

import (
	"context"
	"fmt"

	"roadmapio/internal/application"
	"roadmapio/internal/ports"
)

// GenerateResult contains the result of a generate command
type GenerateResult struct {
	RoadmapID string
	Skipped   bool
	Message   string
}

// GenerateCommand asks a generator for a roadmap outline and merges the
// result into the store. A roadmap with the same title already present makes
// the merge a no-op.
type GenerateCommand struct {
	store     ports.RoadmapStore
	generator ports.RoadmapGenerator
	Title     string
	Language  string
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(store ports.RoadmapStore, generator ports.RoadmapGenerator, title, language string) *GenerateCommand {
	return &GenerateCommand{store: store, generator: generator, Title: title, Language: language}
}

// Validate checks if the generate operation is valid
func (c *GenerateCommand) Validate() error {
	return application.ValidateRequired("title", c.Title)
}

// Execute runs the generate command
func (c *GenerateCommand) Execute(ctx context.Context) (*GenerateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.generator == nil || !c.generator.IsAvailable() {
		return nil, fmt.Errorf("no roadmap generator configured")
	}

	sections, err := c.generator.GenerateRoadmap(ctx, c.Title, c.Language)
	if err != nil {
		return nil, fmt.Errorf("generating roadmap: %w", err)
	}

	frag := application.OutlineFragment(c.Title, c.Language, sections)
	report := application.MergeFragments(c.store, []application.RoadmapFragment{frag})
	if len(report.CreatedRoadmapIDs) == 0 {
		reason := "duplicate roadmap title"
		if len(report.Skipped) > 0 {
			reason = report.Skipped[0].Reason
		}
		return &GenerateResult{Skipped: true, Message: fmt.Sprintf("Skipped: %s", reason)}, nil
	}

	id := report.CreatedRoadmapIDs[0]
	return &GenerateResult{RoadmapID: id, Message: fmt.Sprintf("Generated roadmap: %s", c.Title)}, nil
}
