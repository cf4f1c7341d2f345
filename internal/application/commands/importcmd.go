package commands

import (
	"context"
	"fmt"

	"roadmapio/internal/application"
	"roadmapio/internal/ports"
)

// ImportResult contains the result of an import command
type ImportResult struct {
	Report  *application.ImportReport
	Message string
}

// ImportCommand merges a JSON import document into the store
type ImportCommand struct {
	store ports.RoadmapStore
	Data  []byte

	// Optional merge targets for bare section/topic documents
	TargetRoadmapID string
	TargetSectionID string
}

// NewImportCommand creates a new ImportCommand
func NewImportCommand(store ports.RoadmapStore, data []byte) *ImportCommand {
	return &ImportCommand{store: store, Data: data}
}

// Validate checks if the import operation is valid
func (c *ImportCommand) Validate() error {
	if len(c.Data) == 0 {
		return &application.ValidationError{Field: "data", Message: "import data is required"}
	}
	return nil
}

// Execute runs the import command
func (c *ImportCommand) Execute(ctx context.Context) (*ImportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	doc, err := application.ParseDocument(c.Data)
	if err != nil {
		return nil, err
	}

	report := application.MergeDocument(c.store, doc, c.TargetRoadmapID, c.TargetSectionID)
	return &ImportResult{Report: report, Message: importMessage(report)}, nil
}

// InstallTemplatesCommand merges the builtin roadmap templates into the store.
// Templates whose titles already exist are skipped, so the command is safe to
// run repeatedly.
type InstallTemplatesCommand struct {
	store ports.RoadmapStore
}

// NewInstallTemplatesCommand creates a new InstallTemplatesCommand
func NewInstallTemplatesCommand(store ports.RoadmapStore) *InstallTemplatesCommand {
	return &InstallTemplatesCommand{store: store}
}

// Execute runs the install templates command
func (c *InstallTemplatesCommand) Execute(ctx context.Context) (*ImportResult, error) {
	report := application.MergeFragments(c.store, application.BuiltinTemplates())
	return &ImportResult{Report: report, Message: importMessage(report)}, nil
}

func importMessage(report *application.ImportReport) string {
	created := len(report.CreatedRoadmapIDs)
	skipped := len(report.Skipped)
	switch {
	case created == 0 && skipped == 0:
		return "Nothing to import"
	case skipped == 0:
		return fmt.Sprintf("Imported %d roadmap(s)", created)
	default:
		return fmt.Sprintf("Imported %d roadmap(s), skipped %d", created, skipped)
	}
}
