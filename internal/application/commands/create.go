package commands

import (
	"context"
	"fmt"

	"roadmapio/internal/application"
	"roadmapio/internal/ports"
)

// AddRoadmapResult contains the result of creating a roadmap
type AddRoadmapResult struct {
	RoadmapID string
	Message   string
}

// AddRoadmapCommand creates a roadmap, resolving or creating its language
type AddRoadmapCommand struct {
	store        ports.RoadmapStore
	LanguageName string
	Title        string
	Description  string
}

// NewAddRoadmapCommand creates a new AddRoadmapCommand
func NewAddRoadmapCommand(store ports.RoadmapStore, languageName, title, description string) *AddRoadmapCommand {
	return &AddRoadmapCommand{
		store:        store,
		LanguageName: languageName,
		Title:        title,
		Description:  description,
	}
}

// Validate checks if the create operation is valid
func (c *AddRoadmapCommand) Validate() error {
	if err := application.ValidateRequired("title", c.Title); err != nil {
		return err
	}
	return application.ValidateRequired("languageName", c.LanguageName)
}

// Execute runs the add roadmap command
func (c *AddRoadmapCommand) Execute(ctx context.Context) (*AddRoadmapResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	lang := application.ResolveLanguage(c.store, c.LanguageName)
	id := c.store.AddRoadmap(ports.RoadmapData{
		LanguageID:  lang.ID,
		Title:       c.Title,
		Description: c.Description,
	})

	return &AddRoadmapResult{
		RoadmapID: id,
		Message:   fmt.Sprintf("Created roadmap: %s", c.Title),
	}, nil
}

// AddSectionResult contains the result of creating a section
type AddSectionResult struct {
	SectionID string
	Message   string
}

// AddSectionCommand appends a section to a roadmap
type AddSectionCommand struct {
	store       ports.RoadmapStore
	RoadmapID   string
	Title       string
	Description string
}

// NewAddSectionCommand creates a new AddSectionCommand
func NewAddSectionCommand(store ports.RoadmapStore, roadmapID, title, description string) *AddSectionCommand {
	return &AddSectionCommand{
		store:       store,
		RoadmapID:   roadmapID,
		Title:       title,
		Description: description,
	}
}

// Validate checks if the create operation is valid
func (c *AddSectionCommand) Validate() error {
	if err := application.ValidateRequired("roadmapID", c.RoadmapID); err != nil {
		return err
	}
	return application.ValidateRequired("title", c.Title)
}

// Execute runs the add section command
func (c *AddSectionCommand) Execute(ctx context.Context) (*AddSectionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id := c.store.AddSection(ports.SectionData{
		RoadmapID:   c.RoadmapID,
		Title:       c.Title,
		Description: c.Description,
	})
	if id == "" {
		return nil, fmt.Errorf("roadmap %s: %w", c.RoadmapID, application.ErrNotFound)
	}

	return &AddSectionResult{
		SectionID: id,
		Message:   fmt.Sprintf("Created section: %s", c.Title),
	}, nil
}

// AddTopicResult contains the result of creating a topic or sub-topic
type AddTopicResult struct {
	TopicID string
	Message string
}

// AddTopicCommand appends a top-level topic to a section
type AddTopicCommand struct {
	store     ports.RoadmapStore
	SectionID string
	Title     string
}

// NewAddTopicCommand creates a new AddTopicCommand
func NewAddTopicCommand(store ports.RoadmapStore, sectionID, title string) *AddTopicCommand {
	return &AddTopicCommand{
		store:     store,
		SectionID: sectionID,
		Title:     title,
	}
}

// Validate checks if the create operation is valid
func (c *AddTopicCommand) Validate() error {
	if err := application.ValidateRequired("sectionID", c.SectionID); err != nil {
		return err
	}
	return application.ValidateRequired("title", c.Title)
}

// Execute runs the add topic command
func (c *AddTopicCommand) Execute(ctx context.Context) (*AddTopicResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id := c.store.AddTopic(c.SectionID, ports.TopicData{Title: c.Title})
	if id == "" {
		return nil, fmt.Errorf("section %s: %w", c.SectionID, application.ErrNotFound)
	}

	return &AddTopicResult{
		TopicID: id,
		Message: fmt.Sprintf("Created topic: %s", c.Title),
	}, nil
}

// AddSubTopicCommand appends a topic under a parent topic located anywhere
// in the section's tree
type AddSubTopicCommand struct {
	store         ports.RoadmapStore
	SectionID     string
	ParentTopicID string
	Title         string
}

// NewAddSubTopicCommand creates a new AddSubTopicCommand
func NewAddSubTopicCommand(store ports.RoadmapStore, sectionID, parentTopicID, title string) *AddSubTopicCommand {
	return &AddSubTopicCommand{
		store:         store,
		SectionID:     sectionID,
		ParentTopicID: parentTopicID,
		Title:         title,
	}
}

// Validate checks if the create operation is valid
func (c *AddSubTopicCommand) Validate() error {
	if err := application.ValidateRequired("sectionID", c.SectionID); err != nil {
		return err
	}
	if err := application.ValidateRequired("parentTopicID", c.ParentTopicID); err != nil {
		return err
	}
	return application.ValidateRequired("title", c.Title)
}

// Execute runs the add sub-topic command
func (c *AddSubTopicCommand) Execute(ctx context.Context) (*AddTopicResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id := c.store.AddSubTopic(c.SectionID, c.ParentTopicID, ports.TopicData{Title: c.Title})
	if id == "" {
		return nil, fmt.Errorf("parent topic %s: %w", c.ParentTopicID, application.ErrNotFound)
	}

	return &AddTopicResult{
		TopicID: id,
		Message: fmt.Sprintf("Created sub-topic: %s", c.Title),
	}, nil
}
