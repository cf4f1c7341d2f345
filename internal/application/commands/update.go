package commands

import (
	"context"
	"fmt"

	"roadmapio/internal/application"
	"roadmapio/internal/ports"
)

// UpdateResult contains the result of an update command
type UpdateResult struct {
	Message string
}

// UpdateSectionCommand applies a partial update to a section. Nil fields
// are left unchanged.
type UpdateSectionCommand struct {
	store       ports.RoadmapStore
	SectionID   string
	Title       *string
	Description *string
	TargetCount *int
}

// NewUpdateSectionCommand creates a new UpdateSectionCommand
func NewUpdateSectionCommand(store ports.RoadmapStore, sectionID string) *UpdateSectionCommand {
	return &UpdateSectionCommand{store: store, SectionID: sectionID}
}

// Validate checks if the update operation is valid
func (c *UpdateSectionCommand) Validate() error {
	if err := application.ValidateRequired("sectionID", c.SectionID); err != nil {
		return err
	}
	if c.Title != nil {
		return application.ValidateRequired("title", *c.Title)
	}
	return nil
}

// Execute runs the update section command
func (c *UpdateSectionCommand) Execute(ctx context.Context) (*UpdateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	section := c.store.Section(c.SectionID)
	if section == nil {
		return nil, fmt.Errorf("section %s: %w", c.SectionID, application.ErrNotFound)
	}

	c.store.UpdateSection(c.SectionID, ports.SectionPatch{
		Title:       c.Title,
		Description: c.Description,
		TargetCount: c.TargetCount,
	})

	return &UpdateResult{Message: fmt.Sprintf("Updated section: %s", section.Title)}, nil
}

// UpdateTopicCommand applies a partial update to a topic. Nil fields are
// left unchanged.
type UpdateTopicCommand struct {
	store     ports.RoadmapStore
	SectionID string
	TopicID   string
	Title     *string
	Completed *bool
}

// NewUpdateTopicCommand creates a new UpdateTopicCommand
func NewUpdateTopicCommand(store ports.RoadmapStore, sectionID, topicID string) *UpdateTopicCommand {
	return &UpdateTopicCommand{store: store, SectionID: sectionID, TopicID: topicID}
}

// Validate checks if the update operation is valid
func (c *UpdateTopicCommand) Validate() error {
	if err := application.ValidateRequired("sectionID", c.SectionID); err != nil {
		return err
	}
	if err := application.ValidateRequired("topicID", c.TopicID); err != nil {
		return err
	}
	if c.Title != nil {
		return application.ValidateRequired("title", *c.Title)
	}
	return nil
}

// Execute runs the update topic command
func (c *UpdateTopicCommand) Execute(ctx context.Context) (*UpdateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	topic := c.store.Topic(c.SectionID, c.TopicID)
	if topic == nil {
		return nil, fmt.Errorf("topic %s: %w", c.TopicID, application.ErrNotFound)
	}

	c.store.UpdateTopic(c.SectionID, c.TopicID, ports.TopicPatch{
		Title:     c.Title,
		Completed: c.Completed,
	})

	return &UpdateResult{Message: fmt.Sprintf("Updated topic: %s", topic.Title)}, nil
}
