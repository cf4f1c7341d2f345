package commands

import (
	"context"
	"fmt"

	"roadmapio/internal/application"
	"roadmapio/internal/ports"
)

// DeleteResult contains the result of a delete command
type DeleteResult struct {
	Message string
}

// DeleteRoadmapCommand deletes a roadmap and its whole subtree
type DeleteRoadmapCommand struct {
	store     ports.RoadmapStore
	RoadmapID string
}

// NewDeleteRoadmapCommand creates a new DeleteRoadmapCommand
func NewDeleteRoadmapCommand(store ports.RoadmapStore, roadmapID string) *DeleteRoadmapCommand {
	return &DeleteRoadmapCommand{store: store, RoadmapID: roadmapID}
}

// Validate checks if the delete operation is valid
func (c *DeleteRoadmapCommand) Validate() error {
	return application.ValidateRequired("roadmapID", c.RoadmapID)
}

// Execute runs the delete roadmap command
func (c *DeleteRoadmapCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	roadmap := c.store.Roadmap(c.RoadmapID)
	if roadmap == nil {
		return nil, fmt.Errorf("roadmap %s: %w", c.RoadmapID, application.ErrNotFound)
	}

	c.store.DeleteRoadmap(c.RoadmapID)
	return &DeleteResult{Message: fmt.Sprintf("Deleted roadmap: %s", roadmap.Title)}, nil
}

// DeleteSectionCommand deletes a section and its topics
type DeleteSectionCommand struct {
	store     ports.RoadmapStore
	SectionID string
}

// NewDeleteSectionCommand creates a new DeleteSectionCommand
func NewDeleteSectionCommand(store ports.RoadmapStore, sectionID string) *DeleteSectionCommand {
	return &DeleteSectionCommand{store: store, SectionID: sectionID}
}

// Validate checks if the delete operation is valid
func (c *DeleteSectionCommand) Validate() error {
	return application.ValidateRequired("sectionID", c.SectionID)
}

// Execute runs the delete section command
func (c *DeleteSectionCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	section := c.store.Section(c.SectionID)
	if section == nil {
		return nil, fmt.Errorf("section %s: %w", c.SectionID, application.ErrNotFound)
	}

	c.store.DeleteSection(c.SectionID)
	return &DeleteResult{Message: fmt.Sprintf("Deleted section: %s", section.Title)}, nil
}

// DeleteTopicCommand deletes a topic and its sub-topics
type DeleteTopicCommand struct {
	store     ports.RoadmapStore
	SectionID string
	TopicID   string
}

// NewDeleteTopicCommand creates a new DeleteTopicCommand
func NewDeleteTopicCommand(store ports.RoadmapStore, sectionID, topicID string) *DeleteTopicCommand {
	return &DeleteTopicCommand{store: store, SectionID: sectionID, TopicID: topicID}
}

// Validate checks if the delete operation is valid
func (c *DeleteTopicCommand) Validate() error {
	if err := application.ValidateRequired("sectionID", c.SectionID); err != nil {
		return err
	}
	return application.ValidateRequired("topicID", c.TopicID)
}

// Execute runs the delete topic command
func (c *DeleteTopicCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	topic := c.store.Topic(c.SectionID, c.TopicID)
	if topic == nil {
		return nil, fmt.Errorf("topic %s: %w", c.TopicID, application.ErrNotFound)
	}

	c.store.DeleteTopic(c.SectionID, c.TopicID)
	return &DeleteResult{Message: fmt.Sprintf("Deleted topic: %s", topic.Title)}, nil
}
