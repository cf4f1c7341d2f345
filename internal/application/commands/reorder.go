package commands

import (
	"context"
	"fmt"

	"roadmapio/internal/application"
	"roadmapio/internal/domain"
	"roadmapio/internal/ports"
)

// ReorderResult contains the result of a reorder command
type ReorderResult struct {
	Message string
}

// ReorderSectionsCommand applies a new sibling order to a roadmap's sections
type ReorderSectionsCommand struct {
	store      ports.RoadmapStore
	RoadmapID  string
	OrderedIDs []string
}

// NewReorderSectionsCommand creates a new ReorderSectionsCommand
func NewReorderSectionsCommand(store ports.RoadmapStore, roadmapID string, orderedIDs []string) *ReorderSectionsCommand {
	return &ReorderSectionsCommand{store: store, RoadmapID: roadmapID, OrderedIDs: orderedIDs}
}

// Validate checks if the reorder operation is valid
func (c *ReorderSectionsCommand) Validate() error {
	return application.ValidateRequired("roadmapID", c.RoadmapID)
}

// Execute runs the reorder sections command
func (c *ReorderSectionsCommand) Execute(ctx context.Context) (*ReorderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.store.Roadmap(c.RoadmapID) == nil {
		return nil, fmt.Errorf("roadmap %s: %w", c.RoadmapID, application.ErrNotFound)
	}

	c.store.ReorderSections(c.RoadmapID, c.OrderedIDs)
	return &ReorderResult{Message: "Sections reordered"}, nil
}

// ReorderTopicsCommand applies a new sibling order to a section's topics
type ReorderTopicsCommand struct {
	store      ports.RoadmapStore
	SectionID  string
	OrderedIDs []string
}

// NewReorderTopicsCommand creates a new ReorderTopicsCommand
func NewReorderTopicsCommand(store ports.RoadmapStore, sectionID string, orderedIDs []string) *ReorderTopicsCommand {
	return &ReorderTopicsCommand{store: store, SectionID: sectionID, OrderedIDs: orderedIDs}
}

// Validate checks if the reorder operation is valid
func (c *ReorderTopicsCommand) Validate() error {
	return application.ValidateRequired("sectionID", c.SectionID)
}

// Execute runs the reorder topics command
func (c *ReorderTopicsCommand) Execute(ctx context.Context) (*ReorderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.store.Section(c.SectionID) == nil {
		return nil, fmt.Errorf("section %s: %w", c.SectionID, application.ErrNotFound)
	}

	c.store.ReorderTopics(c.SectionID, c.OrderedIDs)
	return &ReorderResult{Message: "Topics reordered"}, nil
}

// MoveTopicCommand moves one top-level topic to another topic's position
// within the same section. The remaining siblings keep their relative order.
type MoveTopicCommand struct {
	store         ports.RoadmapStore
	SectionID     string
	TopicID       string
	TargetTopicID string
}

// NewMoveTopicCommand creates a new MoveTopicCommand
func NewMoveTopicCommand(store ports.RoadmapStore, sectionID, topicID, targetTopicID string) *MoveTopicCommand {
	return &MoveTopicCommand{store: store, SectionID: sectionID, TopicID: topicID, TargetTopicID: targetTopicID}
}

// Validate checks if the move operation is valid
func (c *MoveTopicCommand) Validate() error {
	if err := application.ValidateRequired("sectionID", c.SectionID); err != nil {
		return err
	}
	if err := application.ValidateRequired("topicID", c.TopicID); err != nil {
		return err
	}
	return application.ValidateRequired("targetTopicID", c.TargetTopicID)
}

// Execute runs the move topic command
func (c *MoveTopicCommand) Execute(ctx context.Context) (*ReorderResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	section := c.store.Section(c.SectionID)
	if section == nil {
		return nil, fmt.Errorf("section %s: %w", c.SectionID, application.ErrNotFound)
	}

	siblings := make([]*domain.Topic, len(section.Topics))
	copy(siblings, section.Topics)
	domain.SortByOrder(siblings)

	moved := domain.MoveNode(siblings, c.TopicID, c.TargetTopicID)
	orderedIDs := make([]string, len(moved))
	for i, t := range moved {
		orderedIDs[i] = t.ID
	}

	c.store.ReorderTopics(c.SectionID, orderedIDs)
	return &ReorderResult{Message: "Topic moved"}, nil
}
