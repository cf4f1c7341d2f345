package commands

import (
	"context"
	"fmt"

	"roadmapio/internal/application"
	"roadmapio/internal/ports"
)

// ToggleTopicResult contains the result of toggling a topic
type ToggleTopicResult struct {
	Completed bool
	Message   string
}

// ToggleTopicCommand flips a topic's completion flag
type ToggleTopicCommand struct {
	store     ports.RoadmapStore
	SectionID string
	TopicID   string
}

// NewToggleTopicCommand creates a new ToggleTopicCommand
func NewToggleTopicCommand(store ports.RoadmapStore, sectionID, topicID string) *ToggleTopicCommand {
	return &ToggleTopicCommand{
		store:     store,
		SectionID: sectionID,
		TopicID:   topicID,
	}
}

// Validate checks if the toggle operation is valid
func (c *ToggleTopicCommand) Validate() error {
	if err := application.ValidateRequired("sectionID", c.SectionID); err != nil {
		return err
	}
	return application.ValidateRequired("topicID", c.TopicID)
}

// Execute runs the toggle command
func (c *ToggleTopicCommand) Execute(ctx context.Context) (*ToggleTopicResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	topic := c.store.Topic(c.SectionID, c.TopicID)
	if topic == nil {
		return nil, fmt.Errorf("topic %s: %w", c.TopicID, application.ErrNotFound)
	}

	c.store.ToggleTopicComplete(c.SectionID, c.TopicID)

	state := "pending"
	if topic.Completed {
		state = "completed"
	}
	return &ToggleTopicResult{
		Completed: topic.Completed,
		Message:   fmt.Sprintf("Marked %s as %s", topic.Title, state),
	}, nil
}

// AssignPostResult contains the result of linking a post
type AssignPostResult struct {
	Message string
}

// AssignPostCommand sets or clears a topic's weak post reference. An empty
// PostID clears the link. The referenced post is never validated.
type AssignPostCommand struct {
	store     ports.RoadmapStore
	SectionID string
	TopicID   string
	PostID    string
}

// NewAssignPostCommand creates a new AssignPostCommand
func NewAssignPostCommand(store ports.RoadmapStore, sectionID, topicID, postID string) *AssignPostCommand {
	return &AssignPostCommand{
		store:     store,
		SectionID: sectionID,
		TopicID:   topicID,
		PostID:    postID,
	}
}

// Validate checks if the link operation is valid
func (c *AssignPostCommand) Validate() error {
	if err := application.ValidateRequired("sectionID", c.SectionID); err != nil {
		return err
	}
	return application.ValidateRequired("topicID", c.TopicID)
}

// Execute runs the assign post command
func (c *AssignPostCommand) Execute(ctx context.Context) (*AssignPostResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.store.Topic(c.SectionID, c.TopicID) == nil {
		return nil, fmt.Errorf("topic %s: %w", c.TopicID, application.ErrNotFound)
	}

	c.store.AssignPostToTopic(c.SectionID, c.TopicID, c.PostID)

	if c.PostID == "" {
		return &AssignPostResult{Message: "Unlinked post"}, nil
	}
	return &AssignPostResult{Message: fmt.Sprintf("Linked post %s", c.PostID)}, nil
}
