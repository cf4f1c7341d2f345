package commands_test

import (
	"context"
	"errors"
	"testing"

	"roadmapio/internal/adapters/memory"
	"roadmapio/internal/application"
	"roadmapio/internal/application/commands"
	"roadmapio/internal/ports"
)

func seedTopic(t *testing.T, store *memory.Store) (sectionID, topicID string) {
	t.Helper()
	roadmapID := store.AddRoadmap(ports.RoadmapData{Title: "Go Roadmap"})
	sectionID = store.AddSection(ports.SectionData{RoadmapID: roadmapID, Title: "Basics"})
	topicID = store.AddTopic(sectionID, ports.TopicData{Title: "Slices"})
	return sectionID, topicID
}

func TestToggleTopicCommand(t *testing.T) {
	store := memory.NewStore()
	sectionID, topicID := seedTopic(t, store)

	cmd := commands.NewToggleTopicCommand(store, sectionID, topicID)

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !result.Completed {
		t.Error("first toggle should complete the topic")
	}

	result, err = cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("second Execute() error = %v", err)
	}
	if result.Completed {
		t.Error("second toggle should reopen the topic")
	}
	if store.Topic(sectionID, topicID).Completed {
		t.Error("store state should match the last toggle")
	}
}

func TestToggleTopicCommandMissingTopic(t *testing.T) {
	store := memory.NewStore()
	sectionID, _ := seedTopic(t, store)

	_, err := commands.NewToggleTopicCommand(store, sectionID, "nope").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("Execute() error = %v, want ErrNotFound", err)
	}
}

func TestAssignPostCommand(t *testing.T) {
	store := memory.NewStore()
	sectionID, topicID := seedTopic(t, store)

	if _, err := commands.NewAssignPostCommand(store, sectionID, topicID, "post-42").Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := store.Topic(sectionID, topicID).PostID; got != "post-42" {
		t.Errorf("PostID = %q, want %q", got, "post-42")
	}

	// Empty post id clears the link
	if _, err := commands.NewAssignPostCommand(store, sectionID, topicID, "").Execute(context.Background()); err != nil {
		t.Fatalf("clear Execute() error = %v", err)
	}
	if got := store.Topic(sectionID, topicID).PostID; got != "" {
		t.Errorf("PostID after clear = %q, want empty", got)
	}
}

func TestUpdateTopicCommand(t *testing.T) {
	store := memory.NewStore()
	sectionID, topicID := seedTopic(t, store)

	title := "Slices and arrays"
	cmd := commands.NewUpdateTopicCommand(store, sectionID, topicID)
	cmd.Title = &title
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	topic := store.Topic(sectionID, topicID)
	if topic.Title != title {
		t.Errorf("Title = %q, want %q", topic.Title, title)
	}
	if topic.Completed {
		t.Error("Completed should be untouched by a title-only update")
	}
}

func TestUpdateSectionCommandRejectsEmptyTitle(t *testing.T) {
	store := memory.NewStore()
	sectionID, _ := seedTopic(t, store)

	empty := ""
	cmd := commands.NewUpdateSectionCommand(store, sectionID)
	cmd.Title = &empty
	if err := cmd.Validate(); err == nil {
		t.Error("Validate() should reject an explicit empty title")
	}
}
