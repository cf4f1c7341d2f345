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

func seedOrderedTopics(t *testing.T, store *memory.Store) (sectionID string, ids []string) {
	t.Helper()
	roadmapID := store.AddRoadmap(ports.RoadmapData{Title: "Go Roadmap"})
	sectionID = store.AddSection(ports.SectionData{RoadmapID: roadmapID, Title: "Basics"})
	for _, title := range []string{"A", "B", "C"} {
		ids = append(ids, store.AddTopic(sectionID, ports.TopicData{Title: title}))
	}
	return sectionID, ids
}

func topicTitles(store *memory.Store, sectionID string) []string {
	section := store.Section(sectionID)
	titles := make([]string, len(section.Topics))
	for i, topic := range section.Topics {
		titles[i] = topic.Title
	}
	return titles
}

func TestReorderTopicsCommand(t *testing.T) {
	store := memory.NewStore()
	sectionID, ids := seedOrderedTopics(t, store)

	cmd := commands.NewReorderTopicsCommand(store, sectionID, []string{ids[2], ids[0], ids[1]})
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got := topicTitles(store, sectionID)
	want := []string{"C", "A", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("topic order = %v, want %v", got, want)
		}
	}
}

func TestReorderTopicsCommandMissingSection(t *testing.T) {
	store := memory.NewStore()

	_, err := commands.NewReorderTopicsCommand(store, "nope", nil).Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("Execute() error = %v, want ErrNotFound", err)
	}
}

func TestMoveTopicCommand(t *testing.T) {
	store := memory.NewStore()
	sectionID, ids := seedOrderedTopics(t, store)

	// Move C to A's position: C takes index 0, everything else shifts down
	cmd := commands.NewMoveTopicCommand(store, sectionID, ids[2], ids[0])
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got := topicTitles(store, sectionID)
	want := []string{"C", "A", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("topic order = %v, want %v", got, want)
		}
	}

	section := store.Section(sectionID)
	for i, topic := range section.Topics {
		if topic.SortOrder != float64(i+1) {
			t.Errorf("topic %s SortOrder = %v, want %d", topic.Title, topic.SortOrder, i+1)
		}
	}
}

func TestMoveTopicCommandUnknownTargetIsNoOp(t *testing.T) {
	store := memory.NewStore()
	sectionID, ids := seedOrderedTopics(t, store)

	cmd := commands.NewMoveTopicCommand(store, sectionID, ids[0], "nope")
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got := topicTitles(store, sectionID)
	want := []string{"A", "B", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("topic order = %v, want %v", got, want)
		}
	}
}

func TestReorderSectionsCommand(t *testing.T) {
	store := memory.NewStore()
	roadmapID := store.AddRoadmap(ports.RoadmapData{Title: "Go Roadmap"})
	first := store.AddSection(ports.SectionData{RoadmapID: roadmapID, Title: "First"})
	second := store.AddSection(ports.SectionData{RoadmapID: roadmapID, Title: "Second"})

	cmd := commands.NewReorderSectionsCommand(store, roadmapID, []string{second, first})
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	sections := store.Sections(roadmapID)
	if sections[0].Title != "Second" || sections[1].Title != "First" {
		t.Errorf("section order = [%s, %s], want [Second, First]", sections[0].Title, sections[1].Title)
	}
}

func TestReorderSectionsCommandOmittedKeepRelativeOrder(t *testing.T) {
	store := memory.NewStore()
	roadmapID := store.AddRoadmap(ports.RoadmapData{Title: "Go Roadmap"})
	for _, title := range []string{"First", "Second", "Third"} {
		store.AddSection(ports.SectionData{RoadmapID: roadmapID, Title: title})
	}
	third := store.Sections(roadmapID)[2].ID

	cmd := commands.NewReorderSectionsCommand(store, roadmapID, []string{third})
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	sections := store.Sections(roadmapID)
	want := []string{"Third", "First", "Second"}
	for i, w := range want {
		if sections[i].Title != w {
			t.Errorf("section %d = %s, want %s", i, sections[i].Title, w)
		}
		if sections[i].SortOrder != float64(i+1) {
			t.Errorf("section %d sortOrder = %v, want %d", i, sections[i].SortOrder, i+1)
		}
	}
}

func TestDeleteCommands(t *testing.T) {
	store := memory.NewStore()
	sectionID, ids := seedOrderedTopics(t, store)
	roadmapID := store.Section(sectionID).RoadmapID

	if _, err := commands.NewDeleteTopicCommand(store, sectionID, ids[1]).Execute(context.Background()); err != nil {
		t.Fatalf("DeleteTopic Execute() error = %v", err)
	}
	if got := len(store.Section(sectionID).Topics); got != 2 {
		t.Errorf("topics after delete = %d, want 2", got)
	}

	if _, err := commands.NewDeleteSectionCommand(store, sectionID).Execute(context.Background()); err != nil {
		t.Fatalf("DeleteSection Execute() error = %v", err)
	}
	if store.Section(sectionID) != nil {
		t.Error("section should be gone")
	}

	if _, err := commands.NewDeleteRoadmapCommand(store, roadmapID).Execute(context.Background()); err != nil {
		t.Fatalf("DeleteRoadmap Execute() error = %v", err)
	}
	if store.Roadmap(roadmapID) != nil {
		t.Error("roadmap should be gone")
	}

	_, err := commands.NewDeleteRoadmapCommand(store, roadmapID).Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}
