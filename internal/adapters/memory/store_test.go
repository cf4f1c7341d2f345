package memory

import (
	"errors"
	"testing"

	"roadmapio/internal/domain"
	"roadmapio/internal/ports"
)

// seedRoadmap builds roadmap → section → three topics (A, B, C)
func seedRoadmap(t *testing.T, s *Store) (roadmapID, sectionID string, topicIDs []string) {
	t.Helper()
	lang := s.AddLanguage("Go")
	roadmapID = s.AddRoadmap(ports.RoadmapData{LanguageID: lang.ID, Title: "Go Roadmap"})
	sectionID = s.AddSection(ports.SectionData{RoadmapID: roadmapID, Title: "Basics"})
	for _, title := range []string{"A", "B", "C"} {
		topicIDs = append(topicIDs, s.AddTopic(sectionID, ports.TopicData{Title: title}))
	}
	return roadmapID, sectionID, topicIDs
}

func TestAddTopicAppends(t *testing.T) {
	s := NewStore()
	_, sectionID, _ := seedRoadmap(t, s)

	section := s.Section(sectionID)
	for i, topic := range section.Topics {
		if topic.SortOrder != float64(i+1) {
			t.Errorf("topic %d: expected sortOrder %d, got %v", i, i+1, topic.SortOrder)
		}
	}
}

func TestMissingParentsAreNoOps(t *testing.T) {
	s := NewStore()
	_, sectionID, topicIDs := seedRoadmap(t, s)

	if id := s.AddSection(ports.SectionData{RoadmapID: "nope", Title: "X"}); id != "" {
		t.Errorf("expected empty id for missing roadmap, got %s", id)
	}
	if id := s.AddTopic("nope", ports.TopicData{Title: "X"}); id != "" {
		t.Errorf("expected empty id for missing section, got %s", id)
	}
	if id := s.AddSubTopic(sectionID, "nope", ports.TopicData{Title: "X"}); id != "" {
		t.Errorf("expected empty id for missing parent topic, got %s", id)
	}

	// None of these may panic or change state.
	s.DeleteRoadmap("nope")
	s.DeleteSection("nope")
	s.DeleteTopic(sectionID, "nope")
	s.DeleteTopic("nope", topicIDs[0])
	s.ToggleTopicComplete("nope", topicIDs[0])
	s.UpdateSection("nope", ports.SectionPatch{})
	s.ReorderSections("nope", nil)
	s.ReorderTopics("nope", nil)

	if got := len(s.Section(sectionID).Topics); got != 3 {
		t.Errorf("expected 3 topics untouched, got %d", got)
	}
	if s.Topic(sectionID, topicIDs[0]) == nil {
		t.Error("topic disappeared after no-op operations")
	}
}

func TestAddSubTopicAnywhereInTree(t *testing.T) {
	s := NewStore()
	_, sectionID, topicIDs := seedRoadmap(t, s)

	// Nest three levels deep; the parent is found by id at any depth.
	level1 := s.AddSubTopic(sectionID, topicIDs[0], ports.TopicData{Title: "L1"})
	level2 := s.AddSubTopic(sectionID, level1, ports.TopicData{Title: "L2"})
	level3 := s.AddSubTopic(sectionID, level2, ports.TopicData{Title: "L3"})

	if level3 == "" {
		t.Fatal("expected deep sub-topic to be created")
	}
	if got := s.Topic(sectionID, level3); got == nil || got.Title != "L3" {
		t.Fatalf("expected to look up deep sub-topic, got %v", got)
	}

	// A topic from another section must not be reachable via this one.
	otherSection := s.AddSection(ports.SectionData{RoadmapID: s.Roadmaps()[0].ID, Title: "Other"})
	if got := s.Topic(otherSection, level3); got != nil {
		t.Errorf("topic leaked across sections: %v", got)
	}
}

func TestToggleTopicIsolation(t *testing.T) {
	s := NewStore()
	_, sectionID, topicIDs := seedRoadmap(t, s)
	sub := s.AddSubTopic(sectionID, topicIDs[1], ports.TopicData{Title: "sub"})

	s.ToggleTopicComplete(sectionID, topicIDs[1])

	section := s.Section(sectionID)
	if !section.Topics[1].Completed {
		t.Error("expected topic B completed")
	}
	if section.Topics[0].Completed || section.Topics[2].Completed {
		t.Error("siblings must not change")
	}
	if s.Topic(sectionID, sub).Completed {
		t.Error("sub-topic flag must not change")
	}
	for i, topic := range section.Topics {
		if topic.SortOrder != float64(i+1) {
			t.Errorf("sibling sortOrder mutated: %v", topic.SortOrder)
		}
	}

	s.ToggleTopicComplete(sectionID, topicIDs[1])
	if section.Topics[1].Completed {
		t.Error("expected second toggle to clear the flag")
	}
}

func TestDeleteCascades(t *testing.T) {
	s := NewStore()
	roadmapID, sectionID, topicIDs := seedRoadmap(t, s)
	sub := s.AddSubTopic(sectionID, topicIDs[0], ports.TopicData{Title: "sub"})

	t.Run("delete topic removes subtree and renumbers", func(t *testing.T) {
		s.DeleteTopic(sectionID, topicIDs[0])
		if s.Topic(sectionID, topicIDs[0]) != nil || s.Topic(sectionID, sub) != nil {
			t.Error("expected topic and its sub-topic gone")
		}
		section := s.Section(sectionID)
		if len(section.Topics) != 2 {
			t.Fatalf("expected 2 topics, got %d", len(section.Topics))
		}
		for i, topic := range section.Topics {
			if topic.SortOrder != float64(i+1) {
				t.Errorf("expected dense sortOrder after delete, got %v", topic.SortOrder)
			}
		}
	})

	t.Run("delete section removes its topics", func(t *testing.T) {
		s.DeleteSection(sectionID)
		if s.Section(sectionID) != nil {
			t.Error("expected section gone")
		}
		for _, id := range topicIDs[1:] {
			if s.Topic(sectionID, id) != nil {
				t.Errorf("orphaned topic %s", id)
			}
		}
	})

	t.Run("delete roadmap removes sections transitively", func(t *testing.T) {
		other := s.AddSection(ports.SectionData{RoadmapID: roadmapID, Title: "Other"})
		inOther := s.AddTopic(other, ports.TopicData{Title: "X"})
		s.DeleteRoadmap(roadmapID)
		if s.Roadmap(roadmapID) != nil || s.Section(other) != nil || s.Topic(other, inOther) != nil {
			t.Error("expected roadmap subtree fully removed")
		}
	})
}

func TestReorderTopicsScenario(t *testing.T) {
	s := NewStore()
	_, sectionID, topicIDs := seedRoadmap(t, s)
	a, b, c := topicIDs[0], topicIDs[1], topicIDs[2]

	s.ReorderTopics(sectionID, []string{c, a, b})

	section := s.Section(sectionID)
	want := []struct {
		id    string
		order float64
	}{{c, 1}, {a, 2}, {b, 3}}
	for i, w := range want {
		if section.Topics[i].ID != w.id || section.Topics[i].SortOrder != w.order {
			t.Errorf("position %d: expected %s order %v, got %s order %v",
				i, w.id, w.order, section.Topics[i].ID, section.Topics[i].SortOrder)
		}
	}
}

func TestReorderSections(t *testing.T) {
	s := NewStore()
	roadmapID, first, _ := seedRoadmap(t, s)
	second := s.AddSection(ports.SectionData{RoadmapID: roadmapID, Title: "Second"})
	third := s.AddSection(ports.SectionData{RoadmapID: roadmapID, Title: "Third"})

	s.ReorderSections(roadmapID, []string{third, first})

	sections := s.Sections(roadmapID)
	wantIDs := []string{third, first, second}
	for i, section := range sections {
		if section.ID != wantIDs[i] {
			t.Errorf("position %d: expected %s, got %s", i, wantIDs[i], section.ID)
		}
		if section.SortOrder != float64(i+1) {
			t.Errorf("section %s: expected sortOrder %d, got %v", section.ID, i+1, section.SortOrder)
		}
	}
}

func TestFractionalSectionOrder(t *testing.T) {
	s := NewStore()
	roadmapID, first, _ := seedRoadmap(t, s)
	mid := s.AddSection(ports.SectionData{RoadmapID: roadmapID, Title: "Between", SortOrder: 1.5})
	second := s.AddSection(ports.SectionData{RoadmapID: roadmapID, Title: "Second"})

	sections := s.Sections(roadmapID)
	wantIDs := []string{first, mid, second}
	for i, section := range sections {
		if section.ID != wantIDs[i] {
			t.Errorf("position %d: expected %s, got %s", i, wantIDs[i], section.ID)
		}
	}
	// Appending after a fractional order still lands last.
	if sections[2].SortOrder <= sections[1].SortOrder {
		t.Errorf("expected appended section after fractional one, got %v <= %v",
			sections[2].SortOrder, sections[1].SortOrder)
	}
}

func TestAssignPostToTopic(t *testing.T) {
	s := NewStore()
	_, sectionID, topicIDs := seedRoadmap(t, s)

	// The reference is stored as-is, never validated.
	s.AssignPostToTopic(sectionID, topicIDs[0], "post-404")
	if got := s.Topic(sectionID, topicIDs[0]).PostID; got != "post-404" {
		t.Errorf("expected post reference stored, got %q", got)
	}

	s.AssignPostToTopic(sectionID, topicIDs[0], "")
	if got := s.Topic(sectionID, topicIDs[0]).PostID; got != "" {
		t.Errorf("expected post reference cleared, got %q", got)
	}
}

func TestProgressDelegation(t *testing.T) {
	s := NewStore()
	roadmapID, sectionID, topicIDs := seedRoadmap(t, s)

	s.ToggleTopicComplete(sectionID, topicIDs[0])
	s.ToggleTopicComplete(sectionID, topicIDs[1])

	want := domain.Progress{Completed: 2, Total: 3, Percentage: 67}
	if got := s.SectionProgress(sectionID); got != want {
		t.Errorf("section progress: expected %+v, got %+v", want, got)
	}
	if got := s.RoadmapProgress(roadmapID); got != want {
		t.Errorf("roadmap progress: expected %+v, got %+v", want, got)
	}
	if got := s.SectionProgress("nope"); got != (domain.Progress{}) {
		t.Errorf("missing section: expected zero progress, got %+v", got)
	}
}

func TestBuildTree(t *testing.T) {
	s := NewStore()
	_, sectionID, topicIDs := seedRoadmap(t, s)
	s.AddSubTopic(sectionID, topicIDs[0], ports.TopicData{Title: "sub"})

	root := s.BuildTree()
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 roadmap node, got %d", len(root.Children))
	}
	roadmapNode := root.Children[0]
	if roadmapNode.Kind != domain.NodeRoadmap {
		t.Errorf("expected roadmap kind, got %v", roadmapNode.Kind)
	}
	sectionNode := roadmapNode.Children[0]
	if len(sectionNode.Children) != 3 {
		t.Fatalf("expected 3 topic nodes, got %d", len(sectionNode.Children))
	}
	if len(sectionNode.Children[0].Children) != 1 {
		t.Errorf("expected nested sub-topic node")
	}
}

// fakeSnapshots records saves and can fail on demand
type fakeSnapshots struct {
	saved   *domain.Snapshot
	initial *domain.Snapshot
	saveErr error
	saves   int
}

func (f *fakeSnapshots) Load() (*domain.Snapshot, error) { return f.initial, nil }
func (f *fakeSnapshots) Save(snap *domain.Snapshot) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = snap
	return nil
}
func (f *fakeSnapshots) Close() error { return nil }

func TestSnapshotPersistence(t *testing.T) {
	t.Run("every mutation rewrites the snapshot", func(t *testing.T) {
		fake := &fakeSnapshots{}
		s := NewStore(WithSnapshotStore(fake))
		_, sectionID, topicIDs := seedRoadmap(t, s)
		s.ToggleTopicComplete(sectionID, topicIDs[0])

		// 1 language + 1 roadmap + 1 section + 3 topics + 1 toggle
		if fake.saves != 7 {
			t.Errorf("expected 7 snapshot writes, got %d", fake.saves)
		}
		if len(fake.saved.Sections) != 1 || len(fake.saved.Sections[0].Topics) != 3 {
			t.Errorf("unexpected snapshot shape: %+v", fake.saved)
		}
	})

	t.Run("restore rebuilds the topic index", func(t *testing.T) {
		fake := &fakeSnapshots{}
		s := NewStore(WithSnapshotStore(fake))
		_, sectionID, topicIDs := seedRoadmap(t, s)
		sub := s.AddSubTopic(sectionID, topicIDs[0], ports.TopicData{Title: "sub"})

		restored := NewStore(WithSnapshotStore(&fakeSnapshots{initial: fake.saved}))
		if restored.Topic(sectionID, sub) == nil {
			t.Error("expected sub-topic reachable by id after restore")
		}
		if restored.Section(sectionID) == nil {
			t.Error("expected section after restore")
		}
	})

	t.Run("persistence failure does not fail the mutation", func(t *testing.T) {
		saveErr := errors.New("disk full")
		fake := &fakeSnapshots{saveErr: saveErr}
		s := NewStore(WithSnapshotStore(fake))

		lang := s.AddLanguage("Go")
		if lang == nil {
			t.Fatal("mutation must succeed despite persistence failure")
		}
		if !errors.Is(s.PersistErr(), saveErr) {
			t.Errorf("expected persist error surfaced, got %v", s.PersistErr())
		}
	})
}
