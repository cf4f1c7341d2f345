package domain

import "testing"

func makeTopics(ids ...string) []*Topic {
	topics := make([]*Topic, len(ids))
	for i, id := range ids {
		topics[i] = &Topic{ID: id, Title: id, SortOrder: float64(i + 1)}
	}
	return topics
}

func assertOrders(t *testing.T, topics []*Topic, wantIDs []string) {
	t.Helper()
	if len(topics) != len(wantIDs) {
		t.Fatalf("expected %d topics, got %d", len(wantIDs), len(topics))
	}
	for i, topic := range topics {
		if topic.ID != wantIDs[i] {
			t.Errorf("position %d: expected %s, got %s", i, wantIDs[i], topic.ID)
		}
		if topic.SortOrder != float64(i+1) {
			t.Errorf("topic %s: expected sortOrder %d, got %v", topic.ID, i+1, topic.SortOrder)
		}
	}
}

func TestRenumber(t *testing.T) {
	topics := makeTopics("a", "b", "c")
	topics[0].SortOrder = 7
	topics[1].SortOrder = 2.5
	topics[2].SortOrder = 99

	assertOrders(t, Renumber(topics), []string{"a", "b", "c"})
}

func TestMoveNode(t *testing.T) {
	tests := []struct {
		name   string
		fromID string
		toID   string
		want   []string
	}{
		{
			name:   "move forward",
			fromID: "a",
			toID:   "c",
			want:   []string{"b", "c", "a"},
		},
		{
			name:   "move backward",
			fromID: "c",
			toID:   "a",
			want:   []string{"c", "a", "b"},
		},
		{
			name:   "missing source is a no-op",
			fromID: "x",
			toID:   "b",
			want:   []string{"a", "b", "c"},
		},
		{
			name:   "missing destination is a no-op",
			fromID: "a",
			toID:   "x",
			want:   []string{"a", "b", "c"},
		},
		{
			name:   "same node is a no-op",
			fromID: "b",
			toID:   "b",
			want:   []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topics := MoveNode(makeTopics("a", "b", "c"), tt.fromID, tt.toID)
			if len(topics) != len(tt.want) {
				t.Fatalf("expected %d topics, got %d", len(tt.want), len(topics))
			}
			for i, topic := range topics {
				if topic.ID != tt.want[i] {
					t.Errorf("position %d: expected %s, got %s", i, tt.want[i], topic.ID)
				}
			}
		})
	}
}

func TestInsertAppend(t *testing.T) {
	t.Run("empty list starts at 1", func(t *testing.T) {
		topics := InsertAppend(nil, &Topic{ID: "a"})
		if topics[0].SortOrder != 1 {
			t.Errorf("expected sortOrder 1, got %v", topics[0].SortOrder)
		}
	})

	t.Run("appends after max", func(t *testing.T) {
		topics := makeTopics("a", "b")
		topics[1].SortOrder = 5 // Gap left by a deletion
		topics = InsertAppend(topics, &Topic{ID: "c"})
		if topics[2].SortOrder != 6 {
			t.Errorf("expected sortOrder 6, got %v", topics[2].SortOrder)
		}
	})

	t.Run("does not renumber existing siblings", func(t *testing.T) {
		topics := makeTopics("a", "b")
		topics[1].SortOrder = 5
		InsertAppend(topics, &Topic{ID: "c"})
		if topics[0].SortOrder != 1 || topics[1].SortOrder != 5 {
			t.Errorf("existing siblings were renumbered: %v, %v", topics[0].SortOrder, topics[1].SortOrder)
		}
	})
}

func TestReorderByIDs(t *testing.T) {
	t.Run("full reorder", func(t *testing.T) {
		topics := ReorderByIDs(makeTopics("A", "B", "C"), []string{"C", "A", "B"})
		assertOrders(t, topics, []string{"C", "A", "B"})
	})

	t.Run("unknown ids are ignored", func(t *testing.T) {
		topics := ReorderByIDs(makeTopics("A", "B", "C"), []string{"C", "x", "A", "B"})
		assertOrders(t, topics, []string{"C", "A", "B"})
	})

	t.Run("omitted ids keep relative order at the end", func(t *testing.T) {
		topics := ReorderByIDs(makeTopics("A", "B", "C", "D"), []string{"D"})
		assertOrders(t, topics, []string{"D", "A", "B", "C"})
	})

	t.Run("duplicate ids are applied once", func(t *testing.T) {
		topics := ReorderByIDs(makeTopics("A", "B"), []string{"B", "B", "A"})
		assertOrders(t, topics, []string{"B", "A"})
	})
}

func TestOrderingDensityInvariant(t *testing.T) {
	// Run a mixed sequence of operations and check 1..n density afterwards.
	var topics []*Topic
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		topics = InsertAppend(topics, &Topic{ID: id, Title: id})
	}
	topics = MoveNode(topics, "e", "a")
	topics = ReorderByIDs(topics, []string{"c", "b"})

	// Delete "b" and renumber, as the store does.
	for i, topic := range topics {
		if topic.ID == "b" {
			topics = append(topics[:i], topics[i+1:]...)
			break
		}
	}
	topics = Renumber(topics)

	seen := make(map[float64]bool)
	for i, topic := range topics {
		if topic.SortOrder != float64(i+1) {
			t.Errorf("gap at position %d: sortOrder %v", i, topic.SortOrder)
		}
		if seen[topic.SortOrder] {
			t.Errorf("duplicate sortOrder %v", topic.SortOrder)
		}
		seen[topic.SortOrder] = true
	}
}
