package application

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestTopicFragmentUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     TopicFragment
		wantSubs []string
	}{
		{
			name:  "bare string is a leaf",
			input: `"Variables"`,
			want:  TopicFragment{Title: "Variables"},
		},
		{
			name:  "object with completed flag",
			input: `{"title":"Loops","completed":true}`,
			want:  TopicFragment{Title: "Loops", Completed: true},
		},
		{
			name:     "string sub-topics under bulk key",
			input:    `{"title":"Loops","subtopics":["for","while"]}`,
			want:     TopicFragment{Title: "Loops"},
			wantSubs: []string{"for", "while"},
		},
		{
			name:     "object sub-topics under export key",
			input:    `{"title":"Loops","subTopics":[{"title":"for","completed":true}]}`,
			want:     TopicFragment{Title: "Loops"},
			wantSubs: []string{"for"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var frag TopicFragment
			if err := json.Unmarshal([]byte(tt.input), &frag); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if frag.Title != tt.want.Title || frag.Completed != tt.want.Completed {
				t.Errorf("expected %+v, got %+v", tt.want, frag)
			}
			if len(frag.SubTopics) != len(tt.wantSubs) {
				t.Fatalf("expected %d sub-topics, got %d", len(tt.wantSubs), len(frag.SubTopics))
			}
			for i, sub := range tt.wantSubs {
				if frag.SubTopics[i].Title != sub {
					t.Errorf("sub-topic %d: expected %s, got %s", i, sub, frag.SubTopics[i].Title)
				}
			}
		})
	}

	t.Run("rejects non-string non-object entries", func(t *testing.T) {
		var frag TopicFragment
		err := json.Unmarshal([]byte(`42`), &frag)
		if err == nil {
			t.Fatal("expected error for numeric topic entry")
		}
		var fragErr *FragmentError
		if !errors.As(err, &fragErr) {
			t.Errorf("expected a *FragmentError, got %T", err)
		}
	})
}

func TestRoadmapFragmentLanguageKeys(t *testing.T) {
	t.Run("bulk languageId", func(t *testing.T) {
		var frag RoadmapFragment
		if err := json.Unmarshal([]byte(`{"languageId":"py","title":"Python"}`), &frag); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if frag.Language != "py" {
			t.Errorf("expected language py, got %s", frag.Language)
		}
	})

	t.Run("export language", func(t *testing.T) {
		var frag RoadmapFragment
		if err := json.Unmarshal([]byte(`{"language":"Python","title":"Python"}`), &frag); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if frag.Language != "Python" {
			t.Errorf("expected language Python, got %s", frag.Language)
		}
	})
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument([]byte(`{
		"roadmaps": [{"languageId":"go","title":"Go","sections":[{"title":"Basics","topics":["A"]}]}],
		"topics": ["Extra", {"title":"More"}]
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Roadmaps) != 1 || len(doc.Topics) != 2 {
		t.Errorf("unexpected document shape: %+v", doc)
	}

	if _, err := ParseDocument([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed document")
	}

	_, err = ParseDocument([]byte(`{"topics":[42]}`))
	var fragErr *FragmentError
	if !errors.As(err, &fragErr) {
		t.Errorf("expected a *FragmentError for a bad topic entry, got %v", err)
	}
}
