package domain

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Basics", "basics"},
		{"Data Structures & Algorithms", "data-structures-algorithms"},
		{"  Web   APIs  ", "web-apis"},
		{"C++ Templates", "c-templates"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.want {
				t.Errorf("Slugify(%q) = %q, expected %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestTopicFindTopic(t *testing.T) {
	deep := &Topic{ID: "deep"}
	root := &Topic{ID: "root", SubTopics: []*Topic{
		{ID: "a"},
		{ID: "b", SubTopics: []*Topic{
			{ID: "c", SubTopics: []*Topic{deep}},
		}},
	}}

	if got := root.FindTopic("deep"); got != deep {
		t.Errorf("expected to find nested topic, got %v", got)
	}
	if got := root.FindTopic("root"); got != root {
		t.Errorf("expected to find the root itself, got %v", got)
	}
	if got := root.FindTopic("missing"); got != nil {
		t.Errorf("expected nil for missing id, got %v", got)
	}
}

func TestColorForLanguage(t *testing.T) {
	if got := ColorForLanguage("Python"); got != "#3776AB" {
		t.Errorf("expected Python color, got %s", got)
	}
	if got := ColorForLanguage("  go "); got != "#00ADD8" {
		t.Errorf("expected Go color, got %s", got)
	}
	if got := ColorForLanguage("Brainfuck"); got != DefaultLanguageColor {
		t.Errorf("expected default color, got %s", got)
	}
}

func TestTreeNodeFlatten(t *testing.T) {
	root := &TreeNode{Kind: NodeRoot, ID: "root", IsExpanded: true}
	roadmap := &TreeNode{Kind: NodeRoadmap, ID: "r1", Parent: root}
	section := &TreeNode{Kind: NodeSection, ID: "s1", Parent: roadmap}
	roadmap.Children = []*TreeNode{section}
	root.Children = []*TreeNode{roadmap}

	// Collapsed roadmap hides its section.
	flat := root.Flatten()
	if len(flat) != 2 {
		t.Fatalf("expected 2 visible nodes, got %d", len(flat))
	}

	roadmap.Expand()
	flat = root.Flatten()
	if len(flat) != 3 {
		t.Fatalf("expected 3 visible nodes after expand, got %d", len(flat))
	}
	if section.Depth() != 2 {
		t.Errorf("expected section depth 2, got %d", section.Depth())
	}
}
