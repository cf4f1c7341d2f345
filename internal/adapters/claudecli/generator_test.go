package claudecli

import (
	"strings"
	"testing"
)

func TestParseOutline(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantSections int
		wantErr      bool
	}{
		{
			name:         "plain JSON array",
			input:        `[{"title": "Fundamentals", "topics": [{"title": "Variables"}]}]`,
			wantSections: 1,
		},
		{
			name: "JSON in code block",
			input: "Here is the outline:\n```json\n" +
				`[{"title": "Fundamentals", "topics": [{"title": "Variables"}]}]` +
				"\n```",
			wantSections: 1,
		},
		{
			name:         "surrounding prose",
			input:        `Sure! [{"title": "Basics", "topics": []}, {"title": "Advanced", "topics": []}] Hope that helps.`,
			wantSections: 2,
		},
		{
			name:    "no JSON at all",
			input:   "I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "only invalid entries",
			input:   `[{"title": "", "topics": []}]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections, err := parseOutline(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseOutline() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && len(sections) != tt.wantSections {
				t.Errorf("sections = %d, want %d", len(sections), tt.wantSections)
			}
		})
	}
}

func TestParseOutlineSubTopics(t *testing.T) {
	input := `[{"title": "Fundamentals", "topics": [{"title": "Control flow", "subtopics": ["Conditionals", "Loops"]}]}]`

	sections, err := parseOutline(input)
	if err != nil {
		t.Fatalf("parseOutline() error = %v", err)
	}
	if len(sections[0].Topics) != 1 {
		t.Fatalf("topics = %d, want 1", len(sections[0].Topics))
	}
	if got := sections[0].Topics[0].SubTopics; len(got) != 2 || got[0] != "Conditionals" {
		t.Errorf("sub-topics = %v, want [Conditionals Loops]", got)
	}
}

func TestBuildOutlinePrompt(t *testing.T) {
	prompt := buildOutlinePrompt("Go Roadmap", "Go")
	if !strings.Contains(prompt, "Go Roadmap (Go)") {
		t.Errorf("prompt should include title and language, got: %s", prompt)
	}

	bare := buildOutlinePrompt("Go Roadmap", "")
	if strings.Contains(bare, "()") {
		t.Errorf("prompt should not include empty language parens, got: %s", bare)
	}
}
