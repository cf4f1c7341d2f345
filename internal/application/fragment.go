package application

import (
	"encoding/json"
	"fmt"
)

// ImportDocument is the bulk import schema. `roadmaps` create whole new
// roadmaps; `sections` and `topics` are appended to a caller-specified
// existing roadmap/section.
type ImportDocument struct {
	Roadmaps []RoadmapFragment `json:"roadmaps,omitempty"`
	Sections []SectionFragment `json:"sections,omitempty"`
	Topics   []TopicFragment   `json:"topics,omitempty"`
}

// RoadmapFragment is an externally produced, not-yet-merged roadmap tree.
// The language is referenced by name; bulk documents write it as
// "languageId" and exported documents as "language"; both are accepted.
type RoadmapFragment struct {
	Language    string
	Title       string
	Description string
	Sections    []SectionFragment
}

// UnmarshalJSON accepts both the bulk-import and the export spelling of the
// language reference.
func (r *RoadmapFragment) UnmarshalJSON(data []byte) error {
	var raw struct {
		LanguageID  string            `json:"languageId"`
		Language    string            `json:"language"`
		Title       string            `json:"title"`
		Description string            `json:"description"`
		Sections    []SectionFragment `json:"sections"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Language = raw.LanguageID
	if r.Language == "" {
		r.Language = raw.Language
	}
	r.Title = raw.Title
	r.Description = raw.Description
	r.Sections = raw.Sections
	return nil
}

// SectionFragment is a not-yet-merged section. SubSections are a
// "sub-roadmap-section" grouping: the merge engine flattens them into
// additional sections placed after the parent, not into structural children.
type SectionFragment struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Topics      []TopicFragment   `json:"topics,omitempty"`
	SubSections []SectionFragment `json:"subSections,omitempty"`
}

// TopicFragment is the tagged union of the two topic entry shapes: a bare
// string (leaf topic) or an object with a title and nested sub-topics. The
// union is resolved once here, at the JSON boundary.
type TopicFragment struct {
	Title     string
	Completed bool
	SubTopics []TopicFragment
}

// UnmarshalJSON decodes either a bare string or a topic object. Sub-topic
// entries may themselves be strings or objects, under either the bulk
// ("subtopics") or the export ("subTopics") key.
func (t *TopicFragment) UnmarshalJSON(data []byte) error {
	var title string
	if err := json.Unmarshal(data, &title); err == nil {
		t.Title = title
		t.Completed = false
		t.SubTopics = nil
		return nil
	}

	var raw struct {
		Title        string          `json:"title"`
		Completed    bool            `json:"completed"`
		Subtopics    []TopicFragment `json:"subtopics"`
		SubTopicsAlt []TopicFragment `json:"subTopics"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return &FragmentError{Reason: fmt.Sprintf("topic entry must be a string or an object: %v", err)}
	}
	t.Title = raw.Title
	t.Completed = raw.Completed
	t.SubTopics = raw.Subtopics
	if len(t.SubTopics) == 0 {
		t.SubTopics = raw.SubTopicsAlt
	}
	return nil
}

// ParseDocument decodes a bulk import JSON document
func ParseDocument(data []byte) (*ImportDocument, error) {
	var doc ImportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse import document: %w", err)
	}
	return &doc, nil
}
