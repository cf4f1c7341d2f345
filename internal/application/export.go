package application

import (
	"fmt"
	"strings"
	"time"

	"roadmapio/internal/domain"
	"roadmapio/internal/ports"
)

// TopicDocument mirrors the merge engine's topic object shape
type TopicDocument struct {
	Title     string          `json:"title"`
	Completed bool            `json:"completed"`
	SubTopics []TopicDocument `json:"subTopics,omitempty"`
}

// SectionDocument mirrors the merge engine's section fragment shape
type SectionDocument struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Topics      []TopicDocument `json:"topics"`
}

// RoadmapDocument is the portable export format. It is exactly the shape
// the merge engine accepts as a fragment, so export→import is a supported
// round trip (identifiers are regenerated on import).
type RoadmapDocument struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Language    string            `json:"language"`
	Progress    domain.Progress   `json:"progress"`
	ExportedAt  time.Time         `json:"exportedAt"`
	Sections    []SectionDocument `json:"sections"`
}

// ExportRoadmap serializes a roadmap subtree, sections and topics sorted by
// sortOrder, recursively for sub-topics.
func ExportRoadmap(store ports.RoadmapStore, roadmapID string) (*RoadmapDocument, error) {
	roadmap := store.Roadmap(roadmapID)
	if roadmap == nil {
		return nil, fmt.Errorf("roadmap %s: %w", roadmapID, ErrNotFound)
	}

	doc := &RoadmapDocument{
		Title:       roadmap.Title,
		Description: roadmap.Description,
		Progress:    store.RoadmapProgress(roadmapID),
		ExportedAt:  time.Now().UTC(),
		Sections:    []SectionDocument{},
	}
	if lang := store.Language(roadmap.LanguageID); lang != nil {
		doc.Language = lang.Name
	}

	for _, section := range store.Sections(roadmapID) {
		sd := SectionDocument{
			Title:       section.Title,
			Description: section.Description,
			Topics:      []TopicDocument{},
		}
		for _, topic := range domain.SortByOrder(section.Topics) {
			sd.Topics = append(sd.Topics, exportTopic(topic))
		}
		doc.Sections = append(doc.Sections, sd)
	}

	return doc, nil
}

func exportTopic(topic *domain.Topic) TopicDocument {
	td := TopicDocument{
		Title:     topic.Title,
		Completed: topic.Completed,
	}
	for _, sub := range domain.SortByOrder(topic.SubTopics) {
		td.SubTopics = append(td.SubTopics, exportTopic(sub))
	}
	return td
}

// ExportFilename derives a download filename from the roadmap title,
// replacing whitespace runs with hyphens.
func ExportFilename(title string) string {
	fields := strings.Fields(strings.TrimSpace(title))
	if len(fields) == 0 {
		return "roadmap.json"
	}
	return strings.Join(fields, "-") + ".json"
}
