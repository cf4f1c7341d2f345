package ports

import "roadmapio/internal/domain"

// RoadmapData holds the caller-supplied fields for a new roadmap
type RoadmapData struct {
	LanguageID  string
	Title       string
	Description string
}

// SectionData holds the caller-supplied fields for a new section.
// SortOrder 0 means "append after the existing sections"; a non-zero value
// (possibly fractional) is taken as-is.
type SectionData struct {
	RoadmapID   string
	Title       string
	Description string
	SortOrder   float64
	TargetCount int
}

// TopicData holds the caller-supplied fields for a new topic or sub-topic
type TopicData struct {
	Title     string
	Completed bool
	PostID    string
}

// SectionPatch carries optional field updates; nil means "leave unchanged"
type SectionPatch struct {
	Title       *string
	Description *string
	TargetCount *int
}

// TopicPatch carries optional field updates; nil means "leave unchanged"
type TopicPatch struct {
	Title     *string
	Completed *bool
}

// RoadmapStore owns the forest of roadmaps, sections and topics.
//
// All operations are synchronous and forgiving: an operation addressing a
// missing parent id is a silent no-op (add* return "" in that case). This
// keeps bulk imports from aborting halfway. Validation of required fields is
// the caller's responsibility.
type RoadmapStore interface {
	// Language catalog
	Languages() []*domain.Language
	Language(id string) *domain.Language
	FindLanguageByName(name string) *domain.Language
	AddLanguage(name string) *domain.Language

	// Roadmaps
	Roadmaps() []*domain.Roadmap
	Roadmap(id string) *domain.Roadmap
	FindRoadmapByTitle(title string) *domain.Roadmap
	AddRoadmap(data RoadmapData) string
	DeleteRoadmap(id string)

	// Sections
	Sections(roadmapID string) []*domain.Section
	Section(id string) *domain.Section
	AddSection(data SectionData) string
	UpdateSection(id string, patch SectionPatch)
	DeleteSection(id string)
	ReorderSections(roadmapID string, orderedIDs []string)

	// Topics (sub-topics included; located anywhere in a section's tree)
	Topic(sectionID, topicID string) *domain.Topic
	AddTopic(sectionID string, data TopicData) string
	AddSubTopic(sectionID, parentTopicID string, data TopicData) string
	UpdateTopic(sectionID, topicID string, patch TopicPatch)
	ToggleTopicComplete(sectionID, topicID string)
	AssignPostToTopic(sectionID, topicID, postID string)
	DeleteTopic(sectionID, topicID string)
	ReorderTopics(sectionID string, orderedIDs []string)

	// Progress
	RoadmapProgress(roadmapID string) domain.Progress
	SectionProgress(sectionID string) domain.Progress

	// Tree projection for navigation front ends
	BuildTree() *domain.TreeNode

	// Snapshot returns the whole store as a serializable document
	Snapshot() *domain.Snapshot

	// PersistErr reports the most recent snapshot write failure, if any.
	// Mutations themselves never fail on persistence errors.
	PersistErr() error
}
