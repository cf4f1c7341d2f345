package domain

import (
	"strings"
	"time"
)

// Language represents a programming language tracked by the dashboard
type Language struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // Hex color, e.g. "#3776AB"
}

// Roadmap is a top-level learning plan for one language
type Roadmap struct {
	ID          string    `json:"id"`
	LanguageID  string    `json:"languageId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Section is an ordered grouping of topics within a roadmap.
// SortOrder is a float so flattened sub-sections can sit between two
// top-level sections; renumbering always assigns dense integers 1..n.
type Section struct {
	ID          string   `json:"id"`
	RoadmapID   string   `json:"roadmapId"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description,omitempty"`
	SortOrder   float64  `json:"sortOrder"`
	TargetCount int      `json:"targetCount,omitempty"`
	Topics      []*Topic `json:"topics"`
}

// Topic is a learning item; it may recursively contain sub-topics.
// PostID is a weak reference to an external post; it is stored as-is and
// never validated.
type Topic struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Completed bool     `json:"completed"`
	PostID    string   `json:"postId,omitempty"`
	SortOrder float64  `json:"sortOrder"`
	SubTopics []*Topic `json:"subTopics,omitempty"`
}

// Key returns the topic id for sibling ordering
func (t *Topic) Key() string { return t.ID }

// Order returns the topic sort order
func (t *Topic) Order() float64 { return t.SortOrder }

// SetOrder sets the topic sort order
func (t *Topic) SetOrder(o float64) { t.SortOrder = o }

// Key returns the section id for sibling ordering
func (s *Section) Key() string { return s.ID }

// Order returns the section sort order
func (s *Section) Order() float64 { return s.SortOrder }

// SetOrder sets the section sort order
func (s *Section) SetOrder(o float64) { s.SortOrder = o }

// FindTopic searches a topic subtree depth-first by id
func (t *Topic) FindTopic(id string) *Topic {
	if t.ID == id {
		return t
	}
	for _, sub := range t.SubTopics {
		if found := sub.FindTopic(id); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits the topic and all of its sub-topics depth-first
func (t *Topic) Walk(fn func(*Topic)) {
	fn(t)
	for _, sub := range t.SubTopics {
		sub.Walk(fn)
	}
}

// Snapshot is the whole tree store serialized as one document.
// It is persisted wholesale on every mutation and loaded wholesale at
// startup.
type Snapshot struct {
	Languages []*Language `json:"languages"`
	Roadmaps  []*Roadmap  `json:"roadmaps"`
	Sections  []*Section  `json:"sections"`
}

// Slugify derives a section slug from its title
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
