package memory

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"roadmapio/internal/domain"
	"roadmapio/internal/ports"
)

// topicRef locates a topic inside the recursive structure. parent is nil
// for a section's top-level topics.
type topicRef struct {
	sectionID string
	parent    *domain.Topic
	node      *domain.Topic
}

// Store implements ports.RoadmapStore with an in-memory forest.
//
// The recursive topic shape is kept for serialization, but every topic is
// also indexed in an arena keyed by id, so locating a topic anywhere in a
// section's tree is a map lookup instead of a recursive walk.
//
// A Store is an explicitly owned state object: tests construct isolated
// instances, there is no package-level state. All operations are
// synchronous; there is exactly one logical writer.
type Store struct {
	languages map[string]*domain.Language
	roadmaps  map[string]*domain.Roadmap
	sections  map[string]*domain.Section
	topics    map[string]topicRef

	snapshots  ports.SnapshotStore
	persistErr error
}

// Ensure Store implements RoadmapStore
var _ ports.RoadmapStore = (*Store)(nil)

// Option configures the Store
type Option func(*Store)

// WithSnapshotStore makes the store load its state from snap at
// construction and rewrite the snapshot after every mutation.
func WithSnapshotStore(snap ports.SnapshotStore) Option {
	return func(s *Store) {
		s.snapshots = snap
	}
}

// NewStore creates a store, restoring persisted state when a snapshot
// store is configured.
func NewStore(opts ...Option) *Store {
	s := &Store{
		languages: make(map[string]*domain.Language),
		roadmaps:  make(map[string]*domain.Roadmap),
		sections:  make(map[string]*domain.Section),
		topics:    make(map[string]topicRef),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.snapshots != nil {
		snap, err := s.snapshots.Load()
		if err != nil {
			s.persistErr = err
		} else if snap != nil {
			s.restore(snap)
		}
	}

	return s
}

// restore fills the maps from a snapshot and rebuilds the topic arena
func (s *Store) restore(snap *domain.Snapshot) {
	for _, lang := range snap.Languages {
		s.languages[lang.ID] = lang
	}
	for _, roadmap := range snap.Roadmaps {
		s.roadmaps[roadmap.ID] = roadmap
	}
	for _, section := range snap.Sections {
		s.sections[section.ID] = section
		for _, topic := range section.Topics {
			s.indexTopic(section.ID, nil, topic)
		}
	}
}

// indexTopic registers a topic subtree in the arena
func (s *Store) indexTopic(sectionID string, parent, topic *domain.Topic) {
	s.topics[topic.ID] = topicRef{sectionID: sectionID, parent: parent, node: topic}
	for _, sub := range topic.SubTopics {
		s.indexTopic(sectionID, topic, sub)
	}
}

// unindexTopic removes a topic subtree from the arena
func (s *Store) unindexTopic(topic *domain.Topic) {
	topic.Walk(func(t *domain.Topic) {
		delete(s.topics, t.ID)
	})
}

// save rewrites the whole snapshot. Persistence failures never fail the
// mutation that triggered them; the last error is kept for PersistErr.
func (s *Store) save() {
	if s.snapshots == nil {
		return
	}
	s.persistErr = s.snapshots.Save(s.Snapshot())
}

// PersistErr reports the most recent snapshot load/save failure, if any
func (s *Store) PersistErr() error {
	return s.persistErr
}

// --- Language catalog ---

// Languages returns all catalog entries sorted by name
func (s *Store) Languages() []*domain.Language {
	languages := make([]*domain.Language, 0, len(s.languages))
	for _, lang := range s.languages {
		languages = append(languages, lang)
	}
	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Name < languages[j].Name
	})
	return languages
}

// Language returns a catalog entry by id, or nil
func (s *Store) Language(id string) *domain.Language {
	return s.languages[id]
}

// FindLanguageByName matches a language by name, case-insensitively
func (s *Store) FindLanguageByName(name string) *domain.Language {
	for _, lang := range s.languages {
		if strings.EqualFold(lang.Name, name) {
			return lang
		}
	}
	return nil
}

// AddLanguage creates a catalog entry with a deterministic color
func (s *Store) AddLanguage(name string) *domain.Language {
	lang := &domain.Language{
		ID:    uuid.NewString(),
		Name:  name,
		Color: domain.ColorForLanguage(name),
	}
	s.languages[lang.ID] = lang
	s.save()
	return lang
}

// --- Roadmaps ---

// Roadmaps returns all roadmaps, oldest first
func (s *Store) Roadmaps() []*domain.Roadmap {
	roadmaps := make([]*domain.Roadmap, 0, len(s.roadmaps))
	for _, roadmap := range s.roadmaps {
		roadmaps = append(roadmaps, roadmap)
	}
	sort.Slice(roadmaps, func(i, j int) bool {
		if roadmaps[i].CreatedAt.Equal(roadmaps[j].CreatedAt) {
			return roadmaps[i].Title < roadmaps[j].Title
		}
		return roadmaps[i].CreatedAt.Before(roadmaps[j].CreatedAt)
	})
	return roadmaps
}

// Roadmap returns a roadmap by id, or nil
func (s *Store) Roadmap(id string) *domain.Roadmap {
	return s.roadmaps[id]
}

// FindRoadmapByTitle returns the roadmap with an exactly matching title,
// or nil. Import dedup relies on the match being exact.
func (s *Store) FindRoadmapByTitle(title string) *domain.Roadmap {
	for _, roadmap := range s.roadmaps {
		if roadmap.Title == title {
			return roadmap
		}
	}
	return nil
}

// AddRoadmap creates a roadmap and returns its id
func (s *Store) AddRoadmap(data ports.RoadmapData) string {
	roadmap := &domain.Roadmap{
		ID:          uuid.NewString(),
		LanguageID:  data.LanguageID,
		Title:       data.Title,
		Description: data.Description,
		CreatedAt:   time.Now().UTC(),
	}
	s.roadmaps[roadmap.ID] = roadmap
	s.save()
	return roadmap.ID
}

// DeleteRoadmap removes a roadmap and cascades to its sections and their
// topics. Missing id is a no-op.
func (s *Store) DeleteRoadmap(id string) {
	if _, ok := s.roadmaps[id]; !ok {
		return
	}
	for _, section := range s.sectionsOf(id) {
		s.removeSection(section)
	}
	delete(s.roadmaps, id)
	s.save()
}

// --- Sections ---

// Sections returns a roadmap's sections sorted by sortOrder
func (s *Store) Sections(roadmapID string) []*domain.Section {
	return domain.SortByOrder(s.sectionsOf(roadmapID))
}

func (s *Store) sectionsOf(roadmapID string) []*domain.Section {
	var sections []*domain.Section
	for _, section := range s.sections {
		if section.RoadmapID == roadmapID {
			sections = append(sections, section)
		}
	}
	// Map iteration order is random; make equal sortOrders stable.
	sort.Slice(sections, func(i, j int) bool {
		if sections[i].SortOrder == sections[j].SortOrder {
			return sections[i].ID < sections[j].ID
		}
		return sections[i].SortOrder < sections[j].SortOrder
	})
	return sections
}

// Section returns a section by id, or nil
func (s *Store) Section(id string) *domain.Section {
	return s.sections[id]
}

// AddSection creates a section under an existing roadmap and returns its
// id. A zero SortOrder appends after the existing sections; any other
// value, fractional included, is taken as-is. Missing roadmap is a no-op.
func (s *Store) AddSection(data ports.SectionData) string {
	if _, ok := s.roadmaps[data.RoadmapID]; !ok {
		return ""
	}
	section := &domain.Section{
		ID:          uuid.NewString(),
		RoadmapID:   data.RoadmapID,
		Title:       data.Title,
		Slug:        domain.Slugify(data.Title),
		Description: data.Description,
		SortOrder:   data.SortOrder,
		TargetCount: data.TargetCount,
		Topics:      []*domain.Topic{},
	}
	if section.SortOrder == 0 {
		domain.InsertAppend(s.sectionsOf(data.RoadmapID), section)
	}
	s.sections[section.ID] = section
	s.save()
	return section.ID
}

// UpdateSection applies a patch to a section. Missing id is a no-op.
func (s *Store) UpdateSection(id string, patch ports.SectionPatch) {
	section, ok := s.sections[id]
	if !ok {
		return
	}
	if patch.Title != nil {
		section.Title = *patch.Title
		section.Slug = domain.Slugify(*patch.Title)
	}
	if patch.Description != nil {
		section.Description = *patch.Description
	}
	if patch.TargetCount != nil {
		section.TargetCount = *patch.TargetCount
	}
	s.save()
}

// DeleteSection removes a section and cascades to its topics, then
// renumbers the remaining siblings. Missing id is a no-op.
func (s *Store) DeleteSection(id string) {
	section, ok := s.sections[id]
	if !ok {
		return
	}
	roadmapID := section.RoadmapID
	s.removeSection(section)
	domain.Renumber(s.sectionsOf(roadmapID))
	s.save()
}

func (s *Store) removeSection(section *domain.Section) {
	for _, topic := range section.Topics {
		s.unindexTopic(topic)
	}
	delete(s.sections, section.ID)
}

// ReorderSections applies a caller-supplied section order and renumbers.
// Missing roadmap is a no-op.
func (s *Store) ReorderSections(roadmapID string, orderedIDs []string) {
	if _, ok := s.roadmaps[roadmapID]; !ok {
		return
	}
	domain.ReorderByIDs(s.sectionsOf(roadmapID), orderedIDs)
	s.save()
}

// --- Topics ---

// Topic returns a topic located anywhere in a section's tree, or nil
func (s *Store) Topic(sectionID, topicID string) *domain.Topic {
	ref, ok := s.topics[topicID]
	if !ok || ref.sectionID != sectionID {
		return nil
	}
	return ref.node
}

// AddTopic appends a top-level topic to a section and returns its id.
// Missing section is a no-op.
func (s *Store) AddTopic(sectionID string, data ports.TopicData) string {
	section, ok := s.sections[sectionID]
	if !ok {
		return ""
	}
	topic := s.newTopic(data)
	section.Topics = domain.InsertAppend(section.Topics, topic)
	s.topics[topic.ID] = topicRef{sectionID: sectionID, node: topic}
	s.save()
	return topic.ID
}

// AddSubTopic appends a topic under a parent topic located anywhere in the
// section's tree. Missing section or parent is a no-op.
func (s *Store) AddSubTopic(sectionID, parentTopicID string, data ports.TopicData) string {
	parent := s.Topic(sectionID, parentTopicID)
	if parent == nil {
		return ""
	}
	topic := s.newTopic(data)
	parent.SubTopics = domain.InsertAppend(parent.SubTopics, topic)
	s.topics[topic.ID] = topicRef{sectionID: sectionID, parent: parent, node: topic}
	s.save()
	return topic.ID
}

func (s *Store) newTopic(data ports.TopicData) *domain.Topic {
	return &domain.Topic{
		ID:        uuid.NewString(),
		Title:     data.Title,
		Completed: data.Completed,
		PostID:    data.PostID,
	}
}

// UpdateTopic applies a patch to a topic. Missing target is a no-op.
func (s *Store) UpdateTopic(sectionID, topicID string, patch ports.TopicPatch) {
	topic := s.Topic(sectionID, topicID)
	if topic == nil {
		return
	}
	if patch.Title != nil {
		topic.Title = *patch.Title
	}
	if patch.Completed != nil {
		topic.Completed = *patch.Completed
	}
	s.save()
}

// ToggleTopicComplete flips a topic's completion flag. Only that topic's
// flag changes; sibling ordering and sub-topic flags are untouched.
func (s *Store) ToggleTopicComplete(sectionID, topicID string) {
	topic := s.Topic(sectionID, topicID)
	if topic == nil {
		return
	}
	topic.Completed = !topic.Completed
	s.save()
}

// AssignPostToTopic sets or clears the weak post reference. The id is
// stored as-is; broken references are the caller's concern.
func (s *Store) AssignPostToTopic(sectionID, topicID, postID string) {
	topic := s.Topic(sectionID, topicID)
	if topic == nil {
		return
	}
	topic.PostID = postID
	s.save()
}

// DeleteTopic removes a topic and its whole subtree, then renumbers the
// remaining siblings. Missing target is a no-op.
func (s *Store) DeleteTopic(sectionID, topicID string) {
	ref, ok := s.topics[topicID]
	if !ok || ref.sectionID != sectionID {
		return
	}

	s.unindexTopic(ref.node)

	if ref.parent != nil {
		ref.parent.SubTopics = domain.Renumber(removeTopic(ref.parent.SubTopics, topicID))
	} else if section := s.sections[sectionID]; section != nil {
		section.Topics = domain.Renumber(removeTopic(section.Topics, topicID))
	}
	s.save()
}

func removeTopic(topics []*domain.Topic, id string) []*domain.Topic {
	for i, topic := range topics {
		if topic.ID == id {
			return append(topics[:i], topics[i+1:]...)
		}
	}
	return topics
}

// ReorderTopics applies a caller-supplied order to a section's top-level
// topics and renumbers. Missing section is a no-op.
func (s *Store) ReorderTopics(sectionID string, orderedIDs []string) {
	section, ok := s.sections[sectionID]
	if !ok {
		return
	}
	section.Topics = domain.ReorderByIDs(section.Topics, orderedIDs)
	s.save()
}

// --- Progress ---

// RoadmapProgress aggregates completion over a roadmap's sections
func (s *Store) RoadmapProgress(roadmapID string) domain.Progress {
	return domain.RoadmapProgress(s.sectionsOf(roadmapID))
}

// SectionProgress aggregates completion over a section's direct topics
func (s *Store) SectionProgress(sectionID string) domain.Progress {
	return domain.SectionProgress(s.sections[sectionID])
}

// --- Tree projection ---

// BuildTree returns a read-only navigation tree over the whole store
func (s *Store) BuildTree() *domain.TreeNode {
	root := &domain.TreeNode{Kind: domain.NodeRoot, ID: "root", IsExpanded: true}

	for _, roadmap := range s.Roadmaps() {
		rn := &domain.TreeNode{
			Kind:     domain.NodeRoadmap,
			ID:       roadmap.ID,
			Title:    roadmap.Title,
			Progress: s.RoadmapProgress(roadmap.ID),
			Parent:   root,
		}
		for _, section := range s.Sections(roadmap.ID) {
			sn := &domain.TreeNode{
				Kind:     domain.NodeSection,
				ID:       section.ID,
				Title:    section.Title,
				Progress: domain.SectionProgress(section),
				Parent:   rn,
			}
			for _, topic := range domain.SortByOrder(section.Topics) {
				sn.Children = append(sn.Children, buildTopicNode(topic, sn))
			}
			rn.Children = append(rn.Children, sn)
		}
		root.Children = append(root.Children, rn)
	}

	return root
}

func buildTopicNode(topic *domain.Topic, parent *domain.TreeNode) *domain.TreeNode {
	tn := &domain.TreeNode{
		Kind:      domain.NodeTopic,
		ID:        topic.ID,
		Title:     topic.Title,
		Completed: topic.Completed,
		Parent:    parent,
	}
	for _, sub := range domain.SortByOrder(topic.SubTopics) {
		tn.Children = append(tn.Children, buildTopicNode(sub, tn))
	}
	return tn
}

// --- Snapshot ---

// Snapshot returns the whole store as a serializable document. The
// returned slices reference live entities; callers serialize before the
// next mutation (there is one logical writer, so this holds).
func (s *Store) Snapshot() *domain.Snapshot {
	snap := &domain.Snapshot{
		Languages: s.Languages(),
		Roadmaps:  s.Roadmaps(),
		Sections:  []*domain.Section{},
	}
	for _, roadmap := range snap.Roadmaps {
		snap.Sections = append(snap.Sections, s.Sections(roadmap.ID)...)
	}
	return snap
}
