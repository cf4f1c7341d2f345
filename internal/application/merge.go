package application

import (
	"strings"

	"roadmapio/internal/ports"
)

// SubSectionMarker prefixes the title of a flattened sub-section. It is a
// display convention: flattened sub-sections are ordinary sections placed
// fractionally after their parent, not structural children.
const SubSectionMarker = "↳ "

// SkippedFragment records why a fragment was not merged
type SkippedFragment struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// ImportReport summarizes one merge run
type ImportReport struct {
	CreatedRoadmapIDs []string          `json:"createdRoadmapIds"`
	Skipped           []SkippedFragment `json:"skipped,omitempty"`
}

// MergeFragments folds externally produced roadmap fragments into the
// store, strictly one fragment at a time in array order. All producers
// (built-in templates, bulk JSON uploads, generator outlines) funnel
// through here so dedup, language creation and ordering behave uniformly.
//
// A fragment whose roadmap title exactly matches an existing roadmap is
// skipped entirely and the existing roadmap is left untouched.
func MergeFragments(store ports.RoadmapStore, fragments []RoadmapFragment) *ImportReport {
	report := &ImportReport{}
	for _, frag := range fragments {
		mergeFragment(store, frag, report)
	}
	return report
}

func mergeFragment(store ports.RoadmapStore, frag RoadmapFragment, report *ImportReport) {
	title := strings.TrimSpace(frag.Title)
	if title == "" {
		report.Skipped = append(report.Skipped, SkippedFragment{
			Reason: "missing roadmap title",
		})
		return
	}

	if store.FindRoadmapByTitle(title) != nil {
		report.Skipped = append(report.Skipped, SkippedFragment{
			Title:  title,
			Reason: "a roadmap with this title already exists",
		})
		return
	}

	lang := ResolveLanguage(store, frag.Language)

	roadmapID := store.AddRoadmap(ports.RoadmapData{
		LanguageID:  lang.ID,
		Title:       title,
		Description: frag.Description,
	})

	MergeSections(store, roadmapID, frag.Sections)

	report.CreatedRoadmapIDs = append(report.CreatedRoadmapIDs, roadmapID)
}

// ResolveLanguage finds a language by case-insensitive name match, creating
// it with a deterministic color when absent. A blank reference falls back
// to a catch-all entry.
func ResolveLanguage(store ports.RoadmapStore, name string) *Language {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "General"
	}
	if lang := store.FindLanguageByName(name); lang != nil {
		return lang
	}
	return store.AddLanguage(name)
}

// MergeSections appends section fragments to an existing roadmap. Top-level
// sections are created first with ascending sortOrder; each section's
// subSections are then flattened into additional sections with a marker
// prefix and a fractional sortOrder between the parent and the next
// top-level section.
func MergeSections(store ports.RoadmapStore, roadmapID string, fragments []SectionFragment) {
	created := make([]string, len(fragments))
	for i, frag := range fragments {
		created[i] = store.AddSection(ports.SectionData{
			RoadmapID:   roadmapID,
			Title:       frag.Title,
			Description: frag.Description,
		})
		MergeTopics(store, created[i], frag.Topics)
	}

	for i, frag := range fragments {
		if len(frag.SubSections) == 0 {
			continue
		}
		parent := store.Section(created[i])
		if parent == nil {
			continue
		}
		step := 1.0 / float64(len(frag.SubSections)+1)
		for j, sub := range frag.SubSections {
			subID := store.AddSection(ports.SectionData{
				RoadmapID:   roadmapID,
				Title:       SubSectionMarker + sub.Title,
				Description: sub.Description,
				SortOrder:   parent.SortOrder + step*float64(j+1),
			})
			MergeTopics(store, subID, sub.Topics)
		}
	}
}

// MergeTopics appends topic fragments to an existing section, recursing
// into sub-topics at any depth.
func MergeTopics(store ports.RoadmapStore, sectionID string, fragments []TopicFragment) {
	for _, frag := range fragments {
		mergeTopic(store, sectionID, "", frag)
	}
}

func mergeTopic(store ports.RoadmapStore, sectionID, parentTopicID string, frag TopicFragment) {
	data := ports.TopicData{Title: frag.Title, Completed: frag.Completed}

	var id string
	if parentTopicID == "" {
		id = store.AddTopic(sectionID, data)
	} else {
		id = store.AddSubTopic(sectionID, parentTopicID, data)
	}
	if id == "" {
		return
	}

	for _, sub := range frag.SubTopics {
		mergeTopic(store, sectionID, id, sub)
	}
}

// MergeDocument applies a full bulk document: `roadmaps` become new
// roadmaps, `sections` are appended to targetRoadmapID and `topics` to
// targetSectionID (ignored when the respective target is empty).
func MergeDocument(store ports.RoadmapStore, doc *ImportDocument, targetRoadmapID, targetSectionID string) *ImportReport {
	report := MergeFragments(store, doc.Roadmaps)
	if targetRoadmapID != "" && len(doc.Sections) > 0 {
		MergeSections(store, targetRoadmapID, doc.Sections)
	}
	if targetSectionID != "" && len(doc.Topics) > 0 {
		MergeTopics(store, targetSectionID, doc.Topics)
	}
	return report
}

// OutlineFragment converts a generated outline into a mergeable fragment
func OutlineFragment(title, languageName string, sections []ports.OutlineSection) RoadmapFragment {
	frag := RoadmapFragment{
		Language: languageName,
		Title:    title,
	}
	for _, sec := range sections {
		sf := SectionFragment{Title: sec.Title, Description: sec.Description}
		for _, topic := range sec.Topics {
			tf := TopicFragment{Title: topic.Title}
			for _, sub := range topic.SubTopics {
				tf.SubTopics = append(tf.SubTopics, TopicFragment{Title: sub})
			}
			sf.Topics = append(sf.Topics, tf)
		}
		frag.Sections = append(frag.Sections, sf)
	}
	return frag
}
