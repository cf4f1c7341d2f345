package ports

import "context"

// OutlineTopic is a topic in a generated roadmap outline. Sub-topics come
// back as plain titles; the merge engine turns them into one level of
// nested topics.
type OutlineTopic struct {
	Title     string
	SubTopics []string
}

// OutlineSection is a section in a generated roadmap outline
type OutlineSection struct {
	Title       string
	Description string
	Topics      []OutlineTopic
}

// RoadmapGenerator produces a roadmap outline for a title and language.
// Implementations return a fully-materialized outline; the merge engine
// never awaits anything itself.
type RoadmapGenerator interface {
	GenerateRoadmap(ctx context.Context, title, languageName string) ([]OutlineSection, error)

	// IsAvailable returns true if the generator backend is reachable
	// (e.g. the claude CLI is installed, or an endpoint is configured)
	IsAvailable() bool
}
