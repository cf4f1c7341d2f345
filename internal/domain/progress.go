package domain

import "math"

// Progress summarizes completion over a section's or roadmap's direct topics
type Progress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// SectionProgress counts a section's direct topics. Nested sub-topics are
// toggleable but do not contribute to the numbers; they are an
// organizational aid only.
func SectionProgress(s *Section) Progress {
	if s == nil {
		return Progress{}
	}
	p := Progress{Total: len(s.Topics)}
	for _, t := range s.Topics {
		if t.Completed {
			p.Completed++
		}
	}
	p.Percentage = percentage(p.Completed, p.Total)
	return p
}

// RoadmapProgress sums direct-topic counts across all of a roadmap's
// sections.
func RoadmapProgress(sections []*Section) Progress {
	var p Progress
	for _, s := range sections {
		sp := SectionProgress(s)
		p.Completed += sp.Completed
		p.Total += sp.Total
	}
	p.Percentage = percentage(p.Completed, p.Total)
	return p
}

// percentage rounds half-up to the nearest integer; zero total yields 0
func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
