package application

import "roadmapio/internal/domain"

// Re-export domain types for use by adapters
type (
	Language = domain.Language
	Roadmap  = domain.Roadmap
	Section  = domain.Section
	Topic    = domain.Topic
	Progress = domain.Progress
	TreeNode = domain.TreeNode
)

// Re-export tree node kinds
const (
	NodeRoot    = domain.NodeRoot
	NodeRoadmap = domain.NodeRoadmap
	NodeSection = domain.NodeSection
	NodeTopic   = domain.NodeTopic
)
