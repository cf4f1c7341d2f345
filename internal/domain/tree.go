package domain

// NodeKind identifies what a tree node represents
type NodeKind int

const (
	NodeRoot NodeKind = iota
	NodeRoadmap
	NodeSection
	NodeTopic
)

// String returns a human-readable kind name
func (k NodeKind) String() string {
	switch k {
	case NodeRoadmap:
		return "roadmap"
	case NodeSection:
		return "section"
	case NodeTopic:
		return "topic"
	default:
		return "root"
	}
}

// TreeNode represents a node in the roadmap tree for navigation.
// It is a read-only projection; mutations go through the store.
type TreeNode struct {
	Kind       NodeKind
	ID         string
	Title      string
	Completed  bool     // Topics only
	Progress   Progress // Roadmaps and sections only
	Children   []*TreeNode
	IsExpanded bool
	Parent     *TreeNode
}

// Flatten returns all visible nodes in the tree (for list rendering)
func (n *TreeNode) Flatten() []*TreeNode {
	var result []*TreeNode
	n.flattenRecursive(&result)
	return result
}

func (n *TreeNode) flattenRecursive(result *[]*TreeNode) {
	*result = append(*result, n)
	if n.IsExpanded {
		for _, child := range n.Children {
			child.flattenRecursive(result)
		}
	}
}

// Depth returns the depth of this node in the tree
func (n *TreeNode) Depth() int {
	depth := 0
	current := n.Parent
	for current != nil {
		depth++
		current = current.Parent
	}
	return depth
}

// Toggle expands or collapses the node
func (n *TreeNode) Toggle() {
	n.IsExpanded = !n.IsExpanded
}

// Expand sets the node as expanded
func (n *TreeNode) Expand() {
	n.IsExpanded = true
}

// Collapse sets the node as collapsed
func (n *TreeNode) Collapse() {
	n.IsExpanded = false
}
