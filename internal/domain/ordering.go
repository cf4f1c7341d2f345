package domain

import "slices"

// Orderable is implemented by nodes that participate in sibling ordering
// (sections of a roadmap, topics of a section, sub-topics of a topic).
type Orderable interface {
	Key() string
	Order() float64
	SetOrder(float64)
}

// Renumber assigns sortOrder = index+1 in array order, producing a dense
// ascending sequence starting at 1.
func Renumber[T Orderable](siblings []T) []T {
	for i, n := range siblings {
		n.SetOrder(float64(i + 1))
	}
	return siblings
}

// MoveNode relocates the element with fromID next to the element with toID
// (remove at source index, insert at destination index) and renumbers.
// If either id is missing the input is returned unchanged.
func MoveNode[T Orderable](siblings []T, fromID, toID string) []T {
	from := indexOf(siblings, fromID)
	to := indexOf(siblings, toID)
	if from < 0 || to < 0 || from == to {
		return siblings
	}
	moved := siblings[from]
	siblings = slices.Delete(siblings, from, from+1)
	siblings = slices.Insert(siblings, to, moved)
	return Renumber(siblings)
}

// InsertAppend appends a node with sortOrder = max(existing)+1, or 1 when
// the sibling list is empty. Existing siblings are not renumbered.
func InsertAppend[T Orderable](siblings []T, node T) []T {
	max := 0.0
	for _, n := range siblings {
		if n.Order() > max {
			max = n.Order()
		}
	}
	node.SetOrder(max + 1)
	return append(siblings, node)
}

// ReorderByIDs rebuilds the sibling list in the caller-supplied id order and
// renumbers. Ids not present in the list are ignored; siblings missing from
// the supplied order keep their relative position, appended at the end.
func ReorderByIDs[T Orderable](siblings []T, orderedIDs []string) []T {
	seen := make(map[string]bool, len(orderedIDs))
	reordered := make([]T, 0, len(siblings))
	for _, id := range orderedIDs {
		if i := indexOf(siblings, id); i >= 0 && !seen[id] {
			reordered = append(reordered, siblings[i])
			seen[id] = true
		}
	}
	for _, n := range siblings {
		if !seen[n.Key()] {
			reordered = append(reordered, n)
		}
	}
	return Renumber(reordered)
}

// SortByOrder sorts siblings ascending by sortOrder in place
func SortByOrder[T Orderable](siblings []T) []T {
	slices.SortStableFunc(siblings, func(a, b T) int {
		switch {
		case a.Order() < b.Order():
			return -1
		case a.Order() > b.Order():
			return 1
		default:
			return 0
		}
	})
	return siblings
}

func indexOf[T Orderable](siblings []T, id string) int {
	for i, n := range siblings {
		if n.Key() == id {
			return i
		}
	}
	return -1
}
