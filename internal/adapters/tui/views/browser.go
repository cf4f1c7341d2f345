package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"roadmapio/internal/adapters/tui/styles"
	"roadmapio/internal/application"
	"roadmapio/internal/application/commands"
	"roadmapio/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Toggle key.Binding
	New    key.Binding
	Delete key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle/expand"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle done"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel is the model for the roadmap tree browser view
type BrowserModel struct {
	ViewState
	store     ports.RoadmapStore
	root      *application.TreeNode
	flatNodes []*application.TreeNode
	cursor    int
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(store ports.RoadmapStore) *BrowserModel {
	return &BrowserModel{
		store: store,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadTree
}

func (m *BrowserModel) loadTree() tea.Msg {
	return treeLoadedMsg{m.store.BuildTree()}
}

type treeLoadedMsg struct {
	root *application.TreeNode
}

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case treeLoadedMsg:
		m.root = msg.root
		m.refreshFlatNodes()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, m.reloadExpanded()

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.flatNodes)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Left):
			if node := m.selectedNode(); node != nil {
				if node.IsExpanded && len(node.Children) > 0 {
					node.Collapse()
					m.refreshFlatNodes()
				} else if node.Parent != nil && node.Parent.Kind != application.NodeRoot {
					for i, n := range m.flatNodes {
						if n == node.Parent {
							m.cursor = i
							break
						}
					}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Right):
			if node := m.selectedNode(); node != nil && len(node.Children) > 0 {
				node.Expand()
				m.refreshFlatNodes()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Enter):
			if node := m.selectedNode(); node != nil {
				if node.Kind == application.NodeTopic && len(node.Children) == 0 {
					return m, m.toggleTopic(node)
				}
				node.Toggle()
				m.refreshFlatNodes()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Toggle):
			if node := m.selectedNode(); node != nil && node.Kind == application.NodeTopic {
				return m, m.toggleTopic(node)
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.New):
			node := m.selectedNode()
			if node == nil {
				node = m.root
			}
			return m, func() tea.Msg {
				return SwitchToCreateMsg{ParentNode: node}
			}

		case key.Matches(msg, BrowserKeys.Delete):
			if node := m.selectedNode(); node != nil {
				return m, func() tea.Msg {
					return SwitchToDeleteMsg{TargetNode: node}
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *BrowserModel) toggleTopic(node *application.TreeNode) tea.Cmd {
	sectionID := owningSectionID(node)
	return func() tea.Msg {
		cmd := commands.NewToggleTopicCommand(m.store, sectionID, node.ID)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{result.Message}
	}
}

// owningSectionID walks up the tree to the section a topic belongs to
func owningSectionID(node *application.TreeNode) string {
	for current := node; current != nil; current = current.Parent {
		if current.Kind == application.NodeSection {
			return current.ID
		}
	}
	return ""
}

func (m *BrowserModel) selectedNode() *application.TreeNode {
	if m.cursor >= 0 && m.cursor < len(m.flatNodes) {
		return m.flatNodes[m.cursor]
	}
	return nil
}

func (m *BrowserModel) refreshFlatNodes() {
	if m.root == nil {
		return
	}
	m.flatNodes = m.root.Flatten()
	// Skip root node in display
	if len(m.flatNodes) > 0 {
		m.flatNodes = m.flatNodes[1:]
	}
	// Clamp cursor
	if m.cursor >= len(m.flatNodes) {
		m.cursor = len(m.flatNodes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// reloadExpanded rebuilds the tree while keeping the current expansion state
func (m *BrowserModel) reloadExpanded() tea.Cmd {
	expanded := make(map[string]bool)
	if m.root != nil {
		collectExpanded(m.root, expanded)
	}
	return func() tea.Msg {
		root := m.store.BuildTree()
		applyExpanded(root, expanded)
		return treeLoadedMsg{root}
	}
}

func collectExpanded(node *application.TreeNode, expanded map[string]bool) {
	if node.IsExpanded {
		expanded[node.ID] = true
	}
	for _, child := range node.Children {
		collectExpanded(child, expanded)
	}
}

func applyExpanded(node *application.TreeNode, expanded map[string]bool) {
	if expanded[node.ID] {
		node.IsExpanded = true
	}
	for _, child := range node.Children {
		applyExpanded(child, expanded)
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	if m.root == nil {
		return "Loading..."
	}

	var b strings.Builder

	// Title
	b.WriteString(styles.Title.Render("Roadmapio"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Learning Roadmap Tracker"))
	b.WriteString("\n\n")

	if len(m.flatNodes) == 0 {
		b.WriteString(styles.MutedText.Render("No roadmaps yet. Press n to create one."))
		b.WriteString("\n")
	}

	// Tree
	for i, node := range m.flatNodes {
		line := m.renderNode(node, i == m.cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}

	if msg := m.RenderMessage(); msg != "" {
		b.WriteString("\n")
		b.WriteString(msg)
	}

	// Help line
	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderNode(node *application.TreeNode, selected bool) string {
	depth := node.Depth()
	indent := strings.Repeat("  ", depth-1)

	// Prefix (expand indicator)
	var prefix string
	if len(node.Children) == 0 {
		prefix = styles.TreeLeaf
	} else if node.IsExpanded {
		prefix = styles.TreeExpanded
	} else {
		prefix = styles.TreeCollapsed
	}

	var text string
	var style lipgloss.Style
	switch node.Kind {
	case application.NodeRoadmap:
		text = fmt.Sprintf("%s (%d%%)", node.Title, node.Progress.Percentage)
		style = styles.NodeRoadmap
	case application.NodeSection:
		text = fmt.Sprintf("%s  %d/%d", node.Title, node.Progress.Completed, node.Progress.Total)
		style = styles.NodeSection
	default:
		mark := "[ ]"
		style = styles.NodeTopic
		if node.Completed {
			mark = "[x]"
			style = styles.NodeDone
		}
		text = fmt.Sprintf("%s %s", mark, node.Title)
	}

	styledText := style.Render(text)
	if selected {
		styledText = styles.NodeSelected.Render(text)
	}

	return fmt.Sprintf("%s%s%s", indent, styles.TreeBranch.Render(prefix), styledText)
}

func (m *BrowserModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "navigate"},
		{"h/l", "collapse/expand"},
		{"space", "toggle done"},
		{"n", "new"},
		{"d", "delete"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// Reload rebuilds the tree from the store
func (m *BrowserModel) Reload() tea.Cmd {
	return m.reloadExpanded()
}

// Messages for view switching
type SwitchToCreateMsg struct {
	ParentNode *application.TreeNode
}

type SwitchToDeleteMsg struct {
	TargetNode *application.TreeNode
}

type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}
