package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"roadmapio/internal/adapters/tui/styles"
	"roadmapio/internal/application"
	"roadmapio/internal/application/commands"
	"roadmapio/internal/ports"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// DeleteModel asks for confirmation before deleting a node and everything
// below it.
type DeleteModel struct {
	ViewState
	store      ports.RoadmapStore
	targetNode *application.TreeNode
	keys       ConfirmKeyMap
}

// NewDeleteModel creates a new delete confirmation model
func NewDeleteModel(store ports.RoadmapStore) *DeleteModel {
	return &DeleteModel{
		store: store,
		keys:  DefaultConfirmKeys,
	}
}

// SetTarget sets the node to delete
func (m *DeleteModel) SetTarget(node *application.TreeNode) {
	m.targetNode = node
	m.ClearMessage()
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		case key.Matches(msg, m.keys.Confirm):
			return m, m.delete()
		}
	}

	return m, nil
}

func (m *DeleteModel) delete() tea.Cmd {
	node := m.targetNode
	return func() tea.Msg {
		if node == nil {
			return DeleteErrMsg{Err: fmt.Errorf("nothing selected")}
		}

		ctx := context.Background()

		switch node.Kind {
		case application.NodeRoadmap:
			result, err := commands.NewDeleteRoadmapCommand(m.store, node.ID).Execute(ctx)
			if err != nil {
				return DeleteErrMsg{Err: err}
			}
			return DeleteSuccessMsg{Message: result.Message}

		case application.NodeSection:
			result, err := commands.NewDeleteSectionCommand(m.store, node.ID).Execute(ctx)
			if err != nil {
				return DeleteErrMsg{Err: err}
			}
			return DeleteSuccessMsg{Message: result.Message}

		case application.NodeTopic:
			sectionID := owningSectionID(node)
			result, err := commands.NewDeleteTopicCommand(m.store, sectionID, node.ID).Execute(ctx)
			if err != nil {
				return DeleteErrMsg{Err: err}
			}
			return DeleteSuccessMsg{Message: result.Message}

		default:
			return DeleteErrMsg{Err: fmt.Errorf("cannot delete %s", node.Kind)}
		}
	}
}

// DeleteSuccessMsg indicates a completed deletion
type DeleteSuccessMsg struct {
	Message string
}

// DeleteErrMsg indicates a failed deletion
type DeleteErrMsg struct {
	Err error
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Delete"))
	b.WriteString("\n\n")

	if m.targetNode != nil {
		b.WriteString(styles.InputLabel.Render(fmt.Sprintf("Delete %s:", m.targetNode.Kind)))
		b.WriteString("\n")
		b.WriteString("  ")
		b.WriteString(m.targetNode.Title)
		b.WriteString("\n\n")

		if len(m.targetNode.Children) > 0 {
			b.WriteString(styles.ErrorMsg.Render("Everything below it will be deleted too."))
			b.WriteString("\n\n")
		}
	}

	if m.Message != "" {
		b.WriteString(styles.ErrorMsg.Render(m.Message))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))

	return styles.App.Render(b.String())
}
