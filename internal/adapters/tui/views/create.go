package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"roadmapio/internal/adapters/tui/styles"
	"roadmapio/internal/application"
	"roadmapio/internal/application/commands"
	"roadmapio/internal/ports"
)

// CreateKeyMap defines key bindings for the create view
type CreateKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Tab    key.Binding
}

var CreateKeys = CreateKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "create"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
}

// CreateMode indicates what kind of node to create
type CreateMode int

const (
	CreateModeRoadmap CreateMode = iota
	CreateModeSection
	CreateModeTopic
	CreateModeSubTopic
)

// CreateModel is the model for the create view
type CreateModel struct {
	ViewState
	store        ports.RoadmapStore
	parentNode   *application.TreeNode
	mode         CreateMode
	titleInput   textinput.Model
	langInput    textinput.Model
	focusedField int
}

// NewCreateModel creates a new create view model
func NewCreateModel(store ports.RoadmapStore) *CreateModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.CharLimit = 100

	langInput := textinput.New()
	langInput.Placeholder = "Go, Python, ..."
	langInput.CharLimit = 40

	return &CreateModel{
		store:      store,
		titleInput: titleInput,
		langInput:  langInput,
	}
}

// SetParent sets the parent node for creation. The parent's kind decides
// what gets created: a roadmap at the root, a section under a roadmap, a
// topic under a section, a sub-topic under a topic.
func (m *CreateModel) SetParent(node *application.TreeNode) {
	m.parentNode = node
	m.ClearMessage()

	switch node.Kind {
	case application.NodeRoadmap:
		m.mode = CreateModeSection
	case application.NodeSection:
		m.mode = CreateModeTopic
	case application.NodeTopic:
		m.mode = CreateModeSubTopic
	default:
		m.mode = CreateModeRoadmap
	}

	m.titleInput.SetValue("")
	m.langInput.SetValue("")
	m.focusedField = 0
	m.titleInput.Focus()
	m.langInput.Blur()
}

// Init initializes the create view
func (m *CreateModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the create view
func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, CreateKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}

		case key.Matches(msg, CreateKeys.Tab):
			if m.mode == CreateModeRoadmap {
				m.focusedField = (m.focusedField + 1) % 2
				if m.focusedField == 0 {
					m.titleInput.Focus()
					m.langInput.Blur()
				} else {
					m.langInput.Focus()
					m.titleInput.Blur()
				}
			}
			return m, nil

		case key.Matches(msg, CreateKeys.Submit):
			return m, m.create()
		}
	}

	// Update focused input
	var cmd tea.Cmd
	if m.focusedField == 0 {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.langInput, cmd = m.langInput.Update(msg)
	}

	return m, cmd
}

func (m *CreateModel) create() tea.Cmd {
	return func() tea.Msg {
		title := strings.TrimSpace(m.titleInput.Value())
		if title == "" {
			return CreateErrMsg{Err: fmt.Errorf("title is required")}
		}

		ctx := context.Background()

		switch m.mode {
		case CreateModeRoadmap:
			language := strings.TrimSpace(m.langInput.Value())
			if language == "" {
				language = "General"
			}
			cmd := commands.NewAddRoadmapCommand(m.store, language, title, "")
			result, err := cmd.Execute(ctx)
			if err != nil {
				return CreateErrMsg{Err: err}
			}
			return CreateSuccessMsg{Message: result.Message}

		case CreateModeSection:
			cmd := commands.NewAddSectionCommand(m.store, m.parentNode.ID, title, "")
			result, err := cmd.Execute(ctx)
			if err != nil {
				return CreateErrMsg{Err: err}
			}
			return CreateSuccessMsg{Message: result.Message}

		case CreateModeTopic:
			cmd := commands.NewAddTopicCommand(m.store, m.parentNode.ID, title)
			result, err := cmd.Execute(ctx)
			if err != nil {
				return CreateErrMsg{Err: err}
			}
			return CreateSuccessMsg{Message: result.Message}

		default:
			sectionID := owningSectionID(m.parentNode)
			cmd := commands.NewAddSubTopicCommand(m.store, sectionID, m.parentNode.ID, title)
			result, err := cmd.Execute(ctx)
			if err != nil {
				return CreateErrMsg{Err: err}
			}
			return CreateSuccessMsg{Message: result.Message}
		}
	}
}

// CreateSuccessMsg indicates successful creation
type CreateSuccessMsg struct {
	Message string
}

// CreateErrMsg indicates an error during creation
type CreateErrMsg struct {
	Err error
}

// View renders the create view
func (m *CreateModel) View() string {
	var b strings.Builder

	var title, hint string
	switch m.mode {
	case CreateModeRoadmap:
		title = "New Roadmap"
		hint = "A new roadmap for a language or subject."
	case CreateModeSection:
		title = "New Section"
		hint = fmt.Sprintf("Appended to roadmap %q.", m.parentTitle())
	case CreateModeTopic:
		title = "New Topic"
		hint = fmt.Sprintf("Appended to section %q.", m.parentTitle())
	default:
		title = "New Sub-Topic"
		hint = fmt.Sprintf("Nested under topic %q. Sub-topics do not count toward progress.", m.parentTitle())
	}

	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(styles.Subtitle.Render(hint))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Title:"))
	b.WriteString("\n")
	if m.focusedField == 0 {
		b.WriteString(styles.InputFocused.Render(m.titleInput.View()))
	} else {
		b.WriteString(styles.InputField.Render(m.titleInput.View()))
	}
	b.WriteString("\n\n")

	if m.mode == CreateModeRoadmap {
		b.WriteString(styles.InputLabel.Render("Language:"))
		b.WriteString("\n")
		if m.focusedField == 1 {
			b.WriteString(styles.InputFocused.Render(m.langInput.View()))
		} else {
			b.WriteString(styles.InputField.Render(m.langInput.View()))
		}
		b.WriteString("\n\n")
	}

	if msg := m.RenderMessage(); msg != "" {
		b.WriteString(msg)
		b.WriteString("\n\n")
	}

	// Help
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s",
		styles.HelpKey.Render("tab"),
		styles.HelpDesc.Render("next field"),
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("create"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("cancel"),
	))

	return styles.App.Render(b.String())
}

func (m *CreateModel) parentTitle() string {
	if m.parentNode == nil {
		return ""
	}
	return m.parentNode.Title
}
