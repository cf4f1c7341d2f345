package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"roadmapio/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Roadmapio Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Learning Roadmap Tracker"))
	b.WriteString("\n\n")

	// Navigation section
	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / ←", "Collapse / go to parent"))
	b.WriteString(helpLine("l / →", "Expand"))
	b.WriteString(helpLine("Enter", "Toggle topic / expand"))
	b.WriteString("\n")

	// Actions section
	b.WriteString(styles.InputLabel.Render("Actions"))
	b.WriteString("\n")
	b.WriteString(helpLine("Space", "Mark topic done/open"))
	b.WriteString(helpLine("n", "New roadmap/section/topic under selection"))
	b.WriteString(helpLine("d", "Delete selection and its subtree"))
	b.WriteString("\n")

	// General section
	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	// Structure info
	b.WriteString(styles.InputLabel.Render("Structure"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Roadmap  : a language or subject you are learning"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Section  : an ordered stage of the roadmap"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Topic    : a checkable unit of work"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Sub-topic: a nested note; excluded from progress"))
	b.WriteString("\n\n")

	// Close hint
	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
