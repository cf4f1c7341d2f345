package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"roadmapio/internal/adapters/tui/views"
	"roadmapio/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewCreate
	ViewDelete
	ViewHelp
)

// App is the main TUI application model
type App struct {
	store ports.RoadmapStore

	state   ViewState
	browser *views.BrowserModel
	create  *views.CreateModel
	delete  *views.DeleteModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(store ports.RoadmapStore) *App {
	return &App{
		store:   store,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(store),
		create:  views.NewCreateModel(store),
		delete:  views.NewDeleteModel(store),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.create.SetSize(msg.Width, msg.Height)
		a.delete.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToCreateMsg:
		a.state = ViewCreate
		a.create.SetParent(msg.ParentNode)
		return a, a.create.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.delete.SetTarget(msg.TargetNode)
		return a, a.delete.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()

	// Create view messages
	case views.CreateSuccessMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()

	case views.CreateErrMsg:
		a.create.SetMessage(msg.Err.Error(), true)
		return a, nil

	// Delete view messages
	case views.DeleteSuccessMsg:
		a.state = ViewBrowser
		return a, a.browser.Reload()

	case views.DeleteErrMsg:
		a.delete.SetMessage(msg.Err.Error(), true)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewCreate:
		_, cmd = a.create.Update(msg)
	case ViewDelete:
		_, cmd = a.delete.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewCreate:
		return a.create.View()
	case ViewDelete:
		return a.delete.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
