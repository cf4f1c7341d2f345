package views

import "roadmapio/internal/adapters/tui/styles"

// ViewState carries the window size and the transient status message
// shared by every view model. Embed it to pick up the helpers below.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize records the current window dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets the status line shown at the bottom of the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage removes the status line
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// RenderMessage returns the styled status line, or "" when there is none
func (s *ViewState) RenderMessage() string {
	if s.Message == "" {
		return ""
	}
	if s.MessageErr {
		return styles.ErrorMsg.Render(s.Message)
	}
	return styles.Success.Render(s.Message)
}
