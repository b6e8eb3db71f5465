package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// noticeDuration is how long a notification stays visible.
const noticeDuration = 3000 * time.Millisecond

// NoticeKind classifies a notification for styling.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notice is the transient status message channel. A new notice replaces
// whatever is visible; there is no queue. The generation counter lets
// the expiry timer of a pre-empted notice be recognised as stale.
type Notice struct {
	Text    string
	Kind    NoticeKind
	gen     int
	visible bool
}

// Show displays a notification and returns the command that will expire
// it after the fixed display duration.
func (n *Notice) Show(text string, kind NoticeKind) tea.Cmd {
	n.Text = text
	n.Kind = kind
	n.visible = true
	n.gen++

	gen := n.gen
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{Gen: gen}
	})
}

// Expire hides the notice if gen is still the current generation.
// Expiry of a superseded generation is ignored.
func (n *Notice) Expire(gen int) {
	if gen == n.gen {
		n.visible = false
	}
}

// Visible reports whether a notification is currently displayed.
func (n *Notice) Visible() bool {
	return n.visible
}

// View renders the notice line, or an empty string when hidden.
func (n *Notice) View() string {
	if !n.visible {
		return ""
	}
	if n.Kind == NoticeError {
		return ErrorStyle.Render(n.Text)
	}
	return SuccessStyle.Render(n.Text)
}
