package ui

import (
	"github.com/anisan-cli/eprange/icon"
	"github.com/anisan-cli/eprange/style"
	"github.com/anisan-cli/eprange/util"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// AlertDismissedMsg is sent once the user closes an alert.
type AlertDismissedMsg struct{}

// Alert is a modal message. While open it swallows every key except the dismiss keys.
type Alert struct {
	message string
	open    bool
	dismiss key.Binding
}

func NewAlert() *Alert {
	return &Alert{
		dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter", "ok"),
		),
	}
}

// Open shows message until dismissed.
func (a *Alert) Open(message string) {
	a.message = message
	a.open = true
}

func (a *Alert) Active() bool {
	return a.open
}

func (a *Alert) Message() string {
	return a.message
}

// Update closes the alert on a dismiss key and reports it with AlertDismissedMsg.
func (a *Alert) Update(msg tea.Msg) tea.Cmd {
	if !a.open {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, a.dismiss) {
		a.open = false
		a.message = ""
		return func() tea.Msg {
			return AlertDismissedMsg{}
		}
	}

	return nil
}

// View renders the alert box wrapped to width.
func (a *Alert) View(width int) string {
	if !a.open {
		return ""
	}

	inner := util.Max(width-6, 20)

	body := icon.Get(icon.Alert) + " " + a.message
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.WarningColor).
		Padding(1, 2).
		Render(wordwrap.String(body, inner))

	return box + "\n\n" + style.Faint("press enter to continue")
}
