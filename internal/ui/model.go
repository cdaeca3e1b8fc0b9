// Package ui holds small bubbletea components shared by the TUI: a transient status notifier and a blocking alert.
package ui

import (
	"time"

	"github.com/anisan-cli/eprange/style"
	tea "github.com/charmbracelet/bubbletea"
)

// NotifyTimeout is how long a notification stays visible.
const NotifyTimeout = 2 * time.Second

// Notifier shows one short status line that clears itself.
type Notifier struct {
	notification string
	generation   int
}

// NotifyMsg sets the notification text.
type NotifyMsg string

type clearNotificationMsg struct {
	generation int
}

// Notify returns a tea.Cmd that shows message.
func Notify(message string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg(message)
	}
}

// Update returns the delayed clear command when a new notification arrives.
// A clear issued for an older notification is ignored.
func (n *Notifier) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotifyMsg:
		n.notification = string(msg)
		n.generation++
		generation := n.generation
		return tea.Tick(NotifyTimeout, func(time.Time) tea.Msg {
			return clearNotificationMsg{generation: generation}
		})
	case clearNotificationMsg:
		if msg.generation == n.generation {
			n.notification = ""
		}
	}
	return nil
}

// Notification returns the visible text, if any.
func (n *Notifier) Notification() string {
	return n.notification
}

// View appends the notification to line.
func (n *Notifier) View(line string) string {
	if n.notification == "" {
		return line
	}
	return line + "  " + style.Faint(n.notification)
}
