// Package tui provides the interactive episode selection interface.
package tui

import (
	"errors"

	"github.com/anisan-cli/eprange/catalog"
	"github.com/anisan-cli/eprange/inline"
	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Series *catalog.Series
}

// Run starts the program and returns the accepted request, or nil when the user quit without submitting.
func Run(options *Options) (*inline.Request, error) {
	if options.Series == nil {
		return nil, errors.New("no catalog given")
	}

	bubble := newBubble(options)

	model, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	return model.(*statefulBubble).request, nil
}
