package tui

import (
	"fmt"

	"github.com/anisan-cli/eprange/catalog"
	"github.com/anisan-cli/eprange/icon"
	"github.com/anisan-cli/eprange/selection"
	"github.com/anisan-cli/eprange/style"
	"github.com/anisan-cli/eprange/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// seasonEntry pairs a catalog season with its live slot and controls.
type seasonEntry struct {
	season   *catalog.Season
	slot     *selection.Slot
	controls []*selection.Control
}

// listItem implements list.Item for seasons and episode controls.
type listItem struct {
	internal interface{}
}

func (t *listItem) getMark() string {
	switch e := t.internal.(type) {
	case *selection.Control:
		if e.Checked() {
			return lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Mark))
		}
		return style.Faint(icon.Get(icon.Unmarked))
	case *seasonEntry:
		return icon.Get(icon.Season)
	default:
		return ""
	}
}

func (t *listItem) Title() string {
	switch e := t.internal.(type) {
	case *selection.Control:
		return fmt.Sprintf("%s %s", t.getMark(), e.Label())
	case *seasonEntry:
		return fmt.Sprintf("%s %s", t.getMark(), e.season.Label())
	case string:
		return e
	default:
		return t.FilterValue()
	}
}

func (t *listItem) Description() string {
	switch e := t.internal.(type) {
	case *selection.Control:
		return style.Faint(e.ID())
	case *seasonEntry:
		checked := lo.CountBy(e.controls, func(c *selection.Control) bool {
			return c.Checked()
		})

		count := fmt.Sprintf("%d/%s", checked, util.Quantify(len(e.controls), "episode", "episodes"))
		if e.slot == nil || e.slot.Value() == "" {
			return style.Faint(count)
		}
		return fmt.Sprintf("%s %s", style.Fg(style.AccentColor)(e.slot.Value()), style.Faint(count))
	default:
		return ""
	}
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *selection.Control:
		return e.Label()
	case *seasonEntry:
		return e.season.Label()
	case string:
		return e
	default:
		return ""
	}
}
