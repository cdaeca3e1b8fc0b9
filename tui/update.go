package tui

import (
	"fmt"

	"github.com/anisan-cli/eprange/catalog"
	"github.com/anisan-cli/eprange/gate"
	"github.com/anisan-cli/eprange/inline"
	"github.com/anisan-cli/eprange/internal/ui"
	"github.com/anisan-cli/eprange/selection"
	"github.com/anisan-cli/eprange/util"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		// the alert owns esc while it is open
		if b.state != alertState && bubblesKey.Matches(msg, b.keymap.back) {
			switch b.state {
			case seasonsState:
				return b, cmd
			case episodesState:
				b.season = mo.None[selection.Season]()
				b.episodesC.ResetSelected()
				b.seasonsC.SetItems(b.seasonItems())
			}

			b.previousState()
			return b, cmd
		}
	}

	var stateCmd tea.Cmd
	switch b.state {
	case seasonsState:
		stateCmd = b.updateSeasons(msg)
	case episodesState:
		stateCmd = b.updateEpisodes(msg)
	case alertState:
		stateCmd = b.updateAlert(msg)
	case errorState:
		stateCmd = b.updateError(msg)
	}

	return b, tea.Batch(cmd, stateCmd)
}

func (b *statefulBubble) updateSeasons(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.up), bubblesKey.Matches(msg, b.keymap.down):
			if wrapAround(&b.seasonsC, bubblesKey.Matches(msg, b.keymap.up)) {
				return nil
			}
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := b.seasonsC.SelectedItem().(*listItem)
			if !ok {
				return nil
			}
			b.openSeason(item.internal.(*seasonEntry))
			return nil
		}
	}

	b.seasonsC, cmd = b.seasonsC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateEpisodes(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	season, ok := b.season.Get()
	if !ok {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.up), bubblesKey.Matches(msg, b.keymap.down):
			if wrapAround(&b.episodesC, bubblesKey.Matches(msg, b.keymap.up)) {
				return nil
			}
		case bubblesKey.Matches(msg, b.keymap.selectOne):
			item, ok := b.episodesC.SelectedItem().(*listItem)
			if !ok {
				return nil
			}
			item.internal.(*selection.Control).Toggle()
			return nil
		case bubblesKey.Matches(msg, b.keymap.selectAll):
			b.sync.SelectAll(season)
			return ui.Notify(fmt.Sprintf("selected %s", util.Quantify(len(b.sync.Checked(season)), "episode", "episodes")))
		case bubblesKey.Matches(msg, b.keymap.clearSelection):
			b.sync.DeselectAll(season)
			return ui.Notify("selection cleared")
		case bubblesKey.Matches(msg, b.keymap.submit):
			return b.submit(gate.Episodes)
		case bubblesKey.Matches(msg, b.keymap.fullSeason):
			return b.submit(gate.FullSeason)
		}
	}

	b.episodesC, cmd = b.episodesC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateAlert(msg tea.Msg) tea.Cmd {
	cmd := b.alert.Update(msg)
	if !b.alert.Active() {
		b.previousState()
	}
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.quit) {
		return tea.Quit
	}
	return nil
}

// openSeason lists the controls of entry and shows them.
func (b *statefulBubble) openSeason(entry *seasonEntry) {
	season := selection.Season(entry.season.Number)
	b.season = mo.Some(season)

	b.episodesC.SetItems(lo.Map(entry.controls, func(c *selection.Control, _ int) list.Item {
		return &listItem{internal: c}
	}))
	b.episodesC.ResetSelected()

	encoded := ""
	if entry.slot != nil {
		encoded = entry.slot.Value()
	}
	b.episodesC.Title = episodesTitle(b.series, season, encoded)

	b.newState(episodesState)
}

// submit runs the open season through the gate. A veto opens the alert; otherwise the program ends.
func (b *statefulBubble) submit(downloadType string) tea.Cmd {
	verdict := b.gate.Check(gate.Submission{
		Season:       b.season,
		DownloadType: downloadType,
	})

	if !verdict.Allowed {
		b.alert.Open(verdict.Alert)
		b.newState(alertState)
		return nil
	}

	b.request = inline.NewRequest(b.series.Title, b.sync, b.season, downloadType)
	return tea.Quit
}

func (b *statefulBubble) seasonItems() []list.Item {
	return lo.Map(b.series.Seasons, func(s *catalog.Season, _ int) list.Item {
		season := selection.Season(s.Number)
		slot, _ := b.sync.Slot(season)
		return &listItem{internal: &seasonEntry{
			season:   s,
			slot:     slot,
			controls: b.sync.Controls(season),
		}}
	})
}

// wrapAround moves the cursor from one end of l to the other. It reports whether it did.
func wrapAround(l *list.Model, up bool) bool {
	n := len(l.Items())
	switch {
	case n == 0:
		return false
	case up && l.Index() == 0:
		l.Select(n - 1)
		return true
	case !up && l.Index() == n-1:
		l.Select(0)
		return true
	}
	return false
}
