package tui

import (
	"fmt"

	"github.com/anisan-cli/eprange/catalog"
	"github.com/anisan-cli/eprange/constant"
	"github.com/anisan-cli/eprange/gate"
	"github.com/anisan-cli/eprange/inline"
	"github.com/anisan-cli/eprange/internal/ui"
	"github.com/anisan-cli/eprange/key"
	"github.com/anisan-cli/eprange/selection"
	"github.com/anisan-cli/eprange/style"
	"github.com/anisan-cli/eprange/util"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// statefulBubble holds the whole program state. Every field is touched only from Update.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	// components
	seasonsC  list.Model
	episodesC list.Model
	helpC     help.Model
	notifier  *ui.Notifier
	alert     *ui.Alert

	series *catalog.Series
	sync   *selection.Synchronizer
	gate   *gate.Gate

	// season is the season whose episodes are open.
	season  mo.Option[selection.Season]
	request *inline.Request

	lastError     error
	width, height int
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering the current state unless it is transient.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{alertState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	b.seasonsC.SetSize(listWidth, listHeight)
	b.seasonsC.Help.Width = listWidth

	b.episodesC.SetSize(listWidth, listHeight)
	b.episodesC.Help.Width = listWidth

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

// onRecompute keeps the open list title in step with the slot.
func (b *statefulBubble) onRecompute(season selection.Season, encoded string) {
	if current, ok := b.season.Get(); ok && current == season {
		b.episodesC.Title = episodesTitle(b.series, season, encoded)
	}
}

func episodesTitle(series *catalog.Series, season selection.Season, encoded string) string {
	label := fmt.Sprintf("Season %d", season)
	if s, ok := series.Season(int(season)); ok {
		label = s.Label()
	}

	if encoded == "" {
		encoded = "none"
	}

	return fmt.Sprintf("%s [%s]", label, encoded)
}

func newBubble(options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		series:        options.Series,
		notifier:      &ui.Notifier{},
		alert:         ui.NewAlert(),
	}

	bubble.sync = options.Series.Synchronizer(&selection.Options{
		OnRecompute: bubble.onRecompute,
	})
	bubble.gate = gate.New(bubble.sync, constant.SelectAtLeastOneEpisode)

	makeList := func(title string, description bool, titleStyle lipgloss.Style) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.ShowDescription = description
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = titleStyle
		listC.Styles.NoItems = paddingStyle
		listC.SetFilteringEnabled(false)
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.seasonsC = makeList(
		options.Series.Title,
		true,
		lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1),
	)
	bubble.seasonsC.SetItems(bubble.seasonItems())

	bubble.episodesC = makeList(
		"Episodes",
		viper.GetBool(key.TUIShowIdentifiers),
		lipgloss.NewStyle().Foreground(style.Base).Background(style.Peach).Padding(0, 1),
	)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(seasonsState)

	return &bubble
}

func (b *statefulBubble) Init() tea.Cmd {
	return ui.Notify(util.Quantify(len(b.series.Seasons), "season", "seasons"))
}
