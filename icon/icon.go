// Package icon renders UI symbols in the variant chosen by the icons.variant config key.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/anisan-cli/eprange/key"
	"github.com/spf13/viper"
)

// Visual variants.
const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Mark
	Unmarked
	Season
	Alert
	Progress
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(×﹏×)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "OK",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Mark: {
		emoji:   "✅",
		nerd:    "",
		plain:   "[x]",
		kaomoji: "(✓)",
		squares: "▣",
	},
	Unmarked: {
		emoji:   "⬜",
		nerd:    "",
		plain:   "[ ]",
		kaomoji: "( )",
		squares: "□",
	},
	Season: {
		emoji:   "📺",
		nerd:    "",
		plain:   "#",
		kaomoji: "(⌐■_■)",
		squares: "🟦",
	},
	Alert: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(；￣Д￣)",
		squares: "🟨",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "~",
		kaomoji: "(・_・ヾ",
		squares: "🟪",
	},
}

// Get returns the rendered string for i in the configured variant.
func Get(i Icon) string {
	return icons[i].Get()
}
