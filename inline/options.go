package inline

import (
	"fmt"
	"io"
	"strings"

	"github.com/anisan-cli/eprange/catalog"
	"github.com/anisan-cli/eprange/ranges"
	"github.com/anisan-cli/eprange/selection"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// EpisodesPicker changes the checked state of a season's controls the way a user would.
type EpisodesPicker func(sync *selection.Synchronizer, season selection.Season) error

type Options struct {
	Out          io.Writer
	Series       *catalog.Series
	Season       mo.Option[selection.Season]
	Picker       mo.Option[EpisodesPicker]
	DownloadType string
	Json         bool
}

// ParseEpisodesPicker understands "all", "none", "first", "last", "@substring@",
// a range token such as "1-3,5" and a comma separated list of identifiers.
func ParseEpisodesPicker(description string) (EpisodesPicker, error) {
	description = strings.TrimSpace(description)

	switch description {
	case "":
		return nil, fmt.Errorf("empty episodes picker")
	case "all":
		return func(sync *selection.Synchronizer, season selection.Season) error {
			sync.SelectAll(season)
			return nil
		}, nil
	case "none":
		return func(sync *selection.Synchronizer, season selection.Season) error {
			sync.DeselectAll(season)
			return nil
		}, nil
	case "first":
		return func(sync *selection.Synchronizer, season selection.Season) error {
			if controls := sync.Controls(season); len(controls) > 0 {
				controls[0].Set(true)
			}
			return nil
		}, nil
	case "last":
		return func(sync *selection.Synchronizer, season selection.Season) error {
			if controls := sync.Controls(season); len(controls) > 0 {
				controls[len(controls)-1].Set(true)
			}
			return nil
		}, nil
	}

	// Substring: "@text@"
	if len(description) > 1 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := description[1 : len(description)-1]
		return func(sync *selection.Synchronizer, season selection.Season) error {
			for _, c := range sync.Controls(season) {
				if fuzzy.MatchFold(sub, c.Label()) {
					c.Set(true)
				}
			}
			return nil
		}, nil
	}

	return func(sync *selection.Synchronizer, season selection.Season) error {
		return pickToken(sync, season, description)
	}, nil
}

// pickToken checks identifiers named literally, falling back to reading the
// description as a range token over the numeric identifiers.
func pickToken(sync *selection.Synchronizer, season selection.Season, description string) error {
	controls := sync.Controls(season)
	byID := lo.KeyBy(controls, func(c *selection.Control) string {
		return c.ID()
	})

	parts := lo.FilterMap(strings.Split(description, ranges.Separator), func(part string, _ int) (string, bool) {
		part = strings.TrimSpace(part)
		return part, part != ""
	})

	if lo.EveryBy(parts, func(part string) bool { _, ok := byID[part]; return ok }) {
		for _, part := range parts {
			byID[part].Set(true)
		}
		return nil
	}

	numbered := lo.FilterMap(controls, func(c *selection.Control, _ int) (lo.Tuple2[int, *selection.Control], bool) {
		n, ok := ranges.Number(c.ID())
		return lo.T2(n, c), ok
	})

	max := lo.Max(lo.Map(numbered, func(t lo.Tuple2[int, *selection.Control], _ int) int { return t.A }))

	wanted, err := ranges.Expand(description, max)
	if err != nil {
		return fmt.Errorf("episodes %q: %w", description, err)
	}

	for _, t := range numbered {
		if lo.Contains(wanted, t.A) {
			t.B.Set(true)
		}
	}

	return nil
}
