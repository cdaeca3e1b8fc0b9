// Package catalog describes the seasons and episodes a selection is made from.
package catalog

import (
	"errors"
	"fmt"

	"github.com/anisan-cli/eprange/selection"
	"github.com/samber/lo"
)

var (
	ErrNoSeasons       = errors.New("series has no seasons")
	ErrDuplicateSeason = errors.New("duplicate season number")
	ErrEmptyEpisodeID  = errors.New("episode without an identifier")
	ErrDuplicateID     = errors.New("duplicate episode identifier")
)

// Series is a titled list of seasons.
type Series struct {
	Title   string    `json:"title" yaml:"title" toml:"title" jsonschema:"description=Series title"`
	Seasons []*Season `json:"seasons" yaml:"seasons" toml:"seasons"`
}

type Season struct {
	Number   int        `json:"number" yaml:"number" toml:"number"`
	Name     string     `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Episodes []*Episode `json:"episodes" yaml:"episodes" toml:"episodes"`
}

// Episode is a single selectable entry. ID is what gets submitted; it is usually the
// episode number but may be any string, such as an air date.
type Episode struct {
	ID      string `json:"id" yaml:"id" toml:"id"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Checked bool   `json:"checked,omitempty" yaml:"checked,omitempty" toml:"checked,omitempty"`
}

// Label returns the season name, or a generated one.
func (s *Season) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("Season %d", s.Number)
}

// Validate checks that the series can back a selection.
func (s *Series) Validate() error {
	if len(s.Seasons) == 0 {
		return ErrNoSeasons
	}

	seen := make(map[int]struct{}, len(s.Seasons))
	for _, season := range s.Seasons {
		if _, ok := seen[season.Number]; ok {
			return fmt.Errorf("season %d: %w", season.Number, ErrDuplicateSeason)
		}
		seen[season.Number] = struct{}{}

		if err := season.validate(); err != nil {
			return fmt.Errorf("season %d: %w", season.Number, err)
		}
	}

	return nil
}

func (s *Season) validate() error {
	ids := make(map[string]struct{}, len(s.Episodes))
	for i, episode := range s.Episodes {
		if episode.ID == "" {
			return fmt.Errorf("episode #%d: %w", i+1, ErrEmptyEpisodeID)
		}

		if _, ok := ids[episode.ID]; ok {
			return fmt.Errorf("episode %q: %w", episode.ID, ErrDuplicateID)
		}
		ids[episode.ID] = struct{}{}
	}

	return nil
}

// Season returns the season numbered n.
func (s *Series) Season(n int) (*Season, bool) {
	return lo.Find(s.Seasons, func(season *Season) bool {
		return season.Number == n
	})
}

// Controls builds one control per episode in catalog order and one slot per season.
func (s *Series) Controls() ([]*selection.Control, map[selection.Season]*selection.Slot) {
	var controls []*selection.Control
	slots := make(map[selection.Season]*selection.Slot, len(s.Seasons))

	for _, season := range s.Seasons {
		number := selection.Season(season.Number)
		slots[number] = selection.NewSlot(number)

		for _, episode := range season.Episodes {
			controls = append(controls, selection.NewControl(number, episode.ID, episode.Name, episode.Checked))
		}
	}

	return controls, slots
}

// Synchronizer wires the controls and slots of the series together and initializes them.
func (s *Series) Synchronizer(options *selection.Options) *selection.Synchronizer {
	controls, slots := s.Controls()
	sync := selection.NewSynchronizer(controls, slots, options)
	sync.Initialize()
	return sync
}
