package selection

import (
	"github.com/anisan-cli/eprange/log"
	"github.com/anisan-cli/eprange/ranges"
	"github.com/samber/lo"
)

// Options tunes a Synchronizer.
type Options struct {
	// OnRecompute observes every recompute with the value written (or that would have been written).
	OnRecompute func(season Season, encoded string)
}

// Synchronizer maintains slot value == ranges.Encode(checked identifiers) for every season.
//
// It is not safe for concurrent use; every call is expected from the single UI event loop.
type Synchronizer struct {
	controls    map[Season][]*Control
	seasons     []Season
	slots       map[Season]*Slot
	initialized bool
	options     Options
}

// NewSynchronizer groups controls by season, keeping their order, and binds the given slots.
func NewSynchronizer(controls []*Control, slots map[Season]*Slot, options *Options) *Synchronizer {
	s := &Synchronizer{
		controls: make(map[Season][]*Control),
		slots:    make(map[Season]*Slot, len(slots)),
	}

	if options != nil {
		s.options = *options
	}

	for _, c := range controls {
		if _, seen := s.controls[c.season]; !seen {
			s.seasons = append(s.seasons, c.season)
		}
		s.controls[c.season] = append(s.controls[c.season], c)
	}

	for season, slot := range slots {
		s.slots[season] = slot
	}

	return s
}

// Initialize seeds every season's slot from its pre-checked controls and subscribes each control once.
// Later calls do nothing.
func (s *Synchronizer) Initialize() {
	if s.initialized {
		return
	}
	s.initialized = true

	for _, season := range s.seasons {
		s.Recompute(season)
	}

	for _, season := range s.seasons {
		for _, c := range s.controls[season] {
			c.OnChange(s.onChange)
		}
	}
}

func (s *Synchronizer) onChange(c *Control) {
	s.Recompute(c.season)
}

// Recompute encodes the checked identifiers of season and writes them to its slot.
// A season without a slot is logged and skipped.
func (s *Synchronizer) Recompute(season Season) {
	encoded := ranges.Encode(s.Checked(season))

	if slot, ok := s.slots[season]; ok {
		slot.write(encoded)
	} else {
		log.WithField("slot", SlotKey(season)).Warn("no output slot for season, skipping write")
	}

	if s.options.OnRecompute != nil {
		s.options.OnRecompute(season, encoded)
	}
}

// SelectAll checks every control of season and recomputes once.
func (s *Synchronizer) SelectAll(season Season) {
	s.setAll(season, true)
}

// DeselectAll unchecks every control of season and recomputes once.
func (s *Synchronizer) DeselectAll(season Season) {
	s.setAll(season, false)
}

func (s *Synchronizer) setAll(season Season, checked bool) {
	for _, c := range s.controls[season] {
		c.force(checked)
	}
	s.Recompute(season)
}

// Checked returns the identifiers of the checked controls of season in display order.
func (s *Synchronizer) Checked(season Season) []string {
	return lo.FilterMap(s.controls[season], func(c *Control, _ int) (string, bool) {
		return c.id, c.checked
	})
}

// Controls returns the controls of season in display order.
func (s *Synchronizer) Controls(season Season) []*Control {
	return s.controls[season]
}

// Seasons returns every season that owns at least one control, in first-seen order.
func (s *Synchronizer) Seasons() []Season {
	return s.seasons
}

// Slot returns the output slot of season.
func (s *Synchronizer) Slot(season Season) (*Slot, bool) {
	slot, ok := s.slots[season]
	return slot, ok
}
