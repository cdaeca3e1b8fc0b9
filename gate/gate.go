// Package gate decides whether a download submission may proceed.
package gate

import (
	"strings"

	"github.com/anisan-cli/eprange/log"
	"github.com/anisan-cli/eprange/selection"
	"github.com/samber/mo"
)

const (
	// FullSeason requests every episode of the season.
	FullSeason = "full_season"
	// Episodes requests the episodes named by the season's slot.
	Episodes = "episodes"
)

// Submission is the part of a download request the gate looks at.
type Submission struct {
	Season       mo.Option[selection.Season]
	DownloadType string
}

// Verdict is the outcome of a check. Alert is set only when the submission is vetoed.
type Verdict struct {
	Allowed bool
	Alert   string
}

// SlotReader looks up the output slot of a season.
type SlotReader interface {
	Slot(season selection.Season) (*selection.Slot, bool)
}

// Gate vetoes episode-level submissions whose slot is blank.
type Gate struct {
	slots SlotReader
	alert string
}

func New(slots SlotReader, alert string) *Gate {
	return &Gate{slots: slots, alert: alert}
}

// Check never modifies the selection.
func (g *Gate) Check(submission Submission) Verdict {
	if submission.DownloadType == FullSeason {
		return allow()
	}

	season, ok := submission.Season.Get()
	if !ok {
		log.Debug("submission without a season, allowing")
		return allow()
	}

	slot, ok := g.slots.Slot(season)
	if !ok {
		log.WithField("slot", selection.SlotKey(season)).Debug("no slot to validate, allowing")
		return allow()
	}

	if strings.TrimSpace(slot.Value()) == "" {
		log.WithField("slot", slot.Key()).Info("vetoed submission with no episodes selected")
		return Verdict{Alert: g.alert}
	}

	return allow()
}

func allow() Verdict {
	return Verdict{Allowed: true}
}
