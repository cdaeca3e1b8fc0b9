package gate

import (
	"testing"

	"github.com/anisan-cli/eprange/constant"
	"github.com/anisan-cli/eprange/selection"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func synchronizer(season selection.Season, ids ...string) (*selection.Synchronizer, []*selection.Control) {
	controls := make([]*selection.Control, len(ids))
	for i, id := range ids {
		controls[i] = selection.NewControl(season, id, "", false)
	}

	sync := selection.NewSynchronizer(controls, map[selection.Season]*selection.Slot{
		season: selection.NewSlot(season),
	}, nil)
	sync.Initialize()

	return sync, controls
}

func TestCheck(t *testing.T) {
	Convey("Given season 1 with nothing selected", t, func() {
		sync, controls := synchronizer(1, "1", "2", "3")
		g := New(sync, constant.SelectAtLeastOneEpisode)

		Convey("An episode submission is vetoed", func() {
			verdict := g.Check(Submission{Season: mo.Some[selection.Season](1), DownloadType: Episodes})

			So(verdict.Allowed, ShouldBeFalse)
			So(verdict.Alert, ShouldEqual, constant.SelectAtLeastOneEpisode)

			Convey("and the selection is untouched", func() {
				slot, _ := sync.Slot(1)
				So(slot.Value(), ShouldEqual, "")
				So(sync.Checked(1), ShouldBeEmpty)
			})
		})

		Convey("A full season submission is allowed", func() {
			verdict := g.Check(Submission{Season: mo.Some[selection.Season](1), DownloadType: FullSeason})
			So(verdict.Allowed, ShouldBeTrue)
			So(verdict.Alert, ShouldBeEmpty)
		})

		Convey("An unknown download type counts as episode intent", func() {
			verdict := g.Check(Submission{Season: mo.Some[selection.Season](1), DownloadType: "something"})
			So(verdict.Allowed, ShouldBeFalse)
		})

		Convey("A submission without a season is allowed", func() {
			verdict := g.Check(Submission{Season: mo.None[selection.Season](), DownloadType: Episodes})
			So(verdict.Allowed, ShouldBeTrue)
		})

		Convey("A season without a slot is allowed", func() {
			verdict := g.Check(Submission{Season: mo.Some[selection.Season](9), DownloadType: Episodes})
			So(verdict.Allowed, ShouldBeTrue)
		})

		Convey("Once an episode is checked the submission is allowed", func() {
			controls[1].Toggle()

			verdict := g.Check(Submission{Season: mo.Some[selection.Season](1), DownloadType: Episodes})
			So(verdict.Allowed, ShouldBeTrue)
		})
	})

	Convey("Given a slot holding only whitespace", t, func() {
		sync, controls := synchronizer(2, "  ")
		controls[0].Toggle()

		slot, _ := sync.Slot(2)
		So(slot.Value(), ShouldEqual, "  ")

		Convey("The submission is vetoed", func() {
			verdict := New(sync, "pick one").Check(Submission{Season: mo.Some[selection.Season](2), DownloadType: Episodes})
			So(verdict.Allowed, ShouldBeFalse)
			So(verdict.Alert, ShouldEqual, "pick one")
		})
	})
}
