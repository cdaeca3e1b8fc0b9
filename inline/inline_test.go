package inline

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/anisan-cli/eprange/catalog"
	"github.com/anisan-cli/eprange/constant"
	"github.com/anisan-cli/eprange/gate"
	"github.com/anisan-cli/eprange/ranges"
	"github.com/anisan-cli/eprange/selection"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func series() *catalog.Series {
	numbered := lo.Map(lo.RangeFrom(1, 9), func(n int, _ int) *catalog.Episode {
		return &catalog.Episode{ID: strconv.Itoa(n)}
	})
	numbered[6].Checked = true

	return &catalog.Series{
		Title: "Example",
		Seasons: []*catalog.Season{
			{Number: 1, Episodes: numbered},
			{Number: 2, Episodes: []*catalog.Episode{
				{ID: "2024-01-05", Name: "New Year Special"},
				{ID: "2024-01-12", Name: "Winter Finale"},
			}},
		},
	}
}

func options(season int, picker string) *Options {
	opts := &Options{
		Series: series(),
		Season: mo.Some(selection.Season(season)),
	}
	if picker != "" {
		opts.Picker = mo.Some(lo.Must(ParseEpisodesPicker(picker)))
	}
	return opts
}

func TestSelect(t *testing.T) {
	Convey("Select", t, func() {
		Convey("A pre-checked episode is submitted as is", func() {
			request, err := Select(options(1, ""))
			So(err, ShouldBeNil)
			So(request.Episodes, ShouldEqual, "7")
			So(request.Slot, ShouldEqual, "selected_episodes_1")
			So(request.DownloadType, ShouldEqual, gate.Episodes)
		})

		Convey("A range token checks the matching numbers", func() {
			request, err := Select(options(1, "1-3,5"))
			So(err, ShouldBeNil)
			So(request.Episodes, ShouldEqual, "1-3,5,7")
		})

		Convey("Open ranges run to the last numbered episode", func() {
			request, err := Select(options(1, "8-"))
			So(err, ShouldBeNil)
			So(request.Episodes, ShouldEqual, "7-9")
		})

		Convey("Identifiers are matched literally", func() {
			request, err := Select(options(2, "2024-01-12, 2024-01-05"))
			So(err, ShouldBeNil)
			So(request.Episodes, ShouldEqual, "2024-01-05,2024-01-12")
		})

		Convey("Substrings match episode names", func() {
			request, err := Select(options(2, "@finale@"))
			So(err, ShouldBeNil)
			So(request.Episodes, ShouldEqual, "2024-01-12")
		})

		Convey("all and last", func() {
			request, err := Select(options(1, "all"))
			So(err, ShouldBeNil)
			So(request.Episodes, ShouldEqual, "1-9")

			request, err = Select(options(2, "last"))
			So(err, ShouldBeNil)
			So(request.Episodes, ShouldEqual, "2024-01-12")
		})

		Convey("Nothing selected is vetoed", func() {
			_, err := Select(options(1, "none"))
			So(errors.Is(err, ErrVetoed), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, constant.SelectAtLeastOneEpisode)

			_, err = Select(options(2, ""))
			So(errors.Is(err, ErrVetoed), ShouldBeTrue)
		})

		Convey("A full season request is never vetoed", func() {
			opts := options(2, "")
			opts.DownloadType = gate.FullSeason

			request, err := Select(opts)
			So(err, ShouldBeNil)
			So(request.Episodes, ShouldEqual, ranges.Whole)
		})

		Convey("Unknown seasons are rejected", func() {
			_, err := Select(options(5, "all"))
			So(errors.Is(err, ErrUnknownSeason), ShouldBeTrue)
		})

		Convey("Garbage tokens are rejected", func() {
			_, err := Select(options(1, "1,abc"))
			So(errors.Is(err, ranges.ErrInvalidSelection), ShouldBeTrue)
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Run", t, func() {
		var buf bytes.Buffer

		Convey("Plain output", func() {
			opts := options(1, "first")
			opts.Out = &buf

			So(Run(opts), ShouldBeNil)
			So(buf.String(), ShouldEqual, "S1 E1,7\n")
		})

		Convey("JSON output", func() {
			opts := options(1, "2")
			opts.Out = &buf
			opts.Json = true

			So(Run(opts), ShouldBeNil)

			var request Request
			So(json.Unmarshal(buf.Bytes(), &request), ShouldBeNil)
			So(request.Series, ShouldEqual, "Example")
			So(request.Season, ShouldEqual, 1)
			So(request.Episodes, ShouldEqual, "2,7")
		})
	})
}

func TestParseEpisodesPicker(t *testing.T) {
	Convey("An empty picker is an error", t, func() {
		_, err := ParseEpisodesPicker("  ")
		So(err, ShouldNotBeNil)
	})
}

func TestSchema(t *testing.T) {
	Convey("Schema describes the request fields", t, func() {
		schema := Schema()
		_, ok := schema.Properties.Get("episodes")
		So(ok, ShouldBeTrue)
	})
}
