package log

import (
	"bytes"
	"testing"

	"github.com/anisan-cli/eprange/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestFacade(t *testing.T) {
	Convey("Given a writer-backed logger", t, func() {
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, false)

		var buf bytes.Buffer
		SetupWriter(&buf)

		Convey("Warnf reaches the writer", func() {
			Warnf("slot %s missing", "selected_episodes_2")
			So(buf.String(), ShouldContainSubstring, "slot selected_episodes_2 missing")
		})

		Convey("WithField carries the field", func() {
			WithField("season", 3).Info("recomputed")
			So(buf.String(), ShouldContainSubstring, "season=3")
		})

		Convey("Disabled logging drops everything", func() {
			enabled = false
			Error("nothing")
			WithField("season", 1).Error("nothing either")
			So(buf.String(), ShouldBeEmpty)
		})
	})
}
