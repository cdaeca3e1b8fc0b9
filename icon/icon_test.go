package icon

import (
	"testing"

	"github.com/anisan-cli/eprange/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		Convey("It renders for each variant", func() {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				for i := range icons {
					So(Get(i), ShouldNotBeEmpty)
				}
			}
		})

		Convey("Mark and Unmarked differ in plain mode", func() {
			viper.Set(key.IconsVariant, "plain")
			So(Get(Mark), ShouldEqual, "[x]")
			So(Get(Unmarked), ShouldEqual, "[ ]")
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Alert), ShouldBeEmpty)
		})
	})
}
