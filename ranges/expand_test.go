package ranges

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestExpand(t *testing.T) {
	Convey("Expand", t, func() {
		Convey("Ranges and singles", func() {
			got, err := Expand("1-3,5,8,9", 12)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, []int{1, 2, 3, 5, 8, 9})
		})

		Convey("Whole season", func() {
			got, err := Expand(Whole, 4)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, []int{1, 2, 3, 4})
		})

		Convey("Open-ended ranges run to max", func() {
			got, err := Expand("3-", 5)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, []int{3, 4, 5})

			got, err = Expand("4-*", 5)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, []int{4, 5})
		})

		Convey("Whitespace and empty parts are tolerated", func() {
			got, err := Expand(" 2 , ,1- 2 ", 10)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, []int{1, 2})
		})

		Convey("Overlaps are merged", func() {
			got, err := Expand("1-4,3-5,2", 10)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, []int{1, 2, 3, 4, 5})
		})

		Convey("Garbage is rejected", func() {
			_, err := Expand("1,abc", 10)
			So(errors.Is(err, ErrInvalidSelection), ShouldBeTrue)

			_, err = Expand("x-3", 10)
			So(errors.Is(err, ErrInvalidSelection), ShouldBeTrue)

			_, err = Expand("2-y", 10)
			So(errors.Is(err, ErrInvalidSelection), ShouldBeTrue)
		})

		Convey("Nothing selected is an error", func() {
			_, err := Expand("", 10)
			So(err, ShouldEqual, ErrEmptySelection)

			_, err = Expand("5-2", 10)
			So(err, ShouldEqual, ErrEmptySelection)

			_, err = Expand(Whole, 0)
			So(err, ShouldEqual, ErrEmptySelection)
		})
	})
}

func TestRoundTrip(t *testing.T) {
	Convey("Expand undoes Encode for numeric selections", t, func() {
		r := rand.New(rand.NewSource(7))
		for i := 0; i < 300; i++ {
			set := lo.Uniq(lo.Times(r.Intn(20)+1, func(int) int { return r.Intn(40) + 1 }))
			sort.Ints(set)

			got, err := Expand(Encode(ids(set...)), 40)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, set)
		}
	})
}
