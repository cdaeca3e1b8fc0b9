package ranges

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func ids(numbers ...int) []string {
	return lo.Map(numbers, func(n int, _ int) string { return strconv.Itoa(n) })
}

func TestEncode(t *testing.T) {
	Convey("Encode", t, func() {
		Convey("Empty selection encodes to the empty string", func() {
			So(Encode(nil), ShouldEqual, "")
			So(Encode([]string{}), ShouldEqual, "")
		})

		Convey("Reference selections", func() {
			So(Encode(ids(1, 2, 3, 5)), ShouldEqual, "1-3,5")
			So(Encode(ids(5, 6)), ShouldEqual, "5,6")
			So(Encode(ids(7)), ShouldEqual, "7")
			So(Encode(ids(1, 2, 3, 4, 6, 7)), ShouldEqual, "1-4,6,7")
			So(Encode(ids(7, 8)), ShouldEqual, "7,8")
			So(Encode(ids(1, 2, 3, 5, 8, 9)), ShouldEqual, "1-3,5,8,9")
		})

		Convey("Non-numeric identifiers are joined in the given order", func() {
			So(Encode([]string{"2024-01-05"}), ShouldEqual, "2024-01-05")
			So(Encode([]string{"2024-01-05", "2024-01-12"}), ShouldEqual, "2024-01-05,2024-01-12")
			So(Encode([]string{"b", "a", "b"}), ShouldEqual, "b,a")
		})

		Convey("Mixed selections keep only the numeric identifiers", func() {
			So(Encode([]string{"special", "3", "1", "2"}), ShouldEqual, "1-3")
		})

		Convey("Malformed numbers take the non-numeric path", func() {
			So(Encode([]string{"3a"}), ShouldEqual, "3a")
			So(Encode([]string{" 4"}), ShouldEqual, " 4")
			So(Encode([]string{"+5", "-6"}), ShouldEqual, "+5,-6")
			So(Encode([]string{"99999999999999999999999"}), ShouldEqual, "99999999999999999999999")
		})

		Convey("Leading zeros collapse onto the same number", func() {
			So(Encode([]string{"01", "1", "2", "03"}), ShouldEqual, "1-3")
		})
	})
}

func TestEncodeProperties(t *testing.T) {
	Convey("Encode properties", t, func() {
		Convey("A contiguous run of three or more is start-end", func() {
			for start := 0; start < 20; start++ {
				for length := 3; length < 15; length++ {
					run := lo.RangeFrom(start, length)
					So(Encode(ids(run...)), ShouldEqual, strconv.Itoa(start)+"-"+strconv.Itoa(start+length-1))
				}
			}
		})

		Convey("A run of exactly two has no hyphen", func() {
			for start := 0; start < 50; start++ {
				So(Encode(ids(start, start+1)), ShouldEqual, strconv.Itoa(start)+","+strconv.Itoa(start+1))
			}
		})

		Convey("Order and duplicates do not change the result", func() {
			r := rand.New(rand.NewSource(42))
			for i := 0; i < 200; i++ {
				set := lo.Uniq(lo.Times(r.Intn(12)+1, func(int) int { return r.Intn(30) + 1 }))
				want := Encode(ids(set...))

				shuffled := append(ids(set...), ids(set[:len(set)/2]...)...)
				r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

				So(Encode(shuffled), ShouldEqual, want)
			}
		})

		Convey("Non-empty input never encodes to the empty string", func() {
			So(Encode([]string{"x"}), ShouldNotBeEmpty)
			So(Encode([]string{"0"}), ShouldEqual, "0")
		})
	})
}

func TestNumber(t *testing.T) {
	Convey("Number", t, func() {
		n, ok := Number("12")
		So(ok, ShouldBeTrue)
		So(n, ShouldEqual, 12)

		_, ok = Number("")
		So(ok, ShouldBeFalse)
		So(IsNumeric("E12"), ShouldBeFalse)
	})
}
