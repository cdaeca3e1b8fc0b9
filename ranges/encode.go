// Package ranges converts episode selections to and from the compact range notation handed to download jobs ("1-3,5,8,9").
package ranges

import (
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Separator joins tokens in an encoded selection.
const Separator = ","

// Whole is the token a whole-season request carries instead of an episode list.
const Whole = "*"

// minRunLength is the shortest run of consecutive numbers collapsed into start-end.
// Shorter runs are written out number by number.
const minRunLength = 3

// Encode returns the shortest range notation for ids.
//
// Numeric identifiers are deduplicated, sorted and compressed into runs.
// When no identifier is numeric the identifiers are joined in their given order.
// In a mixed selection only the numeric identifiers are kept.
func Encode(ids []string) string {
	if len(ids) == 0 {
		return ""
	}

	numbers := make([]int, 0, len(ids))
	for _, id := range ids {
		if n, ok := parseNumber(id); ok {
			numbers = append(numbers, n)
		}
	}

	if len(numbers) == 0 {
		return strings.Join(lo.Uniq(ids), Separator)
	}

	numbers = lo.Uniq(numbers)
	sort.Ints(numbers)

	return strings.Join(tokens(numbers), Separator)
}

// tokens walks sorted, distinct numbers and emits one token per run.
func tokens(sorted []int) []string {
	out := make([]string, 0, len(sorted))

	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i < len(sorted) && sorted[i] == sorted[i-1]+1 {
			continue
		}

		run := sorted[start:i]
		if len(run) >= minRunLength {
			out = append(out, strconv.Itoa(run[0])+"-"+strconv.Itoa(run[len(run)-1]))
		} else {
			out = append(out, lo.Map(run, func(n int, _ int) string {
				return strconv.Itoa(n)
			})...)
		}

		start = i
	}

	return out
}

// parseNumber accepts plain base-10 digits only: no sign, no spaces, no suffix.
func parseNumber(id string) (int, bool) {
	if id == "" {
		return 0, false
	}

	for _, r := range id {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, false
	}

	return n, true
}

// IsNumeric reports whether id takes the numeric path of Encode.
func IsNumeric(id string) bool {
	_, ok := parseNumber(id)
	return ok
}

// Number returns the numeric value of id when it has one.
func Number(id string) (int, bool) {
	return parseNumber(id)
}
