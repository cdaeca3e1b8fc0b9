package ranges

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

var (
	// ErrInvalidSelection is returned for a part that is neither a number nor a range.
	ErrInvalidSelection = errors.New("invalid episode selection")

	// ErrEmptySelection is returned when a token selects nothing.
	ErrEmptySelection = errors.New("empty episode selection")
)

// Expand reads a token the way the download job does and returns the selected
// episode numbers in ascending order.
//
// Accepted parts: "*" (1..max), "a-b", "a-" and "a-*" (a..max), and bare numbers.
func Expand(token string, max int) ([]int, error) {
	token = strings.TrimSpace(token)
	if token == Whole {
		if max < 1 {
			return nil, ErrEmptySelection
		}
		return lo.RangeFrom(1, max), nil
	}

	var selected []int
	for _, part := range strings.Split(token, Separator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		numbers, err := expandPart(part, max)
		if err != nil {
			return nil, err
		}
		selected = append(selected, numbers...)
	}

	if len(selected) == 0 {
		return nil, ErrEmptySelection
	}

	selected = lo.Uniq(selected)
	sort.Ints(selected)
	return selected, nil
}

func expandPart(part string, max int) ([]int, error) {
	if n, ok := parseNumber(part); ok {
		return []int{n}, nil
	}

	from, to, found := strings.Cut(part, "-")
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSelection, part)
	}

	start, ok := parseNumber(strings.TrimSpace(from))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSelection, part)
	}

	end, ok := parseNumber(strings.TrimSpace(to))
	if !ok {
		// "a-" and "a-*" run to the last episode; any other suffix is rejected.
		if rest := strings.TrimSpace(to); rest != "" && rest != Whole {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSelection, part)
		}
		end = max
	}

	if end < start {
		return nil, nil
	}

	return lo.RangeWithSteps(start, end+1, 1), nil
}
