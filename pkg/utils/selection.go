package utils

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ParseSelection parses a whitespace-separated list of 1-based indices
// against a list of n items. Non-numeric tokens are dropped silently.
// Returns the valid 0-based indices in input order plus the out-of-range
// 1-based values so the caller can warn about each one.
func ParseSelection(input string, n int) (valid []int, outOfRange []int) {
	nums := lo.FilterMap(strings.Fields(input), func(tok string, _ int) (int, bool) {
		v, err := strconv.Atoi(tok)
		return v, err == nil
	})
	for _, num := range nums {
		if num >= 1 && num <= n {
			valid = append(valid, num-1)
		} else {
			outOfRange = append(outOfRange, num)
		}
	}
	return valid, outOfRange
}
