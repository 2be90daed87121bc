package listview

import (
	"cmp"
	"math"
	"strconv"
	"strings"
)

func parseNumber(value string) (float64, bool) {
	number, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, false
	}
	return number, true
}

// compareValues puts numbers before everything else. Numbers compare
// numerically, other values by byte-wise string order.
func compareValues(a, b string) int {
	an, aNumber := parseNumber(a)
	bn, bNumber := parseNumber(b)
	switch {
	case aNumber && bNumber:
		return cmp.Compare(an, bn)
	case aNumber:
		return -1
	case bNumber:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func matchesQuery(value, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(value), lowerQuery)
}
