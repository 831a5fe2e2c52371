package search

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	ageRangeRe = regexp.MustCompile(`(?i)^\s*(\d+)\s*(?:-|to)\s*(\d+)\s*$`)
	ageExactRe = regexp.MustCompile(`^\d+$`)
)

// matchAge applies the age rule: an inclusive range ("20-25", "20 to 25"),
// then an exact integer, then substring containment of the decimal age.
// A member without an age never matches.
func matchAge(age *int, query string) bool {
	if age == nil {
		return false
	}

	if m := ageRangeRe.FindStringSubmatch(query); m != nil {
		lo, hi := bound(m[1]), bound(m[2])
		return lo <= *age && *age <= hi
	}

	trimmed := strings.TrimSpace(query)
	if ageExactRe.MatchString(trimmed) {
		n, err := strconv.Atoi(trimmed)
		return err == nil && *age == n
	}

	return strings.Contains(strconv.Itoa(*age), trimmed)
}

// bound parses a run of digits, saturating at math.MaxInt when it does not fit.
func bound(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}
	return n
}
