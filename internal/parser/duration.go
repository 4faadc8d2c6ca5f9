// Package parser provides decoding of the compact ISO-8601-style
// duration strings the video platform attaches to content details.
// Short-form video only carries minute and second components, so that
// is all the codec recognizes.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	minuteRe    = regexp.MustCompile(`^(\d+)M`)
	secondRe    = regexp.MustCompile(`^(\d+)S`)
	anyMinuteRe = regexp.MustCompile(`\d+M`)
)

// DurationSeconds converts a compact duration string to total seconds.
// Absent, empty, or malformed input (missing the PT prefix) yields 0.
// Components other than minutes and seconds are ignored.
func DurationSeconds(iso string) int {
	minutes, seconds := durationParts(iso)
	return minutes*60 + seconds
}

// FormatDuration converts a compact duration string to a zero-padded
// MM:SS display string. Malformed input yields "00:00". The display is
// built from the raw components without normalization, so "PT90S"
// renders as "00:90".
func FormatDuration(iso string) string {
	minutes, seconds := durationParts(iso)
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// durationParts extracts the minute and second components. A missing
// component defaults to zero; parsing never fails.
func durationParts(iso string) (minutes, seconds int) {
	if iso == "" || !strings.HasPrefix(iso, "PT") {
		return 0, 0
	}

	rest := strings.TrimPrefix(iso, "PT")

	if m := minuteRe.FindStringSubmatch(rest); m != nil {
		minutes, _ = strconv.Atoi(m[1])
	}
	rest = anyMinuteRe.ReplaceAllString(rest, "")

	if m := secondRe.FindStringSubmatch(rest); m != nil {
		seconds, _ = strconv.Atoi(m[1])
	}

	return minutes, seconds
}
