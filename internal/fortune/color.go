package fortune

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// Color is a hex color literal, e.g. "#9C7CFF".
type Color string

// GrayColor is the sentinel for "no lucky color data".
const GrayColor Color = "#E0E0E0"

// namedColor pairs a canonical Chinese color label with its hex value.
// Order matters twice over: the keyword pass is priority-ordered, and the
// unknown-label fallback indexes the canonical list by hash.
type namedColor struct {
	Name string
	Hex  Color
}

// canonicalColors is the exact label → hex table. Labels must match in full.
var canonicalColors = []namedColor{
	{"黃色", "#FDBA22"},
	{"橘色", "#FFA726"},
	{"淺藍", "#CDE7FF"},
	{"檸檬黃", "#F5D44B"},
	{"紫色", "#9C7CFF"},
	{"綠色", "#2E7D32"},
	{"粉紅", "#F8BBD0"},
}

// keywordColors resolves free-text labels by substring, checked in order.
// A label containing both 黃 and 橘 resolves to yellow because yellow is
// checked first.
var keywordColors = []namedColor{
	{"黃", "#FDBA22"},
	{"橘", "#FFA726"},
	{"藍", "#CDE7FF"},
	{"紫", "#9C7CFF"},
	{"綠", "#2E7D32"},
	{"紅", "#E57373"},
	{"粉", "#F8BBD0"},
}

// avoidPool is the candidate palette for the daily avoid color. It is a
// separate literal from canonicalColors (some hexes overlap, some do not)
// and must stay that way.
var avoidPool = []Color{
	"#FFA726", "#CDE7FF", "#F5D44B", "#9C7CFF", "#2E7D32", "#F8BBD0", "#E57373",
}

// ResolveLuckyColor turns a scraped lucky-color label into a hex color.
// Empty labels resolve to gray. Unknown labels resolve to a stable pick
// from the canonical palette keyed by the label's own hash, so the same
// label always gets the same color.
func ResolveLuckyColor(label string) Color {
	if label == "" {
		return GrayColor
	}

	for _, c := range canonicalColors {
		if label == c.Name {
			return c.Hex
		}
	}

	for _, c := range keywordColors {
		if strings.Contains(label, c.Name) {
			return c.Hex
		}
	}

	idx := hashIndex(label, len(canonicalColors))
	return canonicalColors[idx].Hex
}

// AvoidColor derives the day's "bad luck" color: the avoid pool minus the
// lucky color, indexed by a hash of the calendar date (and auxKey, when
// present). Stable within a day, free to change across days.
func AvoidColor(luckyLabel string, date Date, auxKey string) Color {
	lucky := ResolveLuckyColor(luckyLabel)

	candidates := make([]Color, 0, len(avoidPool))
	for _, c := range avoidPool {
		if c != lucky {
			candidates = append(candidates, c)
		}
	}

	key := fmt.Sprintf("%d-%d-%d", date.Year, date.Month, date.Day)
	if auxKey != "" {
		key += "-" + auxKey
	}

	return candidates[hashIndex(key, len(candidates))]
}

// hash32 is a polynomial rolling hash over the string's UTF-16 code units
// with 32-bit signed wrap-around: h = c + ((h << 5) - h). The wrap must
// match native int32 arithmetic or the derived indices drift.
func hash32(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = int32(u) + ((h << 5) - h)
	}
	return h
}

// hashIndex maps a string hash onto [0, n). The widening to int64 before
// negation keeps abs well-defined even for math.MinInt32.
func hashIndex(s string, n int) int {
	h := int64(hash32(s))
	if h < 0 {
		h = -h
	}
	return int(h % int64(n))
}
