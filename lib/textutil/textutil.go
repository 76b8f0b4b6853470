package textutil

import (
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

var rankPrefixRegex = regexp.MustCompile(`^#?\d+\.?\s*`)

// model cells on ranked tables often come as "#1 Gemini 3 Pro",
// the rank lives in its own column so it gets stripped here
func StripRankPrefix(name string) string {
	name = strings.Trim(name, " \n\t")
	name = rankPrefixRegex.ReplaceAllString(name, "")
	if i := strings.IndexByte(name, '\n'); i >= 0 {
		name = name[:i]
	}
	return strings.Trim(name, " \t")
}

var glyphRegex = regexp.MustCompile(`[◄►←→▲▼─│┌┐└┘├┤┬┴┼]`)
var innerWhitespace = regexp.MustCompile(`\s\s+`)

// drops the sort arrows and slider glyphs sites render inside score
// cells and collapses the leftover whitespace
func CleanScoreText(s string) string {
	s = glyphRegex.ReplaceAllString(s, "")
	s = innerWhitespace.ReplaceAllString(s, " ")
	return strings.Trim(s, " \n\t")
}

var rankRegex = regexp.MustCompile(`\d+`)

// the first integer found in a rank cell, 0 when there is none
func ParseRank(s string) int {
	match := rankRegex.FindString(s)
	if match == "" {
		return 0
	}
	rank, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return rank
}

var numberRegex = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// pulls the first numeric value out of a display score like
// "1501 Elo" or "SWE-Bench: 82%". returns nil when there is none.
func ParseScore(s string) *float64 {
	match := numberRegex.FindString(s)
	if match == "" {
		return nil
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return nil
	}
	return &value
}
