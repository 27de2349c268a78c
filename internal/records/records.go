// Package records extracts won-loss records from free-text recap titles.
//
// Titles conventionally look like
//
//	"Lakers (23-19) 110 - 105 Celtics (30-12)"
//
// with team names in English or Hebrew, but arbitrary text is possible.
// Absence of a match is a normal outcome, never an error.
package records

import (
	"regexp"
	"strconv"
	"strings"

	"nba-recap-service/internal/teamnames"
)

// TeamRecord is a won-loss record parsed from a title.
type TeamRecord struct {
	Wins   int
	Losses int
}

// WinPct returns wins/(wins+losses), or 0 when no games were played.
func (r TeamRecord) WinPct() float64 {
	total := r.Wins + r.Losses
	if total == 0 {
		return 0
	}
	return float64(r.Wins) / float64(total)
}

// recordPattern matches a parenthesized record like "(23-19)" or "(23:19)".
var recordPattern = regexp.MustCompile(`\((\d+)[-:](\d+)\)`)

// fuzzyCandidate captures a run of letters/apostrophes/spaces immediately
// followed by a parenthesized record, i.e. "<name-like text> (<record>)".
var fuzzyCandidate = regexp.MustCompile(`([\p{L}][\p{L}' ]*)\s*\((\d+[-:]\d+)\)`)

// maxFuzzyDistance bounds the edit distance accepted by the fuzzy pass.
const maxFuzzyDistance = 3

// normalizeApostrophes folds the Hebrew geresh (׳) and right single
// quotation mark into a plain apostrophe so spelling variants compare equal.
func normalizeApostrophes(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '׳', '’':
			return '\''
		default:
			return r
		}
	}, s)
}

// ExtractRecord locates teamName's record substring (e.g. "23-19") in title.
// It tries, in order: an exact case-insensitive match on the canonical
// English name, an exact match on the Hebrew display name from names, then a
// fuzzy Levenshtein scan over the Hebrew name. The second return value is
// false when no strategy matches.
func ExtractRecord(title, teamName string, names teamnames.Table) (string, bool) {
	if title == "" || teamName == "" {
		return "", false
	}

	normTitle := normalizeApostrophes(title)

	if rec, ok := exactMatchAny(normTitle, normalizeApostrophes(teamName)); ok {
		return rec, true
	}

	hebrew, ok := names.Lookup(teamName)
	if !ok {
		return "", false
	}
	normHebrew := normalizeApostrophes(hebrew)

	if rec, ok := exactMatchAny(normTitle, normHebrew); ok {
		return rec, true
	}

	return fuzzyMatch(normTitle, normHebrew)
}

// exactMatchAny tries the full display name, then its final word. Titles
// usually carry just the franchise nickname ("Lakers", "לייקרס"), not the
// full city-qualified name.
func exactMatchAny(title, name string) (string, bool) {
	if rec, ok := exactMatch(title, name); ok {
		return rec, true
	}
	if idx := strings.LastIndex(name, " "); idx >= 0 {
		return exactMatch(title, name[idx+1:])
	}
	return "", false
}

// exactMatch searches for name followed (allowing intervening
// non-parenthesis characters) by a parenthesized record.
func exactMatch(title, name string) (string, bool) {
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(name) + `[^(]*\((\d+[-:]\d+)\)`)
	if err != nil {
		return "", false
	}
	m := re.FindStringSubmatch(title)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// fuzzyMatch scans every "<name-like text> (<record>)" occurrence and
// accepts the first candidate within maxFuzzyDistance edits of name.
// Comparison is case-insensitive so mixed-case typo variants still match.
func fuzzyMatch(title, name string) (string, bool) {
	want := strings.ToLower(name)
	for _, m := range fuzzyCandidate.FindAllStringSubmatch(title, -1) {
		candidate := strings.ToLower(strings.TrimSpace(m[1]))
		if Levenshtein(candidate, want) <= maxFuzzyDistance {
			return m[2], true
		}
	}
	return "", false
}

// ParseTitleRecords parses the first two parenthesized records from a title,
// in textual order. It returns false when fewer than two are present.
func ParseTitleRecords(title string) ([2]TeamRecord, bool) {
	matches := recordPattern.FindAllStringSubmatch(title, 2)
	if len(matches) < 2 {
		return [2]TeamRecord{}, false
	}

	var out [2]TeamRecord
	for i, m := range matches {
		wins, _ := strconv.Atoi(m[1])
		losses, _ := strconv.Atoi(m[2])
		out[i] = TeamRecord{Wins: wins, Losses: losses}
	}
	return out, true
}

// Levenshtein computes the classic edit distance between a and b, with
// insertions, deletions and substitutions each costing 1.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
