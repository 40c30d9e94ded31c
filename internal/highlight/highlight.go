// Package highlight splits text into matched and unmatched runs for a search query.
package highlight

import (
	"regexp"
	"strings"
)

// Segment is one run of the original text.
type Segment struct {
	Text    string `json:"text"`
	Matched bool   `json:"matched"`
}

// Mark partitions text into segments, marking every non-overlapping,
// case-insensitive occurrence of query. The query is matched literally.
// Concatenating the returned segments always yields text.
func Mark(text, query string) []Segment {
	if text == "" {
		return []Segment{}
	}
	if strings.TrimSpace(query) == "" {
		return []Segment{{Text: text}}
	}

	re := compile(query)
	if re == nil {
		return []Segment{{Text: text}}
	}
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []Segment{{Text: text}}
	}

	segments := make([]Segment, 0, 2*len(locs)+1)
	last := 0
	for _, loc := range locs {
		if loc[0] > last {
			segments = append(segments, Segment{Text: text[last:loc[0]]})
		}
		segments = append(segments, Segment{Text: text[loc[0]:loc[1]], Matched: true})
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments
}

// Matches reports whether query occurs in text under the same rules as Mark.
// A blank query matches nothing.
func Matches(text, query string) bool {
	if text == "" || strings.TrimSpace(query) == "" {
		return false
	}
	re := compile(query)
	return re != nil && re.MatchString(text)
}

// compile builds the literal, case-insensitive pattern for query. Invalid
// UTF-8 bytes become U+FFFD, which is also how the matcher reads them in text.
// It returns nil if the pattern still cannot be compiled.
func compile(query string) *regexp.Regexp {
	query = strings.ToValidUTF8(query, "\uFFFD")
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return nil
	}
	return re
}
