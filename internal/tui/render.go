package tui

import (
	"strconv"
	"strings"

	"homeinsight-catalog/internal/highlight"
	"homeinsight-catalog/internal/models"
)

// renderHighlighted emphasizes every occurrence of query in text, cutting
// the result to limit runes (0 means no limit).
func renderHighlighted(text, query string, limit int) string {
	var b strings.Builder
	remaining := limit
	for _, seg := range highlight.Mark(text, query) {
		part := seg.Text
		if limit > 0 {
			runes := []rune(part)
			if len(runes) >= remaining {
				part = string(runes[:remaining])
				remaining = 0
			} else {
				remaining -= len(runes)
			}
		}
		if seg.Matched {
			b.WriteString(matchStyle.Render(part))
		} else {
			b.WriteString(part)
		}
		if limit > 0 && remaining == 0 {
			if len([]rune(text)) > limit {
				b.WriteString("…")
			}
			break
		}
	}
	return b.String()
}

func renderAvailability(l models.Listing) string {
	if l.Available {
		return availableStyle.Render("available")
	}
	return unavailableStyle.Render("unavailable")
}

// formatMoney renders an amount with thousands separators and two decimals
func formatMoney(v float64) string {
	if v <= 0 {
		return "-"
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, frac := s[:len(s)-3], s[len(s)-3:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return "$ " + b.String() + frac
}

func typeLabel(t models.ListingType) string {
	if t == "" {
		return "-"
	}
	return strings.ToLower(string(t))
}
