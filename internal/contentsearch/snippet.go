package contentsearch

import "strings"

const (
	matchMarker = "**"
	cutMarker   = "..."
)

// ExtractSnippet builds a readable excerpt around one match. The window
// is centered on the match and bounded by maxLength runes of content;
// the match is wrapped in ** markers and cut edges carry ... markers.
// If the match itself exceeds maxLength it is truncated from its end.
// Pure function: identical inputs always yield the identical snippet.
func ExtractSnippet(text string, m Match, maxLength int) string {
	runes := []rune(text)
	if maxLength <= 0 || m.Start < 0 || m.End > len(runes) || m.Start >= m.End {
		return ""
	}

	var sb strings.Builder
	matchLen := m.End - m.Start

	if matchLen >= maxLength {
		// Match alone fills the budget: keep its head, drop its tail.
		if m.Start > 0 {
			sb.WriteString(cutMarker)
		}
		sb.WriteString(matchMarker)
		sb.WriteString(string(runes[m.Start : m.Start+maxLength]))
		sb.WriteString(matchMarker)
		if m.Start+maxLength < len(runes) || matchLen > maxLength {
			sb.WriteString(cutMarker)
		}
		return sb.String()
	}

	// Split the remaining budget around the match, shifting unused
	// context from one side to the other near text edges.
	budget := maxLength - matchLen
	before := budget / 2
	after := budget - before
	if m.Start < before {
		after += before - m.Start
		before = m.Start
	}
	if tail := len(runes) - m.End; tail < after {
		spare := after - tail
		after = tail
		if m.Start-before >= spare {
			before += spare
		} else {
			before = m.Start
		}
	}

	start := m.Start - before
	end := m.End + after
	if start > 0 {
		sb.WriteString(cutMarker)
	}
	sb.WriteString(string(runes[start:m.Start]))
	sb.WriteString(matchMarker)
	sb.WriteString(string(runes[m.Start:m.End]))
	sb.WriteString(matchMarker)
	sb.WriteString(string(runes[m.End:end]))
	if end < len(runes) {
		sb.WriteString(cutMarker)
	}
	return sb.String()
}
