package contentsearch

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Matcher finds all occurrences of a query pattern in decoded text. It is
// built once per search invocation; pattern validation happens at
// construction so a bad regex fails before any file is fetched.
type Matcher struct {
	pattern       string
	caseSensitive bool
	re            *regexp.Regexp
}

// NewMatcher validates the query pattern and returns a reusable matcher.
// An invalid regular expression yields a QueryError.
func NewMatcher(q Query) (*Matcher, error) {
	if q.Pattern == "" {
		return nil, &QueryError{Pattern: q.Pattern, Err: errEmptyPattern}
	}
	m := &Matcher{pattern: q.Pattern, caseSensitive: q.CaseSensitive}
	if q.Regex {
		pat := q.Pattern
		// Case folding goes through the engine flag, not text folding,
		// to keep Unicode case semantics consistent.
		if !q.CaseSensitive {
			pat = "(?i)" + pat
		}
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, &QueryError{Pattern: q.Pattern, Err: err}
		}
		m.re = re
	}
	return m, nil
}

var errEmptyPattern = errParam("search pattern must not be empty")

type errParam string

func (e errParam) Error() string { return string(e) }

// Find returns all non-overlapping matches in left-to-right order.
// Offsets are zero-based rune offsets into text.
func (m *Matcher) Find(text string) []Match {
	if m.re != nil {
		return m.findRegex(text)
	}
	return m.findLiteral(text)
}

func (m *Matcher) findRegex(text string) []Match {
	idx := m.re.FindAllStringIndex(text, -1)
	if len(idx) == 0 {
		return nil
	}
	// Convert byte offsets to rune offsets in a single pass; the index
	// pairs come back sorted so one walk over the text suffices.
	var matches []Match
	byteOff, runeOff := 0, 0
	toRune := func(target int) int {
		for byteOff < target {
			_, size := utf8.DecodeRuneInString(text[byteOff:])
			byteOff += size
			runeOff++
		}
		return runeOff
	}
	for _, pair := range idx {
		if pair[0] == pair[1] {
			continue // zero-width matches carry no content to snippet
		}
		start := toRune(pair[0])
		end := toRune(pair[1])
		matches = append(matches, Match{Start: start, End: end})
	}
	return matches
}

func (m *Matcher) findLiteral(text string) []Match {
	runes := []rune(text)
	pat := []rune(m.pattern)
	if !m.caseSensitive {
		pat = foldRunes(pat)
	}
	var matches []Match
	for i := 0; i+len(pat) <= len(runes); {
		if m.literalAt(runes, pat, i) {
			matches = append(matches, Match{Start: i, End: i + len(pat)})
			i += len(pat)
		} else {
			i++
		}
	}
	return matches
}

func (m *Matcher) literalAt(runes, pat []rune, at int) bool {
	for j, p := range pat {
		r := runes[at+j]
		if !m.caseSensitive {
			r = unicode.ToLower(r)
		}
		if r != p {
			return false
		}
	}
	return true
}

func foldRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}
