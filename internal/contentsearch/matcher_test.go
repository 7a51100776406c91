package contentsearch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcherLiteralCaseSensitivity(t *testing.T) {
	text := "the api is documented in the api guide"

	m, err := NewMatcher(Query{Pattern: "API", CaseSensitive: true})
	require.NoError(t, err)
	assert.Empty(t, m.Find(text), "case-sensitive search must not match lowercase text")

	m, err = NewMatcher(Query{Pattern: "API"})
	require.NoError(t, err)
	matches := m.Find(text)
	require.Len(t, matches, 2)
	assert.Equal(t, Match{Start: 4, End: 7}, matches[0])
	assert.Equal(t, Match{Start: 29, End: 32}, matches[1])
}

func TestMatcherLiteralNonOverlapping(t *testing.T) {
	m, err := NewMatcher(Query{Pattern: "aa", CaseSensitive: true})
	require.NoError(t, err)

	matches := m.Find("aaaa")
	require.Len(t, matches, 2)
	assert.Equal(t, Match{Start: 0, End: 2}, matches[0])
	assert.Equal(t, Match{Start: 2, End: 4}, matches[1])
}

func TestMatcherRuneOffsets(t *testing.T) {
	// Multibyte runes before the match; offsets must count runes, not bytes.
	text := "héllo wörld report"

	m, err := NewMatcher(Query{Pattern: "report", CaseSensitive: true})
	require.NoError(t, err)
	matches := m.Find(text)
	require.Len(t, matches, 1)
	assert.Equal(t, Match{Start: 12, End: 18}, matches[0])

	m, err = NewMatcher(Query{Pattern: "rep\\w+", Regex: true})
	require.NoError(t, err)
	matches = m.Find(text)
	require.Len(t, matches, 1)
	assert.Equal(t, Match{Start: 12, End: 18}, matches[0])
}

func TestMatcherRegexCaseInsensitive(t *testing.T) {
	m, err := NewMatcher(Query{Pattern: "budget [0-9]+", Regex: true})
	require.NoError(t, err)

	matches := m.Find("BUDGET 2024 and Budget 2025")
	require.Len(t, matches, 2)
	assert.Equal(t, Match{Start: 0, End: 11}, matches[0])
	assert.Equal(t, Match{Start: 16, End: 27}, matches[1])
}

func TestMatcherRegexCaseSensitive(t *testing.T) {
	m, err := NewMatcher(Query{Pattern: "Budget", Regex: true, CaseSensitive: true})
	require.NoError(t, err)

	matches := m.Find("BUDGET budget Budget")
	require.Len(t, matches, 1)
	assert.Equal(t, Match{Start: 14, End: 20}, matches[0])
}

func TestMatcherInvalidRegex(t *testing.T) {
	_, err := NewMatcher(Query{Pattern: "(unbalanced", Regex: true})
	require.Error(t, err)

	var qerr *QueryError
	require.True(t, errors.As(err, &qerr))
	assert.Equal(t, "(unbalanced", qerr.Pattern)
}

func TestMatcherEmptyPattern(t *testing.T) {
	_, err := NewMatcher(Query{Pattern: ""})
	var qerr *QueryError
	require.True(t, errors.As(err, &qerr))
}

func TestMatcherSkipsZeroWidthMatches(t *testing.T) {
	m, err := NewMatcher(Query{Pattern: "x*", Regex: true})
	require.NoError(t, err)

	matches := m.Find("axxb")
	require.Len(t, matches, 1)
	assert.Equal(t, Match{Start: 1, End: 3}, matches[0])
}

func TestMatcherOffsetsWithinBounds(t *testing.T) {
	texts := []string{"", "short", "répétition répétition", "日本語のテキスト検索"}
	patterns := []Query{
		{Pattern: "ti"},
		{Pattern: "検索"},
		{Pattern: "t.", Regex: true},
		{Pattern: "répé"},
	}
	for _, text := range texts {
		n := len([]rune(text))
		for _, q := range patterns {
			m, err := NewMatcher(q)
			require.NoError(t, err)
			for _, match := range m.Find(text) {
				assert.GreaterOrEqual(t, match.Start, 0)
				assert.Less(t, match.Start, match.End)
				assert.LessOrEqual(t, match.End, n)
			}
		}
	}
}
