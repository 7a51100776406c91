package contentsearch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSnippetCentered(t *testing.T) {
	text := "abcdefghij"
	got := ExtractSnippet(text, Match{Start: 3, End: 6}, 9)
	assert.Equal(t, "abc**def**ghi...", got)
}

func TestExtractSnippetMatchAtStart(t *testing.T) {
	// Unused context before the match shifts to the other side.
	got := ExtractSnippet("report is due", Match{Start: 0, End: 6}, 10)
	assert.Equal(t, "**report** is ...", got)
}

func TestExtractSnippetMatchAtEnd(t *testing.T) {
	got := ExtractSnippet("due: report", Match{Start: 5, End: 11}, 10)
	assert.Equal(t, "...ue: **report**", got)
}

func TestExtractSnippetWholeText(t *testing.T) {
	// Text shorter than the budget needs no cut markers.
	got := ExtractSnippet("a report", Match{Start: 2, End: 8}, 50)
	assert.Equal(t, "a **report**", got)
}

func TestExtractSnippetLongMatchTruncatedFromEnd(t *testing.T) {
	got := ExtractSnippet("abcdefgh", Match{Start: 2, End: 8}, 4)
	assert.Equal(t, "...**cdef**...", got)
}

func TestExtractSnippetMatchFillsBudgetExactly(t *testing.T) {
	got := ExtractSnippet("abcd", Match{Start: 0, End: 4}, 4)
	assert.Equal(t, "**abcd**", got)
}

func TestExtractSnippetBoundWithinLargeDocument(t *testing.T) {
	text := strings.Repeat("a", 500) + "xyz" + strings.Repeat("b", 497)
	require.Len(t, []rune(text), 1000)

	got := ExtractSnippet(text, Match{Start: 500, End: 503}, 10)

	overhead := len(cutMarker)*2 + len(matchMarker)*2
	assert.LessOrEqual(t, len([]rune(got)), 10+overhead)
	assert.Contains(t, got, "**xyz**")
}

func TestExtractSnippetMultibyteRunes(t *testing.T) {
	text := "préfixe môt suffixe"
	got := ExtractSnippet(text, Match{Start: 8, End: 11}, 9)
	assert.Equal(t, "...xe **môt** su...", got)
}

func TestExtractSnippetDeterministic(t *testing.T) {
	text := strings.Repeat("lorem ipsum ", 40)
	m := Match{Start: 100, End: 105}
	first := ExtractSnippet(text, m, 30)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ExtractSnippet(text, m, 30))
	}
}

func TestExtractSnippetInvalidInputs(t *testing.T) {
	assert.Empty(t, ExtractSnippet("text", Match{Start: 2, End: 2}, 10))
	assert.Empty(t, ExtractSnippet("text", Match{Start: -1, End: 2}, 10))
	assert.Empty(t, ExtractSnippet("text", Match{Start: 0, End: 5}, 10))
	assert.Empty(t, ExtractSnippet("text", Match{Start: 0, End: 2}, 0))
}
