package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCasing(t *testing.T) {
	testCases := []struct {
		in   string
		want Casing
	}{
		{"hello", CaseLower},
		{"Hello", CaseTitle},
		{"HELLO", CaseUpper},
		{"hEllo", CaseMixed},
		{"McDonald", CaseMixed},
		{"A", CaseTitle},
		{"123", CaseLower},
		{"Élan", CaseTitle},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, DetectCasing(tc.in), tc.in)
	}
}

func TestApplyCasing(t *testing.T) {
	assert.Equal(t, "Hello", ApplyCasing("hello", CaseTitle))
	assert.Equal(t, "HELLO", ApplyCasing("hello", CaseUpper))
	assert.Equal(t, "hello", ApplyCasing("hello", CaseMixed))
	assert.Equal(t, "Élan", ApplyCasing("élan", CaseTitle))
	assert.Equal(t, "", ApplyCasing("", CaseTitle))
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Don't stop-believing, 42 times -- 'quoted' ")
	var words []string
	for _, tok := range tokens {
		words = append(words, tok.Word)
	}
	assert.Equal(t, []string{"Don't", "stop-believing", "42", "times", "quoted"}, words)
	assert.Equal(t, 0, tokens[0].Offset)
	assert.Equal(t, 6, tokens[1].Offset)

	assert.Empty(t, Tokenize("  ... !! "))
}

func TestIsValidInput(t *testing.T) {
	assert.True(t, IsValidInput("hello", 60))
	assert.False(t, IsValidInput("", 60))
	assert.False(t, IsValidInput("2024", 60))
	assert.False(t, IsValidInput("abcdef", 5))
	assert.True(t, IsValidInput("abcdef", 0))
}

func TestSuggestionFilter(t *testing.T) {
	f := NewSuggestionFilter("Helo")
	assert.False(t, f.ShouldInclude("helo"), "input excluded")
	assert.True(t, f.ShouldInclude("hello"))
	assert.False(t, f.ShouldInclude("Hello"))
	assert.True(t, f.ShouldInclude("help"))
	assert.Equal(t, 3, f.Seen())
}

func TestFormatWithCommas(t *testing.T) {
	assert.Equal(t, "999", FormatWithCommas(999))
	assert.Equal(t, "1,000", FormatWithCommas(1000))
	assert.Equal(t, "1,234,567", FormatWithCommas(1234567))
	assert.Equal(t, "-12,345", FormatWithCommas(-12345))
	assert.Equal(t, []uint16{1, 2, 3}, CreateRankList(3))
	assert.Empty(t, CreateRankList(0))
}

func TestTOMLRoundTrip(t *testing.T) {
	type section struct {
		Limit int    `toml:"limit"`
		On    bool   `toml:"on"`
		Name  string `toml:"name"`
	}
	type doc struct {
		S section `toml:"s"`
	}
	path := filepath.Join(t.TempDir(), "x.toml")
	require.NoError(t, SaveTOMLFile(doc{S: section{Limit: 7, On: true, Name: "en_US"}}, path))
	assert.True(t, FileExists(path))

	var got doc
	require.NoError(t, LoadTOMLFile(path, &got))
	assert.Equal(t, 7, got.S.Limit)

	raw, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)
	s, ok := ExtractSection(raw, "s")
	require.True(t, ok)
	n, ok := ExtractInt64(s, "limit")
	assert.True(t, ok)
	assert.Equal(t, 7, n)
	on, ok := ExtractBool(s, "on")
	assert.True(t, ok)
	assert.True(t, on)
	name, ok := ExtractString(s, "name")
	assert.True(t, ok)
	assert.Equal(t, "en_US", name)
	_, ok = ExtractString(s, "limit")
	assert.False(t, ok)
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	res := CheckDirStatus(dir)
	require.NoError(t, res.Error)
	assert.True(t, res.Exists)
	assert.True(t, res.Writable)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "probe file removed")
}

func TestIsValidDataDir(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsValidDataDir(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en_US.dic"), []byte("1\na\n"), 0644))
	assert.True(t, IsValidDataDir(dir))
	assert.False(t, IsValidDataDir(filepath.Join(dir, "missing")))
}
