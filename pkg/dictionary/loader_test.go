package dictionary

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bastiangx/typo/pkg/typoerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDic = `7
hello
world
test
work/AB
try/B
walk/BC
talk/BC
`

func TestLoadDictionary(t *testing.T) {
	d, err := LoadDictionary(testAff, testDic)
	require.NoError(t, err)

	assert.Equal(t, "UTF-8", d.Encoding)
	assert.True(t, d.CaseSensitive)
	assert.False(t, d.IsFallback)
	assert.Equal(t, Stats{WordCount: 7, AffixRuleCount: 3, CompoundRuleCount: 2}, d.Stats())

	flags, ok := d.Lookup("work")
	assert.True(t, ok)
	assert.Equal(t, "AB", flags)

	assert.Len(t, d.PrefixesOf("re"), 1)
	assert.Len(t, d.SuffixesOf("ed"), 1)
	assert.Len(t, d.SuffixesOf("ied"), 1)
	assert.Empty(t, d.SuffixesOf("ing"))
	assert.True(t, d.HasAffixes())

	assert.True(t, d.HasSpecial(FlagForbiddenWord, "AZ"))
	assert.False(t, d.HasSpecial(FlagForbiddenWord, "AB"))
	assert.False(t, d.HasSpecial(FlagNoSuggest, "AB"))

	cfg := d.Compound()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 3, cfg.MinLen)
	assert.Equal(t, 'U', cfg.Begin)
}

func TestLoadDictionaryDefaults(t *testing.T) {
	d, err := LoadDictionary("TRY abc\n", "1\nalpha\n")
	require.NoError(t, err)

	assert.Equal(t, DefaultEncoding, d.Encoding)
	assert.False(t, d.Compound().Enabled)
	assert.Equal(t, 1, d.Compound().MinLen)
	assert.Equal(t, "abc", d.Option("TRY"))
}

func TestLoadDictionaryWordListOnly(t *testing.T) {
	d, err := LoadDictionary("", "2\nalpha\nBeta\n")
	require.NoError(t, err)

	assert.Equal(t, 2, d.Stats().WordCount)
	assert.Empty(t, d.Rules)
	form, ok := d.Form("beta")
	assert.True(t, ok)
	assert.Equal(t, "Beta", form)
}

func TestLoadDictionaryErrors(t *testing.T) {
	_, err := LoadDictionary(testAff, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, typoerr.ErrDictionaryLoad)
	assert.ErrorIs(t, err, typoerr.ErrInvalidInput)
}

func TestLoadDictionaryRoundTrip(t *testing.T) {
	var b strings.Builder
	fmt.Fprintln(&b, 250)
	fmt.Fprintln(&b, "# generated")
	for i := 0; i < 250; i++ {
		fmt.Fprintf(&b, "word%03d/%c\n", i, 'A'+rune(i%3))
	}

	d, err := LoadDictionary(testAff, b.String())
	require.NoError(t, err)

	words, err := ParseDicFile(b.String(), "")
	require.NoError(t, err)
	assert.Len(t, words, 250)
	assert.Equal(t, len(words), d.Stats().WordCount)
}

func TestWordsWithPrefix(t *testing.T) {
	d, err := LoadDictionary(testAff, testDic)
	require.NoError(t, err)

	assert.Equal(t, []string{"walk", "work", "world"}, d.WordsWithPrefix("w", 0))
	assert.Len(t, d.WordsWithPrefix("w", 2), 2)
	assert.Empty(t, d.WordsWithPrefix("zz", 0))
}

func TestCreateFallbackDictionary(t *testing.T) {
	d := CreateFallbackDictionary("en_US")

	assert.True(t, d.IsFallback)
	assert.Greater(t, len(d.Words), 0)
	assert.Empty(t, d.Rules)
	assert.Empty(t, d.CompoundRules)
	assert.False(t, d.Compound().Enabled)

	_, ok := d.Lookup("hello")
	assert.True(t, ok)

	other := CreateFallbackDictionary("xx_YY")
	assert.Equal(t, len(d.Words), len(other.Words), "fallback is locale agnostic")
}
