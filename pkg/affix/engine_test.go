package affix

import (
	"testing"

	"github.com/bastiangx/typo/pkg/dictionary"
	"github.com/bastiangx/typo/pkg/typoerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basicAff = `SET UTF-8
TRY esianrtolcdugmphbyfvkwz

PFX A Y 1
PFX A 0 re .

SFX B Y 2
SFX B 0 ed [^y]
SFX B y ied y

SFX C Y 1
SFX C 0 s .
`

const basicDic = `7
hello
world
test
work/AB
try/B
walk/BC
talk/BC
`

func loadBasic(t *testing.T) *dictionary.Dictionary {
	t.Helper()
	d, err := dictionary.LoadDictionary(basicAff, basicDic)
	require.NoError(t, err)
	return d
}

func TestCheck(t *testing.T) {
	d := loadBasic(t)

	testCases := []struct {
		word string
		want bool
	}{
		{"hello", true},
		{"xyz", false},
		{"worked", true},
		{"tried", true},
		{"walks", true},
		{"workeds", false},
		{"tryed", false},
		{"helloed", false},
		{"rework", true},
		{"retalk", false},
		{"reworked", true},
		{"retalked", false},
		{"re", false},
		{"Hello", true},
		{"WORKED", true},
		{"  hello  ", true},
	}

	for _, tc := range testCases {
		t.Run(tc.word, func(t *testing.T) {
			got, err := Check(d, tc.word)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCheckEmpty(t *testing.T) {
	d := loadBasic(t)
	for _, word := range []string{"", "   ", "\t\n"} {
		ok, err := Check(d, word)
		assert.False(t, ok)
		assert.ErrorIs(t, err, typoerr.ErrInvalidInput)
	}
}

func TestCheckIdempotent(t *testing.T) {
	d := loadBasic(t)
	for _, word := range []string{"hello", "xyz", "reworked", "walks", "retalk"} {
		first, err := Check(d, word)
		require.NoError(t, err)
		second, err := Check(d, word)
		require.NoError(t, err)
		assert.Equal(t, first, second, word)
	}
}

func TestCheckSpecialFlags(t *testing.T) {
	aff := basicAff + `
FORBIDDENWORD Z
KEEPCASE K
NEEDAFFIX N
ONLYINCOMPOUND O
COMPOUNDFLAG X
`
	dic := `6
colour/Z
walked/Z
NASA/K
pseudo/NB
fish/OX
cake/X
`
	d, err := dictionary.LoadDictionary(aff, dic)
	require.NoError(t, err)

	testCases := []struct {
		word string
		want bool
	}{
		{"colour", false},
		{"walked", false},
		{"NASA", true},
		{"nasa", false},
		{"pseudo", false},
		{"pseudoed", true},
		{"fish", false},
		{"fishcake", true},
		{"cake", true},
	}
	for _, tc := range testCases {
		t.Run(tc.word, func(t *testing.T) {
			assert.Equal(t, tc.want, Valid(d, tc.word))
		})
	}
}

func TestStats(t *testing.T) {
	d := loadBasic(t)
	assert.Equal(t, dictionary.Stats{WordCount: 7, AffixRuleCount: 3}, Stats(d))

	fb := dictionary.CreateFallbackDictionary("en_US")
	s := Stats(fb)
	assert.True(t, s.IsFallback)
	assert.Zero(t, s.AffixRuleCount)
	assert.Zero(t, s.CompoundRuleCount)
}

func TestCheckFallback(t *testing.T) {
	d := dictionary.CreateFallbackDictionary("en_US")
	assert.True(t, Valid(d, "hello"))
	assert.True(t, Valid(d, "House"))
	assert.False(t, Valid(d, "hellos"))
}

func BenchmarkCheck(b *testing.B) {
	d, err := dictionary.LoadDictionary(basicAff, basicDic)
	require.NoError(b, err)
	words := []string{"hello", "reworked", "tried", "xyz", "walks"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Valid(d, words[i%len(words)])
	}
}
