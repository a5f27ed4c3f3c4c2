package dictionary

import (
	"testing"

	"github.com/bastiangx/typo/pkg/typoerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAff = `# test affix file
SET UTF-8
TRY esianrtolcdugmphbyfvkwz

PFX A Y 1
PFX A 0 re .

SFX B Y 2
SFX B 0 ed [^y]
SFX B y ied y

SFX C Y 1
SFX C 0 s .

FORBIDDENWORD Z
KEEPCASE K
LANG en_US

REP 2
REP f ph
REP alot a_lot

COMPOUNDMIN 3
COMPOUNDBEGIN U
`

func TestParseAffFile(t *testing.T) {
	aff, err := ParseAffFile(testAff)
	require.NoError(t, err)

	assert.Equal(t, "UTF-8", aff.Options["SET"])
	assert.Equal(t, "esianrtolcdugmphbyfvkwz", aff.Options["TRY"])
	assert.Equal(t, "en_US", aff.Options["LANG"])

	require.Contains(t, aff.Rules, 'A')
	a := aff.Rules['A']
	assert.Equal(t, Prefix, a.Kind)
	assert.True(t, a.CrossProduct)
	require.Len(t, a.Entries, 1)
	assert.Equal(t, AffixEntry{Strip: "", Affix: "re", Condition: "."}, a.Entries[0])

	b := aff.Rules['B']
	require.NotNil(t, b)
	assert.Equal(t, Suffix, b.Kind)
	assert.Equal(t, []AffixEntry{
		{Strip: "", Affix: "ed", Condition: "[^y]"},
		{Strip: "y", Affix: "ied", Condition: "y"},
	}, b.Entries)

	assert.Equal(t, map[string][]rune{"FORBIDDENWORD": {'Z'}, "KEEPCASE": {'K'}}, aff.Flags)
	assert.Equal(t, []CompoundRule{{Type: "COMPOUNDMIN", Value: "3"}, {Type: "COMPOUNDBEGIN", Value: "U"}}, aff.CompoundRules)
	assert.Equal(t, []Replacement{{From: "f", To: "ph"}, {From: "alot", To: "a lot"}}, aff.Replacements)
}

func TestParseAffFileSingleRule(t *testing.T) {
	aff, err := ParseAffFile("PFX A Y 1\nPFX A 0 re .\n")
	require.NoError(t, err)

	rule := aff.Rules['A']
	require.NotNil(t, rule)
	assert.Equal(t, Prefix, rule.Kind)
	assert.True(t, rule.CrossProduct)
	assert.Len(t, rule.Entries, 1)
}

func TestParseAffFileLenient(t *testing.T) {
	content := `SFX N N 2
SFX N 0 ness .
SFX N 0 broken [abc
SFX Q 0 orphan .
PFX N Y 1
PFX N 0 un .
SFX L Y 1
SFX L 0 ly/XY .
SFX M Y 1
SFX M y 0 y
`
	aff, err := ParseAffFile(content)
	require.NoError(t, err)

	n := aff.Rules['N']
	require.NotNil(t, n)
	assert.Equal(t, Suffix, n.Kind, "first kind keeps the flag")
	assert.False(t, n.CrossProduct)
	assert.Len(t, n.Entries, 1, "entry with bad condition skipped")
	assert.NotContains(t, aff.Rules, 'Q')

	assert.Equal(t, "ly", aff.Rules['L'].Entries[0].Affix, "continuation flags dropped")
	assert.Equal(t, AffixEntry{Strip: "y", Affix: "", Condition: "y"}, aff.Rules['M'].Entries[0])
}

func TestParseAffFileHeaderCounts(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		hasRule bool
	}{
		{"negative", "PFX A Y -1", false},
		{"very negative", "PFX A Y -3000000000", false},
		{"oversized", "PFX A Y 4000000000", true},
		{"zero", "PFX A Y 0", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "SFX B Y 1\nSFX B 0 ed .\n" + tt.header + "\nPFX A 0 re .\n"
			var aff *AffData
			require.NotPanics(t, func() {
				var err error
				aff, err = ParseAffFile(content)
				require.NoError(t, err)
			})
			require.Contains(t, aff.Rules, 'B', "rules before the bad header survive")
			assert.Len(t, aff.Rules['B'].Entries, 1)
			if !tt.hasRule {
				assert.NotContains(t, aff.Rules, 'A')
				return
			}
			require.Contains(t, aff.Rules, 'A')
			assert.Equal(t, "re", aff.Rules['A'].Entries[0].Affix)
		})
	}
}

func TestParseAffFileFlagDirectives(t *testing.T) {
	aff, err := ParseAffFile("VERSION 1\nNAME x\nNOSUGGEST !\nNEEDAFFIX ~\nONLYINCOMPOUND c\n")
	require.NoError(t, err)

	assert.Equal(t, map[string][]rune{"NOSUGGEST": {'!'}, "NEEDAFFIX": {'~'}, "ONLYINCOMPOUND": {'c'}}, aff.Flags)
	assert.Equal(t, "1", aff.Options["VERSION"])
	assert.Equal(t, "x", aff.Options["NAME"])
}

func TestParseAffFileEmpty(t *testing.T) {
	for _, content := range []string{"", " \n\n\t"} {
		_, err := ParseAffFile(content)
		assert.ErrorIs(t, err, typoerr.ErrInvalidInput)
	}
}

func TestCondition(t *testing.T) {
	testCases := []struct {
		cond   string
		stem   string
		prefix bool
		suffix bool
	}{
		{".", "walk", true, true},
		{"", "walk", true, true},
		{"[^y]", "work", true, true},
		{"[^y]", "try", true, false},
		{"y", "try", false, true},
		{"[aeiou]y", "play", false, true},
		{"[^aeiou]y", "play", false, false},
		{"[^aeiou]y", "try", false, true},
		{"wa", "walk", true, false},
		{"lk", "walk", false, true},
		{"...", "ab", false, false},
		{"é", "café", false, true},
	}
	for _, tc := range testCases {
		c, err := compileCondition(tc.cond)
		require.NoError(t, err, tc.cond)
		assert.Equal(t, tc.prefix, c.matchPrefix(tc.stem), "prefix %q on %q", tc.cond, tc.stem)
		assert.Equal(t, tc.suffix, c.matchSuffix(tc.stem), "suffix %q on %q", tc.cond, tc.stem)
	}

	for _, bad := range []string{"[abc", "a]", "[]", "[^]"} {
		_, err := compileCondition(bad)
		assert.Error(t, err, bad)
	}
}
