package affix

import (
	"testing"

	"github.com/bastiangx/typo/pkg/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const compoundAff = `COMPOUNDMIN 3
COMPOUNDBEGIN U
COMPOUNDMIDDLE V
COMPOUNDEND W
`

const compoundDic = `8
university/U
student/VW
school/W
house/V
hello
world
test
ox/UW
`

func TestCompound(t *testing.T) {
	d, err := dictionary.LoadDictionary(compoundAff, compoundDic)
	require.NoError(t, err)

	testCases := []struct {
		word string
		want bool
	}{
		{"universitystudentschool", true},
		{"universityhouseschool", true},
		{"universityschool", true},
		{"universitystudent", true},
		{"universityhousestudentschool", true},
		{"helloworldtest", false},
		{"schoolhouse", false},
		{"universityhouse", false},
		{"university", true},
		{"house", true},
		{"oxox", false},
		{"UniversitySchool", true},
	}

	for _, tc := range testCases {
		t.Run(tc.word, func(t *testing.T) {
			got, err := Check(d, tc.word)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCompoundFlagAnyPosition(t *testing.T) {
	d, err := dictionary.LoadDictionary("COMPOUNDFLAG X\nCOMPOUNDWORDMAX 2\nFORBIDDENWORD Z\n", "4\nfoot/X\nball/X\ngame/X\nbad/XZ\n")
	require.NoError(t, err)

	assert.True(t, Valid(d, "football"))
	assert.True(t, Valid(d, "ballgame"))
	assert.False(t, Valid(d, "footballgame"), "segment cap")
	assert.False(t, Valid(d, "badball"), "forbidden segment")
}

func TestCompoundWithAffixes(t *testing.T) {
	aff := `SFX S Y 1
SFX S 0 s .

COMPOUNDFLAG X
`
	d, err := dictionary.LoadDictionary(aff, "2\nfoot/X\nball/XS\n")
	require.NoError(t, err)

	assert.True(t, Valid(d, "footballs"))
	assert.False(t, Valid(d, "footsball"))
}

func TestCompoundDisabled(t *testing.T) {
	d, err := dictionary.LoadDictionary("COMPOUNDMIN 2\n", "2\nfoot\nball\n")
	require.NoError(t, err)
	assert.False(t, d.Compound().Enabled)
	assert.False(t, Valid(d, "football"))
}
