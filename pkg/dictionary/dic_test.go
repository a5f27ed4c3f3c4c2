package dictionary

import (
	"testing"

	"github.com/bastiangx/typo/pkg/typoerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDicFile(t *testing.T) {
	words, err := ParseDicFile("word1/AB\nword2", "")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"word1": "AB", "word2": ""}, words)
}

func TestParseDicFileEscapedSlash(t *testing.T) {
	words, err := ParseDicFile("2\nisn\\/t\nand\\/or/X\n", "")
	require.NoError(t, err)

	flags, ok := words["isn/t"]
	assert.True(t, ok)
	assert.Equal(t, "", flags)
	assert.Equal(t, "X", words["and/or"])
}

func TestParseDicFileLines(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    map[string]string
	}{
		{
			name:    "count hint skipped",
			content: "3\nalpha\nbeta/S\ngamma\n",
			want:    map[string]string{"alpha": "", "beta": "S", "gamma": ""},
		},
		{
			name:    "comments and blanks skipped",
			content: "2\n# comment\n\n   \n// also a comment\nalpha\nbeta\n",
			want:    map[string]string{"alpha": "", "beta": ""},
		},
		{
			name:    "crlf line endings",
			content: "2\r\nalpha/AB\r\nbeta\r\n",
			want:    map[string]string{"alpha": "AB", "beta": ""},
		},
		{
			name:    "keys are lowercased",
			content: "1\nParis/N\n",
			want:    map[string]string{"paris": "N"},
		},
		{
			name:    "morphological fields ignored",
			content: "1\nwalk/BC\tpo:verb st:walk\n",
			want:    map[string]string{"walk": "BC"},
		},
		{
			name:    "homonyms merge flags",
			content: "2\nlead/AB\nlead/BC\n",
			want:    map[string]string{"lead": "ABC"},
		},
		{
			name:    "numeric hint only on first line",
			content: "1\n42\n",
			want:    map[string]string{"42": ""},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			words, err := ParseDicFile(tc.content, FlagTypeChar)
			require.NoError(t, err)
			assert.Equal(t, tc.want, words)
		})
	}
}

func TestParseDicFileInvalid(t *testing.T) {
	for _, content := range []string{"", "   \n\t\n", "12\n", "1\n# only comments\n"} {
		_, err := ParseDicFile(content, "")
		assert.ErrorIs(t, err, typoerr.ErrInvalidInput, "content %q", content)
	}
}
