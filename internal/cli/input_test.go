package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/typo/internal/logger"
	"github.com/bastiangx/typo/pkg/typo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAff = `TRY esianrtolcdugmphbyfvkwz
SFX B Y 2
SFX B 0 ed [^y]
SFX B y ied y
`

const testDic = `5
hello
world
test
work/B
try/B
`

func newHandler(input string) (*InputHandler, *bytes.Buffer) {
	t := typo.New("en_US", testAff, testDic, typo.Options{Logger: logger.Quiet("typo")})
	var out bytes.Buffer
	return NewInputHandler(t, 5, 60, false, strings.NewReader(input), &out), &out
}

func TestCheckText(t *testing.T) {
	h, out := newHandler("")

	n := h.CheckText("Hello wrld, 2024 tried worked")
	assert.Equal(t, 1, n)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4, "number token skipped")
	assert.Contains(t, lines[0], "✓")
	assert.Contains(t, lines[0], "Hello")
	assert.Contains(t, lines[1], "✗")
	assert.Contains(t, lines[1], "world")
	assert.Contains(t, lines[2], "tried")
	assert.Contains(t, lines[3], "worked")
}

func TestStartCommands(t *testing.T) {
	h, out := newHandler("helo\n\n:stats\n:complete wo\n:complete\n:nope\n:quit\nignored\n")

	require.NoError(t, h.Start())

	s := out.String()
	assert.Contains(t, s, "hello", "suggestion for helo")
	assert.Contains(t, s, "words:")
	assert.Contains(t, s, "work")
	assert.Contains(t, s, "world")
	assert.Contains(t, s, "usage: :complete <prefix>")
	assert.Contains(t, s, "unknown command: nope")
	assert.NotContains(t, s, "ignored")
}

func TestStartEOF(t *testing.T) {
	h, _ := newHandler("test\n")
	assert.NoError(t, h.Start())
}

func TestFormatVerdict(t *testing.T) {
	assert.Contains(t, FormatVerdict("wrk", false, nil), "no suggestions")
	assert.Contains(t, FormatVerdict("wrk", false, []string{"work", "wok"}), "work, wok")
}
