package suggest

import (
	"strings"

	"github.com/bastiangx/typo/pkg/dictionary"
)

// Candidates lists every single edit of word, REP replacements first.
// The list may contain duplicates and the word itself.
func Candidates(word string, try []rune, reps []dictionary.Replacement) []string {
	runes := []rune(word)
	n := len(runes)
	out := make([]string, 0, len(reps)+n*(2*len(try)+2)+len(try))

	out = appendReplacements(out, word, reps)

	buf := make([]rune, 0, n+1)
	for i := 0; i <= n; i++ {
		// insertion before position i, or at the end
		for _, r := range try {
			buf = append(append(append(buf[:0], runes[:i]...), r), runes[i:]...)
			out = append(out, string(buf))
		}
		if i == n {
			break
		}

		// substitution
		for _, r := range try {
			if r == runes[i] {
				continue
			}
			buf = append(buf[:0], runes...)
			buf[i] = r
			out = append(out, string(buf))
		}

		// deletion
		if n > 1 {
			buf = append(append(buf[:0], runes[:i]...), runes[i+1:]...)
			out = append(out, string(buf))
		}

		// adjacent transposition
		if i+1 < n && runes[i] != runes[i+1] {
			buf = append(buf[:0], runes...)
			buf[i], buf[i+1] = buf[i+1], buf[i]
			out = append(out, string(buf))
		}
	}
	return out
}

// appendReplacements applies each REP row at every occurrence of its From
// text. Rows that would introduce a space are skipped since a suggestion is a
// single word.
func appendReplacements(out []string, word string, reps []dictionary.Replacement) []string {
	for _, rep := range reps {
		if rep.From == "" || strings.ContainsRune(rep.To, ' ') {
			continue
		}
		from := strings.ToLower(rep.From)
		to := strings.ToLower(rep.To)
		for off := 0; off < len(word); {
			idx := strings.Index(word[off:], from)
			if idx < 0 {
				break
			}
			at := off + idx
			out = append(out, word[:at]+to+word[at+len(from):])
			off = at + 1
		}
	}
	return out
}
