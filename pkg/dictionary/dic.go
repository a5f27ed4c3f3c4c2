package dictionary

import (
	"strings"

	"github.com/bastiangx/typo/pkg/typoerr"
	"github.com/charmbracelet/log"
	"golang.org/x/text/unicode/norm"
)

// Flag types accepted by ParseDicFile. All of them mean one rune per flag.
const (
	FlagTypeChar = "char"
	FlagTypeUTF8 = "UTF-8"
)

// dicEntry is a parsed .dic line.
type dicEntry struct {
	word  string // as written, unescaped
	flags string
}

// ParseDicFile parses .dic text into a lowercase word -> flags map.
//
// A numeric first line is taken as the word-count hint and ignored. Comment
// lines ("#", "//") and blank lines are skipped. Entries look like "word" or
// "word/FLAGS"; "\/" is a literal slash inside the word.
func ParseDicFile(content, flagType string) (map[string]string, error) {
	entries, err := parseDicEntries(content, flagType)
	if err != nil {
		return nil, err
	}
	words := make(map[string]string, len(entries))
	for _, e := range entries {
		key := CanonicalKey(e.word)
		words[key] = mergeFlags(words[key], e.flags)
	}
	return words, nil
}

func parseDicEntries(content, flagType string) ([]dicEntry, error) {
	const op = "parseDicFile"
	if strings.TrimSpace(content) == "" {
		return nil, typoerr.New(typoerr.InvalidInput, op, "content is empty")
	}
	switch flagType {
	case "", FlagTypeChar, FlagTypeUTF8:
	default:
		log.Warnf("Unsupported FLAG type %q, reading flags as single characters", flagType)
	}

	lines := strings.Split(content, "\n")
	entries := make([]dicEntry, 0, len(lines))
	seenFirst := false
	for n, line := range lines {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !seenFirst {
			seenFirst = true
			if isCountHint(trimmed) {
				continue
			}
		}
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//") {
			continue
		}
		e, ok := parseDicLine(trimmed)
		if !ok {
			log.Debugf("Skipping malformed .dic line %d: %q", n+1, line)
			continue
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return nil, typoerr.New(typoerr.InvalidInput, op, "no word entries")
	}
	return entries, nil
}

// parseDicLine splits "word/FLAGS [morph fields]" honouring "\/" escapes.
func parseDicLine(line string) (dicEntry, bool) {
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		line = line[:i]
	}
	var word strings.Builder
	word.Grow(len(line))
	flags := ""
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' && i+1 < len(line) && line[i+1] == '/' {
			word.WriteByte('/')
			i++
			continue
		}
		if c == '/' {
			flags = line[i+1:]
			break
		}
		word.WriteByte(c)
	}
	if word.Len() == 0 {
		return dicEntry{}, false
	}
	return dicEntry{word: word.String(), flags: flags}, true
}

func isCountHint(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CanonicalKey is the form words are stored and looked up under:
// NFC normalized and lowercased.
func CanonicalKey(word string) string {
	if !norm.NFC.IsNormalString(word) {
		word = norm.NFC.String(word)
	}
	return strings.ToLower(word)
}

// mergeFlags appends the runes of add that a does not already contain.
func mergeFlags(a, add string) string {
	if a == "" {
		return add
	}
	for _, f := range add {
		if !strings.ContainsRune(a, f) {
			a += string(f)
		}
	}
	return a
}
