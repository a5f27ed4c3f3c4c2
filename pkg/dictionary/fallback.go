package dictionary

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

//go:embed fallback_words.txt
var fallbackWords string

// CreateFallbackDictionary returns the built-in word list. It carries no
// affix or compound rules, ignores locale apart from logging it, and never fails.
func CreateFallbackDictionary(locale string) *Dictionary {
	d := &Dictionary{
		Words:         make(map[string]string, 512),
		Rules:         map[rune]*AffixRule{},
		CompoundRules: []CompoundRule{},
		SpecialFlags:  map[string][]rune{},
		Options:       map[string]string{},
		Encoding:      DefaultEncoding,
		CaseSensitive: true,
		IsFallback:    true,
		forms:         map[string]string{},
		prefixes:      map[string][]AffixRef{},
		suffixes:      map[string][]AffixRef{},
		compound:      CompoundConfig{MinLen: 1},
		trie:          patricia.NewTrie(),
	}
	for _, line := range strings.Split(fallbackWords, "\n") {
		w := strings.TrimSpace(line)
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		d.addWord(w, "")
	}
	log.Debugf("Using fallback dictionary for %q: %d words", locale, len(d.Words))
	return d
}
