/*
Package typo is the entry point of the spell checker.

A Typo owns one immutable dictionary and answers Check and Suggest calls
against it:

	t := typo.New("en_US", affText, dicText, typo.Options{})
	ok, err := t.Check("wrk")        // false, nil
	fixes, err := t.Suggest("wrk")   // ["work", ...]

Construction never fails. When both texts are blank, or loading them fails
for any reason, the instance runs on a small built-in English word list and
DictionaryStats reports IsFallback. Only Check and Suggest return errors, and
only for an empty word.

A Typo holds no mutable state after New returns, so one value may be shared
by any number of goroutines.
*/
package typo

import (
	"strings"

	"github.com/bastiangx/typo/internal/logger"
	"github.com/bastiangx/typo/pkg/affix"
	"github.com/bastiangx/typo/pkg/dictionary"
	"github.com/bastiangx/typo/pkg/suggest"
	"github.com/charmbracelet/log"
)

// Options tunes a Typo instance. The zero value is ready to use.
type Options struct {
	// Debug raises the instance logger to debug level. A supplied Logger is
	// copied first and left unchanged.
	Debug bool
	// MaxSuggestions caps Suggest results; <= 0 means suggest.DefaultLimit.
	MaxSuggestions int
	// Logger replaces the default "typo" logger.
	Logger *log.Logger
}

// Typo checks and corrects words for one locale.
type Typo struct {
	locale string
	dict   *dictionary.Dictionary
	limit  int
	log    *log.Logger
}

// New loads a dictionary from .aff and .dic text. It falls back to the
// built-in word list instead of failing.
func New(locale, affData, dicData string, opts Options) *Typo {
	t := newTypo(locale, opts)

	if strings.TrimSpace(affData) == "" && strings.TrimSpace(dicData) == "" {
		t.log.Debugf("No dictionary data for %s, using fallback", locale)
		t.dict = dictionary.CreateFallbackDictionary(locale)
		return t
	}

	d, err := dictionary.LoadDictionary(affData, dicData)
	if err != nil {
		t.log.Warnf("Failed to load dictionary for %s: %v. Using fallback...", locale, err)
		d = dictionary.CreateFallbackDictionary(locale)
	}
	t.dict = d

	stats := d.Stats()
	t.log.Debug("Dictionary ready", "locale", locale, "words", stats.WordCount,
		"affixRules", stats.AffixRuleCount, "compoundRules", stats.CompoundRuleCount,
		"fallback", stats.IsFallback)
	return t
}

// NewFromDictionary wraps an already loaded dictionary. A nil d selects the
// fallback word list.
func NewFromDictionary(locale string, d *dictionary.Dictionary, opts Options) *Typo {
	t := newTypo(locale, opts)
	if d == nil {
		d = dictionary.CreateFallbackDictionary(locale)
	}
	t.dict = d
	return t
}

func newTypo(locale string, opts Options) *Typo {
	l := opts.Logger
	if l == nil {
		l = logger.New("typo")
	} else if opts.Debug {
		// the caller's logger keeps its own level
		l = l.With()
	}
	if opts.Debug {
		l.SetLevel(log.DebugLevel)
	}
	limit := opts.MaxSuggestions
	if limit <= 0 {
		limit = suggest.DefaultLimit
	}
	return &Typo{locale: locale, limit: limit, log: l}
}

// Check reports whether word is spelled correctly.
func (t *Typo) Check(word string) (bool, error) {
	return affix.Check(t.dict, word)
}

// Suggest returns corrections for word, best first. A correct word yields an
// empty slice.
func (t *Typo) Suggest(word string) ([]string, error) {
	return t.SuggestN(word, t.limit)
}

// SuggestN is Suggest with an explicit limit; limit <= 0 uses the instance limit.
func (t *Typo) SuggestN(word string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = t.limit
	}
	return suggest.Suggest(t.dict, word, limit)
}

// DictionaryStats reports the size of the loaded dictionary.
func (t *Typo) DictionaryStats() dictionary.Stats {
	return affix.Stats(t.dict)
}

// Complete returns up to limit dictionary words starting with prefix, in
// lexical order. The prefix is matched case-insensitively.
func (t *Typo) Complete(prefix string, limit int) []string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []string{}
	}
	words := t.dict.WordsWithPrefix(dictionary.CanonicalKey(prefix), limit)
	if words == nil {
		return []string{}
	}
	return words
}

// Locale returns the locale the instance was created for.
func (t *Typo) Locale() string {
	return t.locale
}

// Dictionary returns the shared, read-only dictionary.
func (t *Typo) Dictionary() *dictionary.Dictionary {
	return t.dict
}

// MaxSuggestions returns the instance suggestion limit.
func (t *Typo) MaxSuggestions() int {
	return t.limit
}
