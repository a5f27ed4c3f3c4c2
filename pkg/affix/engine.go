// Package affix decides whether a word is valid for a Dictionary: direct
// lookup, single prefix or suffix stripping, prefix+suffix cross products and
// compound decomposition, tried in that order.
package affix

import (
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/typo/pkg/dictionary"
	"github.com/bastiangx/typo/pkg/typoerr"
)

// Check reports whether word is valid in d. Only an empty or whitespace-only
// word is an error.
func Check(d *dictionary.Dictionary, word string) (bool, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return false, typoerr.New(typoerr.InvalidInput, "check", "word is empty")
	}
	return Valid(d, word), nil
}

// Valid is Check for a word already known to be non-blank.
func Valid(d *dictionary.Dictionary, word string) bool {
	e := engine{d: d}
	lower := dictionary.CanonicalKey(word)

	if flags, ok := d.Lookup(lower); ok {
		if d.HasSpecial(dictionary.FlagForbiddenWord, flags) {
			return false
		}
		if e.rootAlone(word, lower, flags) {
			return true
		}
	}
	if e.affixed(lower, e.rootOutsideCompound) {
		return true
	}
	return e.compound(lower)
}

// Stats reports the dictionary's collection sizes.
func Stats(d *dictionary.Dictionary) dictionary.Stats {
	return d.Stats()
}

type engine struct {
	d *dictionary.Dictionary
}

// rootAlone tells whether a direct dictionary hit is a valid word by itself.
func (e engine) rootAlone(word, lower, flags string) bool {
	d := e.d
	if d.HasSpecial(dictionary.FlagNeedAffix, flags) || d.HasSpecial(dictionary.FlagOnlyInCompound, flags) {
		return false
	}
	if d.CaseSensitive && d.HasSpecial(dictionary.FlagKeepCase, flags) {
		form, ok := d.Form(lower)
		if !ok {
			form = lower
		}
		return word == form
	}
	return true
}

func (e engine) rootOutsideCompound(flags string) bool {
	return !e.d.HasSpecial(dictionary.FlagForbiddenWord, flags) &&
		!e.d.HasSpecial(dictionary.FlagOnlyInCompound, flags)
}

// affixed reports whether lower is a root plus one prefix, one suffix, or a
// cross-product pair, with accept approving the root's flags.
func (e engine) affixed(lower string, accept func(flags string) bool) bool {
	d := e.d
	if !d.HasAffixes() {
		return false
	}

	// Suffixes, plus prefixes layered on top of a stripped cross-product suffix.
	for i := len(lower); i > 0; i = prevBoundary(lower, i) {
		for _, sfx := range d.SuffixesOf(lower[i:]) {
			stem := lower[:i] + sfx.Strip
			if !sfx.Matches(dictionary.Suffix, stem) {
				continue
			}
			if flags, ok := d.Lookup(stem); ok && dictionary.HasFlag(flags, sfx.Flag) && accept(flags) {
				return true
			}
			if sfx.CrossProduct && e.prefixed(stem, sfx.Flag, accept) {
				return true
			}
		}
	}
	return e.prefixed(lower, 0, accept)
}

// prefixed strips one prefix from word. When also is non-zero the root must
// carry that suffix flag too and the prefix rule must allow cross products.
func (e engine) prefixed(word string, also rune, accept func(flags string) bool) bool {
	d := e.d
	for i := 0; i < len(word); i = nextBoundary(word, i) {
		for _, pfx := range d.PrefixesOf(word[:i]) {
			if also != 0 && !pfx.CrossProduct {
				continue
			}
			stem := pfx.Strip + word[i:]
			if !pfx.Matches(dictionary.Prefix, stem) {
				continue
			}
			flags, ok := d.Lookup(stem)
			if !ok || !dictionary.HasFlag(flags, pfx.Flag) {
				continue
			}
			if also != 0 && !dictionary.HasFlag(flags, also) {
				continue
			}
			if accept(flags) {
				return true
			}
		}
	}
	return false
}

func nextBoundary(s string, i int) int {
	_, size := utf8.DecodeRuneInString(s[i:])
	return i + size
}

// prevBoundary steps back one rune and stops at 0, so the remaining stem is
// never empty.
func prevBoundary(s string, i int) int {
	_, size := utf8.DecodeLastRuneInString(s[:i])
	return i - size
}
