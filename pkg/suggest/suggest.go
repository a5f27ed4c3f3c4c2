// Package suggest proposes corrections for misspelled words.
//
// Candidates are single edits of the input (REP table replacements,
// substitution and insertion of TRY characters, deletion, adjacent
// transposition). Every candidate is validated with the same rules as
// affix.Check, so a word reachable only through its affix flags is still
// proposed. Results are ranked by OSA Damerau-Levenshtein distance, then
// lexically.
package suggest

import (
	"sort"
	"strings"

	"github.com/bastiangx/typo/internal/utils"
	"github.com/bastiangx/typo/pkg/affix"
	"github.com/bastiangx/typo/pkg/dictionary"
	"github.com/bastiangx/typo/pkg/typoerr"
	"github.com/charmbracelet/log"
	"github.com/hbollon/go-edlib"
)

const (
	// DefaultLimit caps the result when no positive limit is given.
	DefaultLimit = 10
	// DefaultTry is used when the affix file has no TRY directive.
	DefaultTry = "etaoinshrdlcumwfgypbvkjxqz"
)

// Suggestion is one validated candidate.
type Suggestion struct {
	Word     string
	Distance int
}

// Suggest returns up to limit corrections for word, best first. A correct
// word yields an empty slice.
func Suggest(d *dictionary.Dictionary, word string, limit int) ([]string, error) {
	ranked, err := Rank(d, word, limit)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.Word
	}
	return out, nil
}

// Rank is Suggest with the edit distance of each suggestion.
func Rank(d *dictionary.Dictionary, word string, limit int) ([]Suggestion, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, typoerr.New(typoerr.InvalidInput, "suggest", "word is empty")
	}
	if affix.Valid(d, word) {
		return []Suggestion{}, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	lower := dictionary.CanonicalKey(word)
	filter := utils.NewSuggestionFilter(lower)
	var found []Suggestion
	// a KEEPCASE word typed in the wrong case is its own best correction
	if flags, ok := d.Lookup(lower); ok && d.HasSpecial(dictionary.FlagKeepCase, flags) {
		if display, ok := accept(d, lower); ok && display != word {
			found = append(found, Suggestion{Word: display})
		}
	}
	for _, c := range Candidates(lower, TryRunes(d), d.Replacements) {
		if !filter.ShouldInclude(c) {
			continue
		}
		display, ok := accept(d, c)
		if !ok {
			continue
		}
		found = append(found, Suggestion{
			Word:     display,
			Distance: edlib.OSADamerauLevenshteinDistance(lower, c),
		})
	}
	log.Debugf("suggest %q: %d candidates, %d valid", word, filter.Seen()-1, len(found))

	sort.Slice(found, func(i, j int) bool {
		if found[i].Distance != found[j].Distance {
			return found[i].Distance < found[j].Distance
		}
		return found[i].Word < found[j].Word
	})
	if len(found) > limit {
		found = found[:limit]
	}

	casing := utils.DetectCasing(word)
	if casing == utils.CaseLower || casing == utils.CaseMixed {
		return found, nil
	}
	for i := range found {
		if recased := utils.ApplyCasing(found[i].Word, casing); recased != found[i].Word && affix.Valid(d, recased) {
			found[i].Word = recased
		}
	}
	return found, nil
}

// accept validates a lowercase candidate and returns the spelling to show.
func accept(d *dictionary.Dictionary, candidate string) (string, bool) {
	display := candidate
	if flags, ok := d.Lookup(candidate); ok {
		if d.HasSpecial(dictionary.FlagNoSuggest, flags) || d.HasSpecial(dictionary.FlagForbiddenWord, flags) {
			return "", false
		}
		if form, ok := d.Form(candidate); ok {
			display = form
		}
	}
	return display, affix.Valid(d, display)
}

// TryRunes returns the dictionary's TRY characters, lowercased and
// deduplicated, or DefaultTry.
func TryRunes(d *dictionary.Dictionary) []rune {
	try := d.Option("TRY")
	if strings.TrimSpace(try) == "" {
		try = DefaultTry
	}
	seen := make(map[rune]struct{}, len(try))
	runes := make([]rune, 0, len(try))
	for _, r := range strings.ToLower(try) {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		runes = append(runes, r)
	}
	return runes
}
