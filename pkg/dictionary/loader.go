package dictionary

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/typo/pkg/typoerr"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// LoadDictionary parses both texts and builds a Dictionary.
//
// A blank affData is accepted and yields a plain word list. Malformed lines
// are skipped; a .dic text without entries fails with DictionaryLoadError
// wrapping the parser's InvalidInput error.
func LoadDictionary(affData, dicData string) (d *Dictionary, err error) {
	const op = "loadDictionary"
	defer func() {
		if r := recover(); r != nil {
			d = nil
			err = typoerr.Wrap(typoerr.DictionaryLoadError, op, fmt.Errorf("panic: %v", r))
		}
	}()

	aff := &AffData{
		Options: map[string]string{},
		Rules:   map[rune]*AffixRule{},
		Flags:   map[string][]rune{},
	}
	if strings.TrimSpace(affData) != "" {
		aff, err = ParseAffFile(affData)
		if err != nil {
			return nil, typoerr.Wrap(typoerr.DictionaryLoadError, op, err)
		}
	} else {
		log.Debug("No affix data, loading word list only")
	}

	entries, err := parseDicEntries(dicData, aff.Options["FLAG"])
	if err != nil {
		return nil, typoerr.Wrap(typoerr.DictionaryLoadError, op, err)
	}

	d = &Dictionary{
		Words:         make(map[string]string, len(entries)),
		Rules:         aff.Rules,
		CompoundRules: aff.CompoundRules,
		SpecialFlags:  aff.Flags,
		Options:       aff.Options,
		Replacements:  aff.Replacements,
		Encoding:      DefaultEncoding,
		CaseSensitive: true,
		forms:         make(map[string]string),
		trie:          patricia.NewTrie(),
	}
	if set := aff.Options["SET"]; set != "" {
		d.Encoding = set
	}
	for _, e := range entries {
		d.addWord(e.word, e.flags)
	}
	d.buildAffixIndex()
	d.compound = resolveCompound(d.CompoundRules)

	log.Debugf("Loaded dictionary: %d words, %d affix rules, %d compound rules (%s)",
		len(d.Words), len(d.Rules), len(d.CompoundRules), d.Encoding)
	return d, nil
}

// addWord stores one entry, merging flags of homonyms.
func (d *Dictionary) addWord(word, flags string) {
	key := CanonicalKey(word)
	existing, seen := d.Words[key]
	d.Words[key] = mergeFlags(existing, flags)
	if !seen {
		d.trie.Insert(patricia.Prefix(key), struct{}{})
	}
	if word != key {
		if _, ok := d.forms[key]; !ok {
			d.forms[key] = word
		}
	}
}

// buildAffixIndex compiles every entry and indexes it by affix text, so the
// engine only looks at entries whose affix actually occurs in a word.
func (d *Dictionary) buildAffixIndex() {
	d.prefixes = make(map[string][]AffixRef)
	d.suffixes = make(map[string][]AffixRef)
	for flag, rule := range d.Rules {
		for _, e := range rule.Entries {
			cond, err := compileCondition(strings.ToLower(e.Condition))
			if err != nil {
				log.Warnf("Dropping %s %q entry %q: %v", rule.Kind, string(flag), e.Affix, err)
				continue
			}
			ref := AffixRef{
				Flag:         flag,
				CrossProduct: rule.CrossProduct,
				Strip:        strings.ToLower(e.Strip),
				Affix:        strings.ToLower(e.Affix),
				cond:         cond,
			}
			if rule.Kind == Prefix {
				d.prefixes[ref.Affix] = append(d.prefixes[ref.Affix], ref)
			} else {
				d.suffixes[ref.Affix] = append(d.suffixes[ref.Affix], ref)
			}
		}
	}
}

// resolveCompound turns the COMPOUND* directives into flags and limits.
func resolveCompound(rules []CompoundRule) CompoundConfig {
	cfg := CompoundConfig{MinLen: 1}
	for _, r := range rules {
		switch r.Type {
		case CompoundMin:
			if n, err := strconv.Atoi(r.Value); err == nil && n > 0 {
				cfg.MinLen = n
			} else {
				log.Debugf("Ignoring invalid %s value %q", r.Type, r.Value)
			}
		case CompoundWordMax:
			if n, err := strconv.Atoi(r.Value); err == nil && n > 1 {
				cfg.MaxWords = n
			}
		case CompoundFlag:
			cfg.Any = firstRune(r.Value)
		case CompoundBegin:
			cfg.Begin = firstRune(r.Value)
		case CompoundMiddle:
			cfg.Middle = firstRune(r.Value)
		case CompoundEnd:
			cfg.End = firstRune(r.Value)
		}
	}
	cfg.Enabled = cfg.Any != 0 || cfg.Begin != 0 || cfg.Middle != 0 || cfg.End != 0
	return cfg
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0
	}
	return r
}
