/*
Package dictionary parses Hunspell affix (.aff) and word list (.dic) text into
an immutable in-memory Dictionary.

The loader understands the structural subset of the Hunspell formats needed
for spell checking: single-rune flags, PFX/SFX rule blocks with conditions,
COMPOUND* directives, single-flag directives such as FORBIDDENWORD or
KEEPCASE, and the REP replacement table used for suggestions.

	d, err := dictionary.LoadDictionary(affText, dicText)
	if err != nil {
		d = dictionary.CreateFallbackDictionary("en_US")
	}

A Dictionary is never modified after it is returned, so one value can be
shared by any number of goroutines without locking. Callers must treat the
exported maps and slices as read-only.

Reading the files from disk (and transcoding them from the SET encoding) is
done by ReadFiles; everything else in this package is pure.
*/
package dictionary

import (
	"errors"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Kind tells whether an AffixRule attaches at the front or the back of a stem.
type Kind int

const (
	Prefix Kind = iota
	Suffix
)

func (k Kind) String() string {
	if k == Prefix {
		return "PFX"
	}
	return "SFX"
}

// Special flag and compound directive names the engine gives meaning to.
const (
	FlagForbiddenWord  = "FORBIDDENWORD"
	FlagKeepCase       = "KEEPCASE"
	FlagNeedAffix      = "NEEDAFFIX"
	FlagNoSuggest      = "NOSUGGEST"
	FlagOnlyInCompound = "ONLYINCOMPOUND"

	CompoundMin     = "COMPOUNDMIN"
	CompoundFlag    = "COMPOUNDFLAG"
	CompoundBegin   = "COMPOUNDBEGIN"
	CompoundMiddle  = "COMPOUNDMIDDLE"
	CompoundEnd     = "COMPOUNDEND"
	CompoundWordMax = "COMPOUNDWORDMAX"
)

// DefaultEncoding is used when the affix file has no SET directive.
const DefaultEncoding = "UTF-8"

// AffixEntry is one line of a PFX/SFX block.
type AffixEntry struct {
	// Strip is removed from the stem before the affix is added. Empty for "0".
	Strip string
	// Affix is the text added to the stem. Empty for "0".
	Affix string
	// Condition is the raw Hunspell condition, "." when absent.
	Condition string
}

// AffixRule groups the entries sharing one flag.
type AffixRule struct {
	Flag         rune
	Kind         Kind
	CrossProduct bool
	Entries      []AffixEntry
}

// CompoundRule is a COMPOUND* directive in file order.
type CompoundRule struct {
	Type  string
	Value string
}

// Replacement is one REP table row.
type Replacement struct {
	From string
	To   string
}

// Stats summarises the sizes of a Dictionary.
type Stats struct {
	WordCount         int  `json:"wordCount" msgpack:"word_count"`
	AffixRuleCount    int  `json:"affixRuleCount" msgpack:"affix_rule_count"`
	CompoundRuleCount int  `json:"compoundRuleCount" msgpack:"compound_rule_count"`
	IsFallback        bool `json:"isFallback" msgpack:"is_fallback"`
}

// Dictionary is the parsed, immutable model of an .aff/.dic pair.
type Dictionary struct {
	// Words maps the lowercase word to its concatenated flag runes.
	Words         map[string]string
	Rules         map[rune]*AffixRule
	CompoundRules []CompoundRule
	SpecialFlags  map[string][]rune
	Options       map[string]string
	Replacements  []Replacement
	Encoding      string
	CaseSensitive bool
	IsFallback    bool

	forms    map[string]string // lowercase key -> original spelling, only when they differ
	prefixes map[string][]AffixRef
	suffixes map[string][]AffixRef
	compound CompoundConfig
	trie     *patricia.Trie
}

// AffixRef is a compiled affix entry, indexed by its affix text.
type AffixRef struct {
	Flag         rune
	CrossProduct bool
	Strip        string
	Affix        string
	cond         condition
}

// Matches reports whether the entry's condition holds for stem.
func (r AffixRef) Matches(kind Kind, stem string) bool {
	if kind == Prefix {
		return r.cond.matchPrefix(stem)
	}
	return r.cond.matchSuffix(stem)
}

// CompoundConfig is the compound directive set resolved to flags.
// A zero flag means the directive is absent.
type CompoundConfig struct {
	Enabled  bool
	MinLen   int
	MaxWords int
	Any      rune
	Begin    rune
	Middle   rune
	End      rune
}

// Stats reports the sizes of the three rule collections.
func (d *Dictionary) Stats() Stats {
	return Stats{
		WordCount:         len(d.Words),
		AffixRuleCount:    len(d.Rules),
		CompoundRuleCount: len(d.CompoundRules),
		IsFallback:        d.IsFallback,
	}
}

// Lookup returns the flags of a lowercase word.
func (d *Dictionary) Lookup(word string) (string, bool) {
	flags, ok := d.Words[word]
	return flags, ok
}

// Form returns the original spelling of a word whose .dic entry was not lowercase.
func (d *Dictionary) Form(word string) (string, bool) {
	f, ok := d.forms[word]
	return f, ok
}

// HasSpecial reports whether flags carry the flag bound to the named directive.
func (d *Dictionary) HasSpecial(name, flags string) bool {
	if flags == "" {
		return false
	}
	for _, f := range d.SpecialFlags[name] {
		if strings.ContainsRune(flags, f) {
			return true
		}
	}
	return false
}

// Option returns a single-value .aff option such as TRY or LANG.
func (d *Dictionary) Option(name string) string {
	return d.Options[name]
}

// PrefixesOf returns the prefix entries whose affix equals affix.
func (d *Dictionary) PrefixesOf(affix string) []AffixRef {
	return d.prefixes[affix]
}

// SuffixesOf returns the suffix entries whose affix equals affix.
func (d *Dictionary) SuffixesOf(affix string) []AffixRef {
	return d.suffixes[affix]
}

// HasAffixes reports whether any PFX/SFX entry was loaded.
func (d *Dictionary) HasAffixes() bool {
	return len(d.prefixes) > 0 || len(d.suffixes) > 0
}

// Compound returns the resolved compound settings.
func (d *Dictionary) Compound() CompoundConfig {
	return d.compound
}

// WordsWithPrefix returns up to limit dictionary words starting with prefix,
// sorted. limit <= 0 means no limit.
func (d *Dictionary) WordsWithPrefix(prefix string, limit int) []string {
	if d.trie == nil {
		return nil
	}
	var out []string
	err := d.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		out = append(out, string(p))
		if limit > 0 && len(out) >= limit {
			return errStopVisit
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopVisit) {
		log.Errorf("Error visiting word trie: %v", err)
	}
	sort.Strings(out)
	return out
}

var errStopVisit = errors.New("stop visit")

// HasFlag reports whether flags contain f.
func HasFlag(flags string, f rune) bool {
	return f != 0 && strings.ContainsRune(flags, f)
}
