package dictionary

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/typo/pkg/typoerr"
	"github.com/charmbracelet/log"
)

// AffData is everything ParseAffFile extracts from an .aff file.
type AffData struct {
	Options       map[string]string
	Rules         map[rune]*AffixRule
	CompoundRules []CompoundRule
	Flags         map[string][]rune
	Replacements  []Replacement
}

// Multi-column tables that are recognised and ignored.
var ignoredTables = map[string]bool{
	"MAP":   true,
	"ICONV": true,
	"OCONV": true,
	"BREAK": true,
	"PHONE": true,
	"AF":    true,
	"AM":    true,
}

// affParser holds the state of one ParseAffFile run.
type affParser struct {
	data    *AffData
	pending map[rune]int // entries still expected per open PFX/SFX block
	skipped map[rune]Kind
	repLeft int
}

// ParseAffFile parses .aff text. Malformed lines are skipped; only empty
// content is an error.
func ParseAffFile(content string) (*AffData, error) {
	if strings.TrimSpace(content) == "" {
		return nil, typoerr.New(typoerr.InvalidInput, "parseAffFile", "content is empty")
	}
	p := &affParser{
		data: &AffData{
			Options: make(map[string]string),
			Rules:   make(map[rune]*AffixRule),
			Flags:   make(map[string][]rune),
		},
		pending: make(map[rune]int),
		skipped: make(map[rune]Kind),
	}
	for n, line := range strings.Split(content, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		p.parseLine(n+1, fields)
	}
	for flag, left := range p.pending {
		if left > 0 {
			log.Debugf("Affix block %q ended %d entries short", string(flag), left)
		}
	}
	return p.data, nil
}

func (p *affParser) parseLine(n int, fields []string) {
	name := fields[0]
	switch {
	case name == "PFX" || name == "SFX":
		p.parseAffix(n, name, fields)
	case name == "REP":
		p.parseRep(n, fields)
	case strings.HasPrefix(name, "COMPOUND"):
		if len(fields) < 2 {
			log.Debugf("Skipping %s without value on line %d", name, n)
			return
		}
		p.data.CompoundRules = append(p.data.CompoundRules, CompoundRule{
			Type:  name,
			Value: strings.Join(fields[1:], " "),
		})
	case name == "SET" || name == "TRY":
		if len(fields) < 2 {
			log.Debugf("Skipping %s without value on line %d", name, n)
			return
		}
		p.data.Options[name] = fields[1]
	case ignoredTables[name]:
		return
	case len(fields) == 2:
		if utf8.RuneCountInString(fields[1]) == 1 && isFlagDirective(name) {
			r, _ := utf8.DecodeRuneInString(fields[1])
			p.data.Flags[name] = append(p.data.Flags[name], r)
			return
		}
		p.data.Options[name] = fields[1]
	default:
		log.Debugf("Ignoring .aff line %d: %s", n, strings.Join(fields, " "))
	}
}

// flagDirectives name the directives whose value is a single flag. Anything
// else with one value, such as "LANG x" or "VERSION 1", is an option.
var flagDirectives = map[string]bool{
	FlagForbiddenWord:  true,
	FlagKeepCase:       true,
	FlagNeedAffix:      true,
	FlagNoSuggest:      true,
	FlagOnlyInCompound: true,
	"CIRCUMFIX":        true,
	"FORCEUCASE":       true,
	"SUBSTANDARD":      true,
	"WARN":             true,
	"LEMMA_PRESENT":    true,
	"NONGRAMSUGGEST":   true,
}

func isFlagDirective(name string) bool {
	return flagDirectives[name]
}

// maxEntryPrealloc bounds the capacity reserved from a block header's count.
const maxEntryPrealloc = 64

func (p *affParser) parseAffix(n int, name string, fields []string) {
	if len(fields) < 4 {
		log.Debugf("Skipping short %s line %d", name, n)
		return
	}
	kind := Prefix
	if name == "SFX" {
		kind = Suffix
	}
	flag, size := utf8.DecodeRuneInString(fields[1])
	if size != len(fields[1]) {
		log.Warnf("Skipping %s line %d: multi-character flag %q is not supported", name, n, fields[1])
		return
	}
	if sk, ok := p.skipped[flag]; ok && sk == kind {
		return
	}

	if p.pending[flag] == 0 && isAffixHeader(fields) {
		count, _ := strconv.Atoi(fields[3])
		if count < 0 {
			log.Debugf("Skipping %s header on line %d: negative entry count %d", name, n, count)
			return
		}
		if existing, ok := p.data.Rules[flag]; ok && existing.Kind != kind {
			log.Warnf("Flag %q already names a %s rule, skipping %s block on line %d", string(flag), existing.Kind, name, n)
			p.skipped[flag] = kind
			return
		}
		rule, ok := p.data.Rules[flag]
		if !ok {
			rule = &AffixRule{Flag: flag, Kind: kind}
			p.data.Rules[flag] = rule
		}
		rule.CrossProduct = fields[2] == "Y"
		if rule.Entries == nil {
			rule.Entries = make([]AffixEntry, 0, min(count, maxEntryPrealloc))
		}
		p.pending[flag] = count
		return
	}

	rule, ok := p.data.Rules[flag]
	if !ok {
		log.Debugf("Skipping %s entry on line %d: no header for flag %q", name, n, string(flag))
		return
	}
	if rule.Kind != kind {
		log.Debugf("Skipping %s entry on line %d: flag %q is a %s rule", name, n, string(flag), rule.Kind)
		return
	}
	if p.pending[flag] == 0 {
		log.Debugf("Extra %s entry for flag %q on line %d", name, string(flag), n)
	} else {
		p.pending[flag]--
	}

	entry := AffixEntry{
		Strip:     zeroToEmpty(fields[2]),
		Affix:     zeroToEmpty(fields[3]),
		Condition: ".",
	}
	if i := strings.IndexByte(entry.Affix, '/'); i >= 0 {
		entry.Affix = zeroToEmpty(entry.Affix[:i])
	}
	if len(fields) > 4 {
		entry.Condition = fields[4]
	}
	if _, err := compileCondition(entry.Condition); err != nil {
		log.Warnf("Skipping %s entry on line %d: %v", name, n, err)
		return
	}
	rule.Entries = append(rule.Entries, entry)
}

// isAffixHeader matches "PFX A Y 3".
func isAffixHeader(fields []string) bool {
	if len(fields) != 4 || (fields[2] != "Y" && fields[2] != "N") {
		return false
	}
	_, err := strconv.Atoi(fields[3])
	return err == nil
}

func (p *affParser) parseRep(n int, fields []string) {
	if len(fields) == 2 && p.repLeft == 0 {
		if count, err := strconv.Atoi(fields[1]); err == nil {
			p.repLeft = count
			return
		}
	}
	if len(fields) < 3 {
		log.Debugf("Skipping malformed REP line %d", n)
		return
	}
	if p.repLeft > 0 {
		p.repLeft--
	}
	p.data.Replacements = append(p.data.Replacements, Replacement{
		From: strings.ReplaceAll(fields[1], "_", " "),
		To:   strings.ReplaceAll(fields[2], "_", " "),
	})
}

func zeroToEmpty(s string) string {
	if s == "0" {
		return ""
	}
	return s
}
