package affix

import (
	"unicode/utf8"

	"github.com/bastiangx/typo/pkg/dictionary"
)

type position int

const (
	posBegin position = iota
	posMiddle
	posEnd
)

type memoKey struct {
	start int
	count int
}

// compounder splits one word into segments, remembering which suffixes of the
// word are known not to split.
type compounder struct {
	engine
	cfg  dictionary.CompoundConfig
	word string
	memo map[memoKey]bool
}

// compound reports whether lower is a sequence of at least two segments whose
// flags fit their begin, middle and end positions.
func (e engine) compound(lower string) bool {
	cfg := e.d.Compound()
	if !cfg.Enabled {
		return false
	}
	if utf8.RuneCountInString(lower) < 2*cfg.MinLen {
		return false
	}
	c := &compounder{engine: e, cfg: cfg, word: lower, memo: make(map[memoKey]bool)}
	return c.split(0, 0)
}

// split tries every segment starting at start, shortest first. count is the
// number of segments already taken.
func (c *compounder) split(start, count int) bool {
	key := memoKey{start: start}
	if c.cfg.MaxWords > 0 || count == 0 {
		key.count = count
	} else {
		key.count = 1
	}
	if ok, seen := c.memo[key]; seen {
		return ok
	}

	ok := false
	runes := 0
	for end := start; end < len(c.word); {
		end = nextBoundary(c.word, end)
		runes++
		if runes < c.cfg.MinLen {
			continue
		}
		last := end == len(c.word)
		if last && count == 0 {
			break
		}
		if c.cfg.MaxWords > 0 && count+1 >= c.cfg.MaxWords && !last {
			continue
		}
		pos := posMiddle
		switch {
		case count == 0:
			pos = posBegin
		case last:
			pos = posEnd
		}
		if !c.segment(c.word[start:end], pos) {
			continue
		}
		if last || c.split(end, count+1) {
			ok = true
			break
		}
	}
	c.memo[key] = ok
	return ok
}

// segment reports whether part resolves, directly or through affixes, to a
// root carrying the flag for pos.
func (c *compounder) segment(part string, pos position) bool {
	accept := func(flags string) bool {
		if c.d.HasSpecial(dictionary.FlagForbiddenWord, flags) {
			return false
		}
		return c.allowed(flags, pos)
	}
	if flags, ok := c.d.Lookup(part); ok && !c.d.HasSpecial(dictionary.FlagNeedAffix, flags) && accept(flags) {
		return true
	}
	return c.affixed(part, accept)
}

func (c *compounder) allowed(flags string, pos position) bool {
	if dictionary.HasFlag(flags, c.cfg.Any) {
		return true
	}
	switch pos {
	case posBegin:
		return dictionary.HasFlag(flags, c.cfg.Begin)
	case posEnd:
		return dictionary.HasFlag(flags, c.cfg.End)
	default:
		return dictionary.HasFlag(flags, c.cfg.Middle)
	}
}
