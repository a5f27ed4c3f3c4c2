package dictionary

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// condElem is one position of a compiled condition.
type condElem struct {
	any    bool
	negate bool
	set    string
}

func (e condElem) match(r rune) bool {
	if e.any {
		return true
	}
	in := strings.ContainsRune(e.set, r)
	if e.negate {
		return !in
	}
	return in
}

// condition is a compiled Hunspell affix condition: a sequence of
// ".", literal runes, "[abc]" and "[^abc]" groups.
type condition struct {
	elems []condElem
}

// compileCondition compiles a raw condition. "" and "." both match anything.
func compileCondition(raw string) (condition, error) {
	var c condition
	if raw == "" || raw == "." {
		return c, nil
	}
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRuneInString(raw[i:])
		switch r {
		case '.':
			c.elems = append(c.elems, condElem{any: true})
			i += size
		case '[':
			end := strings.IndexByte(raw[i:], ']')
			if end < 0 {
				return condition{}, fmt.Errorf("unterminated group in condition %q", raw)
			}
			body := raw[i+1 : i+end]
			e := condElem{}
			if strings.HasPrefix(body, "^") {
				e.negate = true
				body = body[1:]
			}
			if body == "" {
				return condition{}, fmt.Errorf("empty group in condition %q", raw)
			}
			e.set = body
			c.elems = append(c.elems, e)
			i += end + 1
		case ']':
			return condition{}, fmt.Errorf("unexpected ']' in condition %q", raw)
		default:
			c.elems = append(c.elems, condElem{set: string(r)})
			i += size
		}
	}
	return c, nil
}

// matchPrefix checks the condition against the first runes of stem.
func (c condition) matchPrefix(stem string) bool {
	if len(c.elems) == 0 {
		return true
	}
	i := 0
	for _, r := range stem {
		if !c.elems[i].match(r) {
			return false
		}
		i++
		if i == len(c.elems) {
			return true
		}
	}
	return false
}

// matchSuffix checks the condition against the last runes of stem.
func (c condition) matchSuffix(stem string) bool {
	if len(c.elems) == 0 {
		return true
	}
	i := len(c.elems) - 1
	for end := len(stem); end > 0; {
		r, size := utf8.DecodeLastRuneInString(stem[:end])
		if !c.elems[i].match(r) {
			return false
		}
		if i == 0 {
			return true
		}
		i--
		end -= size
	}
	return false
}
