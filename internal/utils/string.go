package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Casing is the capitalization pattern of a word.
type Casing int

const (
	CaseLower Casing = iota
	// CaseTitle is an initial capital followed by lowercase letters.
	CaseTitle
	CaseUpper
	CaseMixed
)

// DetectCasing classifies the letters of s. Words without letters are CaseLower.
func DetectCasing(s string) Casing {
	var letters, upper int
	firstUpper := false
	for i, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			upper++
			if i == 0 {
				firstUpper = true
			}
		}
	}

	switch {
	case upper == 0:
		return CaseLower
	case upper == letters && letters > 1:
		return CaseUpper
	case upper == 1 && firstUpper:
		return CaseTitle
	default:
		return CaseMixed
	}
}

// ApplyCasing recases a lowercase word to match c. Mixed casing cannot be
// transferred between words of different shape, so the word is returned as is.
func ApplyCasing(word string, c Casing) string {
	switch c {
	case CaseUpper:
		return strings.ToUpper(word)
	case CaseTitle:
		r, size := utf8.DecodeRuneInString(word)
		if r == utf8.RuneError {
			return word
		}
		return string(unicode.ToTitle(r)) + word[size:]
	default:
		return word
	}
}
