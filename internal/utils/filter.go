package utils

import (
	"strings"
	"unicode"
)

// IsSeparator checks if a rune may join two parts of one word
func IsSeparator(r rune) bool {
	return r == '\'' || r == '’' || r == '-'
}

// Token is a word found in free text, with its byte offset.
type Token struct {
	Word   string
	Offset int
}

// Tokenize splits text into words. Apostrophes and hyphens inside a word are
// kept, leading or trailing ones are not.
func Tokenize(text string) []Token {
	var tokens []Token
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		word := strings.TrimRightFunc(text[start:end], IsSeparator)
		if word != "" {
			tokens = append(tokens, Token{Word: word, Offset: start})
		}
		start = -1
	}

	for i, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r):
			if start < 0 {
				start = i
			}
		case IsSeparator(r) && start >= 0:
		default:
			flush(i)
		}
	}
	flush(len(text))
	return tokens
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsValidInput checks if a token should be spell checked at all.
// Numbers and strings longer than maxLen runes are skipped. maxLen <= 0
// disables the length check.
func IsValidInput(s string, maxLen int) bool {
	if len(s) == 0 {
		return false
	}
	if IsOnlyNumbers(s) {
		return false
	}
	if maxLen > 0 && len([]rune(s)) > maxLen {
		return false
	}
	return true
}
