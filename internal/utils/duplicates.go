package utils

import (
	"strings"
)

// SuggestionFilter drops duplicate candidates and the input word itself.
// It is not safe for concurrent use; create one per request.
type SuggestionFilter struct {
	seenWords map[string]struct{}
	inputWord string
}

// NewSuggestionFilter creates a new filter instance that will exclude the given input word
func NewSuggestionFilter(input string) *SuggestionFilter {
	lowerInput := strings.ToLower(input)
	seenWords := map[string]struct{}{lowerInput: {}}

	return &SuggestionFilter{
		seenWords: seenWords,
		inputWord: lowerInput,
	}
}

// ShouldInclude checks if a word should be included in results (not a duplicate)
// Returns true if the word should be included, false if it's a duplicate
func (f *SuggestionFilter) ShouldInclude(word string) bool {
	lowerWord := strings.ToLower(word)
	if _, seen := f.seenWords[lowerWord]; seen {
		return false
	}
	f.seenWords[lowerWord] = struct{}{}
	return true
}

// Seen returns how many distinct words passed through the filter, input included.
func (f *SuggestionFilter) Seen() int {
	return len(f.seenWords)
}
