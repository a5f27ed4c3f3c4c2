package typoerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMatching(t *testing.T) {
	err := New(InvalidInput, "check", "word is empty")

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrDictionaryLoad))
	assert.Equal(t, "typo: check: invalid input: word is empty", err.Error())
}

func TestWrapKeepsCause(t *testing.T) {
	cause := New(InvalidInput, "parseDicFile", "content is empty")
	err := fmt.Errorf("loading en_US: %w", Wrap(DictionaryLoadError, "loadDictionary", cause))

	assert.True(t, IsType(err, DictionaryLoadError))
	assert.True(t, IsType(err, InvalidInput), "cause should stay reachable")

	var te *Error
	if assert.True(t, errors.As(err, &te)) {
		assert.Equal(t, DictionaryLoadError, te.Type)
		assert.Equal(t, "loadDictionary", te.Op)
	}
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "invalid input", InvalidInput.String())
	assert.Equal(t, "dictionary load error", DictionaryLoadError.String())
	assert.Equal(t, "typoerr.Type(9)", Type(9).String())
}
