package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "abc", ToString([]byte("abc")))
	assert.Equal(t, "true", ToString(true))
	assert.Equal(t, "42", ToString(42))
}

func TestAsBool(t *testing.T) {
	b, ok := AsBool(true)
	assert.True(t, ok)
	assert.True(t, b)

	b, ok = AsBool(false)
	assert.True(t, ok)
	assert.False(t, b)

	// Strings and numbers are never checkbox states.
	_, ok = AsBool("TRUE")
	assert.False(t, ok)
	_, ok = AsBool(1)
	assert.False(t, ok)
	_, ok = AsBool(nil)
	assert.False(t, ok)
}
