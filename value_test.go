package openstep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyEqualityIgnoresOptions(t *testing.T) {
	bare := NewKey(NewByteString("name"))
	quoted := NewKeyOptions(NewByteString("name"), 0)
	unquoted := NewKeyOptions(NewByteString("name"), StringOptionUnquoted)

	assert.True(t, bare.Equal(quoted))
	assert.True(t, bare.Equal(unquoted))
	assert.Equal(t, bare.Hash(), quoted.Hash())
	assert.Equal(t, bare.Hash(), unquoted.Hash())

	assert.False(t, bare.Equal(NewKey(NewByteString("other"))))
}

func TestDictionaryLookupIgnoresKeyOptions(t *testing.T) {
	d := NewDictionary()
	d.Set(NewKeyOptions(NewByteString("name"), StringOptionUnquoted), NewString(NewByteString("value")))

	v, ok := d.Get(NewByteString("name"))
	require.True(t, ok)
	s, _ := v.AsString()
	assert.Equal(t, "value", s.String())
}

func TestDictionarySetLastWriteWins(t *testing.T) {
	d := NewDictionary()
	d.Set(NewKey(NewByteString("a")), NewString(NewByteString("first")))
	d.Set(NewKey(NewByteString("a")), NewString(NewByteString("second")))

	assert.Equal(t, 1, d.Len())
	v, _ := d.Get(NewByteString("a"))
	s, _ := v.AsString()
	assert.Equal(t, "second", s.String())
}

func TestDictionaryKeysSortedWhenNoExplicitOrder(t *testing.T) {
	d := NewDictionary()
	d.Set(NewKey(NewByteString("b")), NewString(NewByteString("1")))
	d.Set(NewKey(NewByteString("a")), NewString(NewByteString("2")))

	assert.False(t, d.HasOrder())
	keys := d.Keys()
	require.Len(t, keys, 2)
	assert.Equal(t, "a", keys[0].String())
	assert.Equal(t, "b", keys[1].String())
}
