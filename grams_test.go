package fuzzyindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectGrams drains the iterator, decoding each gram for readability.
func collectGrams(it *gramIter) []string {
	var out []string
	for seg, ok := it.next(); ok; seg, ok = it.next() {
		out = append(out, string(utf16DecodeForTest(seg.appendUnpacked(nil))))
	}
	return out
}

func utf16DecodeForTest(units []uint16) []rune {
	runes := make([]rune, 0, len(units))
	for _, u := range units {
		runes = append(runes, rune(u))
	}
	return runes
}

func TestGramIterYieldsEveryOffset(t *testing.T) {
	it := newGramIter(u16("abcdef"), 4)
	grams := collectGrams(&it)
	require.Len(t, grams, 3, "a length-6 buffer has 6-4+1 grams of size 4")
	assert.Equal(t, []string{"abcd", "bcde", "cdef"}, grams)
}

func TestGramIterFullWidth(t *testing.T) {
	it := newGramIter(u16("abcd"), 4)
	grams := collectGrams(&it)
	assert.Equal(t, []string{"abcd"}, grams, "gram size equal to buffer length yields one gram")
}

func TestGramIterReset(t *testing.T) {
	it := newGramIter(u16("abcde"), 3)
	first := collectGrams(&it)
	require.NotEmpty(t, first)

	_, ok := it.next()
	assert.False(t, ok, "drained iterator should stay drained")

	it.reset()
	assert.Equal(t, first, collectGrams(&it), "reset should restart the same sequence")
}

func TestGramIterSizePreconditions(t *testing.T) {
	norm := u16("abcdefghij")

	assert.Panics(t, func() { newGramIter(norm, 0) }, "gram size below 1 is a caller bug")
	assert.Panics(t, func() { newGramIter(norm, segmentCapacity+1) }, "gram size beyond segment capacity is a caller bug")
	assert.Panics(t, func() { newGramIter(u16("ab"), 3) }, "gram size beyond buffer length is a caller bug")
}
