package fuzzyindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentRoundTrip(t *testing.T) {
	for _, s := range []string{"a", "abcd", "abcdefg", "abcdefgh"} {
		units := u16(s)
		seg := packSegment(units)
		assert.Equal(t, units, seg.appendUnpacked(nil), "round trip of %q", s)
	}

	assert.Empty(t, packSegment(nil).appendUnpacked(nil), "zero segment decodes to nothing")
}

func TestSegmentValueEquality(t *testing.T) {
	assert.Equal(t, packSegment(u16("gram")), packSegment(u16("gram")))
	assert.NotEqual(t, packSegment(u16("gram")), packSegment(u16("grab")))

	// Content shorter than capacity must not collide with longer content
	// sharing the same prefix.
	assert.NotEqual(t, packSegment(u16("gram")), packSegment(u16("grams")))
}

func TestSegmentAsMapKey(t *testing.T) {
	postings := map[segment][]int32{}
	postings[packSegment(u16("hell"))] = append(postings[packSegment(u16("hell"))], 0)
	postings[packSegment(u16("hell"))] = append(postings[packSegment(u16("hell"))], 1)
	postings[packSegment(u16("ello"))] = append(postings[packSegment(u16("ello"))], 1)

	assert.Len(t, postings, 2)
	assert.Equal(t, []int32{0, 1}, postings[packSegment(u16("hell"))])
}

func TestSegmentSentinelUnits(t *testing.T) {
	// Sentinels are ordinary nonzero code units inside a segment; a gram
	// anchored at a string boundary differs from the same letters interior.
	boundary := packSegment([]uint16{boundarySentinel, 'a', 'b', 'c'})
	interior := packSegment(u16("xabc")[0:4])
	assert.NotEqual(t, boundary, interior)
}
