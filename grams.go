package fuzzyindex

import "fmt"

// gramIter walks every contiguous gram of a fixed size across a normalized
// buffer, yielding packed segments in offset order. It holds no state beyond
// the current offset, so iteration allocates nothing and reset restarts it.
type gramIter struct {
	norm []uint16
	size int
	off  int
}

// newGramIter returns an iterator over the len(norm)-size+1 grams of norm.
// Size must be in [1, segmentCapacity] and no larger than the buffer; a
// violation is a bug in the calling code, not bad user input, so it panics.
func newGramIter(norm []uint16, size int) gramIter {
	if size < 1 || size > segmentCapacity || size > len(norm) {
		panic(fmt.Sprintf("fuzzyindex: gram size %d out of range for buffer length %d", size, len(norm)))
	}
	return gramIter{norm: norm, size: size}
}

// next returns the gram at the current offset and advances, or false when
// the final offset has been passed.
func (it *gramIter) next() (segment, bool) {
	if it.off > len(it.norm)-it.size {
		return segment{}, false
	}
	seg := packSegment(it.norm[it.off : it.off+it.size])
	it.off++
	return seg, true
}

// reset rewinds the iterator to the first gram.
func (it *gramIter) reset() {
	it.off = 0
}
