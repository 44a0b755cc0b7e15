package fuzzyindex

// segmentCapacity is the maximum number of code units a segment can hold,
// and therefore the hard ceiling on gram size.
const segmentCapacity = 8

// segment packs up to 8 normalized UTF-16 code units into a 128-bit value
// with plain value equality, so it can key the inverted-index maps directly
// instead of a heap-allocated substring. Code unit i occupies 16-bit slot i;
// unused trailing slots are zero and decode as a terminator.
type segment struct {
	lo, hi uint64
}

// packSegment encodes units into a segment. Callers must not pass more than
// segmentCapacity units; the gram enumerator guarantees this.
func packSegment(units []uint16) segment {
	var s segment
	for i, u := range units {
		if i < 4 {
			s.lo |= uint64(u) << (16 * i)
		} else {
			s.hi |= uint64(u) << (16 * (i - 4))
		}
	}
	return s
}

// appendUnpacked appends the segment's code units to dst, stopping at the
// first zero slot.
func (s segment) appendUnpacked(dst []uint16) []uint16 {
	words := [2]uint64{s.lo, s.hi}
	for _, w := range words {
		for shift := 0; shift < 64; shift += 16 {
			u := uint16(w >> shift)
			if u == 0 {
				return dst
			}
			dst = append(dst, u)
		}
	}
	return dst
}
