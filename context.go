package fuzzyindex

import "sync"

// queryContext bundles every piece of per-call scratch state so that inserts
// and queries allocate nothing beyond what the call must hand back to the
// caller. Instances live in contextPool and are reset before being returned
// to it on every exit path.
type queryContext struct {
	norm []uint16    // normalized form of the current input
	rows dpRows      // rolling rows for the similarity scorer
	seen map[int32]struct{}
	kept []keptMatch // candidates that passed the score threshold
}

// keptMatch records a passing candidate by entry index; the metadata is
// resolved only after sorting, so the context stays free of type parameters
// and one pool serves every Index instantiation.
type keptMatch struct {
	score float64
	index int32
}

var contextPool = sync.Pool{
	New: func() any {
		return &queryContext{
			norm: make([]uint16, 0, 64),
			seen: make(map[int32]struct{}, maxResults),
			kept: make([]keptMatch, 0, maxResults),
		}
	},
}

// reset clears the context for reuse without releasing its storage.
func (ctx *queryContext) reset() {
	ctx.norm = ctx.norm[:0]
	ctx.kept = ctx.kept[:0]
	clear(ctx.seen)
}
