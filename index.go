// Package fuzzyindex provides an in-memory fuzzy string-matching index:
// strings tagged with metadata go in, and queries return every entry whose
// stored string is approximately similar to the query, ranked by similarity.
//
// Lookup is driven by inverted n-gram tables over a normalized form of each
// string (lowercased, compatibility-decomposed, letters and digits only),
// with exact Levenshtein scoring of the candidates those tables surface.
//
// The index is single-writer: finish all inserts before querying from other
// goroutines, or wrap calls in your own lock.
package fuzzyindex

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	// ErrInvalidArgument reports bad construction parameters or an empty
	// insert value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrValueConflict reports an insert whose value is already indexed
	// with different metadata. One string is one identity; conflicting
	// data for it is caller misuse, not an expected outcome.
	ErrValueConflict = errors.New("value already indexed with different metadata")
)

// maxResults caps how many matches a single query keeps; scanning stops the
// moment the cap is reached.
const maxResults = 32

// DefaultMinScore is the similarity threshold Query applies.
const DefaultMinScore = 0.33

// Match is one query result.
type Match[M comparable] struct {
	Score float64 // in [0,1]; exact hits score 1.0
	Meta  M
}

// Index is a fuzzy string-matching index over metadata values of type M.
// Metadata must be comparable so that re-inserting a string can distinguish
// the harmless duplicate from a conflicting one.
type Index[M comparable] struct {
	cfg config

	// exact maps the normalized identity of each stored string to its
	// metadata; it answers exact-match queries and duplicate detection
	// under the same case- and format-insensitive identity rule the gram
	// tables are built on.
	exact map[string]M

	// Parallel per-entry arrays, indexed by insertion order.
	values     []M
	normalized [][]uint16

	// grams holds one inverted index per gram size in
	// [cfg.gramLow, cfg.gramHigh]: segment -> posting list of entry
	// indices.
	grams map[int]map[segment][]int32
}

// New returns an empty index. Options that leave the configuration invalid
// make New fail with an ErrInvalidArgument-wrapped error.
func New[M comparable](opts ...Option) (*Index[M], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ix := &Index[M]{
		cfg:   cfg,
		exact: make(map[string]M),
		grams: make(map[int]map[segment][]int32, cfg.gramHigh-cfg.gramLow+1),
	}
	for g := cfg.gramLow; g <= cfg.gramHigh; g++ {
		ix.grams[g] = make(map[segment][]int32)
	}
	return ix, nil
}

// Insert adds value with its metadata and reports whether a new entry was
// created. Inserting a value whose normalized identity is already present
// is a no-op returning (false, nil) when the metadata is equal, and a
// (false, ErrValueConflict-wrapped) failure when it differs; the conflict
// leaves the index untouched.
func (ix *Index[M]) Insert(value string, meta M) (bool, error) {
	if value == "" {
		return false, fmt.Errorf("%w: empty value", ErrInvalidArgument)
	}

	ctx := contextPool.Get().(*queryContext)
	defer func() {
		ctx.reset()
		contextPool.Put(ctx)
	}()

	ctx.norm = appendNormalized(ctx.norm[:0], value, ix.cfg.lang)
	key := normalizedKey(ctx.norm)
	if existing, ok := ix.exact[key]; ok {
		if existing == meta {
			return false, nil
		}
		return false, fmt.Errorf("%w: %q", ErrValueConflict, value)
	}

	// Postings record the pre-insertion entry count: insertion order alone
	// determines index assignment, so the entry is appended strictly after
	// its grams.
	index := int32(len(ix.values))
	normLen := len(ctx.norm)
	if normLen > ix.cfg.gramLow {
		for g := ix.cfg.gramLow; g <= min(ix.cfg.gramHigh, normLen); g++ {
			table := ix.grams[g]
			it := newGramIter(ctx.norm, g)
			for seg, ok := it.next(); ok; seg, ok = it.next() {
				table[seg] = append(table[seg], index)
			}
		}
	}

	owned := make([]uint16, normLen)
	copy(owned, ctx.norm)
	ix.normalized = append(ix.normalized, owned)
	ix.values = append(ix.values, meta)
	ix.exact[key] = meta
	return true, nil
}

// Query returns the entries similar to value at DefaultMinScore, best first.
func (ix *Index[M]) Query(value string) []Match[M] {
	return ix.QueryScored(value, DefaultMinScore)
}

// QueryScored returns every entry scoring at least minScore against value,
// sorted by descending score (ties keep visit order). An exact hit under
// the index's normalization returns that single entry with score 1.0 and no
// fuzzy scan.
//
// Candidates come from the inverted tables, walked from the largest gram
// size down; the first size that yields any match wins and smaller sizes
// are not consulted. A weak match at a large gram size can therefore shadow
// a better match that only a smaller size would surface; that recall
// trade-off buys the skipped scans. At most 32 results are returned. A miss
// is the empty result, never an error.
func (ix *Index[M]) QueryScored(value string, minScore float64) []Match[M] {
	if value == "" {
		return nil
	}

	ctx := contextPool.Get().(*queryContext)
	defer func() {
		ctx.reset()
		contextPool.Put(ctx)
	}()

	ctx.norm = appendNormalized(ctx.norm[:0], value, ix.cfg.lang)
	if meta, ok := ix.exact[normalizedKey(ctx.norm)]; ok {
		return []Match[M]{{Score: 1, Meta: meta}}
	}

	normLen := len(ctx.norm)
	if normLen <= ix.cfg.gramLow {
		// Too short to gram-match; only the exact table could have
		// answered.
		return nil
	}

	for g := min(ix.cfg.gramHigh, normLen); g >= ix.cfg.gramLow; g-- {
		table := ix.grams[g]
		it := newGramIter(ctx.norm, g)
	scan:
		for seg, ok := it.next(); ok; seg, ok = it.next() {
			for _, cand := range table[seg] {
				if _, dup := ctx.seen[cand]; dup {
					continue
				}
				ctx.seen[cand] = struct{}{}
				if int(cand) >= len(ix.normalized) {
					panic(fmt.Sprintf("fuzzyindex: posting index %d out of range for %d entries", cand, len(ix.normalized)))
				}
				score, pass := similarity(ix.normalized[cand], ctx.norm, minScore, &ctx.rows)
				if !pass {
					continue
				}
				ctx.kept = append(ctx.kept, keptMatch{score: score, index: cand})
				if len(ctx.kept) >= maxResults {
					break scan
				}
			}
		}
		if len(ctx.kept) > 0 {
			break
		}
	}

	if len(ctx.kept) == 0 {
		return nil
	}
	sort.SliceStable(ctx.kept, func(i, j int) bool {
		return ctx.kept[i].score > ctx.kept[j].score
	})
	out := make([]Match[M], len(ctx.kept))
	for i, k := range ctx.kept {
		out[i] = Match[M]{Score: k.score, Meta: ix.values[k.index]}
	}
	return out
}

// Count returns the number of distinct entries.
func (ix *Index[M]) Count() int {
	return len(ix.values)
}

// Values returns a copy of all stored metadata in insertion order.
func (ix *Index[M]) Values() []M {
	return slices.Clone(ix.values)
}

// Compact shrinks over-allocated internal storage. Query results are
// unaffected; this is purely a memory-footprint hook for callers that are
// done inserting.
func (ix *Index[M]) Compact() {
	ix.values = slices.Clip(ix.values)
	ix.normalized = slices.Clip(ix.normalized)
	for _, table := range ix.grams {
		for seg, list := range table {
			table[seg] = slices.Clip(list)
		}
	}
}
