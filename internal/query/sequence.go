package query

import (
	"github.com/Adithya-Monish-Kumar-K/lexidex/internal/postings"
)

// PositionsLookup resolves a stemmed term to its (doc_id, positions)
// posting list.
type PositionsLookup func(term string) []postings.DocPosting

// Sequence evaluates a positional sequence query (spec.md §4.6.2): terms
// occurring in order, within window w, optionally in exact adjacency when
// w == len(terms). docIDsOf and positionsOf both resolve terms against the
// same loaded index. Returns the sorted subset of matching doc_ids.
func Sequence(terms []string, w int, docIDsOf Lookup, positionsOf PositionsLookup) []uint32 {
	k := len(terms)
	if k == 0 || w < k {
		return nil
	}

	lists := make([][]uint32, k)
	for i, t := range terms {
		lists[i] = docIDsOf(t)
	}
	candidates := postings.IntersectAll(lists)
	if len(candidates) == 0 {
		return nil
	}

	termPostings := make([]map[uint32][]uint32, k)
	for i, t := range terms {
		m := make(map[uint32][]uint32)
		for _, dp := range positionsOf(t) {
			m[dp.DocID] = dp.Positions
		}
		termPostings[i] = m
	}

	exact := w == k
	var result []uint32
	for _, doc := range candidates {
		posLists := make([][]uint32, k)
		ok := true
		for i := 0; i < k; i++ {
			pl, found := termPostings[i][doc]
			if !found {
				ok = false
				break
			}
			posLists[i] = pl
		}
		if ok && findPath(posLists, 0, 0, 0, w, exact) {
			result = append(result, doc)
		}
	}
	return result
}

// findPath backtracks over posLists[idx:], requiring strictly ascending
// positions, a total span from the first chosen position of at most w, and
// (when exact) consecutive positions. Grounded directly on find_path in
// original_source/src/search.cpp.
func findPath(posLists [][]uint32, idx int, prevPos, firstPos int, w int, exact bool) bool {
	if idx == len(posLists) {
		return true
	}
	for _, pos := range posLists[idx] {
		p := int(pos)
		if idx == 0 {
			if findPath(posLists, idx+1, p, p, w, exact) {
				return true
			}
			continue
		}
		if p <= prevPos {
			continue
		}
		if exact && p != prevPos+1 {
			continue
		}
		if p-firstPos > w {
			continue
		}
		if findPath(posLists, idx+1, p, firstPos, w, exact) {
			return true
		}
	}
	return false
}
