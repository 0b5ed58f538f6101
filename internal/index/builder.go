// Package index implements the in-memory positional inverted index built
// while consuming a document stream, before it is handed to internal/store
// for serialization.
package index

// Doc is one entry in the docs table: a url/title pair at a dense doc_id.
type Doc struct {
	URL   string
	Title string
}

// DocEntry is one (doc_id, positions) entry within a term's posting list,
// built incrementally as tokens are appended.
type DocEntry struct {
	DocID     int
	Positions []int
}

// Term is the accumulating posting list for one stemmed term: a doc-ordered
// sequence of DocEntry, strictly ascending by DocID.
type Term struct {
	Postings []DocEntry
}

// Builder accumulates documents and their token positions into an in-memory
// index. It is single-threaded: callers must not call AddDocument
// concurrently. There is no spill-to-disk path; the full index is held in
// memory until the caller passes Docs and Terms to the writer.
type Builder struct {
	docs  []Doc
	terms map[string]*Term
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{terms: make(map[string]*Term)}
}

// AddDocument assigns the next doc_id to (url, title) and records one
// position per entry of tokens against that doc_id. tokens must already be
// the stemmed token sequence of the document's text, in scan order — the
// resulting positions are therefore strictly ascending within the document.
func (b *Builder) AddDocument(url, title string, tokens []string) int {
	docID := len(b.docs)
	b.docs = append(b.docs, Doc{URL: url, Title: title})

	for pos, tok := range tokens {
		if tok == "" {
			continue
		}
		term := b.terms[tok]
		if term == nil {
			term = &Term{}
			b.terms[tok] = term
		}
		n := len(term.Postings)
		if n == 0 || term.Postings[n-1].DocID != docID {
			term.Postings = append(term.Postings, DocEntry{DocID: docID})
			n++
		}
		term.Postings[n-1].Positions = append(term.Postings[n-1].Positions, pos)
	}
	return docID
}

// DocCount returns the number of documents appended so far.
func (b *Builder) DocCount() int {
	return len(b.docs)
}

// Docs returns the accumulated docs table, in doc_id order.
func (b *Builder) Docs() []Doc {
	return b.docs
}

// Terms returns the accumulated term map. Iteration order over the returned
// map is unspecified, matching the on-disk dictionary's unsorted layout.
func (b *Builder) Terms() map[string]*Term {
	return b.terms
}
