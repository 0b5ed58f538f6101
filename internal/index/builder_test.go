package index

import "testing"

func TestAddDocumentAssignsDenseDocIDs(t *testing.T) {
	b := NewBuilder()
	if id := b.AddDocument("u1", "t1", []string{"cat"}); id != 0 {
		t.Fatalf("first doc_id = %d, want 0", id)
	}
	if id := b.AddDocument("u2", "t2", []string{"dog"}); id != 1 {
		t.Fatalf("second doc_id = %d, want 1", id)
	}
	if b.DocCount() != 2 {
		t.Fatalf("DocCount = %d, want 2", b.DocCount())
	}
}

func TestAddDocumentAppendsPositionsToMostRecentEntry(t *testing.T) {
	b := NewBuilder()
	b.AddDocument("u1", "t1", []string{"cat", "dog", "cat"})
	term := b.Terms()["cat"]
	if term == nil {
		t.Fatal("term \"cat\" missing")
	}
	if len(term.Postings) != 1 {
		t.Fatalf("postings = %v, want a single doc entry", term.Postings)
	}
	if got := term.Postings[0].Positions; len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("positions = %v, want [0 2]", got)
	}
}

func TestAddDocumentKeepsDocIDsAscendingPerTerm(t *testing.T) {
	b := NewBuilder()
	b.AddDocument("u1", "t1", []string{"cat"})
	b.AddDocument("u2", "t2", []string{"dog"})
	b.AddDocument("u3", "t3", []string{"cat"})

	term := b.Terms()["cat"]
	if len(term.Postings) != 2 {
		t.Fatalf("postings = %v, want 2 doc entries", term.Postings)
	}
	if term.Postings[0].DocID != 0 || term.Postings[1].DocID != 2 {
		t.Fatalf("doc_ids = [%d %d], want [0 2]", term.Postings[0].DocID, term.Postings[1].DocID)
	}
}

func TestAddDocumentSkipsEmptyTokens(t *testing.T) {
	b := NewBuilder()
	b.AddDocument("u1", "t1", []string{"cat", "", "dog"})
	if _, ok := b.Terms()[""]; ok {
		t.Fatal("empty token should not be indexed")
	}
}

func TestDocsTablePreservesInsertionOrder(t *testing.T) {
	b := NewBuilder()
	b.AddDocument("u1", "t1", nil)
	b.AddDocument("u2", "t2", nil)
	docs := b.Docs()
	if docs[0].URL != "u1" || docs[1].URL != "u2" {
		t.Fatalf("docs = %v, want insertion order", docs)
	}
}
