// Package benchmark contains Go benchmarks for the tokenizer, index
// builder, on-disk store, and query engine, measuring throughput and
// allocation behaviour.
package benchmark

import (
	"fmt"
	"testing"

	"github.com/Adithya-Monish-Kumar-K/lexidex/internal/index"
	"github.com/Adithya-Monish-Kumar-K/lexidex/internal/store"
	"github.com/Adithya-Monish-Kumar-K/lexidex/internal/tokenizer"
)

// BenchmarkBuilderAddDocument measures per-document insert throughput into
// the in-memory index builder.
func BenchmarkBuilderAddDocument(b *testing.B) {
	bld := index.NewBuilder()
	tokens := tokenizer.Tokenize("this is a benchmark document with several terms for testing the indexing performance of the builder")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		url := fmt.Sprintf("http://example.com/doc-%d", i)
		bld.AddDocument(url, "benchmark title", tokens)
	}
}

// BenchmarkStoreWrite measures the cost of serializing a built index to its
// three on-disk files at various corpus sizes.
func BenchmarkStoreWrite(b *testing.B) {
	sizes := []int{100, 1000, 5000}
	for _, n := range sizes {
		b.Run(fmt.Sprintf("docs_%d", n), func(b *testing.B) {
			bld := index.NewBuilder()
			tokens := tokenizer.Tokenize("search engine with inverted indexing and positional query processing")
			for i := 0; i < n; i++ {
				bld.AddDocument(fmt.Sprintf("http://example.com/%d", i), "preload doc", tokens)
			}
			docs, terms := bld.Docs(), bld.Terms()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := store.Write(b.TempDir(), docs, terms); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkStoreLoad measures the cost of loading a written index back into
// memory, the dominant per-startup cost of the searcher CLI.
func BenchmarkStoreLoad(b *testing.B) {
	dir := b.TempDir()
	bld := index.NewBuilder()
	terms := []string{"distributed", "search", "index", "query", "engine", "ranking", "posting", "sequence"}
	for i := 0; i < 10000; i++ {
		text := fmt.Sprintf("%s %s %s", terms[i%len(terms)], terms[(i+1)%len(terms)], terms[(i+3)%len(terms)])
		bld.AddDocument(fmt.Sprintf("http://example.com/%d", i), "doc", tokenizer.Tokenize(text))
	}
	if err := store.Write(dir, bld.Docs(), bld.Terms()); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx, err := store.Load(dir)
		if err != nil {
			b.Fatal(err)
		}
		_ = idx
	}
}
