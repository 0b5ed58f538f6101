// Command searcher loads a previously built index and serves the query
// REPL described in spec.md §6: boolean queries and tilde-prefixed
// positional sequence queries, one per input line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Adithya-Monish-Kumar-K/lexidex/internal/postings"
	"github.com/Adithya-Monish-Kumar-K/lexidex/internal/query"
	"github.com/Adithya-Monish-Kumar-K/lexidex/internal/store"
	"github.com/Adithya-Monish-Kumar-K/lexidex/internal/tokenizer"
	"github.com/Adithya-Monish-Kumar-K/lexidex/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/lexidex/pkg/logger"
)

func main() {
	indexDir := flag.String("index", "", "index directory to load (required)")
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if *indexDir == "" {
		fmt.Fprintln(os.Stderr, "searcher: -index is required")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "searcher: failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.WithComponent("searcher")

	log.Info("loading index", "dir", *indexDir)
	idx, err := store.Load(*indexDir)
	if err != nil {
		log.Error("failed to load index", "error", err)
		os.Exit(1)
	}
	log.Info("index loaded", "docs", len(idx.Docs), "terms", len(idx.Dict))

	eng := newEngine(idx)

	fmt.Println("Ready")
	log.Info("ready for queries")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "exit" {
			break
		}
		if line == "" {
			continue
		}
		results := eng.evaluate(line, cfg.Search.DefaultWindow)
		printResults(results, idx, cfg.Search.MaxResults)
	}
	log.Info("searcher stopped")
}

// engine wires the loaded index's dictionary and postings blob into the
// lookup closures the query package evaluates against.
type engine struct {
	idx *store.Index
}

func newEngine(idx *store.Index) *engine {
	return &engine{idx: idx}
}

func (e *engine) docIDs(term string) []uint32 {
	entry, ok := e.idx.Dict[term]
	if !ok {
		return nil
	}
	ids, err := postings.DocIDs(e.idx.Postings, entry.PostingOffset, entry.DocFreq)
	if err != nil {
		fmt.Fprintf(os.Stderr, "searcher: decoding postings for %q: %v\n", term, err)
		os.Exit(1)
	}
	return ids
}

func (e *engine) positions(term string) []postings.DocPosting {
	entry, ok := e.idx.Dict[term]
	if !ok {
		return nil
	}
	dp, err := postings.DocPositions(e.idx.Postings, entry.PostingOffset, entry.DocFreq)
	if err != nil {
		fmt.Fprintf(os.Stderr, "searcher: decoding postings for %q: %v\n", term, err)
		os.Exit(1)
	}
	return dp
}

// evaluate routes a query REPL line to the sequence matcher when it begins
// with '~', otherwise to the boolean parser (spec.md §6a).
func (e *engine) evaluate(line string, defaultWindow int) []uint32 {
	if strings.HasPrefix(line, "~") {
		return e.evaluateSequence(line, defaultWindow)
	}
	eval := query.NewBoolEvaluator(e.docIDs, len(e.idx.Docs))
	return eval.Eval(line)
}

func (e *engine) evaluateSequence(line string, defaultWindow int) []uint32 {
	fields := strings.Fields(strings.TrimPrefix(line, "~"))
	if len(fields) == 0 {
		return nil
	}
	window := defaultWindow
	if w, err := strconv.Atoi(fields[0]); err == nil {
		window = w
		fields = fields[1:]
	}
	terms := make([]string, len(fields))
	for i, f := range fields {
		terms[i] = tokenizer.Stem(strings.ToLower(f))
	}
	return query.Sequence(terms, window, e.docIDs, e.positions)
}

func printResults(ids []uint32, idx *store.Index, maxResults int) {
	fmt.Printf("Found %d docs.\n", len(ids))
	n := len(ids)
	if n > maxResults {
		n = maxResults
	}
	for i := 0; i < n; i++ {
		doc := idx.Docs[ids[i]]
		fmt.Printf("%s (%s)\n", doc.Title, doc.URL)
	}
	fmt.Println("__END_QUERY__")
}
