// Command indexer reads a tab-separated document stream from standard
// input and writes a three-file binary index to the output directory.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Adithya-Monish-Kumar-K/lexidex/internal/index"
	"github.com/Adithya-Monish-Kumar-K/lexidex/internal/store"
	"github.com/Adithya-Monish-Kumar-K/lexidex/internal/tokenizer"
	"github.com/Adithya-Monish-Kumar-K/lexidex/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/lexidex/pkg/logger"
)

func main() {
	out := flag.String("out", "", "output directory for the index files (required)")
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if *out == "" {
		fmt.Fprintln(os.Stderr, "indexer: -out is required")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "indexer: failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.WithComponent("indexer")

	b := index.NewBuilder()
	skipped := 0

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		url, title, text, ok := splitDocLine(line)
		if !ok {
			skipped++
			log.Debug("skipping malformed document line")
			continue
		}
		tokens := tokenizer.Tokenize(text)
		docID := b.AddDocument(url, title, tokens)
		if (docID+1)%100 == 0 {
			log.Info("indexing progress", "docs", docID+1)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error("reading document stream", "error", err)
		os.Exit(1)
	}

	if err := store.Write(*out, b.Docs(), b.Terms()); err != nil {
		log.Error("writing index", "error", err)
		os.Exit(1)
	}

	log.Info("indexing complete",
		"docs", b.DocCount(),
		"terms", len(b.Terms()),
		"skipped", skipped,
	)
}

// splitDocLine parses a line of the form "url\ttitle\ttext". Lines with
// fewer than two tabs are malformed and skipped.
func splitDocLine(line string) (url, title, text string, ok bool) {
	first := strings.IndexByte(line, '\t')
	if first < 0 {
		return "", "", "", false
	}
	rest := line[first+1:]
	second := strings.IndexByte(rest, '\t')
	if second < 0 {
		return "", "", "", false
	}
	return line[:first], rest[:second], rest[second+1:], true
}
