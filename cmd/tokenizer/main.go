// Command tokenizer is the auxiliary CLI for inspecting the
// tokenizer/stemmer pipeline in isolation from indexing or search: each
// input line is tokenized and stemmed, emitting one token per output
// line, followed by a sentinel marking the end of that input line.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/Adithya-Monish-Kumar-K/lexidex/internal/tokenizer"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for scanner.Scan() {
		for _, tok := range tokenizer.Tokenize(scanner.Text()) {
			fmt.Fprintln(w, tok)
		}
		fmt.Fprintln(w, "__END_DOC__")
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "tokenizer: %v\n", err)
		os.Exit(1)
	}
}
