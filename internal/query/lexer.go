package query

import "github.com/Adithya-Monish-Kumar-K/lexidex/internal/tokenizer"

type tokenKind int

const (
	tokWord tokenKind = iota
	tokAnd
	tokOr
	tokNot
	tokLParen
	tokRParen
	tokEnd
)

type lexToken struct {
	kind  tokenKind
	value string
}

// lex splits a boolean query line into lexTokens. Each WORD is a maximal
// run of ASCII alphanumerics, lowercased and stemmed via the same pipeline
// used at index time. Non-operator punctuation is silently skipped.
func lex(query string) []lexToken {
	var tokens []lexToken
	i := 0
	for i < len(query) {
		switch {
		case query[i] == ' ' || query[i] == '\t':
			i++
		case query[i] == '(':
			tokens = append(tokens, lexToken{kind: tokLParen})
			i++
		case query[i] == ')':
			tokens = append(tokens, lexToken{kind: tokRParen})
			i++
		case query[i] == '!':
			tokens = append(tokens, lexToken{kind: tokNot})
			i++
		case i+1 < len(query) && query[i] == '&' && query[i+1] == '&':
			tokens = append(tokens, lexToken{kind: tokAnd})
			i += 2
		case i+1 < len(query) && query[i] == '|' && query[i+1] == '|':
			tokens = append(tokens, lexToken{kind: tokOr})
			i += 2
		case isAlnum(query[i]):
			start := i
			for i < len(query) && isAlnum(query[i]) {
				i++
			}
			word := lowerASCII(query[start:i])
			tokens = append(tokens, lexToken{kind: tokWord, value: tokenizer.Stem(word)})
		default:
			i++
		}
	}
	tokens = append(tokens, lexToken{kind: tokEnd})
	return tokens
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}
