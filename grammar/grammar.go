// Package grammar holds the EBNF description of Corona and checks it, and
// token streams, against golang.org/x/exp/ebnf.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"reflect"
	"sort"

	"golang.org/x/exp/ebnf"
)

//go:embed corona.ebnf
var source []byte

const (
	Filename = "corona.ebnf"
	Start    = "Program"
)

// Source returns the embedded grammar text.
func Source() []byte {
	return bytes.Clone(source)
}

// Load parses the embedded grammar.
func Load() (ebnf.Grammar, error) {
	return Parse(Filename, bytes.NewReader(source))
}

func Parse(filename string, r io.Reader) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// Check parses a grammar and, when start is not empty, verifies that every
// production is defined and reachable from start.
func Check(filename string, r io.Reader, start string) (ebnf.Grammar, error) {
	g, err := Parse(filename, r)
	if err != nil {
		return nil, err
	}
	if start == "" {
		return g, nil
	}
	if err := ebnf.Verify(g, start); err != nil {
		return g, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}

// Errors splits the error lists produced by the ebnf package into their
// individual errors.
func Errors(err error) []error {
	for u := err; u != nil; {
		v := reflect.ValueOf(u)
		if v.Kind() == reflect.Slice {
			errs := make([]error, 0, v.Len())
			for i := 0; i < v.Len(); i++ {
				if e, ok := v.Index(i).Interface().(error); ok {
					errs = append(errs, e)
				}
			}
			return errs
		}
		next, ok := u.(interface{ Unwrap() error })
		if !ok {
			break
		}
		u = next.Unwrap()
	}
	if err == nil {
		return nil
	}
	return []error{err}
}

// Terminals returns the literal tokens used by the syntactic productions of
// g, sorted.
func Terminals(g ebnf.Grammar) []string {
	seen := map[string]bool{}
	for name, prod := range g {
		if isLexical(name) {
			continue
		}
		collectTokens(prod.Expr, seen)
	}
	tokens := make([]string, 0, len(seen))
	for tok := range seen {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	return tokens
}

func collectTokens(expr ebnf.Expression, seen map[string]bool) {
	switch e := expr.(type) {
	case *ebnf.Token:
		seen[e.String] = true
	case ebnf.Alternative:
		for _, x := range e {
			collectTokens(x, seen)
		}
	case ebnf.Sequence:
		for _, x := range e {
			collectTokens(x, seen)
		}
	case *ebnf.Group:
		collectTokens(e.Body, seen)
	case *ebnf.Option:
		collectTokens(e.Body, seen)
	case *ebnf.Repetition:
		collectTokens(e.Body, seen)
	}
}

func isLexical(name string) bool {
	return name != "" && name[0] >= 'a' && name[0] <= 'z'
}
