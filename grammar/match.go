package grammar

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dhamidi/corona/lexer"
	"golang.org/x/exp/ebnf"
)

type memoKey struct {
	name   string
	offset int
}

// Matcher matches text against the lexical productions of a grammar.
// Alternatives take the longest match and repetitions are greedy, which is
// how the lexer scans as well.
type Matcher struct {
	grammar  ebnf.Grammar
	input    string
	memo     map[memoKey]int
	visiting map[memoKey]bool
}

func NewMatcher(g ebnf.Grammar) *Matcher {
	return &Matcher{grammar: g}
}

// Match reports whether all of text is derived by the named production.
func (m *Matcher) Match(name, text string) bool {
	return m.Longest(name, text) == len(text)
}

// Longest returns the length in bytes of the longest prefix of text
// derived by the named production, or -1 when none is.
func (m *Matcher) Longest(name, text string) int {
	m.input = text
	m.memo = make(map[memoKey]int)
	m.visiting = make(map[memoKey]bool)
	return m.matchName(name, 0)
}

// match returns the length of the match of expr at offset, or -1.
func (m *Matcher) match(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case nil:
		return 0

	case *ebnf.Token:
		if strings.HasPrefix(m.input[offset:], e.String) {
			return len(e.String)
		}
		return -1

	case *ebnf.Range:
		return m.matchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		pos := offset
		for _, item := range e {
			n := m.match(item, pos)
			if n < 0 {
				return -1
			}
			pos += n
		}
		return pos - offset

	case ebnf.Alternative:
		best := -1
		for _, alt := range e {
			if n := m.match(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		pos := offset
		for {
			n := m.match(e.Body, pos)
			if n <= 0 {
				break
			}
			pos += n
		}
		return pos - offset

	case *ebnf.Option:
		return max(m.match(e.Body, offset), 0)

	case *ebnf.Group:
		return m.match(e.Body, offset)

	case *ebnf.Name:
		return m.matchName(e.String, offset)
	}
	return -1
}

func (m *Matcher) matchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}
	if n, ok := m.memo[key]; ok {
		return n
	}
	// left recursion
	if m.visiting[key] {
		return -1
	}
	prod, ok := m.grammar[name]
	if !ok {
		m.memo[key] = -1
		return -1
	}

	m.visiting[key] = true
	n := m.match(prod.Expr, offset)
	delete(m.visiting, key)

	m.memo[key] = n
	return n
}

func (m *Matcher) matchRange(begin, end string, offset int) int {
	r, size := utf8.DecodeRuneInString(m.input[offset:])
	if size == 0 {
		return -1
	}
	lo, _ := utf8.DecodeRuneInString(begin)
	hi, _ := utf8.DecodeRuneInString(end)
	if r >= lo && r <= hi {
		return size
	}
	return -1
}

// lexicalProductions maps token kinds to the production spelling them.
var lexicalProductions = map[lexer.TokenKind]string{
	lexer.TokenIdentifier:     "identifier",
	lexer.TokenDecInteger:     "decimal_integer",
	lexer.TokenHexInteger:     "hex_integer",
	lexer.TokenBinInteger:     "bin_integer",
	lexer.TokenOctInteger:     "oct_integer",
	lexer.TokenDecFloat:       "float",
	lexer.TokenDecIntegerImag: "decimal_imaginary",
	lexer.TokenDecFloatImag:   "decimal_imaginary",
	lexer.TokenString:         "string",
	lexer.TokenByteString:     "string",
	lexer.TokenPrefixedString: "string",
	lexer.TokenNewline:        "newline",
}

// TokenError describes a token the grammar does not derive.
type TokenError struct {
	Token  lexer.Token
	Reason string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("(line: %d, col: %d) %s %q: %s", e.Token.Row, e.Token.Column, e.Token.Kind, e.Token.Data, e.Reason)
}

// CheckTokens verifies every token against g: keywords and operators must
// be terminals of the syntactic productions, and the remaining kinds must
// be derived by their lexical production. Synthesized tokens without text
// are skipped.
func CheckTokens(g ebnf.Grammar, tokens []lexer.Token) []error {
	terminals := map[string]bool{}
	for _, t := range Terminals(g) {
		terminals[t] = true
	}
	m := NewMatcher(g)

	var errs []error
	for _, tok := range tokens {
		switch tok.Kind {
		case lexer.TokenKeyword, lexer.TokenOperator:
			if !terminals[tok.Data] {
				errs = append(errs, &TokenError{Token: tok, Reason: "not a terminal of the grammar"})
			}
			continue
		}
		name, ok := lexicalProductions[tok.Kind]
		if !ok || tok.Data == "" {
			continue
		}
		if !m.Match(name, tok.Data) {
			errs = append(errs, &TokenError{Token: tok, Reason: "does not match " + name})
		}
	}
	return errs
}
