package parser

import (
	"fmt"

	"github.com/dhamidi/corona/lexer"
)

// SyntaxError is a positioned parse failure. A rule that merely does not
// apply at a position reports false instead.
type SyntaxError struct {
	Message string
	Row     int
	Column  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("(line: %d, col: %d) %s", e.Row, e.Column, e.Message)
}

// positionOf returns the position of token i, or the position just past the
// last token when i is out of range.
func (p *Parser) positionOf(i int) (row, column int) {
	if i >= 0 && i < len(p.tokens) {
		return p.tokens[i].Row, p.tokens[i].Column
	}
	if len(p.tokens) == 0 {
		return 1, 1
	}
	last := p.tokens[len(p.tokens)-1]
	return last.Row, last.Column + len(last.Data)
}

func describe(tok lexer.Token, ok bool) string {
	if !ok {
		return "end of input"
	}
	switch tok.Kind {
	case lexer.TokenNewline:
		return "end of line"
	case lexer.TokenIndent:
		return "indent"
	case lexer.TokenDedent:
		return "dedent"
	}
	return fmt.Sprintf("'%s'", tok.Data)
}

// raise records err unless an error is already pending. The first error
// wins; everything after it is unwinding.
func (p *Parser) raise(message string) {
	if p.err != nil {
		return
	}
	row, column := p.positionOf(p.cursor + 1)
	p.err = &SyntaxError{Message: message, Row: row, Column: column}
	p.log.Debugf("syntax error at %d:%d: %s", row, column, message)
}

// errorf reports a failure past a commit point. In lenient mode it only
// returns false so that the enclosing rule backtracks.
func (p *Parser) errorf(format string, args ...any) bool {
	if !p.strict {
		return false
	}
	tok, ok := p.peek()
	p.raise(fmt.Sprintf(format, args...) + ", found " + describe(tok, ok))
	return false
}

// expect matches a literal that must follow a commit point.
func (p *Parser) expect(text, context string) (int, bool) {
	if i, ok := p.matchLiteral(text); ok {
		return i, true
	}
	if p.err == nil {
		p.errorf("expected '%s' %s", text, context)
	}
	return -1, false
}

// require turns the result of a sub-rule past a commit point into an
// error when it did not match.
func (p *Parser) require(ok bool, what string) bool {
	if ok {
		return true
	}
	if p.err == nil {
		p.errorf("expected %s", what)
	}
	return false
}

// invalidSyntax is the fallback when no statement applies: the error is
// placed at the first token no rule managed to consume.
func (p *Parser) invalidSyntax() *SyntaxError {
	row, column := p.positionOf(p.farthest + 1)
	return &SyntaxError{Message: "invalid syntax", Row: row, Column: column}
}
