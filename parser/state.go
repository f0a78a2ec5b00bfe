package parser

import "github.com/dhamidi/corona/lexer"

// checkpoint is the complete observable cursor state. Restoring a
// checkpoint is the only way the cursor moves backwards.
type checkpoint struct {
	cursor int
	row    int
	column int
}

func (p *Parser) checkpoint() checkpoint {
	return checkpoint{cursor: p.cursor, row: p.row, column: p.column}
}

func (p *Parser) restore(c checkpoint) {
	p.cursor, p.row, p.column = c.cursor, c.row, c.column
}

// peek returns the token after the cursor without consuming it.
func (p *Parser) peek() (lexer.Token, bool) {
	if p.cursor+1 >= len(p.tokens) {
		return lexer.Token{Kind: lexer.TokenEOF}, false
	}
	return p.tokens[p.cursor+1], true
}

// previous returns the token under the cursor, the last one consumed.
func (p *Parser) previous() (lexer.Token, bool) {
	if p.cursor < 0 || p.cursor >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.cursor], true
}

func (p *Parser) atEnd() bool {
	return p.cursor+1 >= len(p.tokens)
}

// advance consumes the next token if there is one.
func (p *Parser) advance() (int, lexer.Token, bool) {
	tok, ok := p.peek()
	if !ok {
		return -1, tok, false
	}
	p.cursor++
	p.row, p.column = tok.Row, tok.Column
	if p.cursor > p.farthest {
		p.farthest = p.cursor
	}
	return p.cursor, tok, true
}

// matchLiteral consumes the next token if it is the operator or keyword
// spelled text.
func (p *Parser) matchLiteral(text string) (int, bool) {
	if !p.atLiteral(text) {
		return -1, false
	}
	i, _, _ := p.advance()
	return i, true
}

func (p *Parser) atLiteral(text string) bool {
	tok, ok := p.peek()
	if !ok || tok.Data != text {
		return false
	}
	return tok.Kind == lexer.TokenOperator || tok.Kind == lexer.TokenKeyword
}

// consume takes the next token if its kind is one of kinds.
func (p *Parser) consume(kinds ...lexer.TokenKind) (int, bool) {
	tok, ok := p.peek()
	if !ok {
		return -1, false
	}
	for _, kind := range kinds {
		if tok.Kind == kind {
			i, _, _ := p.advance()
			return i, true
		}
	}
	return -1, false
}

// many runs step until it fails, rewinding only the failed attempt. It
// stops early when a step succeeds without consuming anything. It returns
// the number of successful steps.
func (p *Parser) many(step func() bool) int {
	n := 0
	for {
		c := p.checkpoint()
		if p.err != nil || !step() {
			p.restore(c)
			return n
		}
		n++
		if p.cursor == c.cursor {
			return n
		}
	}
}

// optional runs step once and rewinds it if it fails.
func (p *Parser) optional(step func() bool) bool {
	c := p.checkpoint()
	if p.err != nil || !step() {
		p.restore(c)
		return false
	}
	return true
}

// sequence parses item (',' item)* ','? and reports whether a trailing
// comma was consumed. It fails if the first item does not match.
func (p *Parser) sequence(item func() bool) (count int, trailing bool) {
	if !p.optional(item) {
		return 0, false
	}
	count = 1 + p.many(func() bool {
		if _, ok := p.matchLiteral(","); !ok {
			return false
		}
		return item()
	})
	_, trailing = p.matchLiteral(",")
	return count, trailing
}
