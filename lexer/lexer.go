package lexer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Error is a positioned tokenizer failure.
type Error struct {
	Message string
	Row     int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("(line: %d, col: %d) %s", e.Row, e.Column, e.Message)
}

// Lexer turns Corona source into tokens. Indentation is resolved into
// Newline, Indent and Dedent tokens; inside brackets line breaks and
// indentation are insignificant. Blank and comment-only lines produce no
// tokens.
type Lexer struct {
	input   []byte
	pos     int
	line    int
	column  int
	indents []int
	depth   int
	pending []Token

	atLineStart bool
	lineHasData bool
	done        bool
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{
		input:       input,
		line:        1,
		column:      1,
		indents:     []int{0},
		atLineStart: true,
	}
}

// Tokenize lexes the whole input. The returned slice does not contain the
// EOF token.
func Tokenize(input []byte) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return tokens, err
		}
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token, or a token of kind TokenEOF once the input
// is exhausted.
func (l *Lexer) Next() (Token, error) {
	for len(l.pending) == 0 {
		if l.done {
			return Token{Kind: TokenEOF, Row: l.line, Column: l.column}, nil
		}
		if err := l.scan(); err != nil {
			return Token{}, err
		}
	}
	tok := l.pending[0]
	l.pending = l.pending[1:]
	return tok, nil
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) errorf(line, column int, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Row: line, Column: column}
}

func (l *Lexer) emit(kind TokenKind, data string, line, column int) {
	l.pending = append(l.pending, Token{Kind: kind, Data: data, Row: line, Column: column})
}

func (l *Lexer) scan() error {
	if l.atLineStart && l.depth == 0 {
		return l.scanIndentation()
	}

	l.skipSpaces()

	if l.pos >= len(l.input) {
		return l.finish()
	}

	ch := l.peek()
	if ch == '\n' || ch == '\r' {
		line, column := l.line, l.column
		start := l.pos
		l.consumeLineBreak()
		if l.depth > 0 {
			return nil
		}
		if l.lineHasData {
			l.emit(TokenNewline, string(l.input[start:l.pos]), line, column)
			l.lineHasData = false
		}
		l.atLineStart = true
		return nil
	}

	l.lineHasData = true
	return l.scanToken()
}

// scanIndentation measures the indentation of a new logical line and emits
// Indent or Dedent tokens. Blank and comment-only lines are skipped whole.
func (l *Lexer) scanIndentation() error {
	start := l.pos
	width := 0
measure:
	for {
		switch l.peek() {
		case ' ':
			width++
		case '\t':
			width += 8 - width%8
		case '\f':
			width = 0
		default:
			break measure
		}
		l.advance()
	}

	switch l.peek() {
	case 0:
		l.atLineStart = false
		return nil
	case '#':
		for l.peek() != 0 && l.peek() != '\n' && l.peek() != '\r' {
			l.advance()
		}
		l.consumeLineBreak()
		return nil
	case '\n', '\r':
		l.consumeLineBreak()
		return nil
	}

	l.atLineStart = false
	top := l.indents[len(l.indents)-1]
	switch {
	case width > top:
		l.indents = append(l.indents, width)
		l.emit(TokenIndent, string(l.input[start:l.pos]), l.line, 1)
	case width < top:
		for width < l.indents[len(l.indents)-1] {
			l.indents = l.indents[:len(l.indents)-1]
			l.emit(TokenDedent, "", l.line, l.column)
		}
		if width != l.indents[len(l.indents)-1] {
			return l.errorf(l.line, l.column, "unindent does not match any outer indentation level")
		}
	}
	return nil
}

func (l *Lexer) finish() error {
	if l.depth > 0 {
		return l.errorf(l.line, l.column, "unexpected end of input inside brackets")
	}
	if l.lineHasData {
		l.emit(TokenNewline, "", l.line, l.column)
		l.lineHasData = false
	}
	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.emit(TokenDedent, "", l.line, l.column)
	}
	l.done = true
	return nil
}

func (l *Lexer) consumeLineBreak() {
	if l.peek() == '\r' {
		l.advance()
		if l.peek() == '\n' {
			l.advance()
		} else {
			// A lone carriage return still ends the line.
			l.line++
			l.column = 1
		}
		return
	}
	if l.peek() == '\n' {
		l.advance()
	}
}

func (l *Lexer) skipSpaces() {
	for {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\f':
			l.advance()
		case ch == '#':
			for l.peek() != 0 && l.peek() != '\n' && l.peek() != '\r' {
				l.advance()
			}
		case ch == '\\' && (l.peekN(1) == '\n' || l.peekN(1) == '\r'):
			l.advance()
			l.consumeLineBreak()
		case (ch == '\n' || ch == '\r') && l.depth > 0:
			l.consumeLineBreak()
		default:
			return
		}
	}
}

func (l *Lexer) scanToken() error {
	line, column := l.line, l.column
	start := l.pos

	r, size := utf8.DecodeRune(l.input[l.pos:])

	switch {
	case isLetter(r):
		return l.scanIdentOrString(start, line, column)
	case isDigit(l.peek()) || (l.peek() == '.' && isDigit(l.peekN(1))):
		return l.scanNumber(start, line, column)
	case l.peek() == '"' || l.peek() == '\'':
		return l.scanString(start, line, column, "")
	}

	for _, op := range operators {
		if bytes.HasPrefix(l.input[l.pos:], []byte(op)) {
			l.advanceN(len(op))
			switch op {
			case "(", "[", "{":
				l.depth++
			case ")", "]", "}":
				if l.depth > 0 {
					l.depth--
				}
			}
			l.emit(TokenOperator, op, line, column)
			return nil
		}
	}

	if r == utf8.RuneError && size <= 1 {
		return l.errorf(line, column, "invalid utf-8 byte %#x", l.peek())
	}
	return l.errorf(line, column, "unexpected character %q", r)
}

func (l *Lexer) scanIdentOrString(start, line, column int) error {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRune(l.input[l.pos:])
		if !isLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.advanceN(size)
	}
	ident := string(l.input[start:l.pos])

	if isStringPrefix(ident) && (l.peek() == '"' || l.peek() == '\'') {
		return l.scanString(start, line, column, strings.ToLower(ident))
	}

	l.emit(LookupIdentifier(ident), ident, line, column)
	return nil
}

func (l *Lexer) scanNumber(start, line, column int) error {
	if l.peek() == '0' {
		var kind TokenKind
		var valid func(byte) bool
		switch l.peekN(1) {
		case 'x', 'X':
			kind, valid = TokenHexInteger, isHexDigit
		case 'b', 'B':
			kind, valid = TokenBinInteger, func(ch byte) bool { return ch == '0' || ch == '1' }
		case 'o', 'O':
			kind, valid = TokenOctInteger, func(ch byte) bool { return ch >= '0' && ch <= '7' }
		}
		if valid != nil {
			l.advanceN(2)
			if !valid(l.peek()) {
				return l.errorf(line, column, "invalid %s literal", kind)
			}
			for valid(l.peek()) || l.peek() == '_' {
				l.advance()
			}
			l.emit(kind, string(l.input[start:l.pos]), line, column)
			return nil
		}
	}

	isFloat := false
	l.scanDigits()

	if l.peek() == '.' && l.peekN(1) != '.' {
		isFloat = true
		l.advance()
		l.scanDigits()
	}

	if l.peek() == 'e' || l.peek() == 'E' {
		next := l.peekN(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekN(2))) {
			isFloat = true
			l.advanceN(2)
			l.scanDigits()
		}
	}

	kind := TokenDecInteger
	if isFloat {
		kind = TokenDecFloat
	}

	if l.peek() == 'i' && l.peekN(1) == 'm' {
		r, _ := utf8.DecodeRune(l.input[min(l.pos+2, len(l.input)):])
		if l.pos+2 >= len(l.input) || !(isLetter(r) || unicode.IsDigit(r)) {
			l.advanceN(2)
			if isFloat {
				kind = TokenDecFloatImag
			} else {
				kind = TokenDecIntegerImag
			}
		}
	}

	l.emit(kind, string(l.input[start:l.pos]), line, column)
	return nil
}

func (l *Lexer) scanDigits() {
	for isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
}

func (l *Lexer) scanString(start, line, column int, prefix string) error {
	quote := l.peek()
	triple := l.peekN(1) == quote && l.peekN(2) == quote
	if triple {
		l.advanceN(3)
	} else {
		l.advance()
	}

	for {
		ch := l.peek()
		if l.pos >= len(l.input) {
			return l.errorf(line, column, "unterminated string literal")
		}
		if ch == '\\' {
			l.advanceN(2)
			continue
		}
		if triple {
			if ch == quote && l.peekN(1) == quote && l.peekN(2) == quote {
				l.advanceN(3)
				break
			}
		} else {
			if ch == quote {
				l.advance()
				break
			}
			if ch == '\n' || ch == '\r' {
				return l.errorf(line, column, "unterminated string literal")
			}
		}
		l.advance()
	}

	kind := TokenString
	switch {
	case strings.Contains(prefix, "b"):
		kind = TokenByteString
	case prefix != "":
		kind = TokenPrefixedString
	}
	l.emit(kind, string(l.input[start:l.pos]), line, column)
	return nil
}

func isStringPrefix(ident string) bool {
	switch strings.ToLower(ident) {
	case "b", "r", "u", "f", "br", "rb", "fr", "rf":
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
