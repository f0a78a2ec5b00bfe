package parser

import (
	"fmt"

	"github.com/dhamidi/corona/ast"
	"github.com/dhamidi/corona/lexer"
	"github.com/tliron/commonlog"
)

const DefaultMaxDepth = 10000

type Option func(*Parser)

// WithStrict selects between commit-point errors (the default) and pure
// backtracking, where a malformed construct only fails to match.
func WithStrict(strict bool) Option {
	return func(p *Parser) {
		p.strict = strict
	}
}

func WithoutMemoization() Option {
	return func(p *Parser) {
		p.memoize = false
	}
}

// WithMaxDepth bounds the number of nested rule activations.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// WithTrace logs every rule outcome at debug level.
func WithTrace() Option {
	return func(p *Parser) {
		p.trace = true
	}
}

type Stats struct {
	Hits    int
	Misses  int
	Entries int
}

// Parser is a memoizing recursive-descent parser over a token sequence. It
// is single use and not safe for concurrent use.
type Parser struct {
	tokens []lexer.Token
	cursor int
	row    int
	column int

	farthest int
	depth    int
	err      *SyntaxError
	cache    memo
	stats    Stats

	strict   bool
	memoize  bool
	maxDepth int
	trace    bool
	log      commonlog.Logger
}

func New(tokens []lexer.Token, opts ...Option) *Parser {
	p := &Parser{
		tokens:   tokens,
		cursor:   -1,
		farthest: -1,
		strict:   true,
		memoize:  true,
		maxDepth: DefaultMaxDepth,
		log:      commonlog.GetLogger("corona.parser"),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.memoize {
		p.cache = newMemo(len(tokens))
	}
	return p
}

// FromSource tokenizes src and returns a parser over the result.
func FromSource(src []byte, opts ...Option) (*Parser, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	return New(tokens, opts...), nil
}

func Parse(tokens []lexer.Token, opts ...Option) (*ast.Program, error) {
	return New(tokens, opts...).Program()
}

// ParseSource tokenizes and parses src. The tokens are returned so that
// callers can resolve the token indices held by the tree.
func ParseSource(src []byte, opts ...Option) (*ast.Program, []lexer.Token, error) {
	p, err := FromSource(src, opts...)
	if err != nil {
		return nil, nil, err
	}
	prog, err := p.Program()
	return prog, p.tokens, err
}

func (p *Parser) Tokens() []lexer.Token {
	return p.tokens
}

// Position returns the cursor and the row and column of the last consumed
// token. Before anything is consumed they are -1, 0 and 0.
func (p *Parser) Position() (cursor, row, column int) {
	return p.cursor, p.row, p.column
}

func (p *Parser) Stats() Stats {
	s := p.stats
	if p.cache != nil {
		s.Entries = p.cache.size()
	}
	return s
}

// Err returns the syntax error raised by the last rule, if any.
func (p *Parser) Err() error {
	if p.err == nil {
		return nil
	}
	return p.err
}

// Done reports whether every token has been consumed.
func (p *Parser) Done() bool {
	return p.atEnd()
}

// Program parses the whole token sequence.
func (p *Parser) Program() (*ast.Program, error) {
	prog, ok := apply(p, ruleProgram, (*Parser).program)
	p.log.Debugf("parsed %d tokens: %+v", len(p.tokens), p.Stats())
	if p.err != nil {
		return nil, p.err
	}
	if !ok {
		return nil, p.invalidSyntax()
	}
	return prog, nil
}

func (p *Parser) program() (*ast.Program, bool) {
	prog := &ast.Program{Statements: []ast.Node{}}
	for !p.atEnd() {
		if _, ok := p.consume(lexer.TokenNewline); ok {
			continue
		}
		stmts, ok := p.Statement()
		if !ok {
			return nil, false
		}
		prog.Statements = append(prog.Statements, stmts...)
	}
	return prog, true
}

type entryPoint func(*Parser) (ast.Node, bool)

func nodeOf[T ast.Node](rule func(*Parser) (T, bool)) entryPoint {
	return func(p *Parser) (ast.Node, bool) {
		n, ok := rule(p)
		if !ok {
			return nil, false
		}
		return n, true
	}
}

var entryPoints = map[string]entryPoint{
	"statement": func(p *Parser) (ast.Node, bool) {
		stmts, ok := p.Statement()
		if !ok {
			return nil, false
		}
		return &ast.Block{Statements: stmts}, true
	},
	"suite":           nodeOf((*Parser).Suite),
	"expr":            (*Parser).Expr,
	"test":            (*Parser).Test,
	"named_expr":      (*Parser).NamedExpr,
	"star_exprs":      (*Parser).Value,
	"comparison":      (*Parser).Comparison,
	"sum_expr":        (*Parser).SumExpr,
	"power_expr":      (*Parser).PowerExpr,
	"atom_expr":       (*Parser).AtomExpr,
	"atom":            (*Parser).Atom,
	"lambda":          (*Parser).LambdaExpr,
	"yield_expr":      (*Parser).YieldExpr,
	"lhs":             (*Parser).LHS,
	"func_params":     nodeOf((*Parser).FuncParams),
	"type_annotation": (*Parser).TypeAnnotation,
	"generics":        nodeOf((*Parser).Generics),
}

// EntryPoints lists the rule names accepted by Rule.
func EntryPoints() []string {
	names := make([]string, 0, len(entryPoints))
	for name := range entryPoints {
		names = append(names, name)
	}
	return names
}

// Rule parses the whole token sequence as the named rule. Trailing
// newlines are ignored; any other leftover token is an error.
func (p *Parser) Rule(name string) (ast.Node, error) {
	entry, ok := entryPoints[name]
	if !ok {
		return nil, fmt.Errorf("unknown rule %q", name)
	}
	n, ok := entry(p)
	if p.err != nil {
		return nil, p.err
	}
	if !ok {
		return nil, p.invalidSyntax()
	}
	p.many(func() bool {
		_, ok := p.consume(lexer.TokenNewline)
		return ok
	})
	if !p.atEnd() {
		row, column := p.positionOf(p.cursor + 1)
		return nil, &SyntaxError{Message: "unexpected " + describe(p.peek()), Row: row, Column: column}
	}
	return n, nil
}
