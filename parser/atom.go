package parser

import (
	"github.com/dhamidi/corona/ast"
	"github.com/dhamidi/corona/lexer"
)

// choice tries each alternative from the same position and returns the
// first that matches.
func (p *Parser) choice(alts ...func(*Parser) (ast.Node, bool)) (ast.Node, bool) {
	start := p.checkpoint()
	for _, alt := range alts {
		if n, ok := alt(p); ok {
			return n, true
		}
		p.restore(start)
		if p.err != nil {
			return nil, false
		}
	}
	return nil, false
}

func (p *Parser) identifier() (*ast.Identifier, bool) {
	i, ok := p.consume(lexer.TokenIdentifier)
	if !ok {
		return nil, false
	}
	return &ast.Identifier{Index: i}, true
}

// dotted parses identifier ('.' identifier)*.
func (p *Parser) dotted() ([]*ast.Identifier, bool) {
	first, ok := p.identifier()
	if !ok {
		return nil, false
	}
	names := []*ast.Identifier{first}
	p.many(func() bool {
		if _, ok := p.matchLiteral("."); !ok {
			return false
		}
		name, ok := p.identifier()
		if ok {
			names = append(names, name)
		}
		return ok
	})
	return names, true
}

func (p *Parser) Atom() (ast.Node, bool) {
	return apply(p, ruleAtom, (*Parser).atom)
}

func (p *Parser) atom() (ast.Node, bool) {
	return p.choice(
		(*Parser).ParenAtom,
		(*Parser).BraceAtom,
		(*Parser).BracketAtom,
		(*Parser).number,
		(*Parser).Strings,
		(*Parser).constant,
		func(p *Parser) (ast.Node, bool) { return p.identifier() },
	)
}

func (p *Parser) number() (ast.Node, bool) {
	tok, ok := p.peek()
	if !ok {
		return nil, false
	}
	switch tok.Kind {
	case lexer.TokenDecFloat:
		i, _, _ := p.advance()
		return &ast.Float{Index: i}, true
	case lexer.TokenDecInteger, lexer.TokenHexInteger, lexer.TokenBinInteger, lexer.TokenOctInteger:
		i, _, _ := p.advance()
		return &ast.Integer{Index: i}, true
	case lexer.TokenDecFloatImag:
		i, _, _ := p.advance()
		return &ast.ImagFloat{Index: i}, true
	case lexer.TokenDecIntegerImag:
		i, _, _ := p.advance()
		return &ast.ImagInteger{Index: i}, true
	}
	return nil, false
}

// Strings parses one or more adjacent string literals.
func (p *Parser) Strings() (ast.Node, bool) {
	return apply(p, ruleStrings, (*Parser).strings)
}

func (p *Parser) strings() (ast.Node, bool) {
	var parts []ast.Node
	p.many(func() bool {
		tok, ok := p.peek()
		if !ok {
			return false
		}
		var n ast.Node
		switch tok.Kind {
		case lexer.TokenString:
			n = &ast.String{Index: p.cursor + 1}
		case lexer.TokenByteString:
			n = &ast.ByteString{Index: p.cursor + 1}
		case lexer.TokenPrefixedString:
			n = &ast.PrefixedString{Index: p.cursor + 1}
		default:
			return false
		}
		p.advance()
		parts = append(parts, n)
		return true
	})
	switch len(parts) {
	case 0:
		return nil, false
	case 1:
		return parts[0], true
	}
	return &ast.StringList{Strings: parts}, true
}

func (p *Parser) constant() (ast.Node, bool) {
	if i, ok := p.matchLiteral("None"); ok {
		return &ast.NoneLiteral{Index: i}, true
	}
	if i, ok := p.matchLiteral("True"); ok {
		return &ast.Bool{Index: i, Value: true}, true
	}
	if i, ok := p.matchLiteral("False"); ok {
		return &ast.Bool{Index: i, Value: false}, true
	}
	return nil, false
}

// ParenAtom parses the parenthesized forms: empty tuple, yield, generator,
// tuple and plain grouping.
func (p *Parser) ParenAtom() (ast.Node, bool) {
	return apply(p, ruleParenAtom, (*Parser).parenAtom)
}

func (p *Parser) parenAtom() (ast.Node, bool) {
	if _, ok := p.matchLiteral("("); !ok {
		return nil, false
	}
	if _, ok := p.matchLiteral(")"); ok {
		return &ast.Tuple{Exprs: []ast.Node{}}, true
	}
	return p.choice(
		func(p *Parser) (ast.Node, bool) {
			y, ok := p.YieldExpr()
			if !ok {
				return nil, false
			}
			return y, p.closing(")")
		},
		func(p *Parser) (ast.Node, bool) {
			return p.comprehension(ast.Generator, ")")
		},
		func(p *Parser) (ast.Node, bool) {
			exprs, trailing, ok := p.starExprs()
			if !ok || !p.closing(")") {
				return nil, false
			}
			if len(exprs) == 1 && !trailing {
				return exprs[0], true
			}
			return &ast.Tuple{Exprs: exprs}, true
		},
	)
}

func (p *Parser) closing(text string) bool {
	_, ok := p.matchLiteral(text)
	return ok
}

// comprehension parses `expr comprehension_for close` after the opening
// bracket.
func (p *Parser) comprehension(kind ast.ComprehensionType, close string) (ast.Node, bool) {
	expr, ok := p.NamedExpr()
	if !ok {
		return nil, false
	}
	clauses, ok := p.ComprehensionFor()
	if !ok || !p.closing(close) {
		return nil, false
	}
	return &ast.Comprehension{Type: kind, KeyExpr: &ast.Null{}, Expr: expr, For: clauses}, true
}

// BraceAtom parses sets, dicts and their comprehensions. `{}` is an empty
// set.
func (p *Parser) BraceAtom() (ast.Node, bool) {
	return apply(p, ruleBraceAtom, (*Parser).braceAtom)
}

func (p *Parser) braceAtom() (ast.Node, bool) {
	if _, ok := p.matchLiteral("{"); !ok {
		return nil, false
	}
	if _, ok := p.matchLiteral("}"); ok {
		return &ast.Set{Exprs: []ast.Node{}}, true
	}
	return p.choice(
		(*Parser).dictComprehension,
		(*Parser).dict,
		func(p *Parser) (ast.Node, bool) {
			return p.comprehension(ast.SetComprehension, "}")
		},
		func(p *Parser) (ast.Node, bool) {
			exprs, _, ok := p.starExprs()
			if !ok || !p.closing("}") {
				return nil, false
			}
			return &ast.Set{Exprs: exprs}, true
		},
	)
}

func (p *Parser) keyValue() (*ast.KeyValue, bool) {
	key, ok := p.Expr()
	if !ok {
		return nil, false
	}
	if _, ok := p.matchLiteral(":"); !ok {
		return nil, false
	}
	value, ok := p.Expr()
	if !ok {
		return nil, false
	}
	return &ast.KeyValue{Key: key, Value: value}, true
}

func (p *Parser) dictComprehension() (ast.Node, bool) {
	kv, ok := p.keyValue()
	if !ok {
		return nil, false
	}
	clauses, ok := p.ComprehensionFor()
	if !ok || !p.closing("}") {
		return nil, false
	}
	return &ast.Comprehension{Type: ast.DictComprehension, KeyExpr: kv.Key, Expr: kv.Value, For: clauses}, true
}

func (p *Parser) dict() (ast.Node, bool) {
	var pairs []*ast.KeyValue
	n, _ := p.sequence(func() bool {
		kv, ok := p.keyValue()
		if ok {
			pairs = append(pairs, kv)
		}
		return ok
	})
	if n == 0 || !p.closing("}") {
		return nil, false
	}
	return &ast.Dict{Pairs: pairs}, true
}

// BracketAtom parses lists and list comprehensions.
func (p *Parser) BracketAtom() (ast.Node, bool) {
	return apply(p, ruleBracketAtom, (*Parser).bracketAtom)
}

func (p *Parser) bracketAtom() (ast.Node, bool) {
	if _, ok := p.matchLiteral("["); !ok {
		return nil, false
	}
	if _, ok := p.matchLiteral("]"); ok {
		return &ast.List{Exprs: []ast.Node{}}, true
	}
	return p.choice(
		func(p *Parser) (ast.Node, bool) {
			return p.comprehension(ast.ListComprehension, "]")
		},
		func(p *Parser) (ast.Node, bool) {
			exprs, _, ok := p.starExprs()
			if !ok || !p.closing("]") {
				return nil, false
			}
			return &ast.List{Exprs: exprs}, true
		},
	)
}
