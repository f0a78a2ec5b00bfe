package parser

import "github.com/dhamidi/corona/ast"

// trailer is a postfix operation waiting for its base expression. apply
// always builds a new node so that cached subtrees stay untouched.
type trailer interface {
	apply(base ast.Node) ast.Node
}

type callTrailer struct {
	args []*ast.Argument
}

func (t callTrailer) apply(base ast.Node) ast.Node {
	return &ast.Call{Expr: base, Arguments: t.args}
}

type subscriptTrailer struct {
	indices []*ast.SubscriptIndex
}

func (t subscriptTrailer) apply(base ast.Node) ast.Node {
	return &ast.Subscript{Expr: base, Indices: t.indices}
}

type fieldTrailer struct {
	name *ast.Identifier
}

func (t fieldTrailer) apply(base ast.Node) ast.Node {
	return &ast.Field{Expr: base, Name: t.name}
}

func (p *Parser) trailer() (trailer, bool) {
	return apply(p, ruleTrailer, func(p *Parser) (trailer, bool) {
		switch {
		case p.atLiteral("("):
			p.advance()
			args, _ := p.Arguments()
			if !p.closing(")") {
				return nil, false
			}
			return callTrailer{args: args}, true
		case p.atLiteral("["):
			p.advance()
			indices, ok := p.subscript()
			if !ok || !p.closing("]") {
				return nil, false
			}
			return subscriptTrailer{indices: indices}, true
		case p.atLiteral("."):
			p.advance()
			name, ok := p.identifier()
			if !ok {
				return nil, false
			}
			return fieldTrailer{name: name}, true
		}
		return nil, false
	})
}

// subscript parses subscript_index (',' subscript_index)* ','?.
func (p *Parser) subscript() ([]*ast.SubscriptIndex, bool) {
	var indices []*ast.SubscriptIndex
	n, _ := p.sequence(func() bool {
		i, ok := p.SubscriptIndex()
		if ok {
			indices = append(indices, i)
		}
		return ok
	})
	return indices, n > 0
}

// SubscriptIndex parses an index or a slice. Slices are written
// `from:to` or `from:skip:to`, with every part optional.
func (p *Parser) SubscriptIndex() (*ast.SubscriptIndex, bool) {
	return apply(p, ruleSubscriptIndex, (*Parser).subscriptIndex)
}

func (p *Parser) subscriptIndex() (*ast.SubscriptIndex, bool) {
	optionalExpr := func() ast.Node {
		if e, ok := p.Expr(); ok {
			return e
		}
		return &ast.Null{}
	}
	from := optionalExpr()
	if _, ok := p.matchLiteral(":"); !ok {
		if _, null := from.(*ast.Null); null || p.err != nil {
			return nil, false
		}
		return &ast.SubscriptIndex{From: from, Skip: &ast.Null{}, To: &ast.Null{}}, true
	}
	second := optionalExpr()
	if _, ok := p.matchLiteral(":"); !ok {
		return &ast.SubscriptIndex{From: from, Skip: &ast.Null{}, To: second, IsSlice: true}, p.err == nil
	}
	third := optionalExpr()
	return &ast.SubscriptIndex{From: from, Skip: second, To: third, IsSlice: true}, p.err == nil
}

// Arguments parses a call argument list, possibly empty. A single
// unparenthesized generator is accepted as the only argument.
func (p *Parser) Arguments() ([]*ast.Argument, bool) {
	return apply(p, ruleArguments, (*Parser).arguments)
}

func (p *Parser) arguments() ([]*ast.Argument, bool) {
	args := []*ast.Argument{}
	generator := p.optional(func() bool {
		e, ok := p.NamedExpr()
		if !ok {
			return false
		}
		clauses, ok := p.ComprehensionFor()
		if !ok || !p.atLiteral(")") {
			return false
		}
		comp := &ast.Comprehension{Type: ast.Generator, KeyExpr: &ast.Null{}, Expr: e, For: clauses}
		args = append(args, &ast.Argument{Name: &ast.Null{}, Expr: comp})
		return true
	})
	if generator {
		return args, true
	}
	p.sequence(func() bool {
		a, ok := p.argument()
		if ok {
			args = append(args, a)
		}
		return ok
	})
	return args, p.err == nil
}

// argument parses `identifier '=' expr` or a star expression.
func (p *Parser) argument() (*ast.Argument, bool) {
	c := p.checkpoint()
	if name, ok := p.identifier(); ok {
		if _, ok := p.matchLiteral("="); ok {
			if e, ok := p.Expr(); ok {
				return &ast.Argument{Name: name, Expr: e}, true
			}
		}
		p.restore(c)
	}
	e, ok := p.StarExpr()
	if !ok {
		return nil, false
	}
	return &ast.Argument{Name: &ast.Null{}, Expr: e}, true
}
