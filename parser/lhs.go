package parser

import "github.com/dhamidi/corona/ast"

// LHS parses an assignment target list. A single target is returned bare,
// even with a trailing comma; several targets form a TupleLHS.
func (p *Parser) LHS() (ast.Node, bool) {
	return apply(p, ruleLHS, func(p *Parser) (ast.Node, bool) {
		targets, ok := p.lhsList()
		if !ok {
			return nil, false
		}
		return collapse(targets, func(t []ast.Node) ast.Node { return &ast.TupleLHS{Exprs: t} }), true
	})
}

func collapse(targets []ast.Node, wrap func([]ast.Node) ast.Node) ast.Node {
	if len(targets) == 1 {
		return targets[0]
	}
	return wrap(targets)
}

// lhsList parses lhs_element (',' lhs_element)* ','?.
func (p *Parser) lhsList() ([]ast.Node, bool) {
	var targets []ast.Node
	n, _ := p.sequence(func() bool {
		t, ok := p.lhsElement()
		if ok {
			targets = append(targets, t)
		}
		return ok
	})
	return targets, n > 0
}

func (p *Parser) lhsElement() (ast.Node, bool) {
	if _, ok := p.matchLiteral("*"); ok {
		target, ok := p.LHSAtom()
		if !ok {
			return nil, false
		}
		return &ast.TupleRestExpr{Expr: target}, true
	}
	return p.LHSAtom()
}

// LHSAtom parses `identifier ('.' identifier | '[' subscript ']')*` or a
// parenthesized or bracketed target list.
func (p *Parser) LHSAtom() (ast.Node, bool) {
	return apply(p, ruleLHSAtom, (*Parser).lhsAtom)
}

func (p *Parser) lhsAtom() (ast.Node, bool) {
	if _, ok := p.matchLiteral("("); ok {
		targets, ok := p.lhsList()
		if !ok || !p.closing(")") {
			return nil, false
		}
		return collapse(targets, func(t []ast.Node) ast.Node { return &ast.TupleLHS{Exprs: t} }), true
	}
	if _, ok := p.matchLiteral("["); ok {
		targets, ok := p.lhsList()
		if !ok || !p.closing("]") {
			return nil, false
		}
		return collapse(targets, func(t []ast.Node) ast.Node { return &ast.ListLHS{Exprs: t} }), true
	}

	name, ok := p.identifier()
	if !ok {
		return nil, false
	}
	var target ast.Node = name
	p.many(func() bool {
		if _, ok := p.matchLiteral("."); ok {
			field, ok := p.identifier()
			if ok {
				target = fieldTrailer{name: field}.apply(target)
			}
			return ok
		}
		if _, ok := p.matchLiteral("["); ok {
			indices, ok := p.subscript()
			if !ok || !p.closing("]") {
				return false
			}
			target = subscriptTrailer{indices: indices}.apply(target)
			return true
		}
		return false
	})
	return target, p.err == nil
}
