package parser

import "github.com/dhamidi/corona/ast"

// TypeAnnotation parses `intersection ('|' intersection)*`. A single
// member is returned without a UnionType wrapper.
func (p *Parser) TypeAnnotation() (ast.Node, bool) {
	return apply(p, ruleTypeAnnotation, func(p *Parser) (ast.Node, bool) {
		return p.typeChain("|", (*Parser).IntersectionType, func(t []ast.Node) ast.Node {
			return &ast.UnionType{Types: t}
		})
	})
}

// IntersectionType parses `atom_type ('&' atom_type)*`.
func (p *Parser) IntersectionType() (ast.Node, bool) {
	return apply(p, ruleIntersectionType, func(p *Parser) (ast.Node, bool) {
		return p.typeChain("&", (*Parser).AtomType, func(t []ast.Node) ast.Node {
			return &ast.IntersectionType{Types: t}
		})
	})
}

func (p *Parser) typeChain(sep string, member func(*Parser) (ast.Node, bool), wrap func([]ast.Node) ast.Node) (ast.Node, bool) {
	first, ok := member(p)
	if !ok {
		return nil, false
	}
	types := []ast.Node{first}
	p.many(func() bool {
		if _, ok := p.matchLiteral(sep); !ok {
			return false
		}
		t, ok := member(p)
		if ok {
			types = append(types, t)
		}
		return ok
	})
	if p.err != nil {
		return nil, false
	}
	return collapse(types, wrap), true
}

// types parses type (',' type)* ','?.
func (p *Parser) types() ([]ast.Node, bool) {
	var types []ast.Node
	n, _ := p.sequence(func() bool {
		t, ok := p.TypeAnnotation()
		if ok {
			types = append(types, t)
		}
		return ok
	})
	return types, n > 0
}

// AtomType parses a function type, list type, tuple type, generic type or
// nominal type, in that order.
func (p *Parser) AtomType() (ast.Node, bool) {
	return apply(p, ruleAtomType, func(p *Parser) (ast.Node, bool) {
		return p.choice(
			(*Parser).functionType,
			(*Parser).listType,
			(*Parser).tupleType,
			(*Parser).genericType,
			(*Parser).nominalType,
		)
	})
}

// functionType parses `'(' types? ')' '->' type`.
func (p *Parser) functionType() (ast.Node, bool) {
	if _, ok := p.matchLiteral("("); !ok {
		return nil, false
	}
	params, _ := p.types()
	if params == nil {
		params = []ast.Node{}
	}
	if !p.closing(")") || !p.closing("->") {
		return nil, false
	}
	ret, ok := p.TypeAnnotation()
	if !ok {
		return nil, false
	}
	return &ast.FunctionType{Params: params, Return: ret}, true
}

func (p *Parser) listType() (ast.Node, bool) {
	if _, ok := p.matchLiteral("["); !ok {
		return nil, false
	}
	types, ok := p.types()
	if !ok || !p.closing("]") {
		return nil, false
	}
	return &ast.ListType{Types: types}, true
}

func (p *Parser) tupleType() (ast.Node, bool) {
	if _, ok := p.matchLiteral("("); !ok {
		return nil, false
	}
	types, ok := p.types()
	if !ok || !p.closing(")") {
		return nil, false
	}
	return &ast.TupleType{Types: types}, true
}

func (p *Parser) genericType() (ast.Node, bool) {
	name, ok := p.identifier()
	if !ok {
		return nil, false
	}
	if _, ok := p.matchLiteral("["); !ok {
		return nil, false
	}
	args, ok := p.types()
	if !ok || !p.closing("]") {
		return nil, false
	}
	return &ast.GenericType{Name: name, Args: args}, true
}

func (p *Parser) nominalType() (ast.Node, bool) {
	if i, ok := p.matchLiteral("None"); ok {
		return &ast.Type{Name: &ast.NoneLiteral{Index: i}}, true
	}
	name, ok := p.identifier()
	if !ok {
		return nil, false
	}
	return &ast.Type{Name: name}, true
}

// Generics parses a generics annotation `'[' types ']'`.
func (p *Parser) Generics() (*ast.GenericsAnnotation, bool) {
	return apply(p, ruleGenerics, func(p *Parser) (*ast.GenericsAnnotation, bool) {
		if _, ok := p.matchLiteral("["); !ok {
			return nil, false
		}
		types, ok := p.types()
		if !ok || !p.closing("]") {
			return nil, false
		}
		return &ast.GenericsAnnotation{Types: types}, true
	})
}
