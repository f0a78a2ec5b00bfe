package parser

import "github.com/dhamidi/corona/ast"

// FuncParams parses a def parameter list, where parameters may carry type
// annotations.
func (p *Parser) FuncParams() (*ast.FuncParams, bool) {
	return apply(p, ruleFuncParams, func(p *Parser) (*ast.FuncParams, bool) {
		return p.params(true)
	})
}

// LambdaParams parses the parameters of a lambda, either bare or wrapped in
// parentheses. Lambda parameters have no annotations since ':' ends the
// list.
func (p *Parser) LambdaParams() (*ast.FuncParams, bool) {
	return apply(p, ruleLambdaParams, func(p *Parser) (*ast.FuncParams, bool) {
		if _, ok := p.matchLiteral("("); ok {
			fp, ok := p.params(false)
			if !ok || !p.closing(")") {
				return nil, false
			}
			return fp, true
		}
		return p.params(false)
	})
}

// funcParam parses `identifier (':' type)? ('=' expr)?`.
func (p *Parser) funcParam(typed bool) (*ast.FuncParam, bool) {
	name, ok := p.identifier()
	if !ok {
		return nil, false
	}
	param := &ast.FuncParam{Name: name, Type: &ast.Null{}, Default: &ast.Null{}}
	if typed {
		p.optional(func() bool {
			if _, ok := p.matchLiteral(":"); !ok {
				return false
			}
			t, ok := p.TypeAnnotation()
			if ok {
				param.Type = t
			}
			return ok
		})
	}
	p.optional(func() bool {
		if _, ok := p.matchLiteral("="); !ok {
			return false
		}
		e, ok := p.Expr()
		if ok {
			param.Default = e
		}
		return ok
	})
	return param, p.err == nil
}

// params parses
//
//	param (',' param)* (',' '/' (',' param)*)? (',' '*' param? (',' param)*)? (',' '**' param)? ','?
//
// where any leading group may be absent.
func (p *Parser) params(typed bool) (*ast.FuncParams, bool) {
	fp := &ast.FuncParams{TupleRest: &ast.Null{}, NamedTupleRest: &ast.Null{}}
	count := 0

	// item runs [','] body, the comma being required after the first item.
	item := func(body func() bool) bool {
		ok := p.optional(func() bool {
			if count > 0 {
				if _, ok := p.matchLiteral(","); !ok {
					return false
				}
			}
			return body()
		})
		if ok {
			count++
		}
		return ok
	}
	positional := func() bool {
		param, ok := p.funcParam(typed)
		if ok {
			fp.Params = append(fp.Params, param)
		}
		return ok
	}

	for item(positional) {
	}
	if count > 0 {
		separator := item(func() bool {
			i, ok := p.matchLiteral("/")
			if ok {
				fp.Params = append(fp.Params, &ast.PositionalParamsSeparator{Index: i})
			}
			return ok
		})
		if separator {
			for item(positional) {
			}
		}
	}

	star := item(func() bool {
		if _, ok := p.matchLiteral("*"); !ok {
			return false
		}
		if param, ok := p.funcParam(typed); ok {
			fp.TupleRest = param
		}
		return p.err == nil
	})
	if star {
		for item(func() bool {
			param, ok := p.funcParam(typed)
			if ok {
				fp.KeywordOnly = append(fp.KeywordOnly, param)
			}
			return ok
		}) {
		}
	}

	item(func() bool {
		if _, ok := p.matchLiteral("**"); !ok {
			return false
		}
		param, ok := p.funcParam(typed)
		if ok {
			fp.NamedTupleRest = param
		}
		return ok
	})

	if count == 0 || p.err != nil {
		return nil, false
	}
	p.matchLiteral(",")
	return fp, true
}
