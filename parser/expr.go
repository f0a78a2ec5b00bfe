package parser

import (
	"github.com/dhamidi/corona/ast"
	"github.com/dhamidi/corona/lexer"
)

// Operator tables, one per precedence level. Two-token operators are
// written with a space.
var (
	mulOps        = []string{"*", "@", "/", "%", "//"}
	sumOps        = []string{"+", "-"}
	shiftOps      = []string{"<<", ">>"}
	andOps        = []string{"&"}
	xorOps        = []string{"||"}
	orOps         = []string{"|"}
	comparisonOps = []string{"<", ">", "==", ">=", "<=", "!=", "in", "not in", "is not", "is"}
	unaryOps      = []string{"+", "-", "~"}
)

// operator matches the first entry of ops at the cursor. Both tokens of a
// two-token operator must match.
func (p *Parser) operator(ops []string) (*ast.Operator, bool) {
	for _, op := range ops {
		first, second, two := cut(op)
		c := p.checkpoint()
		i, ok := p.matchLiteral(first)
		if !ok {
			continue
		}
		if !two {
			return &ast.Operator{Op: i, Rem: -1}, true
		}
		if j, ok := p.matchLiteral(second); ok {
			return &ast.Operator{Op: i, Rem: j}, true
		}
		p.restore(c)
	}
	return nil, false
}

func cut(op string) (string, string, bool) {
	for i := 0; i < len(op); i++ {
		if op[i] == ' ' {
			return op[:i], op[i+1:], true
		}
	}
	return op, "", false
}

// binary folds operand (op operand)* to the left. An operator whose right
// operand does not parse is given back.
func (p *Parser) binary(operand func(*Parser) (ast.Node, bool), ops []string) (ast.Node, bool) {
	lhs, ok := operand(p)
	if !ok {
		return nil, false
	}
	p.many(func() bool {
		op, ok := p.operator(ops)
		if !ok {
			return false
		}
		rhs, ok := operand(p)
		if !ok {
			return false
		}
		lhs = &ast.BinaryExpr{LHS: lhs, Op: op, RHS: rhs}
		return true
	})
	if p.err != nil {
		return nil, false
	}
	return lhs, true
}

// Expr parses a lambda or a conditional expression.
func (p *Parser) Expr() (ast.Node, bool) {
	return apply(p, ruleExpr, (*Parser).expr)
}

func (p *Parser) expr() (ast.Node, bool) {
	return p.choice((*Parser).LambdaExpr, (*Parser).Test)
}

// Test parses `or_test ('if' or_test 'else' test)?`.
func (p *Parser) Test() (ast.Node, bool) {
	return apply(p, ruleTest, (*Parser).test)
}

func (p *Parser) test() (ast.Node, bool) {
	then, ok := p.OrTest()
	if !ok {
		return nil, false
	}
	var result ast.Node = then
	p.optional(func() bool {
		if _, ok := p.matchLiteral("if"); !ok {
			return false
		}
		cond, ok := p.OrTest()
		if !ok {
			return false
		}
		if _, ok := p.matchLiteral("else"); !ok {
			return false
		}
		otherwise, ok := p.Test()
		if !ok {
			return false
		}
		result = &ast.IfExpr{Then: then, Cond: cond, Else: otherwise}
		return true
	})
	return result, p.err == nil
}

func (p *Parser) OrTest() (ast.Node, bool) {
	return apply(p, ruleOrTest, func(p *Parser) (ast.Node, bool) {
		return p.binary((*Parser).AndTest, []string{"or"})
	})
}

func (p *Parser) AndTest() (ast.Node, bool) {
	return apply(p, ruleAndTest, func(p *Parser) (ast.Node, bool) {
		return p.binary((*Parser).NotTest, []string{"and"})
	})
}

// NotTest parses `'not'* comparison`; each `not` wraps what follows.
func (p *Parser) NotTest() (ast.Node, bool) {
	return apply(p, ruleNotTest, (*Parser).notTest)
}

func (p *Parser) notTest() (ast.Node, bool) {
	return p.prefixed([]string{"not"}, (*Parser).Comparison)
}

// prefixed parses op* operand and nests the operators right to left.
func (p *Parser) prefixed(ops []string, operand func(*Parser) (ast.Node, bool)) (ast.Node, bool) {
	var prefix []*ast.Operator
	p.many(func() bool {
		op, ok := p.operator(ops)
		if ok {
			prefix = append(prefix, op)
		}
		return ok
	})
	n, ok := operand(p)
	if !ok {
		return nil, false
	}
	for i := len(prefix) - 1; i >= 0; i-- {
		n = &ast.UnaryExpr{Expr: n, Op: prefix[i]}
	}
	return n, true
}

func (p *Parser) Comparison() (ast.Node, bool) {
	return apply(p, ruleComparison, func(p *Parser) (ast.Node, bool) {
		return p.binary((*Parser).orExpr, comparisonOps)
	})
}

func (p *Parser) orExpr() (ast.Node, bool) {
	return apply(p, ruleOrExpr, func(p *Parser) (ast.Node, bool) {
		return p.binary((*Parser).xorExpr, orOps)
	})
}

func (p *Parser) xorExpr() (ast.Node, bool) {
	return apply(p, ruleXorExpr, func(p *Parser) (ast.Node, bool) {
		return p.binary((*Parser).andExpr, xorOps)
	})
}

func (p *Parser) andExpr() (ast.Node, bool) {
	return apply(p, ruleAndExpr, func(p *Parser) (ast.Node, bool) {
		return p.binary((*Parser).shiftExpr, andOps)
	})
}

func (p *Parser) shiftExpr() (ast.Node, bool) {
	return apply(p, ruleShiftExpr, func(p *Parser) (ast.Node, bool) {
		return p.binary((*Parser).SumExpr, shiftOps)
	})
}

func (p *Parser) SumExpr() (ast.Node, bool) {
	return apply(p, ruleSumExpr, func(p *Parser) (ast.Node, bool) {
		return p.binary((*Parser).MulExpr, sumOps)
	})
}

func (p *Parser) MulExpr() (ast.Node, bool) {
	return apply(p, ruleMulExpr, func(p *Parser) (ast.Node, bool) {
		return p.binary((*Parser).UnaryExpr, mulOps)
	})
}

// UnaryExpr parses `('+' | '-' | '~')* power_expr`.
func (p *Parser) UnaryExpr() (ast.Node, bool) {
	return apply(p, ruleUnaryExpr, func(p *Parser) (ast.Node, bool) {
		return p.prefixed(unaryOps, (*Parser).PowerExpr)
	})
}

// PowerExpr parses `'√'? atom_expr ('^' unary_expr | '²')?`. The root
// applies to the whole power, so `√5²` is the root of the square.
func (p *Parser) PowerExpr() (ast.Node, bool) {
	return apply(p, rulePowerExpr, (*Parser).powerExpr)
}

func (p *Parser) powerExpr() (ast.Node, bool) {
	root, hasRoot := p.matchLiteral("√")
	base, ok := p.AtomExpr()
	if !ok {
		return nil, false
	}
	p.optional(func() bool {
		if i, ok := p.matchLiteral("²"); ok {
			base = &ast.UnaryExpr{Expr: base, Op: &ast.Operator{Op: i, Rem: -1}}
			return true
		}
		i, ok := p.matchLiteral("^")
		if !ok {
			return false
		}
		exponent, ok := p.UnaryExpr()
		if !ok {
			return false
		}
		base = &ast.BinaryExpr{LHS: base, Op: &ast.Operator{Op: i, Rem: -1}, RHS: exponent}
		return true
	})
	if p.err != nil {
		return nil, false
	}
	if hasRoot {
		base = &ast.UnaryExpr{Expr: base, Op: &ast.Operator{Op: root, Rem: -1}}
	}
	return base, true
}

// AtomExpr parses `'await'? atom trailer*`.
func (p *Parser) AtomExpr() (ast.Node, bool) {
	return apply(p, ruleAtomExpr, (*Parser).atomExpr)
}

func (p *Parser) atomExpr() (ast.Node, bool) {
	_, awaited := p.matchLiteral("await")
	n, ok := p.Atom()
	if !ok {
		return nil, false
	}
	p.many(func() bool {
		t, ok := p.trailer()
		if ok {
			n = t.apply(n)
		}
		return ok
	})
	if p.err != nil {
		return nil, false
	}
	if awaited {
		n = &ast.AwaitedExpr{Expr: n}
	}
	return n, true
}

// NamedExpr parses `identifier ':=' expr | expr`.
func (p *Parser) NamedExpr() (ast.Node, bool) {
	return apply(p, ruleNamedExpr, (*Parser).namedExpr)
}

func (p *Parser) namedExpr() (ast.Node, bool) {
	return p.choice(
		func(p *Parser) (ast.Node, bool) {
			name, ok := p.identifier()
			if !ok {
				return nil, false
			}
			if _, ok := p.matchLiteral(":="); !ok {
				return nil, false
			}
			value, ok := p.Expr()
			if !ok {
				return nil, false
			}
			return &ast.NamedExpression{Name: name, Expr: value}, true
		},
		(*Parser).Expr,
	)
}

// StarExpr parses `'*' expr`, `'**' expr` or a named expression.
func (p *Parser) StarExpr() (ast.Node, bool) {
	return apply(p, ruleStarExpr, (*Parser).starExpr)
}

func (p *Parser) starExpr() (ast.Node, bool) {
	if _, ok := p.matchLiteral("**"); ok {
		e, ok := p.Expr()
		if !ok {
			return nil, false
		}
		return &ast.NamedTupleRestExpr{Expr: e}, true
	}
	if _, ok := p.matchLiteral("*"); ok {
		e, ok := p.Expr()
		if !ok {
			return nil, false
		}
		return &ast.TupleRestExpr{Expr: e}, true
	}
	return p.NamedExpr()
}

type exprList struct {
	exprs    []ast.Node
	trailing bool
}

func (p *Parser) starExprs() ([]ast.Node, bool, bool) {
	l, ok := apply(p, ruleStarExprs, func(p *Parser) (exprList, bool) {
		var l exprList
		n, trailing := p.sequence(func() bool {
			e, ok := p.StarExpr()
			if ok {
				l.exprs = append(l.exprs, e)
			}
			return ok
		})
		l.trailing = trailing
		return l, n > 0
	})
	return l.exprs, l.trailing, ok
}

// Value parses the right-hand side of assignments and expression
// statements: a yield expression or a comma separated list, which becomes a
// tuple when it has more than one element or a trailing comma.
func (p *Parser) Value() (ast.Node, bool) {
	return apply(p, ruleValue, (*Parser).value)
}

func (p *Parser) value() (ast.Node, bool) {
	if y, ok := p.YieldExpr(); ok {
		return y, true
	}
	exprs, trailing, ok := p.starExprs()
	if !ok {
		return nil, false
	}
	if len(exprs) == 1 && !trailing {
		return exprs[0], true
	}
	return &ast.Tuple{Exprs: exprs}, true
}

// YieldExpr parses `'yield' ('from' expr | star_exprs)?`.
func (p *Parser) YieldExpr() (ast.Node, bool) {
	return apply(p, ruleYieldExpr, (*Parser).yieldExpr)
}

func (p *Parser) yieldExpr() (ast.Node, bool) {
	if _, ok := p.matchLiteral("yield"); !ok {
		return nil, false
	}
	if _, ok := p.matchLiteral("from"); ok {
		e, ok := p.Expr()
		if !ok {
			return nil, false
		}
		return &ast.Yield{Exprs: []ast.Node{e}, IsFrom: true}, true
	}
	exprs, _, _ := p.starExprs()
	if p.err != nil {
		return nil, false
	}
	return &ast.Yield{Exprs: exprs}, true
}

// ComprehensionFor parses one or more `'async'? 'for' lhs 'in' or_test
// ('where' or_test)?` clauses, chained through Nested.
func (p *Parser) ComprehensionFor() (*ast.ComprehensionFor, bool) {
	return apply(p, ruleComprehensionFor, (*Parser).comprehensionFor)
}

func (p *Parser) comprehensionFor() (*ast.ComprehensionFor, bool) {
	var clauses []*ast.ComprehensionFor
	p.many(func() bool {
		c, ok := p.syncFor()
		if ok {
			clauses = append(clauses, c)
		}
		return ok
	})
	if len(clauses) == 0 || p.err != nil {
		return nil, false
	}
	var nested ast.Node = &ast.Null{}
	for i := len(clauses) - 1; i >= 0; i-- {
		clauses[i].Nested = nested
		nested = clauses[i]
	}
	return clauses[0], true
}

// syncFor builds a fresh clause; Nested is filled in by comprehensionFor
// before the chain is returned.
func (p *Parser) syncFor() (*ast.ComprehensionFor, bool) {
	_, async := p.matchLiteral("async")
	if _, ok := p.matchLiteral("for"); !ok {
		return nil, false
	}
	target, ok := p.LHS()
	if !ok {
		return nil, false
	}
	if _, ok := p.matchLiteral("in"); !ok {
		return nil, false
	}
	iterable, ok := p.OrTest()
	if !ok {
		return nil, false
	}
	clause := &ast.ComprehensionFor{IsAsync: async, Var: target, Iterable: iterable, Where: &ast.Null{}}
	p.optional(func() bool {
		if _, ok := p.matchLiteral("where"); !ok {
			return false
		}
		where, ok := p.OrTest()
		if ok {
			clause.Where = where
		}
		return ok
	})
	return clause, p.err == nil
}

// LambdaExpr parses block lambdas and inline lambdas.
func (p *Parser) LambdaExpr() (ast.Node, bool) {
	return apply(p, ruleLambdaExpr, func(p *Parser) (ast.Node, bool) {
		return p.choice((*Parser).lambdaBlock, (*Parser).lambdaInline)
	})
}

func (p *Parser) lambdaHead() (ast.Node, bool) {
	if _, ok := p.matchLiteral("lambda"); !ok {
		return nil, false
	}
	var params ast.Node = &ast.Null{}
	if fp, ok := p.LambdaParams(); ok {
		params = fp
	}
	if _, ok := p.matchLiteral(":"); !ok {
		return nil, false
	}
	return params, true
}

// lambdaBlock parses `'lambda' params? ':' NEWLINE INDENT statement+
// DEDENT`.
func (p *Parser) lambdaBlock() (ast.Node, bool) {
	return apply(p, ruleLambdaBlock, func(p *Parser) (ast.Node, bool) {
		params, ok := p.lambdaHead()
		if !ok {
			return nil, false
		}
		body, ok := p.indentedBlock()
		if !ok {
			return nil, false
		}
		return &ast.FuncExpr{Params: params, Body: body.Statements, IsBlock: true}, true
	})
}

func (p *Parser) lambdaInline() (ast.Node, bool) {
	return apply(p, ruleLambdaInline, func(p *Parser) (ast.Node, bool) {
		params, ok := p.lambdaHead()
		if !ok {
			return nil, false
		}
		body, ok := p.Expr()
		if !ok {
			return nil, false
		}
		return &ast.FuncExpr{Params: params, Body: []ast.Node{body}}, true
	})
}

// skipNewlines consumes any run of NEWLINE tokens.
func (p *Parser) skipNewlines() {
	p.many(func() bool {
		_, ok := p.consume(lexer.TokenNewline)
		return ok
	})
}
