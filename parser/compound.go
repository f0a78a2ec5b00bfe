package parser

import (
	"github.com/dhamidi/corona/ast"
	"github.com/dhamidi/corona/lexer"
)

// CompoundStatement parses statements that own a suite. In strict mode the
// leading keyword commits to the statement.
func (p *Parser) CompoundStatement() (ast.Node, bool) {
	return apply(p, ruleCompoundStatement, func(p *Parser) (ast.Node, bool) {
		return p.choice(
			(*Parser).Decorated,
			(*Parser).IfStatement,
			(*Parser).WhileStatement,
			(*Parser).ForStatement,
			(*Parser).TryStatement,
			(*Parser).WithStatement,
			(*Parser).FunctionDef,
			(*Parser).ClassDef,
			(*Parser).AsyncStatement,
		)
	})
}

// Suite parses a statement body: simple statements on the same line or an
// indented block. Both forms produce a Block.
func (p *Parser) Suite() (*ast.Block, bool) {
	return apply(p, ruleSuite, (*Parser).suite)
}

func (p *Parser) suite() (*ast.Block, bool) {
	if stmts, ok := p.SimpleStatements(); ok {
		return &ast.Block{Statements: stmts}, true
	}
	if p.err != nil {
		return nil, false
	}
	return p.indentedBlock()
}

// indentedBlock parses NEWLINE INDENT (statement | NEWLINE)+ DEDENT.
func (p *Parser) indentedBlock() (*ast.Block, bool) {
	if _, ok := p.consume(lexer.TokenNewline); !ok {
		return nil, false
	}
	if _, ok := p.consume(lexer.TokenIndent); !ok {
		return nil, false
	}
	block := &ast.Block{Statements: []ast.Node{}}
	p.many(func() bool {
		if _, ok := p.consume(lexer.TokenNewline); ok {
			return true
		}
		stmts, ok := p.Statement()
		if ok {
			block.Statements = append(block.Statements, stmts...)
		}
		return ok
	})
	if p.err != nil {
		return nil, false
	}
	if len(block.Statements) == 0 {
		return nil, p.errorf("expected a statement")
	}
	if _, ok := p.consume(lexer.TokenDedent); !ok {
		return nil, p.errorf("invalid syntax")
	}
	return block, true
}

// body parses the ':' suite that ends every clause header.
func (p *Parser) body(context string) (*ast.Block, bool) {
	if _, ok := p.expect(":", context); !ok {
		return nil, false
	}
	block, ok := p.Suite()
	if !p.require(ok, "an indented block "+context) {
		return nil, false
	}
	return block, true
}

// elseClause parses an optional `'else' ':' suite`, returning Null when
// absent.
func (p *Parser) elseClause(keyword string) (ast.Node, bool) {
	if _, ok := p.matchLiteral(keyword); !ok {
		return &ast.Null{}, true
	}
	block, ok := p.body("after '" + keyword + "'")
	if !ok {
		return nil, false
	}
	return block, true
}

// where parses an optional `'where' expr`.
func (p *Parser) where() (ast.Node, bool) {
	if _, ok := p.matchLiteral("where"); !ok {
		return &ast.Null{}, true
	}
	e, ok := p.Expr()
	if !p.require(ok, "an expression after 'where'") {
		return nil, false
	}
	return e, true
}

// IfStatement parses `'if' expr ':' suite ('elif' expr ':' suite)*
// ('else' ':' suite)?`.
func (p *Parser) IfStatement() (ast.Node, bool) {
	return apply(p, ruleIf, (*Parser).ifStatement)
}

func (p *Parser) ifStatement() (ast.Node, bool) {
	if _, ok := p.matchLiteral("if"); !ok {
		return nil, false
	}
	cond, ok := p.NamedExpr()
	if !p.require(ok, "a condition after 'if'") {
		return nil, false
	}
	body, ok := p.body("after 'if' condition")
	if !ok {
		return nil, false
	}
	stmt := &ast.IfStatement{Cond: cond, Body: body, Elifs: []*ast.Elif{}}
	p.many(func() bool {
		if _, ok := p.matchLiteral("elif"); !ok {
			return false
		}
		cond, ok := p.NamedExpr()
		if !p.require(ok, "a condition after 'elif'") {
			return false
		}
		body, ok := p.body("after 'elif' condition")
		if ok {
			stmt.Elifs = append(stmt.Elifs, &ast.Elif{Cond: cond, Body: body})
		}
		return ok
	})
	if p.err != nil {
		return nil, false
	}
	if stmt.Else, ok = p.elseClause("else"); !ok {
		return nil, false
	}
	return stmt, true
}

// WhileStatement parses `'while' expr ('where' expr)? ':' suite ('else'
// ':' suite)?`.
func (p *Parser) WhileStatement() (ast.Node, bool) {
	return apply(p, ruleWhile, (*Parser).whileStatement)
}

func (p *Parser) whileStatement() (ast.Node, bool) {
	if _, ok := p.matchLiteral("while"); !ok {
		return nil, false
	}
	cond, ok := p.NamedExpr()
	if !p.require(ok, "a condition after 'while'") {
		return nil, false
	}
	stmt := &ast.WhileStatement{Cond: cond}
	if stmt.Where, ok = p.where(); !ok {
		return nil, false
	}
	if stmt.Body, ok = p.body("after 'while' condition"); !ok {
		return nil, false
	}
	if stmt.Else, ok = p.elseClause("else"); !ok {
		return nil, false
	}
	return stmt, true
}

// ForStatement parses `'for' lhs 'in' value ('where' expr)? ':' suite
// ('else' ':' suite)?`.
func (p *Parser) ForStatement() (ast.Node, bool) {
	return apply(p, ruleFor, func(p *Parser) (ast.Node, bool) {
		return p.forStatement(false)
	})
}

func (p *Parser) forStatement(async bool) (ast.Node, bool) {
	if _, ok := p.matchLiteral("for"); !ok {
		return nil, false
	}
	target, ok := p.LHS()
	if !p.require(ok, "a target after 'for'") {
		return nil, false
	}
	if _, ok := p.expect("in", "after 'for' target"); !ok {
		return nil, false
	}
	iterable, ok := p.Value()
	if !p.require(ok, "an iterable after 'in'") {
		return nil, false
	}
	stmt := &ast.ForStatement{IsAsync: async, Var: target, Iterable: iterable}
	if stmt.Where, ok = p.where(); !ok {
		return nil, false
	}
	if stmt.Body, ok = p.body("after 'for' clause"); !ok {
		return nil, false
	}
	if stmt.Else, ok = p.elseClause("else"); !ok {
		return nil, false
	}
	return stmt, true
}

// TryStatement parses `'try' ':' suite (except+ else? finally? |
// finally)`.
func (p *Parser) TryStatement() (ast.Node, bool) {
	return apply(p, ruleTry, (*Parser).tryStatement)
}

func (p *Parser) tryStatement() (ast.Node, bool) {
	if _, ok := p.matchLiteral("try"); !ok {
		return nil, false
	}
	body, ok := p.body("after 'try'")
	if !ok {
		return nil, false
	}
	stmt := &ast.TryStatement{Body: body, Excepts: []*ast.Except{}, Else: &ast.Null{}}
	p.many(func() bool {
		e, ok := p.except()
		if ok {
			stmt.Excepts = append(stmt.Excepts, e)
		}
		return ok
	})
	if p.err != nil {
		return nil, false
	}
	if len(stmt.Excepts) > 0 {
		if stmt.Else, ok = p.elseClause("else"); !ok {
			return nil, false
		}
	}
	if stmt.Finally, ok = p.elseClause("finally"); !ok {
		return nil, false
	}
	if len(stmt.Excepts) == 0 {
		if _, none := stmt.Finally.(*ast.Null); none {
			return nil, p.errorf("expected 'except' or 'finally' after 'try' block")
		}
	}
	return stmt, true
}

// except parses `'except' (expr ('as' identifier)?)? ':' suite`.
func (p *Parser) except() (*ast.Except, bool) {
	if _, ok := p.matchLiteral("except"); !ok {
		return nil, false
	}
	clause := &ast.Except{Expr: &ast.Null{}, Name: &ast.Null{}}
	if e, ok := p.Expr(); ok {
		clause.Expr = e
		alias, ok := p.alias()
		if !ok {
			return nil, false
		}
		clause.Name = alias
	}
	var ok bool
	if clause.Body, ok = p.body("after 'except' clause"); !ok {
		return nil, false
	}
	return clause, true
}

// WithStatement parses `'with' item (',' item)* ','? ':' suite` where
// `item := expr ('as' lhs_atom)?`.
func (p *Parser) WithStatement() (ast.Node, bool) {
	return apply(p, ruleWith, func(p *Parser) (ast.Node, bool) {
		return p.withStatement(false)
	})
}

func (p *Parser) withStatement(async bool) (ast.Node, bool) {
	if _, ok := p.matchLiteral("with"); !ok {
		return nil, false
	}
	stmt := &ast.WithStatement{IsAsync: async}
	n, _ := p.sequence(func() bool {
		e, ok := p.Expr()
		if !ok {
			return false
		}
		item := &ast.WithArgument{Expr: e, Name: &ast.Null{}}
		if _, ok := p.matchLiteral("as"); ok {
			target, ok := p.LHSAtom()
			if !p.require(ok, "a target after 'as'") {
				return false
			}
			item.Name = target
		}
		stmt.Items = append(stmt.Items, item)
		return true
	})
	if !p.require(n > 0, "a context expression after 'with'") {
		return nil, false
	}
	var ok bool
	if stmt.Body, ok = p.body("after 'with' items"); !ok {
		return nil, false
	}
	return stmt, true
}

// FunctionDef parses `'def' identifier generics? '(' params? ')' ('->'
// type)? ':' suite`.
func (p *Parser) FunctionDef() (ast.Node, bool) {
	return apply(p, ruleFunctionDef, func(p *Parser) (ast.Node, bool) {
		return p.functionDef(nil, false)
	})
}

func (p *Parser) functionDef(decorators []*ast.Decorator, async bool) (ast.Node, bool) {
	if _, ok := p.matchLiteral("def"); !ok {
		return nil, false
	}
	name, ok := p.identifier()
	if !p.require(ok, "a function name after 'def'") {
		return nil, false
	}
	fn := &ast.Function{
		Decorators: decorators,
		IsAsync:    async,
		Name:       name,
		Generics:   p.generics(),
		Params:     &ast.Null{},
		ReturnType: &ast.Null{},
	}
	if fn.Decorators == nil {
		fn.Decorators = []*ast.Decorator{}
	}
	if _, ok := p.expect("(", "after function name"); !ok {
		return nil, false
	}
	if params, ok := p.FuncParams(); ok {
		fn.Params = params
	}
	if _, ok := p.expect(")", "to close the parameter list"); !ok {
		return nil, false
	}
	if _, ok := p.matchLiteral("->"); ok {
		ret, ok := p.TypeAnnotation()
		if !p.require(ok, "a return type after '->'") {
			return nil, false
		}
		fn.ReturnType = ret
	}
	if fn.Body, ok = p.body("after function signature"); !ok {
		return nil, false
	}
	return fn, true
}

func (p *Parser) generics() ast.Node {
	if g, ok := p.Generics(); ok {
		return g
	}
	return &ast.Null{}
}

// ClassDef parses `'class' identifier generics? ('(' types? ')')? ':'
// suite`.
func (p *Parser) ClassDef() (ast.Node, bool) {
	return apply(p, ruleClassDef, func(p *Parser) (ast.Node, bool) {
		return p.classDef(nil)
	})
}

func (p *Parser) classDef(decorators []*ast.Decorator) (ast.Node, bool) {
	if _, ok := p.matchLiteral("class"); !ok {
		return nil, false
	}
	name, ok := p.identifier()
	if !p.require(ok, "a class name after 'class'") {
		return nil, false
	}
	class := &ast.Class{Decorators: decorators, Name: name, Generics: p.generics(), Parents: []ast.Node{}}
	if class.Decorators == nil {
		class.Decorators = []*ast.Decorator{}
	}
	if _, ok := p.matchLiteral("("); ok {
		if parents, ok := p.types(); ok {
			class.Parents = parents
		}
		if _, ok := p.expect(")", "to close the parent list"); !ok {
			return nil, false
		}
	}
	if class.Body, ok = p.body("after class name"); !ok {
		return nil, false
	}
	return class, true
}

// Decorated parses one or more decorators followed by a function or class
// definition.
func (p *Parser) Decorated() (ast.Node, bool) {
	return apply(p, ruleDecorated, (*Parser).decorated)
}

func (p *Parser) decorated() (ast.Node, bool) {
	var decorators []*ast.Decorator
	p.many(func() bool {
		d, ok := p.Decorator()
		if ok {
			decorators = append(decorators, d)
		}
		return ok
	})
	if len(decorators) == 0 || p.err != nil {
		return nil, false
	}
	p.skipNewlines()
	switch {
	case p.atLiteral("def"):
		return p.functionDef(decorators, false)
	case p.atLiteral("class"):
		return p.classDef(decorators)
	case p.atLiteral("async"):
		p.matchLiteral("async")
		if !p.atLiteral("def") {
			return nil, p.errorf("expected 'def' after 'async'")
		}
		return p.functionDef(decorators, true)
	}
	return nil, p.errorf("expected 'def' or 'class' after decorators")
}

// Decorator parses `'@' dotted ('(' arguments? ')')? NEWLINE`.
func (p *Parser) Decorator() (*ast.Decorator, bool) {
	return apply(p, ruleDecorator, (*Parser).decorator)
}

func (p *Parser) decorator() (*ast.Decorator, bool) {
	if _, ok := p.matchLiteral("@"); !ok {
		return nil, false
	}
	path, ok := p.dotted()
	if !p.require(ok, "a decorator name after '@'") {
		return nil, false
	}
	d := &ast.Decorator{Path: path, Arguments: []*ast.Argument{}}
	if _, ok := p.matchLiteral("("); ok {
		d.IsCall = true
		if args, ok := p.Arguments(); ok {
			d.Arguments = args
		}
		if _, ok := p.expect(")", "to close the decorator arguments"); !ok {
			return nil, false
		}
	}
	if _, ok := p.consume(lexer.TokenNewline); !ok {
		return nil, p.errorf("expected end of line after decorator")
	}
	return d, true
}

// AsyncStatement parses `'async' (def | for | with)`.
func (p *Parser) AsyncStatement() (ast.Node, bool) {
	return apply(p, ruleAsync, (*Parser).asyncStatement)
}

func (p *Parser) asyncStatement() (ast.Node, bool) {
	if _, ok := p.matchLiteral("async"); !ok {
		return nil, false
	}
	switch {
	case p.atLiteral("def"):
		return p.functionDef(nil, true)
	case p.atLiteral("for"):
		return p.forStatement(true)
	case p.atLiteral("with"):
		return p.withStatement(true)
	}
	return nil, p.errorf("expected 'def', 'for' or 'with' after 'async'")
}
