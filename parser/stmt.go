package parser

import (
	"github.com/dhamidi/corona/ast"
	"github.com/dhamidi/corona/lexer"
)

var augmentedOps = []string{"+=", "-=", "*=", "@=", "/=", "//=", "%=", "<<=", ">>=", "&=", "|=", "||=", "^="}

// Statement parses one line's worth of statements: a compound statement or
// one or more simple statements separated by ';'.
func (p *Parser) Statement() ([]ast.Node, bool) {
	return apply(p, ruleStatement, (*Parser).statement)
}

func (p *Parser) statement() ([]ast.Node, bool) {
	if stmt, ok := p.CompoundStatement(); ok {
		return []ast.Node{stmt}, true
	}
	if p.err != nil {
		return nil, false
	}
	return p.SimpleStatements()
}

// SimpleStatements parses `small (';' small)* ';'?` terminated by a
// NEWLINE. A statement that ends in an indented block, as a block lambda
// does, is already terminated by its DEDENT.
func (p *Parser) SimpleStatements() ([]ast.Node, bool) {
	return apply(p, ruleSimpleStatements, (*Parser).simpleStatements)
}

func (p *Parser) simpleStatements() ([]ast.Node, bool) {
	first, ok := p.SmallStatement()
	if !ok {
		return nil, false
	}
	stmts := []ast.Node{first}
	p.many(func() bool {
		if _, ok := p.matchLiteral(";"); !ok {
			return false
		}
		stmt, ok := p.SmallStatement()
		if ok {
			stmts = append(stmts, stmt)
		}
		return ok
	})
	p.matchLiteral(";")
	if p.err != nil {
		return nil, false
	}
	if _, ok := p.consume(lexer.TokenNewline); ok {
		return stmts, true
	}
	if prev, ok := p.previous(); (ok && prev.Kind == lexer.TokenDedent) || p.atEnd() {
		return stmts, true
	}
	return nil, p.errorf("expected end of statement")
}

// SmallStatement parses a single simple statement.
func (p *Parser) SmallStatement() (ast.Node, bool) {
	return apply(p, ruleSmallStatement, func(p *Parser) (ast.Node, bool) {
		return p.choice(
			(*Parser).keywordStatement,
			(*Parser).ReturnStatement,
			(*Parser).RaiseStatement,
			(*Parser).GlobalStatement,
			(*Parser).NonlocalStatement,
			(*Parser).AssertStatement,
			(*Parser).DelStatement,
			(*Parser).ImportStatement,
			(*Parser).FromImportStatement,
			(*Parser).Assignment,
			(*Parser).ExprStatement,
		)
	})
}

func (p *Parser) keywordStatement() (ast.Node, bool) {
	if i, ok := p.matchLiteral("pass"); ok {
		return &ast.PassStatement{Index: i}, true
	}
	if i, ok := p.matchLiteral("break"); ok {
		return &ast.BreakStatement{Index: i}, true
	}
	if i, ok := p.matchLiteral("continue"); ok {
		return &ast.ContinueStatement{Index: i}, true
	}
	return nil, false
}

func (p *Parser) ReturnStatement() (ast.Node, bool) {
	return apply(p, ruleReturn, func(p *Parser) (ast.Node, bool) {
		if _, ok := p.matchLiteral("return"); !ok {
			return nil, false
		}
		exprs, _, _ := p.starExprs()
		if exprs == nil {
			exprs = []ast.Node{}
		}
		return &ast.ReturnStatement{Exprs: exprs}, p.err == nil
	})
}

// RaiseStatement parses `'raise' (expr ('from' expr)?)?`.
func (p *Parser) RaiseStatement() (ast.Node, bool) {
	return apply(p, ruleRaise, func(p *Parser) (ast.Node, bool) {
		if _, ok := p.matchLiteral("raise"); !ok {
			return nil, false
		}
		stmt := &ast.RaiseStatement{Expr: &ast.Null{}, From: &ast.Null{}}
		e, ok := p.Expr()
		if !ok {
			return stmt, p.err == nil
		}
		stmt.Expr = e
		if _, ok := p.matchLiteral("from"); ok {
			from, ok := p.Expr()
			if !p.require(ok, "an expression after 'from'") {
				return nil, false
			}
			stmt.From = from
		}
		return stmt, true
	})
}

func (p *Parser) names(keyword string) ([]*ast.Identifier, bool) {
	if _, ok := p.matchLiteral(keyword); !ok {
		return nil, false
	}
	first, ok := p.identifier()
	if !p.require(ok, "a name after '"+keyword+"'") {
		return nil, false
	}
	names := []*ast.Identifier{first}
	p.many(func() bool {
		if _, ok := p.matchLiteral(","); !ok {
			return false
		}
		name, ok := p.identifier()
		if ok {
			names = append(names, name)
		}
		return ok
	})
	return names, p.err == nil
}

func (p *Parser) GlobalStatement() (ast.Node, bool) {
	return apply(p, ruleGlobal, func(p *Parser) (ast.Node, bool) {
		names, ok := p.names("global")
		if !ok {
			return nil, false
		}
		return &ast.Globals{Names: names}, true
	})
}

func (p *Parser) NonlocalStatement() (ast.Node, bool) {
	return apply(p, ruleNonlocal, func(p *Parser) (ast.Node, bool) {
		names, ok := p.names("nonlocal")
		if !ok {
			return nil, false
		}
		return &ast.NonLocals{Names: names}, true
	})
}

// AssertStatement parses `'assert' test (',' test)?`.
func (p *Parser) AssertStatement() (ast.Node, bool) {
	return apply(p, ruleAssert, func(p *Parser) (ast.Node, bool) {
		if _, ok := p.matchLiteral("assert"); !ok {
			return nil, false
		}
		cond, ok := p.Test()
		if !p.require(ok, "a condition after 'assert'") {
			return nil, false
		}
		stmt := &ast.AssertStatement{Cond: cond, Message: &ast.Null{}}
		if _, ok := p.matchLiteral(","); ok {
			msg, ok := p.Test()
			if !p.require(ok, "an assertion message") {
				return nil, false
			}
			stmt.Message = msg
		}
		return stmt, true
	})
}

func (p *Parser) DelStatement() (ast.Node, bool) {
	return apply(p, ruleDel, func(p *Parser) (ast.Node, bool) {
		if _, ok := p.matchLiteral("del"); !ok {
			return nil, false
		}
		targets, ok := p.lhsList()
		if !p.require(ok, "a target after 'del'") {
			return nil, false
		}
		return &ast.DelStatement{Targets: targets}, true
	})
}

func (p *Parser) alias() (ast.Node, bool) {
	if _, ok := p.matchLiteral("as"); !ok {
		return &ast.Null{}, true
	}
	name, ok := p.identifier()
	if !p.require(ok, "a name after 'as'") {
		return nil, false
	}
	return name, true
}

// ImportStatement parses `'import' path (',' path)*` where each path is
// `dotted ('as' identifier)?`.
func (p *Parser) ImportStatement() (ast.Node, bool) {
	return apply(p, ruleImport, func(p *Parser) (ast.Node, bool) {
		if _, ok := p.matchLiteral("import"); !ok {
			return nil, false
		}
		main, ok := p.mainPath()
		if !ok {
			return nil, false
		}
		stmt := &ast.ImportStatement{Main: main}
		p.many(func() bool {
			if _, ok := p.matchLiteral(","); !ok {
				return false
			}
			more, ok := p.mainPath()
			if ok {
				stmt.More = append(stmt.More, more)
			}
			return ok
		})
		if p.err != nil {
			return nil, false
		}
		return stmt, true
	})
}

func (p *Parser) mainPath() (*ast.MainPath, bool) {
	names, ok := p.dotted()
	if !p.require(ok, "a module path after 'import'") {
		return nil, false
	}
	alias, ok := p.alias()
	if !ok {
		return nil, false
	}
	return &ast.MainPath{Names: names, Alias: alias}, true
}

// FromImportStatement parses
//
//	'from' '.'* dotted? 'import' ('*' | sub_paths | '(' sub_paths ')')
func (p *Parser) FromImportStatement() (ast.Node, bool) {
	return apply(p, ruleFromImport, (*Parser).fromImport)
}

func (p *Parser) fromImport() (ast.Node, bool) {
	if _, ok := p.matchLiteral("from"); !ok {
		return nil, false
	}
	main := &ast.MainPath{Names: []*ast.Identifier{}, Alias: &ast.Null{}}
	main.RelativeLevel = p.many(func() bool {
		_, ok := p.matchLiteral(".")
		return ok
	})
	if names, ok := p.dotted(); ok {
		main.Names = names
	} else if !p.require(main.RelativeLevel > 0, "a module path after 'from'") {
		return nil, false
	}
	if _, ok := p.expect("import", "after module path"); !ok {
		return nil, false
	}

	if _, ok := p.matchLiteral("*"); ok {
		return &ast.ImportStatement{Main: main, SubPaths: []*ast.SubPath{{Names: []*ast.Identifier{}, Alias: &ast.Null{}, IsImportAll: true}}}, true
	}
	_, paren := p.matchLiteral("(")
	var subs []*ast.SubPath
	n, _ := p.sequence(func() bool {
		names, ok := p.dotted()
		if !ok {
			return false
		}
		alias, ok := p.alias()
		if ok {
			subs = append(subs, &ast.SubPath{Names: names, Alias: alias})
		}
		return ok
	})
	if !p.require(n > 0, "names to import") {
		return nil, false
	}
	if paren {
		if _, ok := p.expect(")", "to close the import list"); !ok {
			return nil, false
		}
	}
	return &ast.ImportStatement{Main: main, SubPaths: subs}, true
}

// Assignment parses, in order, an annotated declaration
// `lhs_atom ':' type ('=' value)?`, an augmented assignment `lhs op= value` and
// a chained plain assignment `(lhs '=')+ value`.
func (p *Parser) Assignment() (ast.Node, bool) {
	return apply(p, ruleAssignment, func(p *Parser) (ast.Node, bool) {
		return p.choice((*Parser).annotatedAssignment, (*Parser).augmentedAssignment, (*Parser).plainAssignment)
	})
}

func (p *Parser) annotatedAssignment() (ast.Node, bool) {
	target, ok := p.LHSAtom()
	if !ok {
		return nil, false
	}
	if _, ok := p.matchLiteral(":"); !ok {
		return nil, false
	}
	t, ok := p.TypeAnnotation()
	if !ok {
		return nil, false
	}
	stmt := &ast.AssignmentStatement{Targets: []ast.Node{target}, Type: t, Value: &ast.Null{}}
	p.optional(func() bool {
		i, ok := p.matchLiteral("=")
		if !ok {
			return false
		}
		value, ok := p.Value()
		if !p.require(ok, "an expression after '='") {
			return false
		}
		stmt.Op = &ast.Operator{Op: i, Rem: -1}
		stmt.Value = value
		return true
	})
	return stmt, p.err == nil
}

func (p *Parser) augmentedAssignment() (ast.Node, bool) {
	target, ok := p.LHS()
	if !ok {
		return nil, false
	}
	op, ok := p.operator(augmentedOps)
	if !ok {
		return nil, false
	}
	value, ok := p.Value()
	if !ok {
		return nil, false
	}
	return &ast.AssignmentStatement{Targets: []ast.Node{target}, Type: &ast.Null{}, Op: op, Value: value}, true
}

func (p *Parser) plainAssignment() (ast.Node, bool) {
	var targets []ast.Node
	var op *ast.Operator
	p.many(func() bool {
		target, ok := p.LHS()
		if !ok {
			return false
		}
		i, ok := p.matchLiteral("=")
		if !ok {
			return false
		}
		if op == nil {
			op = &ast.Operator{Op: i, Rem: -1}
		}
		targets = append(targets, target)
		return true
	})
	if len(targets) == 0 {
		return nil, false
	}
	// A matched '=' commits to the assignment.
	value, ok := p.Value()
	if !p.require(ok, "an expression after '='") {
		return nil, false
	}
	return &ast.AssignmentStatement{Targets: targets, Type: &ast.Null{}, Op: op, Value: value}, true
}

func (p *Parser) ExprStatement() (ast.Node, bool) {
	return apply(p, ruleExprStatement, func(p *Parser) (ast.Node, bool) {
		value, ok := p.Value()
		if !ok {
			return nil, false
		}
		return &ast.ExprStatement{Expr: value}, true
	})
}
