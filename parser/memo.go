package parser

import "fmt"

type ruleID uint8

const (
	ruleProgram ruleID = iota
	ruleStatement
	ruleSimpleStatements
	ruleSmallStatement
	ruleCompoundStatement
	ruleSuite

	ruleExpr
	ruleTest
	ruleOrTest
	ruleAndTest
	ruleNotTest
	ruleComparison
	ruleOrExpr
	ruleXorExpr
	ruleAndExpr
	ruleShiftExpr
	ruleSumExpr
	ruleMulExpr
	ruleUnaryExpr
	rulePowerExpr
	ruleAtomExpr
	ruleAtom
	ruleTrailer
	ruleNamedExpr
	ruleStarExpr
	ruleStarExprs
	ruleValue
	ruleLambdaExpr
	ruleLambdaBlock
	ruleLambdaInline
	ruleParenAtom
	ruleBraceAtom
	ruleBracketAtom
	ruleStrings
	ruleSubscriptIndex
	ruleArguments
	ruleComprehensionFor
	ruleYieldExpr

	ruleFuncParams
	ruleLambdaParams
	ruleLHS
	ruleLHSAtom

	ruleAssignment
	ruleExprStatement
	ruleReturn
	ruleRaise
	ruleGlobal
	ruleNonlocal
	ruleAssert
	ruleDel
	ruleImport
	ruleFromImport

	ruleIf
	ruleWhile
	ruleFor
	ruleTry
	ruleWith
	ruleFunctionDef
	ruleClassDef
	ruleDecorated
	ruleDecorator
	ruleAsync

	ruleTypeAnnotation
	ruleIntersectionType
	ruleAtomType
	ruleGenerics

	ruleCount
)

var ruleNames = [ruleCount]string{
	ruleProgram:           "program",
	ruleStatement:         "statement",
	ruleSimpleStatements:  "simple_statements",
	ruleSmallStatement:    "small_statement",
	ruleCompoundStatement: "compound_statement",
	ruleSuite:             "suite",
	ruleExpr:              "expr",
	ruleTest:              "test",
	ruleOrTest:            "or_test",
	ruleAndTest:           "and_test",
	ruleNotTest:           "not_test",
	ruleComparison:        "comparison",
	ruleOrExpr:            "or_expr",
	ruleXorExpr:           "xor_expr",
	ruleAndExpr:           "and_expr",
	ruleShiftExpr:         "shift_expr",
	ruleSumExpr:           "sum_expr",
	ruleMulExpr:           "mul_expr",
	ruleUnaryExpr:         "unary_expr",
	rulePowerExpr:         "power_expr",
	ruleAtomExpr:          "atom_expr",
	ruleAtom:              "atom",
	ruleTrailer:           "trailer",
	ruleNamedExpr:         "named_expr",
	ruleStarExpr:          "star_expr",
	ruleStarExprs:         "star_exprs",
	ruleValue:             "value",
	ruleLambdaExpr:        "lambda_expr",
	ruleLambdaBlock:       "lambda_block",
	ruleLambdaInline:      "lambda_inline",
	ruleParenAtom:         "paren_atom",
	ruleBraceAtom:         "brace_atom",
	ruleBracketAtom:       "bracket_atom",
	ruleStrings:           "strings",
	ruleSubscriptIndex:    "subscript_index",
	ruleArguments:         "arguments",
	ruleComprehensionFor:  "comprehension_for",
	ruleYieldExpr:         "yield_expr",
	ruleFuncParams:        "func_params",
	ruleLambdaParams:      "lambda_params",
	ruleLHS:               "lhs",
	ruleLHSAtom:           "lhs_atom",
	ruleAssignment:        "assignment",
	ruleExprStatement:     "expr_statement",
	ruleReturn:            "return_statement",
	ruleRaise:             "raise_statement",
	ruleGlobal:            "global_statement",
	ruleNonlocal:          "nonlocal_statement",
	ruleAssert:            "assert_statement",
	ruleDel:               "del_statement",
	ruleImport:            "import_statement",
	ruleFromImport:        "from_import_statement",
	ruleIf:                "if_statement",
	ruleWhile:             "while_statement",
	ruleFor:               "for_statement",
	ruleTry:               "try_statement",
	ruleWith:              "with_statement",
	ruleFunctionDef:       "function_def",
	ruleClassDef:          "class_def",
	ruleDecorated:         "decorated",
	ruleDecorator:         "decorator",
	ruleAsync:             "async_statement",
	ruleTypeAnnotation:    "type_annotation",
	ruleIntersectionType:  "intersection_type",
	ruleAtomType:          "atom_type",
	ruleGenerics:          "generics",
}

func (id ruleID) String() string {
	if id < ruleCount {
		return ruleNames[id]
	}
	return fmt.Sprintf("rule(%d)", uint8(id))
}

// memoEntry is the outcome of one rule at one position. Failures are
// cached too; their end equals the start.
type memoEntry struct {
	node any
	ok   bool
	end  checkpoint
}

// memo holds one small map per cursor position, indexed by cursor+1.
type memo []map[ruleID]memoEntry

func newMemo(tokens int) memo {
	return make(memo, tokens+1)
}

func (m memo) lookup(cursor int, id ruleID) (memoEntry, bool) {
	row := m[cursor+1]
	if row == nil {
		return memoEntry{}, false
	}
	e, ok := row[id]
	return e, ok
}

func (m memo) store(cursor int, id ruleID, e memoEntry) {
	row := m[cursor+1]
	if row == nil {
		row = make(map[ruleID]memoEntry, 4)
		m[cursor+1] = row
	}
	if _, exists := row[id]; exists {
		panic(fmt.Sprintf("parser: %s rewritten at token %d", id, cursor+1))
	}
	row[id] = e
}

func (m memo) size() int {
	n := 0
	for _, row := range m {
		n += len(row)
	}
	return n
}

// apply runs body as the rule id at the current position: it consults the
// cache, bounds the nesting depth, rewinds on failure and records the
// outcome. A pending syntax error makes every rule fail and is never cached.
func apply[T any](p *Parser, id ruleID, body func(*Parser) (T, bool)) (T, bool) {
	var zero T
	if p.err != nil {
		return zero, false
	}
	start := p.checkpoint()

	if p.cache != nil {
		if e, hit := p.cache.lookup(start.cursor, id); hit {
			p.stats.Hits++
			p.restore(e.end)
			if !e.ok {
				return zero, false
			}
			return e.node.(T), true
		}
		p.stats.Misses++
	}

	if p.depth >= p.maxDepth {
		p.raise(fmt.Sprintf("maximum nesting depth of %d exceeded", p.maxDepth))
		return zero, false
	}
	p.depth++
	node, ok := body(p)
	p.depth--

	if p.trace {
		p.log.Debugf("%*s%s @%d -> %t", p.depth, "", id, start.cursor+1, ok)
	}
	if p.err != nil {
		p.restore(start)
		return zero, false
	}
	if !ok {
		p.restore(start)
		node = zero
	}
	if p.cache != nil {
		p.cache.store(start.cursor, id, memoEntry{node: node, ok: ok, end: p.checkpoint()})
	}
	return node, ok
}
